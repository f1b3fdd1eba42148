package tint

import (
	"image/color"

	"github.com/pkg/errors"
)

// ErrUnsupportedVariant is returned when looking up an unknown variant.
var ErrUnsupportedVariant = errors.New("unsupported variant")

// Variant captures the settings in which the converter flavors differ.
type Variant struct {
	Name string
	// GradientStart is the transparent color of the gradient stop at offset 0.
	GradientStart color.NRGBA
	// ConfigurableGradient selects Params.GradientPercentage as gradient opacity,
	// otherwise FixedGradientOpacity is used.
	ConfigurableGradient bool
	FixedGradientOpacity float64
	// ResetBeforeGradient restores the normal blend mode before the gradient fill.
	// When false the gradient is multiplied onto the image like the color overlay.
	ResetBeforeGradient bool
}

var (
	// VariantStyled exposes the gradient opacity to the user.
	VariantStyled = Variant{
		Name:                 "styled",
		GradientStart:        color.NRGBA{R: 255, G: 255, B: 255, A: 0},
		ConfigurableGradient: true,
		FixedGradientOpacity: 0.5,
	}
	// VariantCard uses a fixed half opaque gradient.
	VariantCard = Variant{
		Name:                 "card",
		GradientStart:        color.NRGBA{R: 255, G: 255, B: 255, A: 0},
		FixedGradientOpacity: 0.5,
	}
	// VariantGray starts the gradient from a transparent gray and paints it with normal blending.
	VariantGray = Variant{
		Name:                 "gray",
		GradientStart:        color.NRGBA{R: 55, G: 55, B: 55, A: 0},
		FixedGradientOpacity: 0.5,
		ResetBeforeGradient:  true,
	}
)

// Variants lists the built-in variants.
var Variants = []Variant{VariantStyled, VariantCard, VariantGray}

// VariantByName returns the built-in variant with the given name.
func VariantByName(name string) (Variant, error) {
	for _, v := range Variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, errors.Wrapf(ErrUnsupportedVariant, "%q", name)
}

// gradientOpacity returns the global alpha used by the gradient fill.
func (v Variant) gradientOpacity(p Params) float64 {
	if v.ConfigurableGradient {
		return float64(p.GradientPercentage) / 100
	}
	return v.FixedGradientOpacity
}
