package tint

import (
	"image/color"
	"log/slog"

	"github.com/esimov/tint/utils"
)

// Default overlay settings, matching the initial state of the converter.
const (
	DefaultColor              = "#000000"
	DefaultTransparency       = 50
	DefaultGradientPercentage = 50
)

// Params is the snapshot of the overlay settings read at conversion time.
// Percentages are expressed in the 0-100 range.
type Params struct {
	Color              color.NRGBA
	Transparency       int
	AddGradient        bool
	GradientPercentage int
}

// DefaultParams returns the settings the converter starts with.
func DefaultParams() Params {
	return Params{
		Color:              color.NRGBA{A: 0xff},
		Transparency:       DefaultTransparency,
		GradientPercentage: DefaultGradientPercentage,
	}
}

// Normalize clamps the percentages to [0, 100] and makes the overlay color opaque.
func (p Params) Normalize() Params {
	p.Transparency = utils.Clamp(p.Transparency, 0, 100)
	p.GradientPercentage = utils.Clamp(p.GradientPercentage, 0, 100)
	p.Color.A = 0xff
	return p
}

// LogValue implements slog.LogValuer.
func (p Params) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("color", utils.RGBAToHex(p.Color)),
		slog.Int("transparency", p.Transparency),
		slog.Bool("gradient", p.AddGradient),
		slog.Int("gradient_perc", p.GradientPercentage),
	)
}

// ParseColor parses a "#rrggbb" or "#rgb" color as provided by a color swatch.
func ParseColor(s string) (color.NRGBA, error) {
	return utils.HexToRGBA(s)
}
