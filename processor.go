package tint

import (
	"image"
	"io"
	"time"

	"github.com/esimov/tint/imop"
	"github.com/esimov/tint/utils"
	"github.com/pkg/errors"
)

// ErrNoImage is returned when a conversion is requested without a source image.
var ErrNoImage = errors.New("no source image provided")

// Processor options
type Processor struct {
	Params
	Variant Variant
	// Interpolation is the color space the gradient stops are mixed in.
	Interpolation imop.Interpolation
	// DataURL makes Process emit a base64 data URL instead of raw PNG bytes.
	DataURL bool
	Preview bool
	Spinner *utils.Spinner
}

// NewProcessor returns a processor converting images with the given settings.
func NewProcessor(params Params, variant Variant) *Processor {
	return &Processor{
		Params:  params,
		Variant: variant,
	}
}

func (p *Processor) variant() Variant {
	if p.Variant.Name == "" {
		return VariantStyled
	}
	return p.Variant
}

// Convert is the main entry point of the overlay operation. It renders the source
// image onto a surface of the very same size, multiplies it with the overlay color,
// optionally tints it with a diagonal gradient, and returns the flattened result.
// The source image is never modified and never scaled.
func (p *Processor) Convert(src image.Image) *image.NRGBA {
	var (
		img    = imgToNRGBA(src)
		params = p.Params.Normalize()
		v      = p.variant()
		w, h   = img.Bounds().Dx(), img.Bounds().Dy()
	)
	Logger().Debug("converting image",
		"width", w, "height", h,
		"params", params,
		"variant", v.Name,
	)

	surface := imop.NewSurface(w, h)
	surface.DrawImage(img, image.Point{})

	// Apply the color overlay.
	surface.MustSetBlend(imop.Multiply)
	surface.SetGlobalAlpha(float64(params.Transparency) / 100)
	surface.Fill(imop.Solid{Color: params.Color})

	if params.AddGradient {
		gradient := imop.NewLinearGradient(0, 0, float64(w), float64(h)).
			AddColorStop(0, v.GradientStart).
			AddColorStop(1, params.Color)
		gradient.Space = p.Interpolation

		// Unless the variant asks for it the multiply mode stays active for the gradient.
		if v.ResetBeforeGradient {
			surface.Reset()
		}
		surface.SetGlobalAlpha(v.gradientOpacity(params))
		surface.Fill(gradient)
	}
	surface.Reset()

	return surface.Image()
}

// convert decodes the source image from r and converts it.
func (p *Processor) convert(r io.Reader) (*image.NRGBA, error) {
	if r == nil {
		return nil, ErrNoImage
	}
	src, err := decodeImg(r)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res := p.Convert(src)
	Logger().Debug("image converted", "elapsed", utils.FormatTime(time.Since(now)))

	return res, nil
}

// Process decodes the source image read from r, converts it and encodes
// the result into w, either as PNG or, if DataURL is set, as a PNG data URL.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	res, err := p.convert(r)
	if err != nil {
		return err
	}
	if !p.DataURL {
		return encodeImg(w, res)
	}

	data, err := EncodePNG(res)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, DataURL(data)); err != nil {
		return errors.Wrap(err, "could not write the data URL")
	}
	return nil
}
