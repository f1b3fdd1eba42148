package imop

import (
	"image"

	"github.com/esimov/tint/utils"
	"github.com/pkg/errors"
)

// Porter-Duff composite operators.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// ErrUnsupportedOp is returned when activating an unknown composite operator.
var ErrUnsupportedOp = errors.New("unsupported composite operation")

var compositeOps = []string{Copy, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor}

// Bitmap is the pixel buffer the operations are rendered into.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap allocates a fully transparent bitmap of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the currently active composite operator.
type Composite struct {
	current string
}

// InitOp initializes a new Composite with the source-over operator active.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set activates one of the Porter-Duff operators.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(compositeOps, cop) {
		return errors.Wrapf(ErrUnsupportedOp, "%q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the currently active composite operator.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Porter-Duff coverage fractions Fa and Fb
// applied to the source and the backdrop.
func (op *Composite) factors(as, ab float64) (fa, fb float64) {
	switch op.current {
	case Copy:
		return 1, 0
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	}
	return 1, 1 - as
}

// mix combines one source pixel with one backdrop pixel.
// Colors are normalized and non premultiplied; the result is non premultiplied too.
// The source is blended with the backdrop first, then the composite operator is applied.
func (op *Composite) mix(src, dst [4]float64, blend *Blend) [4]float64 {
	as, ab := src[3], dst[3]
	fa, fb := op.factors(as, ab)

	ao := as*fa + ab*fb
	if ao <= 0 {
		return [4]float64{}
	}

	var out [4]float64
	for i := 0; i < 3; i++ {
		cs := src[i]
		if blend != nil {
			cs = (1-ab)*cs + ab*blend.Apply(dst[i], cs)
		}
		out[i] = (as*fa*cs + ab*fb*dst[i]) / ao
	}
	out[3] = ao

	return out
}

// Draw composites the src image over the dst image with the active operator
// and the optional blend mode, and writes the result into the bitmap.
// All three images are expected to share the same bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}
	b := src.Bounds().Intersect(dst.Bounds()).Intersect(bitmap.Img.Bounds())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := src.PixOffset(x, y)
			di := dst.PixOffset(x, y)
			bi := bitmap.Img.PixOffset(x, y)

			out := op.mix(
				normalize(src.Pix[si:si+4]),
				normalize(dst.Pix[di:di+4]),
				blend,
			)
			denormalize(bitmap.Img.Pix[bi:bi+4], out)
		}
	}
}

// normalize converts an 8 bit NRGBA pixel to the [0, 1] range.
func normalize(pix []uint8) [4]float64 {
	return [4]float64{
		float64(pix[0]) / 255,
		float64(pix[1]) / 255,
		float64(pix[2]) / 255,
		float64(pix[3]) / 255,
	}
}

// denormalize writes the normalized color c into an 8 bit NRGBA pixel.
func denormalize(pix []uint8, c [4]float64) {
	for i := 0; i < 4; i++ {
		pix[i] = toByte(c[i])
	}
}

func toByte(v float64) uint8 {
	return uint8(utils.Clamp(v, 0, 1)*255 + 0.5)
}
