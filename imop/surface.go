package imop

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/tint/utils"
)

// Paint is the source of the colors used when filling a region of a Surface.
// ColorAt is sampled at pixel centers.
type Paint interface {
	ColorAt(x, y float64) color.NRGBA
}

// Solid is a Paint of a single uniform color.
type Solid struct {
	Color color.NRGBA
}

// ColorAt implements the Paint interface.
func (s Solid) ColorAt(x, y float64) color.NRGBA {
	return s.Color
}

// Surface is an off-screen drawing context backed by a Bitmap.
// Like a 2D canvas it keeps a global alpha, a blend mode and a composite operator
// which are taken into account by every subsequent fill.
// A Surface is not safe for concurrent use.
type Surface struct {
	bmp   *Bitmap
	blend *Blend
	op    *Composite
	alpha float64
}

// NewSurface allocates a transparent surface of width w and height h.
func NewSurface(w, h int) *Surface {
	return &Surface{
		bmp:   NewBitmap(image.Rect(0, 0, w, h)),
		blend: NewBlend(),
		op:    InitOp(),
		alpha: 1,
	}
}

// Bounds returns the surface bounds.
func (s *Surface) Bounds() image.Rectangle {
	return s.bmp.Img.Bounds()
}

// Image returns the underlying pixel buffer.
func (s *Surface) Image() *image.NRGBA {
	return s.bmp.Img
}

// SetBlend activates the blend mode used by the next fills.
func (s *Surface) SetBlend(mode string) error {
	return s.blend.Set(mode)
}

// MustSetBlend is like SetBlend but panics if the mode is not supported.
// It is meant to be used with the mode constants of this package.
func (s *Surface) MustSetBlend(mode string) {
	if err := s.SetBlend(mode); err != nil {
		panic(err)
	}
}

// Blend returns the active blend mode.
func (s *Surface) Blend() string {
	return s.blend.Get()
}

// SetComposite activates the composite operator used by the next fills.
func (s *Surface) SetComposite(cop string) error {
	return s.op.Set(cop)
}

// Composite returns the active composite operator.
func (s *Surface) Composite() string {
	return s.op.Get()
}

// SetGlobalAlpha sets the opacity applied to the next fills, clamped to [0, 1].
func (s *Surface) SetGlobalAlpha(a float64) {
	s.alpha = utils.Clamp(a, 0, 1)
}

// GlobalAlpha returns the opacity applied to the fills.
func (s *Surface) GlobalAlpha() float64 {
	return s.alpha
}

// Reset restores the normal blend mode, the source-over operator and a fully opaque global alpha.
// Pixels already drawn are not affected.
func (s *Surface) Reset() {
	s.blend.OpType = Normal
	s.op.current = SrcOver
	s.alpha = 1
}

// DrawImage copies img unmodified onto the surface with its top-left corner at pt.
// The surface state is ignored: the pixels are replaced, not composited.
func (s *Surface) DrawImage(img image.Image, pt image.Point) {
	dst := s.bmp.Img
	r := img.Bounds().Sub(img.Bounds().Min).Add(pt).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	sp := img.Bounds().Min.Add(r.Min.Sub(pt))

	src, ok := img.(*image.NRGBA)
	if !ok {
		draw.Draw(dst, r, img, sp, draw.Src)
		return
	}
	rowSize := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		si := src.PixOffset(sp.X, sp.Y+y)
		di := dst.PixOffset(r.Min.X, r.Min.Y+y)
		copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
	}
}

// FillRect fills the rectangle r with the paint, using the current blend mode,
// composite operator and global alpha. A zero global alpha makes it a no-op.
func (s *Surface) FillRect(r image.Rectangle, p Paint) {
	if s.alpha <= 0 {
		return
	}
	dst := s.bmp.Img
	r = r.Intersect(dst.Bounds())

	var blend *Blend
	if s.blend.Get() != Normal {
		blend = s.blend
	}
	isSrcOver := s.op.Get() == SrcOver

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := p.ColorAt(float64(x)+0.5, float64(y)+0.5)
			src := [4]float64{
				float64(c.R) / 255,
				float64(c.G) / 255,
				float64(c.B) / 255,
				float64(c.A) / 255 * s.alpha,
			}
			// a transparent source leaves the backdrop untouched under source-over
			if isSrcOver && src[3] == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			out := s.op.mix(src, normalize(dst.Pix[i:i+4]), blend)
			denormalize(dst.Pix[i:i+4], out)
		}
	}
}

// Fill fills the whole surface with the paint.
func (s *Surface) Fill(p Paint) {
	s.FillRect(s.Bounds(), p)
}
