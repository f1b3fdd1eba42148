package imop

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_NewSurface(t *testing.T) {
	s := NewSurface(7, 3)

	assert.Equal(t, image.Rect(0, 0, 7, 3), s.Bounds())
	assert.Equal(t, Normal, s.Blend())
	assert.Equal(t, SrcOver, s.Composite())
	assert.Equal(t, 1.0, s.GlobalAlpha())
	assert.Equal(t, color.NRGBA{}, s.Image().NRGBAAt(3, 1))
}

func TestSurface_DrawImageKeepsPixels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 11)
	}
	// a translucent pixel must survive the copy as is
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 10, B: 99, A: 3})

	s := NewSurface(3, 2)
	s.DrawImage(src, image.Point{})
	assert.Equal(t, src.Pix, s.Image().Pix)
}

func TestSurface_DrawImageOffset(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	src := uniform(image.Rect(5, 5, 7, 7), red)

	s := NewSurface(4, 4)
	s.DrawImage(src, image.Pt(3, 3))

	assert.Equal(t, red, s.Image().NRGBAAt(3, 3))
	assert.Equal(t, color.NRGBA{}, s.Image().NRGBAAt(2, 2))
}

func TestSurface_DrawImageNonNRGBA(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix = []uint8{0, 64, 128, 255}

	s := NewSurface(2, 2)
	s.DrawImage(src, image.Point{})
	assert.Equal(t, color.NRGBA{R: 64, G: 64, B: 64, A: 255}, s.Image().NRGBAAt(1, 0))
}

func TestSurface_GlobalAlpha(t *testing.T) {
	s := NewSurface(1, 1)

	s.SetGlobalAlpha(1.7)
	assert.Equal(t, 1.0, s.GlobalAlpha())
	s.SetGlobalAlpha(-3)
	assert.Equal(t, 0.0, s.GlobalAlpha())
}

func TestSurface_FillZeroAlphaIsNoop(t *testing.T) {
	src := uniform(image.Rect(0, 0, 2, 2), color.NRGBA{R: 12, G: 34, B: 56, A: 78})

	s := NewSurface(2, 2)
	s.DrawImage(src, image.Point{})
	require.NoError(t, s.SetBlend(Multiply))
	s.SetGlobalAlpha(0)
	s.Fill(Solid{Color: color.NRGBA{A: 255}})

	assert.Equal(t, src.Pix, s.Image().Pix)
}

func TestSurface_FillNormal(t *testing.T) {
	s := NewSurface(2, 2)
	s.Fill(Solid{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}})
	s.SetGlobalAlpha(0.5)
	s.Fill(Solid{Color: color.NRGBA{A: 255}})

	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, s.Image().NRGBAAt(0, 1))
}

func TestSurface_FillMultiply(t *testing.T) {
	s := NewSurface(4, 4)
	s.DrawImage(uniform(image.Rect(0, 0, 4, 4), color.NRGBA{R: 255, A: 255}), image.Point{})
	require.NoError(t, s.SetBlend(Multiply))
	s.Fill(Solid{Color: color.NRGBA{B: 255, A: 255}})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, color.NRGBA{A: 255}, s.Image().NRGBAAt(x, y))
		}
	}
}

func TestSurface_FillMultiplyTranslucentBackdrop(t *testing.T) {
	s := NewSurface(1, 1)
	s.DrawImage(uniform(image.Rect(0, 0, 1, 1), color.NRGBA{R: 255, G: 255, B: 255, A: 128}), image.Point{})
	require.NoError(t, s.SetBlend(Multiply))
	s.Fill(Solid{Color: color.NRGBA{A: 255}})

	assert.Equal(t, color.NRGBA{A: 255}, s.Image().NRGBAAt(0, 0))
}

func TestSurface_FillRectClipped(t *testing.T) {
	s := NewSurface(3, 3)
	s.FillRect(image.Rect(2, 2, 10, 10), Solid{Color: color.NRGBA{G: 255, A: 255}})

	assert.Equal(t, color.NRGBA{G: 255, A: 255}, s.Image().NRGBAAt(2, 2))
	assert.Equal(t, color.NRGBA{}, s.Image().NRGBAAt(1, 1))
}

func TestSurface_Reset(t *testing.T) {
	s := NewSurface(1, 1)
	require.NoError(t, s.SetBlend(Screen))
	require.NoError(t, s.SetComposite(DstOver))
	s.SetGlobalAlpha(0.2)

	s.Reset()
	assert.Equal(t, Normal, s.Blend())
	assert.Equal(t, SrcOver, s.Composite())
	assert.Equal(t, 1.0, s.GlobalAlpha())
}

func TestSurface_MustSetBlend(t *testing.T) {
	s := NewSurface(1, 1)

	s.MustSetBlend(Multiply)
	assert.Equal(t, Multiply, s.Blend())

	assert.Panics(t, func() { s.MustSetBlend("dissolve") })
	assert.Equal(t, Multiply, s.Blend())
}
