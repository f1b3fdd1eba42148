package imop

import (
	"image/color"
	"math"
	"sort"

	"github.com/esimov/tint/utils"
)

// Interpolation defines the color space the gradient stops are mixed in.
type Interpolation int

const (
	// Unpremultiplied mixes the straight color channels and the alpha independently.
	// A transparent stop therefore still pulls the hue of its neighbours toward its own color.
	Unpremultiplied Interpolation = iota
	// Premultiplied mixes colors weighted by their alpha,
	// so the color of a fully transparent stop has no influence.
	Premultiplied
)

// ColorStop is a color placed at a position along the gradient line.
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient is a Paint interpolating its color stops along the line (X0,Y0)-(X1,Y1).
// Beyond the end points the color of the nearest stop is extended.
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []ColorStop
	Space  Interpolation
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1) without any stop.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds a color stop at the given offset, clamped to [0, 1].
// Stops sharing the same offset keep their insertion order.
func (g *LinearGradient) AddColorStop(offset float64, c color.NRGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: utils.Clamp(offset, 0, 1), Color: c})
	sort.SliceStable(g.Stops, func(i, j int) bool {
		return g.Stops[i].Offset < g.Stops[j].Offset
	})
	return g
}

// ColorAt implements the Paint interface.
// The point is projected onto the gradient line: t = dot(P-P0, P1-P0) / |P1-P0|².
func (g *LinearGradient) ColorAt(x, y float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.Stops[0].Color
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lengthSq

	return g.at(t)
}

// at returns the gradient color at the offset t.
func (g *LinearGradient) at(t float64) color.NRGBA {
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 0; i < len(g.Stops)-1; i++ {
		s0, s1 := g.Stops[i], g.Stops[i+1]
		if t >= s1.Offset {
			continue
		}
		span := s1.Offset - s0.Offset
		if span <= 0 {
			return s1.Color
		}
		return g.lerp(s0.Color, s1.Color, (t-s0.Offset)/span)
	}
	return last.Color
}

func (g *LinearGradient) lerp(c0, c1 color.NRGBA, t float64) color.NRGBA {
	a0, a1 := float64(c0.A)/255, float64(c1.A)/255
	a := a0 + (a1-a0)*t

	mix := func(v0, v1 uint8) uint8 {
		f0, f1 := float64(v0)/255, float64(v1)/255
		if g.Space == Premultiplied {
			if a == 0 {
				return 0
			}
			return toByte((f0*a0 + (f1*a1-f0*a0)*t) / a)
		}
		return toByte(f0 + (f1-f0)*t)
	}

	return color.NRGBA{
		R: mix(c0.R, c1.R),
		G: mix(c0.G, c1.G),
		B: mix(c0.B, c1.B),
		A: uint8(math.Round(a * 255)),
	}
}
