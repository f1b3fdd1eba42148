// Package imop implements the raster operations used for mixing a paint with its backdrop.
// It provides the Porter-Duff composite operators, a set of separable blend modes
// and a drawing Surface which combines them the way a 2D canvas context does:
// the paint is first blended with the backdrop, then composited onto it,
// scaled by the surface's global alpha.
//
// The image/draw core package implements only the source-over-destination and source
// operators and has no notion of blend modes. This package is aimed to overcome that.
package imop

import (
	"math"

	"github.com/esimov/tint/utils"
	"github.com/pkg/errors"
)

// Supported blend modes.
const (
	Normal   = "normal"
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

// ErrUnsupportedBlend is returned when activating an unknown blend mode.
var ErrUnsupportedBlend = errors.New("unsupported blend mode")

var blendModes = []string{Normal, Darken, Lighten, Multiply, Screen, Overlay}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend with the normal mode active.
func NewBlend() *Blend {
	return &Blend{OpType: Normal}
}

// Set activates one of the supported blend modes.
// The active mode is left untouched if opType is not supported.
func (o *Blend) Set(opType string) error {
	if !utils.Contains(blendModes, opType) {
		return errors.Wrapf(ErrUnsupportedBlend, "%q", opType)
	}
	o.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	if len(o.OpType) > 0 {
		return o.OpType
	}
	return Normal
}

// Apply returns the mixing function B(cb, cs) of the active mode for one
// normalized color channel, cb being the backdrop and cs the source.
func (o *Blend) Apply(cb, cs float64) float64 {
	switch o.Get() {
	case Multiply:
		return cb * cs
	case Screen:
		return cb + cs - cb*cs
	case Darken:
		return math.Min(cb, cs)
	case Lighten:
		return math.Max(cb, cs)
	case Overlay:
		// overlay is hard-light with the layers swapped
		if cb <= 0.5 {
			return 2 * cb * cs
		}
		return 1 - 2*(1-cb)*(1-cs)
	}
	return cs
}
