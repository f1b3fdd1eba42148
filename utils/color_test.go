package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_HexToRGBA(t *testing.T) {
	tests := map[string]color.NRGBA{
		"#000000":   {A: 0xff},
		"#ffffff":   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		"#FF6A00":   {R: 0xff, G: 0x6a, A: 0xff},
		"0000ff":    {B: 0xff, A: 0xff},
		"#f0a":      {R: 0xff, A: 0xff, B: 0xaa},
		" #d61441 ": {R: 0xd6, G: 0x14, B: 0x41, A: 0xff},
	}
	for hex, want := range tests {
		t.Run(hex, func(t *testing.T) {
			c, err := HexToRGBA(hex)
			require.NoError(t, err)
			assert.Equal(t, want, c)
		})
	}
}

func TestColor_HexToRGBAInvalid(t *testing.T) {
	for _, hex := range []string{"", "#", "#zzzzzz", "red"} {
		_, err := HexToRGBA(hex)
		assert.Error(t, err, hex)
	}
}

func TestColor_RGBAToHex(t *testing.T) {
	assert.Equal(t, "#ff6a00", RGBAToHex(color.NRGBA{R: 0xff, G: 0x6a, A: 0x80}))

	c, err := HexToRGBA(RGBAToHex(color.NRGBA{R: 12, G: 34, B: 56}))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 12, G: 34, B: 56, A: 0xff}, c)
}
