package tint

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Defaults(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, black, p.Color)
	assert.Equal(t, 50, p.Transparency)
	assert.False(t, p.AddGradient)
	assert.Equal(t, 50, p.GradientPercentage)

	col, err := ParseColor(DefaultColor)
	require.NoError(t, err)
	assert.Equal(t, p.Color, col)
}

func TestParams_Normalize(t *testing.T) {
	p := Params{
		Color:              color.NRGBA{R: 10, G: 20, B: 30, A: 0},
		Transparency:       140,
		GradientPercentage: -5,
	}.Normalize()

	assert.Equal(t, 100, p.Transparency)
	assert.Equal(t, 0, p.GradientPercentage)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, p.Color)
}

func TestParams_ParseColor(t *testing.T) {
	testCases := []struct {
		in       string
		expected color.NRGBA
	}{
		{"#0000FF", blue},
		{"#ff0000", red},
		{"#fff", white},
		{"ff6a00", color.NRGBA{R: 0xff, G: 0x6a, A: 0xff}},
		{" #000000 ", black},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			col, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, col)
		})
	}

	_, err := ParseColor("#zzzzzz")
	assert.Error(t, err)
	_, err = ParseColor("")
	assert.Error(t, err)
}

func TestVariant_ByName(t *testing.T) {
	for _, v := range Variants {
		found, err := VariantByName(v.Name)
		require.NoError(t, err)
		assert.Equal(t, v, found)
	}

	_, err := VariantByName("classic")
	assert.True(t, errors.Is(err, ErrUnsupportedVariant))
}

func TestVariant_GradientOpacity(t *testing.T) {
	p := Params{GradientPercentage: 80}

	assert.Equal(t, 0.8, VariantStyled.gradientOpacity(p))
	assert.Equal(t, 0.5, VariantCard.gradientOpacity(p))
	assert.Equal(t, 0.5, VariantGray.gradientOpacity(p))

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255}, VariantStyled.GradientStart)
	assert.Equal(t, color.NRGBA{R: 55, G: 55, B: 55}, VariantGray.GradientStart)
	assert.True(t, VariantGray.ResetBeforeGradient)
	assert.False(t, VariantCard.ResetBeforeGradient)
}
