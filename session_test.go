package tint

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ConvertWithoutImage(t *testing.T) {
	s := NewSession(nil)
	assert.False(t, s.HasImage())
	assert.Equal(t, DefaultParams(), s.Params())

	_, err := s.Convert()
	assert.True(t, errors.Is(err, ErrNoImage))
	assert.Nil(t, s.Converted())

	_, err = s.Export(t.TempDir())
	assert.True(t, errors.Is(err, ErrNothingToExport))
	_, err = s.DataURL()
	assert.True(t, errors.Is(err, ErrNothingToExport))
}

func TestSession_LoadEmpty(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Load(bytes.NewReader(encodePNG(t, solidImage(2, 2, red)))))
	assert.True(t, s.HasImage())

	err := s.Load(bytes.NewReader(nil))
	assert.True(t, errors.Is(err, ErrNoImage))
	assert.False(t, s.HasImage())
}

func TestSession_ConvertAndExport(t *testing.T) {
	s := NewSession(NewProcessor(Params{Color: blue, Transparency: 100}, VariantStyled))
	require.NoError(t, s.Load(bytes.NewReader(encodePNG(t, solidImage(4, 4, red)))))

	data, err := s.Convert()
	require.NoError(t, err)
	assert.Equal(t, data, s.Converted())

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	assert.Equal(t, black, nrgbaAt(img, 2, 3))

	dir := t.TempDir()
	path, err := s.Export(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "converted-image.png"), path)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, saved)

	url, err := s.DataURL()
	require.NoError(t, err)
	assert.Equal(t, DataURL(data), url)
}

func TestSession_NewSelectionKeepsPreviousResult(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Load(bytes.NewReader(encodePNG(t, solidImage(2, 2, red)))))
	first, err := s.Convert()
	require.NoError(t, err)

	require.NoError(t, s.Load(bytes.NewReader(encodePNG(t, solidImage(5, 1, white)))))
	assert.Equal(t, first, s.Converted())

	second, err := s.Convert()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, s.Converted())
}

func TestSession_ParamsSnapshot(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Load(bytes.NewReader(encodePNG(t, solidImage(3, 3, white)))))

	s.SetParams(Params{Color: red, Transparency: 0})
	untouched, err := s.Convert()
	require.NoError(t, err)

	s.SetParams(Params{Color: red, Transparency: 100})
	tinted, err := s.Convert()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(untouched))
	require.NoError(t, err)
	assert.Equal(t, white, nrgbaAt(img, 1, 1))

	img, err = png.Decode(bytes.NewReader(tinted))
	require.NoError(t, err)
	assert.Equal(t, red, nrgbaAt(img, 1, 1))
}

func TestSession_ConcurrentConversions(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Load(bytes.NewReader(encodePNG(t, patternImage(8, 8)))))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results [][]byte
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := s.Convert()
			assert.NoError(t, err)

			mu.Lock()
			results = append(results, data)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Contains(t, results, s.Converted())
}
