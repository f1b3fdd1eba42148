package tint

import (
	"bytes"
	"encoding/base64"
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ExportName is the file name a converted image is saved under.
const ExportName = "converted-image.png"

const dataURLPrefix = "data:image/png;base64,"

// ErrNothingToExport is returned when exporting before any image has been converted.
var ErrNothingToExport = errors.New("there is no converted image to export")

// EncodePNG encodes the image as PNG and returns the encoded bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeImg(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURL returns the PNG encoded data as an embeddable data URL.
func DataURL(data []byte) string {
	return dataURLPrefix + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL returns the PNG bytes embedded into a data URL produced by DataURL.
func DecodeDataURL(url string) ([]byte, error) {
	if len(url) < len(dataURLPrefix) || url[:len(dataURLPrefix)] != dataURLPrefix {
		return nil, errors.New("not a PNG data URL")
	}
	data, err := base64.StdEncoding.DecodeString(url[len(dataURLPrefix):])
	if err != nil {
		return nil, errors.Wrap(err, "malformed data URL payload")
	}
	return data, nil
}

// Export saves the encoded image into dir as ExportName, creating dir if needed.
// It returns the path of the written file.
func Export(dir string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNothingToExport
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "unable to create the export directory %s", dir)
	}

	path := filepath.Join(dir, ExportName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "unable to save %s", path)
	}
	return path, nil
}
