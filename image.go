package tint

import (
	"bufio"
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/tint/utils"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// sniffLen is the number of bytes used to detect the content type.
const sniffLen = 512

// decodeImg decodes an encoded image read from r.
// The EXIF orientation is applied, so the returned image has the
// natural dimensions a browser would report for it.
func decodeImg(r io.Reader) (image.Image, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, _ := br.Peek(sniffLen)
	if len(head) == 0 {
		return nil, ErrNoImage
	}

	ctype, err := utils.SniffContentType(bytes.NewReader(head))
	if err != nil {
		return nil, errors.Wrap(err, "could not detect the content type")
	}
	// tiff is not recognized by the sniffer, so let the decoder decide on binary data
	if !strings.HasPrefix(ctype, "image/") && ctype != "application/octet-stream" {
		return nil, errors.Errorf("the source should be an image file, got: %s", ctype)
	}

	img, err := imaging.Decode(br, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode the source image")
	}
	return img, nil
}

// encodeImg encodes the image as PNG to a destination of type io.Writer.
func encodeImg(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, img); err != nil {
		return errors.Wrap(err, "could not encode the converted image")
	}
	return nil
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	return imaging.Clone(img)
}
