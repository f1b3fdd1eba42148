package tint

import (
	"bytes"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// halfBlock is drawn with the upper pixel as foreground and the lower one as background,
// so every terminal cell displays two vertically adjacent pixels.
const halfBlock = '▀'

var previewTitles = [2]string{"Original Image", "Converted Image"}

// showPreview displays the original and the converted image side by side in the terminal
// until ESC, q or CTRL-C is pressed.
func showPreview(original, converted []byte) error {
	if original == nil || converted == nil {
		return ErrNothingToExport
	}
	orig, err := decodeImg(bytes.NewReader(original))
	if err != nil {
		return err
	}
	conv, err := decodeImg(bytes.NewReader(converted))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "unable to open the preview screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "unable to initialize the preview screen")
	}
	defer screen.Fini()

	renderPreview(screen, orig, conv)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			renderPreview(screen, orig, conv)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case nil:
			return nil
		}
	}
}

// renderPreview lays out the two images on the screen, each taking half of its width.
func renderPreview(screen tcell.Screen, orig, conv image.Image) {
	screen.Clear()

	w, h := screen.Size()
	cols, rows := w/2-1, h-1
	if cols <= 0 || rows <= 0 {
		screen.Show()
		return
	}
	for i, img := range []image.Image{orig, conv} {
		ox := i * (w / 2)
		drawText(screen, ox, 0, previewTitles[i])
		drawHalfBlocks(screen, thumbnail(img, cols, rows), ox, 1)
	}
	screen.Show()
}

// thumbnail downscales the image to fit into cols×rows terminal cells, preserving its aspect ratio.
func thumbnail(img image.Image, cols, rows int) image.Image {
	return resize.Thumbnail(uint(cols), uint(rows*2), img, resize.Bilinear)
}

func drawText(screen tcell.Screen, x, y int, s string) {
	style := tcell.StyleDefault.Bold(true)
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawHalfBlocks(screen tcell.Screen, img image.Image, ox, oy int) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			var bottom color.Color = color.Black
			if y+1 < b.Max.Y {
				bottom = img.At(x, y+1)
			}
			screen.SetContent(ox+x-b.Min.X, oy+(y-b.Min.Y)/2, halfBlock, nil, halfBlockStyle(img.At(x, y), bottom))
		}
	}
}

// halfBlockStyle returns the cell style for two stacked pixels.
// Translucent pixels are shown as composited over black.
func halfBlockStyle(top, bottom color.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcellColor(top)).
		Background(toTcellColor(bottom))
}

func toTcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
