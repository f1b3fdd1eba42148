/*
Package tint applies a brand color overlay and an optional diagonal gradient tint to an image.

The source image is rendered unscaled onto an off-screen surface, multiplied with the
overlay color at the requested opacity, optionally tinted with a linear gradient running
from the top-left to the bottom-right corner, and flattened into a PNG image which can be
saved as "converted-image.png" or embedded as a data URL.

The package provides a command line interface, supporting various flags for tuning the overlay.
To check the supported commands type:

	$ tint --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/tint"
	)

	func main() {
		col, _ := tint.ParseColor("#ff6a00")
		p := tint.NewProcessor(tint.Params{
			Color:        col,
			Transparency: 60,
			AddGradient:  true,
		}, tint.VariantStyled)

		if err := p.Process(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error converting image: %s", err.Error())
		}
	}
*/
package tint
