package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/esimov/tint"
	"github.com/esimov/tint/imop"
	"github.com/esimov/tint/utils"
)

const HelpBanner = `
┌┬┐┬┌┐┌┌┬┐
 │ ││││ │
 ┴ ┴┘└┘ ┴

Brand color overlay for images.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source        = flag.String("in", pipeName, "Source image, directory or URL")
	destination   = flag.String("out", ".", "Destination file or directory")
	brandColor    = flag.String("color", tint.DefaultColor, "Overlay color")
	transparency  = flag.Int("transparency", tint.DefaultTransparency, "Overlay opacity in percent (0-100)")
	gradient      = flag.Bool("gradient", false, "Add a diagonal gradient of the overlay color")
	gradientPerc  = flag.Int("gradient-perc", tint.DefaultGradientPercentage, "Gradient opacity in percent (0-100)")
	variant       = flag.String("variant", tint.VariantStyled.Name, "Converter variant: styled, card or gray")
	premultiplied = flag.Bool("premul", false, "Interpolate the gradient stops in premultiplied space")
	dataURL       = flag.Bool("dataurl", false, "Output the converted image as a PNG data URL")
	preview       = flag.Bool("preview", false, "Show the original and converted image in the terminal")
	workers       = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
	debug         = flag.Bool("debug", false, "Log the conversion details")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *debug {
		tint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	col, err := tint.ParseColor(*brandColor)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid color: %v", utils.ErrorMessage), err)
	}
	v, err := tint.VariantByName(*variant)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid variant: %v", utils.ErrorMessage), err)
	}

	proc := tint.NewProcessor(tint.Params{
		Color:              col,
		Transparency:       *transparency,
		AddGradient:        *gradient,
		GradientPercentage: *gradientPerc,
	}, v)
	proc.DataURL = *dataURL
	proc.Preview = *preview
	if *premultiplied {
		proc.Interpolation = imop.Premultiplied
	}

	proc.Spinner = utils.NewSpinner(fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ TINT", utils.StatusMessage),
		utils.DecorateText("⇢ converting image...", utils.DefaultMessage),
	), time.Millisecond*80)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		stop()
		proc.Spinner.RestoreCursor()
		os.Exit(1)
	}()

	op := &tint.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	}
	if err := proc.Execute(ctx, op); err != nil {
		log.Fatalf("%s\n\t%s",
			utils.DecorateText("Error converting the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}
