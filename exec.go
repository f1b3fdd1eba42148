package tint

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/esimov/tint/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// validExtensions lists the supported source image files.
var validExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

// Ops holds the source and destination of a conversion.
// Src and Dst can be a file, a directory or the PipeName. Src can also be an http(s) URL.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int
}

// result holds the relevant information about the conversion of one image.
type result struct {
	path string
	err  error
}

// Execute runs the conversion described by op.
// A directory source is processed concurrently, every supported image being converted into
// a PNG file of the same name inside the destination directory. A single image is converted
// into the destination file, or into ExportName when the destination is a directory,
// and it is shown in the terminal afterwards if the preview mode is activated.
func (p *Processor) Execute(ctx context.Context, op *Ops) error {
	if p.Spinner == nil {
		p.Spinner = utils.NewSpinner(fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ TINT", utils.StatusMessage),
			utils.DecorateText("⇢ converting image...", utils.DefaultMessage),
		), time.Millisecond*80)
	}

	src := op.Src
	// Check if source path is a local image or URL.
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(ctx, src)
		if err != nil {
			return errors.Wrap(err, "failed to load the source image")
		}
		defer os.Remove(f.Name())
		defer f.Close()
		src = f.Name()
	}

	var (
		fs  os.FileInfo
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(src)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load the source image")
	}

	now := time.Now()
	switch mode := fs.Mode(); {
	case mode.IsDir():
		err = p.executeDir(ctx, op, src)
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0 || mode&os.ModeCharDevice != 0:
		err = op.convertOne(p, src, op.Dst)
		op.printOpStatus(op.Dst, err)
	default:
		err = errors.Errorf("unsupported source: %s", src)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return nil
}

// executeDir converts the images found in the src directory tree concurrently.
// A failing image does not stop the others; the first error is returned.
func (p *Processor) executeDir(ctx context.Context, op *Ops, src string) error {
	if op.Dst == op.PipeName {
		return errors.New("a directory can not be converted into a pipe")
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return errors.Wrap(err, "unable to create the destination directory")
	}
	// There is no point in previewing a batch of images.
	p.Preview = false

	// Limit the concurrently running workers to maxWorkers.
	workers := op.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan result)
	paths, errc := walkDir(ctx, src, validExtensions)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(ctx, p, ch, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var firstErr error
	for res := range ch {
		if res.err != nil {
			Logger().Warn("image skipped", "path", res.path, "error", res.err)
			if firstErr == nil {
				firstErr = errors.Wrapf(res.err, "converting %s", res.path)
			}
		}
		op.printOpStatus(res.path, res.err)
	}

	if err := <-errc; err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// consumer reads the path names from the paths channel and converts each image.
func (op *Ops) consumer(
	ctx context.Context,
	p *Processor,
	res chan<- result,
	paths <-chan string,
) {
	for src := range paths {
		dst := filepath.Join(op.Dst, batchName(src))
		err := op.process(p, src, dst)

		select {
		case <-ctx.Done():
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// batchName returns the name of the converted image created for src in a directory conversion.
func batchName(src string) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// process converts the image file in into the image file out.
// The output file is removed if the conversion fails.
func (op *Ops) process(p *Processor, in, out string) (err error) {
	src, err := os.Open(in)
	if err != nil {
		return errors.Wrap(err, "unable to open the source file")
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "unable to create the destination file")
	}
	defer func() {
		if cerr := dst.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out)
		}
	}()

	return p.Process(src, dst)
}

// convertOne converts a single image through a Session, the same way the interactive
// converter does: the image is loaded, converted, then exported.
func (op *Ops) convertOne(p *Processor, in, out string) error {
	src, err := op.openSource(in)
	if err != nil {
		return err
	}
	defer src.Close()

	p.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
		utils.DecorateText("⚡ TINT", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the image has been converted successfully ✔", utils.SuccessMessage),
	)
	p.Spinner.Start()

	sess := NewSession(p)
	if err := sess.Load(src); err != nil {
		p.Spinner.StopMsg = ""
		p.Spinner.Stop()
		return err
	}
	data, err := sess.Convert()
	if err != nil {
		p.Spinner.StopMsg = ""
		p.Spinner.Stop()
		return err
	}
	p.Spinner.Stop()

	if err := op.writeResult(sess, p.DataURL, data, out); err != nil {
		return err
	}
	if p.Preview {
		return showPreview(sess.Source(), sess.Converted())
	}
	return nil
}

// writeResult saves the converted image to out, which can be the pipe name,
// a directory or a file. The data URL encoding applies to pipes and files only.
func (op *Ops) writeResult(sess *Session, asDataURL bool, data []byte, out string) error {
	if asDataURL {
		url, err := sess.DataURL()
		if err != nil {
			return err
		}
		data = []byte(url)
	}

	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) && !asDataURL {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		_, err := os.Stdout.Write(data)
		return err
	}

	// A directory always receives the PNG file, whatever the output encoding is.
	if fi, err := os.Stat(out); (err == nil && fi.IsDir()) || filepath.Ext(out) == "" {
		_, err := sess.Export(out)
		return err
	}

	if ext := strings.ToLower(filepath.Ext(out)); ext != ".png" && !asDataURL {
		return errors.Errorf("%v file type not supported, the converted image is always a PNG", ext)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return errors.Wrap(err, "unable to create the destination file")
	}
	return nil
}

// openSource opens the source file or the standard input if in is the pipe name.
func (op *Ops) openSource(in string) (io.ReadCloser, error) {
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	}

	ext := strings.ToLower(filepath.Ext(in))
	if ext != "" && !utils.Contains(validExtensions, ext) {
		return nil, errors.Errorf("%v file type not supported", ext)
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open the source file")
	}
	return f, nil
}

// printOpStatus displays the relevant information about the conversion of an image.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText("\nError converting the image:", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("%s\n\tReason: %v", filepath.Base(fname), err), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(os.Stderr, "\nThe image has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each supported image file to a new channel.
// It finishes in case the context is cancelled.
func walkDir(
	ctx context.Context,
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !utils.Contains(srcExts, strings.ToLower(filepath.Ext(d.Name()))) {
				return nil
			}

			select {
			case <-ctx.Done():
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}
