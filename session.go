package tint

import (
	"bytes"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Session is the state of a single interactive conversion: the selected source image,
// the overlay settings and the latest converted image.
//
// Every Load replaces the source and every Convert replaces the converted image.
// Overlapping calls are serialized only while touching the state, so if two
// conversions run at the same time the last one to finish wins.
type Session struct {
	mu        sync.Mutex
	proc      Processor
	source    []byte
	converted []byte
}

// NewSession returns an empty session which converts with a copy of proc.
func NewSession(proc *Processor) *Session {
	s := &Session{}
	if proc != nil {
		s.proc = *proc
	} else {
		s.proc.Params = DefaultParams()
	}
	return s
}

// Load reads a newly selected source image.
// The previous converted image stays available until the next conversion.
func (s *Session) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "unable to read the source image")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(data) == 0 {
		s.source = nil
		return ErrNoImage
	}
	s.source = data
	return nil
}

// HasImage reports whether a source image is selected, i.e. the conversion can be triggered.
func (s *Session) HasImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.source != nil
}

// Source returns the selected source image bytes.
func (s *Session) Source() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.source
}

// SetParams updates the overlay settings used by the next conversion.
func (s *Session) SetParams(p Params) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.proc.Params = p
}

// Params returns the current overlay settings.
func (s *Session) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.proc.Params
}

// Convert converts the selected image with a snapshot of the current settings
// and stores the PNG encoded result as the latest converted image.
func (s *Session) Convert() ([]byte, error) {
	s.mu.Lock()
	source, proc := s.source, s.proc
	s.mu.Unlock()

	if source == nil {
		return nil, ErrNoImage
	}
	res, err := proc.convert(bytes.NewReader(source))
	if err != nil {
		return nil, err
	}
	data, err := EncodePNG(res)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.converted = data
	s.mu.Unlock()

	return data, nil
}

// Converted returns the latest converted image, or nil if nothing was converted yet.
func (s *Session) Converted() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.converted
}

// DataURL returns the latest converted image as a data URL.
func (s *Session) DataURL() (string, error) {
	data := s.Converted()
	if data == nil {
		return "", ErrNothingToExport
	}
	return DataURL(data), nil
}

// Export saves the latest converted image into dir as ExportName.
func (s *Session) Export(dir string) (string, error) {
	return Export(dir, s.Converted())
}
