// Package trace records gesture events to lz4 compressed files and reads them back.
//
// A trace is an lz4 frame holding a header object followed by one JSON encoded gestures.Event per line.
package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/The-PhoenixOS/frameworks-native/gestures"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/multierr"
	"io"
	"os"
)

const Version = 1

var ErrVersion = errors.New("unsupported trace version")

type header struct {
	Version int `json:"version"`
}

type Writer struct {
	closer io.Closer
	lz4    *lz4.Writer
	enc    *json.Encoder
	count  int
}

// Create creates or truncates the trace file at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return NewWriteCloser(f)
}

// NewWriteCloser starts a trace on w. Closing the returned writer closes w, as does a failure to start.
func NewWriteCloser(w io.WriteCloser) (*Writer, error) {
	tw, err := newWriter(w, w)
	if err != nil {
		return nil, multierr.Append(err, w.Close())
	}

	return tw, nil
}

// NewWriter starts a trace on w. Closing the returned writer does not close w.
func NewWriter(w io.Writer) (*Writer, error) {
	return newWriter(w, nil)
}

func newWriter(w io.Writer, closer io.Closer) (*Writer, error) {
	zw := lz4.NewWriter(w)

	tw := &Writer{
		closer: closer,
		lz4:    zw,
		enc:    json.NewEncoder(zw),
	}

	if err := tw.enc.Encode(header{Version: Version}); err != nil {
		return nil, fmt.Errorf("writing trace header: %w", err)
	}

	return tw, nil
}

func (w *Writer) Write(event gestures.Event) error {
	if err := w.enc.Encode(event); err != nil {
		return err
	}

	w.count++
	return nil
}

// Count returns the number of events written.
func (w *Writer) Count() int {
	return w.count
}

// Flush compresses and writes any buffered events.
func (w *Writer) Flush() error {
	return w.lz4.Flush()
}

func (w *Writer) Close() error {
	err := w.lz4.Close()

	if w.closer != nil {
		err = multierr.Append(err, w.closer.Close())
	}

	return err
}

type Reader struct {
	closer io.Closer
	dec    *json.Decoder
}

func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := newReader(f, f)
	if err != nil {
		return nil, multierr.Append(err, f.Close())
	}

	return r, nil
}

// NewReader validates the trace header read from r.
func NewReader(r io.Reader) (*Reader, error) {
	return newReader(r, nil)
}

func newReader(r io.Reader, closer io.Closer) (*Reader, error) {
	dec := json.NewDecoder(lz4.NewReader(r))

	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("reading trace header: %w", err)
	}

	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}

	return &Reader{
		closer: closer,
		dec:    dec,
	}, nil
}

// Next returns the next event. io.EOF is returned once the trace is exhausted.
func (r *Reader) Next() (gestures.Event, error) {
	var event gestures.Event

	if err := r.dec.Decode(&event); err != nil {
		return gestures.Event{}, err
	}

	return event, nil
}

// ReadAll returns the remaining events.
func (r *Reader) ReadAll() ([]gestures.Event, error) {
	var events []gestures.Event

	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		} else if err != nil {
			return events, err
		}

		events = append(events, event)
	}
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}

	return r.closer.Close()
}
