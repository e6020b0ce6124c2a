package server

import (
	"errors"
	"github.com/The-PhoenixOS/frameworks-native/gestures"
	"github.com/The-PhoenixOS/frameworks-native/trace"
	"github.com/matryer/is"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"strings"
	"testing"
)

var (
	errDiskFull = errors.New("disk full")
	errClose    = errors.New("close failed")
)

type failingFile struct {
	failing bool
}

func (f *failingFile) Write(p []byte) (int, error) {
	if f.failing {
		return 0, errDiskFull
	}

	return len(p), nil
}

func (f *failingFile) Close() error {
	return errClose
}

func TestServer_RecordFailure(t *testing.T) {
	is := is.New(t)

	core, logs := observer.New(zapcore.ErrorLevel)

	s, err := New(zap.New(core).Sugar(), testConfig())
	is.NoErr(err)
	defer s.Close()

	f := &failingFile{}
	s.recorder, err = trace.NewWriteCloser(f)
	is.NoErr(err)
	f.failing = true

	event := gestures.Event{DeviceID: 1, Gesture: gestures.Move{DX: 1}}

	out, err := s.HandleEvent(event)
	is.NoErr(err)
	is.Equal(len(out), 1)
	is.True(s.recorder == nil) // recording stopped

	stopped := logs.FilterMessageSnippet("Recording stopped").All()
	is.Equal(len(stopped), 1)
	is.True(strings.Contains(stopped[0].Message, errDiskFull.Error()))
	is.True(strings.Contains(stopped[0].Message, errClose.Error()))

	// Conversion continues without the recorder
	out, err = s.HandleEvent(event)
	is.NoErr(err)
	is.Equal(len(out), 1)
}
