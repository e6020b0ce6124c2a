package cmd

import (
	"encoding/json"
	"fmt"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"io"
)

type printer struct {
	w   io.Writer
	enc *json.Encoder
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case formatText:
		return &printer{w: w}, nil
	case formatJSON:
		return &printer{w: w, enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func (p *printer) print(args motion.NotifyMotionArgs) error {
	if p.enc != nil {
		return p.enc.Encode(args)
	}

	_, err := fmt.Fprintln(p.w, args)
	return err
}
