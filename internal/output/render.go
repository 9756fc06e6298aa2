// Package output renders the attempt and its outcome for the terminal.
package output

import (
	"io"

	"github.com/pkg/errors"

	"github.com/pranshuparmar/conndiag/pkg/model"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Renderer interface {
	// Attempting is called once, before the dial starts.
	Attempting(t model.ConnectionTarget) error
	// Outcome is called once with the result; a is nil on success.
	Outcome(o model.ConnectionOutcome, a *model.Advice) error
}

func New(format string, w io.Writer, colorEnabled bool) (Renderer, error) {
	switch format {
	case FormatText, "":
		return NewTextRenderer(w, colorEnabled), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	}
	return nil, errors.Errorf("unknown output format %q", format)
}
