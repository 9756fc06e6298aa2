package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/pranshuparmar/conndiag/pkg/model"
)

type report struct {
	model.ConnectionOutcome
	Advice *model.Advice `json:"advice,omitempty"`
}

func ToJSON(o model.ConnectionOutcome, a *model.Advice) (string, error) {
	data, err := json.MarshalIndent(report{ConnectionOutcome: o, Advice: a}, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding outcome")
	}
	return string(data), nil
}

// JSONRenderer prints a single object once the attempt is over.
type JSONRenderer struct {
	w io.Writer
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w}
}

func (r *JSONRenderer) Attempting(model.ConnectionTarget) error {
	return nil
}

func (r *JSONRenderer) Outcome(o model.ConnectionOutcome, a *model.Advice) error {
	s, err := ToJSON(o, a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, s)
	return err
}
