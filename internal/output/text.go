package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pranshuparmar/conndiag/pkg/model"
)

const wrapWidth = 76

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))            // Dimmed Gray
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22aa22")).Bold(true) // Green
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true) // Soft red
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5f5fd7")).Bold(true) // Purple/Blue
)

type TextRenderer struct {
	w            io.Writer
	colorEnabled bool
}

func NewTextRenderer(w io.Writer, colorEnabled bool) *TextRenderer {
	return &TextRenderer{w: w, colorEnabled: colorEnabled}
}

func (r *TextRenderer) style(s lipgloss.Style, text string) string {
	if !r.colorEnabled {
		return text
	}
	return s.Render(text)
}

func (r *TextRenderer) Attempting(t model.ConnectionTarget) error {
	_, err := fmt.Fprintf(r.w, "%s %s\n%s %d\n",
		r.style(labelStyle, "Target:"), t.Destination,
		r.style(labelStyle, "Target Port:"), t.Port)
	return err
}

func (r *TextRenderer) Outcome(o model.ConnectionOutcome, a *model.Advice) error {
	if o.Connected() {
		_, err := fmt.Fprintf(r.w, "%s to %s. Connection details: remote %s, local %s (%s)\n",
			r.style(successStyle, "Successfully connected"),
			o.Target.Address(), o.RemoteAddr, o.LocalAddr, o.Elapsed.Round(time.Millisecond))
		return err
	}
	if a == nil {
		return nil
	}
	_, err := io.WriteString(r.w, r.diagnosticBlock(*a))
	return err
}

func (r *TextRenderer) diagnosticBlock(a model.Advice) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.style(failureStyle, a.Title))
	b.WriteString("\n")
	b.WriteString(indent.String(wordwrap.String(a.Explanation, wrapWidth), 2))
	b.WriteString("\n")

	list := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(indent.String(r.style(headingStyle, heading), 2))
		b.WriteString("\n")
		for i, item := range items {
			line := wordwrap.String(fmt.Sprintf("%d. %s", i+1, item), wrapWidth-4)
			b.WriteString(indent.String(line, 4))
			b.WriteString("\n")
		}
	}
	list("Possible causes:", a.Causes)
	list("Next steps:", a.NextSteps)
	return b.String()
}
