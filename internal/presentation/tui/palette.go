package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Color modes accepted by NewPalette.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Palette colours the text trace. It satisfies runner.Styler.
type Palette struct {
	output *termenv.Output
}

// NewPalette creates a palette for w. In auto mode colours are only used when
// w is a terminal that supports them.
func NewPalette(w io.Writer, mode string) *Palette {
	var opts []termenv.OutputOption
	switch mode {
	case ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI256))
	case ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Palette{output: termenv.NewOutput(w, opts...)}
}

// Enabled reports whether the palette emits escape codes.
func (p *Palette) Enabled() bool {
	return p.output.Profile != termenv.Ascii
}

func (p *Palette) Operation(s string) string {
	return p.output.String(s).Foreground(p.output.Color("#a78bfa")).Bold().String()
}

func (p *Palette) Term(s string) string {
	return p.output.String(s).Foreground(p.output.Color("#818cf8")).String()
}

func (p *Palette) Notice(s string) string {
	return p.output.String(s).Foreground(p.output.Color("#fb7185")).String()
}
