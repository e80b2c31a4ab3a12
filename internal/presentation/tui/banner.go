package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the program name and version, coloured when w supports it.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	name := out.String("ccstrace").Foreground(out.Color("#c084fc")).Bold()
	fmt.Fprintf(w, "%s %s\n", name, out.String(version).Foreground(out.Color("#818cf8")))
	fmt.Fprintln(w, "Calculus of Communicating Systems transition tracer")
}
