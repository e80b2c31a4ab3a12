package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/ccstrace/pkg/domain"
)

const transitionRule = "##################################################################"

// TextHandler prints the human-readable trace: one block per transition
// followed by its derivation, root first.
type TextHandler struct {
	Writer io.Writer
	Styler Styler
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithStyler configures the colouring applied to the trace.
func WithStyler(s Styler) TextHandlerOption {
	return func(h *TextHandler) {
		h.Styler = s
	}
}

// NewTextHandler creates a handler writing to w (Stdout when nil).
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: w, Styler: PlainStyler{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Start(*domain.Term) error { return nil }

func (h *TextHandler) Transition(_ int, from *domain.Term, tr *domain.Transition) error {
	var b strings.Builder
	fmt.Fprintln(&b, transitionRule)
	fmt.Fprintf(&b, "Trans: %s -> %s\n", h.Styler.Term(from.String()), h.Styler.Term(tr.Result.String()))

	// A boundary closes the group of steps gathered by one side of a
	// synchronization; numbering restarts and later steps are indented.
	tab, i := "", 0
	for _, s := range tr.Derivation() {
		if s.IsBoundary() {
			fmt.Fprintf(&b, "---\n--- %s: %s ---\n\n", s.Operand, h.Styler.Term(s.Result))
			tab, i = "\t", 0
			continue
		}
		fmt.Fprintf(&b, "%s%d | %s: %s \t-> %s\n", tab, i, h.Styler.Operation(s.Operation), s.Operand, h.Styler.Term(s.Result))
		i++
	}
	fmt.Fprintln(&b, "#")

	_, err := io.WriteString(h.Writer, b.String())
	return err
}

func (h *TextHandler) Cycle(*domain.Term) error {
	_, err := fmt.Fprintln(h.Writer, h.Styler.Notice("Cycle found: terminating"))
	return err
}

func (h *TextHandler) Halt(result *Result) error {
	_, err := fmt.Fprintf(h.Writer, "CCS-process terminated in %d transition(s)\n", result.Transitions)
	return err
}

