package runner

import "github.com/aretw0/ccstrace/pkg/domain"

// TraceHandler receives the driver's progress at step boundaries.
// This allows switching between Text and JSON output without touching the loop.
type TraceHandler interface {
	// Start is called once with the initial term.
	Start(initial *domain.Term) error

	// Transition reports the index-th transition (1-based) derived from 'from'.
	Transition(index int, from *domain.Term, tr *domain.Transition) error

	// Cycle reports that revisited was already seen; the driver stops next.
	Cycle(revisited *domain.Term) error

	// Halt is called once with the final result.
	Halt(result *Result) error
}

// NopHandler discards every event.
type NopHandler struct{}

func (NopHandler) Start(*domain.Term) error { return nil }
func (NopHandler) Transition(int, *domain.Term, *domain.Transition) error { return nil }
func (NopHandler) Cycle(*domain.Term) error { return nil }
func (NopHandler) Halt(*Result) error { return nil }

// Styler decorates parts of the text trace, e.g. with terminal colours.
type Styler interface {
	Operation(s string) string
	Term(s string) string
	Notice(s string) string
}

// PlainStyler leaves text untouched.
type PlainStyler struct{}

func (PlainStyler) Operation(s string) string { return s }
func (PlainStyler) Term(s string) string { return s }
func (PlainStyler) Notice(s string) string { return s }
