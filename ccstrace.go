package ccstrace

import (
	"io"
	"log/slog"

	"github.com/aretw0/ccstrace/internal/compiler"
	"github.com/aretw0/ccstrace/internal/logging"
	"github.com/aretw0/ccstrace/pkg/domain"
	"github.com/aretw0/ccstrace/pkg/runner"
)

// Version is the release of the library and CLI. Overridden at build time
// with -ldflags "-X github.com/aretw0/ccstrace.Version=...".
var Version = "v0.1.0"

// DefaultExample is traced when no input is given.
const DefaultExample = "(α.nil + β.nil) | (!α.nil + γ.nil)"

// Tracer is the high-level entry point for the ccstrace library.
// It wires the parser, the transition engine and the trace driver together.
type Tracer struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	parser *compiler.Parser
}

// Option defines a functional option for configuring the Tracer.
type Option func(*Tracer)

// WithLogger configures the structured logger used by parser and driver.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracer) {
		t.logger = logger
	}
}

// WithHooks registers observability hooks. Repeated calls are merged.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(t *Tracer) {
		t.hooks = t.hooks.Merge(hooks)
	}
}

// New creates a Tracer.
func New(opts ...Option) *Tracer {
	t := &Tracer{}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	t.parser = compiler.NewParser(compiler.WithLogger(t.logger))
	return t
}

// Parse reads a CCS term from src. Blank lines and lines starting with "//"
// are skipped; only the first remaining line is parsed.
func (t *Tracer) Parse(src string) (*domain.Term, error) {
	return t.parser.ParseSource(src)
}

// Run traces term to completion, reporting to handler. A nil handler prints
// the text trace to Stdout.
func (t *Tracer) Run(term *domain.Term, handler runner.TraceHandler) (*runner.Result, error) {
	r := runner.NewRunner(
		runner.WithHandler(handler),
		runner.WithLogger(t.logger),
		runner.WithHooks(t.hooks),
	)
	return r.Run(term)
}

// TraceSource parses src and writes the classic text trace to w.
func (t *Tracer) TraceSource(src string, w io.Writer) (*runner.Result, error) {
	term, err := t.Parse(src)
	if err != nil {
		return nil, err
	}
	return t.Run(term, runner.NewTextHandler(w))
}
