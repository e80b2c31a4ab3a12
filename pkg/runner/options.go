package runner

import (
	"log/slog"

	"github.com/aretw0/ccstrace/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithHandler configures where the trace goes.
func WithHandler(handler TraceHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithHooks registers observability hooks. Repeated calls are merged.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = r.Hooks.Merge(hooks)
	}
}

// WithStepper replaces the transition engine, mainly for tests.
func WithStepper(s Stepper) Option {
	return func(r *Runner) {
		r.stepper = s
	}
}
