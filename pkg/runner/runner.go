package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/ccstrace/internal/logging"
	"github.com/aretw0/ccstrace/internal/runtime"
	"github.com/aretw0/ccstrace/pkg/domain"
)

// Stepper derives one transition from a term, or nil when it cannot move.
type Stepper interface {
	Step(t *domain.Term) (*domain.Transition, error)
}

// Result summarizes a finished trace.
type Result struct {
	Reason      domain.HaltReason
	Transitions int

	// Final is the driver's current term when it stopped. On a cycle it is the
	// term whose transition led back into the visited set.
	Final *domain.Term

	// Revisited is the term that closed the cycle, nil otherwise.
	Revisited *domain.Term

	// History lists the distinct terms visited, initial term first.
	History []*domain.Term

	// Labels[i] is the label of the transition leaving History[i].
	Labels []domain.Label
}

// Runner drives the transition engine from an initial term until no
// transition exists or a previously visited term recurs.
//
// Revisit detection is syntactic: equivalent but different terms are not
// recognized, so unguarded recursion that keeps producing new terms never stops.
type Runner struct {
	// Handler receives the trace. Defaults to a TextHandler on Stdout.
	Handler TraceHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Hooks are invoked after each transition and on halt.
	Hooks domain.LifecycleHooks

	stepper Stepper
}

// NewRunner creates a Runner backed by the default transition engine.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdout)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	if r.stepper == nil {
		r.stepper = runtime.NewEngine()
	}
	return r
}

// Run traces initial to completion. An error from the engine (such as
// domain.ErrUnsupported) or from the handler aborts the run.
func (r *Runner) Run(initial *domain.Term) (*Result, error) {
	state := domain.NewState(initial)
	var revisited *domain.Term

	r.Logger.Info("trace started", "term", initial.String())
	if err := r.Handler.Start(initial); err != nil {
		return nil, fmt.Errorf("handler start: %w", err)
	}

	for state.Status == domain.StatusRunning {
		tr, err := r.stepper.Step(state.Current)
		if err != nil {
			return nil, fmt.Errorf("transition %d from %s: %w", state.Transitions+1, state.Current, err)
		}
		if tr == nil {
			state.Halt(domain.HaltNoTransition)
			break
		}

		state.Transitions++
		state.Labels = append(state.Labels, tr.Label)
		r.logDerivation(state.Transitions, tr)

		if err := r.Handler.Transition(state.Transitions, state.Current, tr); err != nil {
			return nil, fmt.Errorf("handler transition: %w", err)
		}
		if r.Hooks.OnTransition != nil {
			r.Hooks.OnTransition(&domain.TransitionEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition},
				Index:     state.Transitions,
				From:      state.Current.String(),
				To:        tr.Result.String(),
				Label:     tr.Label,
				Steps:     len(tr.Steps),
			})
		}

		// A duplicate in visited means recursion brought us back: stop without advancing.
		if state.Seen(tr.Result) {
			revisited = tr.Result
			if err := r.Handler.Cycle(tr.Result); err != nil {
				return nil, fmt.Errorf("handler cycle: %w", err)
			}
			state.Halt(domain.HaltCycle)
			break
		}

		state.Advance(tr.Result)
	}

	result := &Result{
		Reason:      state.Reason,
		Transitions: state.Transitions,
		Final:       state.Current,
		Revisited:   revisited,
		History:     state.History,
		Labels:      state.Labels,
	}

	r.Logger.Info("trace halted", "reason", result.Reason, "transitions", result.Transitions)
	if r.Hooks.OnHalt != nil {
		r.Hooks.OnHalt(&domain.HaltEvent{
			EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventHalt},
			Reason:      result.Reason,
			Transitions: result.Transitions,
			Final:       result.Final.String(),
		})
	}
	if err := r.Handler.Halt(result); err != nil {
		return nil, fmt.Errorf("handler halt: %w", err)
	}
	return result, nil
}

func (r *Runner) logDerivation(index int, tr *domain.Transition) {
	r.Logger.Debug("transition derived", "index", index, "label", tr.Label.String(), "steps", len(tr.Steps))

	ctx := context.Background()
	if !r.Logger.Enabled(ctx, logging.LevelTrace) {
		return
	}
	for i, s := range tr.Derivation() {
		r.Logger.Log(ctx, logging.LevelTrace, "derivation step",
			"index", index, "step", i, "operation", s.Operation, "operand", s.Operand.String(), "result", s.Result)
	}
}
