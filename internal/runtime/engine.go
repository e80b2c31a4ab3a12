package runtime

import "github.com/aretw0/ccstrace/pkg/domain"

// Step derives a single transition of t under ctx.
//
// The policy is first-found: synchronization beats interleaving, left beats
// right, and Choice only looks at its right branch when the left one cannot
// move. A nil transition with a nil error means t has no transition. The only
// error is domain.ErrUnsupported, which aborts the derivation.
//
// Step is pure: the same arguments always produce the same transition, and
// the returned term never aliases t.
func Step(t *domain.Term, ctx domain.Context) (*domain.Transition, error) {
	if t.IsTerminal() {
		return nil, nil
	}

	switch t.Kind() {
	case domain.KindRecurse:
		// Substitution is deferred until the body has moved, which keeps
		// unfoldable terms finite between steps.
		tr, err := Step(t.Body(), ctx)
		if tr == nil || err != nil {
			return nil, err
		}
		tr.Result = Substitute(tr.Result, t.Name(), t)
		return tr.Push(domain.NewStep(domain.OpRecurseOn, domain.BoundOperand(t.Name()), tr.Result)), nil

	case domain.KindRestrict:
		tr, err := Step(t.Body(), ctx.WithRestricted(t.Action().Channel()))
		if tr == nil || err != nil {
			return nil, err
		}
		tr.Result = domain.Restrict(tr.Result, t.Action())
		return tr, nil

	case domain.KindRelabel:
		tr, err := Step(t.Body(), ctx.WithRelabeling(t.Mapping()))
		if tr == nil || err != nil {
			return nil, err
		}
		tr.Result = domain.Relabel(tr.Result, t.Mapping())
		return tr, nil

	case domain.KindCompose:
		tr, err := FindSync(t.Left(), t.Right())
		if tr != nil || err != nil {
			return tr, err
		}
		return parallel(t.Left(), t.Right(), ctx)

	case domain.KindChoice:
		tr, err := Step(t.Left(), ctx)
		if err != nil {
			return nil, err
		}
		if tr != nil {
			return tr.Push(domain.NewStep(domain.OpChoice, domain.LeftOperand(), t.Left())), nil
		}
		tr, err = Step(t.Right(), ctx)
		if tr == nil || err != nil {
			return nil, err
		}
		return tr.Push(domain.NewStep(domain.OpChoice, domain.RightOperand(), t.Right())), nil

	case domain.KindPrefix:
		channel := ctx.Resolve(t.Action().Channel())
		if ctx.IsRestricted(channel) {
			return nil, nil
		}
		fired := t.Action().Renamed(channel)
		return &domain.Transition{
			Steps:  []domain.Step{domain.NewStep(domain.OpAction, domain.ActionOperand(fired), t.Body())},
			Result: t.Body().Clone(),
			Label:  domain.VisibleLabel(fired),
		}, nil
	}

	panic("runtime: unknown term kind " + t.Kind().String())
}

// parallel interleaves a move of left, or failing that of right.
func parallel(left, right *domain.Term, ctx domain.Context) (*domain.Transition, error) {
	tr, err := Step(left, ctx)
	if err != nil {
		return nil, err
	}
	if tr != nil {
		tr.Result = domain.Compose(tr.Result, right.Clone())
		return tr.Push(domain.NewStep(domain.OpParallel, domain.LeftOperand(), left)), nil
	}

	tr, err = Step(right, ctx)
	if tr == nil || err != nil {
		return nil, err
	}
	tr.Result = domain.Compose(left.Clone(), tr.Result)
	return tr.Push(domain.NewStep(domain.OpParallel, domain.RightOperand(), right)), nil
}

// Engine adapts Step to the runner's Stepper interface.
type Engine struct{}

// NewEngine creates a transition engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Step derives a transition from t, starting from an empty context.
func (e *Engine) Step(t *domain.Term) (*domain.Transition, error) {
	return Step(t, domain.EmptyContext())
}
