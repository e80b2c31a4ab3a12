package runtime

import (
	"fmt"

	"github.com/aretw0/ccstrace/pkg/domain"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ActionMap maps every action a term offers to the term left after taking it.
// Iteration follows insertion order.
type ActionMap = orderedmap.OrderedMap[domain.Action, *domain.Term]

// Reachable is the outcome of an exploratory search over a term.
type Reachable struct {
	Actions *ActionMap
	Steps   []domain.Step
}

// ReachableActions collects every action immediately reachable from t without
// committing to a branch.
//
// Restriction is passed through and its channel is not hidden, and recursion is
// unfolded eagerly; neither result is committed. Relabel is refused with
// domain.ErrUnsupported.
func ReachableActions(t *domain.Term) (*Reachable, error) {
	out := &Reachable{Actions: orderedmap.New[domain.Action, *domain.Term]()}

	switch t.Kind() {
	case domain.KindNil, domain.KindName:
		return out, nil

	case domain.KindPrefix:
		out.Actions.Set(t.Action(), t.Body().Clone())
		out.Steps = append(out.Steps, domain.NewStep(domain.OpAction, domain.ActionOperand(t.Action()), t.Body()))
		return out, nil

	case domain.KindRecurse:
		inner, err := ReachableActions(Unfold(t))
		if err != nil {
			return nil, err
		}
		inner.Steps = append(inner.Steps, domain.Step{
			Operation: domain.OpRecurse,
			Operand:   domain.NoOperand(),
			Result:    "Compose does not apply recursions",
		})
		return inner, nil

	case domain.KindRestrict:
		inner, err := ReachableActions(t.Body())
		if err != nil {
			return nil, err
		}
		inner.Steps = append(inner.Steps, domain.Step{
			Operation: domain.OpRestrict,
			Operand:   domain.NoOperand(),
			Result:    "Compose ignores restrictions",
		})
		return inner, nil

	case domain.KindRelabel:
		return nil, fmt.Errorf("%w: relabeling inside synchronization: %s", domain.ErrUnsupported, t)

	case domain.KindCompose:
		left, err := ReachableActions(t.Left())
		if err != nil {
			return nil, err
		}
		for pair := left.Actions.Oldest(); pair != nil; pair = pair.Next() {
			out.Actions.Set(pair.Key, domain.Compose(pair.Value, t.Right().Clone()))
		}
		out.Steps = append(out.Steps, left.Steps...)
		out.Steps = append(out.Steps, domain.NewStep(domain.OpParallel, domain.LeftOperand(), t.Left()))

		right, err := ReachableActions(t.Right())
		if err != nil {
			return nil, err
		}
		for pair := right.Actions.Oldest(); pair != nil; pair = pair.Next() {
			out.Actions.Set(pair.Key, domain.Compose(t.Left().Clone(), pair.Value))
		}
		out.Steps = append(out.Steps, right.Steps...)
		out.Steps = append(out.Steps, domain.NewStep(domain.OpParallel, domain.RightOperand(), t.Right()))
		return out, nil

	case domain.KindChoice:
		left, err := ReachableActions(t.Left())
		if err != nil {
			return nil, err
		}
		for pair := left.Actions.Oldest(); pair != nil; pair = pair.Next() {
			out.Actions.Set(pair.Key, pair.Value)
		}
		out.Steps = append(out.Steps, left.Steps...)
		out.Steps = append(out.Steps, domain.NewStep(domain.OpChoice, domain.LeftOperand(), t.Left()))

		right, err := ReachableActions(t.Right())
		if err != nil {
			return nil, err
		}
		for pair := right.Actions.Oldest(); pair != nil; pair = pair.Next() {
			out.Actions.Set(pair.Key, pair.Value)
		}
		out.Steps = append(out.Steps, right.Steps...)
		out.Steps = append(out.Steps, domain.NewStep(domain.OpChoice, domain.RightOperand(), t.Right()))
		return out, nil
	}

	panic("runtime: unknown term kind " + t.Kind().String())
}

// FindSync looks for a silent move between left and right composed in
// parallel. It commits to the first action of left, in insertion order, whose
// complement right offers. A nil transition means no synchronization exists.
func FindSync(left, right *domain.Term) (*domain.Transition, error) {
	l, err := ReachableActions(left)
	if err != nil {
		return nil, err
	}
	r, err := ReachableActions(right)
	if err != nil {
		return nil, err
	}

	for pair := l.Actions.Oldest(); pair != nil; pair = pair.Next() {
		partner, ok := r.Actions.Get(pair.Key.Complement())
		if !ok {
			continue
		}

		channel := pair.Key.Channel()
		result := domain.Compose(pair.Value, partner)

		steps := make([]domain.Step, 0, len(l.Steps)+len(r.Steps)+3)
		steps = append(steps, l.Steps...)
		steps = append(steps, domain.NewStep(domain.OpBoundary, domain.LeftOperand(), left))
		steps = append(steps, r.Steps...)
		steps = append(steps, domain.NewStep(domain.OpBoundary, domain.RightOperand(), right))
		steps = append(steps, domain.NewStep(domain.OpCompose, domain.SyncOperand(channel), result))

		return &domain.Transition{
			Steps:  steps,
			Result: result,
			Label:  domain.SilentLabel(channel),
		}, nil
	}

	return nil, nil
}
