package domain

import "encoding/json"

// Operation tags recorded in a trace. An empty operation marks the boundary of
// a synchronization sub-search.
const (
	OpAction    = "Action"
	OpChoice    = "Choice"
	OpParallel  = "Parallel"
	OpCompose   = "Compose"
	OpRecurse   = "Recurse"
	OpRecurseOn = "Recurse on"
	OpRestrict  = "Restrict"
	OpBoundary  = ""
)

// OperandKind tells which field of an Operand is meaningful.
type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandAction
	OperandLeft
	OperandRight
	OperandSync
	OperandBound
)

// Operand is the detail attached to a Step: the action fired, the branch
// taken, the channel synchronized on or the bound variable.
type Operand struct {
	Kind   OperandKind
	Action Action
	Name   string // channel for OperandSync, variable for OperandBound
}

// ActionOperand records the concrete action fired by a prefix.
func ActionOperand(a Action) Operand { return Operand{Kind: OperandAction, Action: a} }

// LeftOperand marks the left branch of a Choice or Compose.
func LeftOperand() Operand { return Operand{Kind: OperandLeft} }

// RightOperand marks the right branch of a Choice or Compose.
func RightOperand() Operand { return Operand{Kind: OperandRight} }

// SyncOperand records the channel two parallel components synchronized on.
func SyncOperand(channel string) Operand { return Operand{Kind: OperandSync, Name: channel} }

// BoundOperand records the variable a recursion was unfolded on.
func BoundOperand(name string) Operand { return Operand{Kind: OperandBound, Name: name} }

// NoOperand is the empty operand.
func NoOperand() Operand { return Operand{} }

func (o Operand) String() string {
	switch o.Kind {
	case OperandAction:
		return o.Action.Describe()
	case OperandLeft:
		return "Left"
	case OperandRight:
		return "Right"
	case OperandSync:
		return "Sync on " + o.Name
	case OperandBound:
		return o.Name
	default:
		return ""
	}
}

// MarshalJSON encodes the operand as its trace notation.
func (o Operand) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Step is a single derivation step inside a transition.
type Step struct {
	// Operation such as Action, Choice, Parallel, Compose.
	Operation string `json:"operation"`
	// Operand qualifies the operation, e.g. which side of a Choice was taken.
	Operand Operand `json:"operand"`
	// Result is the rendered term the step produced or inspected.
	Result string `json:"result"`
}

// NewStep builds a step from a term, rendering it eagerly.
func NewStep(operation string, operand Operand, t *Term) Step {
	return Step{Operation: operation, Operand: operand, Result: t.String()}
}

// IsBoundary reports whether the step opens a synchronization sub-search group.
func (s Step) IsBoundary() bool {
	return s.Operation == OpBoundary
}

// Label is the observable outcome of a transition: a visible action or a
// silent synchronization on a channel.
type Label struct {
	Silent  bool   `json:"silent"`
	Action  Action `json:"-"`
	Channel string `json:"channel"`
}

// VisibleLabel labels a fired prefix.
func VisibleLabel(a Action) Label {
	return Label{Action: a, Channel: a.Channel()}
}

// SilentLabel labels a synchronization on channel.
func SilentLabel(channel string) Label {
	return Label{Silent: true, Channel: channel}
}

// MarshalJSON adds the action in source notation, so "a" and "!a" stay distinct.
func (l Label) MarshalJSON() ([]byte, error) {
	type wire struct {
		Silent  bool   `json:"silent"`
		Channel string `json:"channel"`
		Action  string `json:"action,omitempty"`
	}
	w := wire{Silent: l.Silent, Channel: l.Channel}
	if !l.Silent {
		w.Action = l.Action.String()
	}
	return json.Marshal(w)
}

func (l Label) String() string {
	if l.Silent {
		return "τ(" + l.Channel + ")"
	}
	return l.Action.String()
}

// Transition is one step of the transition relation.
// Steps are ordered leaf first; reverse them for root-to-leaf display.
type Transition struct {
	Steps  []Step
	Result *Term
	Label  Label
}

// Push appends the caller's own step and returns t.
func (t *Transition) Push(s Step) *Transition {
	t.Steps = append(t.Steps, s)
	return t
}

// Derivation returns the steps in root-to-leaf order.
func (t *Transition) Derivation() []Step {
	out := make([]Step, len(t.Steps))
	for i, s := range t.Steps {
		out[len(t.Steps)-1-i] = s
	}
	return out
}
