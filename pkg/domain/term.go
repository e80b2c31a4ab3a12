package domain

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Kind tags the variant held by a Term.
type Kind uint8

const (
	KindNil Kind = iota
	KindName
	KindPrefix
	KindChoice
	KindCompose
	KindRestrict
	KindRelabel
	KindRecurse
)

var kindNames = [...]string{
	KindNil:      "Nil",
	KindName:     "Name",
	KindPrefix:   "Prefix",
	KindChoice:   "Choice",
	KindCompose:  "Compose",
	KindRestrict: "Restrict",
	KindRelabel:  "Relabel",
	KindRecurse:  "Recurse",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Term is a CCS process. It is an immutable tagged union: which fields are
// meaningful depends on Kind, and every composite exclusively owns its children.
// Build terms with the constructors below; transformations return new terms.
type Term struct {
	kind    Kind
	name    string // Name id, Recurse bound variable
	action  Action // Prefix action, Restrict action
	left    *Term  // Prefix continuation, unary body, binary left side
	right   *Term  // binary right side
	mapping Relabeling
}

// Nil is the process with no behaviour.
func Nil() *Term {
	return &Term{kind: KindNil}
}

// Name references a recursion-bound variable.
func Name(id string) *Term {
	return &Term{kind: KindName, name: id}
}

// Prefix performs action and continues as continuation.
func Prefix(action Action, continuation *Term) *Term {
	return &Term{kind: KindPrefix, action: action, left: continuation}
}

// Choice behaves as either left or right.
func Choice(left, right *Term) *Term {
	return &Term{kind: KindChoice, left: left, right: right}
}

// Compose runs left and right in parallel.
func Compose(left, right *Term) *Term {
	return &Term{kind: KindCompose, left: left, right: right}
}

// Restrict hides the channel of action inside body.
func Restrict(body *Term, action Action) *Term {
	return &Term{kind: KindRestrict, action: action, left: body}
}

// Relabel renames channels inside body according to mapping.
func Relabel(body *Term, mapping Relabeling) *Term {
	return &Term{kind: KindRelabel, mapping: mapping, left: body}
}

// Recurse binds bound to the whole term inside body.
func Recurse(bound string, body *Term) *Term {
	return &Term{kind: KindRecurse, name: bound, left: body}
}

// Kind returns the variant tag.
func (t *Term) Kind() Kind { return t.kind }

// Name returns the identifier of a Name term or the bound variable of a Recurse term.
func (t *Term) Name() string { return t.name }

// Action returns the action of a Prefix or Restrict term.
func (t *Term) Action() Action { return t.action }

// Body returns the single child of Prefix, Restrict, Relabel and Recurse terms.
func (t *Term) Body() *Term { return t.left }

// Left returns the left side of a Choice or Compose term.
func (t *Term) Left() *Term { return t.left }

// Right returns the right side of a Choice or Compose term.
func (t *Term) Right() *Term { return t.right }

// Mapping returns the relabeling of a Relabel term.
func (t *Term) Mapping() Relabeling { return t.mapping.clone() }

// IsTerminal reports whether the term can never move by itself (Nil or a free Name).
func (t *Term) IsTerminal() bool {
	return t.kind == KindNil || t.kind == KindName
}

// Clone returns a deep copy of t.
func (t *Term) Clone() *Term {
	if t == nil {
		return nil
	}
	out := &Term{
		kind:    t.kind,
		name:    t.name,
		action:  t.action,
		mapping: t.mapping.clone(),
	}
	out.left = t.left.Clone()
	out.right = t.right.Clone()
	return out
}

// Equal reports structural equality.
func (t *Term) Equal(other *Term) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.kind != other.kind || t.name != other.name || t.action != other.action {
		return false
	}
	if t.kind == KindRelabel && !t.mapping.Equal(other.mapping) {
		return false
	}
	return t.left.Equal(other.left) && t.right.Equal(other.right)
}

// Key returns a canonical, unambiguous identity string. Two terms have the same
// key exactly when they are structurally equal.
func (t *Term) Key() string {
	var sb strings.Builder
	t.writeKey(&sb)
	return sb.String()
}

func (t *Term) writeKey(sb *strings.Builder) {
	switch t.kind {
	case KindNil:
		sb.WriteString("0")
	case KindName:
		sb.WriteString("N:")
		sb.WriteString(t.name)
		sb.WriteByte(';')
	case KindPrefix:
		sb.WriteString("P:")
		sb.WriteString(t.action.String())
		sb.WriteByte(';')
		t.left.writeKey(sb)
	case KindChoice, KindCompose:
		if t.kind == KindChoice {
			sb.WriteString("+(")
		} else {
			sb.WriteString("|(")
		}
		t.left.writeKey(sb)
		sb.WriteByte(',')
		t.right.writeKey(sb)
		sb.WriteByte(')')
	case KindRestrict:
		sb.WriteString("\\(")
		sb.WriteString(t.action.String())
		sb.WriteByte(';')
		t.left.writeKey(sb)
		sb.WriteByte(')')
	case KindRelabel:
		sb.WriteString("[(")
		sb.WriteString(t.mapping.key())
		sb.WriteByte(';')
		t.left.writeKey(sb)
		sb.WriteByte(')')
	case KindRecurse:
		sb.WriteString("R:")
		sb.WriteString(t.name)
		sb.WriteString(".(")
		t.left.writeKey(sb)
		sb.WriteByte(')')
	}
}

// Hash returns a stable 64-bit hash of the canonical key.
func (t *Term) Hash() uint64 {
	return xxhash.Sum64String(t.Key())
}
