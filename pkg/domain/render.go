package domain

import "strings"

// Binding strength of each construct, loosest first. A child is parenthesized
// when it binds looser than its position requires.
const (
	bindBinary = iota + 1
	bindRestrict
	bindRelabel
	bindRecurse
	bindPrefix
	bindAtom
)

func (t *Term) binding() int {
	switch t.kind {
	case KindChoice, KindCompose:
		return bindBinary
	case KindRestrict:
		return bindRestrict
	case KindRelabel:
		return bindRelabel
	case KindRecurse:
		return bindRecurse
	case KindPrefix:
		return bindPrefix
	default:
		return bindAtom
	}
}

// String renders canonical infix text, e.g. "(α.nil + β.nil) | (!α.nil + γ.nil)".
// The output parses back to an equal term.
func (t *Term) String() string {
	if t == nil {
		return "<nil>"
	}
	var sb strings.Builder
	t.render(&sb, 0)
	return sb.String()
}

func (t *Term) render(sb *strings.Builder, min int) {
	wrap := t.binding() < min
	if wrap {
		sb.WriteByte('(')
	}

	switch t.kind {
	case KindNil:
		sb.WriteString("nil")
	case KindName:
		sb.WriteString(t.name)
	case KindPrefix:
		sb.WriteString(t.action.String())
		sb.WriteByte('.')
		t.left.render(sb, bindPrefix)
	case KindChoice, KindCompose:
		// Mixed + and | chains are parenthesized for readability.
		leftMin := bindBinary
		if t.left.binding() == bindBinary && t.left.kind != t.kind {
			leftMin = bindBinary + 1
		}
		t.left.render(sb, leftMin)
		if t.kind == KindChoice {
			sb.WriteString(" + ")
		} else {
			sb.WriteString(" | ")
		}
		// Binary operators are left-associative.
		t.right.render(sb, bindBinary+1)
	case KindRestrict:
		t.left.render(sb, bindRestrict)
		sb.WriteByte('\\')
		sb.WriteString(t.action.String())
	case KindRelabel:
		t.left.render(sb, bindRelabel)
		sb.WriteString(t.mapping.String())
	case KindRecurse:
		sb.WriteString("_rec ")
		sb.WriteString(t.name)
		sb.WriteByte('.')
		t.left.render(sb, bindRecurse)
	}

	if wrap {
		sb.WriteByte(')')
	}
}
