package runtime

import "github.com/aretw0/ccstrace/pkg/domain"

// Substitute returns a deep copy of t in which every Name(name) leaf is
// replaced by a copy of replacement.
//
// Nested Recurse nodes are walked too, even when they rebind name: inner
// binders are not treated as shadowing.
func Substitute(t *domain.Term, name string, replacement *domain.Term) *domain.Term {
	switch t.Kind() {
	case domain.KindName:
		if t.Name() == name {
			return replacement.Clone()
		}
		return domain.Name(t.Name())
	case domain.KindNil:
		return domain.Nil()
	case domain.KindPrefix:
		return domain.Prefix(t.Action(), Substitute(t.Body(), name, replacement))
	case domain.KindChoice:
		return domain.Choice(Substitute(t.Left(), name, replacement), Substitute(t.Right(), name, replacement))
	case domain.KindCompose:
		return domain.Compose(Substitute(t.Left(), name, replacement), Substitute(t.Right(), name, replacement))
	case domain.KindRestrict:
		return domain.Restrict(Substitute(t.Body(), name, replacement), t.Action())
	case domain.KindRelabel:
		return domain.Relabel(Substitute(t.Body(), name, replacement), t.Mapping())
	case domain.KindRecurse:
		return domain.Recurse(t.Name(), Substitute(t.Body(), name, replacement))
	}
	panic("runtime: unknown term kind " + t.Kind().String())
}

// Unfold returns the body of a Recurse term with its bound variable replaced
// by the term itself.
func Unfold(rec *domain.Term) *domain.Term {
	return Substitute(rec.Body(), rec.Name(), rec)
}
