package dsl

import "github.com/aretw0/ccstrace/pkg/domain"

// Builder accumulates a sequence of prefixes.
type Builder struct {
	actions []domain.Action
}

// In starts a sequence with the input action on channel.
func In(channel string) *Builder {
	return (&Builder{}).In(channel)
}

// Out starts a sequence with the output action on channel.
func Out(channel string) *Builder {
	return (&Builder{}).Out(channel)
}

// In appends an input prefix.
func (b *Builder) In(channel string) *Builder {
	b.actions = append(b.actions, domain.Input(channel))
	return b
}

// Out appends an output prefix.
func (b *Builder) Out(channel string) *Builder {
	b.actions = append(b.actions, domain.Output(channel))
	return b
}

// Then closes the sequence with cont.
func (b *Builder) Then(cont *domain.Term) *domain.Term {
	t := cont
	for i := len(b.actions) - 1; i >= 0; i-- {
		t = domain.Prefix(b.actions[i], t)
	}
	return t
}

// Nil closes the sequence with inaction.
func (b *Builder) Nil() *domain.Term {
	return b.Then(domain.Nil())
}

// Loop closes the sequence with the recursion variable name.
func (b *Builder) Loop(name string) *domain.Term {
	return b.Then(domain.Name(name))
}

// Sum combines terms with left-associative choice. It panics without terms.
func Sum(terms ...*domain.Term) *domain.Term {
	return fold(domain.Choice, terms)
}

// Par combines terms with left-associative parallel composition. It panics without terms.
func Par(terms ...*domain.Term) *domain.Term {
	return fold(domain.Compose, terms)
}

// Rec binds name in body.
func Rec(name string, body *domain.Term) *domain.Term {
	return domain.Recurse(name, body)
}

// Hide restricts every channel in turn, innermost first.
func Hide(t *domain.Term, channels ...string) *domain.Term {
	for _, ch := range channels {
		t = domain.Restrict(t, domain.Input(ch))
	}
	return t
}

// Rename relabels from to to in t.
func Rename(t *domain.Term, to, from string) *domain.Term {
	return domain.Relabel(t, domain.NewRelabeling(domain.Rename{From: from, To: to}))
}

func fold(join func(l, r *domain.Term) *domain.Term, terms []*domain.Term) *domain.Term {
	if len(terms) == 0 {
		panic("dsl: no terms to combine")
	}
	t := terms[0]
	for _, next := range terms[1:] {
		t = join(t, next)
	}
	return t
}
