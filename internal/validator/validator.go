package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/ccstrace/pkg/domain"
)

// ValidateTerm checks a term for constructs the trace driver handles poorly:
// names no recursion binds, recursion variables reachable without passing a
// prefix (the unfolding search never ends on those), and relabeling inside a
// parallel composition (synchronization refuses it).
func ValidateTerm(t *domain.Term) error {
	w := &walker{seen: make(map[string]bool)}
	w.walk(t, scope{}, false)

	if len(w.errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(w.errors), strings.Join(w.errors, "\n- "))
	}
	return nil
}

// scope tracks the recursion variables bound above a node. unguarded holds the
// ones whose binder was entered without crossing a prefix since.
type scope struct {
	bound     map[string]bool
	unguarded map[string]bool
}

func (s scope) bind(name string) scope {
	return scope{bound: with(s.bound, name), unguarded: with(s.unguarded, name)}
}

func (s scope) guard() scope {
	return scope{bound: s.bound}
}

func with(m map[string]bool, name string) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k := range m {
		out[k] = true
	}
	out[name] = true
	return out
}

type walker struct {
	errors []string
	seen   map[string]bool
}

func (w *walker) report(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if w.seen[msg] {
		return
	}
	w.seen[msg] = true
	w.errors = append(w.errors, msg)
}

func (w *walker) walk(t *domain.Term, s scope, parallel bool) {
	switch t.Kind() {
	case domain.KindName:
		switch {
		case !s.bound[t.Name()]:
			w.report("Free name '%s' is not bound by any recursion", t.Name())
		case s.unguarded[t.Name()]:
			w.report("Unguarded recursion on '%s'", t.Name())
		}
	case domain.KindPrefix:
		w.walk(t.Body(), s.guard(), parallel)
	case domain.KindRecurse:
		w.walk(t.Body(), s.bind(t.Name()), parallel)
	case domain.KindRestrict:
		w.walk(t.Body(), s, parallel)
	case domain.KindRelabel:
		if parallel {
			w.report("Relabeling %s inside a parallel composition is unsupported", t.Mapping())
		}
		w.walk(t.Body(), s, parallel)
	case domain.KindChoice:
		w.walk(t.Left(), s, parallel)
		w.walk(t.Right(), s, parallel)
	case domain.KindCompose:
		w.walk(t.Left(), s, true)
		w.walk(t.Right(), s, true)
	}
}
