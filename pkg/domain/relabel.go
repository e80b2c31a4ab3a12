package domain

import (
	"sort"
	"strings"
)

// Rename maps one channel to another inside a Relabel term.
type Rename struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Relabeling is a finite channel mapping with unique keys.
// Entries keep the order in which they were first added; adding an existing
// key replaces its target in place.
type Relabeling struct {
	entries []Rename
}

// NewRelabeling builds a mapping from renames. Later renames win on key collision.
func NewRelabeling(renames ...Rename) Relabeling {
	var m Relabeling
	for _, r := range renames {
		m = m.With(r.From, r.To)
	}
	return m
}

// With returns a copy of m with from mapped to to.
func (m Relabeling) With(from, to string) Relabeling {
	entries := make([]Rename, len(m.entries), len(m.entries)+1)
	copy(entries, m.entries)
	for i := range entries {
		if entries[i].From == from {
			entries[i].To = to
			return Relabeling{entries: entries}
		}
	}
	return Relabeling{entries: append(entries, Rename{From: from, To: to})}
}

// Lookup returns the target channel for from, if any.
func (m Relabeling) Lookup(from string) (string, bool) {
	for _, e := range m.entries {
		if e.From == from {
			return e.To, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (m Relabeling) Len() int {
	return len(m.entries)
}

// Renames returns a copy of the entries in insertion order.
func (m Relabeling) Renames() []Rename {
	out := make([]Rename, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m Relabeling) clone() Relabeling {
	if len(m.entries) == 0 {
		return Relabeling{}
	}
	return Relabeling{entries: m.Renames()}
}

// Equal compares two mappings as sets of pairs.
func (m Relabeling) Equal(other Relabeling) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for _, e := range m.entries {
		to, ok := other.Lookup(e.From)
		if !ok || to != e.To {
			return false
		}
	}
	return true
}

// String renders the mapping in source order using the "to/from" notation.
func (m Relabeling) String() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = e.To + "/" + e.From
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// key renders the mapping sorted by source channel so that equal mappings share a key.
func (m Relabeling) key() string {
	sorted := m.Renames()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })
	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = e.To + "/" + e.From
	}
	return strings.Join(parts, ",")
}
