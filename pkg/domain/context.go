package domain

// Context carries the restrictions and relabelings active above the term being
// stepped. It is a value: the With* methods return extended copies and never
// modify the receiver, so sibling branches cannot observe each other's scope.
type Context struct {
	restricted map[string]struct{}
	relabeling map[string]string
}

// EmptyContext is the context every top-level transition attempt starts from.
func EmptyContext() Context {
	return Context{}
}

// WithRestricted returns a copy of c with channel hidden.
func (c Context) WithRestricted(channel string) Context {
	restricted := make(map[string]struct{}, len(c.restricted)+1)
	for ch := range c.restricted {
		restricted[ch] = struct{}{}
	}
	restricted[channel] = struct{}{}
	return Context{restricted: restricted, relabeling: c.relabeling}
}

// WithRelabeling returns a copy of c extended with the entries of m.
// Entries of m overwrite existing ones on key collision. The lookup stays flat:
// nested relabelings are not composed transitively.
func (c Context) WithRelabeling(m Relabeling) Context {
	relabeling := make(map[string]string, len(c.relabeling)+m.Len())
	for from, to := range c.relabeling {
		relabeling[from] = to
	}
	for _, r := range m.entries {
		relabeling[r.From] = r.To
	}
	return Context{restricted: c.restricted, relabeling: relabeling}
}

// IsRestricted reports whether channel is hidden.
func (c Context) IsRestricted(channel string) bool {
	_, ok := c.restricted[channel]
	return ok
}

// Resolve returns the channel an action written on channel actually uses.
func (c Context) Resolve(channel string) string {
	if to, ok := c.relabeling[channel]; ok {
		return to
	}
	return channel
}
