package domain

// ExecutionStatus defines the current mode of the trace driver.
type ExecutionStatus string

const (
	StatusRunning ExecutionStatus = "running" // Still deriving transitions
	StatusHalted  ExecutionStatus = "halted"  // Stopped, see HaltReason
)

// HaltReason tells why the driver stopped.
type HaltReason string

const (
	HaltNone         HaltReason = ""              // Not halted yet
	HaltNoTransition HaltReason = "no_transition" // The current term cannot move
	HaltCycle        HaltReason = "cycle"         // A previously visited term was reached again
)

// State is the driver's snapshot between iterations.
type State struct {
	// Current is the term the next transition is derived from.
	Current *Term

	Status ExecutionStatus
	Reason HaltReason

	// Transitions counts derived transitions, including the one that closed a cycle.
	Transitions int

	// Visited buckets every term reached so far by Hash. Terms sharing a
	// bucket are told apart with Equal.
	Visited map[uint64][]*Term

	// History is the sequence of terms visited, starting with the initial term.
	History []*Term

	// Labels holds the label of each transition; Labels[i] leads from History[i].
	Labels []Label

	hash func(*Term) uint64
}

// NewState creates a running state starting at initial.
func NewState(initial *Term) *State {
	return newState(initial, (*Term).Hash)
}

func newState(initial *Term, hash func(*Term) uint64) *State {
	s := &State{
		Current: initial,
		Status:  StatusRunning,
		Visited: make(map[uint64][]*Term),
		History: []*Term{initial},
		hash:    hash,
	}
	s.visit(initial)
	return s
}

// Seen reports whether a term structurally equal to t was visited before.
func (s *State) Seen(t *Term) bool {
	for _, v := range s.Visited[s.hash(t)] {
		if v.Equal(t) {
			return true
		}
	}
	return false
}

// Advance records t as visited and makes it the current term.
func (s *State) Advance(t *Term) {
	if !s.Seen(t) {
		s.visit(t)
	}
	s.History = append(s.History, t)
	s.Current = t
}

func (s *State) visit(t *Term) {
	h := s.hash(t)
	s.Visited[h] = append(s.Visited[h], t)
}

// Halt stops the driver for reason.
func (s *State) Halt(reason HaltReason) {
	s.Status = StatusHalted
	s.Reason = reason
}
