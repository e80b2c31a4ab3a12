package domain

// Direction distinguishes the two sides of a channel.
type Direction uint8

const (
	DirectionIn  Direction = iota // Receives on the channel
	DirectionOut                  // Sends on the channel, written with a leading '!'
)

// Action is a directional label on a channel.
// Actions are comparable and are used as map keys during synchronization search.
type Action struct {
	direction Direction
	channel   string
}

// Input returns the input action on channel.
func Input(channel string) Action {
	return Action{direction: DirectionIn, channel: channel}
}

// Output returns the output action on channel.
func Output(channel string) Action {
	return Action{direction: DirectionOut, channel: channel}
}

// Channel returns the bare channel identifier.
func (a Action) Channel() string {
	return a.channel
}

// Direction reports whether the action is an input or an output.
func (a Action) Direction() Direction {
	return a.direction
}

// IsOutput is shorthand for a.Direction() == DirectionOut.
func (a Action) IsOutput() bool {
	return a.direction == DirectionOut
}

// Complement flips the direction and keeps the channel.
// a.Complement().Complement() == a holds for every action.
func (a Action) Complement() Action {
	if a.direction == DirectionIn {
		return Action{direction: DirectionOut, channel: a.channel}
	}
	return Action{direction: DirectionIn, channel: a.channel}
}

// Renamed keeps the direction and moves the action to another channel.
func (a Action) Renamed(channel string) Action {
	return Action{direction: a.direction, channel: channel}
}

// String renders the action as it is written in source: "a" or "!a".
func (a Action) String() string {
	if a.direction == DirectionOut {
		return "!" + a.channel
	}
	return a.channel
}

// Describe renders the action in the trace notation, e.g. "In(a)" or "Out(a)".
func (a Action) Describe() string {
	if a.direction == DirectionOut {
		return "Out(" + a.channel + ")"
	}
	return "In(" + a.channel + ")"
}
