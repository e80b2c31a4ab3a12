package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_SeenByStructure(t *testing.T) {
	initial := Recurse("x", Prefix(Input("a"), Name("x")))
	s := NewState(initial)

	assert.True(t, s.Seen(initial.Clone()))
	assert.False(t, s.Seen(Prefix(Input("a"), Nil())))

	next := Prefix(Output("a"), Nil())
	s.Advance(next)
	assert.True(t, s.Seen(Prefix(Output("a"), Nil())))
	assert.Same(t, next, s.Current)
	assert.Len(t, s.History, 2)
	assert.Len(t, s.Visited[next.Hash()], 1)
}

func TestState_SeenResolvesHashCollisions(t *testing.T) {
	// Every term lands in the same bucket.
	s := newState(Prefix(Input("a"), Nil()), func(*Term) uint64 { return 7 })

	other := Prefix(Output("a"), Nil())
	assert.False(t, s.Seen(other), "a shared bucket is not a revisit")

	s.Advance(other)
	require.Len(t, s.Visited, 1)
	assert.Len(t, s.Visited[7], 2)
	assert.True(t, s.Seen(Prefix(Input("a"), Nil())))
	assert.True(t, s.Seen(Prefix(Output("a"), Nil())))
	assert.False(t, s.Seen(Nil()))
}

func TestState_Halt(t *testing.T) {
	s := NewState(Nil())
	require.Equal(t, StatusRunning, s.Status)

	s.Halt(HaltCycle)
	assert.Equal(t, StatusHalted, s.Status)
	assert.Equal(t, HaltCycle, s.Reason)
}
