package runner

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/ccstrace/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Recursion(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(WithHandler(NewTextHandler(&out)))

	_, err := r.Run(testutils.MustParse(t, "_rec x.a.x"))
	require.NoError(t, err)

	expected := transitionRule + "\n" +
		"Trans: _rec x.a.x -> _rec x.a.x\n" +
		"0 | Recurse on: x \t-> _rec x.a.x\n" +
		"1 | Action: In(a) \t-> x\n" +
		"#\n" +
		"Cycle found: terminating\n" +
		"CCS-process terminated in 1 transition(s)\n"
	assert.Equal(t, expected, out.String())
}

func TestTextHandler_Synchronization(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(WithHandler(NewTextHandler(&out)))

	_, err := r.Run(testutils.MustParse(t, "(α.nil + β.nil) | (!α.nil + γ.nil)"))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Trans: (α.nil + β.nil) | (!α.nil + γ.nil) -> nil | nil\n")
	assert.Contains(t, text, "0 | Compose: Sync on α \t-> nil | nil\n")
	assert.Contains(t, text, "---\n--- Right: !α.nil + γ.nil ---\n\n")
	assert.Contains(t, text, "\t0 | Choice: Right \t-> γ.nil\n")
	assert.Contains(t, text, "---\n--- Left: α.nil + β.nil ---\n\n")
	assert.Contains(t, text, "\t3 | Action: In(α) \t-> nil\n")
	assert.True(t, strings.HasSuffix(text, "#\nCCS-process terminated in 1 transition(s)\n"))
	assert.NotContains(t, text, "Cycle found")
}

func TestTextHandler_NoTransitions(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(WithHandler(NewTextHandler(&out)))

	_, err := r.Run(testutils.MustParse(t, "nil"))
	require.NoError(t, err)
	assert.Equal(t, "CCS-process terminated in 0 transition(s)\n", out.String())
}

type bracketStyler struct{}

func (bracketStyler) Operation(s string) string { return "<" + s + ">" }
func (bracketStyler) Term(s string) string { return s }
func (bracketStyler) Notice(s string) string { return "!" + s }

func TestTextHandler_Styler(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(WithHandler(NewTextHandler(&out, WithStyler(bracketStyler{}))))

	_, err := r.Run(testutils.MustParse(t, "_rec x.a.x"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "1 | <Action>: In(a)")
	assert.Contains(t, out.String(), "!Cycle found: terminating")
}

func TestJSONHandler_Events(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(WithHandler(NewJSONHandler(&out)))

	_, err := r.Run(testutils.MustParse(t, "_rec x.a.x"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	var events []map[string]any
	for _, line := range lines {
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		events = append(events, e)
	}

	assert.Equal(t, EventStart, events[0]["type"])
	assert.Equal(t, "_rec x.a.x", events[0]["term"])

	assert.Equal(t, EventTransition, events[1]["type"])
	assert.EqualValues(t, 1, events[1]["index"])
	assert.Equal(t, "a", events[1]["label"])
	steps, ok := events[1]["steps"].([]any)
	require.True(t, ok)
	require.Len(t, steps, 2)
	assert.Equal(t, map[string]any{"operation": "Recurse on", "operand": "x", "result": "_rec x.a.x"}, steps[0])

	assert.Equal(t, EventCycle, events[2]["type"])

	assert.Equal(t, EventHalt, events[3]["type"])
	assert.Equal(t, "cycle", events[3]["reason"])
	assert.EqualValues(t, 1, events[3]["transitions"])
}

func TestJSONHandler_HaltReportsZeroTransitions(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(WithHandler(NewJSONHandler(&out)))

	_, err := r.Run(testutils.MustParse(t, "nil"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"transitions":0`)
}
