package runner

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/ccstrace/pkg/domain"
)

// JSON-Lines event types.
const (
	EventStart      = "start"
	EventTransition = "transition"
	EventCycle      = "cycle"
	EventHalt       = "halt"
)

// JSONEvent is one line of the JSON trace. Fields not relevant to Type are omitted.
type JSONEvent struct {
	Type        string            `json:"type"`
	Index       int               `json:"index,omitempty"`
	Term        string            `json:"term,omitempty"`
	From        string            `json:"from,omitempty"`
	To          string            `json:"to,omitempty"`
	Label       string            `json:"label,omitempty"`
	Steps       []domain.Step     `json:"steps,omitempty"`
	Reason      domain.HaltReason `json:"reason,omitempty"`
	Transitions *int              `json:"transitions,omitempty"`
}

// JSONHandler emits the trace as JSON-Lines for machine consumption.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler writing to w (Stdout when nil).
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Start(initial *domain.Term) error {
	return h.Encoder.Encode(JSONEvent{Type: EventStart, Term: initial.String()})
}

func (h *JSONHandler) Transition(index int, from *domain.Term, tr *domain.Transition) error {
	return h.Encoder.Encode(JSONEvent{
		Type:  EventTransition,
		Index: index,
		From:  from.String(),
		To:    tr.Result.String(),
		Label: tr.Label.String(),
		Steps: tr.Derivation(),
	})
}

func (h *JSONHandler) Cycle(revisited *domain.Term) error {
	return h.Encoder.Encode(JSONEvent{Type: EventCycle, Term: revisited.String()})
}

func (h *JSONHandler) Halt(result *Result) error {
	n := result.Transitions
	return h.Encoder.Encode(JSONEvent{
		Type:        EventHalt,
		Term:        result.Final.String(),
		Reason:      result.Reason,
		Transitions: &n,
	})
}
