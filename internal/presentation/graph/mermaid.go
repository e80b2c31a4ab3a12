package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ccstrace/pkg/domain"
	"github.com/aretw0/ccstrace/pkg/runner"
)

// GenerateMermaid produces a Mermaid flowchart of the states a trace visited.
// Each visited term is a node and each transition an edge labelled with its
// action or τ. It applies semantic styling:
// - Initial term: ((Circle))
// - Term without transitions: ([Stadium])
// - Default: [Rectangle]
// The closing edge of a cycle points back at the revisited node.
func GenerateMermaid(result *runner.Result) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	stuck := result.Reason == domain.HaltNoTransition
	last := len(result.History) - 1

	for i, term := range result.History {
		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case i == last && stuck:
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", stateID(i), opener, escapeLabel(term.String()), closer))
	}

	for i, label := range result.Labels {
		to := i + 1
		if i == last && result.Revisited != nil {
			to = indexOf(result.History, result.Revisited)
		}
		if to < 0 || to > last {
			continue
		}
		arrow := fmt.Sprintf("-- \"%s\" -->", escapeLabel(label.String()))
		if label.Silent {
			arrow = fmt.Sprintf("-. \"%s\" .->", escapeLabel(label.String()))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", stateID(i), arrow, stateID(to)))
	}

	sb.WriteString("\n    %% Overlay Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	for i := range result.History {
		if i == last {
			continue
		}
		sb.WriteString(fmt.Sprintf("    class %s visited;\n", stateID(i)))
	}
	if last >= 0 {
		sb.WriteString(fmt.Sprintf("    class %s current;\n", stateID(last)))
	}

	return sb.String()
}

func stateID(i int) string {
	return fmt.Sprintf("s%d", i)
}

func indexOf(history []*domain.Term, t *domain.Term) int {
	for i, h := range history {
		if h.Equal(t) {
			return i
		}
	}
	return -1
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
