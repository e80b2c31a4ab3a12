package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/ccstrace/pkg/domain"
)

// RenderTree renders the syntax tree of t as a markdown nested list, one
// item per node, children indented below their parent.
func RenderTree(t *domain.Term) string {
	var sb strings.Builder
	writeNode(&sb, t, 0)
	return sb.String()
}

func writeNode(sb *strings.Builder, t *domain.Term, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("- ")
	sb.WriteString(describe(t))
	sb.WriteString("\n")

	switch t.Kind() {
	case domain.KindPrefix, domain.KindRestrict, domain.KindRelabel, domain.KindRecurse:
		writeNode(sb, t.Body(), depth+1)
	case domain.KindChoice, domain.KindCompose:
		writeNode(sb, t.Left(), depth+1)
		writeNode(sb, t.Right(), depth+1)
	}
}

func describe(t *domain.Term) string {
	switch t.Kind() {
	case domain.KindName, domain.KindRecurse:
		return fmt.Sprintf("**%s** `%s`", t.Kind(), t.Name())
	case domain.KindPrefix:
		return fmt.Sprintf("**%s** `%s`", t.Kind(), t.Action().Describe())
	case domain.KindRestrict:
		return fmt.Sprintf("**%s** `%s`", t.Kind(), t.Action().Channel())
	case domain.KindRelabel:
		return fmt.Sprintf("**%s** `%s`", t.Kind(), t.Mapping())
	default:
		return fmt.Sprintf("**%s**", t.Kind())
	}
}
