package testutils

import (
	"testing"

	"github.com/aretw0/ccstrace/internal/compiler"
	"github.com/aretw0/ccstrace/pkg/domain"
	"github.com/stretchr/testify/require"
)

// MustParse parses a single-line CCS term.
// It fails the test immediately on error.
func MustParse(t *testing.T, src string) *domain.Term {
	t.Helper()

	term, err := compiler.NewParser().Parse(src)
	require.NoError(t, err, "Failed to parse %q", src)

	return term
}
