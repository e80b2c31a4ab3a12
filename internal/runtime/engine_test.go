package runtime

import (
	"errors"
	"testing"

	"github.com/aretw0/ccstrace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	in   = domain.Input
	out  = domain.Output
	nilT = domain.Nil
)

func pre(a domain.Action, cont *domain.Term) *domain.Term { return domain.Prefix(a, cont) }

func relabel(body *domain.Term, from, to string) *domain.Term {
	return domain.Relabel(body, domain.NewRelabeling(domain.Rename{From: from, To: to}))
}

func lastStep(t *testing.T, tr *domain.Transition) domain.Step {
	t.Helper()
	require.NotEmpty(t, tr.Steps)
	return tr.Steps[len(tr.Steps)-1]
}

func TestStep_Terminal(t *testing.T) {
	for _, term := range []*domain.Term{nilT(), domain.Name("x")} {
		tr, err := Step(term, domain.EmptyContext())
		require.NoError(t, err)
		assert.Nil(t, tr, "term %s", term)
	}
}

func TestStep_Prefix(t *testing.T) {
	term := pre(in("a"), nilT())

	tr, err := Step(term, domain.EmptyContext())
	require.NoError(t, err)
	require.NotNil(t, tr)

	assert.Equal(t, "nil", tr.Result.String())
	assert.Equal(t, domain.VisibleLabel(in("a")), tr.Label)
	assert.Equal(t, []domain.Step{{Operation: domain.OpAction, Operand: domain.ActionOperand(in("a")), Result: "nil"}}, tr.Steps)
	assert.NotSame(t, term.Body(), tr.Result, "the result must not alias the source term")
}

func TestStep_Relabel(t *testing.T) {
	// a.nil[b/a] fires on b, not a.
	term := relabel(pre(in("a"), nilT()), "a", "b")

	tr, err := Step(term, domain.EmptyContext())
	require.NoError(t, err)
	require.NotNil(t, tr)

	assert.Equal(t, "b", tr.Label.Channel)
	assert.Equal(t, "In(b)", tr.Steps[0].Operand.String())
	assert.Equal(t, "nil[b/a]", tr.Result.String())
}

func TestStep_Restrict(t *testing.T) {
	tests := []struct {
		name    string
		term    *domain.Term
		blocked bool
	}{
		{"hidden channel", domain.Restrict(pre(in("a"), nilT()), in("a")), true},
		{"output on hidden channel", domain.Restrict(pre(out("a"), nilT()), in("a")), true},
		{"other channel", domain.Restrict(pre(in("a"), nilT()), in("b")), false},
		{"restriction applies after relabeling", domain.Restrict(relabel(pre(in("a"), nilT()), "a", "b"), in("b")), true},
		{"relabeling escapes restriction", domain.Restrict(relabel(pre(in("a"), nilT()), "a", "b"), in("a")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Step(tt.term, domain.EmptyContext())
			require.NoError(t, err)
			if tt.blocked {
				assert.Nil(t, tr)
				return
			}
			require.NotNil(t, tr)
			assert.Equal(t, domain.KindRestrict, tr.Result.Kind(), "restriction is kept around the result")
		})
	}
}

func TestStep_ChoicePrefersLeft(t *testing.T) {
	tr, err := Step(domain.Choice(pre(in("a"), nilT()), pre(in("b"), nilT())), domain.EmptyContext())
	require.NoError(t, err)
	require.NotNil(t, tr)

	assert.Equal(t, "a", tr.Label.Channel)
	assert.Equal(t, domain.NewStep(domain.OpChoice, domain.LeftOperand(), pre(in("a"), nilT())), lastStep(t, tr))

	t.Run("falls back to the right branch", func(t *testing.T) {
		tr, err := Step(domain.Choice(nilT(), pre(in("b"), nilT())), domain.EmptyContext())
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.Equal(t, "b", tr.Label.Channel)
		assert.Equal(t, domain.OperandRight, lastStep(t, tr).Operand.Kind)
	})

	t.Run("neither branch moves", func(t *testing.T) {
		tr, err := Step(domain.Choice(nilT(), domain.Name("x")), domain.EmptyContext())
		require.NoError(t, err)
		assert.Nil(t, tr)
	})
}

func TestStep_ComposeSynchronizes(t *testing.T) {
	// (α.nil + β.nil) | (!α.nil + γ.nil)
	term := domain.Compose(
		domain.Choice(pre(in("α"), nilT()), pre(in("β"), nilT())),
		domain.Choice(pre(out("α"), nilT()), pre(in("γ"), nilT())),
	)

	tr, err := Step(term, domain.EmptyContext())
	require.NoError(t, err)
	require.NotNil(t, tr)

	assert.Equal(t, "nil | nil", tr.Result.String())
	assert.Equal(t, domain.SilentLabel("α"), tr.Label)
	assert.Equal(t, domain.Step{Operation: domain.OpCompose, Operand: domain.SyncOperand("α"), Result: "nil | nil"}, lastStep(t, tr))

	var boundaries []string
	for _, s := range tr.Steps {
		if s.IsBoundary() {
			boundaries = append(boundaries, s.Operand.String()+": "+s.Result)
		}
	}
	assert.Equal(t, []string{"Left: α.nil + β.nil", "Right: !α.nil + γ.nil"}, boundaries)
}

func TestStep_ComposeInterleaves(t *testing.T) {
	t.Run("left first", func(t *testing.T) {
		tr, err := Step(domain.Compose(pre(in("a"), nilT()), pre(in("b"), nilT())), domain.EmptyContext())
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.Equal(t, "nil | b.nil", tr.Result.String())
		assert.Equal(t, domain.OpParallel, lastStep(t, tr).Operation)
		assert.Equal(t, domain.OperandLeft, lastStep(t, tr).Operand.Kind)
	})

	t.Run("right when left is stuck", func(t *testing.T) {
		tr, err := Step(domain.Compose(nilT(), pre(in("b"), nilT())), domain.EmptyContext())
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.Equal(t, "nil | nil", tr.Result.String())
		assert.Equal(t, domain.OperandRight, lastStep(t, tr).Operand.Kind)
	})

	t.Run("both stuck", func(t *testing.T) {
		tr, err := Step(domain.Compose(nilT(), nilT()), domain.EmptyContext())
		require.NoError(t, err)
		assert.Nil(t, tr)
	})
}

func TestStep_SyncIgnoresContext(t *testing.T) {
	t.Run("restriction does not block synchronization", func(t *testing.T) {
		term := domain.Compose(domain.Restrict(pre(in("a"), nilT()), in("a")), pre(out("a"), nilT()))

		tr, err := Step(term, domain.EmptyContext())
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.True(t, tr.Label.Silent)
		assert.Equal(t, "nil | nil", tr.Result.String())
	})

	t.Run("active relabeling is not consulted", func(t *testing.T) {
		// Under [b/a] the left side would offer b, complementing !b. The search
		// looks at the raw actions, so the move is an interleaving of a renamed to b.
		term := relabel(domain.Compose(pre(in("a"), nilT()), pre(out("b"), nilT())), "a", "b")

		tr, err := Step(term, domain.EmptyContext())
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.False(t, tr.Label.Silent)
		assert.Equal(t, "b", tr.Label.Channel)
	})
}

func TestStep_RelabelUnderSyncIsUnsupported(t *testing.T) {
	tests := []*domain.Term{
		domain.Compose(relabel(pre(in("a"), nilT()), "a", "b"), pre(out("b"), nilT())),
		domain.Compose(pre(in("c"), nilT()), domain.Choice(nilT(), relabel(nilT(), "a", "b"))),
		domain.Choice(nilT(), domain.Compose(nilT(), domain.Restrict(relabel(nilT(), "a", "b"), in("a")))),
	}

	for _, term := range tests {
		t.Run(term.String(), func(t *testing.T) {
			tr, err := Step(term, domain.EmptyContext())
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUnsupported))
			assert.Nil(t, tr)
		})
	}
}

func TestStep_Recurse(t *testing.T) {
	term := domain.Recurse("x", pre(in("a"), domain.Name("x")))

	tr, err := Step(term, domain.EmptyContext())
	require.NoError(t, err)
	require.NotNil(t, tr)

	assert.True(t, tr.Result.Equal(term), "the continuation points back at the whole definition")
	assert.NotSame(t, term, tr.Result)
	assert.Equal(t, domain.Step{Operation: domain.OpRecurseOn, Operand: domain.BoundOperand("x"), Result: "_rec x.a.x"}, lastStep(t, tr))

	t.Run("unfolds inside synchronization", func(t *testing.T) {
		tr, err := Step(domain.Compose(term, pre(out("a"), nilT())), domain.EmptyContext())
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.True(t, tr.Label.Silent)
		assert.Equal(t, "_rec x.a.x | nil", tr.Result.String())
	})
}

func TestStep_IsPure(t *testing.T) {
	term := domain.Compose(
		domain.Recurse("x", domain.Choice(pre(in("a"), domain.Name("x")), pre(out("b"), nilT()))),
		domain.Restrict(pre(in("b"), nilT()), in("c")),
	)
	before := term.Key()

	first, err := Step(term, domain.EmptyContext())
	require.NoError(t, err)
	second, err := Step(term, domain.EmptyContext())
	require.NoError(t, err)

	require.NotNil(t, first)
	assert.Equal(t, first.Steps, second.Steps)
	assert.Equal(t, first.Label, second.Label)
	assert.True(t, first.Result.Equal(second.Result))
	assert.Equal(t, before, term.Key(), "stepping must not modify the source term")
}

func TestEngine_StartsFromEmptyContext(t *testing.T) {
	tr, err := NewEngine().Step(pre(in("a"), nilT()))
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, "a", tr.Label.Channel)
}
