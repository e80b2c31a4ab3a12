package dsl

import (
	"testing"

	"github.com/aretw0/ccstrace/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	tests := []struct {
		name string
		got  func() string
		want string
	}{
		{"sequence", func() string { return In("a").Out("b").Nil().String() }, "a.!b.nil"},
		{"loop", func() string { return Rec("x", In("a").Loop("x")).String() }, "_rec x.a.x"},
		{"sum", func() string { return Sum(In("a").Nil(), In("b").Nil(), In("c").Nil()).String() }, "a.nil + b.nil + c.nil"},
		{"par of sums", func() string {
			return Par(Sum(In("α").Nil(), In("β").Nil()), Sum(Out("α").Nil(), In("γ").Nil())).String()
		}, "(α.nil + β.nil) | (!α.nil + γ.nil)"},
		{"hide", func() string { return Hide(Par(In("a").Nil(), Out("a").Nil()), "a", "b").String() }, "(a.nil | !a.nil)\\a\\b"},
		{"rename", func() string { return Rename(In("a").Nil(), "b", "a").String() }, "a.nil[b/a]"},
		{"then", func() string { return Out("a").Then(Par(In("b").Nil(), In("c").Nil())).String() }, "!a.(b.nil | c.nil)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got())
		})
	}
}

func TestBuilder_MatchesParser(t *testing.T) {
	built := Rec("x", Sum(In("a").Out("b").Loop("x"), In("c").Nil()))
	parsed := testutils.MustParse(t, "_rec x.(a.!b.x + c.nil)")

	assert.True(t, built.Equal(parsed))
	assert.Equal(t, parsed.Key(), built.Key())
}

func TestFold_PanicsWithoutTerms(t *testing.T) {
	assert.Panics(t, func() { Sum() })
	assert.Panics(t, func() { Par() })
}
