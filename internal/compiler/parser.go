package compiler

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/ccstrace/internal/logging"
	"github.com/aretw0/ccstrace/pkg/domain"
)

// ErrEmptySource is returned when a source has no line left to parse after
// blank and comment lines are dropped.
var ErrEmptySource = errors.New("input has no non-empty, non-comment line")

// SyntaxError reports malformed input with a 1-based position.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("column %d: %s", e.Column, e.Msg)
	}
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Binding strength of each operator, loosest first.
const (
	bindBinary = iota + 1
	bindRestrict
	bindRelabel
	bindRecurse
	bindPrefix
)

// Parser converts CCS source text into a Term.
type Parser struct {
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for source-level warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a new parser instance.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	return p
}

// ParseSource parses the first non-empty line of src that is not a "//"
// comment. Any further lines are ignored with a warning.
func (p *Parser) ParseSource(src string) (*domain.Term, error) {
	var (
		line   string
		lineNo int
		extra  int
	)
	for i, l := range strings.Split(src, "\n") {
		l = strings.TrimRight(l, "\r")
		trimmed := strings.TrimSpace(l)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		if lineNo == 0 {
			line, lineNo = l, i+1
			continue
		}
		extra++
	}
	if lineNo == 0 {
		return nil, ErrEmptySource
	}
	if extra > 0 {
		p.logger.Warn("only reading first non empty non comment line", "line", lineNo, "ignored", extra)
	}

	p.logger.Info("parsing input", "input", strings.TrimSpace(line))
	term, err := p.Parse(line)
	if err != nil {
		var syn *SyntaxError
		if errors.As(err, &syn) {
			syn.Line = lineNo
		}
		return nil, err
	}
	return term, nil
}

// Parse parses a single line of CCS.
func (p *Parser) Parse(line string) (*domain.Term, error) {
	tokens, err := lex(line)
	if err != nil {
		return nil, err
	}
	s := &state{tokens: tokens}

	term, err := s.expr(0)
	if err != nil {
		return nil, err
	}
	if tok := s.peek(); tok.kind != tokEOF {
		return nil, s.unexpected(tok, "end of input")
	}
	return term, nil
}

type state struct {
	tokens []token
	pos    int
}

func (s *state) peek() token {
	return s.tokens[s.pos]
}

func (s *state) lookahead(n int) token {
	if s.pos+n >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.pos+n]
}

func (s *state) next() token {
	tok := s.tokens[s.pos]
	if tok.kind != tokEOF {
		s.pos++
	}
	return tok
}

func (s *state) expect(kind tokenKind) (token, error) {
	tok := s.next()
	if tok.kind != kind {
		return tok, s.unexpected(tok, kind.String())
	}
	return tok, nil
}

func (s *state) unexpected(tok token, want string) error {
	got := tok.kind.String()
	if tok.kind == tokIdent {
		got = fmt.Sprintf("%q", tok.text)
	}
	return &SyntaxError{Column: tok.column, Msg: fmt.Sprintf("expected %s, found %s", want, got)}
}

// expr parses an expression whose operators bind at least as tightly as min.
func (s *state) expr(min int) (*domain.Term, error) {
	left, err := s.unary()
	if err != nil {
		return nil, err
	}

	for {
		switch tok := s.peek(); {
		case (tok.kind == tokPlus || tok.kind == tokBar) && bindBinary >= min:
			s.next()
			right, err := s.expr(bindBinary + 1)
			if err != nil {
				return nil, err
			}
			if tok.kind == tokPlus {
				left = domain.Choice(left, right)
			} else {
				left = domain.Compose(left, right)
			}

		case tok.kind == tokBackslash && bindRestrict >= min:
			s.next()
			a, err := s.action()
			if err != nil {
				return nil, err
			}
			left = domain.Restrict(left, a)

		case tok.kind == tokLBracket && bindRelabel >= min:
			s.next()
			m, err := s.mapping()
			if err != nil {
				return nil, err
			}
			left = domain.Relabel(left, m)

		default:
			return left, nil
		}
	}
}

// unary parses atoms and the prefix-form constructs: actions and recursion.
func (s *state) unary() (*domain.Term, error) {
	tok := s.peek()
	switch tok.kind {
	case tokLParen:
		s.next()
		inner, err := s.expr(0)
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil

	case tokNil:
		s.next()
		return domain.Nil(), nil

	case tokRec:
		s.next()
		bound, err := s.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(tokDot); err != nil {
			return nil, err
		}
		body, err := s.expr(bindRecurse)
		if err != nil {
			return nil, err
		}
		return domain.Recurse(bound.text, body), nil

	case tokBang:
		return s.prefix()

	case tokIdent:
		if s.lookahead(1).kind == tokDot {
			return s.prefix()
		}
		s.next()
		return domain.Name(tok.text), nil
	}

	return nil, s.unexpected(tok, "a process")
}

func (s *state) prefix() (*domain.Term, error) {
	a, err := s.action()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(tokDot); err != nil {
		return nil, err
	}
	cont, err := s.expr(bindPrefix)
	if err != nil {
		return nil, err
	}
	return domain.Prefix(a, cont), nil
}

// action reads "x" or "!x" where x is a single letter.
func (s *state) action() (domain.Action, error) {
	output := false
	if s.peek().kind == tokBang {
		s.next()
		output = true
	}
	tok, err := s.expect(tokIdent)
	if err != nil {
		return domain.Action{}, err
	}
	if utf8.RuneCountInString(tok.text) != 1 {
		return domain.Action{}, &SyntaxError{Column: tok.column, Msg: fmt.Sprintf("action %q must be a single letter", tok.text)}
	}
	if output {
		return domain.Output(tok.text), nil
	}
	return domain.Input(tok.text), nil
}

// mapping reads "to/from, ..." up to and including the closing bracket.
func (s *state) mapping() (domain.Relabeling, error) {
	var renames []domain.Rename
	for {
		to, err := s.action()
		if err != nil {
			return domain.Relabeling{}, err
		}
		if _, err := s.expect(tokSlash); err != nil {
			return domain.Relabeling{}, err
		}
		from, err := s.action()
		if err != nil {
			return domain.Relabeling{}, err
		}
		renames = append(renames, domain.Rename{From: from.Channel(), To: to.Channel()})

		tok := s.next()
		switch tok.kind {
		case tokComma:
			continue
		case tokRBracket:
			return domain.NewRelabeling(renames...), nil
		default:
			return domain.Relabeling{}, s.unexpected(tok, "',' or ']'")
		}
	}
}
