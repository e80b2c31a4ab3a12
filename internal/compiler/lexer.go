package compiler

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNil
	tokRec
	tokBang
	tokDot
	tokPlus
	tokBar
	tokBackslash
	tokLBracket
	tokRBracket
	tokSlash
	tokComma
	tokLParen
	tokRParen
)

var tokenNames = map[tokenKind]string{
	tokEOF:       "end of input",
	tokIdent:     "identifier",
	tokNil:       "'nil'",
	tokRec:       "'_rec'",
	tokBang:      "'!'",
	tokDot:       "'.'",
	tokPlus:      "'+'",
	tokBar:       "'|'",
	tokBackslash: "'\\'",
	tokLBracket:  "'['",
	tokRBracket:  "']'",
	tokSlash:     "'/'",
	tokComma:     "','",
	tokLParen:    "'('",
	tokRParen:    "')'",
}

func (k tokenKind) String() string {
	return tokenNames[k]
}

const recKeyword = "_rec"

type token struct {
	kind   tokenKind
	text   string
	column int // 1-based, in runes
}

var punctuation = map[rune]tokenKind{
	'!':  tokBang,
	'.':  tokDot,
	'+':  tokPlus,
	'|':  tokBar,
	'\\': tokBackslash,
	'[':  tokLBracket,
	']':  tokRBracket,
	'/':  tokSlash,
	',':  tokComma,
	'(':  tokLParen,
	')':  tokRParen,
}

// lex splits a source line into tokens. Whitespace is insignificant, so
// "_recx" is read as the keyword followed by the variable x.
func lex(line string) ([]token, error) {
	var (
		tokens []token
		runes  = []rune(line)
	)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case r == '_' || unicode.IsLetter(r):
			start := i
			i++
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			word := string(runes[start:i])
			switch {
			case word == "nil":
				tokens = append(tokens, token{kind: tokNil, text: word, column: start + 1})
			case strings.HasPrefix(word, recKeyword):
				tokens = append(tokens, token{kind: tokRec, text: recKeyword, column: start + 1})
				if rest := strings.TrimPrefix(word, recKeyword); rest != "" {
					tokens = append(tokens, token{kind: tokIdent, text: rest, column: start + 1 + len([]rune(recKeyword))})
				}
			case r == '_':
				return nil, &SyntaxError{Column: start + 1, Msg: fmt.Sprintf("unexpected %q", word)}
			default:
				tokens = append(tokens, token{kind: tokIdent, text: word, column: start + 1})
			}

		default:
			kind, ok := punctuation[r]
			if !ok {
				return nil, &SyntaxError{Column: i + 1, Msg: fmt.Sprintf("unexpected character %q", r)}
			}
			tokens = append(tokens, token{kind: kind, text: string(r), column: i + 1})
			i++
		}
	}

	return append(tokens, token{kind: tokEOF, column: len(runes) + 1}), nil
}
