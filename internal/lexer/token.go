// Package lexer implements lexical analysis for Oberon source text.
package lexer

import (
	"fmt"
	"strings"

	"oberon/internal/span"
)

// Kind classifies a lexical token.
type Kind int

const (
	EOF Kind = iota
	NUMBER
	IDENT
	KW_IF
	LESS       // <
	LESS_EQUAL // <=
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	NUMBER:     "NUMBER",
	IDENT:      "IDENT",
	KW_IF:      "IF",
	LESS:       "<",
	LESS_EQUAL: "<=",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps case-normalized identifier text to its keyword kind.
// Adding a keyword is a data change here, not new scanning logic.
var keywords = map[string]Kind{
	"IF": KW_IF,
}

// LookupIdent classifies a completed identifier lexeme. Keyword
// matching is case-insensitive on the whole lexeme.
func LookupIdent(lexeme string) Kind {
	if kind, ok := keywords[strings.ToUpper(lexeme)]; ok {
		return kind
	}
	return IDENT
}

// Token is one classified lexical unit with the byte range it was
// scanned from. Value is meaningful only for NUMBER tokens.
type Token struct {
	Kind   Kind
	Lexeme string
	Value  int64
	Span   span.Span
}

// String renders the token in the form used by the tokens dump,
// e.g. "Keyword(IF) @ [0..2]".
func (t Token) String() string {
	switch t.Kind {
	case NUMBER:
		return fmt.Sprintf("Number(%d) @ %s", t.Value, t.Span)
	case IDENT:
		return fmt.Sprintf("Identifier(%s) @ %s", t.Lexeme, t.Span)
	case KW_IF:
		return fmt.Sprintf("Keyword(IF) @ %s", t.Span)
	case LESS:
		return fmt.Sprintf("Symbol(<) @ %s", t.Span)
	case LESS_EQUAL:
		return fmt.Sprintf("Symbol(<=) @ %s", t.Span)
	case EOF:
		return fmt.Sprintf("EOF @ %s", t.Span)
	}
	return fmt.Sprintf("%s(%s) @ %s", t.Kind, t.Lexeme, t.Span)
}
