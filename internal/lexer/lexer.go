package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"oberon/internal/span"
)

// LexError is a lexical failure carrying the exact source range at
// fault. Scanning stops at the first error.
type LexError struct {
	Message string
	Span    span.Span
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Span)
}

// state is the scanner's current mode. The scanning loop is a flat
// dispatch over this value.
type state int

const (
	stateStart  state = iota
	stateNumber       // consuming a digit run
	stateIdent        // consuming an identifier run
	stateLess         // saw '<', may extend to '<='
)

// Lexer is a single-pass cursor over already-decoded source text. Each
// instance owns its cursor; concurrent scans of the same text need
// separate instances.
type Lexer struct {
	input      string
	pos        int
	tokenStart int
	state      state
}

// New creates a lexer over input, positioned at the first byte.
func New(input string) *Lexer {
	return &Lexer{input: input, state: stateStart}
}

// NextToken produces the next token, or a *LexError if the input at the
// cursor cannot form one. After the end of input it keeps returning EOF
// tokens with an empty span at len(input).
func (l *Lexer) NextToken() (Token, error) {
	for {
		switch l.state {
		case stateStart:
			l.skipWhitespace()
			l.tokenStart = l.pos

			ch, ok := l.peekChar()
			if !ok {
				return Token{Kind: EOF, Span: span.New(l.pos, l.pos)}, nil
			}

			switch {
			case isDigit(ch):
				l.state = stateNumber
			case isIdentStart(ch):
				l.state = stateIdent
			case ch == '<':
				l.state = stateLess
			default:
				// Consume the offending code point so a caller that
				// resynchronizes by calling again moves past it.
				start := l.pos
				l.bumpChar()
				return Token{}, &LexError{
					Message: fmt.Sprintf("Unexpected character: %q", ch),
					Span:    span.New(start, l.pos),
				}
			}

		case stateNumber:
			for {
				ch, ok := l.peekChar()
				if !ok || !isDigit(ch) {
					break
				}
				l.bumpChar()
			}
			sp := span.New(l.tokenStart, l.pos)
			text := l.input[sp.Start:sp.End]
			l.state = stateStart

			value, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return Token{}, &LexError{
					Message: fmt.Sprintf("Invalid integer literal: %v", err),
					Span:    sp,
				}
			}
			return Token{Kind: NUMBER, Lexeme: text, Value: value, Span: sp}, nil

		case stateIdent:
			for {
				ch, ok := l.peekChar()
				if !ok || !isIdentContinue(ch) {
					break
				}
				l.bumpChar()
			}
			sp := span.New(l.tokenStart, l.pos)
			text := l.input[sp.Start:sp.End]
			l.state = stateStart

			// Keywords are recognized only once the whole lexeme is
			// consumed, so "IFX" stays a single identifier.
			return Token{Kind: LookupIdent(text), Lexeme: text, Span: sp}, nil

		case stateLess:
			l.bumpChar() // '<'
			kind := LESS
			if ch, ok := l.peekChar(); ok && ch == '=' {
				l.bumpChar()
				kind = LESS_EQUAL
			}
			sp := span.New(l.tokenStart, l.pos)
			l.state = stateStart
			return Token{Kind: kind, Lexeme: l.input[sp.Start:sp.End], Span: sp}, nil
		}
	}
}

// ScanAll drains the lexer, returning every token through EOF
// inclusive. On a lexical error the tokens produced so far are returned
// alongside the *LexError.
func (l *Lexer) ScanAll() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

// ---- cursor helpers ----

func (l *Lexer) peekChar() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r, true
}

func (l *Lexer) bumpChar() {
	if l.pos >= len(l.input) {
		return
	}
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n', '\f':
			l.pos++
		default:
			return
		}
	}
}

// ---- character classification ----

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentContinue(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
