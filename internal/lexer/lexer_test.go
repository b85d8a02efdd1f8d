package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanKinds(t *testing.T, input string) []Kind {
	t.Helper()
	tokens, err := New(input).ScanAll()
	require.NoError(t, err, "scanning should succeed")

	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func scanAll(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := New(input).ScanAll()
	require.NoError(t, err, "scanning should succeed")
	return tokens
}

func TestLexNumber(t *testing.T) {
	tokens := scanAll(t, "123")
	require.Len(t, tokens, 2)
	assert.Equal(t, NUMBER, tokens[0].Kind)
	assert.Equal(t, int64(123), tokens[0].Value)
	assert.Equal(t, EOF, tokens[1].Kind)
}

func TestLexIdentifier(t *testing.T) {
	tokens := scanAll(t, "hello")
	require.Len(t, tokens, 2)
	assert.Equal(t, IDENT, tokens[0].Kind)
	assert.Equal(t, "hello", tokens[0].Lexeme)
}

func TestKeywordIfIsCaseInsensitive(t *testing.T) {
	for _, input := range []string{"IF", "if", "If", "iF"} {
		assert.Equal(t, []Kind{KW_IF, EOF}, scanKinds(t, input), "input %q", input)
	}
}

func TestKeywordClassifiesWholeIdentifierOnly(t *testing.T) {
	tokens := scanAll(t, "IFX")
	require.Len(t, tokens, 2)
	assert.Equal(t, IDENT, tokens[0].Kind, "IFX must not split into IF + X")
	assert.Equal(t, "IFX", tokens[0].Lexeme)
}

func TestLessAndLessEqual(t *testing.T) {
	assert.Equal(t, []Kind{LESS, EOF}, scanKinds(t, "<"))
	assert.Equal(t, []Kind{LESS_EQUAL, EOF}, scanKinds(t, "<="))
}

func TestSkipsWhitespaceBetweenTokens(t *testing.T) {
	assert.Equal(t,
		[]Kind{KW_IF, IDENT, LESS_EQUAL, NUMBER, EOF},
		scanKinds(t, "IF   a  <=   10"))
}

func TestFormFeedIsWhitespace(t *testing.T) {
	tokens := scanAll(t, "IF\fA")
	require.Len(t, tokens, 3)

	assert.Equal(t, KW_IF, tokens[0].Kind)
	assert.Equal(t, IDENT, tokens[1].Kind)
	assert.Equal(t, 3, tokens[1].Span.Start)
	assert.Equal(t, 4, tokens[1].Span.End)
}

func TestNumberFollowedByIdentifierSplits(t *testing.T) {
	tokens := scanAll(t, "12a")
	require.Len(t, tokens, 3)
	assert.Equal(t, NUMBER, tokens[0].Kind)
	assert.Equal(t, int64(12), tokens[0].Value)
	assert.Equal(t, IDENT, tokens[1].Kind)
	assert.Equal(t, "a", tokens[1].Lexeme)
}

func TestIdentifierDoesNotConsumeFollowingSymbol(t *testing.T) {
	assert.Equal(t, []Kind{IDENT, LESS, NUMBER, EOF}, scanKinds(t, "a<10"))
}

func TestSpansAreByteOffsets(t *testing.T) {
	tokens := scanAll(t, "IF a<=10")
	require.Len(t, tokens, 5)

	assert.Equal(t, 0, tokens[0].Span.Start) // IF
	assert.Equal(t, 2, tokens[0].Span.End)
	assert.Equal(t, 3, tokens[1].Span.Start) // a
	assert.Equal(t, 4, tokens[1].Span.End)
	assert.Equal(t, 4, tokens[2].Span.Start) // <=
	assert.Equal(t, 6, tokens[2].Span.End)
	assert.Equal(t, 6, tokens[3].Span.Start) // 10
	assert.Equal(t, 8, tokens[3].Span.End)
	assert.Equal(t, 8, tokens[4].Span.Start) // EOF
	assert.Equal(t, 8, tokens[4].Span.End)
}

func TestSpansWithTabsAreByteOffsets(t *testing.T) {
	tokens := scanAll(t, "IF\tX")
	require.Len(t, tokens, 3)

	assert.Equal(t, KW_IF, tokens[0].Kind)
	assert.Equal(t, 0, tokens[0].Span.Start)
	assert.Equal(t, 2, tokens[0].Span.End)

	assert.Equal(t, IDENT, tokens[1].Kind)
	assert.Equal(t, 3, tokens[1].Span.Start)
	assert.Equal(t, 4, tokens[1].Span.End)

	assert.Equal(t, EOF, tokens[2].Kind)
	assert.Equal(t, 4, tokens[2].Span.Start)
	assert.Equal(t, 4, tokens[2].Span.End)
}

func TestSpansWithCrlfAreByteOffsets(t *testing.T) {
	tokens := scanAll(t, "IF\r\nA")
	require.Len(t, tokens, 3)

	assert.Equal(t, KW_IF, tokens[0].Kind)
	assert.Equal(t, 0, tokens[0].Span.Start)
	assert.Equal(t, 2, tokens[0].Span.End)

	assert.Equal(t, IDENT, tokens[1].Kind)
	assert.Equal(t, "A", tokens[1].Lexeme)
	assert.Equal(t, 4, tokens[1].Span.Start)
	assert.Equal(t, 5, tokens[1].Span.End)

	assert.Equal(t, EOF, tokens[2].Kind)
	assert.Equal(t, 5, tokens[2].Span.Start)
	assert.Equal(t, 5, tokens[2].Span.End)
}

func TestUnexpectedCharacterHasExactSpan(t *testing.T) {
	_, err := New("@").NextToken()
	require.Error(t, err)

	lexErr, ok := err.(*LexError)
	require.True(t, ok, "error should be a *LexError")
	assert.Contains(t, lexErr.Message, "Unexpected character")
	assert.Equal(t, 0, lexErr.Span.Start)
	assert.Equal(t, 1, lexErr.Span.End)
}

func TestUnexpectedCharacterIsConsumed(t *testing.T) {
	lx := New("@")
	_, err := lx.NextToken()
	require.Error(t, err)

	// The offending character has been consumed, so the next call
	// does not see it again.
	tok, err := lx.NextToken()
	require.NoError(t, err)
	assert.Equal(t, EOF, tok.Kind)
	assert.Equal(t, 1, tok.Span.Start)
}

func TestUnexpectedCharacterSpansWholeCodePoint(t *testing.T) {
	_, err := New("é").NextToken()
	require.Error(t, err)

	lexErr := err.(*LexError)
	assert.Equal(t, 0, lexErr.Span.Start)
	assert.Equal(t, 2, lexErr.Span.End, "span covers the full UTF-8 code point")
}

func TestIntegerOverflowIsAnError(t *testing.T) {
	input := "9223372036854775808" // max int64 + 1
	_, err := New(input).NextToken()
	require.Error(t, err)

	lexErr := err.(*LexError)
	assert.Contains(t, lexErr.Message, "Invalid integer literal")
	assert.Equal(t, 0, lexErr.Span.Start)
	assert.Equal(t, len(input), lexErr.Span.End)
}

func TestMaxInt64Lexes(t *testing.T) {
	tokens := scanAll(t, "9223372036854775807")
	assert.Equal(t, int64(9223372036854775807), tokens[0].Value)
}

func TestLeadingMinusIsNotPartOfNumber(t *testing.T) {
	_, err := New("-5").NextToken()
	require.Error(t, err, "a sign prefix is not recognized at the lexical level")

	lexErr := err.(*LexError)
	assert.Equal(t, 0, lexErr.Span.Start)
	assert.Equal(t, 1, lexErr.Span.End)
}

func TestEofIsIdempotent(t *testing.T) {
	lx := New("IF")
	_, err := lx.NextToken()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		tok, err := lx.NextToken()
		require.NoError(t, err)
		assert.Equal(t, EOF, tok.Kind)
		assert.Equal(t, 2, tok.Span.Start)
		assert.Equal(t, 2, tok.Span.End)
	}
}

func TestTokensProgressMonotonically(t *testing.T) {
	tokens := scanAll(t, "IF\tA<=10\r\nIF B<2")
	for i := 1; i < len(tokens); i++ {
		prev, next := tokens[i-1], tokens[i]
		assert.LessOrEqual(t, prev.Span.End, next.Span.Start,
			"tokens overlap or go backwards: %s then %s", prev, next)
	}
}

func TestOnlyEofHasAnEmptySpan(t *testing.T) {
	for _, tok := range scanAll(t, "IF a<=10") {
		if tok.Kind == EOF {
			assert.Equal(t, tok.Span.Start, tok.Span.End)
		} else {
			assert.Less(t, tok.Span.Start, tok.Span.End, "non-EOF token %s", tok)
		}
	}
}

func TestExactlyOneEofAndItIsLast(t *testing.T) {
	tokens := scanAll(t, "IF a<=10")
	eofCount := 0
	for _, tok := range tokens {
		if tok.Kind == EOF {
			eofCount++
		}
	}
	assert.Equal(t, 1, eofCount)
	assert.Equal(t, EOF, tokens[len(tokens)-1].Kind)
}

func TestEmptyInputYieldsOnlyEof(t *testing.T) {
	tokens := scanAll(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, EOF, tokens[0].Kind)
	assert.Equal(t, 0, tokens[0].Span.Start)
	assert.Equal(t, 0, tokens[0].Span.End)
}

func TestGoldenTokenStream(t *testing.T) {
	tokens := scanAll(t, "IF a<=10\r\nIF b<2")

	var lines []string
	for _, tok := range tokens {
		lines = append(lines, tok.String())
	}

	expected := strings.Join([]string{
		"Keyword(IF) @ [0..2]",
		"Identifier(a) @ [3..4]",
		"Symbol(<=) @ [4..6]",
		"Number(10) @ [6..8]",
		"Keyword(IF) @ [10..12]",
		"Identifier(b) @ [13..14]",
		"Symbol(<) @ [14..15]",
		"Number(2) @ [15..16]",
		"EOF @ [16..16]",
	}, "\n")
	assert.Equal(t, expected, strings.Join(lines, "\n"))
}

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, KW_IF, LookupIdent("if"))
	assert.Equal(t, KW_IF, LookupIdent("IF"))
	assert.Equal(t, IDENT, LookupIdent("ifx"))
	assert.Equal(t, IDENT, LookupIdent("_if"))
}
