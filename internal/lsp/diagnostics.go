package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"oberon/internal/lexer"
	"oberon/internal/source"
)

// Scan lexes text and converts any findings into LSP diagnostics. The
// scanner stops at its first error, so at most one lexical diagnostic
// is produced per scan.
func Scan(uri, text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	src := source.FromString(uri, text)

	if strings.TrimSpace(text) == "" {
		diagnostics = append(diagnostics, convert(src, &lexer.LexError{
			Message: "Input file is empty.",
			Span:    src.WholeSpan(),
		}))
		return diagnostics
	}

	lx := lexer.New(text)
	for {
		tok, err := lx.NextToken()
		if err != nil {
			diagnostics = append(diagnostics, convert(src, err.(*lexer.LexError)))
			return diagnostics
		}
		if tok.Kind == lexer.EOF {
			return diagnostics
		}
	}
}

// convert maps a byte-span lex error onto the protocol's 0-based
// line/character range.
func convert(src *source.File, lexErr *lexer.LexError) protocol.Diagnostic {
	startLine, startCol := src.LineCol(lexErr.Span.Start)
	endLine, endCol := src.LineCol(lexErr.Span.End)

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(startLine - 1), Character: uint32(startCol - 1)},
			End:   protocol.Position{Line: uint32(endLine - 1), Character: uint32(endCol - 1)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("oberon-lexer"),
		Message:  lexErr.Message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
