// Package diag defines compiler diagnostics and the reports that render
// them against source text.
package diag

import (
	"fmt"

	"oberon/internal/span"
)

// Severity ranks a diagnostic finding.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported finding. A nil Span means the finding is
// file-level rather than positional.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     *span.Span
	Note     string
}

// Errorf builds an error diagnostic located at s.
func Errorf(s span.Span, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Error, Message: fmt.Sprintf(format, args...), Span: &s}
}

// Warningf builds a warning diagnostic located at s.
func Warningf(s span.Span, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...), Span: &s}
}
