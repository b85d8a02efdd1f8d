// Package span provides the byte-offset interval type used to locate
// tokens and diagnostics in source text.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into one source text.
// Offsets from different texts must never be mixed.
type Span struct {
	Start int
	End   int
}

// New builds a span from start and end byte offsets.
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes. Only the synthetic
// EOF token and whole-empty-file spans are empty.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

func (s Span) String() string {
	return fmt.Sprintf("[%d..%d]", s.Start, s.End)
}
