package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"oberon/internal/source"
	"oberon/internal/span"
)

// Report is the outcome of a failed (or finding-bearing) compilation.
// It has exactly two shapes: a fatal pre-load failure with no source
// attached, or an ordered list of diagnostics bound to the file they
// were found in.
type Report interface {
	// Render writes the human-readable report to w. Rendering is pure
	// formatting; the caller chooses the stream and the exit behavior.
	Render(w io.Writer)

	isReport()
}

// Fatal reports an I/O or encoding failure that happened before any
// source text existed.
type Fatal struct {
	Err error
}

// NewFatal wraps a pre-load failure in a report.
func NewFatal(err error) Report {
	return &Fatal{Err: err}
}

func (r *Fatal) isReport() {}

func (r *Fatal) Render(w io.Writer) {
	fmt.Fprintf(w, "%s: %v\n", severityColor(Error)("error"), r.Err)
}

// Diagnostics reports findings against a loaded source file, in the
// order they were collected.
type Diagnostics struct {
	Source *source.File
	Diags  []Diagnostic
}

// New binds an ordered diagnostic list to its source file.
func New(src *source.File, diags []Diagnostic) Report {
	return &Diagnostics{Source: src, Diags: diags}
}

func (r *Diagnostics) isReport() {}

func (r *Diagnostics) Render(w io.Writer) {
	for _, d := range r.Diags {
		label := severityColor(d.Severity)(d.Severity.String())
		fmt.Fprintf(w, "%s: %s\n", label, d.Message)
		if d.Span != nil {
			writeSpanBlock(w, r.Source, *d.Span, d.Severity)
		}
		if d.Note != "" {
			fmt.Fprintf(w, "note: %s\n", d.Note)
		}
		fmt.Fprintln(w)
	}
}

// writeSpanBlock prints the locator line, the source line, and a caret
// under the span's starting column:
//
//	  --> file.Mod:2:5
//	   |
//	  2 | IF b<2
//	   |     ^
func writeSpanBlock(w io.Writer, src *source.File, sp span.Span, sev Severity) {
	line, col := src.LineCol(sp.Start)
	text, _ := src.LineText(line)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	pad := col - 1
	if pad < 0 {
		pad = 0
	}

	fmt.Fprintf(w, "  --> %s:%d:%d\n", src.Path, line, col)
	fmt.Fprintln(w, "   |")
	fmt.Fprintf(w, "%3d | %s\n", line, text)
	fmt.Fprintf(w, "   | %s%s\n", strings.Repeat(" ", pad), severityColor(sev)("^"))
}

func severityColor(s Severity) func(...interface{}) string {
	switch s {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	}
}
