// Package driver orchestrates the load → scan → emit pipeline for one
// compilation unit.
package driver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"oberon/internal/diag"
	"oberon/internal/lexer"
	"oberon/internal/source"
)

var log = commonlog.GetLogger("oberon.driver")

// Options mirror the CLI surface.
type Options struct {
	Input   string
	Output  string // empty means "<input>.bin"
	Verbose bool
}

// Run compiles a single file. A nil return means success; otherwise the
// report describes why compilation stopped. The caller decides the
// output stream and exit code.
func Run(opts Options) diag.Report {
	output := opts.Output
	if output == "" {
		output = DefaultOutputPath(opts.Input)
	}

	src, err := source.Load(opts.Input)
	if err != nil {
		return diag.NewFatal(err)
	}

	if opts.Verbose {
		log.Infof("loaded %s (%d bytes)", src.Path, len(src.Text))
		log.Infof("will write output to %s", output)
	}

	if strings.TrimSpace(src.Text) == "" {
		whole := src.WholeSpan()
		return diag.New(src, []diag.Diagnostic{{
			Severity: diag.Error,
			Message:  "Input file is empty.",
			Span:     &whole,
			Note:     "Provide an Oberon module and try again.",
		}})
	}

	lx := lexer.New(src.Text)
	for {
		tok, err := lx.NextToken()
		if err != nil {
			lexErr := err.(*lexer.LexError)
			return diag.New(src, []diag.Diagnostic{
				diag.Errorf(lexErr.Span, "%s", lexErr.Message),
			})
		}
		if opts.Verbose {
			log.Debugf("token: %s", tok)
		}
		if tok.Kind == lexer.EOF {
			break
		}
	}

	// Placeholder object write until code generation exists.
	if err := os.WriteFile(output, nil, 0o644); err != nil {
		return diag.NewFatal(&source.IOError{Path: output, Err: err})
	}
	return nil
}

// DefaultOutputPath swaps the input's extension for ".bin".
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".bin"
}
