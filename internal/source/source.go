// Package source owns decoded source text and the line-start table used
// to map byte offsets back to line and column numbers.
package source

import (
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"oberon/internal/span"
)

// IOError reports a failed read or write of a source or output file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("I/O error reading/writing file: %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// EncodingError reports that a source file is not valid UTF-8. Decoding
// is all or nothing; no partial recovery is attempted.
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("source file is not valid UTF-8: %s", e.Path)
}

// File is a decoded source file plus its line index. It is built once
// at load time and read-only afterwards.
type File struct {
	Path string
	Text string

	// lineStarts[0] == 0; each later entry is the byte offset just
	// after a '\n'. A CR in CRLF stays on the preceding line.
	lineStarts []int
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &EncodingError{Path: path}
	}
	return FromString(path, string(data)), nil
}

// FromString indexes already-decoded text. path is used only for
// display in diagnostics.
func FromString(path, text string) *File {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &File{Path: path, Text: text, lineStarts: starts}
}

// WholeSpan covers the entire text, for file-level diagnostics.
func (f *File) WholeSpan() span.Span {
	return span.New(0, len(f.Text))
}

// LineCount returns the number of lines in the file. An empty file
// still has one (empty) line.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

// LineCol converts a byte offset to 1-based line and column. Offsets
// past end-of-text map to the last line with a column past its final
// character.
func (f *File) LineCol(offset int) (line, col int) {
	i := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, offset - f.lineStarts[i] + 1
}

// LineText returns the text of the 1-based line, including its trailing
// newline if present. ok is false for line 0 or a line past the end.
func (f *File) LineText(line int) (text string, ok bool) {
	if line < 1 || line > len(f.lineStarts) {
		return "", false
	}
	start := f.lineStarts[line-1]
	end := len(f.Text)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line]
	}
	return f.Text[start:end], true
}
