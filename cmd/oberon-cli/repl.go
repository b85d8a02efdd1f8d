// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"oberon/internal/diag"
	"oberon/internal/lexer"
	"oberon/internal/source"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively scan lines and print their tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		historyFile := ""
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".oberon_history")
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:            "oberon> ",
			HistoryFile:       historyFile,
			InterruptPrompt:   "^C",
			EOFPrompt:         "exit",
			HistorySearchFold: true,
		})
		if err != nil {
			return fmt.Errorf("readline init failed: %w", err)
		}
		defer rl.Close()

		fmt.Fprintln(rl.Stdout(), "oberon token REPL (type 'exit' or Ctrl+D to quit)")

		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err != nil {
				break
			}
			if strings.TrimSpace(line) == "exit" {
				break
			}
			if strings.TrimSpace(line) == "" {
				continue
			}

			scanLine(rl, line)
		}
		return nil
	},
}

func scanLine(rl *readline.Instance, line string) {
	src := source.FromString("<repl>", line)
	lx := lexer.New(src.Text)

	for {
		tok, err := lx.NextToken()
		if err != nil {
			lexErr := err.(*lexer.LexError)
			diag.New(src, []diag.Diagnostic{
				diag.Errorf(lexErr.Span, "%s", lexErr.Message),
			}).Render(rl.Stderr())
			return
		}
		fmt.Fprintln(rl.Stdout(), tok)
		if tok.Kind == lexer.EOF {
			return
		}
	}
}
