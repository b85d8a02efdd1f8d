// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"oberon/internal/diag"
	"oberon/internal/driver"
	"oberon/internal/lexer"
	"oberon/internal/source"
)

var (
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "oberon <file.Mod>",
	Short:         "An Oberon compiler (scaffolding stage)",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			// 2 enables debug level, where the per-token dump lands.
			commonlog.Configure(2, nil)
		}

		report := driver.Run(driver.Options{
			Input:   args[0],
			Output:  outputPath,
			Verbose: verbose,
		})
		if report != nil {
			report.Render(os.Stderr)
			os.Exit(1)
		}
		return nil
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.Mod>",
	Short: "Print the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := source.Load(args[0])
		if err != nil {
			diag.NewFatal(err).Render(os.Stderr)
			os.Exit(1)
		}

		lx := lexer.New(src.Text)
		tokens, err := lx.ScanAll()
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		if err != nil {
			lexErr := err.(*lexer.LexError)
			diag.New(src, []diag.Diagnostic{
				diag.Errorf(lexErr.Span, "%s", lexErr.Message),
			}).Render(os.Stderr)
			os.Exit(1)
		}
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (defaults to <input>.bin)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print extra info while compiling")
	rootCmd.AddCommand(tokensCmd, replCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
