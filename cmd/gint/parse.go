package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gint-lang/gint-lang/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:     "parse <expr>",
	Short:   "Print the parsed form of an expression",
	Example: `  gint parse "1+2*3i^"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	expr, err := parser.Parse(args[0], parser.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		return reportSyntax(cmd, args[0], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), expr)
	return nil
}
