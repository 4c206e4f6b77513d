package main

import (
	"github.com/spf13/cobra"

	"github.com/gint-lang/gint-lang/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive repl",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r := repl.New(cmd.InOrStdin(), cmd.OutOrStdout(), repl.Options{
		Prompt:   cfg.Prompt,
		Color:    cfg.Color,
		MaxDepth: cfg.MaxDepth,
	})
	return r.Run()
}
