package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gint-lang/gint-lang/internal/config"
	"github.com/gint-lang/gint-lang/internal/parser"
)

var (
	flagMaxDepth int
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "gint",
	Short: "An expression language over Gaussian integers",
	Long: `gint parses and evaluates arithmetic over Gaussian integers
(complex numbers with integer real and imaginary parts), including
conjugation (z^), the norm (|z|) and conditionals (if c then a else b).

Run without arguments to start the interactive repl.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runREPL,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagMaxDepth, "max-depth", 0, "maximum expression nesting depth (0 = use config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// loadConfig merges the config file, environment and flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return cfg, err
	}
	if flagMaxDepth > 0 {
		cfg.MaxDepth = flagMaxDepth
	}
	if flagNoColor {
		cfg.Color = false
	}
	return cfg, nil
}

// reportSyntax prints a positioned syntax error with its source line
// and caret, then returns a terse error for the exit status.
func reportSyntax(cmd *cobra.Command, src string, err error) error {
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		fmt.Fprintln(cmd.ErrOrStderr(), parser.Render(src, serr))
		return errors.New("syntax error")
	}
	return err
}
