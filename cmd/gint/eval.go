package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gint-lang/gint-lang/internal/eval"
	"github.com/gint-lang/gint-lang/internal/parser"
)

var evalDefines []string

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a single expression",
	Example: `  gint eval "(1+2i) * (1-2i)"
  gint eval --define z=3+4i "z * z^"`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringArrayVarP(&evalDefines, "define", "d", nil, "bind an identifier, e.g. --define z=3+4i (repeatable)")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := parser.New(parser.WithMaxDepth(cfg.MaxDepth))

	env := eval.NewEnv()
	for _, def := range evalDefines {
		name, src, ok := strings.Cut(def, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("invalid --define %q (want name=expr)", def)
		}
		expr, err := p.Parse(src)
		if err != nil {
			return fmt.Errorf("define %s: %w", name, err)
		}
		val, err := eval.Eval(expr, env)
		if err != nil {
			return fmt.Errorf("define %s: %w", name, err)
		}
		env.Define(name, val)
	}

	expr, err := p.Parse(args[0])
	if err != nil {
		return reportSyntax(cmd, args[0], err)
	}
	val, err := eval.Eval(expr, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}
