// Package repl implements the interactive read-eval-print loop.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gint-lang/gint-lang/internal/ast"
	"github.com/gint-lang/gint-lang/internal/eval"
	"github.com/gint-lang/gint-lang/internal/parser"
)

// Options configures a REPL session.
type Options struct {
	Prompt   string
	Color    bool
	MaxDepth int
}

// REPL evaluates expressions interactively against a session
// environment. Meta commands are prefixed with ':'.
type REPL struct {
	in     *bufio.Scanner
	out    io.Writer
	env    *eval.Env
	parser *parser.Parser
	prompt string
	styles Styles
}

// New builds a REPL reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *REPL {
	styles := Styles{}
	if opts.Color {
		styles = DefaultStyles()
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "gint> "
	}
	return &REPL{
		in:     bufio.NewScanner(in),
		out:    out,
		env:    eval.NewEnv(),
		parser: parser.New(parser.WithMaxDepth(opts.MaxDepth)),
		prompt: prompt,
		styles: styles,
	}
}

// Run loops until end of input or :quit.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, r.styles.Help.Render("gint - Gaussian integer expressions. Type :help for commands."))
	for {
		fmt.Fprint(r.out, r.styles.Prompt.Render(r.prompt))
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := r.command(line); quit {
				return nil
			}
			continue
		}
		r.evalLine(line)
	}
}

// command handles a meta command and reports whether the loop should
// exit.
func (r *REPL) command(line string) bool {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch name {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		r.printHelp()
	case ":ast":
		expr, err := r.parser.Parse(rest)
		if err != nil {
			r.printParseError(rest, err)
			break
		}
		fmt.Fprintln(r.out, r.styles.Result.Render(expr.String()))
	case ":let":
		r.let(rest)
	default:
		fmt.Fprintln(r.out, r.styles.Error.Render("unknown command "+name))
	}
	return false
}

// let binds an identifier for the session: `:let z 3+4i`. The name must
// itself parse as an identifier, so reserved words stay unbindable.
func (r *REPL) let(args string) {
	name, src, ok := strings.Cut(args, " ")
	if !ok || name == "" || strings.TrimSpace(src) == "" {
		fmt.Fprintln(r.out, r.styles.Error.Render("usage: :let <name> <expr>"))
		return
	}
	nameExpr, err := r.parser.Parse(name)
	if err != nil {
		r.printParseError(name, err)
		return
	}
	id, ok := nameExpr.(*ast.Ident)
	if !ok {
		fmt.Fprintln(r.out, r.styles.Error.Render("not a bindable name: "+name))
		return
	}
	expr, err := r.parser.Parse(src)
	if err != nil {
		r.printParseError(src, err)
		return
	}
	val, err := eval.Eval(expr, r.env)
	if err != nil {
		fmt.Fprintln(r.out, r.styles.Error.Render(err.Error()))
		return
	}
	r.env.Define(id.Name, val)
	fmt.Fprintln(r.out, r.styles.Result.Render(id.Name+" = "+val.String()))
}

func (r *REPL) evalLine(line string) {
	expr, err := r.parser.Parse(line)
	if err != nil {
		r.printParseError(line, err)
		return
	}
	val, err := eval.Eval(expr, r.env)
	if err != nil {
		fmt.Fprintln(r.out, r.styles.Error.Render(err.Error()))
		return
	}
	fmt.Fprintln(r.out, r.styles.Result.Render(val.String()))
}

func (r *REPL) printParseError(src string, err error) {
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		fmt.Fprintln(r.out, r.styles.Error.Render(parser.Render(src, serr)))
		return
	}
	fmt.Fprintln(r.out, r.styles.Error.Render(err.Error()))
}

func (r *REPL) printHelp() {
	help := strings.Join([]string{
		":help               show this help",
		":ast <expr>         print the parsed form of an expression",
		":let <name> <expr>  bind an identifier for this session",
		":quit               leave the repl",
	}, "\n")
	fmt.Fprintln(r.out, r.styles.Help.Render(help))
}
