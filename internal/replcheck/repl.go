// Package replcheck implements a type-check-only REPL: it reads a
// form, type-checks it against accumulated definitions, and prints
// schemes. For :type it prints the scheme of the most recently inferred
// definition, not the expression's own type. It never evaluates
// anything.
package replcheck

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/tscheme-lang/tscfront/internal/config"
	"github.com/tscheme-lang/tscfront/internal/diag"
	"github.com/tscheme-lang/tscfront/internal/driver"
	"github.com/tscheme-lang/tscfront/internal/ir"
	"github.com/tscheme-lang/tscfront/internal/irparse"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Session accumulates definitions typed across REPL turns.
type Session struct {
	opts    config.Options
	forms   []sexpr.SExpr
	last    *driver.Result
	history []string
}

// New starts an empty session.
func New(opts config.Options) *Session {
	return &Session{opts: opts}
}

func (s *Session) recompile() {
	s.last = driver.Compile(s.forms, s.opts.Verbose)
}

// Start runs the interactive loop against in/out.
func (s *Session) Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)

	if f, err := os.Open(s.opts.HistoryFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(s.opts.HistoryFile); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	line.SetCompleter(func(input string) (c []string) {
		if strings.HasPrefix(input, ":") {
			for _, cmd := range []string{":type", ":def", ":reset", ":quit"} {
				if strings.HasPrefix(cmd, input) {
					c = append(c, cmd)
				}
			}
		}
		return c
	})

	fmt.Fprintln(out, dim("type-check REPL — :type <expr>, :def <form>, :reset, :quit"))

	for {
		input, err := line.Prompt("tsc> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\ngoodbye"))
			return
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		s.history = append(s.history, input)

		switch {
		case input == ":quit" || input == ":q":
			fmt.Fprintln(out, green("goodbye"))
			return
		case input == ":reset":
			s.forms = nil
			s.last = nil
			fmt.Fprintln(out, yellow("session reset"))
		case strings.HasPrefix(input, ":type "):
			s.handleType(strings.TrimPrefix(input, ":type "), out)
		case strings.HasPrefix(input, ":def "):
			s.handleDef(strings.TrimPrefix(input, ":def "), out)
		default:
			fmt.Fprintln(out, dim("unknown command, expected :type, :def, :reset, or :quit"))
		}
	}
}

func (s *Session) handleType(src string, out io.Writer) {
	forms, readErrs := sexpr.Read("<repl>", []byte(src))
	if len(readErrs) > 0 {
		printReadErrors(readErrs, out)
		return
	}
	if len(forms) != 1 {
		fmt.Fprintln(out, red("error")+": :type expects exactly one expression")
		return
	}

	trial := append(append([]sexpr.SExpr{}, s.forms...), forms[0])
	result := driver.Compile(trial, s.opts.Verbose)
	if result.Diagnostics.HasErrors() {
		printDiagnostics(result.Diagnostics, out)
		return
	}

	expr, exprErrs := irparse.ParseExpr(forms[0])
	if exprErrs.HasErrors() {
		printDiagnostics(exprErrs, out)
		return
	}
	printExprType(expr, result, out)
}

func printExprType(_ ir.Expr, result *driver.Result, out io.Writer) {
	if len(result.Definitions) == 0 {
		fmt.Fprintln(out, dim(": (expression type unavailable without a named binding)"))
		return
	}
	last := result.Definitions[len(result.Definitions)-1]
	if scheme, ok := result.Schemes[last.Name()]; ok {
		fmt.Fprintf(out, "%s %s %s\n", cyan(last.Name()), dim("::"), scheme.String())
	}
}

func (s *Session) handleDef(src string, out io.Writer) {
	forms, readErrs := sexpr.Read("<repl>", []byte(src))
	if len(readErrs) > 0 {
		printReadErrors(readErrs, out)
		return
	}
	if len(forms) != 1 {
		fmt.Fprintln(out, red("error")+": :def expects exactly one definition")
		return
	}

	trial := append(append([]sexpr.SExpr{}, s.forms...), forms[0])
	result := driver.Compile(trial, s.opts.Verbose)
	if result.Diagnostics.HasErrors() {
		printDiagnostics(result.Diagnostics, out)
		return
	}

	s.forms = trial
	s.recompile()
	for name, scheme := range result.Schemes {
		fmt.Fprintf(out, "%s %s %s\n", cyan(name), dim("::"), scheme.String())
	}
}

func printReadErrors(errs []sexpr.ReadError, out io.Writer) {
	for _, e := range errs {
		fmt.Fprintf(out, "%s: %s\n", red("syntax error"), e.Error())
	}
}

func printDiagnostics(bag diag.Bag, out io.Writer) {
	fmt.Fprintln(out, red("error"))
	fmt.Fprintln(out, bag.Render())
}
