// Command tscfront is the CLI driver for the front end: it type-checks
// source files against the pipeline in internal/driver, or launches the
// type-check-only REPL in internal/replcheck.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/tscheme-lang/tscfront/internal/config"
	"github.com/tscheme-lang/tscfront/internal/driver"
	"github.com/tscheme-lang/tscfront/internal/emit"
	"github.com/tscheme-lang/tscfront/internal/replcheck"
	"github.com/tscheme-lang/tscfront/internal/sexpr"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		os.Exit(runCheck(os.Args[2:]))
	case "repl":
		runRepl(os.Args[2:])
	case "--help", "-h", "help":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command '%s'\n", red("error"), os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(bold("tscfront") + " — a typed front end for the tscheme surface language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s  Type-check a file and report diagnostics\n", cyan("tscfront check <file.tsc> [--config path.yaml] [--verbose] [--emit]"))
	fmt.Printf("  %s  Start the type-check REPL\n", cyan("tscfront repl [--config path.yaml]"))
}

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	cfgPath := fs.String("config", "", "path to a YAML config file")
	verbose := fs.Bool("verbose", false, "print each SCC as it is inferred")
	emitFlag := fs.Bool("emit", false, "print the re-serialized definitions on success")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("error"))
		fmt.Println("Usage: tscfront check <file.tsc>")
		return 1
	}
	filename := fs.Arg(0)
	// Flags may also follow the file name, as in the usage line.
	fs.Parse(fs.Args()[1:])

	opts := config.Defaults()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
			return 1
		}
		opts = loaded
	}
	if *verbose {
		opts.Verbose = true
	}
	if *emitFlag {
		opts.Emit = true
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read file '%s': %v\n", red("error"), filename, err)
		return 1
	}

	forms, readErrs := sexpr.Read(filename, content)
	if len(readErrs) > 0 {
		for _, e := range readErrs {
			fmt.Fprintf(os.Stderr, "in %s: %s\n", e.Span, e.Message)
		}
		return 1
	}

	result := driver.Compile(forms, opts.Verbose)
	if result.Diagnostics.HasErrors() {
		fmt.Fprintln(os.Stderr, result.Diagnostics.Render())
		return 1
	}

	fmt.Fprintf(os.Stdout, "%s %s: no errors\n", green("✓"), filename)
	if opts.Emit {
		fmt.Println(emit.Emit(result.Definitions))
	}
	return 0
}

func runRepl(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	cfgPath := fs.String("config", "", "path to a YAML config file")
	fs.Parse(args)

	opts := config.Defaults()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
			os.Exit(1)
		}
		opts = loaded
	}

	session := replcheck.New(opts)
	session.Start(os.Stdin, os.Stdout)
}
