// Command magma compiles Magma programs to lambda calculus and reduces lambda
// terms to normal form.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/iWaroz/Magma/lambda"
	"github.com/iWaroz/Magma/magma"
)

const usageText = `usage: magma <command> [flags] [file]

commands:
  compile file.mg [out.lc]   compile a Magma program to a lambda term
  run [flags] file.lc        reduce a lambda term and decode its output
  exec [flags] file.mg       compile and run a Magma program
  ast file.mg                print the syntax tree and variable slots
  repl [flags]               reduce lambda terms interactively

Run 'magma <command> -h' for the flags of a command.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func errExit(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, err)
	return 1
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return 2
	}
	switch cmd, rest := args[0], args[1:]; cmd {
	case "compile":
		return cmdCompile(rest, stdout, stderr)
	case "run":
		return cmdRun("run", rest, stdout, stderr)
	case "exec":
		return cmdRun("exec", rest, stdout, stderr)
	case "ast":
		return cmdAst(rest, stdout, stderr)
	case "repl":
		return cmdRepl(rest, stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usageText)
		return 0
	default:
		fmt.Fprintf(stderr, "magma: unknown command %q\n\n%s", cmd, usageText)
		return 2
	}
}

func newFlagSet(name, args string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: magma %s %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

func cmdCompile(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("compile", "file.mg [out.lc]", stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return 2
	}
	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return errExit(stderr, err)
	}
	term, err := magma.CompileSource(string(src))
	if err != nil {
		return errExit(stderr, err)
	}
	if fs.NArg() == 1 {
		fmt.Fprintln(stdout, term)
		return 0
	}
	if err := os.WriteFile(fs.Arg(1), []byte(term+"\n"), 0o644); err != nil {
		return errExit(stderr, err)
	}
	return 0
}

func cmdAst(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("ast", "file.mg", stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return errExit(stderr, err)
	}
	prog, err := magma.ParseSource(string(src))
	if err != nil {
		return errExit(stderr, err)
	}
	fmt.Fprint(stdout, magma.Dump(prog))
	slots := magma.Slots(prog)
	for _, name := range slots.Names() {
		fmt.Fprintf(stdout, "slot %d: %s\n", slots[name], name)
	}
	return 0
}

func reduceOptions(cfg config, stderr io.Writer) lambda.Options {
	opts := lambda.Options{MaxSteps: cfg.Steps, Timeout: cfg.Timeout}
	if cfg.Progress > 0 {
		opts.Logger = slog.New(slog.NewTextHandler(stderr, nil))
		opts.ReportEvery = cfg.Progress
	}
	return opts
}

func printer(g *lambda.Graph, color bool) func(lambda.Ref) string {
	if color {
		return g.Pretty
	}
	return g.String
}

// cmdRun reduces a lambda term file (run) or a compiled Magma program (exec)
// and prints what the program printed.
func cmdRun(name string, args []string, stdout, stderr io.Writer) int {
	file := "file.lc"
	if name == "exec" {
		file = "file.mg"
	}
	fs := newFlagSet(name, "[flags] "+file, stderr)
	flags := addRunFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	cfg, err := flags.settings(fs)
	if err != nil {
		return errExit(stderr, err)
	}
	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return errExit(stderr, err)
	}
	text := string(src)
	if name == "exec" {
		if text, err = magma.CompileSource(text); err != nil {
			return errExit(stderr, err)
		}
	}
	g, err := lambda.Parse(text)
	if err != nil {
		return errExit(stderr, fmt.Errorf("%s: %w", fs.Arg(0), err))
	}
	show := printer(g, cfg.Color)
	if !flags.quiet {
		fmt.Fprintf(stdout, "|> %s\n", show(g.Root))
	}
	res, err := g.Normalize(reduceOptions(cfg, stderr))
	if errors.Is(err, lambda.ErrBudgetExceeded) {
		return errExit(stderr, fmt.Errorf("%w after %d steps", err, res.Steps))
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "β> %s\n", show(g.Root))
	}
	out, err := g.DecodeOutput()
	if err != nil {
		var de *lambda.DecodeError
		if cfg.Color && errors.As(err, &de) {
			return errExit(stderr, fmt.Errorf("decode: %s: %s", de.Reason, de.Pretty()))
		}
		return errExit(stderr, err)
	}
	for _, r := range out {
		if flags.quiet {
			fmt.Fprintln(stdout, g.Show(r))
		} else {
			fmt.Fprintf(stdout, "P> %s\n", g.Show(r))
		}
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Executed in %d steps\n", res.Steps)
		fmt.Fprintf(stdout, "Took %f seconds\n", res.Elapsed.Seconds())
	}
	return 0
}
