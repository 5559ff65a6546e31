package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iWaroz/Magma/lambda"
	"github.com/peterh/liner"
)

const (
	historyFile = ".magma_history"
	promptMain  = "λ> "
	promptCont  = ".. "

	// replSteps bounds each reduction unless a budget is configured, so a
	// divergent term returns control to the prompt.
	replSteps = 1_000_000
)

func historyPath(cfg config) string {
	if cfg.History != "" {
		return cfg.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func cmdRepl(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("repl", "[flags]", stderr)
	flags := addRunFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return 2
	}
	cfg, err := flags.settings(fs)
	if err != nil {
		return errExit(stderr, err)
	}
	if cfg.Steps == 0 && cfg.Timeout == 0 {
		cfg.Steps = replSteps
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath(cfg)
	if f, err := os.Open(hist); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if hist == "" {
			return
		}
		if f, err := os.Create(hist); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readTerm(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}
		switch cmd := strings.TrimSpace(src); {
		case cmd == "":
			continue
		case cmd == ":quit":
			return 0
		case strings.HasPrefix(cmd, ":"):
			fmt.Fprintln(stdout, "unknown command. Type :quit to exit.")
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		evalTerm(src, cfg, stdout, stderr)
	}
}

// evalTerm reduces one term and prints its normal form, plus its value when
// it decodes as a numeral, boolean or array.
func evalTerm(src string, cfg config, stdout, stderr io.Writer) {
	g, err := lambda.Parse(src)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return
	}
	res, err := g.Normalize(reduceOptions(cfg, stderr))
	if err != nil {
		fmt.Fprintf(stderr, "%v after %d steps\n", err, res.Steps)
		return
	}
	fmt.Fprintf(stdout, "β> %s\n", printer(g, cfg.Color)(g.Root))
	if v := g.Show(g.Root); v != g.String(g.Root) {
		fmt.Fprintf(stdout, "=  %s\n", v)
	}
	fmt.Fprintf(stdout, "(%d steps)\n", res.Steps)
}

// readTerm reads lines until they form a term, or until the parser rejects
// them for a reason other than running out of input.
func readTerm(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if src := b.String(); !needsMore(src) {
			return src, true
		}
	}
}

// needsMore reports whether src is an unfinished term.
func needsMore(src string) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") || strings.TrimSpace(src) == "" {
		return false
	}
	_, err := lambda.Parse(src)
	return lambda.IsIncomplete(err)
}
