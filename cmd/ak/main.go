// Command ak is the CLI entry point (§6): it lexes, parses, and evaluates
// a single source file, exiting 0 on success or 1 on any evaluation
// error printed to standard error.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/ak-lang/ak/internal/akconfig"
	"github.com/ak-lang/ak/internal/eval"
	"github.com/ak-lang/ak/internal/lexer"
	"github.com/ak-lang/ak/internal/modloader"
	"github.com/ak-lang/ak/internal/parser"
	"github.com/ak-lang/ak/internal/prototype"
	"github.com/ak-lang/ak/internal/scope"
	"github.com/ak-lang/ak/internal/stdlib"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		fmt.Println("usage: ak <file.ak>")
		return 0
	}
	if args[0] == "--version" {
		fmt.Println("ak " + akconfig.Version)
		return 0
	}

	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		reportf("cannot read %s: %s", path, err)
		return 1
	}

	l := lexer.New(string(src))
	p := parser.New(l)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		reportf("parse error in %s: %s", path, strings.Join(errs, "; "))
		return 1
	}

	cfg, err := akconfig.Load("ak.config.yaml")
	if err != nil {
		reportf("cannot read ak.config.yaml: %s", err)
		return 1
	}

	ev := &eval.Evaluator{Stack: scope.New()}
	ev.Protos = prototype.Default(ev.Apply)
	virtual, err := stdlib.Install(ev.Stack)
	if err != nil {
		reportf("%s", err)
		return 1
	}
	ev.Resolve = modloader.New(cfg.ModuleRoot, virtual).Resolve

	if err := ev.Run(prog); err != nil {
		reportf("%s", err)
		return 1
	}
	return 0
}

// reportf prints a run-tagged error to stderr, coloring it when stderr is
// an attached terminal.
func reportf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	runID := uuid.New().String()[:8]
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[31merror\x1b[0m [%s]: %s\n", runID, msg)
		return
	}
	fmt.Fprintf(os.Stderr, "error [%s]: %s\n", runID, msg)
}
