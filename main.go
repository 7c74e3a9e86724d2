package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pborman/getopt"
	"golang.org/x/term"

	"github.com/loxlang/rlox/internal/lineinput"
	"github.com/loxlang/rlox/internal/logio"
)

// Exit codes follow sysexits: 64 usage, 65 bad source, 70 runtime failure,
// 74 unreadable input file.
const (
	exUsage    = 64
	exDataErr  = 65
	exSoftware = 70
	exIOErr    = 74
)

func main() {
	var (
		trace = getopt.BoolLong("trace", 't', "log each executed instruction")
		dump  = getopt.BoolLong("dump-code", 'd', "log compiled code before running it")
	)
	getopt.SetParameters("[path]")
	getopt.Parse()
	args := getopt.Args()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	vm := New(
		WithOutput(os.Stdout),
		WithErrorOutput(os.Stderr),
		WithLogf(log.Leveledf("TRACE")),
		WithTrace(*trace),
		WithCodeDump(*dump),
	)

	switch len(args) {
	case 0:
		repl(vm, &log)
	case 1:
		runFile(vm, args[0], &log)
	default:
		fmt.Fprintln(os.Stderr, "Usage: rlox [path]")
		log.SetExitCode(exUsage)
	}
}

// repl interprets stdin a line at a time on one VM, so heap state carries
// across lines. Results are printed by the program's own return, never
// echoed here. The prompt only appears on a terminal.
func repl(vm *VM, log *logio.Logger) {
	in := lineinput.Input{Queue: []io.Reader{os.Stdin}}
	prompt := term.IsTerminal(int(os.Stdin.Fd()))
	for {
		if prompt {
			fmt.Print("> ")
		}
		line, err := in.ReadLine()
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			log.Errorf("read %v: %v", in.Loc, err)
			return
		}
		vm.Interpret(line)
	}
}

func runFile(vm *VM, path string, log *logio.Logger) {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		log.Errorf("could not read %q: %v", path, err)
		log.SetExitCode(exIOErr)
		return
	}
	switch vm.Interpret(string(source)) {
	case InterpretCompileError:
		log.SetExitCode(exDataErr)
	case InterpretRuntimeError:
		log.SetExitCode(exSoftware)
	}
}
