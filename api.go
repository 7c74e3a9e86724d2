package main

import (
	"fmt"
	"io"

	"github.com/loxlang/rlox/internal/logio"
	"github.com/loxlang/rlox/internal/panicerr"
)

// InterpretResult is the outcome of one Interpret call.
type InterpretResult int

const (
	InterpretOk InterpretResult = iota
	InterpretCompileError
	InterpretRuntimeError
)

func (r InterpretResult) String() string {
	switch r {
	case InterpretOk:
		return "Ok"
	case InterpretCompileError:
		return "CompileError"
	case InterpretRuntimeError:
		return "RuntimeError"
	}
	return fmt.Sprintf("InterpretResult(%d)", int(r))
}

// New creates a VM. With no options both output streams are discarded; pass
// WithOutput and WithErrorOutput to see program output and diagnostics.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Interpret compiles source as a single expression into a fresh chunk and
// executes it. Compile diagnostics and runtime errors go to the error
// output; the value printed by the program's return goes to the program
// output. Heap objects created along the way stay owned by the VM.
func (vm *VM) Interpret(source string) InterpretResult {
	var ch chunk
	if !compile(source, &ch, &vm.heap, vm.errOut) {
		return InterpretCompileError
	}

	if vm.dumpCode && vm.logfn != nil {
		lw := logio.Writer{Logf: vm.logfn}
		disassembleChunk(&lw, &ch, "code")
		lw.Close()
	}

	vm.chunk = &ch
	vm.ip = 0

	result := InterpretOk
	err := panicerr.Recover("rlox vm", func() error {
		result = vm.run()
		return nil
	})
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		fmt.Fprintf(vm.errOut, "internal error: %v\n", err)
		vm.resetStack()
		result = InterpretRuntimeError
	}

	vm.chunk = nil
	return result
}

// WithOutput directs program output (the value printed at return) to w.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithErrorOutput directs compile and runtime diagnostics to w.
func WithErrorOutput(w io.Writer) VMOption { return withErrorOutput(w) }

// WithTee mirrors program output into w as well.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithLogf installs the logging function used by tracing and code dumps.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// WithTrace logs every instruction dispatched, with the operand stack,
// through the WithLogf function.
func WithTrace(enabled bool) VMOption { return traceOption(enabled) }

// WithCodeDump logs each chunk's disassembly after compiling it, before
// running it.
func WithCodeDump(enabled bool) VMOption { return dumpCodeOption(enabled) }
