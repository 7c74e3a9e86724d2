package main

import (
	"io"
	"io/ioutil"

	"github.com/loxlang/rlox/internal/flushio"
)

type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withOutput(ioutil.Discard),
	withErrorOutput(ioutil.Discard),
)

// VMOptions combines options into one, flattening nested combinations and
// dropping nils.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(vm *VM) {}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type outputOption struct{ io.Writer }
type errorOutputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withLogfn func(mess string, args ...interface{})
type traceOption bool
type dumpCodeOption bool

func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withErrorOutput(w io.Writer) errorOutputOption { return errorOutputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o errorOutputOption) apply(vm *VM) {
	vm.errOut = o.Writer
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

func (t traceOption) apply(vm *VM) {
	vm.trace = bool(t)
}

func (d dumpCodeOption) apply(vm *VM) {
	vm.dumpCode = bool(d)
}
