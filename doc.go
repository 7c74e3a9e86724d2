/* Package main: rlox -- a bytecode interpreter for the Lox language

Lox is a small dynamically typed scripting language. This interpreter is a
two stage pipeline with no intermediate tree: a single-pass Pratt compiler
lowers source text straight into stack-machine bytecode, and a stack virtual
machine executes it.

	source text -> scanner -> compiler -> chunk -> VM -> stdout/stderr

The scanner (scanner.go) produces a lazy token stream over an ASCII source
string with one character of lookahead; keywords are recognized by a
hand-written trie. The compiler (compiler.go) keeps only two tokens of state
and resolves operator precedence through a per-token-kind rule table,
emitting instructions and their source lines as it parses. A chunk
(chunk.go) is the unit of compiled code: an instruction stream, a parallel
line map, and a constant pool addressed by 8-bit index. The VM (vm.go) is a
fetch-decode-execute loop over a fixed 256-slot value stack.

Values (value.go) are a tagged variant of nil, boolean, IEEE-754 double, and
heap object. The only heap object so far is the string (object.go); every
heap object is threaded onto an intrusive list owned by the VM. There is no
collector yet: objects live until process exit. The list exists so a future
collector has something to walk.

The rlox command runs a source file, or a read-eval loop when invoked with
no arguments. Program output goes to stdout; compile and runtime diagnostics
go to stderr. See main.go for the exit code contract.
*/
package main
