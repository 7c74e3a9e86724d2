package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// precedence levels, lowest binding first. Call and Primary are reserved
// for later stages of the language.
type precedence uint8

const (
	precNone precedence = iota
	precAssignment
	precOr
	precAnd
	precEquality
	precComparison
	precTerm
	precFactor
	precUnary
	precCall
	precPrimary
)

type parseFn func(c *compiler)

// parseRule is one row of the Pratt dispatch table: how a token kind parses
// in prefix position, in infix position, and how tightly it binds as an
// infix operator. Token kinds with no row get the zero rule: no prefix
// (an "Expect expression." error), no infix, precNone.
type parseRule struct {
	prefix parseFn
	infix  parseFn
	prec   precedence
}

var parseRules = [tokenKindCount]parseRule{
	tokenLeftParen:    {prefix: (*compiler).grouping},
	tokenMinus:        {prefix: (*compiler).unary, infix: (*compiler).binary, prec: precTerm},
	tokenPlus:         {infix: (*compiler).binary, prec: precTerm},
	tokenSlash:        {infix: (*compiler).binary, prec: precFactor},
	tokenStar:         {infix: (*compiler).binary, prec: precFactor},
	tokenBang:         {prefix: (*compiler).unary},
	tokenBangEqual:    {infix: (*compiler).binary, prec: precEquality},
	tokenEqualEqual:   {infix: (*compiler).binary, prec: precEquality},
	tokenGreater:      {infix: (*compiler).binary, prec: precComparison},
	tokenGreaterEqual: {infix: (*compiler).binary, prec: precComparison},
	tokenLess:         {infix: (*compiler).binary, prec: precComparison},
	tokenLessEqual:    {infix: (*compiler).binary, prec: precComparison},
	tokenNumber:       {prefix: (*compiler).number},
	tokenString:       {prefix: (*compiler).stringLiteral},
	tokenFalse:        {prefix: (*compiler).literal},
	tokenNil:          {prefix: (*compiler).literal},
	tokenTrue:         {prefix: (*compiler).literal},
}

// compiler is a single-pass Pratt parser that emits bytecode as it goes. It
// holds exactly two tokens of state and never backtracks.
type compiler struct {
	scan   scanner
	ch     *chunk
	heap   *objects
	errOut io.Writer

	previous token
	current  token

	hadError  bool
	panicMode bool
}

// compile scans and parses source as a single expression, emitting into ch.
// String constants are allocated on heap. Reports errors on errOut; returns
// false if any fired.
func compile(source string, ch *chunk, heap *objects, errOut io.Writer) bool {
	c := compiler{scan: newScanner(source), ch: ch, heap: heap, errOut: errOut}
	c.advance()
	c.expression()
	c.consume(tokenEOF, "Expect end of expression.")
	c.end()
	return !c.hadError
}

// advance rolls current into previous and pulls the next token, reporting
// and skipping any error tokens on the way.
func (c *compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scan.scanToken()
		if c.current.kind != tokenError {
			break
		}
		c.errorAtCurrent(c.current.lexeme)
	}
}

func (c *compiler) consume(kind tokenKind, message string) {
	if c.current.kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

func (c *compiler) expression() {
	c.parsePrecedence(precAssignment)
}

// parsePrecedence parses an expression whose operators all bind at least as
// tightly as min. On a missing prefix rule it reports and returns at once,
// leaving current untouched for any surrounding synchronizer.
func (c *compiler) parsePrecedence(min precedence) {
	c.advance()
	prefix := parseRules[c.previous.kind].prefix
	if prefix == nil {
		c.error("Expect expression.")
		return
	}
	prefix(c)

	for parseRules[c.current.kind].prec >= min {
		c.advance()
		parseRules[c.previous.kind].infix(c)
	}
}

func (c *compiler) grouping() {
	c.expression()
	c.consume(tokenRightParen, "Expect ')' after expression.")
}

func (c *compiler) unary() {
	op := c.previous.kind

	c.parsePrecedence(precUnary)

	switch op {
	case tokenBang:
		c.emitOp(opNot)
	case tokenMinus:
		c.emitOp(opNegate)
	}
}

// binary compiles the right operand one level tighter than the operator, so
// equal-precedence chains associate left. The compound comparisons lower to
// the primitive order plus opNot: a >= b is !(a < b), which reads true when
// either operand is NaN. That consequence is accepted here rather than
// spending two more opcodes.
func (c *compiler) binary() {
	op := c.previous.kind

	rule := parseRules[op]
	c.parsePrecedence(rule.prec + 1)

	switch op {
	case tokenPlus:
		c.emitOp(opAdd)
	case tokenMinus:
		c.emitOp(opSubtract)
	case tokenStar:
		c.emitOp(opMultiply)
	case tokenSlash:
		c.emitOp(opDivide)
	case tokenBangEqual:
		c.emitOps(opEqual, opNot)
	case tokenEqualEqual:
		c.emitOp(opEqual)
	case tokenGreater:
		c.emitOp(opGreater)
	case tokenGreaterEqual:
		c.emitOps(opLess, opNot)
	case tokenLess:
		c.emitOp(opLess)
	case tokenLessEqual:
		c.emitOps(opGreater, opNot)
	}
}

func (c *compiler) number() {
	n, _ := strconv.ParseFloat(c.previous.lexeme, 64)
	c.emitConstant(numberValue(n))
}

func (c *compiler) stringLiteral() {
	c.emitConstant(objValue(c.heap.copyString(c.previous.lexeme)))
}

func (c *compiler) literal() {
	switch c.previous.kind {
	case tokenFalse:
		c.emitOp(opFalse)
	case tokenNil:
		c.emitOp(opNil)
	case tokenTrue:
		c.emitOp(opTrue)
	}
}

func (c *compiler) emitByte(b byte) {
	c.ch.write(b, c.previous.line)
}

func (c *compiler) emitOp(op opCode) { c.emitByte(byte(op)) }

func (c *compiler) emitOps(a, b opCode) {
	c.emitOp(a)
	c.emitOp(b)
}

func (c *compiler) emitConstant(v value) {
	index := c.makeConstant(v)
	c.emitOp(opConstant)
	c.emitByte(index)
}

// makeConstant adds v to the chunk's constant pool. The pool is addressed
// by one byte; a 257th constant is a compile error and index 0 stands in so
// emission stays deterministic.
func (c *compiler) makeConstant(v value) byte {
	if len(c.ch.constants) > math.MaxUint8 {
		c.error("Too many constants in one chunk.")
		return 0
	}
	return byte(c.ch.addConstant(v))
}

func (c *compiler) end() {
	c.emitOp(opReturn)
}

func (c *compiler) errorAtCurrent(message string) { c.errorAt(c.current, message) }
func (c *compiler) error(message string)          { c.errorAt(c.previous, message) }

// errorAt reports one diagnostic and enters panic mode; while panicked all
// further reports are swallowed. hadError stays sticky either way.
func (c *compiler) errorAt(tok token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true

	fmt.Fprintf(c.errOut, "[line %d] Error", tok.line)
	switch tok.kind {
	case tokenEOF:
		fmt.Fprint(c.errOut, " at end")
	case tokenError:
		// the scanner's message is the message
	default:
		fmt.Fprintf(c.errOut, " at '%s'", tok.lexeme)
	}
	fmt.Fprintf(c.errOut, ": %s\n", message)

	c.hadError = true
}
