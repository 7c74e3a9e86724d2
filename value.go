package main

import "strconv"

type valueKind uint8

const (
	valNil valueKind = iota
	valBool
	valNumber
	valObj
)

// value is a tagged variant: nil, boolean, unboxed IEEE-754 double, or a
// handle to a heap object.
type value struct {
	kind valueKind
	b    bool
	num  float64
	obj  *obj
}

func nilValue() value            { return value{kind: valNil} }
func boolValue(b bool) value     { return value{kind: valBool, b: b} }
func numberValue(n float64) value { return value{kind: valNumber, num: n} }
func objValue(o *obj) value      { return value{kind: valObj, obj: o} }

func (v value) isNil() bool    { return v.kind == valNil }
func (v value) isBool() bool   { return v.kind == valBool }
func (v value) isNumber() bool { return v.kind == valNumber }
func (v value) isObj() bool    { return v.kind == valObj }

func (v value) isString() bool { return v.kind == valObj && v.obj.kind == objString }

func (v value) asBool() bool      { return v.b }
func (v value) asNumber() float64 { return v.num }
func (v value) asString() *obj    { return v.obj }

// isFalsey reports Lox truthiness: nil and false are falsey, everything
// else, including 0 and the empty string, is truthy.
func (v value) isFalsey() bool {
	return v.kind == valNil || (v.kind == valBool && !v.b)
}

// equals never crosses tags; numbers compare by IEEE equality (NaN != NaN),
// objects by content.
func (v value) equals(other value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case valNil:
		return true
	case valBool:
		return v.b == other.b
	case valNumber:
		return v.num == other.num
	case valObj:
		return v.obj.equals(other.obj)
	}
	return false
}

func (v value) String() string {
	switch v.kind {
	case valNil:
		return "nil"
	case valBool:
		return strconv.FormatBool(v.b)
	case valNumber:
		return formatNumber(v.num)
	case valObj:
		return v.obj.String()
	}
	return "<invalid value>"
}

// quoted renders like String, except strings keep their quotes; used by the
// disassembler and execution trace where "3" and 3 must read differently.
func (v value) quoted() string {
	if v.isString() {
		return strconv.Quote(v.obj.String())
	}
	return v.String()
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
