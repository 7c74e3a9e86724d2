package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_chunk_write(t *testing.T) {
	var ch chunk
	ch.writeOp(opConstant, 1)
	ch.write(0, 1)
	ch.writeOp(opReturn, 2)

	assert.Equal(t, []byte{byte(opConstant), 0, byte(opReturn)}, ch.code)
	assert.Equal(t, []int{1, 1, 2}, ch.lines)
	assert.Len(t, ch.lines, len(ch.code))
}

func Test_chunk_addConstant(t *testing.T) {
	var ch chunk
	assert.Equal(t, 0, ch.addConstant(numberValue(1)))
	assert.Equal(t, 1, ch.addConstant(numberValue(2)))
	assert.Equal(t, 2, ch.addConstant(nilValue()))
	require.Len(t, ch.constants, 3)
	assert.Equal(t, 2.0, ch.constants[1].asNumber())
}

func Test_opCode_String(t *testing.T) {
	for op, want := range map[opCode]string{
		opConstant: "OP_CONSTANT",
		opNil:      "OP_NIL",
		opTrue:     "OP_TRUE",
		opFalse:    "OP_FALSE",
		opEqual:    "OP_EQUAL",
		opGreater:  "OP_GREATER",
		opLess:     "OP_LESS",
		opAdd:      "OP_ADD",
		opSubtract: "OP_SUBTRACT",
		opMultiply: "OP_MULTIPLY",
		opDivide:   "OP_DIVIDE",
		opNot:      "OP_NOT",
		opNegate:   "OP_NEGATE",
		opReturn:   "OP_RETURN",
	} {
		assert.Equal(t, want, op.String())
	}
	assert.Equal(t, "OP_UNKNOWN(0x63)", opCode(99).String())
}

func Test_objects_list(t *testing.T) {
	var heap objects
	a := heap.copyString(`"one"`)
	b := heap.takeString([]byte("two"))

	assert.Equal(t, "one", a.String())
	assert.Equal(t, "two", b.String())

	// newest first, all tracked
	require.Same(t, b, heap.head)
	require.Same(t, a, heap.head.next)
	assert.Nil(t, heap.head.next.next)
}
