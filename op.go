package forthlet

import (
	"fmt"
	"strconv"
)

// An operation is one indivisible unit of execution: a primitive word,
// an integer literal to push, or (only ever transiently, during
// resolution) a reference to a defined word. Definition bodies are
// fully expanded when captured, so a stored body never contains an
// opWord entry.
type operation struct {
	code opCode
	val  int // literal value for opNumber, symbol id for opWord
}

type opCode int

// Here's a handy summary of all the forthlet operations:
const (
	opAdd  opCode = iota // +     pop b, pop a, push a+b
	opSub                // -     pop b, pop a, push a-b
	opMul                // *     pop b, pop a, push a*b
	opDiv                // /     pop b, pop a, push a/b truncated toward zero
	opDup                // dup   pop a, push a, push a
	opDrop               // drop  pop a
	opSwap               // swap  pop b, pop a, push b, push a
	opOver               // over  pop b, pop a, push a, push b, push a

	opNumber // <INTERNAL>  push an immediate value
	opWord   // <INTERNAL>  reference to a defined word, resolved away before execution

	opMax
	opLastBuiltin = opOver
)

// opNeeds is how many operands each operation pops, opPuts how many
// values it pushes back. Both are checked before an operation is
// allowed to touch the stack, so a refused operation commits nothing.
var opNeeds = [opMax]int{
	opAdd:  2,
	opSub:  2,
	opMul:  2,
	opDiv:  2,
	opDup:  1,
	opDrop: 1,
	opSwap: 2,
	opOver: 2,
}

var opPuts = [opMax]int{
	opAdd:    1,
	opSub:    1,
	opMul:    1,
	opDiv:    1,
	opDup:    2,
	opSwap:   2,
	opOver:   3,
	opNumber: 1,
}

var opTable [opMax]func(ev *Evaluator, op operation) error
var opNames [opMax]string

func init() {
	opTable = [...]func(ev *Evaluator, op operation) error{
		(*Evaluator).add,
		(*Evaluator).sub,
		(*Evaluator).mul,
		(*Evaluator).div,
		(*Evaluator).dup,
		(*Evaluator).drop,
		(*Evaluator).swap,
		(*Evaluator).over,

		(*Evaluator).pushint,
		(*Evaluator).badword,
	}

	opNames = [...]string{
		"+",
		"-",
		"*",
		"/",
		"dup",
		"drop",
		"swap",
		"over",

		"number",
		"word",
	}
}

func (code opCode) String() string {
	if code < 0 || code >= opMax {
		return fmt.Sprintf("op(%d)", int(code))
	}
	return opNames[code]
}

func (op operation) String() string {
	switch op.code {
	case opNumber:
		return strconv.Itoa(op.val)
	case opWord:
		return fmt.Sprintf("word#%d", op.val)
	}
	return op.code.String()
}
