package forthlet

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is reported when the divisor on top of the
	// stack is zero, whatever the dividend.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrStackOverflow is reported when an operation would push the
	// stack past the limit set by WithStackLimit.
	ErrStackOverflow = errors.New("stack overflow")
)

// UnknownCommandError reports a token that is neither a defined word,
// a builtin, nor an integer literal. Its value is the offending token.
type UnknownCommandError string

func (token UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", string(token))
}

// IllegalDefinitionError reports a structurally malformed definition
// line: a missing terminator, a missing name, or a name that would
// parse as a number.
type IllegalDefinitionError string

func (reason IllegalDefinitionError) Error() string {
	return fmt.Sprintf("illegal definition: %v", string(reason))
}

// InsufficientOperandsError reports an operation that needed more
// operands than the stack held, along with the stack as it stood when
// the operation was refused.
type InsufficientOperandsError struct {
	Op    string
	Stack []int
}

func (err *InsufficientOperandsError) Error() string {
	return fmt.Sprintf("insufficient operands for %v, stack: %v", err.Op, err.Stack)
}

type codeError uint

func (code codeError) Error() string { return fmt.Sprintf("invalid code %v", uint(code)) }
