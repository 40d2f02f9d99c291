package forthlet

import (
	"strconv"
	"strings"
)

// builtins maps the fixed primitive vocabulary to operation codes.
// Keys are already in folded form.
var builtins = map[string]opCode{
	"+":    opAdd,
	"-":    opSub,
	"*":    opMul,
	"/":    opDiv,
	"dup":  opDup,
	"drop": opDrop,
	"swap": opSwap,
	"over": opOver,
}

// resolve classifies one token against the current definition table.
// User definitions shadow builtins, so a word named swap or + hides
// the primitive for every later use. A token matching neither table
// must parse as a base-10 integer literal.
func (ev *Evaluator) resolve(token string) (operation, error) {
	if id := ev.symbol(token); id != 0 {
		if _, defined := ev.defs[id]; defined {
			return operation{code: opWord, val: int(id)}, nil
		}
	}
	if code, ok := builtins[foldToken(token)]; ok {
		return operation{code: code}, nil
	}
	if n, err := strconv.ParseInt(token, 10, strconv.IntSize); err == nil {
		return operation{code: opNumber, val: int(n)}, nil
	}
	return operation{}, UnknownCommandError(token)
}

// expand appends the operations a token denotes: a single primitive or
// literal, or the captured body of a defined word spliced in place of
// the reference. Bodies are appended by value, so the caller's copy
// stays untouched by any later redefinition.
func (ev *Evaluator) expand(dst []operation, token string) ([]operation, error) {
	op, err := ev.resolve(token)
	if err != nil {
		return dst, err
	}
	if op.code == opWord {
		id := uint(op.val)
		ev.logf("call %v -> %v", ev.string(id), ev.defs[id])
		return append(dst, ev.defs[id]...), nil
	}
	return append(dst, op), nil
}

// literal reports whether a token would resolve as an integer literal,
// which is what disqualifies it as a definition name.
func literal(token string) bool {
	_, err := strconv.ParseInt(token, 10, strconv.IntSize)
	return err == nil
}

func tokenize(line string) []string {
	return strings.Fields(line)
}
