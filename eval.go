package forthlet

// An Evaluator owns one data stack and one definition table, both of
// which accumulate across Process calls for the lifetime of the
// instance. It is not safe for concurrent use; give each logical
// session its own Evaluator or serialize access externally.
type Evaluator struct {
	logging
	symbols

	stack []int
	defs  map[uint][]operation

	stackLimit int
}

// New returns an evaluator with an empty stack and an empty definition
// table.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{defs: make(map[uint][]operation)}
	Options(opts...).apply(ev)
	return ev
}

// Process evaluates one line of whitespace-separated tokens: either a
// definition of the form `: name ... ;`, or a sequence of operations
// executed left to right against the accumulated stack. On success it
// returns a copy of the stack, bottom first. A failed call returns no
// value and leaves the evaluator exactly as the line had left it
// before the failing step; later calls are unaffected.
func (ev *Evaluator) Process(line string) ([]int, error) {
	tokens := tokenize(line)
	if len(tokens) > 0 && tokens[0] == ":" {
		if err := ev.define(tokens); err != nil {
			return nil, err
		}
	} else if err := ev.run(tokens); err != nil {
		return nil, err
	}
	return ev.snapshot(), nil
}

// define captures a new word. The body is resolved against the table
// as it stands right now and stored fully expanded, so the definition
// binds eagerly: redefining a word it mentions later, including the
// word itself, cannot reach back into bodies already captured.
func (ev *Evaluator) define(tokens []string) error {
	if tokens[len(tokens)-1] != ";" {
		return IllegalDefinitionError("missing ; terminator")
	}
	if len(tokens) < 3 {
		return IllegalDefinitionError("missing name")
	}
	name := tokens[1]
	if literal(name) {
		return IllegalDefinitionError("numeric name " + name)
	}

	body := make([]operation, 0, len(tokens)-3)
	for _, token := range tokens[2 : len(tokens)-1] {
		var err error
		if body, err = ev.expand(body, token); err != nil {
			return err
		}
	}

	id := ev.symbolicate(name)
	ev.logf("define %v <- %v", ev.string(id), body)
	ev.defs[id] = body
	return nil
}

// run executes an execution line. Each token expands onto a pending
// operation queue, a defined word splicing its body in ahead of the
// remaining tokens, and the queue drains before the next token is
// read; nested definitions were flattened at capture time, so the
// queue never nests further.
func (ev *Evaluator) run(tokens []string) error {
	if ev.logfn != nil {
		defer ev.withLogPrefix("	")()
	}

	var pending []operation
	for _, token := range tokens {
		var err error
		if pending, err = ev.expand(pending[:0], token); err != nil {
			return err
		}
		for _, op := range pending {
			if err := ev.step(op); err != nil {
				return err
			}
		}
	}
	return nil
}

// step checks an operation's stack needs and then executes it. Both
// checks happen before any mutation, so a failing step is a no-op.
func (ev *Evaluator) step(op operation) error {
	if need := opNeeds[op.code]; len(ev.stack) < need {
		return &InsufficientOperandsError{Op: op.String(), Stack: ev.snapshot()}
	} else if limit := ev.stackLimit; limit != 0 && len(ev.stack)-need+opPuts[op.code] > limit {
		return ErrStackOverflow
	}
	ev.logf("exec %v -- s:%v", op, ev.stack)
	return opTable[op.code](ev, op)
}

func (ev *Evaluator) add(operation) error { b, a := ev.pop(), ev.pop(); ev.push(a + b); return nil }
func (ev *Evaluator) sub(operation) error { b, a := ev.pop(), ev.pop(); ev.push(a - b); return nil }
func (ev *Evaluator) mul(operation) error { b, a := ev.pop(), ev.pop(); ev.push(a * b); return nil }

func (ev *Evaluator) div(operation) error {
	if ev.stack[len(ev.stack)-1] == 0 {
		return ErrDivideByZero
	}
	b, a := ev.pop(), ev.pop()
	ev.push(a / b)
	return nil
}

func (ev *Evaluator) dup(operation) error  { a := ev.pop(); ev.push(a, a); return nil }
func (ev *Evaluator) drop(operation) error { ev.pop(); return nil }
func (ev *Evaluator) swap(operation) error { b, a := ev.pop(), ev.pop(); ev.push(b, a); return nil }
func (ev *Evaluator) over(operation) error { b, a := ev.pop(), ev.pop(); ev.push(a, b, a); return nil }

func (ev *Evaluator) pushint(op operation) error { ev.push(op.val); return nil }

// badword guards the table slot for transient word references, which
// expand resolves away before step ever sees them.
func (ev *Evaluator) badword(op operation) error { return codeError(op.code) }

func (ev *Evaluator) push(vals ...int) {
	ev.stack = append(ev.stack, vals...)
}

func (ev *Evaluator) pop() (val int) {
	i := len(ev.stack) - 1
	val, ev.stack = ev.stack[i], ev.stack[:i]
	return val
}

func (ev *Evaluator) snapshot() []int {
	stack := make([]int, len(ev.stack))
	copy(stack, ev.stack)
	return stack
}
