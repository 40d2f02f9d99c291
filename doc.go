/* Package forthlet evaluates a minimal line-oriented Forth.

The language has integer literals, eight primitive words, and user
definitions. An input line is a whitespace-separated token stream and
is either a definition,

	: name body... ;

or a sequence of operations executed left to right against a single
cumulative stack:

	1 2 swap over /

The primitives are + - * / dup drop swap over. Anything else must be a
previously defined word or a base-10 integer. All names are matched
caselessly, and a user definition shadows a primitive of the same
spelling.

The one interesting rule is when a word's body is resolved: at
definition time, not at call time. A definition captures the fully
expanded bodies of every word it mentions, so

	: foo 5 ;
	: bar foo ;
	: foo 6 ;

leaves bar meaning 5. The same rule lets a word be redefined in terms
of its own prior self (: foo foo 1 + ;) without ever creating a cycle,
because the inner reference binds to the strictly older body. Stored
bodies therefore contain only primitives and literals, and execution
is a flat walk of a pending-operation queue rather than a recursive
descent through the dictionary.

An Evaluator is created by New and driven one line at a time through
Process, which returns a copy of the stack bottom-first, or one of the
errors in errors.go. Errors end the call that raised them but never
poison the Evaluator; the stack and table keep whatever the line had
committed before the fault.
*/
package forthlet
