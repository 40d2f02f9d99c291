package forthlet

// @generated from eval_test.go

//go:generate go run scripts/gen_eval_expects.go -- eval_test.go eval_expects_test.go

func withEvalOptions(opts ...Option) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withOptions(opts...)
	}
}

func withEvalLines(lines ...string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withLines(lines...)
	}
}

func withEvalInput(input string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withInput(input)
	}
}

func expectEvalResult(values ...int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectResult(values...)
	}
}

func expectEvalStack(values ...int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectStack(values...)
	}
}

func expectEvalError(target error) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectError(target)
	}
}

func expectEvalUnknownCommand(token string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectUnknownCommand(token)
	}
}

func expectEvalInsufficientOperands(op string, stack ...int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectInsufficientOperands(op, stack...)
	}
}
