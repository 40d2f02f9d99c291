package forthlet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func literalLine(vals []int) string {
	parts := make([]string, len(vals))
	for i, val := range vals {
		parts[i] = strconv.Itoa(val)
	}
	return strings.Join(parts, " ")
}

// genOperands generates stacks holding at least min values.
func genOperands(min int) gopter.Gen {
	return gen.SliceOf(gen.IntRange(-9999, 9999)).SuchThat(func(vals []int) bool {
		return len(vals) >= min
	})
}

// genDivisor generates nonzero divisors.
func genDivisor() gopter.Gen {
	return gen.OneGenOf(gen.IntRange(-9999, -1), gen.IntRange(1, 9999))
}

func equalStacks(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runOn seeds a fresh evaluator with vals and then runs one more line.
func runOn(vals []int, line string) ([]int, error) {
	ev := New()
	if _, err := ev.Process(literalLine(vals)); err != nil {
		return nil, err
	}
	return ev.Process(line)
}

func mixCase(word string, upper []bool) string {
	var sb strings.Builder
	for i, r := range word {
		if i < len(upper) && upper[i] {
			sb.WriteString(strings.ToUpper(string(r)))
		} else {
			sb.WriteString(string(r))
		}
	}
	return sb.String()
}

func Test_Evaluator_properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("literals land on the stack in input order", prop.ForAll(
		func(vals []int) bool {
			stack, err := New().Process(literalLine(vals))
			return err == nil && equalStacks(vals, stack)
		},
		genOperands(0),
	))

	properties.Property("a b + pushes a+b", prop.ForAll(
		func(a, b int) bool {
			stack, err := New().Process(fmt.Sprintf("%v %v +", a, b))
			return err == nil && equalStacks([]int{a + b}, stack)
		},
		gen.Int(), gen.Int(),
	))

	properties.Property("a b - pushes a-b", prop.ForAll(
		func(a, b int) bool {
			stack, err := New().Process(fmt.Sprintf("%v %v -", a, b))
			return err == nil && equalStacks([]int{a - b}, stack)
		},
		gen.Int(), gen.Int(),
	))

	properties.Property("a b * pushes a*b", prop.ForAll(
		func(a, b int) bool {
			stack, err := New().Process(fmt.Sprintf("%v %v *", a, b))
			return err == nil && equalStacks([]int{a * b}, stack)
		},
		gen.Int(), gen.Int(),
	))

	properties.Property("a b / pushes the truncated quotient", prop.ForAll(
		func(a, b int) bool {
			stack, err := New().Process(fmt.Sprintf("%v %v /", a, b))
			return err == nil && equalStacks([]int{a / b}, stack)
		},
		gen.Int(), genDivisor(),
	))

	properties.Property("dividing by zero always fails", prop.ForAll(
		func(a int) bool {
			_, err := New().Process(fmt.Sprintf("%v 0 /", a))
			return errors.Is(err, ErrDivideByZero)
		},
		gen.Int(),
	))

	properties.Property("dup doubles the top value", prop.ForAll(
		func(vals []int) bool {
			want := append(append([]int{}, vals...), vals[len(vals)-1])
			stack, err := runOn(vals, "dup")
			return err == nil && equalStacks(want, stack)
		},
		genOperands(1),
	))

	properties.Property("drop discards the top value", prop.ForAll(
		func(vals []int) bool {
			stack, err := runOn(vals, "drop")
			return err == nil && equalStacks(vals[:len(vals)-1], stack)
		},
		genOperands(1),
	))

	properties.Property("swap exchanges the top pair", prop.ForAll(
		func(vals []int) bool {
			want := append([]int{}, vals...)
			n := len(want)
			want[n-1], want[n-2] = want[n-2], want[n-1]
			stack, err := runOn(vals, "swap")
			return err == nil && equalStacks(want, stack)
		},
		genOperands(2),
	))

	properties.Property("over copies the second value up", prop.ForAll(
		func(vals []int) bool {
			want := append(append([]int{}, vals...), vals[len(vals)-2])
			stack, err := runOn(vals, "over")
			return err == nil && equalStacks(want, stack)
		},
		genOperands(2),
	))

	properties.Property("calling a word is textual substitution", prop.ForAll(
		func(body []int) bool {
			direct, err := New().Process(literalLine(body))
			if err != nil {
				return false
			}
			ev := New()
			if _, err := ev.Process(": w " + literalLine(body) + " ;"); err != nil {
				return false
			}
			called, err := ev.Process("w")
			return err == nil && equalStacks(direct, called)
		},
		genOperands(0),
	))

	properties.Property("builtin names are caseless", prop.ForAll(
		func(val int, upper []bool) bool {
			stack, err := New().Process(fmt.Sprintf("%v %v", val, mixCase("dup", upper)))
			return err == nil && equalStacks([]int{val, val}, stack)
		},
		gen.Int(), gen.SliceOfN(3, gen.Bool()),
	))

	properties.Property("defined names are caseless", prop.ForAll(
		func(val int, upper []bool) bool {
			ev := New()
			if _, err := ev.Process(": quad dup dup dup ;"); err != nil {
				return false
			}
			stack, err := ev.Process(fmt.Sprintf("%v %v", val, mixCase("quad", upper)))
			return err == nil && equalStacks([]int{val, val, val, val}, stack)
		},
		gen.Int(), gen.SliceOfN(4, gen.Bool()),
	))

	properties.TestingRun(t)
}
