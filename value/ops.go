package value

import (
	"strings"

	"github.com/yolol-lang/yolol-core/errs"
)

// Op identifies a binary operator for the purposes of the operator matrix
// and the may-throw predicate table (spec.md §4.2, §9). It is distinct
// from ast.Kind so this package doesn't need to import ast just to run the
// matrix directly from Go code (e.g. from tests or from the smt package's
// own operator-shaped helpers).
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpLess
	OpGreater
	OpLessEq
	OpGreaterEq
	OpEqual
	OpNotEqual
	OpAnd
	OpOr
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "^"
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEq:
		return "<="
	case OpGreaterEq:
		return ">="
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "?"
	}
}

// opKey indexes the binary operator matrix on (operator, lhs kind, rhs
// kind), exactly the table spec.md §9's DESIGN NOTES recommends in place
// of an N² family of overloads. Grounded on the kind-switch/registered-func
// table idiom of other_examples' mgmt "operators" package, adapted here
// from a runtime registry to a package-level literal since the operator
// set is closed and known at compile time.
type opKey struct {
	op  Op
	lhs Kind
	rhs Kind
}

// binaryFn evaluates a binary operator cell. The error return is the
// ExecutionError channel (divide/modulus by zero); the *errs.StaticError
// return is the type-error channel. The two are never both non-nil.
type binaryFn func(a, b Value) (Value, *errs.StaticError, error)

var binaryTable map[opKey]binaryFn

func init() {
	binaryTable = make(map[opKey]binaryFn, 14*4)
	for _, op := range []Op{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow,
		OpLess, OpGreater, OpLessEq, OpGreaterEq, OpEqual, OpNotEqual, OpAnd, OpOr} {
		for _, lhs := range []Kind{KindNumber, KindString} {
			for _, rhs := range []Kind{KindNumber, KindString} {
				if fn := buildBinary(op, lhs, rhs); fn != nil {
					binaryTable[opKey{op, lhs, rhs}] = fn
				}
			}
		}
	}
}

// buildBinary returns the cell implementation for (op, lhs, rhs), or nil if
// that combination is never valid for op (every op in this package's set
// IS valid for every kind pairing, either with a real result or a
// StaticError result, so buildBinary never actually returns nil today; it
// stays total so a future operator with a genuinely undefined cell has
// somewhere to say so).
func buildBinary(op Op, lhs, rhs Kind) binaryFn {
	switch op {
	case OpAdd:
		return evalAdd
	case OpSub:
		return evalSub
	case OpMul:
		return numericOnly(op, "multiply", func(a, b Value) Value {
			an, _ := a.Number()
			bn, _ := b.Number()
			return Num(an.Mul(bn))
		})
	case OpDiv:
		return numericOnlyFallible(op, "divide", func(a, b Value) (Value, error) {
			an, _ := a.Number()
			bn, _ := b.Number()
			r, err := an.Div(bn)
			return Num(r), err
		})
	case OpMod:
		return numericOnlyFallible(op, "take the modulus", func(a, b Value) (Value, error) {
			an, _ := a.Number()
			bn, _ := b.Number()
			r, err := an.Mod(bn)
			return Num(r), err
		})
	case OpPow:
		return numericOnly(op, "exponentiate", func(a, b Value) Value {
			an, _ := a.Number()
			bn, _ := b.Number()
			return Num(an.Pow(bn))
		})
	case OpLess:
		return evalCompare(op, func(c int) bool { return c < 0 })
	case OpGreater:
		return evalCompare(op, func(c int) bool { return c > 0 })
	case OpLessEq:
		return evalCompare(op, func(c int) bool { return c <= 0 })
	case OpGreaterEq:
		return evalCompare(op, func(c int) bool { return c >= 0 })
	case OpEqual:
		return evalEqual(false)
	case OpNotEqual:
		return evalEqual(true)
	case OpAnd:
		return func(a, b Value) (Value, *errs.StaticError, error) {
			return boolNumber(a.IsTruthy() && b.IsTruthy()), nil, nil
		}
	case OpOr:
		return func(a, b Value) (Value, *errs.StaticError, error) {
			return boolNumber(a.IsTruthy() || b.IsTruthy()), nil, nil
		}
	}
	return nil
}

// EvalOp runs op against a and b using the matrix in spec.md §4.2.
func EvalOp(op Op, a, b Value) (Value, *errs.StaticError, error) {
	fn, ok := binaryTable[opKey{op, a.Kind(), b.Kind()}]
	if !ok {
		return Value{}, errs.TypeError(op.String(), "use", "mismatched operand"), nil
	}
	return fn(a, b)
}

func evalAdd(a, b Value) (Value, *errs.StaticError, error) {
	if a.Kind() == KindNumber && b.Kind() == KindNumber {
		an, _ := a.Number()
		bn, _ := b.Number()
		return Num(an.Add(bn)), nil, nil
	}
	return Str(stringify(a) + stringify(b)), nil, nil
}

func evalSub(a, b Value) (Value, *errs.StaticError, error) {
	if a.Kind() == KindNumber && b.Kind() == KindNumber {
		an, _ := a.Number()
		bn, _ := b.Number()
		return Num(an.Sub(bn)), nil, nil
	}
	return Str(trimSuffix(stringify(a), stringify(b))), nil, nil
}

// trimSuffix removes the rightmost occurrence of right from left. If right
// does not occur in left (including when right is empty), left is
// returned unchanged (spec.md §4.2, GLOSSARY "Trim-suffix").
func trimSuffix(left, right string) string {
	if right == "" {
		return left
	}
	idx := strings.LastIndex(left, right)
	if idx < 0 {
		return left
	}
	return left[:idx] + left[idx+len(right):]
}

// numericOnly and numericOnlyFallible back the operators that the matrix
// only defines for N,N (spec.md §4.2: *, /, %, ^). Any cell with a String
// operand produces a StaticError; since only two kinds exist, the operand
// that broke the rule is necessarily a string, matching spec.md §7's
// example message verbatim ("Attempted to multiply by a string").
func numericOnly(op Op, verb string, f func(a, b Value) Value) binaryFn {
	return func(a, b Value) (Value, *errs.StaticError, error) {
		if a.Kind() != KindNumber || b.Kind() != KindNumber {
			return Value{}, errs.TypeError(op.String(), verb, "string"), nil
		}
		return f(a, b), nil, nil
	}
}

func numericOnlyFallible(op Op, verb string, f func(a, b Value) (Value, error)) binaryFn {
	return func(a, b Value) (Value, *errs.StaticError, error) {
		if a.Kind() != KindNumber || b.Kind() != KindNumber {
			return Value{}, errs.TypeError(op.String(), verb, "string"), nil
		}
		v, err := f(a, b)
		if err != nil {
			return Value{}, nil, err
		}
		return v, nil, nil
	}
}

// evalCompare implements <, >, <=, >=. N,N compares numerically; any cell
// involving a String compares the two operands' textual forms
// lexicographically, stringifying a Number operand first (spec.md §4.2).
func evalCompare(op Op, pass func(cmp int) bool) binaryFn {
	return func(a, b Value) (Value, *errs.StaticError, error) {
		if a.Kind() == KindNumber && b.Kind() == KindNumber {
			an, _ := a.Number()
			bn, _ := b.Number()
			c := 0
			switch {
			case an.Raw() < bn.Raw():
				c = -1
			case an.Raw() > bn.Raw():
				c = 1
			}
			return boolNumber(pass(c)), nil, nil
		}
		c := strings.Compare(stringify(a), stringify(b))
		return boolNumber(pass(c)), nil, nil
	}
}

// evalEqual implements == (negate=false) and != (negate=true). N,N compares
// numerically; S,S compares strings; a Number-vs-String pairing is always
// unequal (spec.md §4.2, §8).
func evalEqual(negate bool) binaryFn {
	return func(a, b Value) (Value, *errs.StaticError, error) {
		var eq bool
		switch {
		case a.Kind() == KindNumber && b.Kind() == KindNumber:
			an, _ := a.Number()
			bn, _ := b.Number()
			eq = an == bn
		case a.Kind() == KindString && b.Kind() == KindString:
			as, _ := a.AsString()
			bs, _ := b.AsString()
			eq = as == bs
		default:
			eq = false
		}
		if negate {
			eq = !eq
		}
		return boolNumber(eq), nil, nil
	}
}
