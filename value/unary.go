package value

import "github.com/yolol-lang/yolol-core/errs"

// UnaryOp identifies a unary operator, mirroring Op for the binary matrix.
type UnaryOp int

const (
	UnaryNot UnaryOp = iota
	UnaryNegate
	UnaryAbs
	UnarySqrt
	UnarySin
	UnaryCos
	UnaryTan
	UnaryAsin
	UnaryAcos
	UnaryAtan
	UnaryFactorial
)

func (o UnaryOp) String() string {
	switch o {
	case UnaryNot:
		return "!"
	case UnaryNegate:
		return "-"
	case UnaryAbs:
		return "abs"
	case UnarySqrt:
		return "sqrt"
	case UnarySin:
		return "sin"
	case UnaryCos:
		return "cos"
	case UnaryTan:
		return "tan"
	case UnaryAsin:
		return "asin"
	case UnaryAcos:
		return "acos"
	case UnaryAtan:
		return "atan"
	case UnaryFactorial:
		return "factorial"
	default:
		return "?"
	}
}

// EvalUnary runs a unary operator against v (spec.md §4.2). Not is defined
// for every Value; every other unary operator here is Number-only and
// produces a StaticError for a String operand.
func EvalUnary(op UnaryOp, v Value) (Value, *errs.StaticError) {
	if op == UnaryNot {
		return boolNumber(!v.IsTruthy()), nil
	}
	n, ok := v.Number()
	if !ok {
		return Value{}, errs.TypeError(op.String(), "apply "+op.String()+" to", "string")
	}
	switch op {
	case UnaryNegate:
		return Num(n.Neg()), nil
	case UnaryAbs:
		return Num(n.Abs()), nil
	case UnarySqrt:
		return Num(n.Sqrt()), nil
	case UnarySin:
		return Num(n.Sin()), nil
	case UnaryCos:
		return Num(n.Cos()), nil
	case UnaryTan:
		return Num(n.Tan()), nil
	case UnaryAsin:
		return Num(n.Asin()), nil
	case UnaryAcos:
		return Num(n.Acos()), nil
	case UnaryAtan:
		return Num(n.Atan()), nil
	case UnaryFactorial:
		return Num(n.Factorial()), nil
	}
	return Value{}, errs.TypeError(op.String(), "apply", "value")
}

// Increment returns the value ++v/v++ leaves behind: Number is incremented
// by one, String gets a trailing space appended (spec.md §4.2).
func Increment(v Value) Value {
	if n, ok := v.Number(); ok {
		return Num(n.Inc())
	}
	s, _ := v.AsString()
	return Str(s + " ")
}

// Decrement returns the value --v/v-- leaves behind: Number is decremented
// by one; String has its final character removed, failing with
// ErrEmptyString if it was already empty (spec.md §4.2).
func Decrement(v Value) (Value, error) {
	if n, ok := v.Number(); ok {
		return Num(n.Dec()), nil
	}
	s, _ := v.AsString()
	if s == "" {
		return Value{}, errs.ErrEmptyString
	}
	runes := []rune(s)
	return Str(string(runes[:len(runes)-1])), nil
}
