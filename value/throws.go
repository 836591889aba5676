package value

import "github.com/yolol-lang/yolol-core/numeric"

// OperatorInfo attaches a may-throw predicate and a fast path to a binary
// operator, per spec.md §9 DESIGN NOTES: a caller holding operand values (or
// an analyser holding symbolic constraints proving those values safe) can
// call Fast and receive a bare Value instead of EvalOp's three results.
// Fast still runs through EvalOp's dispatch and checks; it does not skip
// them.
type OperatorInfo struct {
	// MayThrow reports whether this particular (a, b) pairing could
	// produce a StaticError or an ExecutionError. A false result is a
	// guarantee: EvalOp(op, a, b) for this pairing cannot fail.
	MayThrow func(a, b Value) bool

	// Fast evaluates the operator assuming MayThrow(a, b) is false. Its
	// behavior is undefined if that precondition doesn't hold.
	Fast func(a, b Value) Value
}

var operatorInfo = map[Op]OperatorInfo{
	OpAdd: {
		MayThrow: neverThrows,
		Fast:     fastFromEval(OpAdd),
	},
	OpSub: {
		MayThrow: neverThrows,
		Fast:     fastFromEval(OpSub),
	},
	OpMul: {
		MayThrow: notBothNumbers,
		Fast:     fastFromEval(OpMul),
	},
	OpDiv: {
		MayThrow: notBothNumbersOrRHSZero,
		Fast:     fastFromEval(OpDiv),
	},
	OpMod: {
		MayThrow: notBothNumbersOrRHSZero,
		Fast:     fastFromEval(OpMod),
	},
	OpPow: {
		MayThrow: notBothNumbers,
		Fast:     fastFromEval(OpPow),
	},
	OpLess:       {MayThrow: neverThrows, Fast: fastFromEval(OpLess)},
	OpGreater:    {MayThrow: neverThrows, Fast: fastFromEval(OpGreater)},
	OpLessEq:     {MayThrow: neverThrows, Fast: fastFromEval(OpLessEq)},
	OpGreaterEq:  {MayThrow: neverThrows, Fast: fastFromEval(OpGreaterEq)},
	OpEqual:      {MayThrow: neverThrows, Fast: fastFromEval(OpEqual)},
	OpNotEqual:   {MayThrow: neverThrows, Fast: fastFromEval(OpNotEqual)},
	OpAnd:        {MayThrow: neverThrows, Fast: fastFromEval(OpAnd)},
	OpOr:         {MayThrow: neverThrows, Fast: fastFromEval(OpOr)},
}

// MayThrow reports whether EvalOp(op, a, b) could return a non-nil
// *errs.StaticError or a non-nil error, per spec.md §9's "first-class
// may-throw query".
func MayThrow(op Op, a, b Value) bool {
	info, ok := operatorInfo[op]
	if !ok {
		return true
	}
	return info.MayThrow(a, b)
}

func neverThrows(a, b Value) bool { return false }

func notBothNumbers(a, b Value) bool {
	return a.Kind() != KindNumber || b.Kind() != KindNumber
}

func notBothNumbersOrRHSZero(a, b Value) bool {
	if notBothNumbers(a, b) {
		return true
	}
	bn, _ := b.Number()
	return bn == numeric.Zero
}

// fastFromEval adapts EvalOp into a Fast path by calling it and discarding
// both error results; the type and zero checks inside EvalOp still run. Its
// result is a valid Value only when MayThrow reports false for the same
// operands, per OperatorInfo's contract.
func fastFromEval(op Op) func(a, b Value) Value {
	return func(a, b Value) Value {
		v, _, _ := EvalOp(op, a, b)
		return v
	}
}
