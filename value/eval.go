package value

import (
	"fmt"

	"github.com/yolol-lang/yolol-core/ast"
	"github.com/yolol-lang/yolol-core/errs"
	"github.com/yolol-lang/yolol-core/numeric"
)

// kindToOp and kindToUnary translate the external AST's node kinds into
// this package's own Op/UnaryOp enumerations, keeping the operator matrix
// independent of the ast package's vocabulary (see Op's doc comment).
var kindToOp = map[ast.Kind]Op{
	ast.Add: OpAdd, ast.Subtract: OpSub, ast.Multiply: OpMul,
	ast.Divide: OpDiv, ast.Modulo: OpMod, ast.Exponent: OpPow,
	ast.LessThan: OpLess, ast.GreaterThan: OpGreater,
	ast.LessThanEq: OpLessEq, ast.GreaterThanEq: OpGreaterEq,
	ast.EqualTo: OpEqual, ast.NotEqualTo: OpNotEqual,
	ast.And: OpAnd, ast.Or: OpOr,
}

var kindToUnary = map[ast.Kind]UnaryOp{
	ast.Not: UnaryNot, ast.Negate: UnaryNegate,
	ast.Abs: UnaryAbs, ast.Sqrt: UnarySqrt,
	ast.Sin: UnarySin, ast.Cos: UnaryCos, ast.Tan: UnaryTan,
	ast.ArcSin: UnaryAsin, ast.ArcCos: UnaryAcos, ast.ArcTan: UnaryAtan,
	ast.Factorial: UnaryFactorial,
}

// Eval evaluates node against state, returning exactly one of: a Value, a
// StaticError, or a Go error, per spec.md §7's two-channel error design.
// Mutating nodes (the four inc/dec kinds) write their new value back into
// state as a side effect, same as any other statement-level assignment;
// state is otherwise read-only to Eval.
func Eval(node ast.Node, state MachineState) (Value, *errs.StaticError, error) {
	switch k := node.Kind(); k {
	case ast.ConstantNumber:
		return Num(numeric.FromRaw(node.NumberValue())), nil, nil
	case ast.ConstantString:
		return Str(node.StringValue()), nil, nil
	case ast.Variable:
		return state.Get(node.Name()), nil, nil

	case ast.PreIncrement, ast.PostIncrement, ast.PreDecrement, ast.PostDecrement:
		return evalIncDec(k, node, state)
	}

	if op, ok := kindToOp[node.Kind()]; ok {
		a, serr, err := Eval(node.Left(), state)
		if serr != nil || err != nil {
			return Value{}, serr, err
		}
		b, serr, err := Eval(node.Right(), state)
		if serr != nil || err != nil {
			return Value{}, serr, err
		}
		return EvalOp(op, a, b)
	}

	if uop, ok := kindToUnary[node.Kind()]; ok {
		a, serr, err := Eval(node.Left(), state)
		if serr != nil || err != nil {
			return Value{}, serr, err
		}
		v, serr := EvalUnary(uop, a)
		return v, serr, nil
	}

	return Value{}, nil, fmt.Errorf("value: unhandled AST kind %v", node.Kind())
}

func evalIncDec(k ast.Kind, node ast.Node, state MachineState) (Value, *errs.StaticError, error) {
	operand := node.Left()
	if operand.Kind() != ast.Variable {
		return Value{}, nil, fmt.Errorf("value: %v operand must be a variable", k)
	}
	name := operand.Name()
	old := state.Get(name)

	var updated Value
	var err error
	switch k {
	case ast.PreIncrement, ast.PostIncrement:
		updated = Increment(old)
	case ast.PreDecrement, ast.PostDecrement:
		updated, err = Decrement(old)
	}
	if err != nil {
		return Value{}, nil, err
	}
	state.Set(name, updated)

	if k == ast.PreIncrement || k == ast.PreDecrement {
		return updated, nil, nil
	}
	return old, nil, nil
}
