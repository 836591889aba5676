package smt

import (
	"fmt"

	"github.com/yolol-lang/yolol-core/ast"
	"github.com/yolol-lang/yolol-core/internal/z3bridge"
	"github.com/yolol-lang/yolol-core/numeric"
	"github.com/yolol-lang/yolol-core/value"
)

// AssertExpr encodes node's semantics into target's four channels,
// following spec.md §4.3's per-kind encoding rules. It returns a non-nil
// error only for a node kind the encoder doesn't implement, in which case
// target is still left in a sound state: tainted, per spec.md's "the
// binding is marked tainted and the encoder reports 'not implemented' to
// the caller, who may then treat the result as fully unknown."
func (m *Model) AssertExpr(target *Binding, node ast.Node) error {
	return m.encodeInto(target, node)
}

// encode allocates a fresh anonymous binding for node and encodes into it,
// for use as an operand of an enclosing expression.
func (m *Model) encode(node ast.Node) (*Binding, error) {
	b := m.anonymous()
	err := m.encodeInto(b, node)
	return b, err
}

func (m *Model) encodeInto(b *Binding, node ast.Node) error {
	switch node.Kind() {
	case ast.ConstantNumber:
		m.assertConcrete(b, value.Num(numeric.FromRaw(node.NumberValue())))
		return nil
	case ast.ConstantString:
		m.assertConcrete(b, value.Str(node.StringValue()))
		return nil
	case ast.Variable:
		m.assertBindingEq(b, m.GetOrCreate(node.Name()))
		return nil
	case ast.Add:
		return m.encodeAdd(b, node)
	case ast.Multiply:
		return m.encodeMulDiv(b, node, true)
	case ast.Divide:
		return m.encodeMulDiv(b, node, false)
	case ast.EqualTo:
		return m.encodeEquality(b, node, true)
	case ast.NotEqualTo:
		return m.encodeEquality(b, node, false)
	case ast.And, ast.Or:
		return m.encodeLogical(b, node)
	default:
		m.taintOnly(b)
		return fmt.Errorf("smt: node kind %s not implemented", node.Kind())
	}
}

// encodeAdd follows spec.md §4.3's Add rule: type is N only for N+N, S in
// every other combination; the num/str channel is constrained only in the
// matching untainted case; taint widens across either side's own taint
// plus the mixed-type case, since the bridge cannot stringify a numeric
// operand inside the solver.
func (m *Model) encodeAdd(b *Binding, node ast.Node) error {
	l, lerr := m.encode(node.Left())
	r, rerr := m.encode(node.Right())
	if lerr != nil || rerr != nil {
		m.taintOnly(b)
		return firstErr(lerr, rerr)
	}

	bothNum := bothType(l, r, z3bridge.NumTypeConst())
	bothStr := bothType(l, r, z3bridge.StrTypeConst())
	mixed := z3bridge.Not(z3bridge.Or(bothNum, bothStr))
	neitherTainted := z3bridge.And(z3bridge.Not(l.taintTerm()), z3bridge.Not(r.taintTerm()))

	m.engine.Assert(implies(bothNum, z3bridge.Eq(b.typeTerm(), z3bridge.NumTypeConst())))
	m.engine.Assert(implies(z3bridge.Not(bothNum), z3bridge.Eq(b.typeTerm(), z3bridge.StrTypeConst())))

	m.engine.Assert(implies(z3bridge.And(bothNum, neitherTainted),
		z3bridge.Eq(b.numTerm(), z3bridge.IntAdd(l.numTerm(), r.numTerm()))))
	m.engine.Assert(implies(z3bridge.And(bothStr, neitherTainted),
		z3bridge.Eq(b.strTerm(), z3bridge.SeqConcat(l.strTerm(), r.strTerm()))))

	m.engine.Assert(z3bridge.Eq(b.taintTerm(), z3bridge.Or(l.taintTerm(), r.taintTerm(), mixed)))
	return nil
}

// encodeMulDiv follows spec.md §4.3's Multiply/Divide rule: the result
// type is always forced to N, a type mismatch taints rather than errors,
// and division by zero is left for the solver itself to find
// unsatisfiable on inspection rather than rejected up front.
func (m *Model) encodeMulDiv(b *Binding, node ast.Node, isMul bool) error {
	l, lerr := m.encode(node.Left())
	r, rerr := m.encode(node.Right())
	if lerr != nil || rerr != nil {
		m.taintOnly(b)
		return firstErr(lerr, rerr)
	}

	m.engine.Assert(z3bridge.Eq(b.typeTerm(), z3bridge.NumTypeConst()))

	bothNum := bothType(l, r, z3bridge.NumTypeConst())
	mismatched := z3bridge.Not(bothNum)
	m.engine.Assert(z3bridge.Eq(b.taintTerm(), z3bridge.Or(l.taintTerm(), r.taintTerm(), mismatched)))

	neitherTainted := z3bridge.And(z3bridge.Not(l.taintTerm()), z3bridge.Not(r.taintTerm()))
	var result z3bridge.Term
	if isMul {
		result = z3bridge.IntQuot(z3bridge.IntMul(l.numTerm(), r.numTerm()), z3bridge.IntLit(numeric.Scale))
	} else {
		result = z3bridge.IntQuot(z3bridge.IntMul(l.numTerm(), z3bridge.IntLit(numeric.Scale)), r.numTerm())
	}
	m.engine.Assert(implies(z3bridge.And(bothNum, neitherTainted), z3bridge.Eq(b.numTerm(), result)))
	return nil
}

// encodeEquality follows spec.md §4.3's Equality/Inequality rule: the
// result is always N bounded to {0, 1000}; it's constrained to the actual
// comparison only when both sides share a type and neither is tainted,
// and left merely bounded (a "useful bound", per the spec) otherwise.
func (m *Model) encodeEquality(b *Binding, node ast.Node, wantEqual bool) error {
	l, lerr := m.encode(node.Left())
	r, rerr := m.encode(node.Right())
	if lerr != nil || rerr != nil {
		m.taintOnly(b)
		return firstErr(lerr, rerr)
	}

	m.engine.Assert(z3bridge.Eq(b.typeTerm(), z3bridge.NumTypeConst()))
	m.engine.Assert(z3bridge.Or(z3bridge.Eq(b.numTerm(), z3bridge.IntLit(0)), z3bridge.Eq(b.numTerm(), z3bridge.IntLit(1000))))
	m.engine.Assert(z3bridge.Eq(b.taintTerm(), z3bridge.Or(l.taintTerm(), r.taintTerm())))

	neitherTainted := z3bridge.And(z3bridge.Not(l.taintTerm()), z3bridge.Not(r.taintTerm()))
	bothNum := z3bridge.And(bothType(l, r, z3bridge.NumTypeConst()), neitherTainted)
	bothStr := z3bridge.And(bothType(l, r, z3bridge.StrTypeConst()), neitherTainted)

	isTrue := z3bridge.Eq(b.numTerm(), z3bridge.IntLit(1000))
	numsEqual := z3bridge.Eq(l.numTerm(), r.numTerm())
	strsEqual := z3bridge.Eq(l.strTerm(), r.strTerm())
	if !wantEqual {
		numsEqual = z3bridge.Not(numsEqual)
		strsEqual = z3bridge.Not(strsEqual)
	}

	m.engine.Assert(implies(bothNum, biconditional(isTrue, numsEqual)))
	m.engine.Assert(implies(bothStr, biconditional(isTrue, strsEqual)))
	return nil
}

// encodeLogical follows spec.md §4.3's And/Or rule: any String operand is
// truthy; a Number operand is truthy iff non-zero.
func (m *Model) encodeLogical(b *Binding, node ast.Node) error {
	l, lerr := m.encode(node.Left())
	r, rerr := m.encode(node.Right())
	if lerr != nil || rerr != nil {
		m.taintOnly(b)
		return firstErr(lerr, rerr)
	}

	m.engine.Assert(z3bridge.Eq(b.typeTerm(), z3bridge.NumTypeConst()))
	m.engine.Assert(z3bridge.Eq(b.taintTerm(), z3bridge.BoolLit(false)))

	var resultTrue z3bridge.Term
	if node.Kind() == ast.And {
		resultTrue = z3bridge.And(truthy(l), truthy(r))
	} else {
		resultTrue = z3bridge.Or(truthy(l), truthy(r))
	}
	m.engine.Assert(implies(resultTrue, z3bridge.Eq(b.numTerm(), z3bridge.IntLit(1000))))
	m.engine.Assert(implies(z3bridge.Not(resultTrue), z3bridge.Eq(b.numTerm(), z3bridge.IntLit(0))))
	return nil
}

func (m *Model) taintOnly(b *Binding) {
	m.engine.Assert(z3bridge.Eq(b.taintTerm(), z3bridge.BoolLit(true)))
}

func truthy(b *Binding) z3bridge.Term {
	isStr := z3bridge.Eq(b.typeTerm(), z3bridge.StrTypeConst())
	isNonzeroNum := z3bridge.And(
		z3bridge.Eq(b.typeTerm(), z3bridge.NumTypeConst()),
		z3bridge.Not(z3bridge.Eq(b.numTerm(), z3bridge.IntLit(0))),
	)
	return z3bridge.Or(isStr, isNonzeroNum)
}

func bothType(l, r *Binding, want z3bridge.Term) z3bridge.Term {
	return z3bridge.And(z3bridge.Eq(l.typeTerm(), want), z3bridge.Eq(r.typeTerm(), want))
}

// implies builds the material conditional p -> q out of the IR's Or/Not,
// since z3bridge.Term has no dedicated implication node.
func implies(p, q z3bridge.Term) z3bridge.Term {
	return z3bridge.Or(z3bridge.Not(p), q)
}

// biconditional builds a <-> b the same way implies builds p -> q.
func biconditional(a, b z3bridge.Term) z3bridge.Term {
	return z3bridge.Or(z3bridge.And(a, b), z3bridge.And(z3bridge.Not(a), z3bridge.Not(b)))
}

func firstErr(a, b error) error {
	if a != nil {
		return a
	}
	return b
}
