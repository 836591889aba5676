// Package z3bridge is the only package in this module that speaks to Z3.
// It owns two things: a small symbolic expression IR (Term) that the smt
// package builds up for free, and an Engine that turns asserted Terms into
// real solver state and answers satisfiability queries. Production code
// uses Bridge, which is backed by github.com/mitchellh/go-z3; tests use
// Fake, a bounded brute-force evaluator, so the smt package's encoding and
// tainting logic can be exercised without a cgo-linked Z3 library. See
// DESIGN.md for why the split exists.
package z3bridge

// sort is the Z3-level sort a Term evaluates to.
type sort int

const (
	sortType sort = iota // the two-constructor {NumType, StrType} datatype
	sortInt
	sortSeq
	sortBool
)

// op identifies the shape of a Term node.
type op int

const (
	opVar op = iota
	opLitInt
	opLitSeq
	opLitBool
	opNumTypeConst
	opStrTypeConst
	opEq
	opAnd
	opOr
	opNot
	opIntAdd
	opIntMul
	opIntQuot
	opSeqConcat
)

// Term is a node in the symbolic expression IR the smt package builds to
// describe variable bindings and the expressions asserted equal to them
// (spec.md §4.3). Building a Term does no solver work; only Engine.Assert
// and Engine.CheckSat touch the underlying solver.
type Term struct {
	op       op
	sort     sort
	children []Term
	varID    int
	litInt   int64
	litSeq   string
	litBool  bool
}

// Variable constructors. Each (sort, varID) pair must denote the same
// solver constant across the lifetime of an Engine; the smt package's
// binding arena is the source of stable IDs.
func TypeVar(id int) Term { return Term{op: opVar, sort: sortType, varID: id} }
func IntVar(id int) Term  { return Term{op: opVar, sort: sortInt, varID: id} }
func SeqVar(id int) Term  { return Term{op: opVar, sort: sortSeq, varID: id} }
func BoolVar(id int) Term { return Term{op: opVar, sort: sortBool, varID: id} }

// Literal constructors.
func IntLit(v int64) Term  { return Term{op: opLitInt, sort: sortInt, litInt: v} }
func SeqLit(v string) Term { return Term{op: opLitSeq, sort: sortSeq, litSeq: v} }
func BoolLit(v bool) Term  { return Term{op: opLitBool, sort: sortBool, litBool: v} }

// NumTypeConst and StrTypeConst are the two values of the type datatype
// (spec.md §4.3).
func NumTypeConst() Term { return Term{op: opNumTypeConst, sort: sortType} }
func StrTypeConst() Term { return Term{op: opStrTypeConst, sort: sortType} }

// Eq asserts-shape equality between two same-sorted terms, producing a
// Bool term.
func Eq(a, b Term) Term { return Term{op: opEq, sort: sortBool, children: []Term{a, b}} }

// And/Or/Not are the boolean connectives used to combine constraints
// before a single Assert call, mirroring how the solver's own assertion
// stack is append-only (spec.md §5): building a conjunction in Go costs
// nothing, only the final Assert touches the solver.
func And(terms ...Term) Term { return Term{op: opAnd, sort: sortBool, children: terms} }
func Or(terms ...Term) Term  { return Term{op: opOr, sort: sortBool, children: terms} }
func Not(a Term) Term        { return Term{op: opNot, sort: sortBool, children: []Term{a}} }

// IntAdd, IntMul, IntQuot build integer-sorted arithmetic terms over the
// scaled raw representation Number uses (spec.md §4.1, §4.3).
func IntAdd(a, b Term) Term  { return Term{op: opIntAdd, sort: sortInt, children: []Term{a, b}} }
func IntMul(a, b Term) Term  { return Term{op: opIntMul, sort: sortInt, children: []Term{a, b}} }
func IntQuot(a, b Term) Term { return Term{op: opIntQuot, sort: sortInt, children: []Term{a, b}} }

// SeqConcat builds a sequence-sorted concatenation term, standing in for
// the String sort's + operator (spec.md §4.3).
func SeqConcat(a, b Term) Term { return Term{op: opSeqConcat, sort: sortSeq, children: []Term{a, b}} }
