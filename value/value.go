// Package value implements the dynamically-typed Value sum and the full
// operator matrix that defines program semantics (spec.md §4.2). It is the
// concrete-evaluation half of the data flow described in spec.md §2: AST
// nodes come in, Values (or a typed error) come out.
package value

import (
	"github.com/yolol-lang/yolol-core/ast"
	"github.com/yolol-lang/yolol-core/numeric"
)

// Kind is the Value discriminant (spec.md §3).
type Kind int

const (
	KindNumber Kind = iota
	KindString
)

func (k Kind) String() string {
	if k == KindString {
		return "String"
	}
	return "Number"
}

// Value is a tagged union of Number and String. A Value always has exactly
// one variant active, selected by Kind (spec.md §3). It is a small plain
// struct rather than an interface, following the teacher's preference
// (kbolino-rat128.N) for value types over boxed interfaces wherever a
// fixed, closed set of shapes is known up front.
type Value struct {
	kind Kind
	num  numeric.Number
	str  string
}

// Num wraps a Number as a Value.
func Num(n numeric.Number) Value { return Value{kind: KindNumber, num: n} }

// Str wraps a String as a Value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Kind reports which variant is active.
func (v Value) Kind() Kind { return v.kind }

// Number returns the Number payload and true if v is a Number.
func (v Value) Number() (numeric.Number, bool) {
	return v.num, v.kind == KindNumber
}

// AsString returns the String payload and true if v is a String. It is not
// named String on purpose: Value's textual form (see String, below — the
// fmt.Stringer implementation) and its typed string payload are different
// things.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// IsTruthy reports whether v is truthy for and/or (spec.md §4.2): a Number
// is truthy iff its raw value is non-zero; any String is truthy.
func (v Value) IsTruthy() bool {
	if v.kind == KindString {
		return true
	}
	return v.num.IsTruthy()
}

// String renders v's textual form: a Number's fixed-point text, or a
// String's raw contents.
func (v Value) String() string {
	if v.kind == KindString {
		return v.str
	}
	return v.num.String()
}

// stringify is the "numeric stringified" operand conversion the + and -
// cells of the operator matrix need when mixing a Number into a String
// expression (spec.md §4.2).
func stringify(v Value) string {
	if v.kind == KindString {
		return v.str
	}
	return v.num.String()
}

// boolNumber converts a bool comparison result into the Number the matrix
// requires: One for true, Zero for false (spec.md §4.2).
func boolNumber(b bool) Value { return Num(numeric.FromBool(b)) }

// MachineState is the external mapping from variable names to Values that
// the Value engine evaluates against. Per spec.md §3, the engine does not
// own this mapping; it is supplied by the caller (normally the line
// scheduler, which is out of scope here). Get and Set pass every name
// through ast.NormalizeName, so spellings that differ only in case refer to
// the same variable.
type MachineState map[string]Value

// Get looks up name (normalized before lookup) in the state, returning the
// program's implicit default of Number Zero for an unset variable.
func (m MachineState) Get(name string) Value {
	if v, ok := m[ast.NormalizeName(name)]; ok {
		return v
	}
	return Num(numeric.Zero)
}

// Set assigns v to name (normalized before storing).
func (m MachineState) Set(name string, v Value) {
	m[ast.NormalizeName(name)] = v
}
