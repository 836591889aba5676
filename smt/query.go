package smt

import (
	"github.com/yolol-lang/yolol-core/internal/z3bridge"
	"github.com/yolol-lang/yolol-core/value"
)

// Answer is the three-valued result of a query, per spec.md §4.3/§8's
// soundness contract: a definitive Yes or No must hold under every
// concrete execution; anything the solver can't settle within its budget
// comes back Unknown rather than guessed.
type Answer int

const (
	No Answer = iota
	Yes
	Unknown
)

func (a Answer) String() string {
	switch a {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "Unknown"
	}
}

func fromResult(r z3bridge.Result, err error) (Answer, error) {
	if err != nil {
		return Unknown, err
	}
	switch r {
	case z3bridge.Sat:
		return Yes, nil
	case z3bridge.Unsat:
		return No, nil
	default:
		return Unknown, nil
	}
}

// IsValueAvailable reports whether b can be untainted: satisfiable under
// taint = false (spec.md §4.3).
func (m *Model) IsValueAvailable(b *Binding) (Answer, error) {
	result, err := z3bridge.Scoped(m.engine, func() (z3bridge.Result, error) {
		m.engine.Assert(z3bridge.Eq(b.taintTerm(), z3bridge.BoolLit(false)))
		return m.engine.CheckSat()
	})
	return fromResult(result, err)
}

// CanBeValue reports whether b's type and matching channel can equal v
// under some satisfying assignment (spec.md §4.3).
func (m *Model) CanBeValue(b *Binding, v value.Value) (Answer, error) {
	result, err := z3bridge.Scoped(m.engine, func() (z3bridge.Result, error) {
		m.engine.Assert(b.equalsValue(v))
		return m.engine.CheckSat()
	})
	return fromResult(result, err)
}

// IsValue reports whether b must equal v: CanBeValue(v) holds, and no
// satisfying assignment makes b differ from v (spec.md §4.3's "satisfiable
// that it equals v AND unsatisfiable that it differs from v").
func (m *Model) IsValue(b *Binding, v value.Value) (Answer, error) {
	can, err := m.CanBeValue(b, v)
	if err != nil || can != Yes {
		return can, err
	}
	differs, err := z3bridge.Scoped(m.engine, func() (z3bridge.Result, error) {
		m.engine.Assert(z3bridge.Not(b.equalsValue(v)))
		return m.engine.CheckSat()
	})
	if err != nil {
		return Unknown, err
	}
	switch differs {
	case z3bridge.Unsat:
		return Yes, nil
	case z3bridge.Sat:
		return No, nil
	default:
		return Unknown, nil
	}
}

// CanBeString reports whether b's type can be StrType.
func (m *Model) CanBeString(b *Binding) (Answer, error) {
	result, err := z3bridge.Scoped(m.engine, func() (z3bridge.Result, error) {
		m.engine.Assert(z3bridge.Eq(b.typeTerm(), z3bridge.StrTypeConst()))
		return m.engine.CheckSat()
	})
	return fromResult(result, err)
}

// CanBeNumber reports whether b's type can be NumType.
func (m *Model) CanBeNumber(b *Binding) (Answer, error) {
	result, err := z3bridge.Scoped(m.engine, func() (z3bridge.Result, error) {
		m.engine.Assert(z3bridge.Eq(b.typeTerm(), z3bridge.NumTypeConst()))
		return m.engine.CheckSat()
	})
	return fromResult(result, err)
}

// equalsValue builds the "this binding's type and matching channel equal
// v" term shared by CanBeValue and IsValue.
func (b *Binding) equalsValue(v value.Value) z3bridge.Term {
	if v.Kind() == value.KindNumber {
		num, _ := v.Number()
		return z3bridge.And(
			z3bridge.Eq(b.typeTerm(), z3bridge.NumTypeConst()),
			z3bridge.Eq(b.numTerm(), z3bridge.IntLit(num.Raw())),
		)
	}
	str, _ := v.AsString()
	return z3bridge.And(
		z3bridge.Eq(b.typeTerm(), z3bridge.StrTypeConst()),
		z3bridge.Eq(b.strTerm(), z3bridge.SeqLit(str)),
	)
}
