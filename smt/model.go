// Package smt implements the symbolic SMT model of spec.md §4.3: per-variable
// bindings encoded into an SMT solver so an analyser can ask whether a
// variable can, must, or cannot hold a given value. See DESIGN.md for why
// the solver itself lives one layer down, in internal/z3bridge.
package smt

import (
	"fmt"

	"github.com/yolol-lang/yolol-core/ast"
	"github.com/yolol-lang/yolol-core/internal/z3bridge"
	"github.com/yolol-lang/yolol-core/value"
)

// bindingID indexes into Model's arena, starting at 0. Callers never hold
// one directly; they hold a *Binding wrapping it (spec.md §9: "reference by
// index, never by owning handle").
type bindingID int

// Binding is a handle to one program variable's (or subexpression's) SMT
// encoding: a type channel, a num channel, a str channel, and a taint bit
// (spec.md §4.3). The four channels are modeled as four same-indexed
// solver variables of different sorts rather than as a struct of fields,
// so Model never needs to pre-allocate or resize per-field storage — the
// index is the only state a Binding owns.
type Binding struct {
	id bindingID
}

func (b *Binding) typeTerm() z3bridge.Term  { return z3bridge.TypeVar(int(b.id)) }
func (b *Binding) numTerm() z3bridge.Term   { return z3bridge.IntVar(int(b.id)) }
func (b *Binding) strTerm() z3bridge.Term   { return z3bridge.SeqVar(int(b.id)) }
func (b *Binding) taintTerm() z3bridge.Term { return z3bridge.BoolVar(int(b.id)) }

// Model owns one solver session plus the binding arena built against it.
type Model struct {
	cfg    Config
	engine z3bridge.Engine
	named  map[string]bindingID
	next   bindingID
}

// NewModel validates cfg and builds a Model backed by a real go-z3 Bridge.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("smt: invalid config: %w", err)
	}
	engine := z3bridge.New(z3bridge.Config{TimeoutMillis: cfg.TimeoutMillis})
	return newModel(cfg, engine), nil
}

// newModel wires a Model around an arbitrary Engine, letting tests supply
// z3bridge.NewFake() instead of a cgo-backed Bridge.
func newModel(cfg Config, engine z3bridge.Engine) *Model {
	return &Model{cfg: cfg, engine: engine, named: make(map[string]bindingID)}
}

// Close releases the underlying solver resources.
func (m *Model) Close() { m.engine.Close() }

// GetOrCreate returns the binding for name, creating it on first use.
// Repeated calls with spellings that normalize identically return the same
// binding (spec.md §4.3, using ast.NormalizeName for the identity rule
// spec.md §3 requires of variable names).
func (m *Model) GetOrCreate(name string) *Binding {
	key := ast.NormalizeName(name)
	if id, ok := m.named[key]; ok {
		return &Binding{id: id}
	}
	id := m.fresh()
	m.named[key] = id
	return &Binding{id: id}
}

// anonymous allocates a fresh, unnamed binding for an encoder-internal
// subexpression (spec.md §9's "use an arena for bindings... creates fresh
// anonymous bindings for subexpressions").
func (m *Model) anonymous() *Binding {
	return &Binding{id: m.fresh()}
}

func (m *Model) fresh() bindingID {
	id := m.next
	m.next++
	return id
}

// AssertEq binds b to target, which must be a value.Value (a concrete
// Number or String) or a *Binding (asserting the two bindings' four
// channels pairwise equal). Asserting an expression is AssertExpr, kept
// separate because it can fail with "not implemented" where these two
// forms cannot (spec.md §4.3's three assertEq overloads, split across Go's
// two method names since Go has no overloading).
func (m *Model) AssertEq(b *Binding, target any) {
	switch t := target.(type) {
	case value.Value:
		m.assertConcrete(b, t)
	case *Binding:
		m.assertBindingEq(b, t)
	default:
		panic(fmt.Sprintf("smt: AssertEq: unsupported target type %T", target))
	}
}

func (m *Model) assertConcrete(b *Binding, v value.Value) {
	switch v.Kind() {
	case value.KindNumber:
		num, _ := v.Number()
		m.engine.Assert(z3bridge.Eq(b.typeTerm(), z3bridge.NumTypeConst()))
		m.engine.Assert(z3bridge.Eq(b.numTerm(), z3bridge.IntLit(num.Raw())))
	case value.KindString:
		str, _ := v.AsString()
		m.engine.Assert(z3bridge.Eq(b.typeTerm(), z3bridge.StrTypeConst()))
		m.engine.Assert(z3bridge.Eq(b.strTerm(), z3bridge.SeqLit(str)))
	}
	m.engine.Assert(z3bridge.Eq(b.taintTerm(), z3bridge.BoolLit(false)))
}

func (m *Model) assertBindingEq(a, b *Binding) {
	m.engine.Assert(z3bridge.Eq(a.typeTerm(), b.typeTerm()))
	m.engine.Assert(z3bridge.Eq(a.numTerm(), b.numTerm()))
	m.engine.Assert(z3bridge.Eq(a.strTerm(), b.strTerm()))
	m.engine.Assert(z3bridge.Eq(a.taintTerm(), b.taintTerm()))
}
