package smt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yolol-lang/yolol-core/ast"
	"github.com/yolol-lang/yolol-core/internal/z3bridge"
	"github.com/yolol-lang/yolol-core/numeric"
	"github.com/yolol-lang/yolol-core/value"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := newModel(DefaultConfig(), z3bridge.NewFake())
	t.Cleanup(m.Close)
	return m
}

// fakeNode is a minimal ast.Node for this package's tests.
type fakeNode struct {
	kind      ast.Kind
	left      *fakeNode
	right     *fakeNode
	numberVal int64
	stringVal string
	name      string
}

func (f *fakeNode) Kind() ast.Kind { return f.kind }
func (f *fakeNode) Left() ast.Node {
	if f.left == nil {
		return nil
	}
	return f.left
}
func (f *fakeNode) Right() ast.Node {
	if f.right == nil {
		return nil
	}
	return f.right
}
func (f *fakeNode) NumberValue() int64  { return f.numberVal }
func (f *fakeNode) StringValue() string { return f.stringVal }
func (f *fakeNode) Name() string        { return f.name }

func numLit(i int64) *fakeNode {
	return &fakeNode{kind: ast.ConstantNumber, numberVal: numeric.FromInt(i).Raw()}
}
func strLit(s string) *fakeNode {
	return &fakeNode{kind: ast.ConstantString, stringVal: s}
}
func variable(name string) *fakeNode {
	return &fakeNode{kind: ast.Variable, name: name}
}
func binNode(k ast.Kind, l, r *fakeNode) *fakeNode {
	return &fakeNode{kind: k, left: l, right: r}
}

func TestGetOrCreate_SameBindingForSameName(t *testing.T) {
	m := newTestModel(t)
	a := m.GetOrCreate("Foo")
	b := m.GetOrCreate("foo")
	assert.Equal(t, a.id, b.id)
}

func TestGetOrCreate_DifferentNamesDifferentBindings(t *testing.T) {
	m := newTestModel(t)
	a := m.GetOrCreate("x")
	b := m.GetOrCreate("y")
	assert.NotEqual(t, a.id, b.id)
}

func TestAssertEq_ConcreteValue_IsValue(t *testing.T) {
	m := newTestModel(t)
	x := m.GetOrCreate("x")
	m.AssertEq(x, value.Num(numeric.FromInt(42)))

	got, err := m.IsValue(x, value.Num(numeric.FromInt(42)))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)

	got, err = m.IsValue(x, value.Num(numeric.FromInt(7)))
	require.NoError(t, err)
	assert.Equal(t, No, got)
}

func TestAssertEq_BindingToBinding(t *testing.T) {
	m := newTestModel(t)
	x := m.GetOrCreate("x")
	y := m.GetOrCreate("y")
	m.AssertEq(x, value.Num(numeric.FromInt(9)))
	m.AssertEq(y, x)

	got, err := m.IsValue(y, value.Num(numeric.FromInt(9)))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)
}

// TestAssertExpr_Add_Sound checks the first soundness property spec.md §8
// requires: if IsValue(v) is true, the binding's asserted expression must
// evaluate to exactly v.
func TestAssertExpr_Add_Sound(t *testing.T) {
	m := newTestModel(t)
	result := m.GetOrCreate("result")
	require.NoError(t, m.AssertExpr(result, binNode(ast.Add, numLit(2), numLit(3))))

	got, err := m.IsValue(result, value.Num(numeric.FromInt(5)))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)

	available, err := m.IsValueAvailable(result)
	require.NoError(t, err)
	assert.Equal(t, Yes, available)
}

// TestAssertExpr_MixedAdd_Taints checks the second soundness property
// spec.md §8 names explicitly: mixed-type + taints the result.
func TestAssertExpr_MixedAdd_Taints(t *testing.T) {
	m := newTestModel(t)
	x := m.GetOrCreate("x")
	require.NoError(t, m.AssertExpr(x, binNode(ast.Add, numLit(2), strLit("a"))))

	available, err := m.IsValueAvailable(x)
	require.NoError(t, err)
	assert.Equal(t, No, available)

	canStr, err := m.CanBeString(x)
	require.NoError(t, err)
	assert.Equal(t, Yes, canStr)
}

func TestAssertExpr_StringAdd_Concatenates(t *testing.T) {
	m := newTestModel(t)
	x := m.GetOrCreate("x")
	require.NoError(t, m.AssertExpr(x, binNode(ast.Add, strLit("foo"), strLit("bar"))))

	got, err := m.IsValue(x, value.Str("foobar"))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)
}

func TestAssertExpr_VariableReference(t *testing.T) {
	m := newTestModel(t)
	x := m.GetOrCreate("x")
	m.AssertEq(x, value.Num(numeric.FromInt(11)))

	y := m.GetOrCreate("y")
	require.NoError(t, m.AssertExpr(y, variable("x")))

	got, err := m.IsValue(y, value.Num(numeric.FromInt(11)))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)
}

func TestAssertExpr_Equality(t *testing.T) {
	m := newTestModel(t)
	eq := m.GetOrCreate("eq")
	require.NoError(t, m.AssertExpr(eq, binNode(ast.EqualTo, numLit(2), numLit(2))))

	got, err := m.IsValue(eq, value.Num(numeric.FromRaw(1000)))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)
}

func TestAssertExpr_Multiply(t *testing.T) {
	m := newTestModel(t)
	result := m.GetOrCreate("result")
	require.NoError(t, m.AssertExpr(result, binNode(ast.Multiply, numLit(2), numLit(3))))

	got, err := m.IsValue(result, value.Num(numeric.FromInt(6)))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)
}

func TestAssertExpr_Divide(t *testing.T) {
	m := newTestModel(t)
	result := m.GetOrCreate("result")
	require.NoError(t, m.AssertExpr(result, binNode(ast.Divide, numLit(6), numLit(3))))

	got, err := m.IsValue(result, value.Num(numeric.FromInt(2)))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)
}

// TestAssertExpr_MulDiv_MismatchedTypes_Taints checks spec.md §4.3's
// Multiply/Divide rule: a type mismatch taints rather than erroring, and
// the result type is still forced to N.
func TestAssertExpr_MulDiv_MismatchedTypes_Taints(t *testing.T) {
	m := newTestModel(t)
	result := m.GetOrCreate("result")
	require.NoError(t, m.AssertExpr(result, binNode(ast.Multiply, numLit(2), strLit("a"))))

	available, err := m.IsValueAvailable(result)
	require.NoError(t, err)
	assert.Equal(t, No, available)

	canNum, err := m.CanBeNumber(result)
	require.NoError(t, err)
	assert.Equal(t, Yes, canNum)
}

func TestAssertExpr_And(t *testing.T) {
	m := newTestModel(t)
	result := m.GetOrCreate("result")
	require.NoError(t, m.AssertExpr(result, binNode(ast.And, numLit(1), numLit(2))))

	got, err := m.IsValue(result, value.Num(numeric.FromRaw(1000)))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)
}

// TestAssertExpr_Or_StringOperandAlwaysTruthy checks spec.md §4.3's And/Or
// rule: any String operand makes the result truthy regardless of the
// other side.
func TestAssertExpr_Or_StringOperandAlwaysTruthy(t *testing.T) {
	m := newTestModel(t)
	result := m.GetOrCreate("result")
	require.NoError(t, m.AssertExpr(result, binNode(ast.Or, numLit(0), strLit(""))))

	got, err := m.IsValue(result, value.Num(numeric.FromRaw(1000)))
	require.NoError(t, err)
	assert.Equal(t, Yes, got)
}

func TestAssertExpr_UnhandledKind_Taints(t *testing.T) {
	m := newTestModel(t)
	b := m.GetOrCreate("b")
	err := m.AssertExpr(b, &fakeNode{kind: ast.Sqrt, left: numLit(4)})
	assert.Error(t, err)

	available, err := m.IsValueAvailable(b)
	require.NoError(t, err)
	assert.Equal(t, No, available)
}

func TestCanBeNumberCanBeString(t *testing.T) {
	m := newTestModel(t)
	x := m.GetOrCreate("x") // unconstrained

	canNum, err := m.CanBeNumber(x)
	require.NoError(t, err)
	assert.Equal(t, Yes, canNum)

	canStr, err := m.CanBeString(x)
	require.NoError(t, err)
	assert.Equal(t, Yes, canStr)

	m.AssertEq(x, value.Num(numeric.FromInt(1)))
	canStr, err = m.CanBeString(x)
	require.NoError(t, err)
	assert.Equal(t, No, canStr)
}
