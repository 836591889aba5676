package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yolol-lang/yolol-core/ast"
	"github.com/yolol-lang/yolol-core/numeric"
	"github.com/yolol-lang/yolol-core/value"
)

// fakeNode is a minimal ast.Node used only by this package's tests; the
// real AST node type is produced by the out-of-scope parser (spec.md §1).
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
func unaryNode(k ast.Kind, l *fakeNode) *fakeNode {
	return &fakeNode{kind: k, left: l}
}

func TestEval_Arithmetic(t *testing.T) {
	node := binNode(ast.Add, numLit(2), numLit(3))
	got, serr, err := value.Eval(node, value.MachineState{})
	require.NoError(t, err)
	require.Nil(t, serr)
	assert.Equal(t, "5", got.String())
}

func TestEval_Variable(t *testing.T) {
	state := value.MachineState{}
	state.Set("X", value.Num(numeric.FromInt(42)))
	got, _, _ := value.Eval(variable("x"), state)
	assert.Equal(t, "42", got.String())
}

func TestEval_PreIncrement(t *testing.T) {
	state := value.MachineState{}
	state.Set("x", value.Num(numeric.FromInt(1)))
	got, _, err := value.Eval(unaryNode(ast.PreIncrement, variable("x")), state)
	require.NoError(t, err)
	assert.Equal(t, "2", got.String(), "++x")
	assert.Equal(t, "2", state.Get("x").String(), "state[x] after ++x")
}

func TestEval_PostIncrement(t *testing.T) {
	state := value.MachineState{}
	state.Set("x", value.Num(numeric.FromInt(1)))
	got, _, err := value.Eval(unaryNode(ast.PostIncrement, variable("x")), state)
	require.NoError(t, err)
	assert.Equal(t, "1", got.String(), "x++ should yield the old value")
	assert.Equal(t, "2", state.Get("x").String(), "state[x] after x++")
}

func TestEval_DecrementEmptyString(t *testing.T) {
	state := value.MachineState{}
	state.Set("s", value.Str(""))
	_, _, err := value.Eval(unaryNode(ast.PreDecrement, variable("s")), state)
	assert.Error(t, err)
}

func TestEval_StringConcat(t *testing.T) {
	node := binNode(ast.Add, strLit("foo"), strLit("bar"))
	got, _, _ := value.Eval(node, value.MachineState{})
	assert.Equal(t, "foobar", got.String())
}

func TestEval_TypeErrorPropagates(t *testing.T) {
	node := binNode(ast.Multiply, strLit("x"), numLit(2))
	_, serr, err := value.Eval(node, value.MachineState{})
	assert.NoError(t, err)
	assert.NotNil(t, serr)
}
