package ast_test

import (
	"testing"

	"github.com/yolol-lang/yolol-core/ast"
)

func TestKind_Arity_Partition(t *testing.T) {
	all := []ast.Kind{
		ast.ConstantNumber, ast.ConstantString, ast.Variable,
		ast.Add, ast.Subtract, ast.Multiply, ast.Divide, ast.Modulo, ast.Exponent,
		ast.EqualTo, ast.NotEqualTo, ast.LessThan, ast.GreaterThan, ast.LessThanEq, ast.GreaterThanEq,
		ast.And, ast.Or, ast.Not, ast.Negate,
		ast.PreIncrement, ast.PostIncrement, ast.PreDecrement, ast.PostDecrement,
		ast.Abs, ast.Sqrt, ast.Sin, ast.Cos, ast.Tan, ast.ArcSin, ast.ArcCos, ast.ArcTan, ast.Factorial,
	}
	for _, k := range all {
		t.Run(k.String(), func(t *testing.T) {
			n := 0
			if ast.IsBinary(k) {
				n++
			}
			if ast.IsUnary(k) {
				n++
			}
			if ast.IsLeaf(k) {
				n++
			}
			if n != 1 {
				t.Errorf("Kind %v matched %d of {binary,unary,leaf}, want exactly 1", k, n)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Foo", "foo"},
		{"FOO", "foo"},
		{":Bar", ":bar"},
		{":BAR", ":bar"},
		{"x", "x"},
	}
	for _, c := range cases {
		if got := ast.NormalizeName(c.in); got != c.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsGlobal(t *testing.T) {
	if !ast.IsGlobal(":x") {
		t.Error("IsGlobal(\":x\") = false, want true")
	}
	if ast.IsGlobal("x") {
		t.Error("IsGlobal(\"x\") = true, want false")
	}
}
