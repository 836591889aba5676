package z3bridge_test

import (
	"testing"

	"github.com/yolol-lang/yolol-core/internal/z3bridge"
)

func TestFake_ScopedSatUnsat(t *testing.T) {
	e := z3bridge.NewFake()
	defer e.Close()

	x := z3bridge.IntVar(0)

	result, err := z3bridge.Scoped(e, func() (z3bridge.Result, error) {
		e.Assert(z3bridge.Eq(x, z3bridge.IntLit(1)))
		return e.CheckSat()
	})
	if err != nil || result != z3bridge.Sat {
		t.Fatalf("x == 1 should be sat, got %v, %v", result, err)
	}

	result, err = z3bridge.Scoped(e, func() (z3bridge.Result, error) {
		e.Assert(z3bridge.Eq(x, z3bridge.IntLit(1)))
		e.Assert(z3bridge.Eq(x, z3bridge.IntLit(0)))
		return e.CheckSat()
	})
	if err != nil || result != z3bridge.Unsat {
		t.Fatalf("x == 1 && x == 0 should be unsat, got %v, %v", result, err)
	}
}

func TestFake_PopDiscardsAssertions(t *testing.T) {
	e := z3bridge.NewFake()
	defer e.Close()

	x := z3bridge.IntVar(0)
	e.Push()
	e.Assert(z3bridge.Eq(x, z3bridge.IntLit(1)))
	e.Assert(z3bridge.Eq(x, z3bridge.IntLit(0)))
	e.Pop()

	result, err := e.CheckSat()
	if err != nil || result != z3bridge.Sat {
		t.Fatalf("after pop, unconstrained x should be sat, got %v, %v", result, err)
	}
}

func TestFake_SeqConcat(t *testing.T) {
	e := z3bridge.NewFake()
	defer e.Close()

	s := z3bridge.SeqVar(0)
	e.Assert(z3bridge.Eq(z3bridge.SeqConcat(s, z3bridge.SeqLit("b")), z3bridge.SeqLit("ab")))

	result, err := e.CheckSat()
	if err != nil || result != z3bridge.Sat {
		t.Fatalf("s ++ \"b\" == \"ab\" should be sat for s == \"a\", got %v, %v", result, err)
	}
}
