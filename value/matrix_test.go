package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yolol-lang/yolol-core/errs"
	"github.com/yolol-lang/yolol-core/numeric"
	"github.com/yolol-lang/yolol-core/value"
)

func n(i int64) value.Value    { return value.Num(numeric.FromInt(i)) }
func s(str string) value.Value { return value.Str(str) }

// TestOperatorMatrix covers all four kind pairings of +, -, *, < and ==,
// and the N,N and N,S cells of /, % and ^, plus N,S of !=.
func TestOperatorMatrix(t *testing.T) {
	cases := []struct {
		name    string
		op      value.Op
		a, b    value.Value
		want    value.Value
		wantErr bool
	}{
		{"N+N", value.OpAdd, n(2), n(3), n(5), false},
		{"N+S", value.OpAdd, n(2), s("x"), s("2x"), false},
		{"S+N", value.OpAdd, s("x"), n(2), s("x2"), false},
		{"S+S", value.OpAdd, s("a"), s("b"), s("ab"), false},

		{"N-N", value.OpSub, n(5), n(3), n(2), false},
		{"N-S", value.OpSub, n(2), s("2"), s(""), false},
		{"S-N", value.OpSub, s("hello2"), n(2), s("hello"), false},
		{"S-S", value.OpSub, s("hello"), s("lo"), s("hel"), false},

		{"N*N", value.OpMul, n(2), n(3), n(6), false},
		{"N*S", value.OpMul, n(2), s("x"), value.Value{}, true},
		{"S*N", value.OpMul, s("x"), n(2), value.Value{}, true},
		{"S*S", value.OpMul, s("x"), s("y"), value.Value{}, true},

		{"N/N", value.OpDiv, n(6), n(3), n(2), false},
		{"N/S", value.OpDiv, n(6), s("x"), value.Value{}, true},

		{"N%N", value.OpMod, n(5), n(3), n(2), false},
		{"N%S", value.OpMod, n(5), s("x"), value.Value{}, true},

		{"N^N", value.OpPow, n(2), n(3), n(8), false},
		{"N^S", value.OpPow, n(2), s("x"), value.Value{}, true},

		{"N<N", value.OpLess, n(2), n(3), boolN(true), false},
		{"N<S", value.OpLess, n(2), s("9"), boolN(true), false},
		{"S<N", value.OpLess, s("9"), n(2), boolN(false), false},
		{"S<S", value.OpLess, s("a"), s("b"), boolN(true), false},

		{"N==N true", value.OpEqual, n(2), n(2), boolN(true), false},
		{"N==N false", value.OpEqual, n(2), n(3), boolN(false), false},
		{"N==S", value.OpEqual, n(2), s("2"), boolN(false), false},
		{"S==N", value.OpEqual, s("2"), n(2), boolN(false), false},
		{"S==S", value.OpEqual, s("a"), s("a"), boolN(true), false},

		{"N!=S", value.OpNotEqual, n(2), s("2"), boolN(true), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, serr, err := value.EvalOp(c.op, c.a, c.b)
			if c.wantErr {
				assert.True(t, serr != nil || err != nil, "want an error, got value %v", got)
				return
			}
			assert.NoError(t, err)
			assert.Nil(t, serr)
			assert.Equal(t, c.want.Kind(), got.Kind())
			assert.Equal(t, c.want.String(), got.String())
		})
	}
}

func boolN(b bool) value.Value {
	if b {
		return n(1)
	}
	return n(0)
}

func TestDivideByZero(t *testing.T) {
	_, _, err := value.EvalOp(value.OpDiv, n(1), n(0))
	assert.ErrorIs(t, err, errs.ErrDivideByZero)
}

func TestModulusByZero(t *testing.T) {
	_, _, err := value.EvalOp(value.OpMod, n(1), n(0))
	assert.ErrorIs(t, err, errs.ErrModulusByZero)
}

func TestAndOrTruthiness(t *testing.T) {
	got, _, _ := value.EvalOp(value.OpAnd, n(0), s("anything"))
	assert.Equal(t, "0", got.String())

	got, _, _ = value.EvalOp(value.OpOr, n(0), s("anything"))
	assert.Equal(t, "1", got.String())
}
