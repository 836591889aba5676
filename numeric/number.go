// Package numeric provides Number, a fixed-point decimal scalar with exactly
// three fractional digits, stored as a signed 64-bit integer. See spec.md
// §3 and §4.1 for the contract this package implements.
//
// Number has proper value semantics: it is a plain int64 under the hood and
// its zero value is Number(0), matching Zero. All arithmetic is pure and
// safe for concurrent use, per spec.md §5.
package numeric

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/yolol-lang/yolol-core/errs"
)

// Scale is the denominator implied by Number's fixed-point representation:
// the mathematical value of a Number n is int64(n) / Scale. ScaleDigits is
// its decimal digit count. Both are part of the external contract because
// they appear in textual round-trips (spec.md §3).
const (
	Scale       = 1000
	ScaleDigits = 3
)

// Number is an opaque fixed-point scalar. The mathematical value is
// raw/1000. The zero value is Zero.
type Number int64

// Well-known constants, per spec.md §3.
const (
	Zero     Number = 0
	One      Number = Scale
	MinValue Number = -1 << 63
	MaxValue Number = 1<<63 - 1
)

// FromRaw builds a Number directly from its internal scaled representation.
func FromRaw(raw int64) Number { return Number(raw) }

// Raw returns the internal scaled representation such that
// float64(n.Raw())/Scale is the mathematical value.
func (n Number) Raw() int64 { return int64(n) }

// FromInt builds a Number equal to i, wrapping on overflow like every other
// non-saturating conversion in this package (spec.md §4.1).
func FromInt(i int64) Number { return Number(i * Scale) }

// FromBool maps true to One and false to Zero.
func FromBool(b bool) Number {
	if b {
		return One
	}
	return Zero
}

// IsTruthy reports whether n is considered true by and/or/! (spec.md §4.2):
// a Number is falsy iff its raw value is exactly zero.
func (n Number) IsTruthy() bool { return n != Zero }

// FromFloat64 converts f to the nearest representable Number, saturating at
// MinValue/MaxValue when f is out of range (spec.md §4.1).
func FromFloat64(f float64) Number {
	return fromFloat64(f, true)
}

// fromFloat64TruncToward0 converts f to a Number by truncating the scaled
// value toward zero instead of rounding to nearest. Used by Tan, which
// spec.md §4.1/§9 documents as intentionally not rounded, and by Sqrt after
// its epsilon nudge.
func fromFloat64TruncToward0(f float64) Number {
	return fromFloat64(f, false)
}

func fromFloat64(f float64, round bool) Number {
	scaled := f * Scale
	if round {
		if scaled >= 0 {
			scaled += 0.5
		} else {
			scaled -= 0.5
		}
	}
	const maxRaw = float64(MaxValue)
	const minRaw = float64(MinValue)
	if scaled >= maxRaw {
		return MaxValue
	}
	if scaled <= minRaw {
		return MinValue
	}
	return Number(int64(scaled))
}

// Add returns a+b. Overflow wraps, per spec.md §4.1.
func (a Number) Add(b Number) Number { return Number(int64(a) + int64(b)) }

// Sub returns a-b. Overflow wraps, per spec.md §4.1.
func (a Number) Sub(b Number) Number { return Number(int64(a) - int64(b)) }

// Neg returns -a. Overflow wraps, per spec.md §4.1 (Neg(MinValue) wraps back
// to MinValue; unlike Abs this is not saturated).
func (a Number) Neg() Number { return Number(-int64(a)) }

// Inc returns a+1 (the raw-level ++ operator), wrapping on overflow.
func (a Number) Inc() Number { return Number(int64(a) + Scale) }

// Dec returns a-1 (the raw-level -- operator), wrapping on overflow.
func (a Number) Dec() Number { return Number(int64(a) - Scale) }

// Abs returns the magnitude of a. Abs(MinValue) saturates to MinValue
// because MinValue has no positive counterpart in a two's-complement
// int64 (spec.md §4.1, §8).
func (a Number) Abs() Number {
	if a == MinValue {
		return MinValue
	}
	if a < 0 {
		return -a
	}
	return a
}

// wrapToInt64 takes the low 64 bits of a big.Int result, the same wraparound
// semantics int64 arithmetic has natively. Used wherever an operation needs
// a widened (>64-bit) intermediate but the final result still wraps instead
// of saturating, per spec.md §4.1.
func wrapToInt64(z *big.Int) int64 {
	var mask big.Int
	mask.SetUint64(^uint64(0))
	var u big.Int
	u.And(z, &mask)
	return int64(u.Uint64())
}

// Mul returns (a*b)/1000 truncated toward zero, via a widened big.Int
// intermediate so that precision survives the /1000 rescale (spec.md
// §4.1). The teacher widens to 128 bits with math/bits for the same
// reason in TryAdd/TryMul; Number reaches instead for math/big, which the
// teacher also uses (BigRat, FromBigRat) whenever 64 bits isn't enough.
func (a Number) Mul(b Number) Number {
	var x, y, z big.Int
	x.SetInt64(int64(a))
	y.SetInt64(int64(b))
	z.Mul(&x, &y)
	z.Quo(&z, big.NewInt(Scale)) // Quo truncates toward zero, matching spec.md §4.1
	return Number(wrapToInt64(&z))
}

// Div returns (a*1000)/b, failing with ErrDivideByZero when b is zero
// (spec.md §4.1).
func (a Number) Div(b Number) (Number, error) {
	if b == 0 {
		return 0, errs.ErrDivideByZero
	}
	var x, y, z big.Int
	x.SetInt64(int64(a))
	x.Mul(&x, big.NewInt(Scale))
	y.SetInt64(int64(b))
	z.Quo(&x, &y)
	return Number(wrapToInt64(&z)), nil
}

// Mod returns a%b on the raw values, failing with ErrModulusByZero when b
// is zero (spec.md §4.1).
func (a Number) Mod(b Number) (Number, error) {
	if b == 0 {
		return 0, errs.ErrModulusByZero
	}
	return Number(int64(a) % int64(b)), nil
}

// String returns the shortest decimal that round-trips at three fractional
// digits: an integer part, then (if the fractional part is non-zero) a '.'
// and up to three digits with trailing zeros stripped. Negative values with
// magnitude less than one render as "-0.x" (spec.md §4.1).
func (n Number) String() string {
	raw := int64(n)
	neg := raw < 0
	u := uint64(raw)
	if neg {
		u = uint64(-raw)
	}
	intPart := u / Scale
	frac := u % Scale

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(intPart, 10))
	if frac != 0 {
		digits := fmt.Sprintf("%0*d", ScaleDigits, frac)
		digits = strings.TrimRight(digits, "0")
		b.WriteByte('.')
		b.WriteString(digits)
	}
	return b.String()
}

// Parse parses a decimal literal into a Number, saturating if the value is
// out of [MinValue, MaxValue] (spec.md §4.1).
func Parse(s string) (Number, error) {
	if s == "" {
		return 0, fmt.Errorf("numeric: parsing %q: empty string", s)
	}
	neg := false
	rest := s
	switch rest[0] {
	case '-':
		neg = true
		rest = rest[1:]
	case '+':
		rest = rest[1:]
	}
	if rest == "" {
		return 0, fmt.Errorf("numeric: parsing %q: no digits", s)
	}

	intStr, fracStr, hasDot := strings.Cut(rest, ".")
	if hasDot && strings.Contains(fracStr, ".") {
		return 0, fmt.Errorf("numeric: parsing %q: multiple decimal points", s)
	}
	if intStr == "" {
		intStr = "0"
	}
	for len(fracStr) < ScaleDigits {
		fracStr += "0"
	}
	fracStr = fracStr[:ScaleDigits] // digits beyond the third fractional place are discarded, not rounded

	intVal, ok := new(big.Int).SetString(intStr, 10)
	if !ok {
		return 0, fmt.Errorf("numeric: parsing %q: invalid integer part", s)
	}
	fracVal, err := strconv.ParseUint(fracStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("numeric: parsing %q: %w", s, err)
	}

	var scaled big.Int
	scaled.Mul(intVal, big.NewInt(Scale))
	scaled.Add(&scaled, new(big.Int).SetUint64(fracVal))
	if neg {
		scaled.Neg(&scaled)
	}

	min := big.NewInt(int64(MinValue))
	max := big.NewInt(int64(MaxValue))
	if scaled.Cmp(max) > 0 {
		return MaxValue, nil
	}
	if scaled.Cmp(min) < 0 {
		return MinValue, nil
	}
	return Number(scaled.Int64()), nil
}
