package numeric

import "math"

// pi is spelled to eleven digits exactly, per spec.md §9: cross-platform
// result stability requires this fixed constant instead of the host math
// library's higher-precision π.
const pi = 3.14159265359

func degToRad(deg float64) float64 { return deg * pi / 180 }
func radToDeg(rad float64) float64 { return rad * 180 / pi }

// Sin returns sin(a), a in degrees, rounded to three decimal places before
// being converted back to a Number (spec.md §4.1).
func (a Number) Sin() Number {
	rad := degToRad(float64(a) / Scale)
	return FromFloat64(math.Sin(rad))
}

// Cos returns cos(a), a in degrees, rounded to three decimal places before
// being converted back to a Number (spec.md §4.1).
func (a Number) Cos() Number {
	rad := degToRad(float64(a) / Scale)
	return FromFloat64(math.Cos(rad))
}

// Tan returns tan(a), a in degrees. Unlike Sin/Cos, the result is not
// pre-rounded to three decimals: truncation through the fixed-point
// conversion is enough (spec.md §4.1, and §9's documented sin/cos-vs-tan
// asymmetry, which is preserved on purpose, not normalised away).
func (a Number) Tan() Number {
	rad := degToRad(float64(a) / Scale)
	return fromFloat64TruncToward0(math.Tan(rad))
}

// Asin returns the arcsine of a, in degrees.
func (a Number) Asin() Number {
	rad := math.Asin(float64(a) / Scale)
	return FromFloat64(radToDeg(rad))
}

// Acos returns the arccosine of a, in degrees.
func (a Number) Acos() Number {
	rad := math.Acos(float64(a) / Scale)
	return FromFloat64(radToDeg(rad))
}

// Atan returns the arctangent of a, in degrees.
func (a Number) Atan() Number {
	rad := math.Atan(float64(a) / Scale)
	return FromFloat64(radToDeg(rad))
}

// sqrtOverflowRaw is the raw cutoff past which Sqrt saturates to MinValue
// rather than attempt a conversion, per spec.md §4.1. Spec.md §9 pins this
// as part of the contract without settling whether it's a tuned safety
// margin or an arbitrary cutoff; this package treats it as a fixed
// constant either way.
const sqrtOverflowRaw = 9223372036854775000

// Sqrt returns the square root of a. Negative operands and operands at or
// beyond sqrtOverflowRaw both return MinValue (spec.md §4.1); otherwise the
// real square root is computed in double precision and nudged by
// epsilon = 5e-5 in the direction of its own sign before being converted
// back to fixed point, which is the rounding policy the spec calls for.
func (a Number) Sqrt() Number {
	raw := int64(a)
	if raw < 0 || raw >= sqrtOverflowRaw {
		return MinValue
	}
	v := math.Sqrt(float64(raw) / Scale)
	const epsilon = 5e-5
	if v >= 0 {
		v += epsilon
	} else {
		v -= epsilon
	}
	return fromFloat64TruncToward0(v)
}

// Pow returns a**b via double precision, saturating on overflow (spec.md
// §4.1). pow(a, string) is a type error handled one layer up, in the Value
// engine, since Number.Pow only ever sees two Numbers.
func (a Number) Pow(b Number) Number {
	base := float64(a) / Scale
	exp := float64(b) / Scale
	return FromFloat64(math.Pow(base, exp))
}

// Factorial returns ⌊a⌋! scaled back into fixed point. Negative operands
// return MinValue. Overflow in the accumulating product wraps silently,
// like every int64 multiplication in Go and like the rest of this
// package's non-division arithmetic (spec.md §4.1).
func (a Number) Factorial() Number {
	raw := int64(a)
	if raw < 0 {
		return MinValue
	}
	n := raw / Scale
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i // silent int64 wraparound is the documented behavior
	}
	return Number(result * Scale)
}
