// Package fixed implements the deterministic 24.8 fixed-point arithmetic used by
// the physics and camera code. All additions wrap exactly like 32-bit two's
// complement so trajectories are bit-identical on every platform.
package fixed

// FracBits is the number of fractional bits.
const FracBits = 8

// One is 1.0 in fixed-point.
const One Fixed = 1 << FracBits

// Half is 0.5 in fixed-point.
const Half Fixed = One / 2

// Fixed is a signed fixed-point number with 8 fractional bits.
type Fixed int32

// FromInt converts a whole number to fixed-point.
func FromInt(n int) Fixed {
	return Fixed(int32(n) << FracBits)
}

// FromBits reinterprets raw bits as fixed-point.
func FromBits(bits int32) Fixed {
	return Fixed(bits)
}

// Bits returns the raw representation.
func (f Fixed) Bits() int32 {
	return int32(f)
}

// Int truncates toward negative infinity (arithmetic shift).
func (f Fixed) Int() int {
	return int(int32(f) >> FracBits)
}

// Round returns the nearest whole number, ties toward positive infinity.
func (f Fixed) Round() int {
	return (f + Half).Int()
}

// Add adds two fixed-point values with wrapping.
func (f Fixed) Add(other Fixed) Fixed {
	return Fixed(int32(f) + int32(other))
}

// Sub subtracts two fixed-point values with wrapping.
func (f Fixed) Sub(other Fixed) Fixed {
	return Fixed(int32(f) - int32(other))
}

// Mul multiplies by an integer with wrapping.
func (f Fixed) Mul(n int32) Fixed {
	return Fixed(int32(f) * n)
}

// Div divides by an integer, truncating toward zero. Division by zero yields 0.
func (f Fixed) Div(n int32) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int32(f) / n)
}

// Neg returns -f.
func (f Fixed) Neg() Fixed {
	return Fixed(-int32(f))
}

// Abs returns the absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// Clamp restricts f to [lo, hi].
func Clamp(f, lo, hi Fixed) Fixed {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// MoveToward steps f toward target by at most step (step must be non-negative).
func MoveToward(f, target, step Fixed) Fixed {
	if f < target {
		f = f.Add(step)
		if f > target {
			return target
		}
		return f
	}
	if f > target {
		f = f.Sub(step)
		if f < target {
			return target
		}
	}
	return f
}
