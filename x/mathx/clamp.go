package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampDefault returns def when v is zero, otherwise Clamp(v, lo, hi).
// Handy for config fields where 0 means "not set".
func ClampDefault[T constraints.Integer](v, def, lo, hi T) T {
	if v == 0 {
		v = def
	}
	return Clamp(v, lo, hi)
}
