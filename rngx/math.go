package rngx

import "math"

// Clamp01 clamps v into [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp clamps v into [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Smoothstep is the classic Hermite interpolation, 0 below edge0, 1
// above edge1 (spec §4.3 step 1, "falloff = 1 - smoothstep(0,1,n)").
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Hypot returns the Euclidean distance between two points.
func Hypot(dx, dy float32) float32 {
	return float32(math.Hypot(float64(dx), float64(dy)))
}

// Length returns the magnitude of a 2D vector.
func Length(x, y float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y)))
}

// Normalize returns a unit vector in the direction of (x, y), or (0, 0)
// if the input is degenerate.
func Normalize(x, y float32) (float32, float32) {
	l := Length(x, y)
	if l < 1e-8 {
		return 0, 0
	}
	return x / l, y / l
}

// WrapIndex clamps an integer grid coordinate into [0, n) by snapping
// it to the nearest edge cell — the "boundary policy" of spec §4.3
// ("gradients at edges use the center value in place of the missing
// neighbour").
func WrapIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
