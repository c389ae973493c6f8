// math/core.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Radians converts an angle expressed in degrees to radians.
func Radians(d float64) float64 {
	return d * gomath.Pi / 180
}

// SafeACos returns acos(a) after clamping a to [-1,1], so that values that
// have drifted just outside the domain due to round-off don't give NaN.
func SafeACos(a float64) float64 {
	return gomath.Acos(Clamp(a, -1, 1))
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Compare is a three-way comparison for floats that sorts NaNs first and
// is otherwise the usual numeric order.
func Compare[T constraints.Float](a, b T) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
