// Package vmath holds the degree-based trigonometry used by the ray caster
// and the camera.
package vmath

import "math"

// DegToRad converts degrees to radians.
func DegToRad(a float64) float64 {
	return a * math.Pi / 180.0
}

// NormalizeAngle wraps a heading back into [0, 360) with a single step.
//
// This is not a modulo: it only handles angles that left the range by a
// small per-tick turn (see config.MaxTurnStep). Note that 359 itself wraps
// to -1.
func NormalizeAngle(a float64) float64 {
	if a >= 359 {
		return a - 360
	}
	if a < 0 {
		return a + 360
	}
	return a
}

// SinCos returns sin and cos of an angle in degrees. Integer multiples of
// 90 give exact 0 and ±1 so axis-aligned rays can be detected with ==.
func SinCos(a float64) (sin, cos float64) {
	r := math.Mod(a, 360)
	if r < 0 {
		r += 360
	}
	switch r {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(DegToRad(a))
}

// Tan returns the tangent of an angle in degrees. It is infinite where the
// cosine is exactly zero.
func Tan(a float64) float64 {
	s, c := SinCos(a)
	return s / c
}

// Cot returns the cotangent of an angle in degrees.
func Cot(a float64) float64 {
	s, c := SinCos(a)
	return c / s
}
