// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. X grows right, Y grows up.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SmoothStep is the cubic Hermite ease 3t^2 - 2t^3 with t clamped to [0, 1].
func SmoothStep(t float64) float64 {
	t = ClampF(t, 0, 1)
	return t * t * (3 - 2*t)
}

// EaseInOutCubic accelerates through the first half and decelerates through
// the second. t is clamped to [0, 1].
func EaseInOutCubic(t float64) float64 {
	t = ClampF(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutQuad provides smooth deceleration for animation.
func EaseOutQuad(t float64) float64 {
	t = ClampF(t, 0, 1)
	return t * (2 - t)
}

// WrapF wraps val into the half-open interval [min, max).
func WrapF(val, min, max float64) float64 {
	span := max - min
	if span <= 0 {
		return min
	}
	for val < min {
		val += span
	}
	for val >= max {
		val -= span
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// HalfViewWidth computes the horizontal world half-extent visible to a
// camera with the given vertical field of view (degrees), aspect ratio and
// distance to the play plane.
func HalfViewWidth(fovDeg, aspect, distance float64) float64 {
	return math.Tan(fovDeg*math.Pi/360) * distance * aspect
}
