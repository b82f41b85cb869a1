// Package vector provides a small immutable 2D vector value type.
package vector

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the absolute tolerance used by Equal.
const Epsilon = 1e-9

// ErrInvalidOperation is returned when an operation is undefined for its input.
var ErrInvalidOperation = errors.New("invalid operation")

// ErrZeroMagnitude is returned by Normalize for the zero vector.
var ErrZeroMagnitude = fmt.Errorf("%w: cannot normalize a zero-magnitude vector", ErrInvalidOperation)

// Vector2D is a pair of float64 coordinates. Methods never modify the receiver.
// Coordinates are expected to be finite; this is not checked.
type Vector2D struct {
	X float64
	Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Of builds a vector from any integer or float coordinates.
func Of[T constraints.Integer | constraints.Float](x, y T) Vector2D {
	return Vector2D{X: float64(x), Y: float64(y)}
}

// Magnitude returns the Euclidean length sqrt(x² + y²).
func (v Vector2D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector with the same direction as v.
// It returns ErrZeroMagnitude when the magnitude is exactly zero; tiny
// nonzero magnitudes are divided through as-is.
func (v Vector2D) Normalize() (Vector2D, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector2D{}, ErrZeroMagnitude
	}
	return Vector2D{X: v.X / mag, Y: v.Y / mag}, nil
}

// Equal reports whether both coordinate differences are below Epsilon.
// The relation is not transitive.
func (v Vector2D) Equal(o Vector2D) bool {
	return math.Abs(v.X-o.X) < Epsilon && math.Abs(v.Y-o.Y) < Epsilon
}

// EqualTo is Equal for arbitrary values: anything other than a Vector2D or
// a non-nil *Vector2D compares unequal.
func (v Vector2D) EqualTo(other any) bool {
	switch o := other.(type) {
	case Vector2D:
		return v.Equal(o)
	case *Vector2D:
		return o != nil && v.Equal(*o)
	default:
		return false
	}
}

// String formats v as "Vector2D(x, y)" with two decimals.
func (v Vector2D) String() string {
	return fmt.Sprintf("Vector2D(%.2f, %.2f)", v.X, v.Y)
}
