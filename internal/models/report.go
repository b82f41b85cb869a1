package models

import (
	"github.com/hyperjump/vecplot/pkg/vector"
)

// Point is a plain coordinate pair with its display form.
type Point struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Display string  `json:"display"`
}

// PointOf converts v.
func PointOf(v vector.Vector2D) Point {
	return Point{X: v.X, Y: v.Y, Display: v.String()}
}

// VectorReport describes one vector: its magnitude and, when defined, its unit vector.
type VectorReport struct {
	Vector         Point   `json:"vector"`
	Magnitude      float64 `json:"magnitude"`
	Normalized     *Point  `json:"normalized,omitempty"`
	NormalizeError string  `json:"normalize_error,omitempty"`
}

// NewVectorReport inspects v. A failed normalization is recorded, not returned.
func NewVectorReport(v vector.Vector2D) *VectorReport {
	r := &VectorReport{
		Vector:    PointOf(v),
		Magnitude: v.Magnitude(),
	}
	n, err := v.Normalize()
	if err != nil {
		r.NormalizeError = err.Error()
		return r
	}
	p := PointOf(n)
	r.Normalized = &p
	return r
}

// EqualityReport is the result of comparing two vectors within vector.Epsilon.
type EqualityReport struct {
	A       Point   `json:"a"`
	B       Point   `json:"b"`
	Equal   bool    `json:"equal"`
	Epsilon float64 `json:"epsilon"`
}

// NewEqualityReport compares a and b.
func NewEqualityReport(a, b vector.Vector2D) *EqualityReport {
	return &EqualityReport{
		A:       PointOf(a),
		B:       PointOf(b),
		Equal:   a.Equal(b),
		Epsilon: vector.Epsilon,
	}
}
