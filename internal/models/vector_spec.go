// Package models holds the data shapes shared by the chart, CLI, and HTTP API.
package models

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hyperjump/vecplot/internal/config"
	"github.com/hyperjump/vecplot/pkg/vector"
	"golang.org/x/image/colornames"
)

// VectorSpec is a vector to draw together with its presentation.
type VectorSpec struct {
	X     float64
	Y     float64
	Color string
	Label string
}

// SpecFromEntry converts a configured vector entry.
func SpecFromEntry(e config.VectorEntry) VectorSpec {
	return VectorSpec{X: e.X, Y: e.Y, Color: e.Color, Label: e.Label}
}

// Validate rejects non-finite coordinates and colours RGBA cannot parse.
func (s *VectorSpec) Validate() error {
	if !finite(s.X) || !finite(s.Y) {
		return fmt.Errorf("vector %q: coordinates must be finite, got (%v, %v)", s.Label, s.X, s.Y)
	}
	if _, err := s.RGBA(); err != nil {
		return fmt.Errorf("vector %q: %w", s.Label, err)
	}
	return nil
}

// Vector returns the spec's coordinates as a Vector2D.
func (s *VectorSpec) Vector() vector.Vector2D {
	return vector.New(s.X, s.Y)
}

// RGBA resolves Color. An empty colour is black.
func (s *VectorSpec) RGBA() (color.RGBA, error) {
	return ParseColor(s.Color)
}

// ParseColor accepts SVG colour names ("red", "purple", ...) and hex forms "#rgb" / "#rrggbb".
func ParseColor(name string) (color.RGBA, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return colornames.Black, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if !strings.HasPrefix(name, "#") {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", name)
	}
	hex := name[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", name)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", name, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
