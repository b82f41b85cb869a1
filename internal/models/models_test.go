package models

import (
	"encoding/json"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/hyperjump/vecplot/internal/config"
	"github.com/hyperjump/vecplot/pkg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    VectorSpec
		wantErr bool
	}{
		{"named colour", VectorSpec{X: 3, Y: 4, Color: "red", Label: "v1"}, false},
		{"hex colour", VectorSpec{X: 1, Y: 1, Color: "#1f77b4"}, false},
		{"empty colour", VectorSpec{X: 1, Y: 1}, false},
		{"zero vector is drawable data", VectorSpec{X: 0, Y: 0, Color: "gray"}, false},
		{"NaN", VectorSpec{X: math.NaN(), Y: 1}, true},
		{"Inf", VectorSpec{X: 1, Y: math.Inf(-1)}, true},
		{"unknown colour", VectorSpec{X: 1, Y: 1, Color: "not-a-colour"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Purple")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff}, c)

	c, err = ParseColor("#f80")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}, c)

	c, err = ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}

func TestSpecFromEntry(t *testing.T) {
	s := SpecFromEntry(config.VectorEntry{X: 2, Y: 1, Color: "blue", Label: "v2"})
	assert.Equal(t, VectorSpec{X: 2, Y: 1, Color: "blue", Label: "v2"}, s)
	assert.True(t, s.Vector().Equal(vector.New(2, 1)))
}

func TestNewVectorReport(t *testing.T) {
	r := NewVectorReport(vector.New(3, 4))
	assert.Equal(t, 5.0, r.Magnitude)
	assert.Equal(t, "Vector2D(3.00, 4.00)", r.Vector.Display)
	require.NotNil(t, r.Normalized)
	assert.InDelta(t, 0.6, r.Normalized.X, 1e-12)
	assert.InDelta(t, 0.8, r.Normalized.Y, 1e-12)
	assert.Empty(t, r.NormalizeError)
}

func TestNewVectorReport_ZeroVector(t *testing.T) {
	r := NewVectorReport(vector.New(0, 0))
	assert.Equal(t, 0.0, r.Magnitude)
	assert.Nil(t, r.Normalized)
	assert.Contains(t, r.NormalizeError, "cannot normalize a zero-magnitude vector")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), `"normalized"`), string(data))
}

func TestNewEqualityReport(t *testing.T) {
	r := NewEqualityReport(vector.New(1, 2), vector.New(1+1e-10, 2+1e-10))
	assert.True(t, r.Equal)
	assert.Equal(t, vector.Epsilon, r.Epsilon)

	r = NewEqualityReport(vector.New(1, 2), vector.New(1, 3))
	assert.False(t, r.Equal)
}
