package chart

import (
	"math"
	"testing"

	"github.com/hyperjump/vecplot/pkg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowGeometry(t *testing.T) {
	shape, err := arrowGeometry(vector.New(0, 0), vector.New(3, 4))
	require.NoError(t, err)

	require.Len(t, shape.Head, 3)
	tip := shape.Head[0]
	assert.InDelta(t, 3.0, tip.X, 1e-12)
	assert.InDelta(t, 4.0, tip.Y, 1e-12)

	require.Len(t, shape.Shaft, 2)
	assert.Equal(t, 0.0, shape.Shaft[0].X)
	assert.Equal(t, 0.0, shape.Shaft[0].Y)

	// shaft ends where the head starts, headLength short of the tip
	end := shape.Shaft[1]
	assert.InDelta(t, headLength, math.Hypot(tip.X-end.X, tip.Y-end.Y), 1e-12)

	// head corners are headWidth apart and symmetric about the shaft end
	l, r := shape.Head[1], shape.Head[2]
	assert.InDelta(t, headWidth, math.Hypot(l.X-r.X, l.Y-r.Y), 1e-12)
	assert.InDelta(t, end.X, (l.X+r.X)/2, 1e-12)
	assert.InDelta(t, end.Y, (l.Y+r.Y)/2, 1e-12)
}

func TestArrowGeometry_Offset(t *testing.T) {
	shape, err := arrowGeometry(vector.New(1, 1), vector.New(-2, 0))
	require.NoError(t, err)
	assert.InDelta(t, -1.0, shape.Head[0].X, 1e-12)
	assert.InDelta(t, 1.0, shape.Head[0].Y, 1e-12)
	assert.Equal(t, 1.0, shape.Shaft[0].X)
}

func TestArrowGeometry_ShortVectorIsAllHead(t *testing.T) {
	shape, err := arrowGeometry(vector.New(0, 0), vector.New(0.1, 0))
	require.NoError(t, err)
	assert.Nil(t, shape.Shaft)
	// head base sits at the origin
	assert.InDelta(t, 0.0, (shape.Head[1].X+shape.Head[2].X)/2, 1e-12)
}

func TestArrowGeometry_ZeroVector(t *testing.T) {
	_, err := arrowGeometry(vector.New(0, 0), vector.New(0, 0))
	assert.ErrorIs(t, err, vector.ErrInvalidOperation)
}
