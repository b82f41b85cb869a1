package chart

import (
	"image/color"
	"math"

	"github.com/hyperjump/vecplot/pkg/utils"
	"github.com/hyperjump/vecplot/pkg/vector"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Arrow head size in data units. The head is part of the arrow's length.
const (
	headLength = 0.15
	headWidth  = 0.2

	maxLegendLabel = 40
)

// arrowShape is an arrow split into a shaft polyline and a triangular head.
type arrowShape struct {
	Shaft plotter.XYs // nil when the head covers the whole arrow
	Head  plotter.XYs // tip, left corner, right corner
}

// arrowGeometry computes the arrow from origin to origin+v.
// The zero vector has no direction and returns vector.ErrZeroMagnitude.
func arrowGeometry(origin, v vector.Vector2D) (arrowShape, error) {
	dir, err := v.Normalize()
	if err != nil {
		return arrowShape{}, err
	}
	length := v.Magnitude()
	hl := math.Min(headLength, length)

	tip := vector.New(origin.X+v.X, origin.Y+v.Y)
	base := vector.New(tip.X-dir.X*hl, tip.Y-dir.Y*hl)
	// perpendicular offset for the head corners
	px, py := -dir.Y*headWidth/2, dir.X*headWidth/2

	shape := arrowShape{
		Head: plotter.XYs{
			{X: tip.X, Y: tip.Y},
			{X: base.X + px, Y: base.Y + py},
			{X: base.X - px, Y: base.Y - py},
		},
	}
	if length > hl {
		shape.Shaft = plotter.XYs{{X: origin.X, Y: origin.Y}, {X: base.X, Y: base.Y}}
	}
	return shape, nil
}

// addArrow draws v from origin onto p and registers label in the legend.
func addArrow(p *plot.Plot, origin, v vector.Vector2D, c color.Color, width vg.Length, label string) error {
	shape, err := arrowGeometry(origin, v)
	if err != nil {
		return err
	}

	head, err := plotter.NewPolygon(shape.Head)
	if err != nil {
		return err
	}
	head.Color = c
	head.LineStyle.Color = c
	head.LineStyle.Width = vg.Points(0.5)
	p.Add(head)

	var thumb plot.Thumbnailer = head
	if shape.Shaft != nil {
		shaft, err := plotter.NewLine(shape.Shaft)
		if err != nil {
			return err
		}
		shaft.LineStyle.Color = c
		shaft.LineStyle.Width = width
		p.Add(shaft)
		thumb = shaft
	}

	if label != "" {
		p.Legend.Add(utils.Truncate(label, maxLegendLabel), thumb)
	}
	return nil
}

// addText places a single text label at (x, y).
func addText(p *plot.Plot, x, y float64, text string, c color.Color) error {
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = c
	}
	p.Add(labels)
	return nil
}
