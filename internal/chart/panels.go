package chart

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hyperjump/vecplot/internal/config"
	"github.com/hyperjump/vecplot/internal/models"
	"github.com/hyperjump/vecplot/pkg/utils"
	"github.com/hyperjump/vecplot/pkg/vector"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	gridColor   = color.Gray{Y: 220}
	circleColor = color.Gray{Y: 128}
	noteColor   = color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
)

// newPanel returns a plot with title, axis labels, grid, and the x/y axes drawn through the origin.
func newPanel(title string, b config.Bounds) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	for _, xys := range []plotter.XYs{
		{{X: b.Min, Y: 0}, {X: b.Max, Y: 0}},
		{{X: 0, Y: b.Min}, {X: 0, Y: b.Max}},
	} {
		axis, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		axis.LineStyle.Color = color.Black
		axis.LineStyle.Width = vg.Points(0.5)
		p.Add(axis)
	}
	return p, nil
}

// fixBounds pins both axes to b; call after every plotter has been added.
func fixBounds(p *plot.Plot, b config.Bounds) {
	p.X.Min, p.X.Max = b.Min, b.Max
	p.Y.Min, p.Y.Max = b.Min, b.Max
}

// overviewPanel draws every configured vector from the origin with its magnitude next to it.
func (r *Renderer) overviewPanel() (*plot.Plot, error) {
	oc := r.cfg.Overview
	p, err := newPanel(oc.Title, oc.Bounds)
	if err != nil {
		return nil, err
	}

	origin := vector.New(0, 0)
	for _, entry := range oc.Vectors {
		spec := models.SpecFromEntry(entry)
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		c, _ := spec.RGBA()
		v := spec.Vector()

		err := addArrow(p, origin, v, c, vg.Points(2), spec.Label)
		if errors.Is(err, vector.ErrZeroMagnitude) {
			r.logger.Warn("skipping zero vector on overview", zap.String("label", spec.Label))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("draw %s: %w", v, err)
		}

		mag := v.Magnitude()
		if err := addText(p, v.X/2+0.3, v.Y/2+0.3, fmt.Sprintf("|v|=%.2f", mag), c); err != nil {
			return nil, err
		}
		r.logger.Debug("overview vector drawn",
			zap.String("vector", v.String()),
			zap.Float64("magnitude", mag))
	}

	fixBounds(p, oc.Bounds)
	return p, nil
}

// normalizationPanel draws the sample vector, its unit vector, and the unit circle.
func (r *Renderer) normalizationPanel() (*plot.Plot, error) {
	nc := r.cfg.Normalization
	p, err := newPanel(nc.Title, nc.Bounds)
	if err != nil {
		return nil, err
	}

	var circle plotter.XYs
	for _, pt := range utils.CirclePoints(0, 0, 1, nc.CircleSegments) {
		circle = append(circle, plotter.XY{X: pt[0], Y: pt[1]})
	}
	ring, err := plotter.NewLine(circle)
	if err != nil {
		return nil, err
	}
	ring.LineStyle.Color = circleColor
	ring.LineStyle.Width = vg.Points(1.5)
	ring.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(4)}
	p.Add(ring)
	if err := addText(p, 1.2, 0.2, "unit circle (r=1)", circleColor); err != nil {
		return nil, err
	}

	spec := models.SpecFromEntry(nc.Sample)
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	original := spec.Vector()
	normalized, err := original.Normalize()
	if err != nil {
		return nil, fmt.Errorf("normalization sample %s: %w", original, err)
	}

	origColor, _ := spec.RGBA()
	normColor, err := models.ParseColor(nc.NormalizedColor)
	if err != nil {
		return nil, fmt.Errorf("normalized_color: %w", err)
	}

	origin := vector.New(0, 0)
	label := fmt.Sprintf("%s (length=%.2f)", spec.Label, original.Magnitude())
	if err := addArrow(p, origin, original, origColor, vg.Points(3), label); err != nil {
		return nil, err
	}
	label = fmt.Sprintf("normalized (length=%.2f)", normalized.Magnitude())
	if err := addArrow(p, origin, normalized, normColor, vg.Points(3), label); err != nil {
		return nil, err
	}

	span := nc.Bounds.Max - nc.Bounds.Min
	noteX := nc.Bounds.Min + 0.55*span
	noteY := nc.Bounds.Min + 0.75*span
	for i, line := range []string{"normalization:", "same direction,", "length becomes 1"} {
		if err := addText(p, noteX, noteY-float64(i)*0.05*span, line, noteColor); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("normalization drawn",
		zap.String("original", original.String()),
		zap.String("normalized", normalized.String()))

	fixBounds(p, nc.Bounds)
	return p, nil
}
