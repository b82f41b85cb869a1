// Package chart renders vectors to PNG with gonum/plot.
package chart

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hyperjump/vecplot/internal/config"
	"github.com/hyperjump/vecplot/pkg/utils"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Renderer draws the overview and normalization panels side by side.
type Renderer struct {
	cfg    *config.Config
	logger *zap.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLogger sets a logger for render events.
func WithLogger(l *zap.Logger) RendererOption {
	return func(r *Renderer) { r.logger = l }
}

// NewRenderer creates a renderer for cfg. cfg is read on every render and must not be mutated concurrently.
func NewRenderer(cfg *config.Config, opts ...RendererOption) *Renderer {
	r := &Renderer{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = utils.LoggerOrNop(r.logger)
	return r
}

// WritePNG renders both panels and writes one PNG image to w.
func (r *Renderer) WritePNG(w io.Writer) error {
	if err := r.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	left, err := r.overviewPanel()
	if err != nil {
		return fmt.Errorf("overview panel: %w", err)
	}
	right, err := r.normalizationPanel()
	if err != nil {
		return fmt.Errorf("normalization panel: %w", err)
	}

	out := r.cfg.Output
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(out.WidthInches)*vg.Inch, vg.Length(out.HeightInches)*vg.Inch),
		vgimg.UseDPI(out.DPI),
	)
	dc := draw.New(img)
	pad := 4 * vg.Millimeter
	tiles := draw.Tiles{
		Rows: 1, Cols: 2,
		PadX: pad, PadY: pad,
		PadTop: pad, PadBottom: pad, PadLeft: pad, PadRight: pad,
	}
	canvases := plot.Align([][]*plot.Plot{{left, right}}, tiles, dc)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SaveFile renders to the configured output path, creating its directory. Returns the path written.
func (r *Renderer) SaveFile() (string, error) {
	out := r.cfg.Output
	if err := os.MkdirAll(out.Directory, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	// Render fully before touching the file so a failed render leaves the previous image intact.
	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err != nil {
		return "", err
	}
	path := out.Path()
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	r.logger.Info("chart saved", zap.String("path", path), zap.Int("bytes", buf.Len()))
	return path, nil
}
