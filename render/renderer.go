// Package render turns chart specs into images.
package render

import (
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"bayes-dashboard/domain"
)

var (
	ErrUnsupportedFormat   = errors.New("unsupported image format")
	ErrUnsupportedRenderer = errors.New("unsupported renderer")
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Renderer draws a chart in the requested format.
type Renderer interface {
	Render(w io.Writer, spec domain.ChartSpec, format Format) error
}

const (
	RendererGonum   = "gonum"
	RendererGoChart = "gochart"
)

// New returns the renderer registered under name.
func New(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case RendererGonum, "":
		return NewGonumRenderer(), nil
	case RendererGoChart:
		return NewGoChartRenderer(), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedRenderer, "%q", name)
}

// finitePoints drops points whose y value is not finite; they mark gaps
// such as an unbounded density at the edge of its support.
func finitePoints(spec domain.ChartSpec) (xs, ys []float64) {
	n := min(len(spec.X), len(spec.Y))
	xs = make([]float64, 0, n)
	ys = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y := spec.Y[i]
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, spec.X[i])
		ys = append(ys, y)
	}
	return xs, ys
}

func parseColor(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if hex == "" {
		return chart.ColorBlue
	}
	return drawing.ColorFromHex(hex)
}
