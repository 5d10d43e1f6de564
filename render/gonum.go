package render

import (
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"bayes-dashboard/domain"
)

// GonumRenderer draws charts with gonum/plot.
type GonumRenderer struct {
	Width  vg.Length
	Height vg.Length
}

func NewGonumRenderer() *GonumRenderer {
	return &GonumRenderer{Width: 8 * vg.Inch, Height: 5 * vg.Inch}
}

func (r *GonumRenderer) Render(w io.Writer, spec domain.ChartSpec, format Format) error {
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}

	xs, ys := finitePoints(spec)
	if len(xs) == 0 {
		return errors.New("chart has no finite points")
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	col := parseColor(spec.Color)
	switch spec.Mode {
	case domain.ModeMarkers:
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrap(err, "build scatter")
		}
		scatter.GlyphStyle.Color = col
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(spec.Width / 2)
		p.Add(scatter)
		p.Legend.Add(spec.Name, scatter)
	default:
		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrap(err, "build line")
		}
		line.LineStyle.Color = col
		line.LineStyle.Width = vg.Points(spec.Width)
		p.Add(line)
		p.Legend.Add(spec.Name, line)
	}

	wt, err := p.WriterTo(r.Width, r.Height, string(format))
	if err != nil {
		return errors.Wrap(err, "create canvas")
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "write image")
}
