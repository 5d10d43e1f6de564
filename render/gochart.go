package render

import (
	"io"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"bayes-dashboard/domain"
)

// GoChartRenderer draws charts with go-chart.
type GoChartRenderer struct {
	Width  int
	Height int
}

func NewGoChartRenderer() *GoChartRenderer {
	return &GoChartRenderer{Width: 1024, Height: 640}
}

func (r *GoChartRenderer) Render(w io.Writer, spec domain.ChartSpec, format Format) error {
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}

	xs, ys := finitePoints(spec)
	if len(xs) == 0 {
		return errors.New("chart has no finite points")
	}

	col := parseColor(spec.Color)
	style := chart.Style{StrokeColor: col, StrokeWidth: spec.Width}
	if spec.Mode == domain.ModeMarkers {
		style = chart.Style{
			StrokeWidth: chart.Disabled,
			DotColor:    col,
			DotWidth:    spec.Width / 2,
		}
	}

	graph := chart.Chart{
		Title:  spec.Title,
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: spec.XLabel, Range: paddedRange(xs)},
		YAxis: chart.YAxis{Name: spec.YLabel, Range: paddedRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.Name,
				XValues: xs,
				YValues: ys,
				Style:   style,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	provider := chart.PNG
	if format == FormatSVG {
		provider = chart.SVG
	}
	return errors.Wrap(graph.Render(provider, w), "render chart")
}

// paddedRange fixes the axis range explicitly; go-chart refuses a
// zero-width range, which a constant density or a single point produces.
func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := floats.Min(values), floats.Max(values)
	if hi == lo {
		lo, hi = lo-0.5, hi+0.5
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}
