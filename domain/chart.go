package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

type Mode string

const (
	ModeLines   Mode = "lines"
	ModeMarkers Mode = "markers"
)

// ChartSpec is a renderable curve or point set, independent of any
// charting library.
type ChartSpec struct {
	ID     string    `json:"id,omitempty"`
	Title  string    `json:"title"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	Name   string    `json:"name"`
	Mode   Mode      `json:"mode"`
	X      []float64 `json:"x"`
	Y      Values    `json:"y"`
	Color  string    `json:"color"`
	// Width is the stroke width in lines mode and the marker size in
	// markers mode.
	Width float64 `json:"width"`
}

// Values is a series of y values. Non-finite entries, such as an unbounded
// density at the edge of its support, encode as JSON null and decode as NaN.
type Values []float64

func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+len(v)*12)
	buf = append(buf, '[')
	for i, f := range v {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, f, 'g', -1, 64)
	}
	return append(buf, ']'), nil
}

func (v *Values) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = nil
		return nil
	}
	out := make(Values, len(raw))
	for i, f := range raw {
		if f == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *f
	}
	*v = out
	return nil
}
