package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/metatsp/internal/compare"
	"github.com/katalvlaran/metatsp/tsp"
)

// Series is one convergence curve.
type Series struct {
	Name   string
	Values []float64
	Dashed bool
}

// SeriesFrom turns each entry's best run into a series, in ranking order.
// Non-genetic curves are dashed.
func SeriesFrom(entries []compare.Entry) []Series {
	out := make([]Series, 0, len(entries))
	for _, e := range entries {
		if len(e.Best.History) == 0 {
			continue
		}
		out = append(out, Series{
			Name:   e.Variant.Label,
			Values: e.Best.History,
			Dashed: e.Variant.Algorithm != compare.AlgoGenetic,
		})
	}

	return out
}

// Span picks the common x-axis length: the first solid series' length, or the
// longest series when every curve is dashed.
func Span(series []Series) int {
	longest := 0
	for _, s := range series {
		if !s.Dashed && len(s.Values) > 0 {
			return len(s.Values)
		}
		if len(s.Values) > longest {
			longest = len(s.Values)
		}
	}

	return longest
}

// points maps values onto [0, span): a series of a different length is
// rescaled by span/len so that curves with very different step counts share
// one axis.
func points(values []float64, span int) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	scale := 1.0
	if len(values) != span && len(values) > 0 {
		scale = float64(span) / float64(len(values))
	}
	for i, v := range values {
		pts[i].X = float64(i) * scale
		pts[i].Y = v
	}

	return pts
}

// SaveConvergence draws every series on one chart and writes it to path.
// The image format follows the file extension (png, svg, pdf, ...).
func SaveConvergence(path, title string, series []Series) error {
	if len(series) == 0 {
		return fmt.Errorf("report: no series to plot: %w", tsp.ErrInvalidConfig)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation / normalized iteration"
	p.Y.Label.Text = "Best length"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	span := Span(series)
	for i, s := range series {
		line, err := plotter.NewLine(points(s.Values, span))
		if err != nil {
			return fmt.Errorf("report: series %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		if s.Dashed {
			line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}
