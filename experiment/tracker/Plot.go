package tracker

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is a named sequence of per-episode values
type Series struct {
	Name   string
	Values []float64
}

// Plot saves a line plot of each series against the episode number to
// path. The image format is determined by the extension of path.
func Plot(path, title, yLabel string, series ...Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = yLabel

	for i, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		points := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			points[j] = plotter.XY{X: float64(j), Y: v}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("plot %v: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// PlotReturns plots episodic returns along with their running mean over
// the last window episodes
func PlotReturns(path string, returns []float64, window int) error {
	return Plot(path, "Episodic return", "Return",
		Series{"return", returns},
		Series{fmt.Sprintf("mean of last %v", window),
			RunningMean(returns, window)},
	)
}

// RunningMean returns the mean of the last window values at each
// index. Indices before the first full window average over all values
// seen so far.
func RunningMean(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	means := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		means[i] = stat.Mean(values[start:i+1], nil)
	}
	return means
}
