package chart

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
)

// CanvasWidth and CanvasHeight give the standard figure size for saved
// charts.
const (
	CanvasWidth  = 12 * vg.Inch
	CanvasHeight = 6 * vg.Inch
)

// TimeSeries renders the standard comparison figure for one metric: one
// line per period, a dashed marker at the policy start, a grid, and a
// legend. Callers own saving the plot.
func TimeSeries(s domain.Series, metric string, policyStart time.Time, title string) (*plot.Plot, error) {
	values, err := s.Metric(metric)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("series %s has no rows to plot", s.Domain())
	}
	if title == "" {
		title = DefaultTitle(metric)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = AxisLabel(metric)
	p.X.Tick.Marker = plot.TimeTicks{Format: domain.DateLayout}
	p.Add(plotter.NewGrid())

	timestamps := s.Timestamps()
	periods := s.Periods()

	for i, period := range []domain.Period{domain.PeriodBefore, domain.PeriodAfter} {
		pts := periodPoints(timestamps, periods, values, period)
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to plot %s period: %w", period, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(string(period), line)
	}

	marker, err := policyMarker(policyStart, values)
	if err != nil {
		return nil, err
	}
	p.Add(marker)
	p.Legend.Add("Policy start", marker)
	p.Legend.Top = true

	return p, nil
}

func periodPoints(timestamps []time.Time, periods []domain.Period, values []float64, want domain.Period) plotter.XYs {
	var pts plotter.XYs
	for i, ts := range timestamps {
		if periods[i] != want {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(ts.Unix()), Y: values[i]})
	}
	return pts
}

// policyMarker draws a dashed vertical line spanning the data range at the
// policy start date.
func policyMarker(at time.Time, values []float64) (*plotter.Line, error) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	x := float64(at.Unix())
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: lo}, {X: x, Y: hi}})
	if err != nil {
		return nil, fmt.Errorf("failed to plot policy marker: %w", err)
	}
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	line.Color = color.RGBA{R: 0xcc, A: 0xff}
	return line, nil
}

// DefaultTitle names the figure after its metric when the caller has no
// better idea.
func DefaultTitle(metric string) string {
	return AxisLabel(metric) + " Before and After Congestion Pricing"
}

// AxisLabel turns a snake_case metric name into a display label.
func AxisLabel(metric string) string {
	words := strings.Split(metric, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
