// charts/charts.go
package charts

import (
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/rustyeddy/portfolio/book"
	"github.com/rustyeddy/portfolio/report"
)

// Figure file names, one PNG per figure.
const (
	LossRatioFile = "loss_ratio_by_car_type.png"
	AvgClaimsFile = "avg_claims_by_age_group.png"
	MixFile       = "portfolio_mix.png"
	HistogramFile = "claims_histogram.png"
	ScatterFile   = "premium_vs_claims.png"
)

// HistogramBins is the bin count for the per-policy claims histogram.
const HistogramBins = 50

// LossRatioBar renders loss ratio per car type as a bar chart. An
// undefined ratio draws as a zero-height bar.
func LossRatioBar(path string, rows []report.CarTypeLoss) error {
	if len(rows) == 0 {
		return fmt.Errorf("loss ratio chart: no rows")
	}

	bars := make([]chart.Value, 0, len(rows))
	maxRatio := 0.0
	for _, r := range rows {
		v := 0.0
		if r.LossRatio.Valid {
			v = r.LossRatio.Float64
		}
		if v > maxRatio {
			maxRatio = v
		}
		bars = append(bars, chart.Value{Value: v, Label: r.CarType})
	}

	c := chart.BarChart{
		Title:    "Loss Ratio by Car Type",
		Width:    800,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Name:  "Loss Ratio (Claims / Premiums)",
			Range: yRange(maxRatio),
		},
		Bars: bars,
	}
	return renderPNG(path, func(w io.Writer) error { return c.Render(chart.PNG, w) })
}

// AvgClaimsLine renders average claims per policy across the age buckets,
// in canonical bucket order.
func AvgClaimsLine(path string, rows []report.AgeGroupStats) error {
	if len(rows) < 2 {
		return fmt.Errorf("avg claims chart: need at least 2 buckets, got %d", len(rows))
	}

	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	ticks := make([]chart.Tick, len(rows))
	for i, r := range rows {
		xs[i] = float64(book.AgeGroupIndex(r.AgeGroup))
		ys[i] = r.AvgClaimsPerPolicy
		ticks[i] = chart.Tick{Value: xs[i], Label: r.AgeGroup}
	}

	c := chart.Chart{
		Title:  "Average Claims per Policy by Age Group",
		Width:  800,
		Height: 512,
		XAxis: chart.XAxis{
			Name:  "Age Group",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Average Claims per Policy",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return renderPNG(path, func(w io.Writer) error { return c.Render(chart.PNG, w) })
}

// MixPie renders the portfolio mix by car type.
func MixPie(path string, rows []report.MixRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("portfolio mix chart: no rows")
	}

	values := make([]chart.Value, 0, len(rows))
	for _, r := range rows {
		values = append(values, chart.Value{
			Value: float64(r.NumPolicies),
			Label: r.CarType,
		})
	}

	c := chart.PieChart{
		Title:  "Portfolio Mix by Car Type",
		Width:  512,
		Height: 512,
		Values: values,
	}
	return renderPNG(path, func(w io.Writer) error { return c.Render(chart.PNG, w) })
}

// ClaimsHistogram renders the distribution of total claims per policy
// over HistogramBins fixed-width bins.
func ClaimsHistogram(path string, rows []report.PolicyRollup) error {
	if len(rows) == 0 {
		return fmt.Errorf("claims histogram: no rows")
	}

	amounts := make([]float64, len(rows))
	for i, r := range rows {
		amounts[i] = r.TotalClaimsAmount
	}
	edges, counts := Bins(amounts, HistogramBins)

	bars := make([]chart.Value, len(counts))
	maxCount := 0.0
	for i, n := range counts {
		v := float64(n)
		if v > maxCount {
			maxCount = v
		}
		label := ""
		if i%10 == 0 {
			label = fmt.Sprintf("%.0f", edges[i])
		}
		bars[i] = chart.Value{Value: v, Label: label}
	}

	c := chart.BarChart{
		Title:      "Distribution of Total Claims per Policy",
		Width:      1024,
		Height:     512,
		BarWidth:   12,
		BarSpacing: 4,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Name:  "Count of Policies",
			Range: yRange(maxCount),
		},
		Bars: bars,
	}
	return renderPNG(path, func(w io.Writer) error { return c.Render(chart.PNG, w) })
}

// PremiumScatter renders premium against total claims per policy.
func PremiumScatter(path string, rows []report.PolicyRollup) error {
	if len(rows) < 2 {
		return fmt.Errorf("premium scatter: need at least 2 rows, got %d", len(rows))
	}

	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = r.Premium
		ys[i] = r.TotalClaimsAmount
	}

	c := chart.Chart{
		Title:  "Policy Premium vs Total Claims Amount",
		Width:  800,
		Height: 512,
		XAxis: chart.XAxis{
			Name: "Premium ($)",
		},
		YAxis: chart.YAxis{
			Name: "Total Claims Amount ($)",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return renderPNG(path, func(w io.Writer) error { return c.Render(chart.PNG, w) })
}

// Bins splits values into n fixed-width bins over [min, max]. It returns
// the lower edge of each bin and the per-bin counts. A flat data set
// collapses into the first bin.
func Bins(values []float64, n int) ([]float64, []int) {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	edges := make([]float64, n)
	counts := make([]int, n)
	width := (hi - lo) / float64(n)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}

	if width == 0 {
		counts[0] = len(values)
		return edges, counts
	}

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1 // the max value lands in the last bin
		}
		counts[i]++
	}
	return edges, counts
}

func yRange(max float64) chart.Range {
	if max <= 0 {
		max = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: max * 1.1}
}

func renderPNG(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(file); err != nil {
		file.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return file.Close()
}
