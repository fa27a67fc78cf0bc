// report/percentiles.go
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Percentiles summarizes the per-policy total-claims distribution. The
// distribution is heavy-tailed, so the high quantiles sit far above the
// median for any realistic parameter set.
type Percentiles struct {
	P50 float64
	P90 float64
	P99 float64
}

// ClaimPercentiles computes P50/P90/P99 of total claim amount over the
// per-policy table. Zero-claim policies count as zeros, not gaps.
func ClaimPercentiles(rows []PolicyRollup) Percentiles {
	if len(rows) == 0 {
		return Percentiles{}
	}

	amounts := make([]float64, len(rows))
	for i, r := range rows {
		amounts[i] = r.TotalClaimsAmount
	}
	sort.Float64s(amounts)

	return Percentiles{
		P50: stat.Quantile(0.50, stat.Empirical, amounts, nil),
		P90: stat.Quantile(0.90, stat.Empirical, amounts, nil),
		P99: stat.Quantile(0.99, stat.Empirical, amounts, nil),
	}
}
