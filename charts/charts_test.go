package charts

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/portfolio/report"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, path string) {
	t.Helper()

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestLossRatioBar(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), LossRatioFile)
	rows := []report.CarTypeLoss{
		{CarType: "Sports", LossRatio: sql.NullFloat64{Float64: 1.8, Valid: true}},
		{CarType: "Truck", LossRatio: sql.NullFloat64{Float64: 1.1, Valid: true}},
		{CarType: "Sedan", LossRatio: sql.NullFloat64{}},
	}
	assert.NoError(t, LossRatioBar(path, rows))
	assertPNG(t, path)
}

func TestAvgClaimsLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), AvgClaimsFile)
	rows := []report.AgeGroupStats{
		{AgeGroup: "18-29", AvgClaimsPerPolicy: 0.31},
		{AgeGroup: "30-39", AvgClaimsPerPolicy: 0.12},
		{AgeGroup: "70+", AvgClaimsPerPolicy: 0.09},
	}
	assert.NoError(t, AvgClaimsLine(path, rows))
	assertPNG(t, path)
}

func TestAvgClaimsLineNeedsTwoBuckets(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), AvgClaimsFile)
	assert.Error(t, AvgClaimsLine(path, []report.AgeGroupStats{{AgeGroup: "18-29"}}))
}

func TestMixPie(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), MixFile)
	rows := []report.MixRow{
		{CarType: "Sedan", NumPolicies: 400},
		{CarType: "SUV", NumPolicies: 300},
		{CarType: "Truck", NumPolicies: 200},
		{CarType: "Sports", NumPolicies: 100},
	}
	assert.NoError(t, MixPie(path, rows))
	assertPNG(t, path)
}

func TestClaimsHistogram(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), HistogramFile)
	rows := make([]report.PolicyRollup, 200)
	for i := range rows {
		rows[i] = report.PolicyRollup{TotalClaimsAmount: float64(i * 97)}
	}
	assert.NoError(t, ClaimsHistogram(path, rows))
	assertPNG(t, path)
}

func TestPremiumScatter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ScatterFile)
	rows := []report.PolicyRollup{
		{Premium: 900, TotalClaimsAmount: 0},
		{Premium: 1200, TotalClaimsAmount: 7300},
		{Premium: 1450, TotalClaimsAmount: 150},
		{Premium: 2100, TotalClaimsAmount: 43000},
	}
	assert.NoError(t, PremiumScatter(path, rows))
	assertPNG(t, path)
}

func TestBins(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	edges, counts := Bins(values, 5)
	assert.Len(t, edges, 5)
	assert.Len(t, counts, 5)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(values), total)

	// The maximum value belongs to the last bin, not a phantom sixth.
	assert.Equal(t, []int{2, 2, 2, 2, 3}, counts)
	assert.InDelta(t, 0, edges[0], 1e-9)
	assert.InDelta(t, 8, edges[4], 1e-9)
}

func TestBinsFlatData(t *testing.T) {
	t.Parallel()

	_, counts := Bins([]float64{5, 5, 5}, 4)
	assert.Equal(t, []int{3, 0, 0, 0}, counts)
}
