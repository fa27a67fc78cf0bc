package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimPercentiles(t *testing.T) {
	t.Parallel()

	rows := make([]PolicyRollup, 100)
	for i := range rows {
		rows[i] = PolicyRollup{PolicyID: int64(i + 1), TotalClaimsAmount: float64(i + 1)}
	}

	p := ClaimPercentiles(rows)
	assert.InDelta(t, 50, p.P50, 1)
	assert.InDelta(t, 90, p.P90, 1)
	assert.InDelta(t, 99, p.P99, 1)
}

func TestClaimPercentilesZeroHeavy(t *testing.T) {
	t.Parallel()

	// Most policies have no claims; the median of the rollup must be zero.
	rows := make([]PolicyRollup, 10)
	rows[9].TotalClaimsAmount = 50000
	p := ClaimPercentiles(rows)
	assert.Zero(t, p.P50)
	assert.Equal(t, 50000.0, p.P99)
}

func TestClaimPercentilesEmpty(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ClaimPercentiles(nil))
}
