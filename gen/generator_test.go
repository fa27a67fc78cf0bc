package gen

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/portfolio/book"
)

func TestDefaultParamsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestParamsValidateRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero policies", func(p *Params) { p.NumPolicies = 0 }},
		{"inverted ages", func(p *Params) { p.AgeMin = 80; p.AgeMax = 18 }},
		{"short weights", func(p *Params) { p.CarTypeWeights = []float64{0.5, 0.5} }},
		{"weights not normalized", func(p *Params) { p.CarTypeWeights = []float64{0.4, 0.3, 0.2, 0.2} }},
		{"negative weight", func(p *Params) { p.CarTypeWeights = []float64{0.5, 0.5, 0.1, -0.1} }},
		{"zero premium sd", func(p *Params) { p.PremiumStdDev = 0 }},
		{"inverted premium bounds", func(p *Params) { p.PremiumMin = 4000; p.PremiumMax = 400 }},
		{"zero base frequency", func(p *Params) { p.BaseFrequency = 0 }},
		{"zero severity median", func(p *Params) { p.SeverityMedian = 0 }},
		{"zero severity sigma", func(p *Params) { p.SeveritySigma = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestPoliciesWithinBounds(t *testing.T) {
	t.Parallel()

	p := Default()
	policies := New(p).Policies()

	assert.Len(t, policies, p.NumPolicies)
	for _, pol := range policies {
		assert.GreaterOrEqual(t, pol.CustomerAge, p.AgeMin)
		assert.Less(t, pol.CustomerAge, p.AgeMax)
		assert.GreaterOrEqual(t, pol.Premium, p.PremiumMin)
		assert.LessOrEqual(t, pol.Premium, p.PremiumMax)
		assert.Contains(t, book.CarTypes, pol.CarType)
	}
}

func TestPoliciesDeterministic(t *testing.T) {
	t.Parallel()

	p := Default()
	a := New(p).Policies()
	b := New(p).Policies()
	assert.Equal(t, a, b)
}

func TestClaimsDeterministic(t *testing.T) {
	t.Parallel()

	p := Default()

	ga := New(p)
	policiesA := ga.Policies()
	for i := range policiesA {
		policiesA[i].PolicyID = int64(i + 1)
	}
	claimsA := ga.Claims(policiesA)

	gb := New(p)
	policiesB := gb.Policies()
	for i := range policiesB {
		policiesB[i].PolicyID = int64(i + 1)
	}
	claimsB := gb.Claims(policiesB)

	assert.Equal(t, policiesA, policiesB)
	assert.Equal(t, claimsA, claimsB)
}

func TestClaimsReferenceTheirPolicy(t *testing.T) {
	t.Parallel()

	p := Default()
	g := New(p)
	policies := g.Policies()
	for i := range policies {
		policies[i].PolicyID = int64(i + 1)
	}

	known := map[int64]bool{}
	for _, pol := range policies {
		known[pol.PolicyID] = true
	}

	for _, c := range g.Claims(policies) {
		assert.True(t, known[c.PolicyID], "claim references unknown policy %d", c.PolicyID)
		assert.Greater(t, c.Amount, 0.0)
		assert.Nil(t, c.Date)
	}
}

func TestZeroClaimsIsTheCommonCase(t *testing.T) {
	t.Parallel()

	p := Default()
	g := New(p)
	policies := g.Policies()
	for i := range policies {
		policies[i].PolicyID = int64(i + 1)
	}
	claims := g.Claims(policies)

	withClaim := map[int64]bool{}
	for _, c := range claims {
		withClaim[c.PolicyID] = true
	}

	// Base frequency 0.12 means well under half the book ever claims.
	assert.Less(t, len(withClaim), len(policies)/2)
}

func TestFrequencyFactorsCompose(t *testing.T) {
	t.Parallel()

	p := Default()
	g := New(p)

	assert.InDelta(t, 0.12, g.Frequency(40, book.Sedan), 1e-12)
	assert.InDelta(t, 0.12, g.Frequency(40, book.SUV), 1e-12)
	assert.InDelta(t, 0.12*1.4, g.Frequency(40, book.Truck), 1e-12)
	assert.InDelta(t, 0.12*2.0, g.Frequency(40, book.Sports), 1e-12)

	// Young-driver loading multiplies on top of the car-type loading.
	assert.InDelta(t, 0.12*1.6, g.Frequency(24, book.Sedan), 1e-12)
	assert.InDelta(t, 0.12*2.0*1.6, g.Frequency(18, book.Sports), 1e-12)
	assert.InDelta(t, 0.12, g.Frequency(25, book.Sedan), 1e-12)
}

func TestCarTypeMixRoughlyMatchesWeights(t *testing.T) {
	t.Parallel()

	p := Default()
	p.NumPolicies = 4000
	policies := New(p).Policies()

	counts := map[book.CarType]int{}
	for _, pol := range policies {
		counts[pol.CarType]++
	}

	n := float64(p.NumPolicies)
	for i, car := range book.CarTypes {
		share := float64(counts[car]) / n
		assert.InDelta(t, p.CarTypeWeights[i], share, 0.05, "share for %s", car)
	}
}

func TestSeverityMedianNearConfigured(t *testing.T) {
	t.Parallel()

	p := Default()
	p.NumPolicies = 2000
	p.BaseFrequency = 2.0 // crank frequency so we get plenty of draws

	g := New(p)
	policies := g.Policies()
	for i := range policies {
		policies[i].PolicyID = int64(i + 1)
	}
	claims := g.Claims(policies)
	assert.Greater(t, len(claims), 1000)

	amounts := make([]float64, len(claims))
	for i, c := range claims {
		amounts[i] = c.Amount
	}
	med := median(amounts)
	assert.InDelta(t, p.SeverityMedian, med, p.SeverityMedian*0.1)
}

func median(xs []float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	if len(s)%2 == 1 {
		return s[len(s)/2]
	}
	return (s[len(s)/2-1] + s[len(s)/2]) / 2
}
