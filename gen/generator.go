// gen/generator.go
package gen

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rustyeddy/portfolio/book"
)

// Generator draws a synthetic book of business from Params. All draws
// consume one seeded source in a fixed order, so two generators built from
// equal Params produce identical record sets.
type Generator struct {
	params Params

	src      rand.Source
	rng      *rand.Rand
	carDist  distuv.Categorical
	premium  distuv.Normal
	severity distuv.LogNormal
}

// New builds a generator with its random source seeded from p.Seed.
func New(p Params) *Generator {
	src := rand.NewSource(p.Seed)
	sigma := p.SeveritySigma

	return &Generator{
		params:  p,
		src:     src,
		rng:     rand.New(src),
		carDist: distuv.NewCategorical(p.CarTypeWeights, src),
		premium: distuv.Normal{Mu: p.PremiumMean, Sigma: p.PremiumStdDev, Src: src},
		severity: distuv.LogNormal{
			Mu:    math.Log(p.SeverityMedian) - 0.5*sigma*sigma,
			Sigma: sigma,
			Src:   src,
		},
	}
}

// Policies draws NumPolicies policy records. PolicyID is left zero; the
// store assigns surrogate ids on insert.
func (g *Generator) Policies() []book.Policy {
	out := make([]book.Policy, 0, g.params.NumPolicies)
	for i := 0; i < g.params.NumPolicies; i++ {
		age := g.params.AgeMin + g.rng.Intn(g.params.AgeMax-g.params.AgeMin)
		car := book.CarTypes[int(g.carDist.Rand())]
		prem := clamp(g.premium.Rand(), g.params.PremiumMin, g.params.PremiumMax)

		out = append(out, book.Policy{
			CustomerAge: age,
			CarType:     car,
			Premium:     round2(prem),
		})
	}
	return out
}

// Claims draws the claim set for an already-persisted policy slice. Each
// policy's claim count is Poisson with the policy's own frequency; most
// policies draw zero claims at the default base frequency.
func (g *Generator) Claims(policies []book.Policy) []book.Claim {
	var out []book.Claim
	for _, p := range policies {
		count := distuv.Poisson{Lambda: g.Frequency(p.CustomerAge, p.CarType), Src: g.src}
		n := int(count.Rand())
		for k := 0; k < n; k++ {
			out = append(out, book.Claim{
				PolicyID: p.PolicyID,
				Amount:   round2(g.severity.Rand()),
			})
		}
	}
	return out
}

// Frequency is the expected annual claim count for one policy.
func (g *Generator) Frequency(age int, car book.CarType) float64 {
	lam := g.params.BaseFrequency
	switch car {
	case book.Sports:
		lam *= g.params.SportsFactor
	case book.Truck:
		lam *= g.params.TruckFactor
	}
	if age < g.params.YoungDriverAge {
		lam *= g.params.YoungDriverFactor
	}
	return lam
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds money to cents without float repr drift.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
