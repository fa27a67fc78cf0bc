// gen/params.go
package gen

import "fmt"

// Params holds every constant the generator samples from. A fixed Params
// plus a fixed Seed reproduces the same book of business record for record.
type Params struct {
	NumPolicies int    `yaml:"num_policies" json:"num_policies"`
	Seed        uint64 `yaml:"seed" json:"seed"`

	// Customer age is uniform over [AgeMin, AgeMax).
	AgeMin int `yaml:"age_min" json:"age_min"`
	AgeMax int `yaml:"age_max" json:"age_max"`

	// CarTypeWeights aligns with book.CarTypes and must sum to 1.
	CarTypeWeights []float64 `yaml:"car_type_weights" json:"car_type_weights"`

	// Premium is Normal(mean, sd) clamped to [min, max], 2 decimals.
	PremiumMean   float64 `yaml:"premium_mean" json:"premium_mean"`
	PremiumStdDev float64 `yaml:"premium_std_dev" json:"premium_std_dev"`
	PremiumMin    float64 `yaml:"premium_min" json:"premium_min"`
	PremiumMax    float64 `yaml:"premium_max" json:"premium_max"`

	// Claim counts are Poisson with a per-policy rate: BaseFrequency times
	// the car-type factor times the young-driver factor. The factors
	// compose multiplicatively.
	BaseFrequency     float64 `yaml:"base_frequency" json:"base_frequency"`
	SportsFactor      float64 `yaml:"sports_factor" json:"sports_factor"`
	TruckFactor       float64 `yaml:"truck_factor" json:"truck_factor"`
	YoungDriverAge    int     `yaml:"young_driver_age" json:"young_driver_age"`
	YoungDriverFactor float64 `yaml:"young_driver_factor" json:"young_driver_factor"`

	// Severity is LogNormal tuned so its median equals SeverityMedian
	// regardless of SeveritySigma (mu = ln(median) - sigma^2/2).
	SeverityMedian float64 `yaml:"severity_median" json:"severity_median"`
	SeveritySigma  float64 `yaml:"severity_sigma" json:"severity_sigma"`
}

// Default returns the standard 1000-policy book parameters.
func Default() Params {
	return Params{
		NumPolicies:       1000,
		Seed:              42,
		AgeMin:            18,
		AgeMax:            80,
		CarTypeWeights:    []float64{0.4, 0.3, 0.2, 0.1},
		PremiumMean:       1200,
		PremiumStdDev:     250,
		PremiumMin:        400,
		PremiumMax:        4000,
		BaseFrequency:     0.12,
		SportsFactor:      2.0,
		TruckFactor:       1.4,
		YoungDriverAge:    25,
		YoungDriverFactor: 1.6,
		SeverityMedian:    7000,
		SeveritySigma:     0.9,
	}
}

// Validate checks that the parameters describe a samplable model.
func (p Params) Validate() error {
	if p.NumPolicies <= 0 {
		return fmt.Errorf("num_policies must be positive")
	}
	if p.AgeMin < 0 || p.AgeMax <= p.AgeMin {
		return fmt.Errorf("age range [%d,%d) is invalid", p.AgeMin, p.AgeMax)
	}
	if len(p.CarTypeWeights) != 4 {
		return fmt.Errorf("car_type_weights must have 4 entries, got %d", len(p.CarTypeWeights))
	}
	sum := 0.0
	for i, w := range p.CarTypeWeights {
		if w < 0 {
			return fmt.Errorf("car_type_weights[%d] must be non-negative", i)
		}
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("car_type_weights must sum to 1, got %v", sum)
	}
	if p.PremiumStdDev <= 0 {
		return fmt.Errorf("premium_std_dev must be positive")
	}
	if p.PremiumMin <= 0 || p.PremiumMax <= p.PremiumMin {
		return fmt.Errorf("premium bounds [%v,%v] are invalid", p.PremiumMin, p.PremiumMax)
	}
	if p.BaseFrequency <= 0 {
		return fmt.Errorf("base_frequency must be positive")
	}
	if p.SportsFactor <= 0 || p.TruckFactor <= 0 || p.YoungDriverFactor <= 0 {
		return fmt.Errorf("frequency factors must be positive")
	}
	if p.SeverityMedian <= 0 {
		return fmt.Errorf("severity_median must be positive")
	}
	if p.SeveritySigma <= 0 {
		return fmt.Errorf("severity_sigma must be positive")
	}
	return nil
}
