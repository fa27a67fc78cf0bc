// store/query.go
package store

import (
	"database/sql"
	"sort"

	"github.com/rustyeddy/portfolio/book"
	"github.com/rustyeddy/portfolio/report"
)

// Every report query left-joins Claims so a policy with no claims still
// contributes a row with zero claim metrics. Loss ratios guard the
// zero-premium denominator with CASE and scan into NullFloat64.

// LossByCarType groups the book by car type, sorted by loss ratio
// descending.
func (s *Store) LossByCarType() ([]report.CarTypeLoss, error) {
	rows, err := s.db.Query(`
		SELECT p.car_type AS car_type,
		       COUNT(DISTINCT p.policy_id) AS num_policies,
		       COALESCE(SUM(c.claim_amount), 0.0) AS total_claims,
		       SUM(p.premium) AS total_premiums,
		       CASE WHEN SUM(p.premium) = 0 THEN NULL
		            ELSE COALESCE(SUM(c.claim_amount), 0.0) * 1.0 / SUM(p.premium)
		       END AS loss_ratio,
		       COUNT(c.claim_id) AS total_claims_count
		FROM Policies p
		LEFT JOIN Claims c ON p.policy_id = c.policy_id
		GROUP BY p.car_type
		ORDER BY loss_ratio DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []report.CarTypeLoss
	for rows.Next() {
		var r report.CarTypeLoss
		if err := rows.Scan(&r.CarType, &r.NumPolicies, &r.TotalClaims, &r.TotalPremiums, &r.LossRatio, &r.TotalClaimsCount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AgeGroupStats rolls each policy up with its claims first, then buckets
// by the six fixed age bands. Rows come back in canonical bucket order.
func (s *Store) AgeGroupStats() ([]report.AgeGroupStats, error) {
	rows, err := s.db.Query(`
		WITH policy_claims AS (
		  SELECT p.policy_id,
		         p.customer_age,
		         p.premium,
		         COALESCE(COUNT(c.claim_id), 0) AS claims_count,
		         COALESCE(SUM(c.claim_amount), 0.0) AS claims_amount
		  FROM Policies p
		  LEFT JOIN Claims c ON p.policy_id = c.policy_id
		  GROUP BY p.policy_id, p.customer_age, p.premium
		)
		SELECT
		  CASE
		    WHEN customer_age BETWEEN 18 AND 29 THEN '18-29'
		    WHEN customer_age BETWEEN 30 AND 39 THEN '30-39'
		    WHEN customer_age BETWEEN 40 AND 49 THEN '40-49'
		    WHEN customer_age BETWEEN 50 AND 59 THEN '50-59'
		    WHEN customer_age BETWEEN 60 AND 69 THEN '60-69'
		    ELSE '70+'
		  END AS age_group,
		  COUNT(*) AS num_policies,
		  AVG(claims_count) AS avg_claims_per_policy,
		  SUM(claims_amount) AS total_claims_amount,
		  SUM(premium) AS total_premiums,
		  CASE WHEN SUM(premium) = 0 THEN NULL
		       ELSE SUM(claims_amount) * 1.0 / SUM(premium)
		  END AS loss_ratio
		FROM policy_claims
		GROUP BY age_group`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []report.AgeGroupStats
	for rows.Next() {
		var r report.AgeGroupStats
		if err := rows.Scan(&r.AgeGroup, &r.NumPolicies, &r.AvgClaimsPerPolicy, &r.TotalClaimsAmount, &r.TotalPremiums, &r.LossRatio); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Canonical bucket sequence, never dictionary order of the labels.
	sort.Slice(out, func(i, j int) bool {
		return book.AgeGroupIndex(out[i].AgeGroup) < book.AgeGroupIndex(out[j].AgeGroup)
	})
	return out, nil
}

// TopPolicies returns the limit policies with the greatest total claim
// amount, descending. Ties fall back to the store's natural ordering.
func (s *Store) TopPolicies(limit int) ([]report.PolicyRollup, error) {
	return s.policyRollups(`
		SELECT p.policy_id, p.customer_age, p.car_type, p.premium,
		       COALESCE(SUM(c.claim_amount), 0.0) AS total_claims_amount,
		       COUNT(c.claim_id) AS claims_count
		FROM Policies p
		LEFT JOIN Claims c ON p.policy_id = c.policy_id
		GROUP BY p.policy_id
		ORDER BY total_claims_amount DESC
		LIMIT ?`, limit)
}

// PerPolicy returns the full per-policy rollup, one row per policy.
func (s *Store) PerPolicy() ([]report.PolicyRollup, error) {
	return s.policyRollups(`
		SELECT p.policy_id, p.customer_age, p.car_type, p.premium,
		       COALESCE(SUM(c.claim_amount), 0.0) AS total_claims_amount,
		       COUNT(c.claim_id) AS claims_count
		FROM Policies p
		LEFT JOIN Claims c ON p.policy_id = c.policy_id
		GROUP BY p.policy_id
		ORDER BY p.policy_id ASC`)
}

func (s *Store) policyRollups(query string, args ...any) ([]report.PolicyRollup, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []report.PolicyRollup
	for rows.Next() {
		var r report.PolicyRollup
		if err := rows.Scan(&r.PolicyID, &r.CustomerAge, &r.CarType, &r.Premium, &r.TotalClaimsAmount, &r.ClaimsCount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PortfolioMix counts policies by car type, no claims join.
func (s *Store) PortfolioMix() ([]report.MixRow, error) {
	rows, err := s.db.Query(`
		SELECT car_type, COUNT(*) AS num_policies
		FROM Policies
		GROUP BY car_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []report.MixRow
	for rows.Next() {
		var r report.MixRow
		if err := rows.Scan(&r.CarType, &r.NumPolicies); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary computes the whole-book scalar metrics. The overall loss ratio
// is undefined when the book holds no premium.
func (s *Store) Summary() (report.Summary, error) {
	var sum report.Summary
	err := s.db.QueryRow(`
		SELECT
		  (SELECT COUNT(*) FROM Policies),
		  (SELECT COUNT(*) FROM Claims),
		  (SELECT COALESCE(SUM(claim_amount), 0.0) FROM Claims),
		  (SELECT COALESCE(SUM(premium), 0.0) FROM Policies)`).
		Scan(&sum.TotalPolicies, &sum.TotalClaimsRecords, &sum.TotalClaimsAmount, &sum.TotalPremiums)
	if err != nil {
		return report.Summary{}, err
	}

	if sum.TotalPremiums != 0 {
		sum.AverageLossRatioOverall = sql.NullFloat64{
			Float64: sum.TotalClaimsAmount / sum.TotalPremiums,
			Valid:   true,
		}
	}
	return sum, nil
}
