// report/report.go
package report

import "database/sql"

// CarTypeLoss is one row of the loss-by-car-type view, sorted descending
// by loss ratio. LossRatio is invalid when the group's premium sum is zero.
type CarTypeLoss struct {
	CarType          string
	NumPolicies      int
	TotalClaims      float64
	TotalPremiums    float64
	LossRatio        sql.NullFloat64
	TotalClaimsCount int
}

// AgeGroupStats is one row per canonical age bucket, in bucket order.
type AgeGroupStats struct {
	AgeGroup           string
	NumPolicies        int
	AvgClaimsPerPolicy float64
	TotalClaimsAmount  float64
	TotalPremiums      float64
	LossRatio          sql.NullFloat64
}

// PolicyRollup is the outer aggregation of one policy with its claims.
// A policy with no claims rolls up with zero count and zero amount.
// The per-policy and top-policies views both carry these rows.
type PolicyRollup struct {
	PolicyID          int64
	CustomerAge       int
	CarType           string
	Premium           float64
	TotalClaimsAmount float64
	ClaimsCount       int
}

// MixRow is a policy count for one car type.
type MixRow struct {
	CarType     string
	NumPolicies int
}

// Summary is the scalar roll-up of the whole book.
type Summary struct {
	TotalPolicies           int
	TotalClaimsRecords      int
	TotalClaimsAmount       float64
	TotalPremiums           float64
	AverageLossRatioOverall sql.NullFloat64
}
