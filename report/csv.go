// report/csv.go
package report

import (
	"database/sql"
	"encoding/csv"
	"os"
	"strconv"
)

// Artifact file names, matching the dashboard's published CSV set.
const (
	LossByCarFile    = "loss_by_car.csv"
	AgeGroupFile     = "age_group_stats.csv"
	TopPoliciesFile  = "top_policies.csv"
	PortfolioMixFile = "portfolio_mix.csv"
	PerPolicyFile    = "per_policy.csv"
	SummaryFile      = "portfolio_summary_metrics.csv"
)

// WriteCarTypeLossCSV exports the loss-by-car-type view.
func WriteCarTypeLossCSV(path string, rows []CarTypeLoss) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.CarType,
			strconv.Itoa(r.NumPolicies),
			f(r.TotalClaims),
			f(r.TotalPremiums),
			ratio(r.LossRatio),
			strconv.Itoa(r.TotalClaimsCount),
		})
	}
	header := []string{"car_type", "num_policies", "total_claims", "total_premiums", "loss_ratio", "total_claims_count"}
	return writeCSV(path, header, records)
}

// WriteAgeGroupCSV exports the age-group view in canonical bucket order.
func WriteAgeGroupCSV(path string, rows []AgeGroupStats) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.AgeGroup,
			strconv.Itoa(r.NumPolicies),
			f(r.AvgClaimsPerPolicy),
			f(r.TotalClaimsAmount),
			f(r.TotalPremiums),
			ratio(r.LossRatio),
		})
	}
	header := []string{"age_group", "num_policies", "avg_claims_per_policy", "total_claims_amount", "total_premiums", "loss_ratio"}
	return writeCSV(path, header, records)
}

// WritePolicyRollupCSV exports per-policy rollups; the top-policies and
// per-policy artifacts share this shape.
func WritePolicyRollupCSV(path string, rows []PolicyRollup) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.FormatInt(r.PolicyID, 10),
			strconv.Itoa(r.CustomerAge),
			r.CarType,
			f(r.Premium),
			f(r.TotalClaimsAmount),
			strconv.Itoa(r.ClaimsCount),
		})
	}
	header := []string{"policy_id", "customer_age", "car_type", "premium", "total_claims_amount", "claims_count"}
	return writeCSV(path, header, records)
}

// WriteMixCSV exports policy counts by car type.
func WriteMixCSV(path string, rows []MixRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.CarType, strconv.Itoa(r.NumPolicies)})
	}
	return writeCSV(path, []string{"car_type", "num_policies"}, records)
}

// WriteSummaryCSV exports the single-row scalar summary.
func WriteSummaryCSV(path string, s Summary) error {
	header := []string{"total_policies", "total_claims_records", "total_claims_amount", "average_loss_ratio_overall"}
	record := []string{
		strconv.Itoa(s.TotalPolicies),
		strconv.Itoa(s.TotalClaimsRecords),
		f(s.TotalClaimsAmount),
		ratio(s.AverageLossRatioOverall),
	}
	return writeCSV(path, header, [][]string{record})
}

func writeCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		file.Close()
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			file.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ratio renders an undefined loss ratio as an empty cell.
func ratio(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return f(v.Float64)
}
