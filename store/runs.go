// store/runs.go
package store

import (
	"context"
	"database/sql"
	"time"
)

// RunRecord is one row of the runs audit table: the inputs and headline
// totals of a single pipeline invocation.
type RunRecord struct {
	RunID         string
	Created       time.Time
	Seed          uint64
	NumPolicies   int
	NumClaims     int
	TotalPremiums float64
	TotalClaims   float64
	LossRatio     sql.NullFloat64
	OutputDir     string
}

// RecordRun persists a completed run.
func (s *Store) RecordRun(ctx context.Context, r RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(run_id, created, seed, num_policies, num_claims, total_premiums, total_claims, loss_ratio, output_dir)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, int64(r.Seed), r.NumPolicies, r.NumClaims,
		r.TotalPremiums, r.TotalClaims, r.LossRatio, r.OutputDir,
	)
	return err
}

// ListRuns returns recorded runs, most recent first. ULID run ids also
// sort by creation time, so run_id ordering matches created ordering.
func (s *Store) ListRuns() ([]RunRecord, error) {
	rows, err := s.db.Query(`
		SELECT run_id, created, seed, num_policies, num_claims, total_premiums, total_claims, loss_ratio, output_dir
		FROM runs
		ORDER BY run_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var seed int64
		if err := rows.Scan(&r.RunID, &r.Created, &seed, &r.NumPolicies, &r.NumClaims, &r.TotalPremiums, &r.TotalClaims, &r.LossRatio, &r.OutputDir); err != nil {
			return nil, err
		}
		r.Seed = uint64(seed)
		out = append(out, r)
	}
	return out, rows.Err()
}
