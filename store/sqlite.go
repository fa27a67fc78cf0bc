// store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/portfolio/book"
)

// Store is the sqlite book of business: the Policies and Claims relations
// plus a runs audit table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// claimDateFormat is the layout used for the nullable claim_date column.
const claimDateFormat = "2006-01-02"

// InsertPolicies writes the policy batch in one transaction and fills in
// the autoincrement PolicyID of each record, in slice order.
func (s *Store) InsertPolicies(ctx context.Context, policies []book.Policy) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO Policies (customer_age, car_type, premium)
		VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i := range policies {
		p := &policies[i]
		res, err := stmt.ExecContext(ctx, p.CustomerAge, string(p.CarType), p.Premium)
		if err != nil {
			tx.Rollback()
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			tx.Rollback()
			return err
		}
		p.PolicyID = id
	}

	return tx.Commit()
}

// InsertClaims writes the claim batch in one transaction and fills in the
// autoincrement ClaimID of each record. A nil Date inserts NULL.
func (s *Store) InsertClaims(ctx context.Context, claims []book.Claim) error {
	if len(claims) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO Claims (policy_id, claim_amount, claim_date)
		VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i := range claims {
		c := &claims[i]

		var date any
		if c.Date != nil {
			date = c.Date.Format(claimDateFormat)
		}

		res, err := stmt.ExecContext(ctx, c.PolicyID, c.Amount, date)
		if err != nil {
			tx.Rollback()
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			tx.Rollback()
			return err
		}
		c.ClaimID = id
	}

	return tx.Commit()
}

// ListPolicies returns every policy ordered by id.
func (s *Store) ListPolicies() ([]book.Policy, error) {
	rows, err := s.db.Query(`
		SELECT policy_id, customer_age, car_type, premium
		FROM Policies
		ORDER BY policy_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []book.Policy
	for rows.Next() {
		var p book.Policy
		var car string
		if err := rows.Scan(&p.PolicyID, &p.CustomerAge, &car, &p.Premium); err != nil {
			return nil, err
		}
		p.CarType = book.CarType(car)
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListClaims returns every claim ordered by id.
func (s *Store) ListClaims() ([]book.Claim, error) {
	rows, err := s.db.Query(`
		SELECT claim_id, policy_id, claim_amount, claim_date
		FROM Claims
		ORDER BY claim_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []book.Claim
	for rows.Next() {
		var c book.Claim
		var date sql.NullString
		if err := rows.Scan(&c.ClaimID, &c.PolicyID, &c.Amount, &date); err != nil {
			return nil, err
		}
		if date.Valid {
			t, err := time.Parse(claimDateFormat, date.String)
			if err != nil {
				return nil, err
			}
			c.Date = &t
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// OrphanClaimCount counts claims whose policy_id has no matching policy.
// A healthy book always reports zero.
func (s *Store) OrphanClaimCount() (int, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM Claims c
		LEFT JOIN Policies p ON p.policy_id = c.policy_id
		WHERE p.policy_id IS NULL`).Scan(&n)
	return n, err
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
