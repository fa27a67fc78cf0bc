// store/schema.go
package store

const Schema = `
CREATE TABLE IF NOT EXISTS Policies (
	policy_id INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_age INTEGER NOT NULL,
	car_type TEXT NOT NULL,
	premium REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS Claims (
	claim_id INTEGER PRIMARY KEY AUTOINCREMENT,
	policy_id INTEGER NOT NULL,
	claim_amount REAL NOT NULL,
	claim_date TEXT,
	FOREIGN KEY(policy_id) REFERENCES Policies(policy_id)
);

CREATE INDEX IF NOT EXISTS idx_claims_policy ON Claims(policy_id);

CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	seed INTEGER NOT NULL,
	num_policies INTEGER NOT NULL,
	num_claims INTEGER NOT NULL,
	total_premiums REAL NOT NULL,
	total_claims REAL NOT NULL,
	loss_ratio REAL,
	output_dir TEXT NOT NULL
);
`
