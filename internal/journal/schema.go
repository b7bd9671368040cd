package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	config TEXT NOT NULL,
	product TEXT NOT NULL,
	months INTEGER NOT NULL,
	group_count INTEGER NOT NULL,
	premiums REAL NOT NULL,
	investments REAL NOT NULL,
	claims REAL NOT NULL,
	expenses REAL NOT NULL,
	commissions REAL NOT NULL,
	account_change REAL NOT NULL,
	net REAL NOT NULL,
	discounted REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS cashflows (
	run_id TEXT NOT NULL,
	month INTEGER NOT NULL,
	premiums REAL NOT NULL,
	investments REAL NOT NULL,
	claims REAL NOT NULL,
	expenses REAL NOT NULL,
	commissions REAL NOT NULL,
	account_change REAL NOT NULL,
	net REAL NOT NULL,
	discounted REAL NOT NULL,
	PRIMARY KEY (run_id, month)
);

CREATE INDEX IF NOT EXISTS idx_cashflows_run ON cashflows(run_id);
`
