package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lifesim/lifesim/internal/domain"
)

// SQLiteJournal is the SQLite-backed Journal.
type SQLiteJournal struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the journal database at path.
func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply journal schema: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

// RecordRun stores a run summary and its per-period cashflows in one
// transaction.
func (j *SQLiteJournal) RecordRun(run RunRecord, periods []domain.CashFlow) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs
		(run_id, created_at, config, product, months, group_count,
		 premiums, investments, claims, expenses, commissions, account_change, net, discounted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.CreatedAt, run.Config, run.Product, run.Months, run.GroupCount,
		run.Total.Premiums.InexactFloat64(),
		run.Total.Investments.InexactFloat64(),
		run.Total.Claims.InexactFloat64(),
		run.Total.Expenses.InexactFloat64(),
		run.Total.Commissions.InexactFloat64(),
		run.Total.AccountChange.InexactFloat64(),
		run.Total.Net.InexactFloat64(),
		run.Total.Discounted.InexactFloat64(),
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO cashflows
		(run_id, month, premiums, investments, claims, expenses, commissions, account_change, net, discounted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for month, cf := range periods {
		_, err = stmt.Exec(run.RunID, month,
			cf.Premiums.InexactFloat64(),
			cf.Investments.InexactFloat64(),
			cf.Claims.InexactFloat64(),
			cf.Expenses.InexactFloat64(),
			cf.Commissions.InexactFloat64(),
			cf.AccountChange.InexactFloat64(),
			cf.Net.InexactFloat64(),
			cf.Discounted.InexactFloat64(),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
