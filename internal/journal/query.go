package journal

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifesim/lifesim/internal/domain"
)

// ListRuns returns every journaled run, newest first.
func (j *SQLiteJournal) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, created_at, config, product, months, group_count,
		       premiums, investments, claims, expenses, commissions, account_change, net, discounted
		FROM runs
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var premiums, investments, claims, expenses, commissions, accountChange, net, discounted float64
		err := rows.Scan(&r.RunID, &r.CreatedAt, &r.Config, &r.Product, &r.Months, &r.GroupCount,
			&premiums, &investments, &claims, &expenses, &commissions, &accountChange, &net, &discounted)
		if err != nil {
			return nil, err
		}
		r.Total = cashflowFromFloats(premiums, investments, claims, expenses, commissions, accountChange, net, discounted)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetCashflows returns the per-period cashflows of a run in month order.
func (j *SQLiteJournal) GetCashflows(runID string) ([]domain.CashFlow, error) {
	rows, err := j.db.Query(`
		SELECT premiums, investments, claims, expenses, commissions, account_change, net, discounted
		FROM cashflows
		WHERE run_id = ?
		ORDER BY month`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []domain.CashFlow
	for rows.Next() {
		var premiums, investments, claims, expenses, commissions, accountChange, net, discounted float64
		err := rows.Scan(&premiums, &investments, &claims, &expenses, &commissions, &accountChange, &net, &discounted)
		if err != nil {
			return nil, err
		}
		periods = append(periods, cashflowFromFloats(premiums, investments, claims, expenses, commissions, accountChange, net, discounted))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return nil, fmt.Errorf("no cashflows for run %s: %w", runID, sql.ErrNoRows)
	}
	return periods, nil
}

func cashflowFromFloats(premiums, investments, claims, expenses, commissions, accountChange, net, discounted float64) domain.CashFlow {
	return domain.CashFlow{
		Premiums:      decimal.NewFromFloat(premiums),
		Investments:   decimal.NewFromFloat(investments),
		Claims:        decimal.NewFromFloat(claims),
		Expenses:      decimal.NewFromFloat(expenses),
		Commissions:   decimal.NewFromFloat(commissions),
		AccountChange: decimal.NewFromFloat(accountChange),
		Net:           decimal.NewFromFloat(net),
		Discounted:    decimal.NewFromFloat(discounted),
	}
}
