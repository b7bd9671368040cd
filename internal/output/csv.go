package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lifesim/lifesim/internal/calculation"
	"github.com/lifesim/lifesim/internal/domain"
)

// CSVFormatter writes one row per period plus a totals row.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *calculation.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Month", "Premiums", "Investments", "Claims", "Expenses", "Commissions", "AccountChange", "Net", "Discounted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, cf := range result.Periods {
		if err := w.Write(cashflowRow(strconv.Itoa(i), cf)); err != nil {
			return nil, err
		}
	}
	if err := w.Write(cashflowRow("TOTAL", result.Total)); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cashflowRow(label string, cf domain.CashFlow) []string {
	return []string{
		label,
		cf.Premiums.StringFixed(2),
		cf.Investments.StringFixed(2),
		cf.Claims.StringFixed(2),
		cf.Expenses.StringFixed(2),
		cf.Commissions.StringFixed(2),
		cf.AccountChange.StringFixed(2),
		cf.Net.StringFixed(2),
		cf.Discounted.StringFixed(2),
	}
}
