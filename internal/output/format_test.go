package output

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifesim/lifesim/internal/calculation"
	"github.com/lifesim/lifesim/internal/domain"
)

func sampleResult() *calculation.Result {
	period := func(premiums, claims int64) domain.CashFlow {
		flow := domain.CashFlow{
			Premiums: decimal.NewFromInt(premiums),
			Claims:   decimal.NewFromInt(claims),
		}
		return flow.WithNet(1.0)
	}
	periods := []domain.CashFlow{period(1000, 250), period(900, 300)}
	return &calculation.Result{
		ProductKind: "term_life",
		Months:      2,
		Periods:     periods,
		Total:       domain.SumCashFlows(periods),
	}
}

func TestNewFormatterSelection(t *testing.T) {
	table, err := NewFormatter("")
	require.NoError(t, err)
	assert.Equal(t, "table", table.Name(), "Empty format defaults to the console table")

	csvf, err := NewFormatter("csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", csvf.Name())

	_, err = NewFormatter("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestConsoleFormat(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "Projection: term_life, 2 months")
	assert.Contains(t, text, "Premiums")
	assert.Contains(t, text, "1000.00")
	assert.Contains(t, text, "TOTAL")
	assert.Contains(t, text, "1900.00", "Totals row sums the periods")

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(t, "TOTAL", strings.Fields(lines[len(lines)-1])[0],
		"Totals come last")
}

func TestCSVFormat(t *testing.T) {
	out, err := CSVFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "Header, two periods, and a totals row")

	assert.Equal(t, []string{"Month", "Premiums", "Investments", "Claims", "Expenses",
		"Commissions", "AccountChange", "Net", "Discounted"}, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "1000.00", rows[1][1])
	assert.Equal(t, "750.00", rows[1][7], "Net is premiums minus claims here")
	assert.Equal(t, "TOTAL", rows[3][0])
	assert.Equal(t, "550.00", rows[3][3], "Total claims across both months")
}
