package journal

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifesim/lifesim/internal/calculation"
	"github.com/lifesim/lifesim/internal/domain"
)

func openTestJournal(t *testing.T) *SQLiteJournal {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func cf(premiums, claims float64) domain.CashFlow {
	flow := domain.CashFlow{
		Premiums: decimal.NewFromFloat(premiums),
		Claims:   decimal.NewFromFloat(claims),
	}
	return flow.WithNet(1.0)
}

func TestRecordAndListRuns(t *testing.T) {
	j := openTestJournal(t)

	first := RunRecord{
		RunID:      "01TESTRUNFIRST000000000000",
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Config:     "base.yaml",
		Product:    "term_life",
		Months:     12,
		GroupCount: 3,
		Total:      cf(1200, 400),
	}
	second := first
	second.RunID = "01TESTRUNSECOND00000000000"
	second.CreatedAt = first.CreatedAt.Add(time.Hour)
	second.Config = "stressed.yaml"

	require.NoError(t, j.RecordRun(first, []domain.CashFlow{cf(100, 30), cf(100, 40)}))
	require.NoError(t, j.RecordRun(second, []domain.CashFlow{cf(90, 50)}))

	runs, err := j.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "stressed.yaml", runs[0].Config, "Listing is newest first")
	assert.Equal(t, "base.yaml", runs[1].Config)
	assert.Equal(t, "term_life", runs[1].Product)
	assert.Equal(t, 12, runs[1].Months)
	assert.Equal(t, 3, runs[1].GroupCount)
	assert.True(t, runs[1].Total.Premiums.Equal(decimal.NewFromInt(1200)),
		"Totals survive the float round trip: got %s", runs[1].Total.Premiums)
	assert.True(t, runs[1].Total.Net.Equal(decimal.NewFromInt(800)))
}

func TestGetCashflowsInMonthOrder(t *testing.T) {
	j := openTestJournal(t)

	run := RunRecord{
		RunID:     "01TESTRUNCASHFLOWS00000000",
		CreatedAt: time.Now().UTC(),
		Config:    "base.yaml",
		Product:   "account_based",
		Months:    3,
		Total:     cf(300, 60),
	}
	periods := []domain.CashFlow{cf(100, 10), cf(100, 20), cf(100, 30)}
	require.NoError(t, j.RecordRun(run, periods))

	got, err := j.GetCashflows(run.RunID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, period := range periods {
		assert.True(t, got[i].Claims.Equal(period.Claims),
			"Month %d claims: want %s got %s", i, period.Claims, got[i].Claims)
	}
}

func TestGetCashflowsUnknownRun(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.GetCashflows("01NOSUCHRUN000000000000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows), "Unknown runs surface as sql.ErrNoRows")
}

func TestNewRunRecordMintsDistinctIDs(t *testing.T) {
	result := &calculation.Result{ProductKind: "term_life", Months: 6, Total: cf(10, 2)}

	a := NewRunRecord("base.yaml", 2, result)
	b := NewRunRecord("base.yaml", 2, result)

	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID, "Each record gets a fresh ULID")
	assert.Equal(t, "term_life", a.Product)
	assert.Equal(t, 6, a.Months)
	assert.Equal(t, 2, a.GroupCount)
}
