// Package journal persists completed projection results to a local SQLite
// database so runs can be listed and compared later. Only results are
// stored; in-flight simulation state is never persisted.
package journal

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/lifesim/lifesim/internal/calculation"
	"github.com/lifesim/lifesim/internal/domain"
)

// RunRecord summarizes one completed projection.
type RunRecord struct {
	RunID      string
	CreatedAt  time.Time
	Config     string
	Product    string
	Months     int
	GroupCount int
	Total      domain.CashFlow
}

// NewRunRecord builds a journal entry for a finished projection, minting a
// fresh ULID run id.
func NewRunRecord(configName string, groupCount int, result *calculation.Result) RunRecord {
	return RunRecord{
		RunID:      ulid.Make().String(),
		CreatedAt:  time.Now().UTC(),
		Config:     configName,
		Product:    result.ProductKind,
		Months:     result.Months,
		GroupCount: groupCount,
		Total:      result.Total,
	}
}

// Journal records and retrieves projection runs.
type Journal interface {
	RecordRun(run RunRecord, periods []domain.CashFlow) error
	ListRuns() ([]RunRecord, error)
	GetCashflows(runID string) ([]domain.CashFlow, error)
	Close() error
}
