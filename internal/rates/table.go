package rates

import (
	"fmt"

	"github.com/lifesim/lifesim/internal/domain"
)

// DurationBuckets is the number of duration columns in a rate table.
// Durations of five or more policy years share the final column.
const DurationBuckets = 6

// Table is a 2-D rate table indexed by attained age and bucketed policy
// duration. It is always per-policy: the rate depends on the policy's issue
// age and elapsed duration.
type Table struct {
	minAge int
	rows   [][]float64
}

// NewTable builds a rate table whose first row corresponds to minAge.
// Each row must have exactly DurationBuckets columns; a ragged or empty
// table is a configuration error and fails construction.
func NewTable(minAge int, rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("rate table has no rows")
	}
	for i, row := range rows {
		if len(row) != DurationBuckets {
			return nil, fmt.Errorf("rate table row %d (age %d) has %d columns, want %d",
				i, minAge+i, len(row), DurationBuckets)
		}
	}
	return &Table{minAge: minAge, rows: rows}, nil
}

// MinAge is the youngest attained age the table covers.
func (t *Table) MinAge() int { return t.minAge }

// MaxAge is the oldest attained age the table covers.
func (t *Table) MaxAge() int { return t.minAge + len(t.rows) - 1 }

// CheckAge verifies an attained age is not below the table's minimum.
// Ages above the maximum clamp to the last row, but an age below the minimum
// invalidates the whole run and must be rejected at configuration time.
func (t *Table) CheckAge(age int) error {
	if age < t.minAge {
		return fmt.Errorf("attained age %d below table minimum %d", age, t.minAge)
	}
	return nil
}

func (t *Table) PerPolicy() bool { return true }

// AnnualRate broadcasts the youngest-age, first-duration rate. The engine
// never uses this slot for per-policy providers.
func (t *Table) AnnualRate(month int) float64 {
	return t.rows[0][0]
}

func (t *Table) AnnualRateFor(month int, p domain.Policy) float64 {
	row := p.AttainedAge(month) - t.minAge
	if row < 0 {
		row = 0
	}
	if row >= len(t.rows) {
		row = len(t.rows) - 1
	}
	col := p.DurationYears(month)
	if col >= DurationBuckets {
		col = DurationBuckets - 1
	}
	return t.rows[row][col]
}
