// Package output renders projection results for humans and spreadsheets. It
// consumes only the public fields of the cashflow statements.
package output

import (
	"fmt"

	"github.com/lifesim/lifesim/internal/calculation"
)

// Formatter renders a completed projection.
type Formatter interface {
	Name() string
	Format(result *calculation.Result) ([]byte, error)
}

// NewFormatter returns the formatter for a --format flag value.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "", "table":
		return ConsoleFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want table or csv)", format)
	}
}
