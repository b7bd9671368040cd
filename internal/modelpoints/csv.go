// Package modelpoints reads and writes policy model-point tables. The table
// is column-oriented CSV with a fixed schema shared with external actuarial
// tools; Load maps rows into PolicyGroups and Save writes them back, so the
// same file can round-trip through a foreign modeling tool's model-point
// table (whose trailing initialization columns are not needed here and are
// ignored on read).
package modelpoints

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lifesim/lifesim/internal/domain"
)

// Header is the fixed model-point schema, in column order.
var Header = []string{
	"policy_id",
	"spec_id",
	"issue_age",
	"sex",
	"term_y",
	"policy_count",
	"sum_assured",
	"duration_m",
	"premium",
	"account_value",
}

// Read parses a model-point table from a reader. The first row must match
// Header; extra trailing columns are ignored. Elapsed duration becomes a
// negative issue month, so in-force business sits before the simulation
// epoch.
func Read(r io.Reader) ([]domain.PolicyGroup, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read model-point header: %w", err)
	}
	if len(head) < len(Header) {
		return nil, fmt.Errorf("model-point header has %d columns, want at least %d", len(head), len(Header))
	}
	for i, want := range Header {
		if head[i] != want {
			return nil, fmt.Errorf("model-point column %d is %q, want %q", i, head[i], want)
		}
	}

	var groups []domain.PolicyGroup
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read model-point row: %w", err)
		}
		line++
		g, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("model-point line %d: %w", line, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func parseRow(row []string) (domain.PolicyGroup, error) {
	if len(row) < len(Header) {
		return domain.PolicyGroup{}, fmt.Errorf("row has %d columns, want at least %d", len(row), len(Header))
	}

	pointID, err := strconv.Atoi(row[0])
	if err != nil {
		return domain.PolicyGroup{}, fmt.Errorf("bad policy_id %q: %w", row[0], err)
	}
	issueAge, err := strconv.Atoi(row[2])
	if err != nil {
		return domain.PolicyGroup{}, fmt.Errorf("bad issue_age %q: %w", row[2], err)
	}
	sex, err := domain.ParseSex(row[3])
	if err != nil {
		return domain.PolicyGroup{}, err
	}
	term, err := strconv.Atoi(row[4])
	if err != nil {
		return domain.PolicyGroup{}, fmt.Errorf("bad term_y %q: %w", row[4], err)
	}
	count, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return domain.PolicyGroup{}, fmt.Errorf("bad policy_count %q: %w", row[5], err)
	}
	assured, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return domain.PolicyGroup{}, fmt.Errorf("bad sum_assured %q: %w", row[6], err)
	}
	duration, err := strconv.Atoi(row[7])
	if err != nil {
		return domain.PolicyGroup{}, fmt.Errorf("bad duration_m %q: %w", row[7], err)
	}
	premium, err := strconv.ParseFloat(row[8], 64)
	if err != nil {
		return domain.PolicyGroup{}, fmt.Errorf("bad premium %q: %w", row[8], err)
	}
	account, err := strconv.ParseFloat(row[9], 64)
	if err != nil {
		return domain.PolicyGroup{}, fmt.Errorf("bad account_value %q: %w", row[9], err)
	}

	return domain.PolicyGroup{
		PointID: pointID,
		SpecID:  row[1],
		Policy: domain.Policy{
			Sex:          sex,
			IssueAge:     issueAge,
			IssueMonth:   -duration,
			TermYears:    term,
			Assured:      assured,
			Premium:      premium,
			AccountValue: account,
		},
		Count: count,
	}, nil
}

// Write emits the groups in the fixed schema. Issue months become elapsed
// durations (negated), so a written table reads back to the same groups.
func Write(w io.Writer, groups []domain.PolicyGroup) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, g := range groups {
		row := []string{
			strconv.Itoa(g.PointID),
			g.SpecID,
			strconv.Itoa(g.Policy.IssueAge),
			g.Policy.Sex.String(),
			strconv.Itoa(g.Policy.TermYears),
			formatFloat(g.Count),
			formatFloat(g.Policy.Assured),
			strconv.Itoa(-g.Policy.IssueMonth),
			formatFloat(g.Policy.Premium),
			formatFloat(g.Policy.AccountValue),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Load reads a model-point table from a file.
func Load(path string) ([]domain.PolicyGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model-point file %s: %w", path, err)
	}
	defer f.Close()
	groups, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

// Save writes a model-point table to a file.
func Save(path string, groups []domain.PolicyGroup) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model-point file %s: %w", path, err)
	}
	defer f.Close()
	if err := Write(f, groups); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// formatFloat writes plain decimal notation. Monetary columns must never use
// scientific notation, since the table schema is shared with external tools.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
