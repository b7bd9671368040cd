package modelpoints

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifesim/lifesim/internal/domain"
)

const sampleTable = `policy_id,spec_id,issue_age,sex,term_y,policy_count,sum_assured,duration_m,premium,account_value
1,A,20,M,20,100,200000,0,30,0
2,A,45,F,20,80,600000,18,120,0
3,B,70,M,10,50.5,400000,0,400,2500
`

func TestReadModelPoints(t *testing.T) {
	groups, err := Read(strings.NewReader(sampleTable))
	require.NoError(t, err)
	require.Len(t, groups, 3)

	first := groups[0]
	assert.Equal(t, 1, first.PointID)
	assert.Equal(t, "A", first.SpecID)
	assert.Equal(t, domain.Male, first.Policy.Sex)
	assert.Equal(t, 20, first.Policy.IssueAge)
	assert.Equal(t, 0, first.Policy.IssueMonth)
	assert.Equal(t, 100.0, first.Count)

	seasoned := groups[1]
	assert.Equal(t, -18, seasoned.Policy.IssueMonth, "Elapsed duration maps to a negative issue month")
	assert.Equal(t, domain.Female, seasoned.Policy.Sex)

	fractional := groups[2]
	assert.Equal(t, 50.5, fractional.Count, "Fractional counts are valid model points")
	assert.Equal(t, 2500.0, fractional.Policy.AccountValue)
}

func TestReadRejectsBadHeader(t *testing.T) {
	_, err := Read(strings.NewReader("a,b,c\n1,2,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")

	swapped := strings.Replace(sampleTable, "policy_id,spec_id", "spec_id,policy_id", 1)
	_, err = Read(strings.NewReader(swapped))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column")
}

func TestReadRejectsBadFields(t *testing.T) {
	bad := `policy_id,spec_id,issue_age,sex,term_y,policy_count,sum_assured,duration_m,premium,account_value
1,A,twenty,M,20,100,200000,0,30,0
`
	_, err := Read(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue_age")
	assert.Contains(t, err.Error(), "line 2", "Errors should name the offending line")
}

func TestReadIgnoresExtraColumns(t *testing.T) {
	extra := `policy_id,spec_id,issue_age,sex,term_y,policy_count,sum_assured,duration_m,premium,account_value,accum_prem_init
1,A,30,F,15,10,50000,6,25,0,123.45
`
	groups, err := Read(strings.NewReader(extra))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 10.0, groups[0].Count, "Trailing foreign-tool columns are skipped")
}

func TestWriteLargeAmountsInPlainNotation(t *testing.T) {
	groups := []domain.PolicyGroup{{
		PointID: 1, SpecID: "A",
		Policy: domain.Policy{Sex: domain.Male, IssueAge: 30, TermYears: 20, Assured: 1000000, Premium: 55.5},
		Count:  2500000,
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, groups))

	out := buf.String()
	assert.Contains(t, out, "1000000", "Large sums assured stay in plain decimal notation")
	assert.Contains(t, out, "2500000")
	assert.NotContains(t, out, "e+", "Scientific notation would break external consumers of the table")
}

func TestWriteReadRoundTrip(t *testing.T) {
	groups, err := Read(strings.NewReader(sampleTable))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, groups))

	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, groups, back, "A written table must read back to the same groups")
}
