package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyDurations(t *testing.T) {
	p := Policy{IssueAge: 40, IssueMonth: -18, TermYears: 10}

	assert.Equal(t, 18, p.DurationMonths(0), "Should count months since issue")
	assert.Equal(t, 1, p.DurationYears(0), "Should floor to whole years")
	assert.Equal(t, 41, p.AttainedAge(0), "Attained age should advance with whole years")
	assert.Equal(t, -18+120, p.MaturityMonth(), "Maturity should be issue plus term")
	assert.True(t, p.HasTerm(), "Ten year policy should have a term")
}

func TestPolicyWholeOfLife(t *testing.T) {
	p := Policy{IssueAge: 30, TermYears: 0}
	assert.False(t, p.HasTerm(), "Zero term means whole of life")
}

func TestPolicyDurationBeforeIssue(t *testing.T) {
	p := Policy{IssueAge: 25, IssueMonth: 24}
	assert.Equal(t, -24, p.DurationMonths(0), "Duration is negative before issue")
	assert.Equal(t, 0, p.DurationYears(0), "Years floor at zero before issue")
	assert.Equal(t, 25, p.AttainedAge(0), "Age does not advance before issue")
}

func TestPremiumDue(t *testing.T) {
	level := Policy{IssueMonth: 5, Mode: PremiumLevel}
	assert.True(t, level.PremiumDue(5), "Level premium due at issue")
	assert.True(t, level.PremiumDue(50), "Level premium due every month")

	single := Policy{IssueMonth: 5, Mode: PremiumSingle}
	assert.True(t, single.PremiumDue(5), "Single premium due at issue")
	assert.False(t, single.PremiumDue(6), "Single premium due only once")
}

func TestParseSex(t *testing.T) {
	s, err := ParseSex("M")
	require.NoError(t, err)
	assert.Equal(t, Male, s)

	s, err = ParseSex("f")
	require.NoError(t, err)
	assert.Equal(t, Female, s)

	_, err = ParseSex("x")
	assert.Error(t, err, "Unknown sex code should fail")
}

func TestParsePremiumMode(t *testing.T) {
	m, err := ParsePremiumMode("")
	require.NoError(t, err)
	assert.Equal(t, PremiumLevel, m, "Empty mode defaults to level")

	m, err = ParsePremiumMode("single")
	require.NoError(t, err)
	assert.Equal(t, PremiumSingle, m)

	_, err = ParsePremiumMode("annual")
	assert.Error(t, err, "Unknown mode should fail")
}

func TestGroupReplacementDoesNotAlias(t *testing.T) {
	g := PolicyGroup{PointID: 1, SpecID: "A", Policy: Policy{Assured: 1000}, Count: 100}

	smaller := g.WithCount(90)
	assert.Equal(t, 100.0, g.Count, "Original group must not change")
	assert.Equal(t, 90.0, smaller.Count, "Replacement carries the new count")
	assert.Equal(t, g.Policy, smaller.Policy, "Replacement keeps the policy")

	updated := g.WithPolicy(Policy{Assured: 2000})
	assert.Equal(t, 1000.0, g.Policy.Assured, "Original policy must not change")
	assert.Equal(t, 2000.0, updated.Policy.Assured, "Replacement carries the new policy")
}
