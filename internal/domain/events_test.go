package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventRecordClear(t *testing.T) {
	rec := NewEventRecord()
	g := PolicyGroup{PointID: 1, Count: 50}

	rec.Month = 7
	rec.Deaths = append(rec.Deaths, Decrement{Group: g, Count: 1.5})
	rec.Lapses = append(rec.Lapses, Decrement{Group: g, Count: 2.5})
	rec.Expired = append(rec.Expired, g)
	rec.Started = append(rec.Started, g)
	rec.Accounts = append(rec.Accounts, AccountEntry{Group: g})
	rec.ClaimedAmount = 1000
	rec.ExpenseAmount = 50

	rec.Clear()

	assert.Equal(t, 0, rec.Month, "Clear should reset the month")
	assert.Empty(t, rec.Deaths, "Clear should empty the deaths list")
	assert.Empty(t, rec.Lapses, "Clear should empty the lapses list")
	assert.Empty(t, rec.Expired, "Clear should empty the expired list")
	assert.Empty(t, rec.Started, "Clear should empty the started list")
	assert.Empty(t, rec.Accounts, "Clear should empty the accounts list")
	assert.Zero(t, rec.ClaimedAmount, "Clear should reset claimed amount")
	assert.Zero(t, rec.ExpenseAmount, "Clear should reset expense amount")
}

func TestEventRecordSnapshotIsolation(t *testing.T) {
	rec := NewEventRecord()
	g := PolicyGroup{PointID: 3, Count: 80}

	rec.Deaths = append(rec.Deaths, Decrement{Group: g, Count: 2})
	g.Count = 10 // later replacement of the live group

	assert.Equal(t, 80.0, rec.Deaths[0].Group.Count, "Record must hold the pre-decrement snapshot, not a live reference")
}
