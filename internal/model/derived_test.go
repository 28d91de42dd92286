package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
)

func TestCompletionPercentage(t *testing.T) {
	// A project with no tasks is 0% complete, not a division by zero.
	assert.Equal(t, 0, CompletionPercentage(0, 0))
	assert.Equal(t, 0, CompletionPercentage(5, 0))

	assert.Equal(t, 50, CompletionPercentage(2, 4))
	assert.Equal(t, 100, CompletionPercentage(4, 4))
	assert.Equal(t, 0, CompletionPercentage(0, 7))

	// Floor, never round up.
	assert.Equal(t, 33, CompletionPercentage(1, 3))
	assert.Equal(t, 66, CompletionPercentage(2, 3))
}

func TestIsDelayed(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	past := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	inProgressOverdue := Project{Status: constant.ProjectStatusInProgress, ExpectedEnd: past}
	assert.True(t, inProgressOverdue.IsDelayed(today))

	inProgressOnTrack := Project{Status: constant.ProjectStatusInProgress, ExpectedEnd: future}
	assert.False(t, inProgressOnTrack.IsDelayed(today))

	// Expected end on the current date is not yet delayed.
	dueToday := Project{Status: constant.ProjectStatusInProgress, ExpectedEnd: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}
	assert.False(t, dueToday.IsDelayed(today))

	// Only in-progress projects can be delayed, regardless of dates.
	for _, status := range []constant.ProjectStatus{
		constant.ProjectStatusPlanning,
		constant.ProjectStatusOnHold,
		constant.ProjectStatusCompleted,
		constant.ProjectStatusCancelled,
	} {
		p := Project{Status: status, ExpectedEnd: past}
		assert.False(t, p.IsDelayed(today), "status %s", status)
	}
}

func TestIsFullyReceived(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	qty := func(v float64) *float64 { return &v }

	cases := []struct {
		name string
		ra   ResourceAllocation
		want bool
	}{
		{"nothing received", ResourceAllocation{Quantity: 10}, false},
		{"date only", ResourceAllocation{Quantity: 10, ReceivedDate: &date}, false},
		{"quantity only", ResourceAllocation{Quantity: 10, ReceivedQuantity: qty(10)}, false},
		{"partial delivery", ResourceAllocation{Quantity: 10, ReceivedDate: &date, ReceivedQuantity: qty(7)}, false},
		{"exact delivery", ResourceAllocation{Quantity: 10, ReceivedDate: &date, ReceivedQuantity: qty(10)}, true},
		{"over delivery", ResourceAllocation{Quantity: 10, ReceivedDate: &date, ReceivedQuantity: qty(12)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.ra.IsFullyReceived())
		})
	}
}
