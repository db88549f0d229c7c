package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/stretchr/testify/require"
)

func mkTask(priority int, start time.Time, hours float64, done bool) domain.Task {
	return domain.Task{
		Priority:   priority,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(hours * float64(time.Hour))),
		TaskStatus: done,
	}
}

func TestAggregateEmpty(t *testing.T) {
	d := Aggregate(nil, testNow)
	require.Zero(t, d.Summary.TotalTasks)
	require.Nil(t, d.Summary.AverageCompletionTime)
	require.Zero(t, d.TotalPendingTasks)
	for i, row := range d.Breakdown {
		require.Equal(t, i+1, row.Priority)
		require.Zero(t, row.PendingTasks)
	}
}

func TestAggregate(t *testing.T) {
	tasks := []domain.Task{
		// completed: 2h and 4h
		mkTask(1, testNow.Add(-10*time.Hour), 2, true),
		mkTask(3, testNow.Add(-10*time.Hour), 4, true),
		// pending, started 3h ago, planned 5h
		mkTask(1, testNow.Add(-3*time.Hour), 5, false),
		// pending, started 30m ago, planned 1h
		mkTask(1, testNow.Add(-30*time.Minute), 1, false),
		// pending, not started yet, planned 2h
		mkTask(4, testNow.Add(time.Hour), 2, false),
	}

	d := Aggregate(tasks, testNow)

	require.Equal(t, 5, d.Summary.TotalTasks)
	require.Equal(t, 2, d.Summary.TasksCompleted)
	require.Equal(t, 3, d.Summary.TasksPending)
	require.NotNil(t, d.Summary.AverageCompletionTime)
	require.InDelta(t, 3.0, *d.Summary.AverageCompletionTime, 1e-9)
	require.InDelta(t, 3.5, d.Summary.TotalTimeLapsed, 1e-9)

	require.Equal(t, domain.PriorityRow{Priority: 1, PendingTasks: 2, TimeLapsed: 3.5, TimeToFinish: 6}, d.Breakdown[0])
	require.Equal(t, domain.PriorityRow{Priority: 2}, d.Breakdown[1])
	require.Equal(t, domain.PriorityRow{Priority: 3}, d.Breakdown[2])
	require.Equal(t, domain.PriorityRow{Priority: 4, PendingTasks: 1, TimeLapsed: 0, TimeToFinish: 2}, d.Breakdown[3])
	require.Equal(t, domain.PriorityRow{Priority: 5}, d.Breakdown[4])

	require.Equal(t, 3, d.TotalPendingTasks)
	require.Equal(t, 8.0, d.TotalTimeToFinish)
}

func TestAggregateTotalsUseRoundedRows(t *testing.T) {
	// 20 minutes is 0.333.. hours and rounds to 0.33 per row.
	tasks := []domain.Task{
		mkTask(1, testNow.Add(time.Hour), 1.0/3, false),
		mkTask(2, testNow.Add(time.Hour), 1.0/3, false),
		mkTask(3, testNow.Add(time.Hour), 1.0/3, false),
	}
	d := Aggregate(tasks, testNow)
	require.Equal(t, 0.33, d.Breakdown[0].TimeToFinish)
	require.Equal(t, 0.99, d.TotalTimeToFinish)
}

func TestAggregateInvertedCompletedTask(t *testing.T) {
	d := Aggregate([]domain.Task{mkTask(2, testNow, -3, true)}, testNow)
	require.NotNil(t, d.Summary.AverageCompletionTime)
	require.Zero(t, *d.Summary.AverageCompletionTime)
}

func TestDashboardSummary(t *testing.T) {
	f := newFixture(t)
	me := f.signUp(t, "xena@example.com")
	other := f.signUp(t, "yara@example.com")
	f.createTask(t, me, "done", testNow.Add(-5*time.Hour), 2, 1, true)
	f.createTask(t, me, "open", testNow.Add(-time.Hour), 3, 2, false)
	f.createTask(t, other, "theirs", testNow.Add(-time.Hour), 3, 2, false)

	d, err := f.dashboard.Summary(context.Background(), me.ID)
	require.NoError(t, err)
	require.Equal(t, 2, d.Summary.TotalTasks)
	require.Equal(t, 1, d.Summary.TasksCompleted)
	require.InDelta(t, 2.0, *d.Summary.AverageCompletionTime, 1e-9)
	require.InDelta(t, 1.0, d.Summary.TotalTimeLapsed, 1e-9)
	require.Equal(t, 1, d.Breakdown[1].PendingTasks)
	require.Equal(t, 3.0, d.TotalTimeToFinish)
}
