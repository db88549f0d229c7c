package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// DashboardService summarises a user's tasks.
type DashboardService struct {
	Store store.Store
	Clock Clock
}

// Summary aggregates every task owned by owner as of the service clock.
func (s *DashboardService) Summary(ctx context.Context, owner idx.ID) (domain.Dashboard, error) {
	tasks, err := s.Store.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: owner, Sort: store.SortInsertion})
	if err != nil {
		return domain.Dashboard{}, err
	}
	return Aggregate(tasks, s.Clock.Now()), nil
}

// Aggregate computes the dashboard for tasks at now.
//
// Completed tasks feed the average completion time. Pending tasks feed the
// lapsed time (hours since start, zero for tasks not yet started) and the
// per-priority breakdown. Breakdown rows are rounded to two decimals and the
// totals are summed from the rounded rows, so they always match the table.
func Aggregate(tasks []domain.Task, now time.Time) domain.Dashboard {
	var (
		d         domain.Dashboard
		completed float64
	)
	for i := range d.Breakdown {
		d.Breakdown[i].Priority = i + domain.MinPriority
	}

	for _, t := range tasks {
		d.Summary.TotalTasks++
		if t.TaskStatus {
			d.Summary.TasksCompleted++
			completed += max(domain.Hours(t.StartTime, t.EndTime), 0)
			continue
		}

		lapsed := 0.0
		if !t.StartTime.After(now) {
			lapsed = domain.Hours(t.StartTime, now)
		}
		d.Summary.TotalTimeLapsed += lapsed

		if !domain.ValidPriority(t.Priority) {
			continue
		}
		row := &d.Breakdown[t.Priority-domain.MinPriority]
		row.PendingTasks++
		row.TimeLapsed += lapsed
		row.TimeToFinish += domain.Hours(t.StartTime, t.EndTime)
	}

	d.Summary.TasksPending = d.Summary.TotalTasks - d.Summary.TasksCompleted
	if d.Summary.TasksCompleted > 0 {
		avg := completed / float64(d.Summary.TasksCompleted)
		d.Summary.AverageCompletionTime = &avg
	}

	for i := range d.Breakdown {
		row := &d.Breakdown[i]
		row.TimeLapsed = domain.Round2(row.TimeLapsed)
		row.TimeToFinish = domain.Round2(row.TimeToFinish)
		d.TotalPendingTasks += row.PendingTasks
		d.TotalTimeToFinish += row.TimeToFinish
	}
	d.TotalTimeToFinish = domain.Round2(d.TotalTimeToFinish)
	return d
}
