package domain

import (
	"encoding/json"
	"strconv"
)

// NotAvailable stands in for an average over zero completed tasks.
const NotAvailable = "N/A"

// Summary holds the scalar statistics over all of a user's tasks.
type Summary struct {
	TotalTasks     int
	TasksCompleted int
	TasksPending   int
	// AverageCompletionTime is nil when no task is completed.
	AverageCompletionTime *float64
	TotalTimeLapsed       float64
}

// PriorityRow aggregates the pending tasks of one priority.
type PriorityRow struct {
	Priority     int     `json:"priority"`
	PendingTasks int     `json:"pendingTasks"`
	TimeLapsed   float64 `json:"timeLapsed"`
	TimeToFinish float64 `json:"timeToFinish"`
}

// Dashboard is the per-user statistics view. Breakdown always has one row per
// priority, ascending.
type Dashboard struct {
	Summary           Summary
	Breakdown         [MaxPriority]PriorityRow
	TotalPendingTasks int
	TotalTimeToFinish float64
}

func fixed2(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

func (s Summary) MarshalJSON() ([]byte, error) {
	avg := NotAvailable
	if s.AverageCompletionTime != nil {
		avg = fixed2(*s.AverageCompletionTime)
	}
	return json.Marshal(struct {
		TotalTasks            int    `json:"totalTasks"`
		TasksCompleted        int    `json:"tasksCompleted"`
		TasksPending          int    `json:"tasksPending"`
		AverageCompletionTime string `json:"averageCompletionTime"`
		TotalTimeLapsed       string `json:"totalTimeLapsed"`
	}{
		TotalTasks:            s.TotalTasks,
		TasksCompleted:        s.TasksCompleted,
		TasksPending:          s.TasksPending,
		AverageCompletionTime: avg,
		TotalTimeLapsed:       fixed2(s.TotalTimeLapsed),
	})
}

func (d Dashboard) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Summary           Summary       `json:"summary"`
		TableSummary      []PriorityRow `json:"tableSummary"`
		TotalPendingTasks int           `json:"totalPendingTasks"`
		TotalTimeToFinish string        `json:"totalTimeToFinish"`
	}{
		Summary:           d.Summary,
		TableSummary:      d.Breakdown[:],
		TotalPendingTasks: d.TotalPendingTasks,
		TotalTimeToFinish: fixed2(d.TotalTimeToFinish),
	})
}
