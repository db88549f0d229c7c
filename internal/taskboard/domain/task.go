package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = MaxPriority
)

type Task struct {
	ID           idx.ID
	Title        string
	StartTime    time.Time
	EndTime      time.Time
	Priority     int
	TaskStatus   bool // true once completed
	TimeToFinish float64
	OwnerID      idx.ID
	CreatedAt    time.Time
}

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Hours is the length of [start, end] in hours. It is negative when end
// precedes start.
func Hours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// TimeToFinish is the planned duration of a task in hours, or 0 when the
// schedule is empty or inverted.
func TimeToFinish(start, end time.Time) float64 {
	if !end.After(start) {
		return 0
	}
	return Round2(Hours(start, end))
}

// Derive recomputes the fields that follow from the schedule. Every write
// path calls it before persisting.
func (t *Task) Derive() {
	t.TimeToFinish = TimeToFinish(t.StartTime, t.EndTime)
}

func ValidPriority(p int) bool {
	return p >= MinPriority && p <= MaxPriority
}

func (t Task) Validate() error {
	var errs []error
	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, Invalid("title", "A task must have a title"))
	}
	if t.StartTime.IsZero() {
		errs = append(errs, Invalid("startTime", "A task must have a start time"))
	}
	if t.EndTime.IsZero() {
		errs = append(errs, Invalid("endTime", "A task must have an end time"))
	}
	if !ValidPriority(t.Priority) {
		errs = append(errs, Invalid("priority", "Priority must be between 1 and 5"))
	}
	if t.OwnerID.IsZero() {
		errs = append(errs, Invalid("owner", "A task must have an owner"))
	}
	return errors.Join(errs...)
}
