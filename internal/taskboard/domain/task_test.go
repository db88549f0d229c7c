package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestTimeToFinish(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"two hours", t0, t0.Add(2 * time.Hour), 2},
		{"ninety minutes", t0, t0.Add(90 * time.Minute), 1.5},
		{"rounds to two decimals", t0, t0.Add(20 * time.Minute), 0.33},
		{"rounds up", t0, t0.Add(33 * time.Second), 0.01},
		{"equal times", t0, t0, 0},
		{"inverted", t0.Add(time.Hour), t0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.TimeToFinish(tt.start, tt.end))
		})
	}
}

func TestRound2(t *testing.T) {
	require.Equal(t, 1.24, domain.Round2(1.236))
	require.Equal(t, -1.24, domain.Round2(-1.236))
	require.Equal(t, 1.23, domain.Round2(1.2349))
	require.Equal(t, 3.0, domain.Round2(2.999))
}

func TestTaskDerive(t *testing.T) {
	task := domain.Task{StartTime: t0, EndTime: t0.Add(4 * time.Hour), TimeToFinish: 99}
	task.Derive()
	require.Equal(t, 4.0, task.TimeToFinish)

	task.EndTime = t0.Add(-time.Hour)
	task.Derive()
	require.Zero(t, task.TimeToFinish)
}

func TestTaskValidate(t *testing.T) {
	valid := domain.Task{
		Title:     "write report",
		StartTime: t0,
		EndTime:   t0.Add(time.Hour),
		Priority:  domain.DefaultPriority,
		OwnerID:   idx.New(),
	}
	require.NoError(t, valid.Validate())

	bad := domain.Task{Priority: 9}
	err := bad.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)

	fields := map[string]bool{}
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ve *domain.ValidationError
		require.True(t, errors.As(e, &ve))
		fields[ve.Field] = true
	}
	require.Equal(t, map[string]bool{
		"title": true, "startTime": true, "endTime": true, "priority": true, "owner": true,
	}, fields)
}
