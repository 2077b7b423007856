package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollStatusAt(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	opens := base
	closes := base.Add(24 * time.Hour)

	tests := []struct {
		name     string
		opensAt  time.Time
		closesAt *time.Time
		now      time.Time
		want     PollStatus
	}{
		{
			name:    "before window",
			opensAt: opens,
			now:     opens.Add(-time.Minute),
			want:    PollNotStarted,
		},
		{
			name:    "at opening instant",
			opensAt: opens,
			now:     opens,
			want:    PollActive,
		},
		{
			name:     "inside window",
			opensAt:  opens,
			closesAt: &closes,
			now:      opens.Add(time.Hour),
			want:     PollActive,
		},
		{
			name:     "at closing instant",
			opensAt:  opens,
			closesAt: &closes,
			now:      closes,
			want:     PollClosed,
		},
		{
			name:     "after closing",
			opensAt:  opens,
			closesAt: &closes,
			now:      closes.Add(time.Minute),
			want:     PollClosed,
		},
		{
			name:    "no closing time never closes",
			opensAt: opens,
			now:     opens.Add(1000 * time.Hour),
			want:    PollActive,
		},
		{
			name:     "closed wins over not started on inconsistent window",
			opensAt:  opens.Add(48 * time.Hour),
			closesAt: &closes,
			now:      closes.Add(time.Hour),
			want:     PollClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Poll{OpensAt: tt.opensAt, ClosesAt: tt.closesAt}
			assert.Equal(t, tt.want, p.StatusAt(tt.now))
		})
	}
}

func TestPollClosed(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	open := Poll{OpensAt: past, ClosesAt: &future}
	assert.False(t, open.Closed(now))

	closed := Poll{OpensAt: past.Add(-time.Hour), ClosesAt: &past}
	assert.True(t, closed.Closed(now))
}
