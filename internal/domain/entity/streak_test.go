package entity

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestStreak_RecordActivity(t *testing.T) {
	tests := []struct {
		name      string
		days      []int
		wantCount int
		wantLast  int
	}{
		{name: "first activity starts at one", days: []int{0}, wantCount: 1, wantLast: 0},
		{name: "consecutive days extend the streak", days: []int{0, 1, 2, 3, 4}, wantCount: 5, wantLast: 4},
		{name: "same day twice does not inflate", days: []int{0, 0, 0}, wantCount: 1, wantLast: 0},
		{name: "same day after extension keeps count", days: []int{0, 1, 1}, wantCount: 2, wantLast: 1},
		{name: "two day gap resets to one", days: []int{0, 1, 3}, wantCount: 1, wantLast: 3},
		{name: "long gap resets to one", days: []int{0, 1, 2, 40}, wantCount: 1, wantLast: 40},
		{name: "activity before last resets", days: []int{5, 2}, wantCount: 1, wantLast: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Streak
			for _, d := range tt.days {
				s.RecordActivity(day(d))
			}

			if s.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", s.Count, tt.wantCount)
			}
			if s.LastActivity == nil || !s.LastActivity.Equal(day(tt.wantLast)) {
				t.Errorf("LastActivity = %v, want %v", s.LastActivity, day(tt.wantLast))
			}
		})
	}
}

func TestStreak_RecordActivityIgnoresTimeOfDay(t *testing.T) {
	var s Streak
	s.RecordActivity(time.Date(2025, time.March, 1, 23, 59, 0, 0, time.UTC))
	s.RecordActivity(time.Date(2025, time.March, 2, 0, 1, 0, 0, time.UTC))
	s.RecordActivity(time.Date(2025, time.March, 2, 18, 0, 0, 0, time.UTC))

	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
}
