package entity

import "time"

// Streak counts consecutive calendar days with at least one savings activity.
type Streak struct {
	Count        int
	LastActivity *time.Time
}

// RecordActivity registers a savings activity on today.
// Repeated activity on the same day leaves the streak unchanged, activity on the
// day after the last one extends it, anything else restarts it at one.
func (s *Streak) RecordActivity(today time.Time) {
	today = DateOf(today)

	if s.LastActivity != nil {
		last := DateOf(*s.LastActivity)
		switch {
		case last.Equal(today):
			return
		case last.AddDate(0, 0, 1).Equal(today):
			s.Count++
		default:
			s.Count = 1
		}
	} else {
		s.Count = 1
	}

	s.LastActivity = &today
}
