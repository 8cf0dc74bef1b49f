package session

import "time"

// ElapsedMinutes returns the whole minutes between startedAt and now. A clock that reads earlier than
// startedAt yields zero, never a negative count.
func ElapsedMinutes(startedAt, now time.Time) int64 {
	if !now.After(startedAt) {
		return 0
	}
	return int64(now.Sub(startedAt) / time.Minute)
}
