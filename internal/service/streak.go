package service

import "time"

const (
	TaskCompletionPoints = 10
	WeekStreakBonus      = 50
	MonthStreakBonus     = 100
	ReferralPoints       = 100
)

// NextStreak computes the streak after a completion on today given the
// previous streak and the date of the last completion.
// It reports whether the streak moved, bonuses are only paid on a move.
func NextStreak(prev int, lastTaskDate *time.Time, today time.Time) (int, bool) {
	if lastTaskDate == nil {
		return 1, true
	}
	days := daysBetween(*lastTaskDate, today)
	switch {
	case days == 1:
		return prev + 1, true
	case days > 1:
		return 1, true
	default:
		// same day, or last date in the future after a clock change
		return prev, false
	}
}

// StreakBonus is paid once at a 7 day streak and at every 30 day milestone.
func StreakBonus(streak int) int {
	bonus := 0
	if streak == 7 {
		bonus += WeekStreakBonus
	}
	if streak > 0 && streak%30 == 0 {
		bonus += MonthStreakBonus
	}
	return bonus
}

func daysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
