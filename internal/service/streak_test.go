package service_test

import (
	"testing"
	"time"

	"github.com/limbo/vital/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	testCases := []struct {
		name       string
		prev       int
		last       *time.Time
		wantStreak int
		wantMoved  bool
	}{
		{"never completed", 0, nil, 1, true},
		{"yesterday", 4, ptr(day(-1)), 5, true},
		{"two days ago", 4, ptr(day(-2)), 1, true},
		{"long ago", 40, ptr(day(-365)), 1, true},
		{"today", 4, ptr(day(0)), 4, false},
		{"future date", 4, ptr(day(2)), 4, false},
		{"last date with time of day", 2, ptr(day(-1).Add(23 * time.Hour)), 3, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			streak, moved := service.NextStreak(tc.prev, tc.last, day(0))
			assert.Equal(t, tc.wantStreak, streak)
			assert.Equal(t, tc.wantMoved, moved)
		})
	}
}

func TestNextStreakAcrossMonth(t *testing.T) {
	last := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	streak, moved := service.NextStreak(9, &last, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 10, streak)
	assert.True(t, moved)
}

func TestStreakBonus(t *testing.T) {
	bonuses := map[int]int{
		0:   0,
		1:   0,
		6:   0,
		7:   service.WeekStreakBonus,
		8:   0,
		14:  0,
		29:  0,
		30:  service.MonthStreakBonus,
		60:  service.MonthStreakBonus,
		210: service.MonthStreakBonus,
	}
	for streak, want := range bonuses {
		assert.Equal(t, want, service.StreakBonus(streak), streak)
	}
}

func TestClockToday(t *testing.T) {
	// 23:30 UTC is already the next day in Tokyo.
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC)
	clock := service.NewClock(tokyo, func() time.Time { return now })
	assert.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), clock.Today())
	assert.Equal(t, now, clock.Now())

	utc := service.NewClock(nil, func() time.Time { return now })
	assert.Equal(t, day(0), utc.Today())
}
