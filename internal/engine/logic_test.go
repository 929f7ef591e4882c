package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestCalendarDiff verifies the calendar decomposition, in particular the
// borrow-from-previous-month step across leap and non-leap Februaries.
func TestCalendarDiff(t *testing.T) {
	tests := []struct {
		name      string
		birth     time.Time
		ref       time.Time
		wantYears int
		wantMonth int
		wantDays  int
	}{
		{
			name:      "Same day",
			birth:     time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			wantYears: 0, wantMonth: 0, wantDays: 0,
		},
		{
			name:      "Plain full years",
			birth:     time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			wantYears: 34, wantMonth: 0, wantDays: 0,
		},
		{
			name:      "One day short of the anniversary",
			birth:     time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC),
			wantYears: 33, wantMonth: 11, wantDays: 29,
		},
		{
			name:      "Day borrow from a 31-day month",
			birth:     time.Date(2000, 6, 25, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
			wantYears: 24, wantMonth: 1, wantDays: 16, // borrows July's 31 days
		},
		{
			name:      "Day borrow from leap February",
			birth:     time.Date(2000, 1, 20, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			wantYears: 24, wantMonth: 1, wantDays: 19, // borrows Feb 2024's 29 days
		},
		{
			name:      "Day borrow from non-leap February",
			birth:     time.Date(2000, 1, 20, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
			wantYears: 23, wantMonth: 1, wantDays: 18, // borrows Feb 2023's 28 days
		},
		{
			name:      "Month borrow across the year boundary",
			birth:     time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			wantYears: 0, wantMonth: 0, wantDays: 1,
		},
		{
			name:      "Double borrow past a non-leap February",
			birth:     time.Date(1990, 1, 30, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			wantYears: 33, wantMonth: 0, wantDays: 30, // Feb 2023's 28 days are not enough on their own
		},
		{
			name:      "Double borrow past a leap February",
			birth:     time.Date(1992, 1, 31, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantYears: 32, wantMonth: 0, wantDays: 30,
		},
		{
			name:      "Double borrow across the year boundary",
			birth:     time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
			ref:       time.Date(2001, 3, 1, 0, 0, 0, 0, time.UTC),
			wantYears: 1, wantMonth: 1, wantDays: 29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, months, days := calendarDiff(tt.birth, tt.ref)
			assert.Equal(t, tt.wantYears, years, "years mismatch")
			assert.Equal(t, tt.wantMonth, months, "months mismatch")
			assert.Equal(t, tt.wantDays, days, "days mismatch")
			assert.GreaterOrEqual(t, days, 0)
			assert.GreaterOrEqual(t, months, 0)
			assert.Less(t, months, 12)
		})
	}
}

// TestNextBirthday covers standard dates, the on-the-day rollover, year
// boundaries, and leapling normalization.
func TestNextBirthday(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		ref   time.Time
		want  time.Time
		desc  string
	}{
		{
			name:  "Birthday later this year",
			birth: time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC),
			ref:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			desc:  "Dec 31 is after June 15, so this year's date stands",
		},
		{
			name:  "Birthday already passed this year",
			birth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			ref:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			desc:  "Jan 1 is before June 15, so next occurrence is 2026",
		},
		{
			name:  "Birthday is today rolls to next year",
			birth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			ref:   time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
			desc:  "The anniversary on the reference date itself counts as passed",
		},
		{
			name:  "Tomorrow",
			birth: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
			ref:   time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			desc:  "Strictly-after comparison keeps tomorrow's date",
		},
		{
			name:  "Leapling in a non-leap target year (Feb 29 -> Mar 1)",
			birth: time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			ref:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			desc:  "time.Date normalizes non-leap Feb 29 to Mar 1",
		},
		{
			name:  "Leapling in a leap year keeps Feb 29",
			birth: time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			ref:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			desc:  "In a leap year the birthday stays Feb 29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := nextBirthday(tt.birth, tt.ref)
			assert.Equal(t, tt.want, next, tt.desc)
			assert.True(t, next.After(tt.ref), "next birthday must be strictly after the reference date")
		})
	}
}

// TestValueIn checks the unit -> totals resolution, including the fractional
// year comparison.
func TestValueIn(t *testing.T) {
	snap := &AgeSnapshot{
		TotalDays:    7305, // 2000-01-01 .. 2020-01-01
		TotalMinutes: 7305 * 24 * 60,
		TotalSeconds: 7305 * 86400,
		Weeks:        7305 / 7,
	}

	assert.Equal(t, 7305.0, snap.valueIn(UnitDays))
	assert.Equal(t, 1043.0, snap.valueIn(UnitWeeks))
	assert.InDelta(t, 20.0, snap.valueIn(UnitYears), 0.001)
	assert.Equal(t, float64(7305*24*60), snap.valueIn(UnitMinutes))
	assert.Equal(t, float64(7305*86400), snap.valueIn(UnitSeconds))
}

// TestEvaluateMilestones_YearConversion verifies that year-based ETAs are
// exposed as whole days.
func TestEvaluateMilestones_YearConversion(t *testing.T) {
	snap := &AgeSnapshot{
		TotalDays:    7305,
		TotalMinutes: 7305 * 24 * 60,
		TotalSeconds: 7305 * 86400,
		Weeks:        7305 / 7,
	}

	milestones := evaluateMilestones(snap)

	var halfCentury *Milestone
	for i := range milestones {
		if milestones[i].Unit == UnitYears {
			halfCentury = &milestones[i]
		}
	}

	if assert.NotNil(t, halfCentury, "catalog must contain a year-based entry") {
		assert.Equal(t, StatusUpcoming, halfCentury.Status)
		if assert.NotNil(t, halfCentury.ETA) {
			// 30 remaining years at 365.25 days each, rounded up.
			assert.Equal(t, UnitDays, halfCentury.ETA.Unit)
			assert.Equal(t, 10958.0, halfCentury.ETA.Amount)
		}
	}
}
