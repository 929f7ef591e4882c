package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/tartampluch/go-ageclock/internal/config"
)

// ParseDate parses a calendar date from any of the layouts the vCard
// pipeline accepts. Any time-of-day component is discarded; the result is
// always midnight UTC.
func ParseDate(value string) (time.Time, error) {
	layouts := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return midnightUTC(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// midnightUTC normalizes an instant to its calendar date at midnight UTC.
// Birthdays are defined by the local calendar date of the person, so the
// original wall-clock offset carries no meaning here.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetweenCeil counts the days from one instant to a later one, rounding
// partial days up. With midnight-normalized inputs the result is exact.
func daysBetweenCeil(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
