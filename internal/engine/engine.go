package engine

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/tartampluch/go-ageclock/internal/config"
)

// Sentinel errors surfaced by ParseDate and Calculate.
var (
	ErrInvalidDate  = errors.New(config.ErrInvalidDate)
	ErrInvalidRange = errors.New(config.ErrInvalidRange)
)

// Calculate derives a full AgeSnapshot from a birth date and a reference
// date. Both inputs are treated as pure calendar dates; any time-of-day
// component is discarded before computation.
//
// It fails with ErrInvalidDate when either input is the zero time, and with
// ErrInvalidRange when the birth date lies after the reference date. There
// are no partial results.
func Calculate(birthDate, referenceDate time.Time) (*AgeSnapshot, error) {
	if birthDate.IsZero() || referenceDate.IsZero() {
		return nil, ErrInvalidDate
	}

	birth := midnightUTC(birthDate)
	ref := midnightUTC(referenceDate)

	if birth.After(ref) {
		return nil, ErrInvalidRange
	}

	snap := &AgeSnapshot{}
	snap.Years, snap.Months, snap.Days = calendarDiff(birth, ref)

	// Raw totals form a strict truncation chain: each unit floors the one
	// below it, never rounding independently.
	diffMs := ref.Sub(birth).Milliseconds()
	snap.TotalSeconds = diffMs / 1000
	snap.TotalMinutes = snap.TotalSeconds / 60
	snap.TotalHours = snap.TotalMinutes / 60
	snap.TotalDays = snap.TotalHours / 24
	snap.Weeks = snap.TotalDays / 7

	snap.NextBirthday = nextBirthday(birth, ref)
	snap.DaysUntilNextBirthday = daysBetweenCeil(ref, snap.NextBirthday)

	snap.Milestones = evaluateMilestones(snap)

	slog.Debug(config.MsgSnapshotDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDOB, birth.Format(config.DateFormatFullDash),
		config.LogKeyRef, ref.Format(config.DateFormatFullDash),
	)
	return snap, nil
}

// calendarDiff decomposes the interval between two midnight dates into
// calendar years, months and days. A negative day count borrows the actual
// length of the month preceding the reference month, stepping back one more
// month when a short February leaves the count still negative, so days never
// goes below zero.
func calendarDiff(birth, ref time.Time) (years, months, days int) {
	years = ref.Year() - birth.Year()
	months = int(ref.Month()) - int(birth.Month())
	days = ref.Day() - birth.Day()

	// Day 0 of the reference month resolves to the last day of the month
	// before it.
	prev := time.Date(ref.Year(), ref.Month(), 0, 0, 0, 0, 0, time.UTC)
	for days < 0 {
		months--
		days += prev.Day()
		prev = time.Date(prev.Year(), prev.Month(), 0, 0, 0, 0, 0, time.UTC)
	}

	if months < 0 {
		years--
		months += 12
	}

	return years, months, days
}

// nextBirthday returns the next anniversary strictly after ref. An
// anniversary falling on ref itself rolls over to the following year, so
// "days until" on the birthday reads as a full year rather than zero.
//
// Feb 29 births normalize to Mar 1 in non-leap target years: time.Date
// carries the overflow forward.
func nextBirthday(birth, ref time.Time) time.Time {
	candidate := time.Date(ref.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if !candidate.After(ref) {
		candidate = time.Date(ref.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

// evaluateMilestones resolves every catalog entry against the snapshot
// totals. Entries keep catalog order; they are never sorted by progress.
func evaluateMilestones(snap *AgeSnapshot) []Milestone {
	out := make([]Milestone, 0, len(milestoneCatalog))

	for _, entry := range milestoneCatalog {
		m := Milestone{
			Label:      entry.label,
			Descriptor: entry.descriptor,
			Unit:       entry.unit,
			Target:     entry.target,
		}

		value := snap.valueIn(entry.unit)
		if value >= entry.target {
			m.Status = StatusReached
		} else {
			m.Status = StatusUpcoming
			remaining := entry.target - value
			if remaining < 0 {
				remaining = 0
			}
			eta := &MilestoneETA{Amount: remaining, Unit: entry.unit}
			if entry.unit == UnitYears {
				// Year ETAs are exposed as whole days so they stay a
				// duration-friendly quantity.
				eta.Amount = math.Ceil(remaining * config.DaysPerYear)
				eta.Unit = UnitDays
			}
			m.ETA = eta
		}

		out = append(out, m)
	}

	return out
}

// valueIn selects the comparison value for a milestone unit. Years compare
// fractionally (elapsed days over the mean year length) so a threshold does
// not flip a whole calendar year early or late.
func (s *AgeSnapshot) valueIn(u Unit) float64 {
	switch u {
	case UnitDays:
		return float64(s.TotalDays)
	case UnitWeeks:
		return float64(s.Weeks)
	case UnitYears:
		return float64(s.TotalDays) / config.DaysPerYear
	case UnitMinutes:
		return float64(s.TotalMinutes)
	case UnitSeconds:
		return float64(s.TotalSeconds)
	}
	return 0
}

// EtaInDays converts an upcoming milestone's remaining amount into whole
// days, rounding up. Reached milestones report zero.
func (m *Milestone) EtaInDays() int {
	if m.ETA == nil {
		return 0
	}
	switch m.ETA.Unit {
	case UnitDays:
		return int(math.Ceil(m.ETA.Amount))
	case UnitWeeks:
		return int(math.Ceil(m.ETA.Amount * 7))
	case UnitMinutes:
		return int(math.Ceil(m.ETA.Amount / (60 * 24)))
	case UnitSeconds:
		return int(math.Ceil(m.ETA.Amount / 86400))
	}
	return 0
}
