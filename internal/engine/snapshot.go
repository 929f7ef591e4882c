package engine

import "time"

// Unit identifies which elapsed-time total a milestone is measured against.
type Unit string

// Milestone units.
const (
	UnitDays    Unit = "days"
	UnitWeeks   Unit = "weeks"
	UnitYears   Unit = "years"
	UnitMinutes Unit = "minutes"
	UnitSeconds Unit = "seconds"
)

// MilestoneStatus distinguishes thresholds already crossed from pending ones.
type MilestoneStatus string

const (
	StatusReached  MilestoneStatus = "reached"
	StatusUpcoming MilestoneStatus = "upcoming"
)

// MilestoneETA is the remaining amount until an upcoming milestone.
// Year-based milestones expose their ETA in days so it stays a plain
// duration the presentation layer can render.
type MilestoneETA struct {
	Amount float64
	Unit   Unit
}

// Milestone is one evaluated catalog entry.
type Milestone struct {
	// Label is the short display title of the catalog entry.
	Label string

	// Descriptor is the static secondary text tied to the entry.
	Descriptor string

	// Unit selects the snapshot total the entry is compared against.
	Unit Unit

	// Target is the numeric threshold expressed in Unit.
	Target float64

	// Status is reached when the current value meets or exceeds Target.
	Status MilestoneStatus

	// ETA is set only while the milestone is upcoming.
	ETA *MilestoneETA
}

// AgeSnapshot is the complete, immutable result of one Calculate invocation.
// All fields are derived; a snapshot has no identity and is never mutated
// after construction.
type AgeSnapshot struct {
	// Calendar-accurate decomposition of the elapsed interval.
	// Months is always in [0,11]; Days is the non-negative remainder after
	// borrowing from the month preceding the reference date.
	Years  int
	Months int
	Days   int

	// Floor-truncated raw counts of whole elapsed units since birth.
	// Each unit floors the one below it, so the chain never rounds up.
	TotalDays    int64
	TotalHours   int64
	TotalMinutes int64
	TotalSeconds int64

	// Weeks is TotalDays / 7, floored.
	Weeks int64

	// NextBirthday is the next anniversary strictly after the reference date.
	NextBirthday time.Time

	// DaysUntilNextBirthday counts whole days from the reference date to
	// NextBirthday.
	DaysUntilNextBirthday int

	// Milestones holds one evaluated entry per catalog row, in catalog order.
	Milestones []Milestone
}
