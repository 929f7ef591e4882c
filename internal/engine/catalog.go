package engine

import "github.com/tartampluch/go-ageclock/internal/config"

// catalogEntry is one fixed milestone threshold. The catalog is plain data;
// unit resolution happens in a single switch at evaluation time.
type catalogEntry struct {
	label      string
	descriptor string
	unit       Unit
	target     float64
}

// milestoneCatalog is the fixed set of thresholds evaluated for every
// snapshot. Slice order is display order.
var milestoneCatalog = []catalogEntry{
	{
		label:      "10,000 days on Earth",
		descriptor: "Five figures of sunrises, a bit past age 27",
		unit:       UnitDays,
		target:     10_000,
	},
	{
		label:      "1,000 weeks milestone",
		descriptor: "A thousand seven-day cycles, just past age 19",
		unit:       UnitWeeks,
		target:     1_000,
	},
	{
		label:      "Half-century marker",
		descriptor: "Fifty trips around the sun",
		unit:       UnitYears,
		target:     50,
	},
	{
		label:      "One billion heartbeats (estimated)",
		descriptor: "Assuming an average of 80 beats per minute",
		unit:       UnitDays,
		target:     1_000_000_000 / float64(config.HeartbeatsPerDay),
	},
	{
		label:      "One gigasecond old",
		descriptor: "1,000,000,000 seconds, about 31.7 years",
		unit:       UnitSeconds,
		target:     1_000_000_000,
	},
	{
		label:      "20 million minutes",
		descriptor: "Around 38 years, counted the long way",
		unit:       UnitMinutes,
		target:     20_000_000,
	},
}
