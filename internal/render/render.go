package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/tartampluch/go-ageclock/internal/config"
	"github.com/tartampluch/go-ageclock/internal/engine"
)

// FormatDayCount decomposes a day count into approximate years, months and a
// rounded remainder of days (mean-length year and month). Zero-valued
// segments are omitted; an empty result reads as "Now".
func (r *Renderer) FormatDayCount(days int) string {
	if days <= 0 {
		return r.Msg(config.TKeyNow)
	}

	years := int(float64(days) / config.DaysPerYear)
	rem := float64(days) - float64(years)*config.DaysPerYear
	months := int(rem / config.DaysPerMonth)
	rem -= float64(months) * config.DaysPerMonth
	d := int(math.Round(rem))

	return r.formatSegments(years, months, d)
}

// FormatAge renders the exact calendar decomposition of a snapshot.
func (r *Renderer) FormatAge(snap *engine.AgeSnapshot) string {
	return r.formatSegments(snap.Years, snap.Months, snap.Days)
}

// formatSegments joins non-zero year/month/day segments with the standard
// separator, falling back to "Now" when everything is zero.
func (r *Renderer) formatSegments(years, months, days int) string {
	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", years, r.Msg(config.TKeyUnitYears)))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", months, r.Msg(config.TKeyUnitMonths)))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", days, r.Msg(config.TKeyUnitDays)))
	}
	if len(parts) == 0 {
		return r.Msg(config.TKeyNow)
	}
	return strings.Join(parts, config.SegmentSeparator)
}

// FormatCount renders an integer with locale-aware thousands separators.
func (r *Renderer) FormatCount(n int64) string {
	return r.printer.Sprintf("%d", n)
}

// FormatMilestone renders one evaluated milestone as a single report line.
func (r *Renderer) FormatMilestone(m *engine.Milestone) string {
	status := r.Msg(config.TKeyStatusReached)
	if m.Status == engine.StatusUpcoming {
		status = r.Msg(config.TKeyStatusUpcoming)
	}

	line := fmt.Sprintf("[%s] %s", status, m.Label)
	if m.Status == engine.StatusUpcoming {
		line += fmt.Sprintf(" (%s %s)", r.Msg(config.TKeyIn), r.FormatDayCount(m.EtaInDays()))
	}
	return line
}

// FormatSnapshot renders the full text report consumed by the CLI.
func (r *Renderer) FormatSnapshot(snap *engine.AgeSnapshot) string {
	var b strings.Builder

	writeLine := func(key, value string) {
		b.WriteString(r.Msg(key))
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	}

	writeLine(config.TKeyLblAge, r.FormatAge(snap))
	writeLine(config.TKeyLblDays, r.FormatCount(snap.TotalDays))
	writeLine(config.TKeyLblWeeks, r.FormatCount(snap.Weeks))
	writeLine(config.TKeyLblHours, r.FormatCount(snap.TotalHours))
	writeLine(config.TKeyLblMinutes, r.FormatCount(snap.TotalMinutes))
	writeLine(config.TKeyLblSeconds, r.FormatCount(snap.TotalSeconds))
	writeLine(config.TKeyLblNextBday, fmt.Sprintf("%s (%s %s)",
		snap.NextBirthday.Format(config.DateFormatFullDash),
		r.Msg(config.TKeyIn),
		r.FormatDayCount(snap.DaysUntilNextBirthday),
	))

	b.WriteString(r.Msg(config.TKeyLblMilestones))
	b.WriteString(":\n")
	for i := range snap.Milestones {
		b.WriteString("  ")
		b.WriteString(r.FormatMilestone(&snap.Milestones[i]))
		b.WriteByte('\n')
	}

	return b.String()
}
