package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-ageclock/internal/config"
)

// BuildCalendar renders a snapshot as an iCalendar feed: one all-day event
// for the next birthday and one per upcoming milestone, placed at the date
// the threshold is projected to be crossed.
//
// name labels the event summaries; referenceDate anchors the milestone
// projections and must be the date the snapshot was calculated against.
func BuildCalendar(name string, snap *AgeSnapshot, referenceDate time.Time) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Stamp in UTC; the events themselves are all-day calendar dates.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(referenceDate.UTC())

	ref := midnightUTC(referenceDate)

	// Next birthday. AgeNext is the age turned at that anniversary.
	ageNext := snap.Years + 1
	summary := fmt.Sprintf(config.FormatBirthdaySummary, name, ageNext)
	events := []*ical.Event{
		newAllDayEvent(eventUID(name, snap.NextBirthday), summary, "", snap.NextBirthday),
	}

	// Upcoming milestones, projected forward from the reference date.
	for i := range snap.Milestones {
		m := &snap.Milestones[i]
		if m.Status != StatusUpcoming {
			continue
		}
		when := ref.AddDate(0, 0, m.EtaInDays())
		events = append(events, newAllDayEvent(
			eventUID(m.Label, when),
			fmt.Sprintf(config.FormatMilestoneSummary, name, m.Label),
			m.Descriptor,
			when,
		))
	}

	for _, e := range events {
		e.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, e.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyEvents, len(events),
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// newAllDayEvent assembles one VEVENT with a DATE-valued start.
func newAllDayEvent(uid, summary, description string, date time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, uid)
	event.Props.SetText(config.PropSummary, summary)
	if description != "" {
		event.Props.SetText(config.PropDesc, description)
	}

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(date)
	event.Props.Set(dtStartProp)

	return event
}

// eventUID derives a deterministic identifier so repeated exports stay
// stable in calendar clients.
func eventUID(seed string, date time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, seed, date.Format(config.DateFormatFullDash), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID,
		fmt.Sprintf("%x", hash[:config.UIDHashLength]),
		date.Format(config.DateFormatFullBasic),
		config.ICalDomain,
	)
}
