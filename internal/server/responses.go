package server

import (
	"github.com/tartampluch/go-ageclock/internal/config"
	"github.com/tartampluch/go-ageclock/internal/engine"
)

// SnapshotResponse is the HTTP DTO for an engine.AgeSnapshot.
type SnapshotResponse struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`

	TotalDays    int64 `json:"total_days"`
	TotalHours   int64 `json:"total_hours"`
	TotalMinutes int64 `json:"total_minutes"`
	TotalSeconds int64 `json:"total_seconds"`
	Weeks        int64 `json:"weeks"`

	NextBirthday          string `json:"next_birthday"`
	DaysUntilNextBirthday int    `json:"days_until_next_birthday"`

	Milestones []MilestoneResponse `json:"milestones"`
}

// MilestoneResponse is the HTTP DTO for one evaluated milestone.
type MilestoneResponse struct {
	Label      string  `json:"label"`
	Descriptor string  `json:"descriptor"`
	Unit       string  `json:"unit"`
	Target     float64 `json:"target"`
	Status     string  `json:"status"`

	// ETA is present only while the milestone is upcoming.
	ETA *ETAResponse `json:"eta,omitempty"`
}

// ETAResponse carries the remaining amount until an upcoming milestone.
type ETAResponse struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ErrorResponse is the JSON body returned on validation failures.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Response mapping functions - convert engine values to HTTP DTOs

func toSnapshotResponse(snap *engine.AgeSnapshot) *SnapshotResponse {
	resp := &SnapshotResponse{
		Years:                 snap.Years,
		Months:                snap.Months,
		Days:                  snap.Days,
		TotalDays:             snap.TotalDays,
		TotalHours:            snap.TotalHours,
		TotalMinutes:          snap.TotalMinutes,
		TotalSeconds:          snap.TotalSeconds,
		Weeks:                 snap.Weeks,
		NextBirthday:          snap.NextBirthday.Format(config.DateFormatFullDash),
		DaysUntilNextBirthday: snap.DaysUntilNextBirthday,
		Milestones:            make([]MilestoneResponse, 0, len(snap.Milestones)),
	}

	for _, m := range snap.Milestones {
		mr := MilestoneResponse{
			Label:      m.Label,
			Descriptor: m.Descriptor,
			Unit:       string(m.Unit),
			Target:     m.Target,
			Status:     string(m.Status),
		}
		if m.ETA != nil {
			mr.ETA = &ETAResponse{Amount: m.ETA.Amount, Unit: string(m.ETA.Unit)}
		}
		resp.Milestones = append(resp.Milestones, mr)
	}

	return resp
}
