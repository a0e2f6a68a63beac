// Package reconcile compares the roster files against the schedule-derived
// speaker records and reports name mismatches and coverage gaps. It is a
// report generator: it never mutates its inputs.
package reconcile

import (
	"maps"
	"slices"

	"github.com/gosimfoundation/rostermap/pkg/schedule"
)

// Mismatch records a speaker whose roster name disagrees with the name the
// schedule uses, in at least one language. Both values per language are
// carried so the report reads without cross-referencing the files.
type Mismatch struct {
	ID         string   `json:"id"`
	RosterEN   string   `json:"en_json,omitempty"`
	ScheduleEN string   `json:"en_schedule,omitempty"`
	RosterZH   string   `json:"zh_json,omitempty"`
	ScheduleZH string   `json:"zh_schedule,omitempty"`
	Sessions   []string `json:"sessions"`
}

// MissingSpeaker records a speaker present on one side only.
type MissingSpeaker struct {
	ID       string   `json:"id"`
	EN       string   `json:"en_name,omitempty"`
	ZH       string   `json:"zh_name,omitempty"`
	Sessions []string `json:"sessions,omitempty"`
}

// Report is the full reconciliation result. All three lists are sorted by
// speaker id.
type Report struct {
	Mismatches          []Mismatch       `json:"mismatches"`
	MissingFromSchedule []MissingSpeaker `json:"missing_from_schedule"`
	MissingFromSpeakers []MissingSpeaker `json:"missing_from_speakers"`

	RosterENCount int `json:"roster_en_count"`
	RosterZHCount int `json:"roster_zh_count"`
	ScheduleCount int `json:"schedule_count"`
}

// HasFindings reports whether the reconciliation surfaced anything.
func (r *Report) HasFindings() bool {
	return len(r.Mismatches) > 0 ||
		len(r.MissingFromSchedule) > 0 ||
		len(r.MissingFromSpeakers) > 0
}

// Reconcile compares the per-language roster name indexes against the
// schedule records. A name mismatch is flagged only when both the roster
// value and the schedule value for that language are non-empty and differ.
func Reconcile(enNames, zhNames map[string]string, records map[string]*schedule.Record) *Report {
	report := &Report{
		RosterENCount: len(enNames),
		RosterZHCount: len(zhNames),
		ScheduleCount: len(records),
	}

	rosterIDs := make(map[string]struct{}, len(enNames)+len(zhNames))
	for id := range enNames {
		rosterIDs[id] = struct{}{}
	}
	for id := range zhNames {
		rosterIDs[id] = struct{}{}
	}

	for _, id := range slices.Sorted(maps.Keys(rosterIDs)) {
		rosterEN := enNames[id]
		rosterZH := zhNames[id]

		rec, ok := records[id]
		if !ok {
			report.MissingFromSchedule = append(report.MissingFromSchedule, MissingSpeaker{
				ID: id,
				EN: rosterEN,
				ZH: rosterZH,
			})
			continue
		}

		enMismatch := rosterEN != "" && rec.EN != "" && rosterEN != rec.EN
		zhMismatch := rosterZH != "" && rec.ZH != "" && rosterZH != rec.ZH

		if enMismatch || zhMismatch {
			report.Mismatches = append(report.Mismatches, Mismatch{
				ID:         id,
				RosterEN:   rosterEN,
				ScheduleEN: rec.EN,
				RosterZH:   rosterZH,
				ScheduleZH: rec.ZH,
				Sessions:   slices.Clone(rec.Sessions),
			})
		}
	}

	for _, id := range slices.Sorted(maps.Keys(records)) {
		if _, ok := rosterIDs[id]; ok {
			continue
		}
		rec := records[id]
		report.MissingFromSpeakers = append(report.MissingFromSpeakers, MissingSpeaker{
			ID:       id,
			EN:       rec.EN,
			ZH:       rec.ZH,
			Sessions: slices.Clone(rec.Sessions),
		})
	}

	return report
}
