// Package schedule models the bilingual schedule file
// (ScheduleBilingual.json) and flattens its sessions into per-speaker
// records for reconciliation against the roster files.
package schedule

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"github.com/gosimfoundation/rostermap/pkg/errors"
	"github.com/gosimfoundation/rostermap/pkg/roster"
)

// UnknownSession is the title placeholder used when a session has no
// usable English title.
const UnknownSession = "Unknown Session"

// SpeakerRef is an embedded speaker reference inside a session.
type SpeakerRef struct {
	ID   string      `json:"id"`
	Name roster.Text `json:"name"`
}

// Session is one schedule entry within a category.
type Session struct {
	Title    roster.Text  `json:"title"`
	Speakers []SpeakerRef `json:"speakers"`
}

// Schedule is the top-level shape of the schedule file: sessions grouped
// by category (track) name.
type Schedule struct {
	Sessions map[string][]Session `json:"sessions"`
}

// Record accumulates what the schedule says about a single speaker: the
// first-seen name per language and every "category: title" the speaker
// appears under, in encounter order.
type Record struct {
	EN       string   `json:"en_name,omitempty"`
	ZH       string   `json:"zh_name,omitempty"`
	Sessions []string `json:"sessions"`
}

// Load reads and parses a schedule file.
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var s Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return &s, nil
}

// Records flattens every session across every category into an id → Record
// map. Categories are visited in sorted name order so the session lists are
// deterministic; within a category, sessions keep file order. A speaker
// reference without an id is ignored. The first non-empty name seen for a
// language wins; later empty names never clear it.
func Records(s *Schedule) map[string]*Record {
	records := make(map[string]*Record)
	if s == nil {
		return records
	}

	for _, category := range slices.Sorted(maps.Keys(s.Sessions)) {
		for _, session := range s.Sessions[category] {
			descriptor := category + ": " + sessionTitle(session.Title)

			for _, ref := range session.Speakers {
				if ref.ID == "" {
					continue
				}

				rec := records[ref.ID]
				if rec == nil {
					rec = &Record{}
					records[ref.ID] = rec
				}

				if en := ref.Name.Get(roster.LangEN); en != "" && rec.EN == "" {
					rec.EN = en
				}
				// A plain-string name is English only; it must not
				// leak into the Chinese slot.
				if ref.Name.IsLocalized() {
					if zh := ref.Name.Get(roster.LangZH); zh != "" && rec.ZH == "" {
						rec.ZH = zh
					}
				}

				rec.Sessions = append(rec.Sessions, descriptor)
			}
		}
	}
	return records
}

// sessionTitle resolves a session title to its English rendering. Only a
// missing title, or a language map with no usable English variant, falls
// back to UnknownSession; a plain title that is present but empty stays
// empty.
func sessionTitle(title roster.Text) string {
	if title.IsZero() {
		return UnknownSession
	}
	if !title.IsLocalized() {
		return title.Get(roster.LangEN)
	}
	if en := title.Get(roster.LangEN); en != "" {
		return en
	}
	return UnknownSession
}
