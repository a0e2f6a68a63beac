// Package tags builds the curated speaker → event-tag mapping and applies
// it to roster documents.
package tags

import (
	"slices"
	"strings"
)

// Mapping is a speaker id → sorted, de-duplicated tag list.
type Mapping map[string][]string

// Build folds an ordered sequence of curated lists into a Mapping. A
// speaker appearing in several lists accumulates every corresponding tag.
// Ids are whitespace-trimmed; each speaker's tags come out sorted and
// unique.
func Build(lists []List) Mapping {
	m := make(Mapping)
	for _, list := range lists {
		for _, id := range list.IDs {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if !slices.Contains(m[id], list.Tag) {
				m[id] = append(m[id], list.Tag)
			}
		}
	}
	for id := range m {
		slices.Sort(m[id])
	}
	return m
}

// Stats summarizes a Mapping for reporting.
type Stats struct {
	Speakers  int `json:"speakers"`
	MultiTag  int `json:"multi_tag"`
	SingleTag int `json:"single_tag"`
}

// Summarize counts how many speakers carry one tag versus several.
func (m Mapping) Summarize() Stats {
	s := Stats{Speakers: len(m)}
	for _, tags := range m {
		if len(tags) > 1 {
			s.MultiTag++
		}
	}
	s.SingleTag = s.Speakers - s.MultiTag
	return s
}

// IDs returns the mapped speaker ids in sorted order.
func (m Mapping) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
