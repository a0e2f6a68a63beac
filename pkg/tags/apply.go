package tags

import (
	"slices"

	"github.com/gosimfoundation/rostermap/pkg/roster"
)

// Change records one speaker whose tags were replaced.
type Change struct {
	ID  string   `json:"id"`
	Old []string `json:"old"`
	New []string `json:"new"`
}

// Result summarizes one Apply run over a roster document.
type Result struct {
	Updated      int      `json:"updated"`
	Changes      []Change `json:"changes,omitempty"`
	NotInMapping []string `json:"not_in_mapping,omitempty"`
}

// Apply merges the mapping into the document in place. A speaker's tags are
// replaced only when the sorted existing list differs from the mapped list;
// unchanged entries are left alone so a second run is a no-op. Speakers
// absent from the mapping are collected in NotInMapping unless their id is
// a virtual event id.
func Apply(doc *roster.Document, m Mapping) Result {
	var result Result

	for i := range doc.Speakers {
		speaker := &doc.Speakers[i]

		newTags, ok := m[speaker.ID]
		if !ok {
			if !IsVirtual(speaker.ID) {
				result.NotInMapping = append(result.NotInMapping, speaker.ID)
			}
			continue
		}

		if sortedEqual(speaker.Tags, newTags) {
			continue
		}

		result.Changes = append(result.Changes, Change{
			ID:  speaker.ID,
			Old: speaker.Tags,
			New: slices.Clone(newTags),
		})
		speaker.Tags = slices.Clone(newTags)
		result.Updated++
	}

	return result
}

// sortedEqual compares two tag lists ignoring order.
func sortedEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(slices.Sorted(slices.Values(a)), slices.Sorted(slices.Values(b)))
}
