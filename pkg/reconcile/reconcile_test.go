package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosimfoundation/rostermap/pkg/reconcile"
	"github.com/gosimfoundation/rostermap/pkg/schedule"
)

func TestReconcileMismatch(t *testing.T) {
	// Roster says "Alice W.", the schedule says "Alice Wu".
	enNames := map[string]string{"alice": "Alice W."}
	zhNames := map[string]string{}
	records := map[string]*schedule.Record{
		"alice": {EN: "Alice Wu", Sessions: []string{"ai-next: Fireside Chat"}},
	}

	report := reconcile.Reconcile(enNames, zhNames, records)

	require.Len(t, report.Mismatches, 1)
	m := report.Mismatches[0]
	assert.Equal(t, "alice", m.ID)
	assert.Equal(t, "Alice W.", m.RosterEN)
	assert.Equal(t, "Alice Wu", m.ScheduleEN)
	assert.Equal(t, []string{"ai-next: Fireside Chat"}, m.Sessions)

	assert.Empty(t, report.MissingFromSchedule)
	assert.Empty(t, report.MissingFromSpeakers)
	assert.True(t, report.HasFindings())
}

func TestReconcileLanguageSymmetry(t *testing.T) {
	// English names agree; only the Chinese name differs. The mismatch
	// must still be reported.
	enNames := map[string]string{"wu-li": "Alice Wu"}
	zhNames := map[string]string{"wu-li": "吴丽"}
	records := map[string]*schedule.Record{
		"wu-li": {EN: "Alice Wu", ZH: "吴莉", Sessions: []string{"t: S"}},
	}

	report := reconcile.Reconcile(enNames, zhNames, records)

	require.Len(t, report.Mismatches, 1)
	m := report.Mismatches[0]
	assert.Equal(t, "吴丽", m.RosterZH)
	assert.Equal(t, "吴莉", m.ScheduleZH)
}

func TestReconcileEmptyNamesNeverMismatch(t *testing.T) {
	tests := []struct {
		name     string
		rosterEN string
		schedEN  string
	}{
		{name: "roster empty", rosterEN: "", schedEN: "Alice Wu"},
		{name: "schedule empty", rosterEN: "Alice Wu", schedEN: ""},
		{name: "both empty", rosterEN: "", schedEN: ""},
		{name: "equal", rosterEN: "Alice Wu", schedEN: "Alice Wu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := reconcile.Reconcile(
				map[string]string{"x": tt.rosterEN},
				map[string]string{},
				map[string]*schedule.Record{"x": {EN: tt.schedEN}},
			)
			assert.Empty(t, report.Mismatches)
		})
	}
}

func TestReconcileMissingFromSchedule(t *testing.T) {
	enNames := map[string]string{"ghost": "Ghost Speaker"}
	zhNames := map[string]string{"ghost": "幽灵"}

	report := reconcile.Reconcile(enNames, zhNames, map[string]*schedule.Record{})

	require.Len(t, report.MissingFromSchedule, 1)
	s := report.MissingFromSchedule[0]
	assert.Equal(t, "ghost", s.ID)
	assert.Equal(t, "Ghost Speaker", s.EN)
	assert.Equal(t, "幽灵", s.ZH)
}

func TestReconcileMissingFromSpeakers(t *testing.T) {
	records := map[string]*schedule.Record{
		"stray": {
			EN:       "Stray Speaker",
			Sessions: []string{"plenary: Opening", "ai-next: Closing"},
		},
	}

	report := reconcile.Reconcile(map[string]string{}, map[string]string{}, records)

	require.Len(t, report.MissingFromSpeakers, 1)
	s := report.MissingFromSpeakers[0]
	assert.Equal(t, "stray", s.ID)
	assert.Equal(t, "Stray Speaker", s.EN)
	assert.Equal(t, []string{"plenary: Opening", "ai-next: Closing"}, s.Sessions)
}

func TestReconcileUnionOfRosterIDs(t *testing.T) {
	// An id present only in the Chinese roster still counts as a roster id.
	enNames := map[string]string{"a": "A"}
	zhNames := map[string]string{"b": "乙"}

	report := reconcile.Reconcile(enNames, zhNames, map[string]*schedule.Record{})

	require.Len(t, report.MissingFromSchedule, 2)
	assert.Equal(t, "a", report.MissingFromSchedule[0].ID)
	assert.Equal(t, "b", report.MissingFromSchedule[1].ID)
}

func TestReconcileSortedOutput(t *testing.T) {
	enNames := map[string]string{"zeta": "Z", "alpha": "A", "mid": "M"}
	records := map[string]*schedule.Record{
		"stray-b": {}, "stray-a": {},
	}

	report := reconcile.Reconcile(enNames, map[string]string{}, records)

	var missingIDs []string
	for _, s := range report.MissingFromSchedule {
		missingIDs = append(missingIDs, s.ID)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, missingIDs)

	var strayIDs []string
	for _, s := range report.MissingFromSpeakers {
		strayIDs = append(strayIDs, s.ID)
	}
	assert.Equal(t, []string{"stray-a", "stray-b"}, strayIDs)
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	records := map[string]*schedule.Record{
		"alice": {EN: "Alice Wu", Sessions: []string{"t: S"}},
	}

	report := reconcile.Reconcile(map[string]string{"alice": "Alice W."}, nil, records)

	require.Len(t, report.Mismatches, 1)
	report.Mismatches[0].Sessions[0] = "mutated"
	assert.Equal(t, "t: S", records["alice"].Sessions[0])
}

func TestReconcileCounts(t *testing.T) {
	report := reconcile.Reconcile(
		map[string]string{"a": "A", "b": "B"},
		map[string]string{"a": "甲"},
		map[string]*schedule.Record{"a": {}},
	)
	assert.Equal(t, 2, report.RosterENCount)
	assert.Equal(t, 1, report.RosterZHCount)
	assert.Equal(t, 1, report.ScheduleCount)
}
