package domain

import "testing"

func TestReportLen(t *testing.T) {
	t.Run("faction report counts factions", func(t *testing.T) {
		r := NewFactionReport("Factions", []Faction{{ID: 1}, {ID: 2}})
		if r.Kind != ReportFactions {
			t.Errorf("expected kind %s, got %s", ReportFactions, r.Kind)
		}
		if r.Len() != 2 {
			t.Errorf("expected 2 rows, got %d", r.Len())
		}
	})

	t.Run("roster report counts characters", func(t *testing.T) {
		r := NewRosterReport("Roster", []Character{{ID: 1}})
		if r.Kind != ReportRoster {
			t.Errorf("expected kind %s, got %s", ReportRoster, r.Kind)
		}
		if r.Len() != 1 {
			t.Errorf("expected 1 row, got %d", r.Len())
		}
	})

	t.Run("empty character report", func(t *testing.T) {
		r := NewCharacterReport("Characters", nil)
		if !r.Empty() {
			t.Error("expected report to be empty")
		}
	})
}
