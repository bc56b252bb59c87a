package domain

import "fmt"

// Faction is a named group of characters with a short lore summary
type Faction struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
}

// NewFaction creates a faction that has not been stored yet (ID 0)
func NewFaction(name, summary string) Faction {
	return Faction{Name: name, Summary: summary}
}

// String returns a one-line description of the faction
func (f Faction) String() string {
	return fmt.Sprintf("Faction [ID=%d, Name=%s]", f.ID, f.Name)
}
