package domain

import "fmt"

// Character belongs to exactly one faction and carries combat ratings.
//
// Attack and Defense are nil when the stored column is NULL. FactionName is
// only populated by reads that join against the faction table; it is never
// persisted.
type Character struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Attack      *float64 `json:"attack"`
	Defense     *float64 `json:"defense"`
	FactionID   int64    `json:"faction_id"`
	FactionName string   `json:"faction_name,omitempty"`
}

// NewCharacter creates a character that has not been stored yet (ID 0)
func NewCharacter(name string, attack, defense float64, factionID int64) Character {
	return Character{
		Name:      name,
		Attack:    &attack,
		Defense:   &defense,
		FactionID: factionID,
	}
}

// AttackValue returns the attack rating, or 0 when unset
func (c Character) AttackValue() float64 {
	if c.Attack == nil {
		return 0
	}
	return *c.Attack
}

// DefenseValue returns the defense rating, or 0 when unset
func (c Character) DefenseValue() float64 {
	if c.Defense == nil {
		return 0
	}
	return *c.Defense
}

// String prefers the joined faction name over the raw faction ID
func (c Character) String() string {
	if c.FactionName != "" {
		return fmt.Sprintf("Character [ID=%d, Name=%s, Attack=%.1f, Defense=%.1f, Faction=%s]",
			c.ID, c.Name, c.AttackValue(), c.DefenseValue(), c.FactionName)
	}
	return fmt.Sprintf("Character [ID=%d, Name=%s, Attack=%.1f, Defense=%.1f, FactionID=%d]",
		c.ID, c.Name, c.AttackValue(), c.DefenseValue(), c.FactionID)
}
