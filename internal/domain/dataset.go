package domain

// Dataset is a full set of rows for both tables, in insertion order
type Dataset struct {
	Factions   []Faction   `json:"factions"`
	Characters []Character `json:"characters"`
}

// CharactersOf returns the characters whose FactionID matches id
func (d *Dataset) CharactersOf(id int64) []Character {
	var out []Character
	for _, c := range d.Characters {
		if c.FactionID == id {
			out = append(out, c)
		}
	}
	return out
}
