package domain

// ReportKind selects which columns a report carries
type ReportKind string

const (
	ReportFactions   ReportKind = "factions"   // faction table
	ReportCharacters ReportKind = "characters" // character table, raw faction ID
	ReportRoster     ReportKind = "roster"     // characters joined with faction name
)

// Report is a titled, ordered result set ready for rendering.
// Only the slice matching Kind is populated.
type Report struct {
	Kind       ReportKind  `json:"kind"`
	Title      string      `json:"title"`
	Factions   []Faction   `json:"factions,omitempty"`
	Characters []Character `json:"characters,omitempty"`
}

// NewFactionReport wraps factions in a report
func NewFactionReport(title string, factions []Faction) *Report {
	return &Report{Kind: ReportFactions, Title: title, Factions: factions}
}

// NewCharacterReport wraps unjoined characters in a report
func NewCharacterReport(title string, characters []Character) *Report {
	return &Report{Kind: ReportCharacters, Title: title, Characters: characters}
}

// NewRosterReport wraps joined characters in a report
func NewRosterReport(title string, characters []Character) *Report {
	return &Report{Kind: ReportRoster, Title: title, Characters: characters}
}

// Len returns the number of rows in the report
func (r *Report) Len() int {
	if r.Kind == ReportFactions {
		return len(r.Factions)
	}
	return len(r.Characters)
}

// Empty reports whether there are no rows to show
func (r *Report) Empty() bool {
	return r.Len() == 0
}
