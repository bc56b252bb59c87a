package sqlite

import (
	"database/sql"

	"forhonor/internal/domain"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull stores empty strings as NULL
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullToFloatPtr converts sql.NullFloat64 to *float64
func nullToFloatPtr(nf sql.NullFloat64) *float64 {
	if nf.Valid {
		v := nf.Float64
		return &v
	}
	return nil
}

// floatPtrToNull converts *float64 to sql.NullFloat64
func floatPtrToNull(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// nullToInt64 maps NULL to 0, which is never a valid row ID
func nullToInt64(ni sql.NullInt64) int64 {
	if ni.Valid {
		return ni.Int64
	}
	return 0
}

// int64ToNull stores 0 as NULL
func int64ToNull(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}

// ============================================================================
// Row Scanners
// ============================================================================
//
// Column order must match between the *Columns constants and scanArgs().

// factionRow holds all columns from a faction query for scanning
type factionRow struct {
	ID      int64
	Name    string
	Summary sql.NullString
}

// scanArgs returns pointers matching factionColumns: id, nom, resum
func (r *factionRow) scanArgs() []interface{} {
	return []interface{}{
		&r.ID,      // 1
		&r.Name,    // 2
		&r.Summary, // 3
	}
}

func (r *factionRow) toDomain() domain.Faction {
	return domain.Faction{
		ID:      r.ID,
		Name:    r.Name,
		Summary: nullToString(r.Summary),
	}
}

const factionColumns = `id, nom, resum`

// characterRow holds all columns from a character query for scanning.
// FactionName is only scanned by joined queries.
type characterRow struct {
	ID          int64
	Name        string
	Attack      sql.NullFloat64
	Defense     sql.NullFloat64
	FactionID   sql.NullInt64
	FactionName sql.NullString
}

// scanArgs returns pointers matching characterColumns:
// id, nom, atac, defensa, idFaccion
func (r *characterRow) scanArgs() []interface{} {
	return []interface{}{
		&r.ID,        // 1
		&r.Name,      // 2
		&r.Attack,    // 3
		&r.Defense,   // 4
		&r.FactionID, // 5
	}
}

// joinedScanArgs appends the faction name selected by rosterColumns
func (r *characterRow) joinedScanArgs() []interface{} {
	return append(r.scanArgs(), &r.FactionName)
}

func (r *characterRow) toDomain() domain.Character {
	return domain.Character{
		ID:          r.ID,
		Name:        r.Name,
		Attack:      nullToFloatPtr(r.Attack),
		Defense:     nullToFloatPtr(r.Defense),
		FactionID:   nullToInt64(r.FactionID),
		FactionName: nullToString(r.FactionName),
	}
}

const characterColumns = `id, nom, atac, defensa, idFaccion`

const rosterColumns = `p.id, p.nom, p.atac, p.defensa, p.idFaccion, f.nom`

// ============================================================================
// Write Helpers
// ============================================================================

// factionInsertArgs matches InsertFaction: nom, resum
func factionInsertArgs(f domain.Faction) []interface{} {
	return []interface{}{f.Name, stringToNull(f.Summary)}
}

// characterInsertArgs matches InsertCharacter: nom, atac, defensa, idFaccion
func characterInsertArgs(c domain.Character) []interface{} {
	return []interface{}{
		c.Name,
		floatPtrToNull(c.Attack),
		floatPtrToNull(c.Defense),
		int64ToNull(c.FactionID),
	}
}
