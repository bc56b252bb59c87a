package sqlite

import (
	"context"
	"fmt"

	"forhonor/internal/domain"
)

const (
	selectFactions SQL = `SELECT ` + factionColumns + ` FROM Faccion`

	selectCharacters SQL = `SELECT ` + characterColumns + ` FROM Personaje`

	selectRoster SQL = `
		SELECT ` + rosterColumns + `
		FROM Personaje p
		JOIN Faccion f ON p.idFaccion = f.id
		WHERE p.idFaccion = ?
		ORDER BY p.id`

	// Ties go to the lowest id, i.e. the first row in storage order
	selectBestAttacker SQL = `
		SELECT ` + rosterColumns + `
		FROM Personaje p
		JOIN Faccion f ON p.idFaccion = f.id
		WHERE p.idFaccion = ?
		ORDER BY p.atac DESC, p.id ASC
		LIMIT 1`

	selectBestDefender SQL = `
		SELECT ` + rosterColumns + `
		FROM Personaje p
		JOIN Faccion f ON p.idFaccion = f.id
		WHERE p.idFaccion = ?
		ORDER BY p.defensa DESC, p.id ASC
		LIMIT 1`
)

// Repository implements repository.Reader on top of a Gateway
type Repository struct {
	gw *Gateway
}

// NewRepository creates a repository that reads through gw
func NewRepository(gw *Gateway) *Repository {
	return &Repository{gw: gw}
}

// ListFactions returns every faction in storage order
func (r *Repository) ListFactions(ctx context.Context) ([]domain.Faction, error) {
	rows, err := r.gw.Query(ctx, selectFactions)
	if err != nil {
		return nil, fmt.Errorf("failed to query factions: %w", err)
	}
	defer rows.Close()

	factions := []domain.Faction{}
	for rows.Next() {
		var row factionRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan faction: %w", newQueryError(string(selectFactions), err))
		}
		factions = append(factions, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating factions: %w", newQueryError(string(selectFactions), err))
	}

	return factions, nil
}

// ListCharacters returns every character in storage order, without joins
func (r *Repository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	rows, err := r.gw.Query(ctx, selectCharacters)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	defer rows.Close()

	characters := []domain.Character{}
	for rows.Next() {
		var row characterRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", newQueryError(string(selectCharacters), err))
		}
		characters = append(characters, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating characters: %w", newQueryError(string(selectCharacters), err))
	}

	return characters, nil
}

// ListCharactersByFaction returns the faction's characters with FactionName set.
// An unknown faction yields an empty slice.
func (r *Repository) ListCharactersByFaction(ctx context.Context, factionID int64) ([]domain.Character, error) {
	return r.queryRoster(ctx, selectRoster, factionID)
}

// BestAttacker returns at most one character: the faction's highest attack
func (r *Repository) BestAttacker(ctx context.Context, factionID int64) ([]domain.Character, error) {
	return r.queryRoster(ctx, selectBestAttacker, factionID)
}

// BestDefender returns at most one character: the faction's highest defense
func (r *Repository) BestDefender(ctx context.Context, factionID int64) ([]domain.Character, error) {
	return r.queryRoster(ctx, selectBestDefender, factionID)
}

func (r *Repository) queryRoster(ctx context.Context, q SQL, factionID int64) ([]domain.Character, error) {
	rows, err := r.gw.Query(ctx, q, factionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters of faction %d: %w", factionID, err)
	}
	defer rows.Close()

	characters := []domain.Character{}
	for rows.Next() {
		var row characterRow
		if err := rows.Scan(row.joinedScanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", newQueryError(string(q), err))
		}
		characters = append(characters, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating characters: %w", newQueryError(string(q), err))
	}

	return characters, nil
}

// InsertDataset writes factions then characters through the parameterized
// path. It does not open a transaction; the first failing row stops the load.
func (r *Repository) InsertDataset(ctx context.Context, ds *domain.Dataset) error {
	for _, f := range ds.Factions {
		if _, err := r.gw.Exec(ctx, InsertFaction, factionInsertArgs(f)...); err != nil {
			return fmt.Errorf("failed to insert faction %s: %w", f.Name, err)
		}
	}
	for _, c := range ds.Characters {
		if _, err := r.gw.Exec(ctx, InsertCharacter, characterInsertArgs(c)...); err != nil {
			return fmt.Errorf("failed to insert character %s: %w", c.Name, err)
		}
	}
	return nil
}
