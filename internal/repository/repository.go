package repository

import (
	"context"

	"forhonor/internal/domain"
)

// Reader defines the read-only queries over the roster tables.
// Joined reads fill Character.FactionName; nothing here mutates data.
type Reader interface {
	ListFactions(ctx context.Context) ([]domain.Faction, error)
	ListCharacters(ctx context.Context) ([]domain.Character, error)

	// Filtered by faction; an unknown faction ID yields an empty slice
	ListCharactersByFaction(ctx context.Context, factionID int64) ([]domain.Character, error)
	BestAttacker(ctx context.Context, factionID int64) ([]domain.Character, error)
	BestDefender(ctx context.Context, factionID int64) ([]domain.Character, error)
}
