package service

import (
	"context"
	"fmt"
	"log"

	"forhonor/internal/domain"
	"forhonor/internal/repository"
)

// QueryService provides the fixed roster reports
type QueryService struct {
	repo repository.Reader
}

// NewQueryService creates a new query service
func NewQueryService(repo repository.Reader) *QueryService {
	return &QueryService{repo: repo}
}

// ListFactions returns all factions in storage order
func (s *QueryService) ListFactions(ctx context.Context) ([]domain.Faction, error) {
	return s.repo.ListFactions(ctx)
}

// ListCharacters returns all characters in storage order
func (s *QueryService) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	return s.repo.ListCharacters(ctx)
}

// ListCharactersByFaction returns the characters of one faction, annotated
// with the faction name. Unknown factions yield an empty result.
func (s *QueryService) ListCharactersByFaction(ctx context.Context, factionID int64) ([]domain.Character, error) {
	characters, err := s.repo.ListCharactersByFaction(ctx, factionID)
	if err != nil {
		return nil, err
	}
	if len(characters) == 0 {
		log.Printf("No characters found for faction %d", factionID)
	}
	return characters, nil
}

// BestAttacker returns the faction's highest-attack character, or nothing
func (s *QueryService) BestAttacker(ctx context.Context, factionID int64) ([]domain.Character, error) {
	return s.repo.BestAttacker(ctx, factionID)
}

// BestDefender returns the faction's highest-defense character, or nothing
func (s *QueryService) BestDefender(ctx context.Context, factionID int64) ([]domain.Character, error) {
	return s.repo.BestDefender(ctx, factionID)
}

// FactionsReport wraps ListFactions for rendering
func (s *QueryService) FactionsReport(ctx context.Context) (*domain.Report, error) {
	factions, err := s.ListFactions(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewFactionReport("Faction table", factions), nil
}

// CharactersReport wraps ListCharacters for rendering
func (s *QueryService) CharactersReport(ctx context.Context) (*domain.Report, error) {
	characters, err := s.ListCharacters(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewCharacterReport("Character table", characters), nil
}

// RosterReport wraps ListCharactersByFaction for rendering
func (s *QueryService) RosterReport(ctx context.Context, factionID int64) (*domain.Report, error) {
	characters, err := s.ListCharactersByFaction(ctx, factionID)
	if err != nil {
		return nil, err
	}
	return domain.NewRosterReport(fmt.Sprintf("Characters of faction ID: %d", factionID), characters), nil
}

// BestAttackerReport wraps BestAttacker for rendering
func (s *QueryService) BestAttackerReport(ctx context.Context, factionID int64) (*domain.Report, error) {
	characters, err := s.BestAttacker(ctx, factionID)
	if err != nil {
		return nil, err
	}
	return domain.NewRosterReport(fmt.Sprintf("Best attacker of faction ID: %d", factionID), characters), nil
}

// BestDefenderReport wraps BestDefender for rendering
func (s *QueryService) BestDefenderReport(ctx context.Context, factionID int64) (*domain.Report, error) {
	characters, err := s.BestDefender(ctx, factionID)
	if err != nil {
		return nil, err
	}
	return domain.NewRosterReport(fmt.Sprintf("Best defender of faction ID: %d", factionID), characters), nil
}
