package bootstrap

import (
	"fmt"
	"log"
	"os"

	"forhonor/internal/codec"
	"forhonor/internal/domain"
)

// DefaultSeed returns the rows written on first startup. Factions receive
// IDs 1, 2 and 3 in this order, which the characters' FactionIDs rely on.
func DefaultSeed() *domain.Dataset {
	return &domain.Dataset{
		Factions: []domain.Faction{
			domain.NewFaction("Cavallers", "Though seen as a single group, the Knights are hardly unified..."),
			domain.NewFaction("Vikings", "The Vikings are a loose coalition of hundreds of clans and tribes..."),
			domain.NewFaction("Samurais", "The Samurai are the most unified of the three factions..."),
		},
		Characters: []domain.Character{
			domain.NewCharacter("Warden", 1.0, 3.0, 1),
			domain.NewCharacter("Conqueror", 2.0, 2.0, 1),
			domain.NewCharacter("Peacekeep", 2.0, 3.0, 1),
			domain.NewCharacter("Raider", 3.0, 3.0, 2),
			domain.NewCharacter("Warlord", 2.0, 2.0, 2),
			domain.NewCharacter("Berserker", 1.0, 1.0, 2),
			domain.NewCharacter("Kensei", 3.0, 2.0, 3),
			domain.NewCharacter("Shugoki", 2.0, 1.0, 3),
			domain.NewCharacter("Orochi", 3.0, 2.0, 3),
		},
	}
}

// LoadSeedFile reads a replacement seed dataset from a YAML or JSON file.
// Characters reference factions by position: the first faction gets ID 1.
func LoadSeedFile(path string) (*domain.Dataset, error) {
	importer, err := codec.ImporterForFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	ds, err := importer.ParseDataset(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if len(ds.Factions) == 0 {
		return nil, fmt.Errorf("seed file %s has no factions", path)
	}

	log.Printf("Bootstrap: Loaded seed from %s (%s): %d factions, %d characters",
		path, importer.Format(), len(ds.Factions), len(ds.Characters))
	return ds, nil
}
