package codec

import (
	"fmt"
	"io"

	"forhonor/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlDataset represents the YAML structure for a dataset
type yamlDataset struct {
	Factions   []yamlFaction   `yaml:"factions"`
	Characters []yamlCharacter `yaml:"characters"`
}

// yamlReport represents the YAML structure for an exported report
type yamlReport struct {
	Kind       string          `yaml:"kind"`
	Title      string          `yaml:"title"`
	Factions   []yamlFaction   `yaml:"factions,omitempty"`
	Characters []yamlCharacter `yaml:"characters,omitempty"`
}

type yamlFaction struct {
	ID      int64  `yaml:"id,omitempty"`
	Name    string `yaml:"name"`
	Summary string `yaml:"summary,omitempty"`
}

type yamlCharacter struct {
	ID          int64    `yaml:"id,omitempty"`
	Name        string   `yaml:"name"`
	Attack      *float64 `yaml:"attack"`
	Defense     *float64 `yaml:"defense"`
	FactionID   int64    `yaml:"faction_id"`
	FactionName string   `yaml:"faction_name,omitempty"`
}

// ParseDataset reads a dataset from YAML
func (c *YAMLCodec) ParseDataset(r io.Reader) (*domain.Dataset, error) {
	var yd yamlDataset
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&yd); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ds := &domain.Dataset{
		Factions:   make([]domain.Faction, 0, len(yd.Factions)),
		Characters: make([]domain.Character, 0, len(yd.Characters)),
	}
	for _, yf := range yd.Factions {
		ds.Factions = append(ds.Factions, domain.Faction{
			ID:      yf.ID,
			Name:    yf.Name,
			Summary: yf.Summary,
		})
	}
	for _, yc := range yd.Characters {
		ds.Characters = append(ds.Characters, domain.Character{
			ID:          yc.ID,
			Name:        yc.Name,
			Attack:      yc.Attack,
			Defense:     yc.Defense,
			FactionID:   yc.FactionID,
			FactionName: yc.FactionName,
		})
	}

	return ds, nil
}

// Export writes the report as YAML
func (c *YAMLCodec) Export(report *domain.Report, w io.Writer) error {
	yr := yamlReport{
		Kind:  string(report.Kind),
		Title: report.Title,
	}

	for _, f := range report.Factions {
		yr.Factions = append(yr.Factions, yamlFaction{
			ID:      f.ID,
			Name:    f.Name,
			Summary: f.Summary,
		})
	}
	for _, ch := range report.Characters {
		yr.Characters = append(yr.Characters, yamlCharacter{
			ID:          ch.ID,
			Name:        ch.Name,
			Attack:      ch.Attack,
			Defense:     ch.Defense,
			FactionID:   ch.FactionID,
			FactionName: ch.FactionName,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&yr); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
