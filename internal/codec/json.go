package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"forhonor/internal/domain"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// ParseDataset reads a dataset from JSON
func (c *JSONCodec) ParseDataset(r io.Reader) (*domain.Dataset, error) {
	var ds domain.Dataset
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &ds, nil
}

// Export writes the report as indented JSON
func (c *JSONCodec) Export(report *domain.Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
