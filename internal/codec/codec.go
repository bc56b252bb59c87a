package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"forhonor/internal/domain"
)

// Importer interface for reading a roster dataset from various formats
type Importer interface {
	ParseDataset(r io.Reader) (*domain.Dataset, error)
	Format() string
}

// Exporter interface for rendering reports in various formats
type Exporter interface {
	Export(report *domain.Report, w io.Writer) error
	Format() string
}

// Formats lists the names accepted by ForFormat
var Formats = []string{"table", "json", "yaml"}

// ForFormat returns the exporter registered under name
func ForFormat(name string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table":
		return NewTableCodec(DefaultSummaryWidth), nil
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(Formats, ", "))
	}
}

// ImporterForFile picks an importer from the file extension
func ImporterForFile(path string) (Importer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec(), nil
	case ".json":
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("cannot import %s: unsupported extension", path)
	}
}
