package config

// Config is the root configuration structure.
// Every leaf can be overridden by the environment variable in its env tag.
type Config struct {
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	Path     string `yaml:"path" env:"FORHONOR_DB_PATH"`
	SeedFile string `yaml:"seed_file,omitempty" env:"FORHONOR_SEED_FILE"` // YAML or JSON dataset, empty = built-in seed
}

// OutputConfig controls how reports are rendered
type OutputConfig struct {
	Format       string `yaml:"format" env:"FORHONOR_FORMAT"` // table, json, yaml
	SummaryWidth int    `yaml:"summary_width" env:"FORHONOR_SUMMARY_WIDTH"`
}

// LogConfig controls diagnostic output
type LogConfig struct {
	Debug bool   `yaml:"debug" env:"FORHONOR_DEBUG"`
	File  string `yaml:"file,omitempty" env:"FORHONOR_LOG_FILE"` // empty = stderr
}
