package morphology

import (
	"os"
	"time"

	"github.com/google-research/turkish-morphology/fst"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultAnalyzerName is the archive entry of the compiled analyzer.
const DefaultAnalyzerName = "turkish_morphological_analyzer"

// CacheConfig controls the decomposition memo. A zero TTL disables it.
type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	Cleanup time.Duration `yaml:"cleanup"`
}

// ServerConfig is read by cmd/server only.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	Timeout        time.Duration `yaml:"timeout"`
}

// Config describes where the model lives and how it is queried.
type Config struct {
	// Archive is the path of the automaton archive.
	Archive string `yaml:"archive"`
	// Fst names the analyzer entry in Archive.
	Fst string `yaml:"fst"`
	// Generator optionally names a dedicated generation entry. When empty
	// the generator is the inverted analyzer.
	Generator string `yaml:"generator"`
	// Tagset is an optional YAML tagset file; DefaultTagset otherwise.
	Tagset string `yaml:"tagset"`

	MaxDepth      int  `yaml:"max_depth"`
	ProperFeature bool `yaml:"proper_feature"`
	Lowercase     bool `yaml:"lowercase"`

	Cache  CacheConfig  `yaml:"cache"`
	Server ServerConfig `yaml:"server"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Archive:       "turkish.far",
		Fst:           DefaultAnalyzerName,
		MaxDepth:      fst.DefaultMaxDepth,
		ProperFeature: true,
		Cache: CacheConfig{
			TTL:     5 * time.Minute,
			Cleanup: 30 * time.Minute,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
			Timeout:        10 * time.Second,
		},
	}
}

// LoadConfig reads a YAML configuration. Keys missing from the file keep
// their DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.MaxDepth <= 0 {
		return cfg, errors.Errorf("config %s: max_depth must be positive, got %d", path, cfg.MaxDepth)
	}
	return cfg, nil
}
