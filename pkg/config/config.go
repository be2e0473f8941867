package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned by Validate when no API credential is configured.
var ErrMissingAPIKey = errors.New("api key missing: set OPENAI_API_KEY or api_key in the config file")

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds all Flowlens configuration.
type Config struct {
	APIKey         string      `yaml:"api_key"`
	BaseURL        string      `yaml:"base_url"`
	SummaryModel   string      `yaml:"summary_model"`
	ImageModel     string      `yaml:"image_model"`
	ImageSize      string      `yaml:"image_size"`
	RequestTimeout Duration    `yaml:"request_timeout"`
	FlowPath       string      `yaml:"flow_path"`
	ReportPath     string      `yaml:"report_path"`
	ImageDir       string      `yaml:"image_dir"`
	DBPath         string      `yaml:"db_path"`
	Cache          CacheConfig `yaml:"cache"`
}

// CacheConfig controls the response cache backend.
// Backend is "file" (default), "sqlite", or "memory".
type CacheConfig struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"`
}

// Default returns a Config with sensible defaults. The API key is taken
// from the environment so the tool works without a config file.
func Default() *Config {
	return &Config{
		APIKey:         os.Getenv("OPENAI_API_KEY"),
		SummaryModel:   "gpt-4-turbo-preview",
		ImageModel:     "dall-e-3",
		ImageSize:      "1024x1024",
		RequestTimeout: Duration(60 * time.Second),
		FlowPath:       "flow.json",
		ReportPath:     "FLOW_REPORT.md",
		ImageDir:       ".",
		DBPath:         "flowlens.db",
		Cache: CacheConfig{
			Backend: "file",
			Dir:     ".cache",
		},
	}
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable for an analysis run.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
