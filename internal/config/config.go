package config

import (
	"os"
	"path/filepath"

	"github.com/HartBrook/pronghorn/internal/errors"
	"github.com/HartBrook/pronghorn/internal/models"
	"gopkg.in/yaml.v3"
)

// PricingOverride adjusts the price of a catalog model.
// Prices are USD per million tokens; zero values leave the default in place.
type PricingOverride struct {
	Model       string  `yaml:"model"`
	InputPrice  float64 `yaml:"input_price,omitempty"`
	OutputPrice float64 `yaml:"output_price,omitempty"`
}

// Config represents the pronghorn configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Defaults applied when the corresponding flag is not set.
	Model  string `yaml:"model,omitempty"`
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`

	// Pricing overrides the built-in catalog, e.g. for teams with
	// negotiated rates.
	Pricing []PricingOverride `yaml:"pricing,omitempty"`
}

// Default values.
const (
	DefaultVersion = 1
	DefaultLevel   = "standard"
	DefaultFormat  = "standard"
)

// Load reads config from the default location. A missing file is not an
// error: defaults apply.
func Load() (*Config, error) {
	paths := NewPaths()
	cfg, err := LoadFrom(paths.ConfigFile)
	if err != nil {
		if e, ok := err.(*errors.PronghornError); ok && e.Code == errors.ErrConfigNotFound {
			cfg = &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to the default location.
func Save(cfg *Config) error {
	paths := NewPaths()
	return SaveTo(cfg, paths.ConfigFile)
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks config for valid values.
func (c *Config) Validate() error {
	switch c.Level {
	case "quick", "standard", "advanced":
	default:
		return errors.ConfigInvalid("level must be quick, standard, or advanced")
	}

	switch c.Format {
	case "standard", "structured", "article", "bullets", "data":
	default:
		return errors.ConfigInvalid("format must be standard, structured, article, bullets, or data")
	}

	for _, p := range c.Pricing {
		if p.Model == "" {
			return errors.ConfigInvalid("pricing entries must name a model")
		}
		if p.InputPrice < 0 || p.OutputPrice < 0 {
			return errors.ConfigInvalid("prices must not be negative")
		}
	}

	return nil
}

// applyDefaults fills in zero-value fields with defaults.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.Model == "" {
		c.Model = string(models.DefaultCatalog().Default().ID)
	}
	if c.Level == "" {
		c.Level = DefaultLevel
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
}

// Catalog returns the model catalog with pricing overrides applied.
func (c *Config) Catalog() models.Catalog {
	base := models.DefaultCatalog().All()
	for i := range base {
		for _, p := range c.Pricing {
			if p.Model != string(base[i].ID) {
				continue
			}
			if p.InputPrice > 0 {
				base[i].InputPrice = p.InputPrice
			}
			if p.OutputPrice > 0 {
				base[i].OutputPrice = p.OutputPrice
			}
		}
	}
	return models.NewCatalog(base)
}
