package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/forja/internal/models"
)

// devConnectionString is the local database used when DEV_MODE=true.
const devConnectionString = "file:./local.db?cache=shared&mode=rwc"

type Config struct {
	DB       DBConfig       `toml:"database"`
	Defaults DefaultsConfig `toml:"defaults"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

// DefaultsConfig seeds program generation when flags are omitted.
type DefaultsConfig struct {
	Units         string  `toml:"units"`          // "lbs" or "kg"
	TMPercent     float64 `toml:"tm_percent"`     // training max as a percent of 1RM
	RoundingInc   float64 `toml:"rounding_inc"`   // plate increment
	TemplateID    string  `toml:"template"`       // default template
	LoadingOption int     `toml:"loading_option"` // 1 or 2
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "forja")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadOrDefault reads the config file, falling back to the built-in defaults
// when no file exists. The DEV_MODE override applies either way.
func LoadOrDefault() *Config {
	cfg, err := LoadConfig()
	if err == nil {
		return cfg
	}

	cfg = &Config{}
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Defaults.Units == "" {
		cfg.Defaults.Units = "lbs"
	}
	if cfg.Defaults.TMPercent <= 0 {
		cfg.Defaults.TMPercent = 90
	}
	if cfg.Defaults.RoundingInc <= 0 {
		if cfg.Defaults.Units == "kg" {
			cfg.Defaults.RoundingInc = 2.5
		} else {
			cfg.Defaults.RoundingInc = 5
		}
	}
	if cfg.Defaults.TemplateID == "" {
		cfg.Defaults.TemplateID = "bbb"
	}
	if cfg.Defaults.LoadingOption == 0 {
		cfg.Defaults.LoadingOption = 1
	}
}

// ApplyProgramDefaults fills fields a program config file left unset from the
// configured defaults. Set fields are never overwritten.
func ApplyProgramDefaults(p *models.ProgramConfig, d DefaultsConfig) {
	if p.Units == "" {
		p.Units = d.Units
	}
	if p.TemplateID == "" {
		p.TemplateID = d.TemplateID
	}
	if p.LoadingOption == 0 {
		p.LoadingOption = d.LoadingOption
	}
	if p.Rounding.Units == "" {
		p.Rounding.Units = p.Units
	}
	if p.Rounding.Mode == "" {
		p.Rounding.Mode = models.RoundNearest
	}
	if p.Rounding.Increment <= 0 {
		inc := d.RoundingInc
		if p.Rounding.Units == models.UnitsKg && d.Units != models.UnitsKg {
			inc = models.DefaultRounding(models.UnitsKg).Increment
		}
		p.Rounding.Increment = inc
	}
}
