package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DEV_MODE", "")
	return home
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "forja")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))
}

func TestLoadConfigReadsConnectionString(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, home, `
[database]
connection_string = "libsql://forja.turso.io?authToken=abc"

[defaults]
units = "kg"
template = "triumvirate"
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "libsql://forja.turso.io?authToken=abc", cfg.DB.ConnectionString)
	assert.Equal(t, "kg", cfg.Defaults.Units)
	assert.Equal(t, "triumvirate", cfg.Defaults.TemplateID)
	// Unset fields get the built-in defaults, increment follows the units.
	assert.Equal(t, 90.0, cfg.Defaults.TMPercent)
	assert.Equal(t, 2.5, cfg.Defaults.RoundingInc)
	assert.Equal(t, 1, cfg.Defaults.LoadingOption)
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	isolateHome(t)

	cfg := LoadOrDefault()

	assert.Empty(t, cfg.DB.ConnectionString)
	assert.Equal(t, "lbs", cfg.Defaults.Units)
	assert.Equal(t, 90.0, cfg.Defaults.TMPercent)
	assert.Equal(t, 5.0, cfg.Defaults.RoundingInc)
	assert.Equal(t, "bbb", cfg.Defaults.TemplateID)
	assert.Equal(t, 1, cfg.Defaults.LoadingOption)
}

func TestLoadOrDefaultDevMode(t *testing.T) {
	isolateHome(t)
	t.Setenv("DEV_MODE", "true")

	cfg := LoadOrDefault()
	assert.Equal(t, "file:./local.db?cache=shared&mode=rwc", cfg.DB.ConnectionString)
}

func TestDevModeOverridesFileConnectionString(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, home, `
[database]
connection_string = "libsql://prod.turso.io"
`)
	t.Setenv("DEV_MODE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file:./local.db?cache=shared&mode=rwc", cfg.DB.ConnectionString)
}

func TestApplyProgramDefaultsFillsUnsetFields(t *testing.T) {
	isolateHome(t)

	var p models.ProgramConfig
	ApplyProgramDefaults(&p, LoadOrDefault().Defaults)

	assert.Equal(t, "lbs", p.Units)
	assert.Equal(t, "bbb", p.TemplateID)
	assert.Equal(t, 1, p.LoadingOption)
	assert.Equal(t, models.Rounding{Increment: 5, Mode: models.RoundNearest, Units: "lbs"}, p.Rounding)
}

func TestApplyProgramDefaultsKeepsSetFields(t *testing.T) {
	p := models.ProgramConfig{
		Units:         models.UnitsKg,
		TemplateID:    "jack_shit",
		LoadingOption: 2,
		Rounding:      models.Rounding{Increment: 1.25, Mode: models.RoundUp, Units: models.UnitsKg},
	}

	ApplyProgramDefaults(&p, DefaultsConfig{
		Units:         "lbs",
		TMPercent:     90,
		RoundingInc:   5,
		TemplateID:    "bbb",
		LoadingOption: 1,
	})

	assert.Equal(t, models.UnitsKg, p.Units)
	assert.Equal(t, "jack_shit", p.TemplateID)
	assert.Equal(t, 2, p.LoadingOption)
	assert.Equal(t, models.Rounding{Increment: 1.25, Mode: models.RoundUp, Units: models.UnitsKg}, p.Rounding)
}

func TestApplyProgramDefaultsKgIncrement(t *testing.T) {
	p := models.ProgramConfig{Units: models.UnitsKg}

	ApplyProgramDefaults(&p, DefaultsConfig{
		Units:         "lbs",
		RoundingInc:   5,
		TemplateID:    "bbb",
		LoadingOption: 1,
	})

	// A kg program must not inherit the lbs plate increment.
	assert.Equal(t, models.UnitsKg, p.Rounding.Units)
	assert.Equal(t, 2.5, p.Rounding.Increment)
}
