package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsMissingFields(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Store.DBPath = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Output.Dir = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Reports.TopPolicies = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Generator.NumPolicies = -1
	assert.Error(t, cfg.Validate())
}

func TestSaveAndLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "portfolio.yaml")

	cfg := Default()
	cfg.Generator.Seed = 1234
	cfg.Generator.NumPolicies = 250
	assert.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveAndLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "portfolio.json")

	cfg := Default()
	cfg.Output.Charts = false
	assert.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("store:\n  db_path: ''\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
