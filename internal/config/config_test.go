package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasks/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "Tasks", cfg.StoreName)
	assert.Equal(t, model.FilterIncomplete, cfg.Filter())
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
store_name: Work
seed_file: ./work.yaml
ids:
  strategy: random
  random_seed: 42
list:
  filter: all
  group: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Work", cfg.StoreName)
	assert.Equal(t, "./work.yaml", cfg.SeedFile)
	assert.Equal(t, IDStrategyRandom, cfg.IDs.Strategy)
	assert.Equal(t, 1000, cfg.IDs.RandomLimit, "zero limit falls back to default")
	assert.Equal(t, uint64(42), cfg.IDs.RandomSeed)
	assert.Equal(t, model.FilterAll, cfg.Filter())
	assert.True(t, cfg.List.Group)
	assert.Equal(t, "classic", cfg.Theme)
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "store_name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
ids:
  strategy: uuid
  random_limit: -4
list:
  filter: done
theme: sepia
`)

	_, err := Load(path)
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 4)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"ids.strategy", "ids.random_limit", "list.filter", "theme"}, fields)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "tasks", "config.yaml"), DefaultConfigPath())
}
