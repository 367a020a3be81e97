package seedfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasks/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	want := []model.Record{
		{ID: 1, Label: "Learn TS", Done: true},
		{ID: 2, Label: "Write spec"},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json list",
			file:    "seed.json",
			content: `[{"id":1,"label":"Learn TS","done":true},{"id":2,"label":"Write spec"}]`,
		},
		{
			name:    "json object",
			file:    "seed.json",
			content: `{"name":"Work","records":[{"id":1,"label":"Learn TS","done":true},{"id":2,"label":"Write spec"}]}`,
		},
		{
			name: "yaml list",
			file: "seed.yaml",
			content: `- id: 1
  label: Learn TS
  done: true
- id: 2
  label: Write spec
`,
		},
		{
			name: "yml object",
			file: "seed.yml",
			content: `name: Work
records:
  - id: 1
    label: Learn TS
    done: true
  - id: 2
    label: Write spec
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadCollection_Name(t *testing.T) {
	c, err := LoadCollection(writeFile(t, "seed.yaml", "name: Home\nrecords: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "Home", c.Name)
	assert.Empty(t, c.Records)
	assert.NotNil(t, c.Records)
}

func TestLoad_MissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, []model.Record{}, got)
}

func TestLoad_EmptyFiles(t *testing.T) {
	for _, name := range []string{"empty.json", "empty.yaml"} {
		got, err := Load(writeFile(t, name, "  \n"))
		require.NoError(t, err, name)
		assert.Empty(t, got, name)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "seed.toml", "x = 1"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "bad.json", `[{"id": "one"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json unmarshal")

	_, err = Load(writeFile(t, "bad.yaml", "- id: [1, 2]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}
