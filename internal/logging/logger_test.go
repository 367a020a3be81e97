package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "tasks.log")

	l, closer, err := New("info", file)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("component", "test").Msg("visible")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"visible"`)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer

	l, closer, err := newLogger("warn", "", &buf)
	require.NoError(t, err)
	defer closer()

	l.Info().Msg("quiet")
	l.Warn().Msg("loud")

	assert.Contains(t, buf.String(), "loud")
	assert.NotContains(t, buf.String(), "quiet")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New("chatty", "")
	require.Error(t, err)
}
