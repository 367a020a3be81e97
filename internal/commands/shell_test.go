package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store/memstore"
	"github.com/idilsaglam/tasks/internal/ui"
)

func monoTheme(t *testing.T) {
	t.Helper()
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestShell_Session(t *testing.T) {
	monoTheme(t)

	script := strings.Join([]string{
		"put 1 Learn TS",
		"add Write spec",
		"done 1",
		"count",
		"ls all",
		"purge",
		"count",
		"add    ",
		"done abc",
		"rm 9",
		"show 2",
		"frobnicate",
		"quit",
		"add never",
	}, "\n")

	var buf bytes.Buffer
	s := memstore.New("Work")
	sh := &Shell{Store: s, Out: &buf, Log: zerolog.Nop()}

	require.NoError(t, sh.Run(context.Background(), strings.NewReader(script)))

	newGoldie(t).Assert(t, "shell_session", buf.Bytes())
	assert.Equal(t, 1, s.Count().Total, "commands after quit are not run")
}

func TestShell_Exec(t *testing.T) {
	monoTheme(t)

	tests := []struct {
		name    string
		line    string
		wantErr string
		wantOut string
	}{
		{name: "blank", line: "   "},
		{name: "comment", line: "# note"},
		{name: "put missing label", line: "put 3", wantErr: "invalid argument"},
		{name: "put bad id", line: "put x label", wantErr: "not a number"},
		{name: "done no id", line: "done", wantErr: "usage: done <id>"},
		{name: "rm two ids", line: "rm 1 2", wantErr: "usage: rm <id>"},
		{name: "ls bad filter", line: "ls done", wantErr: "invalid filter"},
		{name: "done missing", line: "done 77", wantOut: "no record #77\n"},
		{name: "show missing", line: "show 77", wantOut: "no record #77\n"},
		{name: "count empty", line: "count", wantOut: "total: 0, incomplete: 0\n"},
		{name: "help", line: "help", wantOut: shellHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sh := &Shell{Store: memstore.New("t"), Out: &buf}

			err := sh.Exec(tt.line)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, buf.String())
		})
	}
}

func TestShell_QuitAliases(t *testing.T) {
	for _, line := range []string{"quit", "exit", "q", "QUIT"} {
		sh := &Shell{Store: memstore.New("t"), Out: &bytes.Buffer{}}
		assert.ErrorIs(t, sh.Exec(line), errQuit, line)
	}
}

func TestShell_DefaultFilterAndPrompt(t *testing.T) {
	monoTheme(t)

	s := memstore.New("Work")
	_, _ = s.AddWithID("open", 1)
	_, _ = s.AddWithID("closed", 2)
	s.Complete(2)

	var buf bytes.Buffer
	sh := &Shell{Store: s, Out: &buf, Prompt: "> ", Filter: model.FilterIncomplete}
	require.NoError(t, sh.Run(context.Background(), strings.NewReader("ls\n")))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "> +"))
	assert.Contains(t, out, "#1 [ ] open")
	assert.NotContains(t, out, "closed")
	assert.True(t, strings.HasSuffix(out, "> "), "prompt is printed again before EOF")
}

func TestShell_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sh := &Shell{Store: memstore.New("t"), Out: &bytes.Buffer{}}
	err := sh.Run(ctx, strings.NewReader("add x\n"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, sh.Store.Len())
}
