package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/tasks/internal/model"
)

func monoTheme(t *testing.T) {
	t.Helper()
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
}

func workRecords() []model.Record {
	return []model.Record{
		{ID: 1, Label: "Learn TS", Done: true},
		{ID: 2, Label: "Write spec"},
		{ID: 14, Label: "Review PR"},
	}
}

func TestRenderList_Golden(t *testing.T) {
	monoTheme(t)

	tests := []struct {
		name string
		view ListView
	}{
		{
			name: "list_flat",
			view: ListView{
				Name:    "Work",
				Counts:  model.Counts{Total: 3, Incomplete: 2},
				Records: workRecords(),
				Filter:  model.FilterAll,
			},
		},
		{
			name: "list_grouped",
			view: ListView{
				Name:    "Work",
				Counts:  model.Counts{Total: 3, Incomplete: 2},
				Records: workRecords(),
				Filter:  model.FilterAll,
				Group:   true,
			},
		},
		{
			name: "list_empty",
			view: ListView{Name: "Inbox"},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderList(&buf, tt.view)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestProgressBar(t *testing.T) {
	monoTheme(t)

	assert.Equal(t, "##### 100%", ProgressBar(3, 3, 5))
	assert.Equal(t, "..........   0%", ProgressBar(0, 0, 10))
	assert.Equal(t, "##...  50%", ProgressBar(1, 2, 2), "width is clamped to 5")
	assert.Equal(t, "##### 200%", ProgressBar(4, 2, 5), "fill never exceeds width")
}

func TestRecordLine_Truncates(t *testing.T) {
	monoTheme(t)

	long := strings.Repeat("é", 100)
	line := RecordLine(model.Record{ID: 3, Label: long})

	assert.True(t, strings.HasPrefix(line, "   #3 [ ] "))
	assert.True(t, strings.HasSuffix(line, "..."))
	assert.Equal(t, 10+maxLabelWidth, len([]rune(line)))
}

func TestC(t *testing.T) {
	t.Cleanup(func() { SetColorForcing(false, false) })

	SetColorForcing(true, false)
	assert.Equal(t, fgGreen+"ok"+reset, C(fgGreen, "ok"))
	assert.Equal(t, "plain", C("", "plain"))

	SetColorForcing(true, true)
	assert.Equal(t, "ok", C(fgGreen, "ok"))
}

func TestOKFail(t *testing.T) {
	monoTheme(t)

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "nope")
	assert.Equal(t, "✔ added\n✖ nope\n", buf.String())
}

func TestSetTheme_ResetsMono(t *testing.T) {
	SetTheme("mono")
	assert.Equal(t, "[ ]", Current().BoxUnchecked)
	SetTheme("neon")
	assert.False(t, disableColor)
	assert.Equal(t, "◻", Current().BoxUnchecked)
	SetTheme("whatever")
	assert.Equal(t, classic(), Current())
}
