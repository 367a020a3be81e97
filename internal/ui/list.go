package ui

import (
	"fmt"
	"io"

	"github.com/idilsaglam/tasks/internal/model"
)

const maxLabelWidth = 80

// ListView is everything the plain listing needs.
type ListView struct {
	Name    string
	Counts  model.Counts
	Records []model.Record
	Filter  model.Filter
	Group   bool
}

// Header is the title line with live counts.
func Header(name string, c model.Counts) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, name),
		C(t.Success, t.SymDone), c.Done(),
		C(t.Pending, t.SymUnchecked), c.Incomplete,
		C(t.Accent, "Total"), c.Total,
	)
}

// Lines renders the panel body.
func (v ListView) Lines() []string {
	t := Current()
	lines := []string{
		Header(v.Name, v.Counts),
		C(t.Muted, ProgressBar(v.Counts.Done(), v.Counts.Total, 28)),
		"",
	}
	if v.Group {
		lines = append(lines, GroupLines(v.Records)...)
	} else {
		lines = append(lines, RecordLines(v.Records)...)
	}
	lines = append(lines, "")
	if v.Filter == model.FilterAll {
		lines = append(lines, C(t.Muted, "showing: all"))
	} else {
		lines = append(lines, C(t.Muted, "showing: incomplete (--all for everything)"))
	}
	return lines
}

// RenderList writes v as a framed panel.
func RenderList(w io.Writer, v ListView) {
	Panel(w, v.Lines())
}

// RecordLine renders one record as "#id box label".
func RecordLine(r model.Record) string {
	t := Current()
	box, color := t.BoxUnchecked, t.Muted
	if r.Done {
		box, color = t.BoxChecked, t.Success
	}
	label := r.Label
	if len([]rune(label)) > maxLabelWidth {
		label = string([]rune(label)[:maxLabelWidth-3]) + "..."
	}
	return fmt.Sprintf("%s %s %s", C(dim, fmt.Sprintf("%5s", fmt.Sprintf("#%d", r.ID))), C(color, box), label)
}

// RecordLines renders records one per line.
func RecordLines(records []model.Record) []string {
	if len(records) == 0 {
		return []string{C(Current().Muted, "no records")}
	}
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, RecordLine(r))
	}
	return out
}

// GroupLines renders records split into pending and done sections.
func GroupLines(records []model.Record) []string {
	var pend, done []model.Record
	for _, r := range records {
		if r.Done {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	t := Current()
	var lines []string
	lines = append(lines, C(t.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, RecordLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, RecordLines(done)...)
	}
	return lines
}
