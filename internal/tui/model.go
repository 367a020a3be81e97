// Package tui is the full-screen interactive task list.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store/memstore"
	"github.com/idilsaglam/tasks/internal/ui"
)

// listItem adapts a record to bubbles/list.Item
type listItem struct {
	rec model.Record
}

func (i listItem) Title() string       { return i.rec.Label }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.rec.Label }

// itemDelegate renders one record per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := ui.MutedStyle.Render("☐")
	text := it.rec.Label
	if it.rec.Done {
		box = ui.SuccessStyle.Render("☑")
		text = ui.DoneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	id := ui.MutedStyle.Render(fmt.Sprintf("%5s", fmt.Sprintf("#%d", it.rec.ID)))
	fmt.Fprintf(w, "%s%s %s %s\n", prefix, id, box, text)
}

type keyMap struct {
	complete key.Binding
	add      key.Binding
	edit     key.Binding
	remove   key.Binding
	purge    key.Binding
	filter   key.Binding
}

var keys = keyMap{
	complete: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete")),
	add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "relabel")),
	remove:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
	purge:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
	filter:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "all/incomplete")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.complete, k.add, k.edit, k.remove, k.purge, k.filter}
}

// Model is the Bubble Tea model over a record store. Every change is applied
// to the store immediately.
type Model struct {
	store  *memstore.Store
	filter model.Filter
	list   list.Model

	// Inline add / relabel
	ti       textinput.Model
	adding   bool
	editing  bool
	editID   int
	inputErr string

	width, height int
}

// New builds a model listing store with the given filter.
func New(store *memstore.Store, filter model.Filter) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("record", "records")
	l.AdditionalShortHelpKeys = keys.help
	l.AdditionalFullHelpKeys = keys.help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		store:  store,
		filter: filter,
		list:   l,
		ti:     ti,
	}
	m.width, m.height = terminalSize()
	m.resize()
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, store *memstore.Store, filter model.Filter) error {
	p := tea.NewProgram(New(store, filter), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// refresh reloads the visible records from the store.
func (m *Model) refresh() {
	items := make([]list.Item, 0, m.store.Len())
	for _, r := range m.store.List(m.filter) {
		items = append(items, listItem{rec: r})
	}
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}

	c := m.store.Count()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d  %s",
		m.store.Name(),
		ui.SuccessStyle.Render("✔"), c.Done(),
		ui.PendingStyle.Render("•"), c.Incomplete,
		ui.AccentStyle.Render("Total"), c.Total,
		ui.MutedStyle.Render("["+m.filter.String()+"]"),
	)
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding || m.editing {
		h = m.height - 6
	}
	m.list.SetSize(m.width-2, max(h, 1))
}

func (m Model) selected() (model.Record, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Record{}, false
	}
	return it.rec, true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case km.String() == "q", km.String() == "esc" && m.list.FilterState() == list.Unfiltered:
			return m, tea.Quit
		case key.Matches(km, keys.complete):
			if r, ok := m.selected(); ok {
				m.store.Complete(r.ID)
				m.refresh()
			}
			return m, nil
		case key.Matches(km, keys.remove):
			if r, ok := m.selected(); ok {
				m.store.Remove(r.ID)
				m.refresh()
			}
			return m, nil
		case key.Matches(km, keys.purge):
			m.store.RemoveCompleted()
			m.refresh()
			return m, nil
		case key.Matches(km, keys.filter):
			if m.filter == model.FilterAll {
				m.filter = model.FilterIncomplete
			} else {
				m.filter = model.FilterAll
			}
			m.refresh()
			return m, nil
		case key.Matches(km, keys.add):
			m.adding = true
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New task..."
			m.resize()
			return m, m.ti.Focus()
		case key.Matches(km, keys.edit):
			r, ok := m.selected()
			if !ok || r.Done {
				return m, nil
			}
			m.editing = true
			m.editID = r.ID
			m.inputErr = ""
			m.ti.SetValue(r.Label)
			m.ti.CursorEnd()
			m.ti.Placeholder = "New label..."
			m.resize()
			return m, m.ti.Focus()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			var err error
			if m.adding {
				_, err = m.store.Add(m.ti.Value())
			} else {
				_, err = m.store.AddWithID(m.ti.Value(), m.editID)
			}
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.closeInput()
			m.refresh()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding, m.editing = false, false
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding || m.editing {
		title := "Add task"
		if m.editing {
			title = fmt.Sprintf("Relabel #%d", m.editID)
		}
		if m.inputErr != "" {
			title += "  " + ui.ErrorStyle.Render(m.inputErr)
		}
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return ui.Frame(strings.TrimRight(content, "\n"))
}

func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
