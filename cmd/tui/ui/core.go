// Package ui is the Bubble Tea directory browser behind `rolo browse`.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/rolo/internal/record"
)

const listTitle = "rolo: directory"

// TuiModel is the Bubble Tea model used by `rolo browse`.
type TuiModel struct {
	uiModel Model
	list    list.Model
	vp      viewport.Model

	width  int
	height int

	// live filter typed after '/'
	filterMode bool
	listFilter string

	showDetail    bool
	detail        string
	confirmDelete bool
	status        string

	themeHighContrast bool
}

type initDoneMsg struct {
	items []list.Item
	err   error
}

type deleteDoneMsg struct {
	label string
	err   error
}

// NewModel constructs the browser model. The list's built-in filter is
// disabled; filtering goes through the same engine as the live loop.
func NewModel(ui Model) *TuiModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = listTitle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return &TuiModel{uiModel: ui, list: l, vp: viewport.New(0, 0)}
}

// NewProgram constructs the tea.Program for the browser.
func NewProgram(ui Model) *tea.Program {
	return tea.NewProgram(NewModel(ui), tea.WithAltScreen())
}

// Init loads the directory.
func (m *TuiModel) Init() tea.Cmd {
	return func() tea.Msg {
		if err := m.uiModel.RefreshList(context.Background()); err != nil {
			return initDoneMsg{err: err}
		}
		return initDoneMsg{items: toItems(m.uiModel.ListCached())}
	}
}

// recItem adapts record.Record for the list component.
type recItem struct{ rec record.Record }

func (r recItem) Title() string       { return r.rec.Ident.String() }
func (r recItem) Description() string { return "Phone: " + r.rec.Phone }
func (r recItem) FilterValue() string {
	return strings.Join(r.rec.Ident.Fields(), " ") + " " + r.rec.Phone
}

func toItems(recs []record.Record) []list.Item {
	items := make([]list.Item, 0, len(recs))
	for _, r := range recs {
		items = append(items, recItem{rec: r})
	}
	return items
}

func (m *TuiModel) selected() (record.Record, bool) {
	it, ok := m.list.SelectedItem().(recItem)
	if !ok {
		return record.Record{}, false
	}
	return it.rec, true
}

// updatePreview renders the selected record into the right-hand pane.
func (m *TuiModel) updatePreview() {
	r, ok := m.selected()
	if !ok {
		m.vp.SetContent("(none)")
		return
	}
	m.vp.SetContent(formatRecordDetails(r, m.vp.Width))
}

func (m *TuiModel) deleteSelected() tea.Cmd {
	r, ok := m.selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		err := m.uiModel.Delete(context.Background(), r.ID)
		return deleteDoneMsg{label: r.Ident.String(), err: err}
	}
}

func (m *TuiModel) itemsTitle() string {
	if m.filterMode || m.listFilter != "" {
		return "Filter: " + m.listFilter
	}
	return listTitle
}

func countLabel(n int) string {
	if n == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", n)
}
