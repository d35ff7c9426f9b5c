package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// dispatchKey routes a KeyMsg based on the current UI state. The returned
// bool reports whether the key still needs the global handler.
func dispatchKey(m *TuiModel, msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit, false
	}
	if m.confirmDelete {
		m.confirmDelete = false
		if msg.String() == "y" {
			m.status = "deleting…"
			return m, m.deleteSelected(), false
		}
		m.status = "delete cancelled"
		return m, nil, false
	}
	if m.filterMode {
		return applyFilterKey(m, msg)
	}
	return m, nil, true
}

// applyFilterKey edits the live filter text. Enter leaves filter mode with
// the filter still applied and falls through to open the selection.
func applyFilterKey(m *TuiModel, msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.listFilter += string(msg.Runes)
		applyFilterItems(m)
		return m, nil, false
	case tea.KeyBackspace:
		m.listFilter = trimLastRune(m.listFilter)
		applyFilterItems(m)
		return m, nil, false
	case tea.KeyEsc:
		m.filterMode = false
		m.listFilter = ""
		applyFilterItems(m)
		return m, nil, false
	case tea.KeyEnter:
		m.filterMode = false
		m.list.Title = m.itemsTitle()
		return m, nil, true
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.updatePreview()
	return m, cmd, false
}

// applyFilterItems re-filters the cached directory with the current filter
// text and selects the first match.
func applyFilterItems(m *TuiModel) {
	m.list.SetItems(toItems(m.uiModel.Filter(m.listFilter)))
	m.list.Title = m.itemsTitle()
	if len(m.list.Items()) > 0 {
		m.list.Select(0)
	}
	m.updatePreview()
}

const helpText = "Help:\n\n" +
	"/ filter as you type (Esc clears)\n" +
	"Enter view details\n" +
	"b back to the list\n" +
	"d delete the selected record\n" +
	"T toggle high-contrast theme\n" +
	"q quit"

// handleGlobalKeys handles top-level bindings outside filter mode.
func handleGlobalKeys(m *TuiModel, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.showDetail {
			m.showDetail = false
			return m, nil
		}
		if m.listFilter != "" {
			m.listFilter = ""
			applyFilterItems(m)
			return m, nil
		}
		return m, tea.Quit
	case "/":
		m.filterMode = true
		m.showDetail = false
		m.list.Title = m.itemsTitle()
		return m, nil
	case "?":
		m.showDetail = true
		m.detail = helpText
		return m, nil
	case "enter":
		if r, ok := m.selected(); ok {
			m.showDetail = true
			m.detail = formatRecordDetails(r, m.width-4)
		}
		return m, nil
	case "b":
		m.showDetail = false
		m.updatePreview()
		return m, nil
	case "d":
		if r, ok := m.selected(); ok {
			m.confirmDelete = true
			m.status = "Delete " + r.Ident.String() + "? (y/n)"
		}
		return m, nil
	case "T":
		m.themeHighContrast = !m.themeHighContrast
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.updatePreview()
	return m, cmd
}

// trimLastRune removes the last rune from a string if present
func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
