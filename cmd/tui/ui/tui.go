package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Update implements tea.Model.
func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initDoneMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		if m.list.Height() == 0 {
			m.list.SetSize(30, 10)
		}
		if m.vp.Width == 0 || m.vp.Height == 0 {
			m.ensureViewportSize(40, 12)
		}
		m.list.SetItems(msg.items)
		if len(msg.items) > 0 {
			m.list.Select(0)
		}
		m.updatePreview()
		return m, nil
	case deleteDoneMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "deleted " + msg.label
		m.showDetail = false
		applyFilterItems(m)
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		bodyH := m.height - 6
		if bodyH < 3 {
			bodyH = 3
		}
		listW := m.width / 3
		if listW < 24 {
			listW = 24
		}
		m.list.SetSize(listW, bodyH)
		rightW := m.width - listW - 6
		if rightW < 12 {
			rightW = 12
		}
		m.ensureViewportSize(rightW, bodyH-2)
		m.updatePreview()
		return m, nil
	case tea.KeyMsg:
		dm, cmd, fall := dispatchKey(m, msg)
		if !fall {
			return dm, cmd
		}
		return handleGlobalKeys(m, msg)
	}
	return m, nil
}

type palette struct {
	side, right, bottomBg, bottomFg, titleFg, titleBg, titleBorder string
}

func (m *TuiModel) palette() palette {
	if m.themeHighContrast {
		return palette{"#ffffff", "#ffffff", "#000000", "#ffffff", "#000000", "#ffff00", "#ffff00"}
	}
	return palette{"#7dd3fc", "#c084fc", "#0b1226", "#cbd5e1", "#ffffff", "#0f766e", "#0ea5a4"}
}

// View implements tea.Model.
func (m *TuiModel) View() string {
	p := m.palette()
	bodyH := m.height - 6
	if bodyH < 3 {
		bodyH = 3
	}

	status := countLabel(len(m.list.Items()))
	if m.filterMode {
		status += " • FILTER: " + m.listFilter + "▏"
	} else if m.listFilter != "" {
		status += " • filtered by " + fmt.Sprintf("%q", m.listFilter)
	}
	if m.status != "" {
		status += " • " + m.status
	}
	bottom := lipgloss.NewStyle().
		Background(lipgloss.Color(p.bottomBg)).
		Foreground(lipgloss.Color(p.bottomFg)).
		Padding(0, 1).
		Width(m.width).
		Render(" " + status + " ")

	footerText := "/ filter • ↑ / ↓ move • Enter details • d delete • T theme • q quit • ? help"
	if m.showDetail {
		footerText = "(b) Back • (d) Delete • (T) Toggle Theme • (q) Quit"
	}
	footer := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#94a3b8")).Render(footerText)

	if m.showDetail {
		body := lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.right)).
			Padding(1).
			Width(m.width - 2).
			Height(bodyH).
			Render(m.detail)
		return lipgloss.JoinVertical(lipgloss.Left, m.renderTitleBox(" "+m.itemsTitle()+" "), body, footer, bottom)
	}

	sidebar := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(p.side)).
		Width(m.list.Width()).
		Height(bodyH).
		Render(m.list.View())
	right := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(p.right)).
		Padding(1).
		Width(m.vp.Width).
		Height(bodyH).
		Render(m.vp.View())

	var body string
	if m.width < 80 {
		body = lipgloss.JoinVertical(lipgloss.Left, sidebar, right)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, right)
	}
	title := m.renderTitleBox(fmt.Sprintf(" %s (%d) ", m.itemsTitle(), len(m.list.Items())))
	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer, bottom)
}

// renderTitleBox produces the bordered title bar shared by both views.
func (m *TuiModel) renderTitleBox(text string) string {
	p := m.palette()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.titleFg)).Background(lipgloss.Color(p.titleBg)).Padding(0, 1)
	title := titleStyle.Render(text)
	w := m.width - 2
	if w < 1 {
		w = 1
	}
	titleInner := lipgloss.Place(w, 1, lipgloss.Center, lipgloss.Center, title)
	return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(p.titleBorder)).Width(m.width).Render(titleInner)
}
