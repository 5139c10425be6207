package shell

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return m.renderLoadingScreen()
	}

	header := m.renderHeader()
	tabs := m.styles.RenderTabs(PanelLabels(), int(m.activePanel))
	panel := m.styles.Content.Render(m.renderPanel(m.activePanel))
	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		tabs,
		panel,
		footer,
	)
}

// renderLoadingScreen blocks the shell until the bootstrap produces a
// definitive outcome. A blocked bootstrap parks here permanently with its
// message in place of the spinner.
func (m Model) renderLoadingScreen() string {
	title := m.styles.Header.Render(" dayboard ")

	var status string
	if m.blocked {
		status = m.styles.Error.Render(m.statusMessage)
	} else {
		status = lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(), " ", m.styles.Muted.Render(m.statusMessage))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"\n",
		status,
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" dayboard ")
	version := m.styles.Badge.Render(m.cfg.Version)

	var status string
	if m.session != nil {
		status = m.styles.Success.Render(m.statusMessage)
	} else {
		status = m.styles.Warning.Render(m.statusMessage)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", version, "  ", status)
	return lipgloss.JoinVertical(lipgloss.Left, line, m.styles.RenderDivider(m.width))
}

func (m Model) renderFooter() string {
	hotkeys := "Tab: next panel | 1/2/3: jump | q: quit"
	timestamp := time.Now().Format("15:04")
	return m.styles.Footer.Render(fmt.Sprintf("%s | %s | %s",
		m.activePanel.String(), timestamp, hotkeys))
}
