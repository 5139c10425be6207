package shell

import "strings"

// Panel selects which placeholder view the shell renders. The selector is
// mutated only by direct user selection and is not persisted across runs.
type Panel int

const (
	PanelChat Panel = iota
	PanelSchedule
	PanelNotes

	panelCount
)

// DefaultPanel is rendered at startup and for unknown selector values.
const DefaultPanel = PanelChat

var panelLabels = [...]string{"Chat", "Schedule", "Notes"}

// String returns the display label for the panel.
func (p Panel) String() string {
	if p < 0 || int(p) >= len(panelLabels) {
		return panelLabels[DefaultPanel]
	}
	return panelLabels[p]
}

// Valid reports whether p names one of the fixed panels.
func (p Panel) Valid() bool {
	return p >= 0 && p < panelCount
}

// Next cycles forward through the panels.
func (p Panel) Next() Panel {
	return (p + 1) % panelCount
}

// Prev cycles backward through the panels.
func (p Panel) Prev() Panel {
	return (p + panelCount - 1) % panelCount
}

// ParsePanel maps a selector label to a panel. Unknown or unset values
// yield the default panel.
func ParsePanel(label string) Panel {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "chat":
		return PanelChat
	case "schedule":
		return PanelSchedule
	case "notes":
		return PanelNotes
	default:
		return DefaultPanel
	}
}

// PanelLabels returns the tab labels in display order.
func PanelLabels() []string {
	return panelLabels[:]
}

// renderPanel routes the active selector to its placeholder view. Pure:
// the same selector always yields the same view, and unknown values fall
// through to the default panel.
func (m Model) renderPanel(p Panel) string {
	switch p {
	case PanelSchedule:
		return m.renderSchedulePanel()
	case PanelNotes:
		return m.renderNotesPanel()
	default:
		return m.renderChatPanel()
	}
}

const chatPlaceholderMD = `# Chat

Nothing here yet.

Conversations will live on this panel once messaging ships. Your drafts
and history will sync to your personal space.`

func (m Model) renderChatPanel() string {
	body := m.safeRenderMarkdown(chatPlaceholderMD)
	return m.styles.Panel.Render(body)
}

func (m Model) renderSchedulePanel() string {
	title := m.styles.Title.Render("Schedule")
	body := m.styles.Muted.Render(
		"Nothing here yet.\n\nYour agenda will appear on this panel once scheduling ships.")
	return m.styles.Panel.Render(title + "\n" + body)
}

func (m Model) renderNotesPanel() string {
	title := m.styles.Title.Render("Notes")
	body := m.styles.Muted.Render(
		"Nothing here yet.\n\nQuick notes will appear on this panel once note-taking ships.")
	return m.styles.Panel.Render(title + "\n" + body)
}

// safeRenderMarkdown renders markdown with panic recovery, falling back to
// the raw text.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return content
}
