package shell

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"dayboard/internal/auth"
	"dayboard/internal/logging"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		// Spinner only animates on the loading screen of a live boot.
		if m.ready || m.blocked {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case bootResultMsg:
		return m.handleBootResult(msg)

	case authEventMsg:
		return m.handleAuthEvent(auth.State(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.performShutdown()
		return m, tea.Quit
	}

	// Panel selection is only live once the gate is open.
	if !m.ready {
		return m, nil
	}

	switch msg.String() {
	case "tab", "right":
		m.activePanel = m.activePanel.Next()
	case "shift+tab", "left":
		m.activePanel = m.activePanel.Prev()
	case "1":
		m.activePanel = PanelChat
	case "2":
		m.activePanel = PanelSchedule
	case "3":
		m.activePanel = PanelNotes
	}
	return m, nil
}

func (m Model) handleBootResult(msg bootResultMsg) (tea.Model, tea.Cmd) {
	res := msg.result
	if res.Blocked {
		// Permanent halt: the gate never opens and the message stays on
		// the loading screen.
		m.blocked = true
		m.statusMessage = res.Message
		return m, nil
	}

	m.authClient = res.Client
	m.authCancel = res.Cancel
	return m, nil
}

func (m Model) handleAuthEvent(st auth.State) (tea.Model, tea.Cmd) {
	// First definitive outcome opens the gate, success or not.
	if !m.ready {
		m.ready = true
		logging.Get(logging.CategoryShell).Info("bootstrap complete",
			zap.Bool("signed_in", st.SignedIn()))
	}

	if st.SignedIn() {
		m.session = st.Session
		if st.Session.Anonymous {
			m.statusMessage = "Signed in as guest"
		} else {
			m.statusMessage = "Signed in as " + st.Session.UID
		}
	} else {
		m.session = nil
		m.statusMessage = "Signed out"
	}

	return m, m.waitForAuthEvent()
}
