// Package shell provides the interactive TUI shell for dayboard.
// The shell is split across multiple files for maintainability:
//   - model.go: types, messages, Init, bootstrap command (this file)
//   - update.go: the Update loop
//   - view.go: rendering functions
//   - panels.go: panel selector and placeholder panels
//   - lifecycle.go: shutdown coordination
package shell

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"dayboard/cmd/dayboard/ui"
	"dayboard/internal/auth"
	"dayboard/internal/config"
	"dayboard/internal/store"
)

// Config holds everything the shell needs to start. It is assembled at
// process entry and passed in whole; the shell reads no ambient state.
type Config struct {
	App     config.Config
	Version string
}

// Model is the bubbletea model for the dayboard shell.
type Model struct {
	// UI components
	spinner  spinner.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	cfg Config

	// Bootstrap gate state. ready flips true on the first auth event and
	// never flips back; blocked means the bootstrap halted permanently.
	ready         bool
	blocked       bool
	statusMessage string

	// Session identity: nil before sign-in, set by the auth listener,
	// cleared on sign-out.
	session *auth.Session

	activePanel Panel

	// Backend handles
	authClient  *auth.Client
	authCancel  func() // releases the auth-state subscription
	authEvents  chan auth.State
	storeClient *store.Client

	width  int
	height int

	// Shutdown coordination
	shutdownOnce   *sync.Once
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// Messages for tea updates.
type (
	// bootResultMsg carries the outcome of the one-shot bootstrap
	// sequence: either a blocked state or live client handles.
	bootResultMsg struct {
		result auth.BootstrapResult
	}

	// authEventMsg is one auth-state change delivered by the provider
	// subscription. The first one, success or failure alike, opens the
	// loading gate.
	authEventMsg auth.State
)

// New constructs the shell model. Rendering starts on the loading screen;
// Init kicks off the bootstrap.
func New(cfg Config) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.App.Theme))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		renderer = nil // rendering falls back to plain text
	}

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		spinner:        sp,
		styles:         styles,
		renderer:       renderer,
		cfg:            cfg,
		statusMessage:  "Signing in...",
		activePanel:    DefaultPanel,
		authEvents:     make(chan auth.State, 16),
		storeClient:    store.NewClient(cfg.App.Store, cfg.App.AppID),
		shutdownOnce:   &sync.Once{},
		shutdownCtx:    ctx,
		shutdownCancel: cancel,
	}
}

// Init starts the spinner, the auth-event pump, and the bootstrap.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForAuthEvent(),
		m.performBootstrap(),
	)
}

// performBootstrap runs the identity bootstrap sequence off the render
// loop. The listener it registers forwards provider state changes into the
// authEvents channel, which waitForAuthEvent drains back into the Update
// loop as messages.
func (m Model) performBootstrap() tea.Cmd {
	events := m.authEvents
	appCfg := m.cfg.App
	ctx := m.shutdownCtx

	return func() tea.Msg {
		res := auth.Bootstrap(ctx, auth.BootstrapConfig{
			Provider:     appCfg.Provider,
			InitialToken: appCfg.InitialToken,
		}, func(st auth.State) {
			select {
			case events <- st:
			case <-ctx.Done():
			}
		})
		return bootResultMsg{result: res}
	}
}

// waitForAuthEvent delivers the next auth-state change as a message.
// Re-issued after every delivery; ends quietly when the channel closes.
func (m Model) waitForAuthEvent() tea.Cmd {
	events := m.authEvents
	return func() tea.Msg {
		st, ok := <-events
		if !ok {
			return nil
		}
		return authEventMsg(st)
	}
}

// Run starts the interactive shell and blocks until it exits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
