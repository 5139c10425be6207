package shell

import "dayboard/internal/logging"

// Shutdown releases the auth subscription and cancels background work.
// Safe to call multiple times; only executes once. Must run before
// tea.Quit so the subscription and the bootstrap goroutine are released.
func (m *Model) Shutdown() {
	m.shutdownOnce.Do(func() {
		if m.shutdownCancel != nil {
			m.shutdownCancel()
		}
		if m.authCancel != nil {
			m.authCancel()
		}
		if m.authClient != nil {
			m.authClient.SignOut()
		}
		logging.Get(logging.CategoryShell).Info("shell shut down")
		logging.Sync()
	})
}

// performShutdown is a value-receiver wrapper for Shutdown so Update can
// call it. Safe because Shutdown is guarded by the shared sync.Once.
func (m Model) performShutdown() {
	ptr := &m
	ptr.Shutdown()
}
