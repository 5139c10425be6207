package shell

import (
	"dayboard/internal/config"
)

// modelOption customizes a test model.
type modelOption func(*Model)

// WithReady opens the loading gate directly.
func WithReady() modelOption {
	return func(m *Model) { m.ready = true }
}

// WithPanel selects the active panel.
func WithPanel(p Panel) modelOption {
	return func(m *Model) { m.activePanel = p }
}

// WithSize sets the terminal dimensions.
func WithSize(w, h int) modelOption {
	return func(m *Model) {
		m.width = w
		m.height = h
	}
}

// NewTestModel builds a shell model with a valid-looking configuration and
// no live backends. The glamour renderer is left nil so views render plain
// markdown deterministically.
func NewTestModel(opts ...modelOption) Model {
	m := New(Config{
		App: config.Config{
			AppID: "testapp",
			Provider: config.ProviderConfig{
				BaseURL: "https://id.invalid",
				APIKey:  "test",
			},
		},
		Version: "test",
	})
	m.renderer = nil

	for _, opt := range opts {
		opt(&m)
	}
	return m
}
