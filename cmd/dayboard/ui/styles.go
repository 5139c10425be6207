// Package ui provides the visual styling for the dayboard shell, with
// light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors (default)
	LightBackground = lipgloss.Color("#f6f6f4")
	LightForeground = lipgloss.Color("#1b2733")
	LightPrimary    = lipgloss.Color("#1b2733")
	LightAccent     = lipgloss.Color("#2e86ab")
	LightSecondary  = lipgloss.Color("#e4e7ea")
	LightMuted      = lipgloss.Color("#9aa5ae")
	LightBorder     = lipgloss.Color("#d8dde2")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#141a21")
	DarkForeground = lipgloss.Color("#eceff1")
	DarkPrimary    = lipgloss.Color("#5fb0d8")
	DarkAccent     = lipgloss.Color("#2e86ab")
	DarkSecondary  = lipgloss.Color("#1f2933")
	DarkMuted      = lipgloss.Color("#56626c")
	DarkBorder     = lipgloss.Color("#2b3742")
	DarkCard       = lipgloss.Color("#1a232c")

	// Semantic colors (same in both modes)
	Destructive = lipgloss.Color("#e05252")
	Success     = lipgloss.Color("#6dbf6d")
	Warning     = lipgloss.Color("#f0b429")
	Info        = lipgloss.Color("#2e86ab")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName resolves a configured theme name, falling back to detection
// for unknown or empty names.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects the terminal background, defaulting to light.
func DetectTheme() Theme {
	if v := os.Getenv("COLORFGBG"); v != "" {
		// Format is usually "foreground;background"; ANSI indexes 0-6
		// and 8 are dark backgrounds.
		parts := strings.Split(v, ";")
		if len(parts) == 2 {
			if bg, err := strconv.Atoi(parts[1]); err == nil {
				if (bg >= 0 && bg <= 6) || bg == 8 {
					return DarkTheme()
				}
			}
		}
	}
	if os.Getenv("DAYBOARD_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Spinner     lipgloss.Style
	Badge       lipgloss.Style
	Divider     lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Panel       lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		TabActive: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}

// RenderTabs renders a tab bar, highlighting the active index.
func (s Styles) RenderTabs(labels []string, active int) string {
	tabs := make([]string, len(labels))
	for i, label := range labels {
		if i == active {
			tabs[i] = s.TabActive.Render(label)
		} else {
			tabs[i] = s.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}
