// Package theme provides the light/dark theme store and the lipgloss
// palettes derived from it.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vitor14i/postboard/internal/storage"
)

// Theme is one of the two supported visual themes.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is the theme used when nothing has been persisted.
const Default = Light

// Valid reports whether t is a recognised theme value.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Icon returns the toggle-control glyph for the theme: moon while
// light is active, sun while dark is active.
func (t Theme) Icon() string {
	if t == Dark {
		return "☀"
	}
	return "☾"
}

// Manager reads and writes the theme preference through the store.
type Manager struct {
	store storage.Store
}

// NewManager creates a Manager over the given store.
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// Active returns the persisted theme. Missing or invalid values fail
// safe to the default.
func (m *Manager) Active() Theme {
	if m.store == nil {
		return Default
	}

	raw, ok, err := m.store.Get(storage.ThemeKey)
	if err != nil || !ok {
		return Default
	}

	t := Theme(raw)
	if !t.Valid() {
		return Default
	}
	return t
}

// Set persists the theme. Invalid values fail safe to the default.
func (m *Manager) Set(t Theme) error {
	if !t.Valid() {
		t = Default
	}
	if m.store == nil {
		return nil
	}
	return m.store.Set(storage.ThemeKey, string(t))
}

// Toggle flips the active theme, persists it and returns the new value.
func (m *Manager) Toggle() (Theme, error) {
	next := Light
	if m.Active() == Light {
		next = Dark
	}
	return next, m.Set(next)
}

// Styles is the lipgloss palette for a theme.
type Styles struct {
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Title        lipgloss.Style
	Muted        lipgloss.Style
	Body         lipgloss.Style
	Like         lipgloss.Style
	LikeActive   lipgloss.Style
	Empty        lipgloss.Style
	Toggle       lipgloss.Style

	// Notification severities
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}

// StylesFor returns the palette for the given theme.
func StylesFor(t Theme) Styles {
	if t == Dark {
		return darkStyles()
	}
	return lightStyles()
}

func lightStyles() Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Body:       lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Like:       lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
		LikeActive: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		// Outline color varies by theme: light outline while light
		Toggle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("32")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	}
}

func darkStyles() Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("75")).
			Padding(0, 1),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Body:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Like:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		LikeActive: lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true),
		Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		// Warning outline while dark
		Toggle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Severity returns the notification style for a severity name,
// defaulting to info.
func (s Styles) Severity(level string) lipgloss.Style {
	switch level {
	case "success":
		return s.Success
	case "warning":
		return s.Warning
	case "danger":
		return s.Danger
	default:
		return s.Info
	}
}
