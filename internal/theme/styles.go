package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Var is a single CSS custom property.
type Var struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Vars returns the theme as CSS custom properties in a stable order.
func (t Spec) Vars() []Var {
	return []Var{
		{"--color-primary", t.Colors.Primary},
		{"--color-secondary", t.Colors.Secondary},
		{"--color-accent", t.Colors.Accent},
		{"--color-background", t.Colors.Background},
		{"--color-surface", t.Colors.Surface},
		{"--color-text", t.Colors.Text},
		{"--color-text-muted", t.Colors.TextMuted},
		{"--color-success", t.Colors.Success},
		{"--color-warning", t.Colors.Warning},
		{"--color-error", t.Colors.Error},
		{"--color-border", t.Colors.Border},
		{"--effect-glow", t.Effects.Glow},
		{"--effect-shadow", t.Effects.Shadow},
		{"--effect-gradient", t.Effects.Gradient},
		{"--effect-blur", t.Effects.Blur},
		{"--font-heading", t.Fonts.Heading},
		{"--font-body", t.Fonts.Body},
		{"--font-mono", t.Fonts.Mono},
	}
}

// CSS renders the variables as a :root block a host page can include.
func (t Spec) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range t.Vars() {
		b.WriteString("  ")
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Styles are the terminal renditions of a theme.
type Styles struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Address  lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
	Status   lipgloss.Style
}

// Styles derives lipgloss styles from the theme colors. Effects and fonts have no
// terminal equivalent and are only exposed through Vars.
func (t Spec) Styles() Styles {
	c := t.Colors
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Primary)),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Secondary)).
			MarginBottom(1),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextMuted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true),
		Address: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Secondary)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Warning)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(c.Primary)).
			Foreground(lipgloss.Color(c.Background)).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Background(lipgloss.Color(c.Surface)).
			Padding(0, 1),
	}
}
