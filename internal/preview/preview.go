// Package preview renders palettes and derived theme documents as
// terminal swatch blocks for the CLI.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ajramos/termtheme/internal/palette"
	"github.com/ajramos/termtheme/internal/theme"
)

const swatch = "      "

// Document renders every role of a theme document as a labeled swatch
// line, in the fixed role order.
func Document(doc theme.Document) string {
	var b strings.Builder
	for _, role := range theme.Roles() {
		c := doc[role]
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Render(swatch)
		fmt.Fprintf(&b, "%s %s  %-20s\n", block, c.Hex(), role)
	}
	return b.String()
}

// Palette renders the 20 source slots with their conventional names.
func Palette(p palette.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\n", p.Name(), p.Source())
	for s := palette.Slot(0); s < palette.NumSlots; s++ {
		c := p.Color(s)
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Render(swatch)
		fmt.Fprintf(&b, "%s %s  %-14s\n", block, c.Hex(), s.Name())
	}
	return b.String()
}

// SampleText renders a short legibility sample: primary text on the
// window background, plus one line per accent.
func SampleText(doc theme.Document) string {
	bg := lipgloss.Color(doc[theme.RoleWindowBackground].Hex())
	line := func(role theme.Role, label string) string {
		return lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(doc[role].Hex())).
			Render(" " + label + " ")
	}
	rows := []string{
		line(theme.RoleTextPrimary, "The quick brown fox jumps over the lazy dog"),
		line(theme.RoleTextSecondary, "secondary text"),
		line(theme.RoleAccentError, "error"),
		line(theme.RoleAccentWarning, "warning"),
		line(theme.RoleAccentSuccess, "success"),
		line(theme.RoleAccentInfo, "info"),
	}
	return strings.Join(rows, "\n") + "\n"
}
