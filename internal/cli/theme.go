package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	ErrorLabel lipgloss.Style
	ErrorText  lipgloss.Style
}

// newTheme binds styles to w so color support is detected for that stream,
// not for stdout.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		ErrorLabel: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		ErrorText:  r.NewStyle().Faint(true),
	}
}
