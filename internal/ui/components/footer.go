package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/rizface/dnet/internal/ui/styles"
)

// Footer represents the application footer/legend
type Footer struct {
	width int
	help  help.Model
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	h := help.New()
	h.Styles.ShortKey = styles.KeyStyle
	h.Styles.ShortDesc = styles.DescStyle
	h.Styles.ShortSeparator = styles.DescStyle
	return &Footer{help: h}
}

// SetSize sets the footer dimensions
func (f *Footer) SetSize(width int) {
	f.width = width
	f.help.Width = width - 2
}

// View renders the footer with a status line, or the key help when status is empty
func (f *Footer) View(status string, keys help.KeyMap) string {
	footerStyle := lipgloss.NewStyle().
		Width(f.width).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.ColorMuted).
		Padding(0, 1)

	content := status
	if content == "" && keys != nil {
		content = f.help.View(keys)
	}
	return footerStyle.Render(content)
}
