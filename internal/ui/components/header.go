package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rizface/dnet/internal/ui/styles"
)

// Header represents the application header
type Header struct {
	width int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetSize sets the header dimensions
func (h *Header) SetSize(width int) {
	h.width = width
}

// View renders the header. info is right-aligned when it fits.
func (h *Header) View(title, info string) string {
	left := "🐳 " + title
	gap := h.width - lipgloss.Width(left) - lipgloss.Width(info) - 4
	line := left
	if info != "" && gap > 0 {
		line = left + lipgloss.NewStyle().Width(gap).Render("") + info
	}

	return styles.HeaderStyle.Width(h.width).Padding(0, 2).Render(line)
}

// Banner renders a one-line message across the full width. Empty text renders nothing.
func (h *Header) Banner(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	return style.Width(h.width).Render(text)
}
