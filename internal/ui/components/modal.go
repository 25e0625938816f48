package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rizface/dnet/internal/ui/styles"
)

// ModalType represents the type of modal
type ModalType int

const (
	ModalConfirm ModalType = iota
	ModalForm
)

// FieldKind selects how a form field is edited
type FieldKind int

const (
	FieldText   FieldKind = iota // free text
	FieldToggle                  // space toggles
	FieldChoice                  // left/right cycles through Choices
)

// Field describes one form field and its default value
type Field struct {
	Key         string
	Label       string
	Kind        FieldKind
	Placeholder string
	Value       string   // text default, or the initially selected choice
	Choices     []string // FieldChoice only
	Checked     bool     // FieldToggle only
}

type formField struct {
	Field
	input   textinput.Model
	choice  int
	checked bool
}

// Modal represents a modal dialog
type Modal struct {
	visible     bool
	modalType   ModalType
	title       string
	message     string
	confirmText string
	cancelText  string
	confirmed   bool
	submitted   bool
	busy        bool
	err         string
	width       int
	height      int

	// For form modals
	fields     []formField
	focusIndex int
}

// NewConfirmModal creates a new confirmation modal
func NewConfirmModal(title, message string) *Modal {
	return &Modal{
		visible:     true,
		modalType:   ModalConfirm,
		title:       title,
		message:     message,
		confirmText: "Yes",
		cancelText:  "No",
	}
}

// NewFormModal creates a form modal. Fields start at their defaults.
func NewFormModal(title, confirmText string, fields []Field) *Modal {
	ff := make([]formField, len(fields))
	for i, f := range fields {
		ff[i] = formField{Field: f, checked: f.Checked}

		switch f.Kind {
		case FieldText:
			ti := textinput.New()
			ti.Placeholder = f.Placeholder
			ti.CharLimit = 200
			ti.Width = 40
			ti.SetValue(f.Value)
			ff[i].input = ti
		case FieldChoice:
			for j, c := range f.Choices {
				if c == f.Value {
					ff[i].choice = j
				}
			}
		}
	}

	m := &Modal{
		visible:     true,
		modalType:   ModalForm,
		title:       title,
		confirmText: confirmText,
		cancelText:  "Cancel",
		fields:      ff,
	}
	m.focus(0)
	return m
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.visible
}

// IsConfirmed returns whether the user confirmed
func (m *Modal) IsConfirmed() bool {
	return m.confirmed
}

// TakeSubmitted reports a pending form submission and clears it.
// A submitted form stays open until the caller hides it.
func (m *Modal) TakeSubmitted() bool {
	s := m.submitted
	m.submitted = false
	return s
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.visible = false
}

// SetError shows msg inline below the fields
func (m *Modal) SetError(msg string) {
	m.err = msg
}

// Error returns the inline error, if any
func (m *Modal) Error() string {
	return m.err
}

// SetBusy marks the form as waiting on an operation; input is ignored meanwhile
func (m *Modal) SetBusy(busy bool) {
	m.busy = busy
}

// Value returns the text or selected choice of the field with the given key
func (m *Modal) Value(key string) string {
	for _, f := range m.fields {
		if f.Key != key {
			continue
		}
		switch f.Kind {
		case FieldText:
			return f.input.Value()
		case FieldChoice:
			if f.choice < len(f.Choices) {
				return f.Choices[f.choice]
			}
		}
	}
	return ""
}

// Checked returns the state of the toggle field with the given key
func (m *Modal) Checked(key string) bool {
	for _, f := range m.fields {
		if f.Key == key {
			return f.checked
		}
	}
	return false
}

// Update handles messages
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if !m.visible || m.busy {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.modalType == ModalConfirm {
		switch keyMsg.String() {
		case "enter", "y":
			m.confirmed = true
			m.visible = false
		case "esc", "n":
			m.confirmed = false
			m.visible = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.visible = false
		return m, nil

	case "enter":
		m.err = ""
		m.submitted = true
		return m, nil

	case "tab", "down":
		m.focus(m.focusIndex + 1)
		return m, nil

	case "shift+tab", "up":
		m.focus(m.focusIndex - 1)
		return m, nil
	}

	if len(m.fields) == 0 {
		return m, nil
	}

	f := &m.fields[m.focusIndex]
	switch f.Kind {
	case FieldToggle:
		if keyMsg.String() == " " {
			f.checked = !f.checked
		}
	case FieldChoice:
		if n := len(f.Choices); n > 0 {
			switch keyMsg.String() {
			case "right", "l", " ":
				f.choice = (f.choice + 1) % n
			case "left", "h":
				f.choice = (f.choice + n - 1) % n
			}
		}
	default:
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Modal) focus(i int) {
	if len(m.fields) == 0 {
		return
	}
	n := len(m.fields)
	m.focusIndex = (i%n + n) % n

	for j := range m.fields {
		if m.fields[j].Kind != FieldText {
			continue
		}
		if j == m.focusIndex {
			m.fields[j].input.Focus()
		} else {
			m.fields[j].input.Blur()
		}
	}
}

// View renders the modal
func (m *Modal) View() string {
	if !m.visible {
		return ""
	}

	var content strings.Builder

	// Title
	content.WriteString(styles.TitleStyle.Render(m.title))
	content.WriteString("\n\n")

	// Content based on type
	switch m.modalType {
	case ModalConfirm:
		content.WriteString(m.message)
		content.WriteString("\n\n")
		content.WriteString(m.buttons(styles.ColorSuccess))

	case ModalForm:
		for i, f := range m.fields {
			content.WriteString(m.renderField(i, f))
			if i < len(m.fields)-1 {
				content.WriteString("\n")
			}
		}
		content.WriteString("\n\n")

		if m.err != "" {
			content.WriteString(styles.ErrorStyle.Render("✗ " + m.err))
			content.WriteString("\n\n")
		}

		if m.busy {
			content.WriteString(styles.LoadingStyle.Render("Working..."))
		} else {
			content.WriteString(m.buttons(styles.ColorPrimary))
		}
		content.WriteString("\n\n")
		content.WriteString(styles.DescStyle.Render("Tab: Next field • Space/←→: Change • Enter: Submit • Esc: Cancel"))
	}

	// Wrap in modal style
	modalContent := styles.ModalStyle.Render(content.String())

	// Center the modal
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
	)
}

func (m *Modal) renderField(i int, f formField) string {
	label := styles.LabelStyle.Render(f.Label)
	if i == m.focusIndex {
		label = styles.FocusedLabelStyle.Render(f.Label)
	}

	var value string
	switch f.Kind {
	case FieldToggle:
		value = "[ ]"
		if f.checked {
			value = "[x]"
		}
	case FieldChoice:
		if f.choice < len(f.Choices) {
			value = "‹ " + f.Choices[f.choice] + " ›"
		}
	default:
		value = f.input.View()
	}

	return label + " " + value
}

func (m *Modal) buttons(confirmColor lipgloss.Color) string {
	confirmBtn := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(confirmColor).
		Padding(0, 2).
		Render(m.confirmText)

	cancelBtn := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(styles.ColorMuted).
		Padding(0, 2).
		Render(m.cancelText)

	return confirmBtn + "  " + cancelBtn
}

// SetSize sets the modal dimensions for centering
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
}
