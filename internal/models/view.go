package models

// ViewType represents which pane owns the keyboard
type ViewType int

const (
	ViewTable  ViewType = iota // networks table
	ViewSearch                 // search box is focused
	ViewDrawer                 // detail drawer is open
)

// String returns the string representation of ViewType
func (v ViewType) String() string {
	switch v {
	case ViewTable:
		return "Networks"
	case ViewSearch:
		return "Search"
	case ViewDrawer:
		return "Details"
	default:
		return "Unknown"
	}
}

// DialogType identifies the open dialog, if any
type DialogType int

const (
	DialogNone DialogType = iota
	DialogCreate
	DialogConnect
	DialogConfirmRemove
	DialogConfirmPrune
	DialogConfirmDisconnect
)

// AppState represents the global application state
type AppState struct {
	CurrentView  ViewType
	PreviousView ViewType
	Dialog       DialogType
}

// NewAppState creates a new application state with default values
func NewAppState() *AppState {
	return &AppState{
		CurrentView:  ViewTable,
		PreviousView: ViewTable,
		Dialog:       DialogNone,
	}
}

// Focus switches the active view, remembering the previous one
func (s *AppState) Focus(v ViewType) {
	if s.CurrentView == v {
		return
	}
	s.PreviousView = s.CurrentView
	s.CurrentView = v
}
