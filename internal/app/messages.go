package app

import (
	"github.com/rizface/dnet/internal/models"
)

// Message types for bubbletea

// NetworksLoadedMsg is sent when a list refresh completes.
// generation identifies the refresh that issued it.
type NetworksLoadedMsg struct {
	generation int
	networks   []models.NetworkSummary
	err        error
}

// DetailLoadedMsg is sent when a lazy inspect for a table row completes
type DetailLoadedMsg struct {
	generation int
	networkID  string
	detail     *models.NetworkDetail
	err        error
}

// DrawerLoadedMsg is sent when the drawer's inspect completes.
// seq identifies the drawer session that asked for it.
type DrawerLoadedMsg struct {
	seq        int
	generation int
	networkID  string
	detail     *models.NetworkDetail
	err        error
}

// Network operation messages
type NetworkCreatedMsg struct {
	name string
	id   string
	err  error
}

type NetworkRemovedMsg struct {
	networkID string
	name      string
	err       error
}

type NetworksPrunedMsg struct {
	report string
	err    error
}

// ContainerConnectedMsg carries the identifiers captured when the connect was dispatched
type ContainerConnectedMsg struct {
	networkID   string
	containerID string
	drawerSeq   int
	err         error
}

// ContainerDisconnectedMsg carries the identifiers captured when the disconnect was dispatched
type ContainerDisconnectedMsg struct {
	networkID   string
	containerID string
	drawerSeq   int
	err         error
}

// UI messages
type RefreshTickMsg struct{}

type ClearStatusMsg struct {
	id int
}
