package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rizface/dnet/internal/docker"
)

// Commands. Each runs one adapter call under its own deadline and reports
// back with the identifiers it was dispatched with.

func fetchNetworks(client *docker.Client, timeout time.Duration, generation int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		networks, err := client.ListNetworks(ctx)
		return NetworksLoadedMsg{generation: generation, networks: networks, err: err}
	}
}

func inspectRow(client *docker.Client, timeout time.Duration, generation int, networkID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		detail, err := client.InspectNetwork(ctx, networkID)
		return DetailLoadedMsg{generation: generation, networkID: networkID, detail: detail, err: err}
	}
}

func inspectDrawer(client *docker.Client, timeout time.Duration, generation, seq int, networkID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		detail, err := client.InspectNetwork(ctx, networkID)
		return DrawerLoadedMsg{seq: seq, generation: generation, networkID: networkID, detail: detail, err: err}
	}
}

func createNetwork(client *docker.Client, timeout time.Duration, opts docker.CreateOptions) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		id, err := client.CreateNetwork(ctx, opts)
		return NetworkCreatedMsg{name: opts.Name, id: id, err: err}
	}
}

func removeNetwork(client *docker.Client, timeout time.Duration, networkID, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := client.RemoveNetwork(ctx, networkID)
		return NetworkRemovedMsg{networkID: networkID, name: name, err: err}
	}
}

func pruneNetworks(client *docker.Client, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		report, err := client.PruneNetworks(ctx)
		return NetworksPrunedMsg{report: report, err: err}
	}
}

func connectContainer(client *docker.Client, timeout time.Duration, networkID, containerID string, drawerSeq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := client.ConnectContainer(ctx, networkID, containerID)
		return ContainerConnectedMsg{networkID: networkID, containerID: containerID, drawerSeq: drawerSeq, err: err}
	}
}

func disconnectContainer(client *docker.Client, timeout time.Duration, networkID, containerID string, force bool, drawerSeq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := client.DisconnectContainer(ctx, networkID, containerID, force)
		return ContainerDisconnectedMsg{networkID: networkID, containerID: containerID, drawerSeq: drawerSeq, err: err}
	}
}

func tickRefresh(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return RefreshTickMsg{}
	})
}

func clearStatus(duration time.Duration, id int) tea.Cmd {
	return tea.Tick(duration, func(t time.Time) tea.Msg {
		return ClearStatusMsg{id: id}
	})
}
