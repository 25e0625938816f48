package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rodaine/table"
	"gopkg.in/yaml.v3"

	"github.com/rizface/dnet/internal/app"
	"github.com/rizface/dnet/internal/config"
	"github.com/rizface/dnet/internal/docker"
	"github.com/rizface/dnet/internal/models"
)

// TUICmd opens the interactive network manager.
type TUICmd struct{}

// Run executes the tui command.
func (c *TUICmd) Run(g *Globals) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("tui: requires a terminal (TTY); use a subcommand such as `dnet ls` instead")
	}

	cfg, client, err := g.setup()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	p := tea.NewProgram(app.New(client, *cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// ListCmd lists networks.
type ListCmd struct {
	Search string `help:"Case-insensitive match on name, ID, driver, or scope." short:"s"`
	Driver string `help:"Only networks using this driver." default:"all"`
	Scope  string `help:"Only networks with this scope." default:"all"`
	System bool   `help:"Only the built-in bridge, host, and none networks."`
	Sort   string `help:"Sort column." enum:"name,driver,scope" default:"name"`
	Desc   bool   `help:"Sort descending."`
	JSON   bool   `help:"Print JSON instead of a table." name:"json"`
	Quiet  bool   `help:"Only print network IDs." short:"q"`
}

// Run executes the ls command.
func (c *ListCmd) Run(g *Globals) error {
	cfg, client, err := g.setup()
	if err != nil {
		return fmt.Errorf("ls: %w", err)
	}
	ctx, cancel := commandContext(cfg)
	defer cancel()
	return c.run(ctx, client, os.Stdout)
}

func (c *ListCmd) run(ctx context.Context, client *docker.Client, w io.Writer) error {
	networks, err := client.ListNetworks(ctx)
	if err != nil {
		return err
	}

	filter := models.Filter{Search: c.Search, Driver: c.Driver, Scope: c.Scope, SystemOnly: c.System}
	rows := filter.Apply(networks)
	models.Sort(rows, sortField(c.Sort), !c.Desc, nil)

	switch {
	case c.JSON:
		return writeJSON(w, rows)
	case c.Quiet:
		for _, n := range rows {
			fmt.Fprintln(w, n.ID)
		}
		return nil
	}

	tbl := newTable(w, "NETWORK ID", "NAME", "DRIVER", "SCOPE", "SYSTEM")
	for _, n := range rows {
		system := ""
		if n.IsSystemNetwork() {
			system = "yes"
		}
		tbl.AddRow(n.GetShortID(), n.Name, n.Driver, n.Scope, system)
	}
	tbl.Print()
	return nil
}

func sortField(name string) models.SortField {
	switch name {
	case "driver":
		return models.SortByDriver
	case "scope":
		return models.SortByScope
	default:
		return models.SortByName
	}
}

// InspectCmd shows one network.
type InspectCmd struct {
	Network string `arg:"" help:"Network name or ID."`
	JSON    bool   `help:"Print JSON." name:"json"`
}

// Run executes the inspect command.
func (c *InspectCmd) Run(g *Globals) error {
	cfg, client, err := g.setup()
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	ctx, cancel := commandContext(cfg)
	defer cancel()
	return c.run(ctx, client, os.Stdout)
}

func (c *InspectCmd) run(ctx context.Context, client *docker.Client, w io.Writer) error {
	d, err := client.InspectNetwork(ctx, c.Network)
	if err != nil {
		return err
	}
	if c.JSON {
		return writeJSON(w, d)
	}

	fmt.Fprintf(w, "ID:          %s\n", d.ID)
	fmt.Fprintf(w, "Name:        %s\n", d.Name)
	fmt.Fprintf(w, "Driver:      %s\n", d.Driver)
	fmt.Fprintf(w, "Scope:       %s\n", d.Scope)
	fmt.Fprintf(w, "Internal:    %s\n", models.Flag(d.Internal))
	fmt.Fprintf(w, "Attachable:  %s\n", models.Flag(d.Attachable))
	fmt.Fprintf(w, "IPv6:        %s\n", models.Flag(d.EnableIPv6))
	if d.IPAM != nil {
		for _, cfg := range d.IPAM.Config {
			fmt.Fprintf(w, "Subnet:      %s", cfg.Subnet)
			if cfg.Gateway != "" {
				fmt.Fprintf(w, " (gateway %s)", cfg.Gateway)
			}
			fmt.Fprintln(w)
		}
	}
	writeMap(w, "Labels", d.Labels)
	writeMap(w, "Options", d.Options)

	endpoints := d.GetEndpoints()
	fmt.Fprintf(w, "Containers:  %d\n", len(endpoints))
	if len(endpoints) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tbl := newTable(w, "CONTAINER", "NAME", "IPV4", "IPV6", "MAC")
	for _, ep := range endpoints {
		id := ep.ContainerID
		if len(id) > 12 {
			id = id[:12]
		}
		tbl.AddRow(id, ep.Name, ep.IPv4Address, ep.IPv6Address, ep.MacAddress)
	}
	tbl.Print()
	return nil
}

func writeMap(w io.Writer, label string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(w, "%s:\n", label)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s=%s\n", k, m[k])
	}
}

// CreateCmd creates a network.
type CreateCmd struct {
	Name       string `arg:"" help:"Network name."`
	Driver     string `help:"Network driver." short:"d" default:"default" enum:"default,bridge,overlay,macvlan,ipvlan"`
	Attachable bool   `help:"Allow standalone containers to attach."`
	Internal   bool   `help:"Restrict external access."`
	IPv6       bool   `help:"Enable IPv6." name:"ipv6"`
	Subnet     string `help:"Subnet in CIDR notation."`
	Gateway    string `help:"Gateway address for the subnet."`
}

// Run executes the create command.
func (c *CreateCmd) Run(g *Globals) error {
	cfg, client, err := g.setup()
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	ctx, cancel := commandContext(cfg)
	defer cancel()
	return c.run(ctx, client, os.Stdout)
}

func (c *CreateCmd) run(ctx context.Context, client *docker.Client, w io.Writer) error {
	id, err := client.CreateNetwork(ctx, docker.CreateOptions{
		Name:       c.Name,
		Driver:     c.Driver,
		Attachable: c.Attachable,
		Internal:   c.Internal,
		IPv6:       c.IPv6,
		Subnet:     c.Subnet,
		Gateway:    c.Gateway,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, id)
	return nil
}

// RemoveCmd removes networks. The built-in networks are refused.
type RemoveCmd struct {
	Networks []string `arg:"" help:"Network names or IDs."`
}

// Run executes the rm command.
func (c *RemoveCmd) Run(g *Globals) error {
	cfg, client, err := g.setup()
	if err != nil {
		return fmt.Errorf("rm: %w", err)
	}
	ctx, cancel := commandContext(cfg)
	defer cancel()
	return c.run(ctx, client, os.Stdout)
}

func (c *RemoveCmd) run(ctx context.Context, client *docker.Client, w io.Writer) error {
	for _, n := range c.Networks {
		if models.IsSystemNetworkName(n) {
			return &docker.ValidationError{Field: "network", Message: fmt.Sprintf("%s is a system network and cannot be removed", n)}
		}
	}

	var errs []error
	for _, n := range c.Networks {
		if err := client.RemoveNetwork(ctx, n); err != nil {
			errs = append(errs, &networkError{network: n, err: err})
			continue
		}
		fmt.Fprintln(w, n)
	}
	return errors.Join(errs...)
}

// networkError ties a failure to the network argument it came from
type networkError struct {
	network string
	err     error
}

func (e *networkError) Error() string { return e.network + ": " + e.err.Error() }

func (e *networkError) Unwrap() error { return e.err }

// PruneCmd removes unused networks.
type PruneCmd struct{}

// Run executes the prune command.
func (c *PruneCmd) Run(g *Globals) error {
	cfg, client, err := g.setup()
	if err != nil {
		return fmt.Errorf("prune: %w", err)
	}
	ctx, cancel := commandContext(cfg)
	defer cancel()
	return c.run(ctx, client, os.Stdout)
}

func (c *PruneCmd) run(ctx context.Context, client *docker.Client, w io.Writer) error {
	report, err := client.PruneNetworks(ctx)
	if err != nil {
		return err
	}
	if report != "" {
		fmt.Fprintln(w, report)
	}
	return nil
}

// ConnectCmd connects a container to a network.
type ConnectCmd struct {
	Network   string `arg:"" help:"Network name or ID."`
	Container string `arg:"" help:"Container name or ID."`
}

// Run executes the connect command.
func (c *ConnectCmd) Run(g *Globals) error {
	cfg, client, err := g.setup()
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	ctx, cancel := commandContext(cfg)
	defer cancel()
	return client.ConnectContainer(ctx, c.Network, c.Container)
}

// DisconnectCmd disconnects a container from a network.
type DisconnectCmd struct {
	Network   string `arg:"" help:"Network name or ID."`
	Container string `arg:"" help:"Container name or ID."`
	Force     bool   `help:"Force the container to disconnect." short:"f"`
}

// Run executes the disconnect command.
func (c *DisconnectCmd) Run(g *Globals) error {
	cfg, client, err := g.setup()
	if err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	ctx, cancel := commandContext(cfg)
	defer cancel()
	return client.DisconnectContainer(ctx, c.Network, c.Container, c.Force)
}

// ConfigCmd groups config subcommands.
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Print the effective configuration."`
	Init ConfigInitCmd `cmd:"" help:"Write the default configuration to the user config file."`
}

// ConfigShowCmd prints the effective configuration.
type ConfigShowCmd struct{}

// Run executes the config show command.
func (c *ConfigShowCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return yaml.NewEncoder(os.Stdout).Encode(cfg)
}

// ConfigInitCmd writes the default configuration.
type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file (kept as .bak)."`
}

// Run executes the config init command.
func (c *ConfigInitCmd) Run(g *Globals) error {
	path, err := config.GetConfigFilePath()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("config: %s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if err := config.SaveConfig(path, &cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	fmt.Println(path)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run() error {
	fmt.Printf("dnet %s (commit %s, built %s)\n", version, commit, date)
	return nil
}

// commandContext bounds one CLI action by the configured timeout and Ctrl+C.
func commandContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	ctx, cancel := context.WithTimeout(ctx, cfg.Docker.Timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func newTable(w io.Writer, headers ...interface{}) table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New(headers...)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(w)
	return tbl
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

