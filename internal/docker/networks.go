package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/rizface/dnet/internal/models"
)

// All network operations go through `docker network <subcommand>`
const networkCommand = "network"

// CreateOptions describes a network to create
type CreateOptions struct {
	Name       string
	Driver     string // empty or models.DriverDefault omits --driver
	Attachable bool
	Internal   bool
	IPv6       bool
	Subnet     string
	Gateway    string
}

// Validate checks the client-side preconditions for create
func (o CreateOptions) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return &ValidationError{Field: "name", Message: "Network name is required"}
	}
	return nil
}

// Args builds the `network` argument vector. Flags come first, the name last.
// Values are passed through as given; callers trim user input.
func (o CreateOptions) Args() []string {
	args := []string{"create"}
	if o.Driver != "" && o.Driver != models.DriverDefault {
		args = append(args, "--driver", o.Driver)
	}
	if o.Attachable {
		args = append(args, "--attachable")
	}
	if o.Internal {
		args = append(args, "--internal")
	}
	if o.IPv6 {
		args = append(args, "--ipv6")
	}
	if o.Subnet != "" {
		args = append(args, "--subnet", o.Subnet)
	}
	if o.Gateway != "" {
		args = append(args, "--gateway", o.Gateway)
	}
	return append(args, o.Name)
}

// ListNetworks returns all Docker networks
func (c *Client) ListNetworks(ctx context.Context) ([]models.NetworkSummary, error) {
	out, err := c.run(ctx, networkCommand, []string{"ls", "--no-trunc", "--format", "{{json .}}"})
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}

	networks, err := ParseLines[models.NetworkSummary](out)
	if err != nil {
		logParseError("list", err)
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}

	return networks, nil
}

// InspectNetwork returns detailed information about a network by name or ID
func (c *Client) InspectNetwork(ctx context.Context, networkID string) (*models.NetworkDetail, error) {
	out, err := c.run(ctx, networkCommand, []string{"inspect", networkID})
	if err != nil {
		return nil, fmt.Errorf("failed to inspect network %s: %w", networkID, err)
	}

	detail, err := ParseFirst[models.NetworkDetail](out)
	if err != nil {
		logParseError("inspect", err)
		return nil, fmt.Errorf("failed to inspect network %s: %w", networkID, err)
	}

	return &detail, nil
}

// CreateNetwork creates a new network and returns the engine-assigned ID
func (c *Client) CreateNetwork(ctx context.Context, opts CreateOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	out, err := c.run(ctx, networkCommand, opts.Args())
	if err != nil {
		return "", fmt.Errorf("failed to create network %s: %w", opts.Name, err)
	}
	return strings.TrimSpace(out), nil
}

// RemoveNetwork removes a network by name or ID
func (c *Client) RemoveNetwork(ctx context.Context, networkID string) error {
	if _, err := c.run(ctx, networkCommand, []string{"rm", networkID}); err != nil {
		return fmt.Errorf("failed to remove network %s: %w", networkID, err)
	}
	return nil
}

// PruneNetworks removes all unused networks and returns the engine's report
func (c *Client) PruneNetworks(ctx context.Context) (string, error) {
	out, err := c.run(ctx, networkCommand, []string{"prune", "--force"})
	if err != nil {
		return "", fmt.Errorf("failed to prune networks: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// ConnectContainer connects a container to a network
func (c *Client) ConnectContainer(ctx context.Context, networkID, containerID string) error {
	networkID, containerID, err := ValidateAttachment(networkID, containerID)
	if err != nil {
		return err
	}

	if _, err := c.run(ctx, networkCommand, []string{"connect", networkID, containerID}); err != nil {
		return fmt.Errorf("failed to connect container %s to network %s: %w", containerID, networkID, err)
	}
	return nil
}

// DisconnectContainer disconnects a container from a network
func (c *Client) DisconnectContainer(ctx context.Context, networkID, containerID string, force bool) error {
	networkID, containerID, err := ValidateAttachment(networkID, containerID)
	if err != nil {
		return err
	}

	args := []string{"disconnect"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, networkID, containerID)

	if _, err := c.run(ctx, networkCommand, args); err != nil {
		return fmt.Errorf("failed to disconnect container %s from network %s: %w", containerID, networkID, err)
	}
	return nil
}

// ValidateAttachment trims both identifiers and requires them to be non-empty
func ValidateAttachment(networkID, containerID string) (string, string, error) {
	networkID = strings.TrimSpace(networkID)
	containerID = strings.TrimSpace(containerID)
	if networkID == "" {
		return "", "", &ValidationError{Field: "network", Message: "Network is required"}
	}
	if containerID == "" {
		return "", "", &ValidationError{Field: "container", Message: "Container is required"}
	}
	return networkID, containerID, nil
}
