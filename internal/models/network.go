package models

import (
	"sort"

	"github.com/docker/docker/api/types/network"
)

// SystemNetworks are the networks the engine creates by default.
// They are never offered for removal.
var SystemNetworks = map[string]struct{}{
	"bridge": {},
	"host":   {},
	"none":   {},
}

// Drivers offered when creating a network. DriverDefault omits --driver.
const (
	DriverDefault = "default"
	DriverBridge  = "bridge"
	DriverOverlay = "overlay"
	DriverMacvlan = "macvlan"
	DriverIPvlan  = "ipvlan"
)

// CreateDrivers lists the driver choices in form order
var CreateDrivers = []string{DriverDefault, DriverBridge, DriverOverlay, DriverMacvlan, DriverIPvlan}

// IsSystemNetworkName reports whether name is one of SystemNetworks
func IsSystemNetworkName(name string) bool {
	_, ok := SystemNetworks[name]
	return ok
}

// NetworkSummary is one row of `docker network ls`
type NetworkSummary struct {
	ID     string `json:"ID"`
	Name   string `json:"Name"`
	Driver string `json:"Driver"`
	Scope  string `json:"Scope"`
}

// GetShortID returns the first 12 characters of the network ID
func (n *NetworkSummary) GetShortID() string {
	return shortID(n.ID)
}

// IsSystemNetwork returns true if this is a default Docker system network
func (n *NetworkSummary) IsSystemNetwork() bool {
	return IsSystemNetworkName(n.Name)
}

// NetworkDetail is the single object returned by `docker network inspect`
type NetworkDetail struct {
	ID         string                               `json:"Id"`
	Name       string                               `json:"Name"`
	Driver     string                               `json:"Driver"`
	Scope      string                               `json:"Scope"`
	Internal   *bool                                `json:"Internal,omitempty"`
	Attachable *bool                                `json:"Attachable,omitempty"`
	EnableIPv6 *bool                                `json:"EnableIPv6,omitempty"`
	IPAM       *network.IPAM                        `json:"IPAM,omitempty"`
	Labels     map[string]string                    `json:"Labels,omitempty"`
	Options    map[string]string                    `json:"Options,omitempty"`
	Containers map[string]network.EndpointResource `json:"Containers,omitempty"`
}

// GetShortID returns the first 12 characters of the network ID
func (n *NetworkDetail) GetShortID() string {
	return shortID(n.ID)
}

// GetContainerCount returns the number of containers attached to this network
func (n *NetworkDetail) GetContainerCount() int {
	return len(n.Containers)
}

// IsSystemNetwork returns true if this is a default Docker system network
func (n *NetworkDetail) IsSystemNetwork() bool {
	return IsSystemNetworkName(n.Name)
}

// Endpoint is an attached container flattened for display
type Endpoint struct {
	ContainerID string
	network.EndpointResource
}

// GetEndpoints returns the attached containers sorted by name
func (n *NetworkDetail) GetEndpoints() []Endpoint {
	endpoints := make([]Endpoint, 0, len(n.Containers))
	for id, ep := range n.Containers {
		endpoints = append(endpoints, Endpoint{ContainerID: id, EndpointResource: ep})
	}
	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Name == endpoints[j].Name {
			return endpoints[i].ContainerID < endpoints[j].ContainerID
		}
		return endpoints[i].Name < endpoints[j].Name
	})
	return endpoints
}

// Flag renders an optional boolean as yes/no, or "-" when unknown
func Flag(b *bool) string {
	switch {
	case b == nil:
		return "-"
	case *b:
		return "yes"
	default:
		return "no"
	}
}

func shortID(id string) string {
	if len(id) >= 12 {
		return id[:12]
	}
	return id
}
