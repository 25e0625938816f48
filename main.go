package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rizface/dnet/internal/config"
	"github.com/rizface/dnet/internal/docker"
	"github.com/rizface/dnet/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	exitSuccess     = 0
	exitFailure     = 1
	exitUnavailable = 2
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"Extra config file layered over the user and project config." type:"existingfile" placeholder:"PATH"`
	Docker   string `help:"Docker CLI binary to run." placeholder:"BINARY"`
	LogLevel string `help:"Log level (debug, info, warn, error)." placeholder:"LEVEL"`
}

// CLI is the top-level command structure for dnet.
type CLI struct {
	Globals

	Version    kong.VersionFlag `help:"Show version." short:"V"`
	TUI        TUICmd           `cmd:"" name:"tui" default:"1" help:"Open the interactive network manager (default)."`
	List       ListCmd          `cmd:"" name:"ls" aliases:"list" help:"List networks."`
	Inspect    InspectCmd       `cmd:"" help:"Show details of a network."`
	Create     CreateCmd        `cmd:"" help:"Create a network."`
	Remove     RemoveCmd        `cmd:"" name:"rm" aliases:"remove" help:"Remove one or more networks."`
	Prune      PruneCmd         `cmd:"" help:"Remove all unused networks."`
	Connect    ConnectCmd       `cmd:"" help:"Connect a container to a network."`
	Disconnect DisconnectCmd    `cmd:"" help:"Disconnect a container from a network."`
	Cfg        ConfigCmd        `cmd:"" name:"config" help:"Show or initialize configuration."`
	Ver        VersionCmd       `cmd:"" name:"version" help:"Print version information."`
}

// loadConfig loads layered config, then applies flag overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	userPath, err := config.GetConfigFilePath()
	if err != nil {
		return nil, err
	}

	paths := []string{userPath, config.ProjectFile}
	if g.Config != "" {
		paths = append(paths, g.Config)
	}

	cfg, err := config.LoadFrom(paths...)
	if err != nil {
		return nil, err
	}

	if g.Docker != "" {
		cfg.Docker.Binary = g.Docker
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads config, starts logging, and builds the docker client.
func (g *Globals) setup() (*config.Config, *docker.Client, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logging.Init(cfg.Log.Level)
	logging.L().Debugw("config loaded",
		"binary", cfg.Docker.Binary,
		"timeout", cfg.Docker.Timeout,
		"detail_prefetch", cfg.UI.DetailPrefetch,
	)

	return cfg, docker.NewClient(docker.NewBridge(cfg.Docker.Binary)), nil
}

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, docker.ErrHostUnavailable) {
		return exitUnavailable
	}
	return exitFailure
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dnet"),
		kong.Description("Manage Docker networks from the terminal."),
		kong.UsageOnError(),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		os.Exit(exitCode(err))
	}
}

// errorText prefers the user-facing message for docker failures.
// Joined errors print one line each.
func errorText(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range joined.Unwrap() {
			lines = append(lines, errorText(e))
		}
		return strings.Join(lines, "\n")
	}
	var netErr *networkError
	if errors.As(err, &netErr) {
		return netErr.network + ": " + errorText(netErr.err)
	}

	var cmdErr *docker.CommandError
	var valErr *docker.ValidationError
	if errors.As(err, &cmdErr) || errors.As(err, &valErr) || errors.Is(err, docker.ErrHostUnavailable) {
		return docker.UserMessage(err)
	}
	return err.Error()
}
