package app

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/docker/docker/api/types/network"
	"github.com/rizface/dnet/internal/config"
	"github.com/rizface/dnet/internal/docker"
	"github.com/rizface/dnet/internal/models"
)

// fakeDocker answers `docker network` subcommands from in-memory state.
// Cmds run on their own goroutines under teatest, so access is locked.
type fakeDocker struct {
	mu       sync.Mutex
	networks []models.NetworkSummary
	details  map[string]models.NetworkDetail
	fail     map[string]string // subcommand verb -> stderr
	err      error             // returned for every call when set
	calls    [][]string
}

func newFakeDocker(networks ...models.NetworkSummary) *fakeDocker {
	f := &fakeDocker{
		details: make(map[string]models.NetworkDetail),
		fail:    make(map[string]string),
	}
	f.setNetworks(networks...)
	return f
}

func (f *fakeDocker) setNetworks(networks ...models.NetworkSummary) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.networks = networks
	for _, n := range networks {
		if _, ok := f.details[n.ID]; !ok {
			f.details[n.ID] = models.NetworkDetail{ID: n.ID, Name: n.Name, Driver: n.Driver, Scope: n.Scope}
		}
	}
}

func (f *fakeDocker) setDetail(d models.NetworkDetail) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details[d.ID] = d
}

func (f *fakeDocker) failOn(verb, stderr string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[verb] = stderr
}

func (f *fakeDocker) Exec(_ context.Context, subcommand string, args []string) (docker.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, append([]string{subcommand}, args...))
	if f.err != nil {
		return docker.Result{}, f.err
	}

	verb := args[0]
	if stderr, ok := f.fail[verb]; ok {
		return docker.Result{Stderr: stderr, ExitCode: 1}, nil
	}

	switch verb {
	case "ls":
		var b strings.Builder
		for _, n := range f.networks {
			line, _ := json.Marshal(n)
			b.Write(line)
			b.WriteByte('\n')
		}
		return docker.Result{Stdout: b.String()}, nil

	case "inspect":
		ref := args[len(args)-1]
		for id, d := range f.details {
			if id == ref || d.Name == ref {
				out, _ := json.Marshal([]models.NetworkDetail{d})
				return docker.Result{Stdout: string(out)}, nil
			}
		}
		return docker.Result{
			Stdout:   "[]\n",
			Stderr:   "Error response from daemon: network " + ref + " not found",
			ExitCode: 1,
		}, nil

	case "create":
		return docker.Result{Stdout: "c0ffee0000000000\n"}, nil
	}
	return docker.Result{}, nil
}

// callsFor returns the recorded argv of every call with the given verb
func (f *fakeDocker) callsFor(verb string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out [][]string
	for _, c := range f.calls {
		if len(c) > 1 && c[1] == verb {
			out = append(out, c)
		}
	}
	return out
}

func summary(id, name, driver string) models.NetworkSummary {
	return models.NetworkSummary{ID: id, Name: name, Driver: driver, Scope: "local"}
}

func withContainers(n models.NetworkSummary, names map[string]string) models.NetworkDetail {
	d := models.NetworkDetail{ID: n.ID, Name: n.Name, Driver: n.Driver, Scope: n.Scope, Containers: map[string]network.EndpointResource{}}
	for id, name := range names {
		d.Containers[id] = network.EndpointResource{Name: name, IPv4Address: "172.18.0.2/16"}
	}
	return d
}

func testConfig(prefetch int) config.Config {
	cfg := config.DefaultConfig()
	cfg.Docker.Timeout = 5 * time.Second
	cfg.UI.DetailPrefetch = prefetch
	return cfg
}

func newTestApp(t *testing.T, f *fakeDocker, prefetch int) *App {
	t.Helper()
	a := New(docker.NewClient(f), testConfig(prefetch))
	a.statusTimeout = time.Millisecond
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return a
}

// collect runs cmd and returns every message it produces, flattening batches
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// pump feeds cmd's messages back into a until nothing is left to do
func pump(a *App, cmd tea.Cmd) {
	queue := collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		_, next := a.Update(msg)
		queue = append(queue, collect(next)...)
	}
}

// load runs the initial refresh to completion
func load(a *App) {
	pump(a, a.refresh())
}

func send(a *App, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(a *App, s string) {
	for _, r := range s {
		send(a, runes(string(r)))
	}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func msgsOf[T tea.Msg](msgs []tea.Msg) []T {
	var out []T
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
