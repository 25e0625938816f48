package app

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/rizface/dnet/internal/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApp_Teatest_LoadAndQuit runs the full program against a fake docker.
func TestApp_Teatest_LoadAndQuit(t *testing.T) {
	f := newFakeDocker(netApp, netOther, netBridge)
	f.setDetail(withContainers(netApp, map[string]string{"c1": "web", "c2": "db"}))

	m := New(docker.NewClient(f), testConfig(20))
	m.statusTimeout = 10 * time.Millisecond

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(140, 40))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("other"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(*App)
	require.True(t, ok)
	assert.Len(t, final.networks, 3)
	assert.Empty(t, final.errorMessage)
	assert.Empty(t, final.unavailable)
}

// TestApp_Teatest_UnavailableBanner verifies the persistent banner when docker is missing.
func TestApp_Teatest_UnavailableBanner(t *testing.T) {
	m := New(docker.NewClient(docker.Unavailable("docker not found in PATH")), testConfig(20))

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(140, 40))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Docker is not available"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final := tm.FinalModel(t).(*App)
	assert.Empty(t, final.networks)
	assert.False(t, final.loading)
}
