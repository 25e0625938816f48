package app

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rizface/dnet/internal/config"
	"github.com/rizface/dnet/internal/docker"
	"github.com/rizface/dnet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	netApp    = summary("id-app", "app", "bridge")
	netOther  = summary("id-other", "other", "overlay")
	netBridge = summary("id-bridge", "bridge", "bridge")
)

func rowNames(a *App) []string {
	var out []string
	for _, n := range a.networksView.Rows() {
		out = append(out, n.Name)
	}
	return out
}

func TestLoad_PopulatesSortedRows(t *testing.T) {
	f := newFakeDocker(netOther, netBridge, netApp)
	a := newTestApp(t, f, 0)

	load(a)

	assert.False(t, a.loading)
	assert.Equal(t, []string{"app", "bridge", "other"}, rowNames(a))
	assert.Contains(t, a.View(), "bridge (system)")
}

func TestLoad_FailureShowsBanner(t *testing.T) {
	f := newFakeDocker(netApp)
	f.failOn("ls", "Error response from daemon: permission denied")
	a := newTestApp(t, f, 0)

	load(a)

	assert.Equal(t, docker.MsgPermission, a.errorMessage)
	assert.Empty(t, a.unavailable)
	assert.Contains(t, a.View(), docker.MsgPermission)

	send(a, keyEsc)
	assert.Empty(t, a.errorMessage)
}

func TestPrefetch_BoundedAndDeduplicated(t *testing.T) {
	f := newFakeDocker(
		summary("id-a", "alpha", "bridge"),
		summary("id-b", "bravo", "bridge"),
		summary("id-c", "charlie", "bridge"),
		summary("id-d", "delta", "bridge"),
		summary("id-e", "echo", "bridge"),
	)
	a := newTestApp(t, f, 2)

	loaded := collect(a.refresh())
	require.Len(t, loaded, 1)
	next := send(a, loaded[0])

	// Only the first two visible rows are inspected
	assert.Len(t, a.inflight, 2)
	assert.Contains(t, a.inflight, "id-a")
	assert.Contains(t, a.inflight, "id-b")

	// Rows already in flight are not inspected twice
	assert.Nil(t, a.prefetch())

	for _, msg := range collect(next) {
		send(a, msg)
	}
	assert.Empty(t, a.inflight)
	assert.Equal(t, 2, a.cache.Len())

	// Cached rows are not inspected again either
	assert.Nil(t, a.prefetch())
	assert.Len(t, f.callsFor("inspect"), 2)

	// Reversing the order brings new rows into the window
	pump(a, send(a, runes("O")))
	assert.Len(t, f.callsFor("inspect"), 4)
	assert.Equal(t, 4, a.cache.Len())
}

func TestPrefetch_DefaultLimit(t *testing.T) {
	var networks []models.NetworkSummary
	for i := 0; i < 25; i++ {
		networks = append(networks, summary(fmt.Sprintf("id-%02d", i), fmt.Sprintf("net-%02d", i), "bridge"))
	}
	f := newFakeDocker(networks...)
	a := newTestApp(t, f, config.DefaultConfig().UI.DetailPrefetch)

	loaded := collect(a.refresh())
	send(a, loaded[0])

	assert.Len(t, a.inflight, 20)
	assert.NotContains(t, a.inflight, "id-20")
}

func TestPrefetch_Disabled(t *testing.T) {
	f := newFakeDocker(netApp, netOther)
	a := newTestApp(t, f, 0)

	load(a)

	assert.Empty(t, f.callsFor("inspect"))
	assert.Zero(t, a.cache.Len())
}

func TestNetworksLoaded_StaleGenerationIgnored(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)

	first := collect(a.refresh())
	f.setNetworks(netApp, netOther)
	second := collect(a.refresh())

	send(a, second[0])
	assert.Equal(t, []string{"app", "other"}, rowNames(a))

	send(a, first[0])
	assert.Equal(t, []string{"app", "other"}, rowNames(a))
	assert.Len(t, a.networks, 2)
}

func TestDetailLoaded_StaleGenerationRefetched(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 1)

	loaded := collect(a.refresh())
	details := collect(send(a, loaded[0]))
	require.Len(t, details, 1)

	// A refresh invalidates the cache before the inspect lands
	a.refresh()
	cmd := send(a, details[0])

	assert.Zero(t, a.cache.Len())
	require.NotNil(t, cmd)

	again := msgsOf[DetailLoadedMsg](collect(cmd))
	require.Len(t, again, 1)
	assert.Equal(t, a.generation, again[0].generation)
	assert.Equal(t, "id-app", again[0].networkID)
}

func TestDetailLoaded_ErrorIsSwallowed(t *testing.T) {
	f := newFakeDocker(netApp)
	f.failOn("inspect", "Error response from daemon: network app not found")
	a := newTestApp(t, f, 5)

	load(a)

	assert.Empty(t, a.errorMessage)
	assert.Empty(t, a.inflight)
	assert.Zero(t, a.cache.Len())
}

func TestFilterKeys(t *testing.T) {
	f := newFakeDocker(netApp, netOther, netBridge)
	a := newTestApp(t, f, 0)
	load(a)

	// Driver choices are all, bridge, overlay
	send(a, runes("f"))
	assert.Equal(t, "bridge", a.filter.Driver)
	assert.Equal(t, []string{"app", "bridge"}, rowNames(a))

	send(a, runes("t"))
	assert.Equal(t, []string{"bridge"}, rowNames(a))

	send(a, runes("t"))
	send(a, runes("f"))
	send(a, runes("f"))
	assert.Equal(t, models.FilterAll, a.filter.Driver)
	assert.Len(t, rowNames(a), 3)
}

func TestSearch(t *testing.T) {
	f := newFakeDocker(netApp, netOther, netBridge)
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("/"))
	require.True(t, a.networksView.IsSearching())

	// Keys go to the search box, not the table bindings
	typeText(a, "oth")
	assert.Nil(t, a.modal)
	assert.Equal(t, "oth", a.filter.Search)
	assert.Equal(t, []string{"other"}, rowNames(a))

	send(a, keyEnter)
	assert.False(t, a.networksView.IsSearching())
	assert.Equal(t, "oth", a.filter.Search)

	send(a, runes("/"))
	send(a, keyEsc)
	assert.Empty(t, a.filter.Search)
	assert.Len(t, rowNames(a), 3)
}

func TestRemove_DisabledForSystemNetwork(t *testing.T) {
	f := newFakeDocker(netApp, netBridge)
	a := newTestApp(t, f, 0)
	load(a)

	require.Equal(t, "app", a.networksView.Selected().Name)
	assert.True(t, a.tableKeys.Remove.Enabled())

	send(a, runes("j"))
	require.Equal(t, "bridge", a.networksView.Selected().Name)
	assert.False(t, a.tableKeys.Remove.Enabled())

	send(a, runes("x"))
	assert.Nil(t, a.modal)

	// The confirm path refuses system networks as well
	a.pending = pendingAction{networkID: "id-bridge", name: "bridge"}
	assert.Nil(t, a.confirm(models.DialogConfirmRemove))
	assert.False(t, a.busy)
	assert.Empty(t, f.callsFor("rm"))
}

func TestRemove_ConfirmAndRefresh(t *testing.T) {
	f := newFakeDocker(netApp, netOther)
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("x"))
	require.NotNil(t, a.modal)
	assert.Equal(t, models.DialogConfirmRemove, a.state.Dialog)

	cmd := send(a, runes("y"))
	require.NotNil(t, cmd)
	assert.Nil(t, a.modal)
	assert.True(t, a.busy)

	removed := collect(cmd)
	require.Len(t, removed, 1)
	assert.Equal(t, [][]string{{"network", "rm", "id-app"}}, f.callsFor("rm"))

	gen := a.generation
	next := send(a, removed[0])
	assert.False(t, a.busy)
	assert.Equal(t, "Network 'app' removed", a.statusMessage)
	assert.Equal(t, gen+1, a.generation)

	// The refresh lands, then the status clears
	pump(a, next)
	assert.Empty(t, a.statusMessage)
}

func TestRemove_CancelKeepsNetwork(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("x"))
	assert.Nil(t, send(a, runes("n")))
	assert.Nil(t, a.modal)
	assert.Equal(t, pendingAction{}, a.pending)
	assert.Empty(t, f.callsFor("rm"))
}

func TestRemove_FailureShowsTranslatedBanner(t *testing.T) {
	f := newFakeDocker(netApp)
	f.failOn("rm", "Error response from daemon: error while removing network: network app id 1f2e has active endpoints")
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("x"))
	pump(a, send(a, runes("y")))

	assert.Equal(t, docker.MsgActiveEndpoints, a.errorMessage)
	assert.False(t, a.busy)
	assert.Empty(t, a.statusMessage)
}

func TestCreate_ValidationStaysInForm(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("n"))
	require.NotNil(t, a.modal)
	assert.Equal(t, models.DialogCreate, a.state.Dialog)

	cmd := send(a, keyEnter)
	assert.Nil(t, cmd)
	require.NotNil(t, a.modal)
	assert.True(t, a.modal.IsVisible())
	assert.Equal(t, "Network name is required", a.modal.Error())
	assert.Empty(t, a.errorMessage)
	assert.False(t, a.busy)
	assert.Empty(t, f.callsFor("create"))
}

func TestCreate_Success(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("n"))
	typeText(a, "net1")
	send(a, keyTab)
	send(a, runes("l")) // default -> bridge
	send(a, keyTab)
	send(a, runes(" ")) // attachable

	cmd := send(a, keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, a.busy)

	created := collect(cmd)
	require.Len(t, created, 1)
	assert.Equal(t, [][]string{{"network", "create", "--driver", "bridge", "--attachable", "net1"}}, f.callsFor("create"))

	gen := a.generation
	send(a, created[0])
	assert.Nil(t, a.modal)
	assert.Equal(t, models.DialogNone, a.state.Dialog)
	assert.False(t, a.busy)
	assert.Equal(t, "Network 'net1' created", a.statusMessage)
	assert.Equal(t, gen+1, a.generation)
}

func TestCreate_FailureKeepsForm(t *testing.T) {
	f := newFakeDocker(netApp)
	f.failOn("create", "Error response from daemon: network with name net1 already exists")
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("n"))
	typeText(a, "net1")
	pump(a, send(a, keyEnter))

	require.NotNil(t, a.modal)
	assert.True(t, a.modal.IsVisible())
	assert.Equal(t, docker.MsgDuplicateName, a.modal.Error())
	assert.Equal(t, docker.MsgDuplicateName, a.errorMessage)
	assert.Equal(t, "net1", a.modal.Value(fieldName))
	assert.False(t, a.busy)

	// The user can fix the input and leave
	send(a, keyEsc)
	assert.Nil(t, a.modal)
}

func TestConnect_ValidationStaysInForm(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("c"))
	require.NotNil(t, a.modal)
	assert.Equal(t, "app", a.modal.Value(fieldNetwork))

	assert.Nil(t, send(a, keyEnter))
	assert.Equal(t, "Container is required", a.modal.Error())
	assert.Empty(t, f.callsFor("connect"))
}

func TestDrawer_DiscardsResultForClosedDrawer(t *testing.T) {
	f := newFakeDocker(netApp, netOther)
	a := newTestApp(t, f, 0)
	load(a)

	first := collect(send(a, keyEnter))
	require.True(t, a.drawer.open)
	send(a, keyEsc)
	require.False(t, a.drawer.open)

	// Closed drawer: the late result is dropped
	send(a, first[0])
	assert.Nil(t, a.detailView.Detail())

	// Reopened drawer: only the new session's result is shown
	second := collect(send(a, keyEnter))
	send(a, first[0])
	assert.Nil(t, a.detailView.Detail())

	send(a, second[0])
	require.NotNil(t, a.detailView.Detail())
	assert.Equal(t, "app", a.detailView.Detail().Name)

	_, cached := a.cache.Get("id-app")
	assert.True(t, cached)
}

func TestDrawer_ShowsCachedDetailWhileLoading(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 1)
	load(a)
	require.Equal(t, 1, a.cache.Len())

	cmd := send(a, keyEnter)
	require.NotNil(t, cmd)
	require.NotNil(t, a.detailView.Detail())
	assert.Equal(t, "app", a.detailView.Detail().Name)
}

func TestDisconnect_UsesNetworkCapturedAtDispatch(t *testing.T) {
	f := newFakeDocker(netApp, netOther)
	f.setDetail(withContainers(netApp, map[string]string{"c1": "web"}))
	a := newTestApp(t, f, 0)
	load(a)

	pump(a, send(a, keyEnter))
	require.NotNil(t, a.detailView.SelectedEndpoint())
	assert.True(t, a.drawerKeys.Disconnect.Enabled())

	send(a, runes("d"))
	require.Equal(t, models.DialogConfirmDisconnect, a.state.Dialog)
	cmd := send(a, runes("y"))
	require.NotNil(t, cmd)

	// The user moves on before the command runs
	send(a, keyEsc)
	send(a, runes("j"))
	require.Equal(t, "other", a.networksView.Selected().Name)

	done := collect(cmd)
	require.Len(t, done, 1)
	assert.Equal(t, [][]string{{"network", "disconnect", "id-app", "c1"}}, f.callsFor("disconnect"))

	next := send(a, done[0])
	assert.Equal(t, "Disconnected c1", a.statusMessage)

	// The drawer it was issued from is gone, so only the list reloads
	msgs := collect(next)
	assert.Empty(t, msgsOf[DrawerLoadedMsg](msgs))
	assert.Len(t, msgsOf[NetworksLoadedMsg](msgs), 1)
}

func TestDisconnect_ReloadsOpenDrawer(t *testing.T) {
	f := newFakeDocker(netApp)
	f.setDetail(withContainers(netApp, map[string]string{"c1": "web"}))
	a := newTestApp(t, f, 0)
	load(a)

	pump(a, send(a, keyEnter))
	send(a, runes("D"))
	cmd := send(a, runes("y"))
	done := collect(cmd)
	assert.Equal(t, [][]string{{"network", "disconnect", "--force", "id-app", "c1"}}, f.callsFor("disconnect"))

	f.setDetail(withContainers(netApp, nil))
	pump(a, send(a, done[0]))

	require.NotNil(t, a.detailView.Detail())
	assert.Zero(t, a.detailView.Detail().GetContainerCount())
	assert.Nil(t, a.detailView.SelectedEndpoint())
	assert.False(t, a.drawerKeys.Disconnect.Enabled())
}

func TestConnect_FromDrawer(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)
	pump(a, send(a, keyEnter))

	send(a, runes("c"))
	require.NotNil(t, a.modal)
	assert.Equal(t, "app", a.modal.Value(fieldNetwork))

	send(a, keyTab)
	typeText(a, "db")
	cmd := send(a, keyEnter)
	require.NotNil(t, cmd)

	done := msgsOf[ContainerConnectedMsg](collect(cmd))
	require.Len(t, done, 1)
	assert.Equal(t, a.drawer.seq, done[0].drawerSeq)
	assert.Equal(t, [][]string{{"network", "connect", "app", "db"}}, f.callsFor("connect"))

	msgs := collect(send(a, done[0]))
	assert.Nil(t, a.modal)
	assert.Len(t, msgsOf[DrawerLoadedMsg](msgs), 1)
}

func TestConnect_FailureKeepsForm(t *testing.T) {
	f := newFakeDocker(netApp)
	f.failOn("connect", "Error response from daemon: No such container: db")
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("c"))
	send(a, keyTab)
	typeText(a, "db")
	pump(a, send(a, keyEnter))

	require.NotNil(t, a.modal)
	assert.Equal(t, docker.MsgNoSuchContainer, a.modal.Error())
	assert.Equal(t, "db", a.modal.Value(fieldContainer))
}

func TestPrune(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	send(a, runes("p"))
	require.Equal(t, models.DialogConfirmPrune, a.state.Dialog)

	done := collect(send(a, keyEnter))
	require.Len(t, done, 1)
	assert.Equal(t, [][]string{{"network", "prune", "--force"}}, f.callsFor("prune"))

	send(a, done[0])
	assert.Equal(t, "No unused networks to remove", a.statusMessage)
}

func TestMutations_BlockedWhileBusy(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	a.busy = true
	send(a, runes("n"))
	send(a, runes("x"))
	send(a, runes("p"))
	send(a, runes("c"))
	assert.Nil(t, a.modal)
}

func TestHostUnavailable_AtStartup(t *testing.T) {
	a := New(docker.NewClient(docker.Unavailable("docker not found in PATH")), testConfig(20))
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.NotEmpty(t, a.unavailable)
	assert.Nil(t, a.refresh())
	assert.Nil(t, send(a, runes("r")))
	assert.Nil(t, send(a, runes("n")))
	assert.Nil(t, a.modal)
	assert.Contains(t, a.View(), "Docker is not available")
}

func TestHostUnavailable_DuringSession(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	f.mu.Lock()
	f.err = fmt.Errorf("%w: exec: docker: not found", docker.ErrHostUnavailable)
	f.mu.Unlock()

	load(a)
	assert.NotEmpty(t, a.unavailable)
	assert.Empty(t, a.errorMessage)
	assert.Nil(t, a.refresh())
	assert.Nil(t, send(a, RefreshTickMsg{}))
}

func TestRefreshTick_SkippedWhileDialogOpen(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	gen := a.generation
	send(a, runes("n"))
	send(a, RefreshTickMsg{})
	assert.Equal(t, gen, a.generation)

	send(a, keyEsc)
	send(a, RefreshTickMsg{})
	assert.Equal(t, gen+1, a.generation)
}

func TestClearStatus_OnlyLatest(t *testing.T) {
	f := newFakeDocker()
	a := newTestApp(t, f, 0)

	a.setStatus("one")
	first := a.statusID
	a.setStatus("two")

	send(a, ClearStatusMsg{id: first})
	assert.Equal(t, "two", a.statusMessage)

	send(a, ClearStatusMsg{id: a.statusID})
	assert.Empty(t, a.statusMessage)
}

func TestPruneSummary(t *testing.T) {
	assert.Equal(t, "No unused networks to remove", pruneSummary(""))
	assert.Equal(t, "Pruned networks: old, stale", pruneSummary("Deleted Networks:\nold\nstale\n"))
}

func TestNextChoice(t *testing.T) {
	choices := []string{"all", "bridge", "overlay"}
	assert.Equal(t, "bridge", nextChoice(choices, "all"))
	assert.Equal(t, "all", nextChoice(choices, "overlay"))
	assert.Equal(t, "all", nextChoice(choices, "macvlan"))
}

func TestDrawer_RefetchUpdatesViewAndCache(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	pump(a, send(a, keyEnter))
	require.NotNil(t, a.detailView.Detail())
	require.Zero(t, a.detailView.Detail().GetContainerCount())

	f.setDetail(withContainers(netApp, map[string]string{"c1": "web"}))
	pump(a, send(a, runes("r")))

	assert.Len(t, f.callsFor("inspect"), 2)
	assert.Equal(t, []string{"network", "inspect", "id-app"}, f.callsFor("inspect")[1])
	require.NotNil(t, a.detailView.Detail())
	assert.Equal(t, 1, a.detailView.Detail().GetContainerCount())

	cached, ok := a.cache.Get("id-app")
	require.True(t, ok)
	assert.Equal(t, 1, cached.GetContainerCount())
}

func TestDrawer_RefetchAfterRefreshSkipsCache(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)
	pump(a, send(a, keyEnter))

	refetch := send(a, runes("r"))
	require.NotNil(t, refetch)

	// A list refresh invalidates the cache before the re-fetch lands
	load(a)
	require.Zero(t, a.cache.Len())

	f.setDetail(withContainers(netApp, map[string]string{"c1": "web"}))
	pump(a, refetch)

	require.NotNil(t, a.detailView.Detail())
	assert.Equal(t, 1, a.detailView.Detail().GetContainerCount())
	_, ok := a.cache.Get("id-app")
	assert.False(t, ok)
}

func TestDrawer_EscDismissesBannerBeforeClosing(t *testing.T) {
	f := newFakeDocker(netApp)
	a := newTestApp(t, f, 0)
	load(a)

	f.failOn("inspect", "Error response from daemon: permission denied")
	pump(a, send(a, keyEnter))
	require.Equal(t, docker.MsgPermission, a.errorMessage)

	send(a, keyEsc)
	assert.Empty(t, a.errorMessage)
	assert.True(t, a.drawer.open)

	send(a, keyEsc)
	assert.False(t, a.drawer.open)
}

func TestView_DrawerFitsTerminalWidth(t *testing.T) {
	for _, width := range []int{100, 110, 120, 140, 160, 170, 200} {
		t.Run(fmt.Sprintf("width %d", width), func(t *testing.T) {
			long := summary("id-long", "zz-network-with-a-rather-long-descriptive-name", "macvlan")
			f := newFakeDocker(netApp, netBridge, long)
			f.setDetail(withContainers(netApp, map[string]string{"c1": "web", "c2": "database-primary"}))
			a := newTestApp(t, f, 20)
			a.Update(tea.WindowSizeMsg{Width: width, Height: 40})
			load(a)

			pump(a, send(a, keyEnter))
			require.True(t, a.drawer.open)
			require.NotNil(t, a.detailView.Detail())

			for i, line := range strings.Split(a.View(), "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), width, "line %d: %q", i, line)
			}
		})
	}
}
