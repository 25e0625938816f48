package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rizface/dnet/internal/config"
	"github.com/rizface/dnet/internal/docker"
	"github.com/rizface/dnet/internal/logging"
	"github.com/rizface/dnet/internal/models"
	"github.com/rizface/dnet/internal/ui"
	"github.com/rizface/dnet/internal/ui/components"
	"github.com/rizface/dnet/internal/ui/styles"
	"github.com/rizface/dnet/internal/ui/views"
)

// Form field keys
const (
	fieldName       = "name"
	fieldDriver     = "driver"
	fieldAttachable = "attachable"
	fieldInternal   = "internal"
	fieldIPv6       = "ipv6"
	fieldSubnet     = "subnet"
	fieldGateway    = "gateway"
	fieldNetwork    = "network"
	fieldContainer  = "container"
)

// Below this width the drawer replaces the table instead of sitting beside it
const drawerSplitWidth = 110

// drawerState identifies one opening of the detail drawer
type drawerState struct {
	open      bool
	seq       int
	networkID string // captured when the drawer opened
}

// pendingAction is the target of an open dialog, captured when it opened
type pendingAction struct {
	networkID   string
	name        string
	containerID string
	force       bool
	drawerSeq   int
}

// App is the main application model
type App struct {
	// State
	state  *models.AppState
	width  int
	height int
	ready  bool

	// Services
	client *docker.Client
	cfg    config.Config

	// UI Components
	header     *components.Header
	footer     *components.Footer
	modal      *components.Modal
	spinner    spinner.Model
	tableKeys  ui.TableKeys
	drawerKeys ui.DrawerKeys

	// Views
	networksView *views.NetworksView
	detailView   *views.DetailView

	// Data
	networks   []models.NetworkSummary
	filter     models.Filter
	sortField  models.SortField
	sortAsc    bool
	cache      *DetailCache
	inflight   map[string]struct{}
	generation int
	loading    bool
	busy       bool // a mutating operation is in flight

	drawer    drawerState
	drawerSeq int
	pending   pendingAction

	// Status
	statusMessage string
	statusID      int
	statusTimeout time.Duration
	errorMessage  string
	unavailable   string
}

// New creates a new application over client
func New(client *docker.Client, cfg config.Config) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.StatusStyle

	a := &App{
		state:         models.NewAppState(),
		client:        client,
		cfg:           cfg,
		header:        components.NewHeader(),
		footer:        components.NewFooter(),
		spinner:       s,
		tableKeys:     ui.TableKeyMap(),
		drawerKeys:    ui.DrawerKeyMap(),
		networksView:  views.NewNetworksView(),
		detailView:    views.NewDetailView(),
		filter:        models.NewFilter(),
		sortField:     models.SortByName,
		sortAsc:       true,
		cache:         NewDetailCache(),
		inflight:      make(map[string]struct{}),
		statusTimeout: 3 * time.Second,
	}

	if !client.Available() {
		a.unavailable = docker.UserMessage(docker.ErrHostUnavailable)
	}
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, a.refresh()}
	if a.cfg.UI.RefreshInterval > 0 && a.unavailable == "" {
		cmds = append(cmds, tickRefresh(a.cfg.UI.RefreshInterval))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.syncKeys()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case NetworksLoadedMsg:
		if msg.generation != a.generation {
			// Superseded by a newer refresh
			return nil
		}
		a.loading = false
		if msg.err != nil {
			a.showError(msg.err)
			a.refreshRows()
			return nil
		}
		a.networks = msg.networks
		a.refreshRows()
		return a.prefetch()

	case DetailLoadedMsg:
		delete(a.inflight, msg.networkID)
		if msg.generation != a.generation {
			// Fetched before the last invalidation; the row may need a fresh fetch
			a.refreshRows()
			return a.prefetch()
		}
		if msg.err != nil {
			logging.L().Debugw("lazy detail failed", "network", msg.networkID, "error", msg.err)
		} else {
			a.cache.Set(msg.networkID, msg.detail)
		}
		a.refreshRows()
		return nil

	case DrawerLoadedMsg:
		if !a.drawer.open || msg.seq != a.drawer.seq {
			logging.L().Debugw("discarding detail for closed drawer", "network", msg.networkID)
			return nil
		}
		if msg.err != nil {
			a.detailView.SetError(docker.UserMessage(msg.err))
			a.showError(msg.err)
			return nil
		}
		a.detailView.SetDetail(msg.detail)
		if msg.generation == a.generation {
			a.cache.Set(msg.networkID, msg.detail)
			a.refreshRows()
		}
		return nil

	case NetworkCreatedMsg:
		a.busy = false
		if msg.err != nil {
			return a.failDialog(msg.err)
		}
		a.closeDialog()
		a.errorMessage = ""
		return tea.Batch(a.refresh(), a.setStatus(fmt.Sprintf("Network '%s' created", msg.name)))

	case NetworkRemovedMsg:
		a.busy = false
		if msg.err != nil {
			a.showError(msg.err)
			return nil
		}
		a.errorMessage = ""
		return tea.Batch(a.refresh(), a.setStatus(fmt.Sprintf("Network '%s' removed", msg.name)))

	case NetworksPrunedMsg:
		a.busy = false
		if msg.err != nil {
			a.showError(msg.err)
			return nil
		}
		a.errorMessage = ""
		return tea.Batch(a.refresh(), a.setStatus(pruneSummary(msg.report)))

	case ContainerConnectedMsg:
		a.busy = false
		if msg.err != nil {
			return a.failDialog(msg.err)
		}
		a.closeDialog()
		a.errorMessage = ""
		return tea.Batch(
			a.refresh(),
			a.reloadDrawer(msg.drawerSeq),
			a.setStatus(fmt.Sprintf("Connected %s to %s", msg.containerID, msg.networkID)),
		)

	case ContainerDisconnectedMsg:
		a.busy = false
		if msg.err != nil {
			a.showError(msg.err)
			return nil
		}
		a.errorMessage = ""
		return tea.Batch(
			a.refresh(),
			a.reloadDrawer(msg.drawerSeq),
			a.setStatus(fmt.Sprintf("Disconnected %s", shortRef(msg.containerID))),
		)

	case RefreshTickMsg:
		if a.unavailable != "" {
			return nil
		}
		next := tickRefresh(a.cfg.UI.RefreshInterval)
		// Skip while the user is typing or a mutation is pending
		if a.modal != nil || a.networksView.IsSearching() || a.busy {
			return next
		}
		return tea.Batch(a.refresh(), next)

	case ClearStatusMsg:
		if msg.id == a.statusID {
			a.statusMessage = ""
		}
	}

	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// Handle modal first if visible
	if a.modal != nil {
		return a.updateModal(msg)
	}

	if a.networksView.IsSearching() {
		return a.updateSearch(msg)
	}

	if a.drawer.open {
		return a.handleDrawerKey(msg)
	}
	return a.handleTableKey(msg)
}

func (a *App) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	keys := a.tableKeys

	if key.Matches(msg, keys.Quit) {
		return tea.Quit
	}
	if a.unavailable != "" {
		// Nothing can be dispatched without a docker host
		return nil
	}

	switch {
	case key.Matches(msg, keys.Dismiss):
		a.errorMessage = ""
		return nil

	case key.Matches(msg, keys.Refresh):
		return a.refresh()

	case key.Matches(msg, keys.Search):
		a.state.Focus(models.ViewSearch)
		return a.networksView.FocusSearch()

	case key.Matches(msg, keys.Driver):
		a.filter.Driver = nextChoice(models.Choices(a.networks, func(n models.NetworkSummary) string { return n.Driver }), a.filter.Driver)
		return a.filterChanged()

	case key.Matches(msg, keys.Scope):
		a.filter.Scope = nextChoice(models.Choices(a.networks, func(n models.NetworkSummary) string { return n.Scope }), a.filter.Scope)
		return a.filterChanged()

	case key.Matches(msg, keys.System):
		a.filter.SystemOnly = !a.filter.SystemOnly
		return a.filterChanged()

	case key.Matches(msg, keys.Sort):
		a.sortField = a.sortField.Next()
		return a.filterChanged()

	case key.Matches(msg, keys.Order):
		a.sortAsc = !a.sortAsc
		return a.filterChanged()

	case key.Matches(msg, keys.Open):
		return a.openDrawer()

	case key.Matches(msg, keys.Create):
		return a.openCreate()

	case key.Matches(msg, keys.Remove):
		return a.openRemove()

	case key.Matches(msg, keys.Prune):
		return a.openPrune()

	case key.Matches(msg, keys.Connect):
		ref := ""
		if sel := a.networksView.Selected(); sel != nil {
			ref = sel.Name
		}
		return a.openConnect(ref, 0)
	}

	var cmd tea.Cmd
	a.networksView, cmd = a.networksView.Update(msg)
	return cmd
}

func (a *App) handleDrawerKey(msg tea.KeyMsg) tea.Cmd {
	keys := a.drawerKeys

	if key.Matches(msg, keys.Close) {
		// The first esc clears a banner, the next one closes the drawer
		if a.errorMessage != "" {
			a.errorMessage = ""
			return nil
		}
		a.closeDrawer()
		return nil
	}
	if a.unavailable != "" {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Refetch):
		a.detailView.SetLoading(true)
		return inspectDrawer(a.client, a.timeout(), a.generation, a.drawer.seq, a.drawer.networkID)

	case key.Matches(msg, keys.Connect):
		ref := a.drawer.networkID
		if d := a.detailView.Detail(); d != nil {
			ref = d.Name
		}
		return a.openConnect(ref, a.drawer.seq)

	case key.Matches(msg, keys.Disconnect):
		return a.openDisconnect(false)

	case key.Matches(msg, keys.ForceDisconnect):
		return a.openDisconnect(true)
	}

	var cmd tea.Cmd
	a.detailView, cmd = a.detailView.Update(msg)
	return cmd
}

func (a *App) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		a.networksView.BlurSearch()
		a.state.Focus(models.ViewTable)
		return nil
	case "esc":
		a.networksView.SetSearch("")
		a.networksView.BlurSearch()
		a.state.Focus(models.ViewTable)
		a.filter.Search = ""
		return a.filterChanged()
	}

	var cmd tea.Cmd
	a.networksView, cmd = a.networksView.Update(msg)
	if v := a.networksView.SearchValue(); v != a.filter.Search {
		a.filter.Search = v
		return tea.Batch(cmd, a.filterChanged())
	}
	return cmd
}

func (a *App) updateModal(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	a.modal, cmd = a.modal.Update(msg)

	if a.modal.TakeSubmitted() {
		return a.submitForm()
	}

	if !a.modal.IsVisible() {
		confirmed := a.modal.IsConfirmed()
		dialog := a.state.Dialog
		a.closeDialog()
		if confirmed {
			return a.confirm(dialog)
		}
		a.pending = pendingAction{}
		return nil
	}

	return cmd
}

// submitForm validates the open form and dispatches its operation.
// Validation failures stay in the form and never reach docker.
func (a *App) submitForm() tea.Cmd {
	switch a.state.Dialog {
	case models.DialogCreate:
		opts := docker.CreateOptions{
			Name:       strings.TrimSpace(a.modal.Value(fieldName)),
			Driver:     a.modal.Value(fieldDriver),
			Attachable: a.modal.Checked(fieldAttachable),
			Internal:   a.modal.Checked(fieldInternal),
			IPv6:       a.modal.Checked(fieldIPv6),
			Subnet:     strings.TrimSpace(a.modal.Value(fieldSubnet)),
			Gateway:    strings.TrimSpace(a.modal.Value(fieldGateway)),
		}
		if err := opts.Validate(); err != nil {
			a.modal.SetError(docker.UserMessage(err))
			return nil
		}
		a.busy = true
		a.modal.SetBusy(true)
		return createNetwork(a.client, a.timeout(), opts)

	case models.DialogConnect:
		networkID, containerID, err := docker.ValidateAttachment(a.modal.Value(fieldNetwork), a.modal.Value(fieldContainer))
		if err != nil {
			a.modal.SetError(docker.UserMessage(err))
			return nil
		}
		a.busy = true
		a.modal.SetBusy(true)
		return connectContainer(a.client, a.timeout(), networkID, containerID, a.pending.drawerSeq)
	}
	return nil
}

// confirm runs the action behind a confirmed dialog against its captured target
func (a *App) confirm(dialog models.DialogType) tea.Cmd {
	p := a.pending
	a.pending = pendingAction{}

	switch dialog {
	case models.DialogConfirmRemove:
		if models.IsSystemNetworkName(p.name) {
			return nil
		}
		a.busy = true
		return removeNetwork(a.client, a.timeout(), p.networkID, p.name)

	case models.DialogConfirmPrune:
		a.busy = true
		return pruneNetworks(a.client, a.timeout())

	case models.DialogConfirmDisconnect:
		a.busy = true
		return disconnectContainer(a.client, a.timeout(), p.networkID, p.containerID, p.force, p.drawerSeq)
	}
	return nil
}

func (a *App) openCreate() tea.Cmd {
	if a.busy {
		return nil
	}
	a.openModal(models.DialogCreate, components.NewFormModal("Create Network", "Create", []components.Field{
		{Key: fieldName, Label: "Name", Placeholder: "my-network (required)"},
		{Key: fieldDriver, Label: "Driver", Kind: components.FieldChoice, Choices: models.CreateDrivers, Value: models.DriverDefault},
		{Key: fieldAttachable, Label: "Attachable", Kind: components.FieldToggle},
		{Key: fieldInternal, Label: "Internal", Kind: components.FieldToggle},
		{Key: fieldIPv6, Label: "IPv6", Kind: components.FieldToggle},
		{Key: fieldSubnet, Label: "Subnet", Placeholder: "172.20.0.0/16 (optional)"},
		{Key: fieldGateway, Label: "Gateway", Placeholder: "172.20.0.1 (optional)"},
	}))
	return nil
}

func (a *App) openConnect(networkRef string, drawerSeq int) tea.Cmd {
	if a.busy {
		return nil
	}
	a.pending = pendingAction{drawerSeq: drawerSeq}
	a.openModal(models.DialogConnect, components.NewFormModal("Connect Container", "Connect", []components.Field{
		{Key: fieldNetwork, Label: "Network", Placeholder: "network name or ID", Value: networkRef},
		{Key: fieldContainer, Label: "Container", Placeholder: "container name or ID"},
	}))
	return nil
}

func (a *App) openRemove() tea.Cmd {
	if a.busy {
		return nil
	}
	sel := a.networksView.Selected()
	if sel == nil || sel.IsSystemNetwork() {
		return nil
	}
	a.pending = pendingAction{networkID: sel.ID, name: sel.Name}
	a.openModal(models.DialogConfirmRemove, components.NewConfirmModal(
		"Remove Network",
		fmt.Sprintf("Are you sure you want to remove network '%s'?", sel.Name),
	))
	return nil
}

func (a *App) openPrune() tea.Cmd {
	if a.busy {
		return nil
	}
	a.openModal(models.DialogConfirmPrune, components.NewConfirmModal(
		"Prune Unused Networks",
		"Remove all networks not used by at least one container?",
	))
	return nil
}

func (a *App) openDisconnect(force bool) tea.Cmd {
	if a.busy {
		return nil
	}
	ep := a.detailView.SelectedEndpoint()
	if ep == nil {
		return nil
	}

	title := "Disconnect Container"
	if force {
		title = "Force Disconnect Container"
	}
	network := a.drawer.networkID
	if d := a.detailView.Detail(); d != nil {
		network = d.Name
	}
	name := ep.Name
	if name == "" {
		name = shortRef(ep.ContainerID)
	}

	a.pending = pendingAction{
		networkID:   a.drawer.networkID,
		containerID: ep.ContainerID,
		force:       force,
		drawerSeq:   a.drawer.seq,
	}
	a.openModal(models.DialogConfirmDisconnect, components.NewConfirmModal(
		title,
		fmt.Sprintf("Disconnect '%s' from network '%s'?", name, network),
	))
	return nil
}

func (a *App) openModal(dialog models.DialogType, m *components.Modal) {
	m.SetSize(a.width, a.height)
	a.modal = m
	a.state.Dialog = dialog
}

// closeDialog drops the open dialog. Forms are rebuilt from defaults when reopened.
func (a *App) closeDialog() {
	a.modal = nil
	a.state.Dialog = models.DialogNone
}

// failDialog keeps a form open and shows err inline and in the banner
func (a *App) failDialog(err error) tea.Cmd {
	if a.modal != nil {
		a.modal.SetBusy(false)
		a.modal.SetError(docker.UserMessage(err))
	}
	a.showError(err)
	return nil
}

func (a *App) openDrawer() tea.Cmd {
	sel := a.networksView.Selected()
	if sel == nil {
		return nil
	}

	a.drawerSeq++
	a.drawer = drawerState{open: true, seq: a.drawerSeq, networkID: sel.ID}
	a.state.Focus(models.ViewDrawer)

	a.detailView.Reset()
	if d, ok := a.cache.Get(sel.ID); ok {
		a.detailView.SetDetail(d)
		a.detailView.SetLoading(true)
	}
	a.layout()

	if a.unavailable != "" {
		return nil
	}
	return inspectDrawer(a.client, a.timeout(), a.generation, a.drawer.seq, sel.ID)
}

func (a *App) closeDrawer() {
	a.drawer = drawerState{}
	a.state.Focus(models.ViewTable)
	a.layout()
}

// reloadDrawer re-inspects the drawer network if the drawer session seq is still open
func (a *App) reloadDrawer(seq int) tea.Cmd {
	if !a.drawer.open || a.drawer.seq != seq {
		return nil
	}
	a.detailView.SetLoading(true)
	return inspectDrawer(a.client, a.timeout(), a.generation, a.drawer.seq, a.drawer.networkID)
}

// refresh clears the detail cache and reloads the network list
func (a *App) refresh() tea.Cmd {
	if a.unavailable != "" {
		return nil
	}
	a.cache.Invalidate()
	a.generation++
	a.loading = true
	return fetchNetworks(a.client, a.timeout(), a.generation)
}

// prefetch inspects the leading visible rows that are neither cached nor in flight
func (a *App) prefetch() tea.Cmd {
	if a.unavailable != "" {
		return nil
	}

	var cmds []tea.Cmd
	for i, n := range a.networksView.Rows() {
		if i >= a.cfg.UI.DetailPrefetch {
			break
		}
		if _, ok := a.cache.Get(n.ID); ok {
			continue
		}
		if _, ok := a.inflight[n.ID]; ok {
			continue
		}
		a.inflight[n.ID] = struct{}{}
		cmds = append(cmds, inspectRow(a.client, a.timeout(), a.generation, n.ID))
	}

	if len(cmds) == 0 {
		return nil
	}
	a.refreshRows()
	return tea.Batch(cmds...)
}

func (a *App) filterChanged() tea.Cmd {
	a.refreshRows()
	return a.prefetch()
}

// visibleRows applies the filter, then the sort
func (a *App) visibleRows() []models.NetworkSummary {
	rows := a.filter.Apply(a.networks)
	models.Sort(rows, a.sortField, a.sortAsc, a.containerCount)
	return rows
}

func (a *App) refreshRows() {
	a.networksView.SetRows(a.visibleRows(), a.rowDetail)
}

func (a *App) rowDetail(id string) (*models.NetworkDetail, bool) {
	d, _ := a.cache.Get(id)
	_, loading := a.inflight[id]
	return d, loading
}

func (a *App) containerCount(id string) int {
	if d, ok := a.cache.Get(id); ok {
		return d.GetContainerCount()
	}
	return -1
}

func (a *App) showError(err error) {
	if errors.Is(err, docker.ErrHostUnavailable) {
		a.unavailable = docker.UserMessage(err)
		return
	}
	a.errorMessage = docker.UserMessage(err)
}

func (a *App) setStatus(msg string) tea.Cmd {
	a.statusID++
	a.statusMessage = msg
	return clearStatus(a.statusTimeout, a.statusID)
}

func (a *App) timeout() time.Duration {
	if a.cfg.Docker.Timeout <= 0 {
		return 30 * time.Second
	}
	return a.cfg.Docker.Timeout
}

// syncKeys enables only the actions valid for the current selection
func (a *App) syncKeys() {
	sel := a.networksView.Selected()
	a.tableKeys.Remove.SetEnabled(sel != nil && !sel.IsSystemNetwork())
	a.tableKeys.Open.SetEnabled(sel != nil)

	ep := a.detailView.SelectedEndpoint()
	a.drawerKeys.Disconnect.SetEnabled(ep != nil)
	a.drawerKeys.ForceDisconnect.SetEnabled(ep != nil)
}

func (a *App) layout() {
	a.header.SetSize(a.width)
	a.footer.SetSize(a.width)
	if a.modal != nil {
		a.modal.SetSize(a.width, a.height)
	}

	// Header, banner, and a two-line footer
	bodyHeight := max(a.height-4, 5)

	switch {
	case a.drawer.open && a.width >= drawerSplitWidth:
		tableWidth := a.width / 2
		a.networksView.SetSize(tableWidth, bodyHeight)
		a.detailView.SetSize(a.width-tableWidth, bodyHeight)
	case a.drawer.open:
		a.detailView.SetSize(a.width, bodyHeight)
	default:
		a.networksView.SetSize(a.width, bodyHeight)
	}
}

// View renders the application
func (a *App) View() string {
	if !a.ready {
		return "Initializing dnet...\n\nConnecting to Docker..."
	}

	// If modal is visible, show it on top
	if a.modal != nil && a.modal.IsVisible() {
		return a.modal.View()
	}

	info := fmt.Sprintf("%d networks", len(a.networks))
	switch {
	case a.busy:
		info = a.spinner.View() + styles.WarningStyle.Render(" working")
	case a.loading:
		info = a.spinner.View() + " refreshing"
	}
	header := a.header.View("dnet · Networks", info)

	var banner string
	switch {
	case a.unavailable != "":
		banner = a.header.Banner("⚠ "+a.unavailable, styles.UnavailableStyle)
	case a.errorMessage != "":
		banner = a.header.Banner("✗ "+a.errorMessage+"  (esc to dismiss)", styles.BannerStyle)
	}

	var body string
	if a.loading && len(a.networks) == 0 {
		body = a.spinner.View() + " Loading networks..."
	} else {
		body = a.networksView.View(a.filter, a.sortField, a.sortAsc, len(a.networks))
	}
	if a.drawer.open {
		if a.width >= drawerSplitWidth {
			left := lipgloss.NewStyle().MaxWidth(a.width / 2).Render(body)
			body = lipgloss.JoinHorizontal(lipgloss.Top, left, a.detailView.View())
		} else {
			body = a.detailView.View()
		}
	}

	var status string
	if a.statusMessage != "" {
		status = styles.SuccessStyle.Render("✓ " + a.statusMessage)
	}
	var keys help.KeyMap = a.tableKeys
	if a.drawer.open {
		keys = a.drawerKeys
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		banner,
		body,
		a.footer.View(status, keys),
	)
}

// nextChoice returns the choice after current, wrapping to the first
func nextChoice(choices []string, current string) string {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}

// pruneSummary condenses the engine's prune report to one line
func pruneSummary(report string) string {
	var names []string
	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		names = append(names, line)
	}
	if len(names) == 0 {
		return "No unused networks to remove"
	}
	return "Pruned networks: " + strings.Join(names, ", ")
}

func shortRef(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
