package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rizface/dnet/internal/models"
	"github.com/rizface/dnet/internal/ui/styles"
)

// DetailView renders one inspected network: its fields in a scrollable
// pane and its attached containers in a table
type DetailView struct {
	detail    *models.NetworkDetail
	endpoints []models.Endpoint
	loading   bool
	err       string

	info       viewport.Model
	containers table.Model

	width  int
	height int
}

// NewDetailView creates an empty detail drawer
func NewDetailView() *DetailView {
	t := table.New(
		table.WithColumns(endpointColumns(60)),
		table.WithFocused(true),
		table.WithHeight(5),
	)
	t.SetStyles(styles.TableStyles())

	return &DetailView{
		info:       viewport.New(60, 10),
		containers: t,
	}
}

func endpointColumns(width int) []table.Column {
	fixed := []table.Column{
		{Title: "IPv4", Width: 18},
		{Title: "IPv6", Width: 14},
		{Title: "MAC", Width: 17},
	}
	// MAC goes first, then IPv6, when the drawer is narrow
	nameWidth := width - columnsWidth(fixed) - 2
	for _, i := range []int{2, 1} {
		if nameWidth >= 10 {
			break
		}
		fixed[i].Width = 0
		nameWidth = width - columnsWidth(fixed) - 2
	}
	nameWidth = max(nameWidth, 10)
	return append([]table.Column{{Title: "Container", Width: nameWidth}}, fixed...)
}

// SetSize updates the drawer dimensions
func (v *DetailView) SetSize(width, height int) {
	v.width = width
	v.height = height

	inner := max(width-4, 20) // border and padding
	infoHeight := max(height/2-2, 3)
	tableHeight := max(height-infoHeight-6, 3)

	v.info.Width = inner
	v.info.Height = infoHeight
	v.containers.SetColumns(endpointColumns(inner))
	v.containers.SetWidth(inner)
	v.containers.SetHeight(tableHeight)
	v.refreshInfo()
}

// Reset clears the drawer and marks it loading
func (v *DetailView) Reset() {
	v.detail = nil
	v.endpoints = nil
	v.err = ""
	v.loading = true
	v.containers.SetRows(nil)
	v.info.SetContent("")
	v.info.GotoTop()
}

// SetLoading marks a fetch in progress without discarding the shown detail
func (v *DetailView) SetLoading(loading bool) {
	v.loading = loading
}

// SetError shows a fetch failure in place of the detail
func (v *DetailView) SetError(msg string) {
	v.loading = false
	v.err = msg
}

// SetDetail shows d. The container cursor stays on the same container when present.
func (v *DetailView) SetDetail(d *models.NetworkDetail) {
	selected := ""
	if ep := v.SelectedEndpoint(); ep != nil {
		selected = ep.ContainerID
	}

	v.detail = d
	v.loading = false
	v.err = ""
	v.endpoints = d.GetEndpoints()

	rows := make([]table.Row, len(v.endpoints))
	cursor := 0
	for i, ep := range v.endpoints {
		rows[i] = table.Row{endpointName(ep), orDash(ep.IPv4Address), orDash(ep.IPv6Address), orDash(ep.MacAddress)}
		if ep.ContainerID == selected {
			cursor = i
		}
	}
	v.containers.SetRows(rows)
	if len(rows) > 0 {
		v.containers.SetCursor(cursor)
	}
	v.refreshInfo()
}

// Detail returns the network currently shown, if any
func (v *DetailView) Detail() *models.NetworkDetail {
	return v.detail
}

// SelectedEndpoint returns the container under the cursor
func (v *DetailView) SelectedEndpoint() *models.Endpoint {
	i := v.containers.Cursor()
	if i < 0 || i >= len(v.endpoints) {
		return nil
	}
	ep := v.endpoints[i]
	return &ep
}

// Update moves the container cursor; page keys scroll the info pane
func (v *DetailView) Update(msg tea.Msg) (*DetailView, tea.Cmd) {
	var cmd tea.Cmd
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			v.info, cmd = v.info.Update(msg)
			return v, cmd
		}
	}
	v.containers, cmd = v.containers.Update(msg)
	return v, cmd
}

// View renders the drawer
func (v *DetailView) View() string {
	var b strings.Builder

	title := "Network"
	if v.detail != nil {
		title = v.detail.Name
	}
	if v.loading {
		title += styles.LoadingStyle.Render("  loading...")
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	switch {
	case v.err != "":
		b.WriteString(styles.ErrorStyle.Render("✗ " + v.err))
	case v.detail == nil:
		b.WriteString(styles.SubtitleStyle.Render("Loading network details..."))
	default:
		b.WriteString(v.info.View())
		b.WriteString("\n\n")
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Containers (%d)", len(v.endpoints))))
		b.WriteString("\n")
		if len(v.endpoints) == 0 {
			b.WriteString(styles.SubtitleStyle.Render("No containers attached."))
		} else {
			b.WriteString(v.containers.View())
		}
	}

	style := styles.DrawerStyle
	if v.width > 0 {
		style = style.Width(v.width - 2)
	}
	return style.Render(b.String())
}

func (v *DetailView) refreshInfo() {
	if v.detail == nil {
		return
	}
	v.info.SetContent(renderInfo(v.detail))
}

func renderInfo(d *models.NetworkDetail) string {
	var b strings.Builder
	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	field("ID", d.ID)
	field("Driver", d.Driver)
	field("Scope", d.Scope)
	if d.IsSystemNetwork() {
		field("Kind", styles.SystemStyle.Render("system (cannot be removed)"))
	}
	flag := func(b *bool) string {
		v := models.Flag(b)
		return styles.FlagStyle(v).Render(v)
	}
	field("Internal", flag(d.Internal))
	field("Attachable", flag(d.Attachable))
	field("IPv6", flag(d.EnableIPv6))

	if d.IPAM != nil {
		driver := d.IPAM.Driver
		if driver == "" {
			driver = "default"
		}
		field("IPAM", driver)
		for _, c := range d.IPAM.Config {
			line := c.Subnet
			if c.Gateway != "" {
				line += "  gw " + c.Gateway
			}
			if c.IPRange != "" {
				line += "  range " + c.IPRange
			}
			field("", line)
		}
	}

	writeMap(&b, "Labels", d.Labels)
	writeMap(&b, "Options", d.Options)

	return strings.TrimRight(b.String(), "\n")
}

func writeMap(b *strings.Builder, label string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString(styles.LabelStyle.Render(label))
	b.WriteString("\n")
	for _, k := range keys {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(k + "=" + m[k]))
		b.WriteString("\n")
	}
}

func endpointName(ep models.Endpoint) string {
	if ep.Name != "" {
		return ep.Name
	}
	if len(ep.ContainerID) > 12 {
		return ep.ContainerID[:12]
	}
	return ep.ContainerID
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
