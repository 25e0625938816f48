package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rizface/dnet/internal/models"
	"github.com/rizface/dnet/internal/ui/styles"
)

// Loading is shown in detail cells while an inspect is in flight
const Loading = "…"

// RowDetail reports the cached detail for a network ID and whether one is loading
type RowDetail func(id string) (detail *models.NetworkDetail, loading bool)

// NetworksView displays the filtered, sorted networks table
type NetworksView struct {
	table  table.Model
	search textinput.Model

	// Rows currently shown, in table order
	rows []models.NetworkSummary

	width  int
	height int
}

// NewNetworksView creates a new networks view
func NewNetworksView() *NetworksView {
	t := table.New(
		table.WithColumns(networkColumns(80)),
		table.WithFocused(true),
	)
	t.SetStyles(styles.TableStyles())

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search name, id, driver, scope"
	search.CharLimit = 100

	return &NetworksView{
		table:  t,
		search: search,
	}
}

func networkColumns(width int) []table.Column {
	// Fixed columns; Name takes what is left
	fixed := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Driver", Width: 10},
		{Title: "Scope", Width: 7},
		{Title: "IPv6", Width: 5},
		{Title: "Internal", Width: 8},
		{Title: "Attach", Width: 6},
		{Title: "Ctrs", Width: 5},
	}
	// Dropped in this order when Name would fall under its minimum.
	// A zero-width column is skipped by the table but keeps its row cell.
	optional := []int{4, 5, 3, 2}

	nameWidth := width - columnsWidth(fixed) - 2
	for _, i := range optional {
		if nameWidth >= minNameWidth {
			break
		}
		fixed[i].Width = 0
		nameWidth = width - columnsWidth(fixed) - 2
	}
	nameWidth = max(nameWidth, minNameWidth)

	return append([]table.Column{{Title: "Name", Width: nameWidth}}, fixed...)
}

const minNameWidth = 12

// columnsWidth sums the rendered width of the visible columns, cell padding included
func columnsWidth(cols []table.Column) int {
	used := 0
	for _, c := range cols {
		if c.Width > 0 {
			used += c.Width + 2
		}
	}
	return used
}

// SetSize updates the view dimensions
func (v *NetworksView) SetSize(width, height int) {
	v.width = width
	v.height = height

	v.table.SetColumns(networkColumns(width))
	v.table.SetWidth(width)
	// Filter bar and search line
	v.table.SetHeight(max(height-2, 3))
	v.search.Width = max(width-4, 10)
}

// SetRows replaces the table contents. The cursor stays on the same network when it is still present.
func (v *NetworksView) SetRows(rows []models.NetworkSummary, detail RowDetail) {
	selectedID := ""
	if n := v.Selected(); n != nil {
		selectedID = n.ID
	}

	v.rows = rows
	tableRows := make([]table.Row, len(rows))
	cursor := 0
	for i, n := range rows {
		tableRows[i] = networkRow(n, detail)
		if n.ID == selectedID {
			cursor = i
		}
	}

	v.table.SetRows(tableRows)
	if len(rows) > 0 {
		v.table.SetCursor(cursor)
	}
}

func networkRow(n models.NetworkSummary, detail RowDetail) table.Row {
	name := n.Name
	if n.IsSystemNetwork() {
		name += " (system)"
	}

	ipv6, internal, attachable, count := "-", "-", "-", "-"
	if detail != nil {
		d, loading := detail(n.ID)
		switch {
		case d != nil:
			ipv6 = models.Flag(d.EnableIPv6)
			internal = models.Flag(d.Internal)
			attachable = models.Flag(d.Attachable)
			count = strconv.Itoa(d.GetContainerCount())
		case loading:
			ipv6, internal, attachable, count = Loading, Loading, Loading, Loading
		}
	}

	return table.Row{name, n.GetShortID(), n.Driver, n.Scope, ipv6, internal, attachable, count}
}

// Rows returns the networks currently shown, in table order
func (v *NetworksView) Rows() []models.NetworkSummary {
	return v.rows
}

// Selected returns the network under the cursor, or nil when the table is empty
func (v *NetworksView) Selected() *models.NetworkSummary {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.rows) {
		return nil
	}
	n := v.rows[i]
	return &n
}

// FocusSearch moves keyboard focus to the search box
func (v *NetworksView) FocusSearch() tea.Cmd {
	v.table.Blur()
	return v.search.Focus()
}

// BlurSearch returns keyboard focus to the table
func (v *NetworksView) BlurSearch() {
	v.search.Blur()
	v.table.Focus()
}

// IsSearching reports whether the search box has focus
func (v *NetworksView) IsSearching() bool {
	return v.search.Focused()
}

// SearchValue returns the current search text
func (v *NetworksView) SearchValue() string {
	return v.search.Value()
}

// SetSearch replaces the search text
func (v *NetworksView) SetSearch(s string) {
	v.search.SetValue(s)
}

// Update routes input to the search box when it has focus, otherwise to the table
func (v *NetworksView) Update(msg tea.Msg) (*NetworksView, tea.Cmd) {
	var cmd tea.Cmd
	if v.search.Focused() {
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the filter bar and the table
func (v *NetworksView) View(filter models.Filter, sortField models.SortField, ascending bool, total int) string {
	var b strings.Builder

	b.WriteString(v.renderFilterBar(filter, sortField, ascending, total))
	b.WriteString("\n")

	if v.search.Focused() || v.search.Value() != "" {
		b.WriteString(v.search.View())
		b.WriteString("\n")
	}

	switch {
	case total == 0:
		b.WriteString(v.renderEmptyState("No networks found."))
	case len(v.rows) == 0:
		b.WriteString(v.renderEmptyState("No networks match the current filters."))
	default:
		b.WriteString(v.table.View())
	}

	if v.width > 0 {
		return lipgloss.NewStyle().MaxWidth(v.width).Render(b.String())
	}
	return b.String()
}

func (v *NetworksView) renderFilterBar(filter models.Filter, sortField models.SortField, ascending bool, total int) string {
	order := "↑"
	if !ascending {
		order = "↓"
	}

	parts := []string{
		filterPart("driver", filter.Driver, filter.Driver != "" && filter.Driver != models.FilterAll),
		filterPart("scope", filter.Scope, filter.Scope != "" && filter.Scope != models.FilterAll),
		filterPart("system", strconv.FormatBool(filter.SystemOnly), filter.SystemOnly),
		styles.DescStyle.Render(fmt.Sprintf("sort: %s %s", sortField, order)),
		styles.DescStyle.Render(fmt.Sprintf("%d/%d", len(v.rows), total)),
	}
	return strings.Join(parts, styles.SeparatorStyle.String())
}

func filterPart(label, value string, active bool) string {
	if active {
		return styles.FilterActiveStyle.Render(label + ": " + value)
	}
	return styles.FilterInactiveStyle.Render(label + ": " + value)
}

func (v *NetworksView) renderEmptyState(message string) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(styles.SubtitleStyle.Render(message))
}
