// Package catalogview provides TUI views for browsing the podcast catalog.
package catalogview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/podgrid/podgrid/internal/browse"
	"github.com/podgrid/podgrid/internal/models"
	"github.com/podgrid/podgrid/internal/tui/components"
	"github.com/podgrid/podgrid/internal/util"
)

// BrowseView displays the current page of the filtered catalog.
type BrowseView struct {
	table  *components.Table
	items  []models.Podcast
	result browse.Result
	params browse.Params
	now    time.Time
}

// NewBrowseView creates a new browse view.
func NewBrowseView() *BrowseView {
	columns := []components.Column{
		{Title: "Title", Width: 38},
		{Title: "Genres", Width: 30},
		{Title: "Seasons", Width: 7, Align: lipgloss.Right},
		{Title: "Updated", Width: 14},
	}

	table := components.NewTable(columns)
	table.SetVisibleRows(browse.DefaultPerPage)
	table.Focus(true)

	return &BrowseView{
		table: table,
		now:   time.Now(),
	}
}

// SetNow sets the reference time for the relative Updated column.
func (v *BrowseView) SetNow(t time.Time) {
	v.now = t
}

// SetView replaces the displayed page with a freshly computed result.
func (v *BrowseView) SetView(result browse.Result, params browse.Params) {
	v.result = result
	v.params = params
	v.items = result.PageItems

	if params.PerPage > 0 {
		v.table.SetVisibleRows(params.PerPage)
	}

	rows := make([][]string, len(v.items))
	for i, p := range v.items {
		rows[i] = []string{
			p.Title,
			strings.Join(p.GenreTitles(), ", "),
			fmt.Sprintf("%d", p.Seasons),
			util.RelativeTime(p.Updated, v.now),
		}
	}

	v.table.SetRows(rows)
	v.table.GoToTop()
}

// MoveUp moves the selection up.
func (v *BrowseView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *BrowseView) MoveDown() {
	v.table.MoveDown()
}

// SelectedPodcast returns the currently selected podcast.
func (v *BrowseView) SelectedPodcast() *models.Podcast {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.items) {
		return &v.items[idx]
	}
	return nil
}

// HasResults reports whether the current filters matched anything.
func (v *BrowseView) HasResults() bool {
	return v.result.TotalItems > 0
}

// Render renders the browse view for the given terminal width.
func (v *BrowseView) Render(width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ PODCAST CATALOG ═══"))
	b.WriteString("\n\n")

	// Active filter summary
	hasFilters := false
	if term := strings.TrimSpace(v.params.SearchTerm); term != "" {
		b.WriteString(labelStyle.Render("Search: "))
		b.WriteString(valueStyle.Render(term))
		b.WriteString("\n")
		hasFilters = true
	}
	if len(v.params.Genres) > 0 {
		names := make([]string, len(v.params.Genres))
		for i, id := range v.params.Genres {
			names[i] = models.GenreTitle(id)
		}
		b.WriteString(labelStyle.Render("Genres: "))
		b.WriteString(valueStyle.Render(strings.Join(names, ", ")))
		b.WriteString("\n")
		hasFilters = true
	}
	b.WriteString(labelStyle.Render("Sort: "))
	b.WriteString(valueStyle.Render(v.params.Sort.Label()))
	b.WriteString("\n\n")

	if v.result.TotalItems == 0 {
		b.WriteString(labelStyle.Render("No podcasts match the current filters."))
		b.WriteString("\n")
		if hasFilters {
			b.WriteString(helpStyle.Render("Press c to clear filters."))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(v.table.Render())
		b.WriteString("\n")
		b.WriteString(v.renderPageBar())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if width < 80 {
		b.WriteString(helpStyle.Render("↑↓:Nav  ←→:Page  Enter:View  /:Search  o:Sort  g:Genres"))
	} else {
		b.WriteString(helpStyle.Render("Up/Down:Select  Left/Right:Page  Enter:Details  /:Search  o:Sort  g:Genres  c:Clear"))
	}

	return b.String()
}

// renderPageBar renders the page-number strip with ellipses.
func (v *BrowseView) renderPageBar() string {
	if v.result.TotalPages == 0 {
		return ""
	}

	currentStyle := lipgloss.NewStyle().Background(lipgloss.Color("#00FF00")).Foreground(lipgloss.Color("#000000"))
	pageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#006600"))

	var parts []string

	prev := "‹"
	if !v.result.HasPrev {
		prev = " "
	}
	parts = append(parts, mutedStyle.Render(prev))

	for _, entry := range browse.PageNumbers(v.params.Page, v.result.TotalPages) {
		switch {
		case entry.Ellipsis:
			parts = append(parts, mutedStyle.Render("…"))
		case entry.Page == v.params.Page:
			parts = append(parts, currentStyle.Render(fmt.Sprintf(" %d ", entry.Page)))
		default:
			parts = append(parts, pageStyle.Render(fmt.Sprintf("%d", entry.Page)))
		}
	}

	next := "›"
	if !v.result.HasNext {
		next = " "
	}
	parts = append(parts, mutedStyle.Render(next))

	summary := mutedStyle.Render(fmt.Sprintf("  %d shows", v.result.TotalItems))

	return strings.Join(parts, " ") + summary
}

// RenderDetail renders the detail view for the selected podcast.
func (v *BrowseView) RenderDetail(p *models.Podcast, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	labelWidth := 12
	if width < 60 {
		labelWidth = 9
	}
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Width(labelWidth)

	if p == nil {
		return labelStyle.Render("No podcast selected")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ SHOW DETAILS ═══"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render(strings.ToUpper(p.Title)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Genres:") + " " + valueStyle.Render(strings.Join(p.GenreTitles(), ", ")) + "\n")
	b.WriteString(labelStyle.Render("Seasons:") + " " + valueStyle.Render(fmt.Sprintf("%d", p.Seasons)) + "\n")
	updated := fmt.Sprintf("%s (%s)", util.FormatDate(p.Updated), util.RelativeTime(p.Updated, v.now))
	b.WriteString(labelStyle.Render("Updated:") + " " + valueStyle.Render(updated) + "\n")
	b.WriteString("\n")

	if p.Description != "" {
		b.WriteString(sectionStyle.Render("DESCRIPTION"))
		b.WriteString("\n")
		descWidth := width - 4
		if descWidth > 100 {
			descWidth = 100
		}
		desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Width(descWidth).Render(p.Description)
		b.WriteString(desc)
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("Esc:Back"))

	return b.String()
}
