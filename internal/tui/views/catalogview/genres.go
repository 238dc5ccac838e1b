package catalogview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/podgrid/podgrid/internal/models"
	"github.com/podgrid/podgrid/internal/tui/components"
)

// GenreView displays the genre directory with per-genre show counts.
type GenreView struct {
	table  *components.Table
	genres []models.Genre
}

// NewGenreView creates a new genre directory view.
func NewGenreView() *GenreView {
	columns := []components.Column{
		{Title: "ID", Width: 4, Align: lipgloss.Right},
		{Title: "Genre", Width: 28},
		{Title: "Shows", Width: 6, Align: lipgloss.Right},
	}

	table := components.NewTable(columns)
	table.SetVisibleRows(12)
	table.Focus(true)

	return &GenreView{table: table}
}

// SetGenres replaces the displayed genre list.
func (v *GenreView) SetGenres(genres []models.Genre) {
	v.genres = genres

	rows := make([][]string, len(genres))
	for i, g := range genres {
		rows[i] = []string{
			fmt.Sprintf("%d", g.ID),
			g.Title,
			fmt.Sprintf("%d", len(g.Shows)),
		}
	}
	v.table.SetRows(rows)
}

// MoveUp moves the selection up.
func (v *GenreView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *GenreView) MoveDown() {
	v.table.MoveDown()
}

// SelectedGenre returns the currently selected genre.
func (v *GenreView) SelectedGenre() *models.Genre {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.genres) {
		return &v.genres[idx]
	}
	return nil
}

// Render renders the genre directory.
func (v *GenreView) Render(width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ GENRE DIRECTORY ═══"))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(labelStyle.Render("No genres available."))
	} else {
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Enter:Filter catalog by genre  F2:Back to catalog"))

	return b.String()
}
