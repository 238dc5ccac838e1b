package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/podgrid/podgrid/internal/config"
	"github.com/podgrid/podgrid/internal/models"
)

// stubLoader is a data source returning a fixed catalog or error.
type stubLoader struct {
	podcasts []models.Podcast
	err      error
}

func (s stubLoader) Fetch(ctx context.Context) ([]models.Podcast, error) {
	return s.podcasts, s.err
}

func fixtureShow(id, title string, updated string, genres ...int) models.Podcast {
	t, _ := time.Parse(time.RFC3339, updated)
	return models.Podcast{
		ID:      id,
		Title:   title,
		Genres:  genres,
		Seasons: 1,
		Updated: t,
	}
}

// fixtureCatalog returns 30 shows so pagination spans multiple pages at
// the default page size of 12.
func fixtureCatalog() []models.Podcast {
	shows := []models.Podcast{
		fixtureShow("p1", "Something Was Wrong", "2022-11-01T07:00:00Z", 1, 2),
		fixtureShow("p2", "This Is Actually Happening", "2022-10-15T07:00:00Z", 1),
		fixtureShow("p3", "Planet Money", "2022-11-03T07:00:00Z", 6, 8),
		fixtureShow("p4", "The Daily", "2022-11-04T07:00:00Z", 8),
		fixtureShow("p5", "Crime Junkie", "2022-09-20T07:00:00Z", 2),
		fixtureShow("p6", "Heavyweight", "2022-10-28T07:00:00Z", 5),
	}
	for i := len(shows); i < 30; i++ {
		shows = append(shows, fixtureShow(
			string(rune('a'+i))+"-filler",
			"Filler Show "+string(rune('A'+i-6)),
			"2022-08-01T07:00:00Z",
			4,
		))
	}
	return shows
}

// newTestApp creates an App with a stub catalog, window sized, ready,
// and with the fetch already resolved.
func newTestApp(t *testing.T) *App {
	t.Helper()
	return newTestAppWithLoader(t, stubLoader{podcasts: fixtureCatalog()})
}

func newTestAppWithLoader(t *testing.T, loader stubLoader) *App {
	t.Helper()

	app := New(loader, config.Default())
	app.width = 120
	app.height = 40
	app.ready = true

	// Resolve the startup fetch synchronously
	app.Update(app.fetchCatalog()())

	return app
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// typeString sends each rune of s as a keystroke.
func typeString(app *App, s string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range s {
		_, cmd := app.Update(keyMsg(string(r)))
		cmds = append(cmds, cmd)
	}
	return cmds
}
