package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/podgrid/podgrid/internal/browse"
	"github.com/podgrid/podgrid/internal/config"
)

func TestApp_InitialState(t *testing.T) {
	app := New(stubLoader{}, config.Default())

	if app.state != stateLoading {
		t.Error("expected app to start in loading state")
	}
	if app.currentModule != ModuleBrowse {
		t.Errorf("expected initial module browse, got %s", app.currentModule)
	}
	if app.params.Page != 1 {
		t.Errorf("expected initial page 1, got %d", app.params.Page)
	}
	if app.params.PerPage != 12 {
		t.Errorf("expected page size 12, got %d", app.params.PerPage)
	}
	if app.params.Sort != browse.SortNewest {
		t.Errorf("expected default sort newest, got %s", app.params.Sort)
	}
}

func TestApp_CatalogLoaded(t *testing.T) {
	app := newTestApp(t)

	if app.state != stateReady {
		t.Fatal("expected ready state after successful fetch")
	}
	if app.result.TotalItems != 30 {
		t.Errorf("expected 30 items, got %d", app.result.TotalItems)
	}
	if app.result.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", app.result.TotalPages)
	}
	if len(app.genres) == 0 {
		t.Error("expected genre reference data to be built")
	}
}

func TestApp_FetchError(t *testing.T) {
	app := newTestAppWithLoader(t, stubLoader{err: errors.New("connection refused")})

	if app.state != stateError {
		t.Fatal("expected error state after failed fetch")
	}

	out := app.View()
	if !strings.Contains(out, "Failed to load catalog") {
		t.Error("expected error message in view")
	}
	if !strings.Contains(out, "connection refused") {
		t.Error("expected underlying error in view")
	}
}

func TestApp_FetchError_Retry(t *testing.T) {
	app := newTestAppWithLoader(t, stubLoader{err: errors.New("boom")})

	_, cmd := app.Update(keyMsg("r"))

	if app.state != stateLoading {
		t.Error("expected retry to re-enter loading state")
	}
	if cmd == nil {
		t.Error("expected retry to issue a fetch command")
	}
}

func TestApp_View_Loading(t *testing.T) {
	app := New(stubLoader{}, config.Default())
	app.width = 120
	app.height = 40
	app.ready = true

	if out := app.View(); !strings.Contains(out, "Contacting catalog") {
		t.Error("expected loading indicator in view")
	}
}

func TestApp_SearchMode_Entry(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyMsg("/"))

	if !app.searchMode {
		t.Error("expected search mode after /")
	}
}

func TestApp_SearchDebounce_OnlyLatestCommits(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("/"))

	// Three keystrokes in quick succession schedule three commits
	cmds := typeString(app, "dai")
	for _, cmd := range cmds {
		if cmd == nil {
			t.Fatal("expected each keystroke to schedule a debounce tick")
		}
	}

	// Ticks for the first two keystrokes arrive stale and are dropped
	app.Update(searchDebounceMsg{seq: app.debounceSeq - 2})
	app.Update(searchDebounceMsg{seq: app.debounceSeq - 1})
	if app.params.SearchTerm != "" {
		t.Errorf("stale debounce committed a search: %q", app.params.SearchTerm)
	}

	// The final tick commits the full input
	app.Update(searchDebounceMsg{seq: app.debounceSeq})
	if app.params.SearchTerm != "dai" {
		t.Errorf("expected committed search %q, got %q", "dai", app.params.SearchTerm)
	}
	if app.result.TotalItems != 1 {
		t.Errorf("expected 1 match for 'dai', got %d", app.result.TotalItems)
	}
}

func TestApp_SearchDebounce_SequentialCommits(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("/"))

	// A keystroke whose delay elapses commits; a later keystroke
	// commits again.
	typeString(app, "p")
	app.Update(searchDebounceMsg{seq: app.debounceSeq})
	if app.params.SearchTerm != "p" {
		t.Errorf("expected first commit %q, got %q", "p", app.params.SearchTerm)
	}

	typeString(app, "l")
	app.Update(searchDebounceMsg{seq: app.debounceSeq})
	if app.params.SearchTerm != "pl" {
		t.Errorf("expected second commit %q, got %q", "pl", app.params.SearchTerm)
	}
}

func TestApp_SearchEnter_CommitsImmediately(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("/"))
	typeString(app, "planet")
	pendingSeq := app.debounceSeq

	app.Update(specialKeyMsg(tea.KeyEnter))

	if app.searchMode {
		t.Error("expected search mode to exit on enter")
	}
	if app.params.SearchTerm != "planet" {
		t.Errorf("expected committed search, got %q", app.params.SearchTerm)
	}

	// The pending debounce tick must now be stale
	if app.debounceSeq == pendingSeq {
		t.Error("expected enter to supersede the pending debounce")
	}
}

func TestApp_SearchEsc_ClearsSearch(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("/"))
	typeString(app, "daily")
	app.Update(specialKeyMsg(tea.KeyEnter))

	app.Update(keyMsg("/"))
	app.Update(specialKeyMsg(tea.KeyEscape))

	if app.searchMode {
		t.Error("expected search mode to exit on esc")
	}
	if app.params.SearchTerm != "" {
		t.Errorf("expected cleared search, got %q", app.params.SearchTerm)
	}
	if app.result.TotalItems != 30 {
		t.Errorf("expected full catalog after clearing, got %d", app.result.TotalItems)
	}
}

func TestApp_SearchResetsPage(t *testing.T) {
	app := newTestApp(t)

	app.Update(specialKeyMsg(tea.KeyRight))
	app.Update(specialKeyMsg(tea.KeyRight))
	if app.params.Page != 3 {
		t.Fatalf("expected to be on page 3, got %d", app.params.Page)
	}

	app.Update(keyMsg("/"))
	typeString(app, "show")
	app.Update(specialKeyMsg(tea.KeyEnter))

	if app.params.Page != 1 {
		t.Errorf("expected search commit to reset page to 1, got %d", app.params.Page)
	}
}

func TestApp_SortCycle_ResetsPage(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyRight))

	app.Update(keyMsg("o"))

	if app.params.Sort != browse.SortTitleAsc {
		t.Errorf("expected sort to cycle to title-asc, got %s", app.params.Sort)
	}
	if app.params.Page != 1 {
		t.Errorf("expected sort change to reset page to 1, got %d", app.params.Page)
	}

	app.Update(keyMsg("o"))
	app.Update(keyMsg("o"))
	if app.params.Sort != browse.SortNewest {
		t.Errorf("expected sort to cycle back to newest, got %s", app.params.Sort)
	}
}

func TestApp_Pagination_Bounds(t *testing.T) {
	app := newTestApp(t)

	// Below page 1: silently ignored
	app.Update(specialKeyMsg(tea.KeyLeft))
	if app.params.Page != 1 {
		t.Errorf("expected page to stay at 1, got %d", app.params.Page)
	}

	// Walk to the last page
	app.Update(specialKeyMsg(tea.KeyRight))
	app.Update(specialKeyMsg(tea.KeyRight))
	if app.params.Page != 3 {
		t.Fatalf("expected page 3, got %d", app.params.Page)
	}
	if app.result.HasNext {
		t.Error("expected no next page on the last page")
	}

	// Past the last page: silently ignored
	app.Update(specialKeyMsg(tea.KeyRight))
	if app.params.Page != 3 {
		t.Errorf("expected page to stay at 3, got %d", app.params.Page)
	}

	if len(app.result.PageItems) != 6 {
		t.Errorf("expected 6 items on the last page, got %d", len(app.result.PageItems))
	}
}

func TestApp_Recompute_ClampsPagePastEnd(t *testing.T) {
	app := newTestApp(t)

	app.params.Page = 9
	app.recompute()

	if app.params.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", app.params.Page)
	}
	if len(app.result.PageItems) != 12 {
		t.Errorf("expected a full first page after clamping, got %d items", len(app.result.PageItems))
	}
}

func TestApp_GenrePicker_Toggle(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyRight)) // move off page 1

	app.Update(keyMsg("g"))
	if !app.showPicker {
		t.Fatal("expected genre picker to open")
	}

	// Toggle the first genre (Personal Growth, id 1)
	app.Update(keyMsg(" "))

	if len(app.params.Genres) != 1 || app.params.Genres[0] != 1 {
		t.Fatalf("expected genre 1 selected, got %v", app.params.Genres)
	}
	if app.params.Page != 1 {
		t.Errorf("expected genre change to reset page to 1, got %d", app.params.Page)
	}
	if app.result.TotalItems != 2 {
		t.Errorf("expected 2 shows in genre 1, got %d", app.result.TotalItems)
	}

	// Toggle again to deselect
	app.Update(keyMsg(" "))
	if len(app.params.Genres) != 0 {
		t.Errorf("expected genre deselected, got %v", app.params.Genres)
	}

	app.Update(specialKeyMsg(tea.KeyEscape))
	if app.showPicker {
		t.Error("expected picker to close on esc")
	}
}

func TestApp_GenreFilter_OrAcrossSelections(t *testing.T) {
	app := newTestApp(t)

	app.toggleGenre(2)
	app.toggleGenre(6)

	// Genre 2 has p1, p5; genre 6 has p3. OR semantics: 3 shows.
	if app.result.TotalItems != 3 {
		t.Errorf("expected 3 shows for genres 2 or 6, got %d", app.result.TotalItems)
	}
}

func TestApp_ClearFilters(t *testing.T) {
	app := newTestApp(t)

	app.toggleGenre(2)
	app.Update(keyMsg("/"))
	typeString(app, "crime")
	app.Update(specialKeyMsg(tea.KeyEnter))

	app.Update(keyMsg("c"))

	if app.params.SearchTerm != "" || len(app.params.Genres) != 0 {
		t.Error("expected all filters cleared")
	}
	if app.result.TotalItems != 30 {
		t.Errorf("expected full catalog after clear, got %d", app.result.TotalItems)
	}
}

func TestApp_NoResults_View(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyMsg("/"))
	typeString(app, "zzzzzz")
	app.Update(specialKeyMsg(tea.KeyEnter))

	if app.result.TotalItems != 0 {
		t.Fatalf("expected no matches, got %d", app.result.TotalItems)
	}

	out := app.View()
	if !strings.Contains(out, "No podcasts match") {
		t.Error("expected no-results message in view")
	}
	if !strings.Contains(out, "clear filters") {
		t.Error("expected clear-filters affordance in view")
	}
}

func TestApp_DetailView(t *testing.T) {
	app := newTestApp(t)

	app.Update(specialKeyMsg(tea.KeyEnter))
	if !app.showDetail {
		t.Fatal("expected detail view to open")
	}

	out := app.View()
	if !strings.Contains(out, "SHOW DETAILS") {
		t.Error("expected detail view content")
	}

	app.Update(specialKeyMsg(tea.KeyEscape))
	if app.showDetail {
		t.Error("expected detail view to close on esc")
	}
}

func TestApp_ModuleNavigation(t *testing.T) {
	app := newTestApp(t)

	app.Update(specialKeyMsg(tea.KeyF3))
	if app.currentModule != ModuleGenres {
		t.Errorf("expected genres module, got %s", app.currentModule)
	}

	app.Update(specialKeyMsg(tea.KeyF1))
	if app.currentModule != ModuleHelp {
		t.Errorf("expected help module, got %s", app.currentModule)
	}

	app.Update(specialKeyMsg(tea.KeyEscape))
	if app.currentModule != ModuleGenres {
		t.Errorf("expected return to previous module, got %s", app.currentModule)
	}

	app.Update(specialKeyMsg(tea.KeyF2))
	if app.currentModule != ModuleBrowse {
		t.Errorf("expected browse module, got %s", app.currentModule)
	}
}

func TestApp_GenreDirectory_FilterJump(t *testing.T) {
	app := newTestApp(t)

	app.Update(specialKeyMsg(tea.KeyF3))
	app.Update(specialKeyMsg(tea.KeyEnter))

	if app.currentModule != ModuleBrowse {
		t.Error("expected jump back to browse after selecting a genre")
	}
	if len(app.params.Genres) != 1 {
		t.Errorf("expected one genre selected, got %v", app.params.Genres)
	}
}

func TestApp_QuitConfirmation(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyMsg("q"))
	if !app.showConfirm {
		t.Fatal("expected quit confirmation")
	}

	app.Update(keyMsg("n"))
	if app.showConfirm || app.quitting {
		t.Error("expected cancel to dismiss confirmation")
	}

	app.Update(keyMsg("q"))
	_, cmd := app.Update(keyMsg("y"))
	if !app.quitting {
		t.Error("expected app to be quitting after confirm")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestApp_PaginationFooter_Ellipsis(t *testing.T) {
	app := newTestApp(t)
	app.params.PerPage = 3 // 30 items, 10 pages
	app.params.Page = 5
	app.recompute()

	out := app.View()
	if !strings.Contains(out, "…") {
		t.Error("expected ellipsis in pagination footer")
	}
	if !strings.Contains(out, "Page 5/10") {
		t.Error("expected page summary in status bar")
	}
}
