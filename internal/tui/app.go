package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/podgrid/podgrid/internal/browse"
	"github.com/podgrid/podgrid/internal/catalog"
	"github.com/podgrid/podgrid/internal/config"
	"github.com/podgrid/podgrid/internal/models"
	"github.com/podgrid/podgrid/internal/tui/views/catalogview"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// MaxContentWidth is the maximum width for content display
const MaxContentWidth = 120

// Module represents a view module in the application.
type Module string

const (
	ModuleBrowse Module = "browse"
	ModuleGenres Module = "genres"
	ModuleHelp   Module = "help"
)

// fetchState tracks the data-source lifecycle. The derived-view
// pipeline only runs in stateReady.
type fetchState int

const (
	stateLoading fetchState = iota
	stateError
	stateReady
)

// App is the main Bubble Tea application model.
type App struct {
	// Dependencies
	loader catalog.Loader
	config *config.Config

	// Views
	browseView *catalogview.BrowseView
	genreView  *catalogview.GenreView

	// UI state
	theme       *Theme
	keys        KeyMap
	width       int
	height      int
	ready       bool
	quitting    bool
	showConfirm bool

	// Current view
	currentModule  Module
	previousModule Module
	showDetail     bool

	// Data source state
	state    fetchState
	fetchErr error
	catalog  []models.Podcast
	genres   []models.Genre

	// Browsing parameters and the derived view
	params browse.Params
	result browse.Result

	// Search input mode
	searchMode  bool
	searchInput string

	// debounceSeq identifies the most recent scheduled search commit;
	// older debounce messages are discarded as superseded.
	debounceSeq int
	debounce    time.Duration

	// Genre picker overlay
	showPicker   bool
	pickerCursor int
}

// catalogLoadedMsg reports the outcome of the startup fetch.
type catalogLoadedMsg struct {
	podcasts []models.Podcast
	err      error
}

// searchDebounceMsg fires when a scheduled search commit comes due.
type searchDebounceMsg struct {
	seq int
}

// New creates a new App instance.
func New(loader catalog.Loader, cfg *config.Config) *App {
	sort := browse.SortOrder(cfg.Browse.DefaultSort)
	if sort == "" {
		sort = browse.SortNewest
	}

	return &App{
		loader:        loader,
		config:        cfg,
		browseView:    catalogview.NewBrowseView(),
		genreView:     catalogview.NewGenreView(),
		theme:         NewTheme(cfg.Display.ColorScheme),
		keys:          DefaultKeyMap(),
		currentModule: ModuleBrowse,
		state:         stateLoading,
		debounce:      time.Duration(cfg.Browse.DebounceMS) * time.Millisecond,
		params: browse.Params{
			Sort:    sort,
			Page:    1,
			PerPage: cfg.Browse.ItemsPerPage,
		},
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		a.fetchCatalog(),
	)
}

// fetchCatalog fetches the full podcast list from the data source.
func (a *App) fetchCatalog() tea.Cmd {
	return func() tea.Msg {
		podcasts, err := a.loader.Fetch(context.Background())
		return catalogLoadedMsg{podcasts: podcasts, err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case catalogLoadedMsg:
		if msg.err != nil {
			a.state = stateError
			a.fetchErr = msg.err
			return a, nil
		}
		a.state = stateReady
		a.fetchErr = nil
		a.catalog = msg.podcasts
		a.genres = models.BuildGenres(msg.podcasts)
		a.genreView.SetGenres(a.genres)
		a.browseView.SetNow(time.Now())
		a.recompute()
		return a, nil

	case searchDebounceMsg:
		// A newer keystroke superseded this commit.
		if msg.seq != a.debounceSeq {
			return a, nil
		}
		a.commitSearch(a.searchInput)
		return a, nil
	}

	return a, nil
}

// recompute reruns the derived-view pipeline and pushes the result into
// the browse view. A page left pointing past the end after a parameter
// change is corrected to 1.
func (a *App) recompute() {
	a.result = browse.ComputeView(a.catalog, a.params)
	if a.params.Page > a.result.TotalPages && a.result.TotalPages > 0 {
		a.params.Page = 1
		a.result = browse.ComputeView(a.catalog, a.params)
	}
	a.browseView.SetView(a.result, a.params)
}

// commitSearch applies a search term. Any change to the committed term
// resets the page to 1.
func (a *App) commitSearch(term string) {
	a.params.SearchTerm = term
	a.params.Page = 1
	a.recompute()
}

// scheduleSearch schedules a debounced search commit for the current
// input, superseding any pending one.
func (a *App) scheduleSearch() tea.Cmd {
	a.debounceSeq++
	seq := a.debounceSeq
	return tea.Tick(a.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit confirmation modal takes priority
	if a.showConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			a.quitting = true
			return a, tea.Quit
		case "n", "N", "esc":
			a.showConfirm = false
			return a, nil
		}
		return a, nil
	}

	// Search mode needs all text input before global keys
	if a.searchMode {
		return a.handleSearchKeys(msg)
	}

	// Genre picker overlay
	if a.showPicker {
		return a.handlePickerKeys(msg)
	}

	if a.keys.IsQuit(msg) {
		a.showConfirm = true
		return a, nil
	}

	if a.keys.IsFunctionKey(msg) {
		switch a.keys.GetFunctionKeyModule(msg) {
		case "quit":
			a.showConfirm = true
		case "help":
			if a.currentModule != ModuleHelp {
				a.previousModule = a.currentModule
				a.currentModule = ModuleHelp
			}
		case "browse":
			a.currentModule = ModuleBrowse
			a.showDetail = false
		case "genres":
			a.currentModule = ModuleGenres
			a.showDetail = false
		}
		return a, nil
	}

	if a.keys.Help.Matches(msg) && a.currentModule != ModuleHelp {
		a.previousModule = a.currentModule
		a.currentModule = ModuleHelp
		return a, nil
	}

	if a.keys.Back.Matches(msg) {
		if a.showDetail {
			a.showDetail = false
			return a, nil
		}
		if a.currentModule == ModuleHelp && a.previousModule != "" {
			a.currentModule = a.previousModule
			a.previousModule = ""
		}
		return a, nil
	}

	// Retry is only meaningful in the error state
	if a.state == stateError && a.keys.Retry.Matches(msg) {
		a.state = stateLoading
		a.fetchErr = nil
		return a, a.fetchCatalog()
	}

	// The pipeline only runs with data loaded
	if a.state != stateReady {
		return a, nil
	}

	switch a.currentModule {
	case ModuleBrowse:
		return a.handleBrowseKeys(msg)
	case ModuleGenres:
		return a.handleGenreKeys(msg)
	}

	return a, nil
}

// handleBrowseKeys handles key presses in the catalog browse module.
func (a *App) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showDetail {
		return a, nil
	}

	switch {
	case a.keys.Up.Matches(msg):
		a.browseView.MoveUp()
	case a.keys.Down.Matches(msg):
		a.browseView.MoveDown()
	case a.keys.Select.Matches(msg):
		if a.browseView.SelectedPodcast() != nil {
			a.showDetail = true
		}
	case a.keys.PrevPage.Matches(msg):
		// Moves below page 1 are silently ignored
		if a.params.Page > 1 {
			a.params.Page--
			a.recompute()
		}
	case a.keys.NextPage.Matches(msg):
		// Moves past the last page are silently ignored
		if a.params.Page < a.result.TotalPages {
			a.params.Page++
			a.recompute()
		}
	case a.keys.Sort.Matches(msg):
		a.cycleSort()
	case a.keys.Genres.Matches(msg):
		a.showPicker = true
		a.pickerCursor = 0
	case a.keys.Clear.Matches(msg):
		a.clearFilters()
	case a.keys.Search.Matches(msg):
		a.searchMode = true
		a.searchInput = a.params.SearchTerm
	}

	return a, nil
}

// cycleSort advances to the next sort order and resets to page 1.
func (a *App) cycleSort() {
	orders := browse.SortOrders()
	idx := slices.Index(orders, a.params.Sort)
	a.params.Sort = orders[(idx+1)%len(orders)]
	a.params.Page = 1
	a.recompute()
}

// clearFilters drops the search term and genre selection.
func (a *App) clearFilters() {
	a.debounceSeq++ // cancel any pending search commit
	a.searchInput = ""
	a.params.SearchTerm = ""
	a.params.Genres = nil
	a.params.Page = 1
	a.recompute()
}

// handleSearchKeys handles key presses in search input mode.
func (a *App) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searchMode = false
		a.searchInput = ""
		a.debounceSeq++ // cancel any pending commit
		a.commitSearch("")
		return a, nil
	case "enter":
		a.searchMode = false
		a.debounceSeq++ // pending commit superseded by the immediate one
		a.commitSearch(a.searchInput)
		return a, nil
	case "backspace":
		if len(a.searchInput) > 0 {
			a.searchInput = a.searchInput[:len(a.searchInput)-1]
			return a, a.scheduleSearch()
		}
	default:
		if key := msg.String(); len(key) == 1 {
			a.searchInput += key
			return a, a.scheduleSearch()
		}
	}

	return a, nil
}

// handlePickerKeys handles key presses in the genre picker overlay.
func (a *App) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc" || a.keys.Genres.Matches(msg):
		a.showPicker = false
	case a.keys.Up.Matches(msg):
		if a.pickerCursor > 0 {
			a.pickerCursor--
		}
	case a.keys.Down.Matches(msg):
		if a.pickerCursor < len(a.genres)-1 {
			a.pickerCursor++
		}
	case msg.String() == " " || a.keys.Select.Matches(msg):
		if a.pickerCursor < len(a.genres) {
			a.toggleGenre(a.genres[a.pickerCursor].ID)
		}
	case a.keys.Clear.Matches(msg):
		a.params.Genres = nil
		a.params.Page = 1
		a.recompute()
	}

	return a, nil
}

// toggleGenre adds or removes a genre from the filter selection and
// resets to page 1.
func (a *App) toggleGenre(id int) {
	if idx := slices.Index(a.params.Genres, id); idx >= 0 {
		a.params.Genres = slices.Delete(a.params.Genres, idx, idx+1)
	} else {
		a.params.Genres = append(a.params.Genres, id)
	}
	a.params.Page = 1
	a.recompute()
}

// handleGenreKeys handles key presses in the genre directory module.
func (a *App) handleGenreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Up.Matches(msg):
		a.genreView.MoveUp()
	case a.keys.Down.Matches(msg):
		a.genreView.MoveDown()
	case a.keys.Select.Matches(msg):
		if g := a.genreView.SelectedGenre(); g != nil {
			a.toggleGenre(g.ID)
			a.currentModule = ModuleBrowse
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("PodGrid shutting down...")
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	b.WriteString(a.renderStatusBar())
	b.WriteString("\n")

	contentHeight := a.height - 6 // header, status, footer
	if a.showConfirm {
		b.WriteString(a.renderConfirmDialog(contentHeight))
	} else {
		b.WriteString(a.renderContent(contentHeight))
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("PODGRID CATALOG BROWSER v%s", Version)

	info := fmt.Sprintf("SHOWS: %d", len(a.catalog))

	spacing := a.width - lipgloss.Width(title) - lipgloss.Width(info) - 2
	if spacing < 1 {
		spacing = 1
	}

	header := a.theme.Header.Render(title) +
		strings.Repeat(" ", spacing) +
		a.theme.Header.Render(info)

	return header + "\n" + a.theme.DrawDoubleLine(a.width)
}

// renderStatusBar renders the state line under the header.
func (a *App) renderStatusBar() string {
	var status string
	switch a.state {
	case stateLoading:
		status = a.theme.Warning.Render("FETCHING CATALOG...")
	case stateError:
		status = a.theme.Error.Render("CATALOG UNAVAILABLE")
	default:
		if a.searchMode {
			status = a.theme.Label.Render("SEARCH: ") +
				a.theme.Accent.Render(a.searchInput) +
				a.theme.Accent.Render("_")
		} else if a.result.TotalPages > 0 {
			status = a.theme.Value.Render(
				fmt.Sprintf("Page %d/%d", a.params.Page, a.result.TotalPages))
		} else {
			status = a.theme.Muted.Render("No results")
		}
	}

	return status
}

// renderContent renders the main content area.
func (a *App) renderContent(height int) string {
	content := a.getModuleContent()

	contentWidth := a.width
	if contentWidth > MaxContentWidth {
		contentWidth = MaxContentWidth
	}

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	contentStyle := lipgloss.NewStyle().
		Width(contentWidth)

	return style.Render(contentStyle.Render(content))
}

// getModuleContent returns the content for the current module and state.
func (a *App) getModuleContent() string {
	switch a.state {
	case stateLoading:
		return a.renderLoading()
	case stateError:
		return a.renderError()
	}

	switch a.currentModule {
	case ModuleBrowse:
		return a.renderBrowse()
	case ModuleGenres:
		return a.genreView.Render(a.width)
	case ModuleHelp:
		return a.renderHelp()
	default:
		return ""
	}
}

// renderBrowse renders the catalog module.
func (a *App) renderBrowse() string {
	if a.showPicker {
		return a.renderGenrePicker()
	}

	if a.showDetail {
		return a.browseView.RenderDetail(a.browseView.SelectedPodcast(), a.width)
	}

	return a.browseView.Render(a.width)
}

// renderGenrePicker renders the genre multi-select overlay.
func (a *App) renderGenrePicker() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ FILTER BY GENRE ═══"))
	b.WriteString("\n\n")

	for i, g := range a.genres {
		mark := "[ ]"
		if slices.Contains(a.params.Genres, g.ID) {
			mark = "[x]"
		}
		line := fmt.Sprintf(" %s %s (%d)", mark, g.Title, len(g.Shows))
		if i == a.pickerCursor {
			b.WriteString(a.theme.Selected.Render(line))
		} else {
			b.WriteString(a.theme.Primary.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Space:Toggle  c:Clear  Esc:Close"))

	return b.String()
}

// renderLoading renders the loading state.
func (a *App) renderLoading() string {
	var b strings.Builder
	b.WriteString(a.theme.Title.Render("═══ PODCAST CATALOG ═══"))
	b.WriteString("\n\n")
	b.WriteString(a.theme.Label.Render("Contacting catalog..."))
	return b.String()
}

// renderError renders the fetch error state.
func (a *App) renderError() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ PODCAST CATALOG ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Error.Render("Failed to load catalog."))
	b.WriteString("\n\n")
	if a.fetchErr != nil {
		b.WriteString(a.theme.Muted.Render(a.fetchErr.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(a.theme.Label.Render("Press r to retry."))

	return b.String()
}

// renderHelp renders the help screen.
func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ HELP ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("NAVIGATION"))
	b.WriteString("\n\n")

	navItems := [][2]string{
		{"F1 / ?", "Help"},
		{"F2", "Catalog"},
		{"F3", "Genre directory"},
		{"F10 / q", "Quit"},
	}

	for _, item := range navItems {
		line := fmt.Sprintf("    %-10s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render("BROWSING"))
	b.WriteString("\n\n")

	ctrlItems := [][2]string{
		{"Up/Down", "Select show"},
		{"Left/Right", "Previous/next page"},
		{"Enter", "Show details"},
		{"/", "Search titles"},
		{"o", "Cycle sort order"},
		{"g", "Genre filter"},
		{"c", "Clear filters"},
		{"Esc", "Back/Cancel"},
	}

	for _, item := range ctrlItems {
		line := fmt.Sprintf("    %-10s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Press Esc to return"))

	return b.String()
}

// renderConfirmDialog renders the quit confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	dialog := a.theme.Box.Render(
		a.theme.Title.Render("CONFIRM EXIT") + "\n\n" +
			a.theme.Base.Render("Are you sure you want to exit?") + "\n\n" +
			a.theme.Label.Render("[Y]es  [N]o"),
	)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	separator := a.theme.DrawHorizontalLine(a.width)
	help := a.keys.StatusBarHelp()

	return separator + "\n" + a.theme.Footer.Render(help)
}

// Run starts the TUI application.
func Run(ctx context.Context, loader catalog.Loader, cfg *config.Config) error {
	app := New(loader, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
