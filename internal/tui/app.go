package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/service"
	"github.com/dmaize/reel/internal/tui/components"
	"github.com/dmaize/reel/internal/tui/styles"
)

// ApplicationState represents the current screen of the application
type ApplicationState int

const (
	StateSearch ApplicationState = iota
	StateFavorites
	StateDetail
	StateHelp
	StateConfirmReset
)

// Layout constants
const (
	// ChromeHeight is the single footer line below the content area
	ChromeHeight = 1
	// BarHeight is the bordered text input row above each list
	BarHeight = 3
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Catalog   domain.CatalogRepository
	Favorites *service.FavoritesService
	Session   *service.SearchSession

	// UI components
	SearchBar  components.SearchBar
	ResultList *components.MovieList
	FavList    *components.MovieList
	FavFilter  components.SearchBar
	Inspector  components.Inspector
	ResetModal components.ConfirmModal

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	SpinnerFrame int

	// favIDs mirrors the favorites store for row markers. It is flipped
	// optimistically when a toggle starts and reconciled (or rolled back)
	// when the write finishes.
	favIDs map[string]bool

	// togglePending blocks further toggles until the in-flight write lands
	togglePending bool

	// detailID is the movie the detail screen is showing or loading.
	// Responses for any other id are dropped.
	detailID     string
	detailReturn ApplicationState

	// prevState is the screen to restore when an overlay closes
	prevState ApplicationState
}

// NewModel creates the application model
func NewModel(
	catalog domain.CatalogRepository,
	favorites *service.FavoritesService,
	session *service.SearchSession,
) Model {
	searchBar := components.NewSearchBar()
	searchBar.Focus()

	resultList := components.NewMovieList("Results")
	resultList.SetEmptyMessage("Type a query and press enter")

	favList := components.NewMovieList("Favorites")
	favList.SetEmptyMessage("No favorites yet. Press f on any movie to add one.")

	return Model{
		State:      StateSearch,
		Catalog:    catalog,
		Favorites:  favorites,
		Session:    session,
		SearchBar:  searchBar,
		ResultList: resultList,
		FavList:    favList,
		FavFilter:  components.NewFilterBar(),
		Inspector:  components.NewInspector(),
		ResetModal: components.NewConfirmModal(),
		favIDs:     make(map[string]bool),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.SearchBar.Init(),
		LoadFavoritesCmd(m.Favorites),
		TickCmd(100*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.ResultList.SetSpinnerFrame(m.SpinnerFrame)
		m.FavList.SetSpinnerFrame(m.SpinnerFrame)
		m.Inspector.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(100 * time.Millisecond)

	case SearchResultsMsg:
		return m.handleSearchResults(msg)

	case DetailLoadedMsg:
		return m.handleDetailLoaded(msg)

	case ToggleDoneMsg:
		return m.handleToggleDone(msg)

	case FavoritesLoadedMsg:
		m.setFavoriteIDs(msg.Movies)
		if m.State == StateFavorites {
			m.refreshFavorites()
		}
		return m, nil

	case ResetDoneMsg:
		if msg.Err != nil {
			slog.Error("api key reset failed", "error", msg.Err)
			m.State = m.prevState
			m.StatusMsg = "Couldn't reset the API key: " + msg.Err.Error()
			m.StatusIsErr = true
			return m, ClearStatusCmd(6 * time.Second)
		}
		return m, tea.Quit

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Everything else (cursor blink and friends) goes to the inputs
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	cmds = append(cmds, cmd)
	m.FavFilter, cmd = m.FavFilter.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = m.ResultList.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = m.FavList.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleSearchResults folds a finished page fetch into the session and
// mirrors the outcome into the result list
func (m Model) handleSearchResults(msg SearchResultsMsg) (tea.Model, tea.Cmd) {
	keep := m.ResultList.SelectedIndex()
	appended := msg.Req.Page > 1

	if !m.Session.Resolve(msg.Req, msg.Page, msg.Err) {
		// A newer query owns the session; the live fetch keeps its spinner
		return m, nil
	}

	m.ResultList.SetLoading(false)
	m.ResultList.SetLoadingMore(false)
	m.syncResultRows(keep, appended)

	if m.Session.State() == service.SessionFailed {
		m.StatusMsg = statusForError(m.Session.LastErr())
		m.StatusIsErr = true
		return m, ClearStatusCmd(6 * time.Second)
	}

	return m, nil
}

// handleDetailLoaded fills the inspector, unless the user already left the
// detail screen or opened a different movie
func (m Model) handleDetailLoaded(msg DetailLoadedMsg) (tea.Model, tea.Cmd) {
	if m.State != StateDetail || msg.ID != m.detailID {
		return m, nil
	}

	if msg.Err != nil {
		m.State = m.detailReturn
		m.detailID = ""
		m.Inspector.Clear()
		m.updateLayout()
		m.StatusMsg = statusForError(msg.Err)
		m.StatusIsErr = true
		return m, ClearStatusCmd(6 * time.Second)
	}

	detail := msg.Detail
	m.Inspector.SetDetail(&detail)
	m.Inspector.SetFavorite(m.favIDs[msg.ID])
	return m, nil
}

// handleToggleDone reconciles the optimistic favorite flip with the actual
// write outcome
func (m Model) handleToggleDone(msg ToggleDoneMsg) (tea.Model, tea.Cmd) {
	m.togglePending = false
	m.ResultList.SetPendingID("")
	m.FavList.SetPendingID("")

	if msg.Err != nil {
		// Write failed: IsFavorite carries the membership as it remains
		// stored, undoing the optimistic flip
		m.favIDs[msg.Movie.ID] = msg.IsFavorite
		m.applyFavoriteMarkers()
		m.StatusMsg = "Couldn't save favorites: " + msg.Err.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(6 * time.Second)
	}

	m.favIDs[msg.Movie.ID] = msg.IsFavorite
	m.applyFavoriteMarkers()
	if m.State == StateFavorites {
		m.refreshFavorites()
	}

	if msg.IsFavorite {
		m.StatusMsg = fmt.Sprintf("Added %q to favorites", msg.Movie.Title)
	} else {
		m.StatusMsg = fmt.Sprintf("Removed %q from favorites", msg.Movie.Title)
	}
	m.StatusIsErr = false
	return m, ClearStatusCmd(3 * time.Second)
}

// handleKeyMsg routes keyboard input based on application state
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: any key returns
	if m.State == StateHelp {
		m.State = m.prevState
		return m, nil
	}

	// Reset confirmation swallows all keys
	if m.State == StateConfirmReset {
		if !m.ResetModal.IsVisible() {
			// Confirmed already, reset in flight
			return m, nil
		}
		var confirmed bool
		m.ResetModal, confirmed = m.ResetModal.Update(msg)
		if confirmed {
			return m, ResetKeyCmd()
		}
		if !m.ResetModal.IsVisible() {
			m.State = m.prevState
		}
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.State {
	case StateSearch:
		return m.handleSearchKeys(msg)
	case StateFavorites:
		return m.handleFavoritesKeys(msg)
	case StateDetail:
		return m.handleDetailKeys(msg)
	}

	return m, nil
}

// handleSearchKeys handles input on the search screen
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typing in the query bar
	if m.SearchBar.Focused() {
		switch msg.String() {
		case "enter":
			return m.submitQuery()
		case "esc":
			m.SearchBar.Blur()
			m.ResultList.SetFocused(true)
			return m, nil
		case "down":
			if !m.ResultList.IsEmpty() {
				m.SearchBar.Blur()
				m.ResultList.SetFocused(true)
				return m, nil
			}
			return m, nil
		case "tab":
			return m.openFavorites()
		default:
			var cmd tea.Cmd
			m.SearchBar, cmd = m.SearchBar.Update(msg)
			return m, cmd
		}
	}

	// Typing in the list's own filter
	if m.ResultList.IsFilterTyping() {
		_, cmd := m.ResultList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.prevState = m.State
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Reset):
		return m.openResetConfirm()

	case key.Matches(msg, Keys.Search):
		m.ResultList.SetFocused(false)
		return m, m.SearchBar.Focus()

	case key.Matches(msg, Keys.Favorites):
		return m.openFavorites()

	case key.Matches(msg, Keys.Toggle):
		cmd := m.toggleSelected(m.ResultList)
		return m, cmd

	case key.Matches(msg, Keys.Enter):
		return m.openDetail(m.ResultList)

	case key.Matches(msg, Keys.Filter):
		if !m.ResultList.IsEmpty() {
			m.ResultList.ToggleFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.Back):
		if m.ResultList.IsFiltering() {
			// First esc clears the filter
			_, cmd := m.ResultList.Update(msg)
			return m, cmd
		}
		m.ResultList.SetFocused(false)
		return m, m.SearchBar.Focus()

	case key.Matches(msg, Keys.Retry):
		return m.retryFailed()

	case key.Matches(msg, Keys.Up), key.Matches(msg, Keys.Down),
		key.Matches(msg, Keys.Home), key.Matches(msg, Keys.End),
		key.Matches(msg, Keys.HalfUp), key.Matches(msg, Keys.HalfDown):
		// Navigation goes to the list; hitting the last loaded row with
		// more pages upstream kicks off the next fetch
		_, cmd := m.ResultList.Update(msg)
		cmds := []tea.Cmd{cmd}

		if m.shouldLoadMore(msg) {
			if req, ok := m.Session.LoadMore(); ok {
				m.ResultList.SetLoadingMore(true)
				cmds = append(cmds, SearchPageCmd(m.Catalog, req))
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// handleFavoritesKeys handles input on the favorites screen
func (m Model) handleFavoritesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typing in the filter bar refilters on every keystroke
	if m.FavFilter.Focused() {
		switch msg.String() {
		case "enter":
			m.FavFilter.Blur()
			m.FavList.SetFocused(true)
			return m, nil
		case "esc":
			m.FavFilter.Reset()
			m.FavFilter.Blur()
			m.FavList.SetFocused(true)
			m.applyFavoritesFilter()
			return m, nil
		default:
			var cmd tea.Cmd
			m.FavFilter, cmd = m.FavFilter.Update(msg)
			m.applyFavoritesFilter()
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.prevState = m.State
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Reset):
		return m.openResetConfirm()

	case key.Matches(msg, Keys.Search), key.Matches(msg, Keys.Favorites):
		return m.openSearch()

	case key.Matches(msg, Keys.Back):
		if m.FavFilter.Value() != "" {
			m.FavFilter.Reset()
			m.applyFavoritesFilter()
			return m, nil
		}
		return m.openSearch()

	case key.Matches(msg, Keys.Filter):
		m.FavList.SetFocused(false)
		return m, m.FavFilter.Focus()

	case key.Matches(msg, Keys.Toggle):
		cmd := m.toggleSelected(m.FavList)
		return m, cmd

	case key.Matches(msg, Keys.Enter):
		return m.openDetail(m.FavList)

	case key.Matches(msg, Keys.Up), key.Matches(msg, Keys.Down),
		key.Matches(msg, Keys.Home), key.Matches(msg, Keys.End),
		key.Matches(msg, Keys.HalfUp), key.Matches(msg, Keys.HalfDown):
		_, cmd := m.FavList.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleDetailKeys handles input on the detail screen
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.prevState = m.State
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Back):
		return m.closeDetail()

	case key.Matches(msg, Keys.Toggle):
		d := m.Inspector.Detail()
		if d == nil {
			return m, nil
		}
		cmd := m.startToggle(d.MovieSummary)
		return m, cmd

	case key.Matches(msg, Keys.Down):
		m.Inspector.ScrollDown()
		return m, nil

	case key.Matches(msg, Keys.Up):
		m.Inspector.ScrollUp()
		return m, nil
	}

	return m, nil
}

// submitQuery starts a fresh search for the bar's text. A blank query just
// resets the list without touching the network.
func (m Model) submitQuery() (tea.Model, tea.Cmd) {
	req, ok := m.Session.SubmitQuery(m.SearchBar.Value())
	if !ok {
		m.ResultList.SetMovies(nil)
		m.ResultList.SetTitle("Results")
		m.ResultList.SetEmptyMessage("Type a query and press enter")
		return m, nil
	}

	m.SearchBar.Blur()
	m.ResultList.SetFocused(true)
	m.ResultList.SetMovies(nil)
	m.ResultList.SetTitle("Results")
	m.ResultList.SetLoading(true)
	return m, SearchPageCmd(m.Catalog, req)
}

// retryFailed re-runs whatever fetch last failed: the next page when rows
// have accumulated, otherwise the query from the top
func (m Model) retryFailed() (tea.Model, tea.Cmd) {
	if m.Session.LastErr() == nil {
		return m, nil
	}

	if req, ok := m.Session.LoadMore(); ok {
		m.ResultList.SetLoadingMore(true)
		return m, SearchPageCmd(m.Catalog, req)
	}

	if req, ok := m.Session.SubmitQuery(m.Session.Query()); ok {
		m.ResultList.SetMovies(nil)
		m.ResultList.SetLoading(true)
		return m, SearchPageCmd(m.Catalog, req)
	}

	return m, nil
}

// shouldLoadMore reports whether a downward navigation key landed on the
// last loaded row while the catalog still has pages left
func (m Model) shouldLoadMore(msg tea.KeyMsg) bool {
	if !key.Matches(msg, Keys.Down) && !key.Matches(msg, Keys.End) && !key.Matches(msg, Keys.HalfDown) {
		return false
	}
	if m.ResultList.IsFiltering() {
		// The filter narrows loaded rows only; no paging underneath it
		return false
	}
	return m.ResultList.AtEnd() && m.Session.HasMore() && !m.Session.IsLoading()
}

// openDetail switches to the detail screen for the selected movie
func (m Model) openDetail(list *components.MovieList) (tea.Model, tea.Cmd) {
	movie := list.SelectedMovie()
	if movie == nil {
		return m, nil
	}

	m.detailReturn = m.State
	m.detailID = movie.ID
	m.State = StateDetail
	m.Inspector.Clear()
	m.Inspector.SetLoading(true)
	m.Inspector.SetFavorite(m.favIDs[movie.ID])
	m.updateLayout()
	return m, LoadDetailCmd(m.Catalog, movie.ID)
}

// closeDetail returns to the screen the detail view was opened from
func (m Model) closeDetail() (tea.Model, tea.Cmd) {
	m.State = m.detailReturn
	m.detailID = ""
	m.Inspector.Clear()
	if m.State == StateFavorites {
		// Membership may have changed while the detail screen was up
		m.refreshFavorites()
		m.FavList.SetFocused(true)
	} else {
		m.ResultList.SetFocused(true)
	}
	m.updateLayout()
	return m, nil
}

// openFavorites switches to the favorites screen, rereading the store
func (m Model) openFavorites() (tea.Model, tea.Cmd) {
	m.State = StateFavorites
	m.SearchBar.Blur()
	m.ResultList.SetFocused(false)
	m.FavList.SetFocused(true)
	m.refreshFavorites()
	m.updateLayout()
	return m, nil
}

// openSearch switches back to the search screen. The query bar takes focus
// when there is nothing to navigate yet.
func (m Model) openSearch() (tea.Model, tea.Cmd) {
	m.State = StateSearch
	m.FavList.SetFocused(false)
	m.FavFilter.Blur()
	m.updateLayout()

	if m.ResultList.IsEmpty() && !m.ResultList.IsFiltering() {
		m.ResultList.SetFocused(false)
		return m, m.SearchBar.Focus()
	}
	m.ResultList.SetFocused(true)
	return m, nil
}

// openResetConfirm shows the API key reset confirmation
func (m Model) openResetConfirm() (tea.Model, tea.Cmd) {
	m.prevState = m.State
	m.State = StateConfirmReset
	m.ResetModal.Show(
		"Reset API key?",
		"The saved catalog API key will be cleared and the app will exit. Setup runs again on the next launch.",
	)
	return m, nil
}

// toggleSelected toggles the favorite state of the list's selected movie
func (m *Model) toggleSelected(list *components.MovieList) tea.Cmd {
	movie := list.SelectedMovie()
	if movie == nil {
		return nil
	}
	return m.startToggle(*movie)
}

// startToggle flips the marker immediately and hands the write to the
// favorites service. Only one write runs at a time.
func (m *Model) startToggle(movie domain.MovieSummary) tea.Cmd {
	if m.togglePending {
		m.StatusMsg = "Still saving the last change..."
		m.StatusIsErr = false
		return ClearStatusCmd(2 * time.Second)
	}

	m.togglePending = true
	m.favIDs[movie.ID] = !m.favIDs[movie.ID]
	m.applyFavoriteMarkers()
	m.ResultList.SetPendingID(movie.ID)
	m.FavList.SetPendingID(movie.ID)
	return ToggleFavoriteCmd(m.Favorites, movie)
}

// syncResultRows mirrors the session's accumulated results into the list.
// keepCursor holds the selection in place when a page was appended.
func (m *Model) syncResultRows(keep int, keepCursor bool) {
	results := m.Session.Results()
	m.ResultList.SetMovies(results)
	m.ResultList.SetFavorites(m.favIDs)
	if keepCursor {
		m.ResultList.SetSelectedIndex(keep)
	}
	m.ResultList.SetTitle(m.resultTitle())

	switch {
	case m.Session.State() == service.SessionFailed && len(results) == 0:
		m.ResultList.SetEmptyMessage("Search failed. Press r to retry.")
	case m.Session.Message() != "":
		m.ResultList.SetEmptyMessage(m.Session.Message())
	case m.Session.Query() != "":
		m.ResultList.SetEmptyMessage(fmt.Sprintf("No results for %q", m.Session.Query()))
	default:
		m.ResultList.SetEmptyMessage("Type a query and press enter")
	}
}

// resultTitle shows loaded-versus-total progress once results exist
func (m Model) resultTitle() string {
	loaded := len(m.Session.Results())
	total := m.Session.TotalCount()
	if loaded == 0 || total <= 0 {
		return "Results"
	}
	return fmt.Sprintf("Results · %d of %d", loaded, total)
}

// refreshFavorites rereads the store and rebuilds the favorites screen,
// holding the cursor in place
func (m *Model) refreshFavorites() {
	movies := m.Favorites.All()
	if !m.togglePending {
		m.setFavoriteIDs(movies)
	}

	keep := m.FavList.SelectedIndex()
	m.applyFavoritesFilter()
	m.FavList.SetSelectedIndex(keep)
}

// applyFavoritesFilter replaces the favorites rows with the current
// filter's matches
func (m *Model) applyFavoritesFilter() {
	matches := m.Favorites.Filter(m.FavFilter.Value())
	m.FavList.SetMatches(matches)
	m.FavList.SetFavorites(m.favIDs)

	total := m.Favorites.Count()
	if m.FavFilter.Value() != "" {
		m.FavList.SetTitle(fmt.Sprintf("Favorites · %d/%d", len(matches), total))
		m.FavList.SetEmptyMessage(fmt.Sprintf("No favorites match %q", m.FavFilter.Value()))
	} else {
		m.FavList.SetTitle(fmt.Sprintf("Favorites · %d", total))
		m.FavList.SetEmptyMessage("No favorites yet. Press f on any movie to add one.")
	}
}

// setFavoriteIDs rebuilds the marker set from an authoritative list
func (m *Model) setFavoriteIDs(movies []domain.MovieSummary) {
	ids := make(map[string]bool, len(movies))
	for _, movie := range movies {
		ids[movie.ID] = true
	}
	m.favIDs = ids
	m.applyFavoriteMarkers()
}

// applyFavoriteMarkers pushes the current marker set to every view
func (m *Model) applyFavoriteMarkers() {
	m.ResultList.SetFavorites(m.favIDs)
	m.FavList.SetFavorites(m.favIDs)
	if m.State == StateDetail && m.detailID != "" {
		m.Inspector.SetFavorite(m.favIDs[m.detailID])
	}
}

// updateLayout recalculates component dimensions
func (m *Model) updateLayout() {
	if !m.Ready {
		return
	}

	contentHeight := m.Height - ChromeHeight
	listHeight := contentHeight - BarHeight
	if listHeight < 3 {
		listHeight = 3
	}

	m.SearchBar.SetWidth(m.Width)
	m.FavFilter.SetWidth(m.Width)
	m.ResultList.SetSize(m.Width, listHeight)
	m.FavList.SetSize(m.Width, listHeight)
	m.Inspector.SetSize(m.Width, contentHeight)
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	screen := m.State
	if screen == StateConfirmReset {
		screen = m.prevState
	}

	var content string
	switch screen {
	case StateDetail:
		content = m.viewDetailScreen()
	case StateFavorites:
		content = m.viewFavoritesScreen()
	default:
		content = m.viewSearchScreen()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderFooter(),
	)

	// Overlay the reset confirmation if visible
	if m.ResetModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.ResetModal.View())
	}

	return view
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	// Left side: spinner + status while working, otherwise the status line
	var left string
	switch {
	case m.State == StateSearch && m.Session.IsLoading():
		statusText := fmt.Sprintf("Searching %q...", m.Session.Query())
		if m.Session.Page() > 1 {
			statusText = fmt.Sprintf("Loading page %d...", m.Session.Page())
		}
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render(statusText)
	case m.togglePending:
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Saving favorites...")
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	// Center section: context hints for the current screen
	var center string
	switch m.State {
	case StateSearch:
		if m.SearchBar.Focused() {
			center = footerHint("enter", "search") + "  " + footerHint("tab", "favorites")
		} else {
			center = footerHint("enter", "details") + "  " + footerHint("f", "favorite") + "  " + footerHint("tab", "favorites")
		}
	case StateFavorites:
		center = footerHint("enter", "details") + "  " + footerHint("f", "remove") + "  " + footerHint("/", "filter")
	case StateDetail:
		center = footerHint("j/k", "scroll") + "  " + footerHint("f", "favorite") + "  " + footerHint("esc", "back")
	}

	// Right side: "? help" hint
	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	// Layout: left + centered hints + right
	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.Width {
		// Not enough space - just left + right
		gap := m.Width - leftWidth - rightWidth
		if gap < 0 {
			gap = 0
		}
		return left + strings.Repeat(" ", gap) + right
	}

	// Center the hints in available space
	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

func footerHint(keyLabel, action string) string {
	return styles.AccentStyle.Render(keyLabel) + styles.DimStyle.Render(" "+action)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                      ACTIONS
  j/k        Up/down               Enter  Open details
  g/G        First/last item       f      Toggle favorite
  Ctrl+u/d   Scroll half page      /      Filter loaded rows
  j/k        Scroll plot (detail)  r      Retry failed search

SCREENS                         OTHER
  s          Focus search bar      q      Quit
  Tab        Favorites             ?      This help
  Esc        Back / clear          Ctrl+r Reset API key

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
