package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/service"
	"github.com/dmaize/reel/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Spinner frames for loading animation
var movieListSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Layout constants for list panels
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// MovieList is a scrollable list of movies. It renders either plain
// summaries (catalog results) or filter matches with highlighted titles
// (favorites screen) - only one of the two is populated at a time.
type MovieList struct {
	movies  []domain.MovieSummary
	matches []service.FavoriteMatch

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	// Panel title (shown in header)
	title string

	// Loading states: loading replaces the list with a spinner,
	// loadingMore shows a spinner row below the last item
	loading      bool
	loadingMore  bool
	spinnerFrame int

	// Favorite markers
	favorites map[string]bool
	pendingID string // id with a favorites write in flight

	// Message shown when the list is empty
	emptyMessage string

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int // indices into the movies slice
}

// NewMovieList creates a new movie list with the given title
func NewMovieList(title string) *MovieList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &MovieList{
		title:        title,
		filterInput:  ti,
		favorites:    make(map[string]bool),
		emptyMessage: "No movies",
	}
}

func (c *MovieList) Update(msg tea.Msg) (*MovieList, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	// Handle filter input when active AND focused (typing mode)
	if c.filterActive && c.filterInput.Focused() {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "esc":
				c.clearFilter()
				return c, nil
			case "enter":
				// Accept filter, blur input to allow navigation
				c.filterInput.Blur()
				return c, nil
			case "backspace":
				if c.filterInput.Value() == "" {
					c.clearFilter()
					return c, nil
				}
			}
		}

		// Route to textinput
		var cmd tea.Cmd
		c.filterInput, cmd = c.filterInput.Update(msg)
		c.applyFilter()
		return c, cmd
	}

	// Handle keys when filter is active but blurred (navigation mode with filter results)
	if c.filterActive {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "esc":
				// Clear filter and show all items
				c.clearFilter()
				return c, nil
			case "/":
				// Re-activate filter input
				c.filterInput.Focus()
				return c, nil
			}
		}
		// Fall through to normal navigation handling
	}

	count := c.ItemCount()
	if count == 0 {
		return c, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if c.cursor < count-1 {
				c.cursor++
				c.ensureVisible()
			}
		case "k", "up":
			if c.cursor > 0 {
				c.cursor--
				c.ensureVisible()
			}
		case "g", "home":
			c.cursor = 0
			c.offset = 0
		case "G", "end":
			c.cursor = count - 1
			c.ensureVisible()
		case "ctrl+d":
			// Page down
			c.cursor += c.maxVisible / 2
			if c.cursor >= count {
				c.cursor = count - 1
			}
			c.ensureVisible()
		case "ctrl+u":
			// Page up
			c.cursor -= c.maxVisible / 2
			if c.cursor < 0 {
				c.cursor = 0
			}
			c.ensureVisible()
		}
	}

	return c, nil
}

func (c *MovieList) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}

	content := c.renderContent()

	// Subtract frame (border) size so total rendered size equals c.width x c.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(content)
}

func (c *MovieList) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible() // Scroll to show selected item now that we know the size
}

func (c *MovieList) SetFocused(focused bool) {
	c.focused = focused
}

func (c *MovieList) SetTitle(title string) {
	c.title = title
}

// SetMovies replaces the list content with plain summaries and resets
// the selection
func (c *MovieList) SetMovies(movies []domain.MovieSummary) {
	c.movies = movies
	c.matches = nil
	c.loading = false
	c.loadingMore = false
	c.cursor = 0
	c.offset = 0
	c.clearFilter()
}

// SetMatches replaces the list content with filter matches and resets
// the selection
func (c *MovieList) SetMatches(matches []service.FavoriteMatch) {
	c.matches = matches
	c.movies = nil
	c.loading = false
	c.loadingMore = false
	c.cursor = 0
	c.offset = 0
}

// SetFavorites updates the set of favorited ids used for row markers
func (c *MovieList) SetFavorites(ids map[string]bool) {
	c.favorites = ids
}

// SetPendingID marks the id whose favorites write is in flight. The row
// shows a spinner instead of a star until cleared with an empty id.
func (c *MovieList) SetPendingID(id string) {
	c.pendingID = id
}

// SetEmptyMessage sets the text shown when the list has no items
func (c *MovieList) SetEmptyMessage(msg string) {
	c.emptyMessage = msg
}

// SelectedMovie returns the movie under the cursor, or nil
func (c *MovieList) SelectedMovie() *domain.MovieSummary {
	count := c.ItemCount()
	if count == 0 || c.cursor >= count {
		return nil
	}

	if c.matches != nil {
		return &c.matches[c.cursor].Movie
	}
	idx := c.mapIndex(c.cursor)
	return &c.movies[idx]
}

func (c *MovieList) SelectedIndex() int {
	return c.cursor
}

func (c *MovieList) SetSelectedIndex(idx int) {
	max := c.ItemCount() - 1
	if max < 0 {
		c.cursor = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > max {
		idx = max
	}
	c.cursor = idx
	c.ensureVisible()
}

func (c *MovieList) ItemCount() int {
	if c.matches != nil {
		return len(c.matches)
	}
	return c.filteredCount()
}

func (c *MovieList) IsEmpty() bool {
	return c.ItemCount() == 0
}

// AtEnd returns true if the cursor sits on the last row
func (c *MovieList) AtEnd() bool {
	count := c.ItemCount()
	return count > 0 && c.cursor == count-1
}

func (c *MovieList) SetLoading(loading bool) {
	c.loading = loading
}

func (c *MovieList) SetLoadingMore(loading bool) {
	c.loadingMore = loading
}

// SetSpinnerFrame updates the spinner animation frame
func (c *MovieList) SetSpinnerFrame(frame int) {
	c.spinnerFrame = frame
}

// ToggleFilter activates the filter input
func (c *MovieList) ToggleFilter() {
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
}

// IsFiltering returns true if filter mode is active
func (c *MovieList) IsFiltering() bool {
	return c.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (c *MovieList) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

// Internal methods

func (c *MovieList) recalcMaxVisible() {
	// Interior height = total - border (top+bottom)
	// Reserve space for: title line + scroll indicators (header + footer)
	interiorHeight := c.height - BorderHeight
	c.maxVisible = interiorHeight - ScrollIndicatorLines - 1 // -1 for title
	// Reserve space for filter bar when active
	if c.filterActive {
		c.maxVisible--
	}
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

func (c *MovieList) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

func (c *MovieList) clearFilter() {
	c.filterActive = false
	c.filterQuery = ""
	c.filteredIdx = nil
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.recalcMaxVisible()
}

func (c *MovieList) applyFilter() {
	query := c.filterInput.Value()
	c.filterQuery = query

	if query == "" {
		c.filteredIdx = nil
		return
	}

	// Get titles and do case-insensitive matching
	lowerTitles := make([]string, len(c.movies))
	for i, m := range c.movies {
		lowerTitles[i] = strings.ToLower(m.Title)
	}

	found := fuzzy.Find(strings.ToLower(query), lowerTitles)

	c.filteredIdx = make([]int, len(found))
	for i, match := range found {
		c.filteredIdx[i] = match.Index
	}

	// Reset cursor to first match
	c.cursor = 0
	c.offset = 0
}

func (c *MovieList) filteredCount() int {
	if c.filteredIdx != nil {
		return len(c.filteredIdx)
	}
	return len(c.movies)
}

func (c *MovieList) mapIndex(i int) int {
	if c.filteredIdx != nil && i < len(c.filteredIdx) {
		return c.filteredIdx[i]
	}
	return i
}

// Rendering

func (c *MovieList) renderContent() string {
	// Content width = panel width - border (2 chars for left+right border)
	itemWidth := c.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	// Title line (styled, truncated to fit panel width)
	titleLine := styles.AccentStyle.Render(styles.Truncate(c.title, itemWidth))

	// Loading state
	if c.loading {
		spinner := movieListSpinnerFrames[c.spinnerFrame%len(movieListSpinnerFrames)]
		loadingLine := styles.DimStyle.Render(spinner + " Loading...")
		return titleLine + "\n" + " " + "\n" + loadingLine + "\n" + " "
	}

	count := c.ItemCount()
	if count == 0 {
		emptyMsg := styles.DimStyle.Render(c.emptyMessage)
		if c.filterActive && c.filterQuery != "" {
			emptyMsg = styles.DimStyle.Render("No matches")
		}
		return titleLine + "\n" + " " + "\n" + emptyMsg + "\n" + " "
	}

	var lines []string

	end := c.offset + c.maxVisible
	if end > count {
		end = count
	}

	for i := c.offset; i < end; i++ {
		selected := i == c.cursor
		var line string
		if c.matches != nil {
			line = c.renderMatchRow(c.matches[i], selected, itemWidth)
		} else {
			line = c.renderMovieRow(c.movies[c.mapIndex(i)], selected, itemWidth)
		}
		lines = append(lines, line)
	}

	// ALWAYS reserve space for header (even if empty) to prevent layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}

	// ALWAYS reserve space for footer (even if empty). The loading-more
	// spinner takes the footer line so the layout stays stable.
	footer := " "
	if c.loadingMore {
		spinner := movieListSpinnerFrames[c.spinnerFrame%len(movieListSpinnerFrames)]
		footer = styles.DimStyle.Render(spinner + " Loading more...")
	} else if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := strings.Join(lines, "\n")
	content = titleLine + "\n" + header + "\n" + content + "\n" + footer

	// Add filter bar at bottom if active
	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}

	return content
}

func (c *MovieList) renderMovieRow(movie domain.MovieSummary, selected bool, width int) string {
	marker, markerFg := c.favoriteMarker(movie.ID)

	// Available space: width - marker(1) - space(1) - margins(2)
	availableForTitle := width - 4
	if availableForTitle < 5 {
		availableForTitle = 5
	}
	title := styles.Truncate(movie.DisplayTitle(), availableForTitle)

	parts := []styles.RowPart{
		{Text: marker, Foreground: &markerFg},
		{Text: " " + title, Foreground: nil},
	}

	return styles.RenderListRow(parts, selected, width)
}

func (c *MovieList) renderMatchRow(match service.FavoriteMatch, selected bool, width int) string {
	marker, markerFg := c.favoriteMarker(match.Movie.ID)

	availableForTitle := width - 4
	if availableForTitle < 5 {
		availableForTitle = 5
	}
	title := styles.Truncate(match.Movie.Title, availableForTitle)

	markerStyle := lipgloss.NewStyle().Foreground(markerFg)
	if selected {
		markerStyle = markerStyle.Background(styles.SlateLight)
	}

	// Highlighted rows bypass RenderListRow: per-rune styling and row
	// backgrounds do not compose through lipgloss
	return " " + markerStyle.Render(marker+" ") + highlightMatchedRunes(title, match.MatchedIndexes, selected)
}

func (c *MovieList) favoriteMarker(id string) (string, lipgloss.Color) {
	if id != "" && id == c.pendingID {
		return movieListSpinnerFrames[c.spinnerFrame%len(movieListSpinnerFrames)], styles.Gold
	}
	if c.favorites[id] {
		return styles.FavoriteChar, styles.Gold
	}
	return styles.NonFavoriteChar, styles.DimGray
}

func (c *MovieList) renderFilterBar() string {
	input := c.filterInput.View()
	count := c.ItemCount()
	total := len(c.movies)

	// Show match count
	countStr := ""
	if c.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", count, total))
	}

	return input + countStr
}

// highlightMatchedRunes renders text with matched characters highlighted.
// Uses ANSI codes directly to avoid lipgloss padding issues.
func highlightMatchedRunes(text string, matchedIndexes []int, selected bool) string {
	if len(matchedIndexes) == 0 {
		if selected {
			return styles.SelectedItemStyle.Render(text)
		}
		return styles.NormalItemStyle.Render(text)
	}

	// Create a set of matched indexes for O(1) lookup
	matchSet := make(map[int]bool)
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	// ANSI escape codes for inline styling (no padding)
	// Gold/bold for matches, gray for normal text
	const (
		reset    = "\033[0m"
		goldBold = "\033[38;5;220;1m"
		gray     = "\033[38;5;250m"
		white    = "\033[38;5;255m"
		bgSlate  = "\033[48;5;238m"
	)

	var matchStart, matchEnd, normalStart, normalEnd string
	if selected {
		// Selected: white bg for normal, gold+bold+bg for match
		normalStart = white + bgSlate
		normalEnd = reset
		matchStart = goldBold + bgSlate
		matchEnd = reset
	} else {
		// Not selected: gray for normal, gold+bold for match
		normalStart = gray
		normalEnd = reset
		matchStart = goldBold
		matchEnd = reset
	}

	// Batch consecutive characters with the same style
	var result strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		isMatch := matchSet[i]

		// Collect consecutive characters with the same match state
		var batch strings.Builder
		for i < len(runes) && matchSet[i] == isMatch {
			batch.WriteRune(runes[i])
			i++
		}

		// Render the batch with ANSI codes
		if isMatch {
			result.WriteString(matchStart)
			result.WriteString(batch.String())
			result.WriteString(matchEnd)
		} else {
			result.WriteString(normalStart)
			result.WriteString(batch.String())
			result.WriteString(normalEnd)
		}
	}

	return result.String()
}
