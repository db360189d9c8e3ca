package components

import (
	"strings"

	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorScrollIndicators = 2
)

// inspectorContent holds the three-zone layout content
type inspectorContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// Inspector displays the full metadata for a single movie
type Inspector struct {
	detail     *domain.MovieDetail
	isFavorite bool

	loading      bool
	spinnerFrame int

	width      int
	height     int
	offset     int // body scroll offset
	maxVisible int // max visible lines
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{}
}

// SetDetail sets the movie to display
func (i *Inspector) SetDetail(detail *domain.MovieDetail) {
	i.detail = detail
	i.loading = false
	i.offset = 0 // Reset scroll on movie change
}

// Clear removes the displayed movie
func (i *Inspector) Clear() {
	i.detail = nil
	i.loading = false
	i.offset = 0
}

// SetFavorite updates the favorite marker for the displayed movie
func (i *Inspector) SetFavorite(fav bool) {
	i.isFavorite = fav
}

// SetLoading sets the loading state
func (i *Inspector) SetLoading(loading bool) {
	i.loading = loading
}

// SetSpinnerFrame updates the spinner animation frame
func (i *Inspector) SetSpinnerFrame(frame int) {
	i.spinnerFrame = frame
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	// Calculate max visible lines (reserve space for border, scroll indicators, and title)
	i.maxVisible = height - InspectorBorderHeight - InspectorScrollIndicators - 2 // -1 for title, -1 for blank line
	if i.maxVisible < 1 {
		i.maxVisible = 1
	}
}

// Detail returns the displayed movie, or nil
func (i Inspector) Detail() *domain.MovieDetail {
	return i.detail
}

// ScrollDown moves the plot window down one line. The offset is clamped
// during rendering, when the body height is known.
func (i *Inspector) ScrollDown() {
	i.offset++
}

// ScrollUp moves the plot window up one line
func (i *Inspector) ScrollUp() {
	if i.offset > 0 {
		i.offset--
	}
}

// View renders the component
func (i Inspector) View() string {
	style := styles.InactiveBorder

	// Border takes 2 chars (1 each side), leave 1 char safety margin
	contentWidth := i.width - 3
	if contentWidth < 10 {
		contentWidth = 10
	}

	// Title line (styled, matching the list panels)
	titleLine := styles.AccentStyle.Render(styles.Truncate("Details", contentWidth))

	if i.loading {
		spinner := movieListSpinnerFrames[i.spinnerFrame%len(movieListSpinnerFrames)]
		loadingLine := styles.DimStyle.Render(spinner + " Loading...")
		rendered := titleLine + "\n\n" + loadingLine
		frameW, frameH := style.GetFrameSize()
		return style.
			Width(i.width - frameW).
			Height(i.height - frameH).
			Render(rendered)
	}

	content := i.renderDetail(contentWidth)

	// Three-zone layout: header is fixed, body scrolls, footer is fixed
	headerLines := splitLines(content.header)
	footerLines := splitLines(content.footer)
	bodyLines := splitLines(content.body)

	// Calculate available space for body
	availableForBody := i.maxVisible - len(headerLines) - len(footerLines)
	if availableForBody < 1 {
		availableForBody = 1
	}

	// Clamp body scroll offset
	totalBodyLines := len(bodyLines)
	maxOffset := totalBodyLines - availableForBody
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := i.offset
	if offset > maxOffset {
		offset = maxOffset
	}

	// Get visible body window
	end := offset + availableForBody
	if end > totalBodyLines {
		end = totalBodyLines
	}
	visibleBody := bodyLines[offset:end]

	// Scroll indicators for body only
	header := " "
	if offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < totalBodyLines {
		footer = styles.DimStyle.Render("↓ more")
	}

	// Assemble: title + header zone + scroll-up indicator + visible body + padding + scroll-down indicator + footer zone
	var parts []string
	parts = append(parts, titleLine)
	parts = append(parts, "")

	// Header zone (fixed)
	if len(headerLines) > 0 && content.header != "" {
		parts = append(parts, strings.Join(headerLines, "\n"))
	}

	// Scroll-up indicator
	parts = append(parts, header)

	// Visible body
	if len(visibleBody) > 0 {
		parts = append(parts, strings.Join(visibleBody, "\n"))
	}

	// Pad between body end and footer if body is shorter than available space
	visibleBodyCount := len(visibleBody)
	if visibleBodyCount < availableForBody {
		padding := availableForBody - visibleBodyCount
		for j := 0; j < padding; j++ {
			parts = append(parts, "")
		}
	}

	// Scroll-down indicator
	parts = append(parts, footer)

	// Footer zone (fixed, pinned to bottom)
	if len(footerLines) > 0 && content.footer != "" {
		parts = append(parts, strings.Join(footerLines, "\n"))
	}

	rendered := strings.Join(parts, "\n")

	// Subtract frame (border) size so total rendered size equals i.width x i.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(i.width - frameW).
		Height(i.height - frameH).
		Render(rendered)
}

// renderDetail renders the inspector panel content as three zones
func (i Inspector) renderDetail(width int) inspectorContent {
	if i.detail == nil {
		return inspectorContent{body: styles.DimStyle.Render("No movie selected")}
	}

	d := *i.detail
	return inspectorContent{
		header: renderDetailHeader(d, i.isFavorite, width),
		body:   renderDetailBody(d, width),
		footer: renderDetailFooter(d, width),
	}
}

func renderDetailHeader(d domain.MovieDetail, isFavorite bool, width int) string {
	var b strings.Builder

	// Title
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(d.Title, width)))
	b.WriteString("\n")

	// Meta line: Year · Runtime · Content Rating
	var metaParts []string
	if d.Year != "" {
		metaParts = append(metaParts, d.Year)
	}
	if hasValue(d.RuntimeLabel) {
		metaParts = append(metaParts, d.RuntimeLabel)
	}
	if hasValue(d.ContentRating) {
		metaParts = append(metaParts, d.ContentRating)
	}
	if len(metaParts) > 0 {
		b.WriteString(styles.DimStyle.Render(strings.Join(metaParts, " · ")))
		b.WriteString("\n")
	}

	// Rating and favorite status grouped left
	var statusParts []string
	if value, ok := d.RatingValue(); ok {
		statusParts = append(statusParts, styles.RenderRating(value, "★ "+d.Rating))
	} else {
		statusParts = append(statusParts, styles.DimStyle.Render("★ N/A"))
	}

	if isFavorite {
		statusParts = append(statusParts, styles.FavoriteStyle.Render(styles.FavoriteChar+" Favorited"))
	} else {
		statusParts = append(statusParts, styles.DimStyle.Render(styles.NonFavoriteChar+" Not favorited"))
	}
	b.WriteString(strings.Join(statusParts, "   "))
	b.WriteString("\n")

	// Genres
	if hasValue(d.Genres) {
		b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(d.Genres, width)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderDetailBody(d domain.MovieDetail, width int) string {
	if !hasValue(d.PlotSummary) {
		return ""
	}
	bodyWidth := width - 2
	if bodyWidth > 80 {
		bodyWidth = 80
	}
	plot := wordWrap(d.PlotSummary, bodyWidth)
	return styles.SubtitleStyle.Render(plot)
}

func renderDetailFooter(d domain.MovieDetail, width int) string {
	hasCredits := hasValue(d.Director) || hasValue(d.Cast)
	if !hasCredits {
		return ""
	}

	var b strings.Builder

	// Separator
	separator := strings.Repeat("─", width)
	b.WriteString(styles.DimStyle.Render(separator))
	b.WriteString("\n")

	if hasValue(d.Director) {
		b.WriteString(styles.DimStyle.Render(styles.Truncate("Director  "+d.Director, width)))
		b.WriteString("\n")
	}
	if hasValue(d.Cast) {
		b.WriteString(styles.DimStyle.Render(styles.Truncate("Cast      "+d.Cast, width)))
	}

	return strings.TrimRight(b.String(), "\n")
}

// hasValue reports whether a catalog field carries displayable content.
// The catalog substitutes "N/A" for fields it has no data for.
func hasValue(s string) bool {
	return s != "" && s != "N/A"
}

// splitLines splits a string into lines, returning empty slice for empty string
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := len(word)

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
