package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FuzzyMatch represents a search match result
type FuzzyMatch struct {
	Index          int   // Index in source slice
	Score          int   // Match score (lower = better)
	MatchedIndexes []int // Character positions that matched (for highlighting)
}

// FuzzySearch performs token-based fuzzy matching tuned for movie titles.
//
// Algorithm:
//  1. Tokenize the query into words
//  2. For each query token, find the best match in the title
//  3. All query tokens must match (AND semantics)
//  4. Word order does not matter ("knight dark" matches "The Dark Knight")
//  5. Typo tolerance scales with token length
//
// Returns matches sorted by score (lower = better).
func FuzzySearch(query string, titles []string) []FuzzyMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	var matches []FuzzyMatch

	for i, title := range titles {
		if match, ok := matchTitle(title, queryTokens, i); ok {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Score != matches[b].Score {
			return matches[a].Score < matches[b].Score
		}
		return len(titles[matches[a].Index]) < len(titles[matches[b].Index])
	})

	return matches
}

// token is a word and its rune position in the original string
type token struct {
	text  string // Lowercase text
	start int    // Start position in original string
	end   int    // End position (exclusive)
}

// tokenize splits text into word tokens, tracking rune positions
func tokenize(text string) []token {
	var tokens []token
	runes := []rune(strings.ToLower(text))

	inWord := false
	wordStart := 0

	for i, r := range runes {
		isWordChar := unicode.IsLetter(r) || unicode.IsDigit(r)

		if isWordChar && !inWord {
			wordStart = i
			inWord = true
		} else if !isWordChar && inWord {
			tokens = append(tokens, token{
				text:  string(runes[wordStart:i]),
				start: wordStart,
				end:   i,
			})
			inWord = false
		}
	}

	if inWord {
		tokens = append(tokens, token{
			text:  string(runes[wordStart:]),
			start: wordStart,
			end:   len(runes),
		})
	}

	return tokens
}

// tokenMatch records how a query token matched a title
type tokenMatch struct {
	score          int   // Match quality (lower = better), < 0 means no match
	matchedIndexes []int // Character positions in title that matched
}

// matchTitle attempts to match every query token against the title
func matchTitle(title string, queryTokens []token, index int) (FuzzyMatch, bool) {
	lowerTitle := strings.ToLower(title)
	titleTokens := tokenize(title)

	// Each title token can satisfy at most one query token
	usedTitleTokens := make([]bool, len(titleTokens))

	var allMatchedIndexes []int
	totalScore := 0

	for _, queryToken := range queryTokens {
		best, bestIdx := findBestTokenMatch(queryToken, titleTokens, lowerTitle, usedTitleTokens)

		if best.score < 0 {
			return FuzzyMatch{}, false
		}

		if bestIdx >= 0 {
			usedTitleTokens[bestIdx] = true
		}

		totalScore += best.score
		allMatchedIndexes = append(allMatchedIndexes, best.matchedIndexes...)
	}

	// Penalize titles with many words beyond the query
	if extra := len(titleTokens) - len(queryTokens); extra > 0 {
		totalScore += extra * 5
	}

	return FuzzyMatch{
		Index:          index,
		Score:          totalScore,
		MatchedIndexes: dedupeAndSort(allMatchedIndexes),
	}, true
}

// findBestTokenMatch finds the best unused title token for a query token,
// falling back to a whole-title substring match
func findBestTokenMatch(queryToken token, titleTokens []token, lowerTitle string, usedTitleTokens []bool) (tokenMatch, int) {
	best := tokenMatch{score: -1}
	bestIdx := -1

	for i, titleToken := range titleTokens {
		if usedTitleTokens[i] {
			continue
		}

		match := matchTokenToToken(queryToken.text, titleToken)
		if match.score >= 0 && (best.score < 0 || match.score < best.score) {
			best = match
			bestIdx = i
		}
	}

	if best.score < 0 {
		if match := matchSubstring(queryToken.text, lowerTitle); match.score >= 0 {
			best = match
			bestIdx = -1
		}
	}

	return best, bestIdx
}

// matchTokenToToken scores a query token against a single title token
func matchTokenToToken(query string, titleToken token) tokenMatch {
	title := titleToken.text

	// Exact match (best)
	if query == title {
		return tokenMatch{score: 0, matchedIndexes: indexRange(titleToken.start, titleToken.end)}
	}

	// Prefix match (very good)
	if strings.HasPrefix(title, query) {
		return tokenMatch{score: 10, matchedIndexes: indexRange(titleToken.start, titleToken.start+len([]rune(query)))}
	}

	// Query extends past the title token
	if strings.HasPrefix(query, title) {
		return tokenMatch{score: 20, matchedIndexes: indexRange(titleToken.start, titleToken.end)}
	}

	// Substring inside the token
	if idx := strings.Index(title, query); idx >= 0 {
		start := titleToken.start + idx
		return tokenMatch{score: 50 + idx, matchedIndexes: indexRange(start, start+len([]rune(query)))}
	}

	// Typo tolerance: edit distance within the allowance for this length.
	// The whole token is highlighted since positions are approximate.
	if maxTypos := allowedTypos(len([]rune(query))); maxTypos > 0 {
		if dist := fuzzy.LevenshteinDistance(query, title); dist <= maxTypos {
			return tokenMatch{score: 100 + dist*20, matchedIndexes: indexRange(titleToken.start, titleToken.end)}
		}
	}

	return tokenMatch{score: -1}
}

// matchSubstring finds the query anywhere in the full title, crossing word
// boundaries
func matchSubstring(query string, lowerTitle string) tokenMatch {
	if idx := strings.Index(lowerTitle, query); idx >= 0 {
		runeIdx := len([]rune(lowerTitle[:idx]))
		return tokenMatch{score: 150 + runeIdx, matchedIndexes: indexRange(runeIdx, runeIdx+len([]rune(query)))}
	}
	return tokenMatch{score: -1}
}

// allowedTypos returns the edit distance allowed for a query token:
// 1-3 chars = 0, 4-6 chars = 1, 7+ chars = 2
func allowedTypos(length int) int {
	switch {
	case length <= 3:
		return 0
	case length <= 6:
		return 1
	default:
		return 2
	}
}

// indexRange builds the consecutive positions [start, end)
func indexRange(start, end int) []int {
	indexes := make([]int, end-start)
	for i := range indexes {
		indexes[i] = start + i
	}
	return indexes
}

// dedupeAndSort removes duplicate positions and orders them
func dedupeAndSort(indexes []int) []int {
	if len(indexes) == 0 {
		return indexes
	}

	seen := make(map[int]bool)
	result := indexes[:0]
	for _, idx := range indexes {
		if !seen[idx] {
			seen[idx] = true
			result = append(result, idx)
		}
	}

	sort.Ints(result)
	return result
}
