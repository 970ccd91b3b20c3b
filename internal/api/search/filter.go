package search

import (
	"strings"

	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

// Tokenize lowercases the query and splits it on whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Matches reports whether any token appears in the result's text (name,
// description, features) or in its category tag. A tag's underscore counts
// as a space, so "green" matches green_space.
func Matches(r types.SearchResult, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	text := strings.ToLower(r.Name + " " + r.Description + " " + strings.Join(r.Features, " "))
	tag := strings.ToLower(string(r.Type))
	label := types.Category(tag).Label()
	for _, tok := range tokens {
		if strings.Contains(text, tok) || strings.Contains(label, tok) || strings.Contains(tag, tok) {
			return true
		}
	}
	return false
}

// Filter keeps the results matching at least one query token, in input order.
// When nothing matches it returns every result instead, and fallback is true.
// The returned slice never aliases results.
func Filter(query string, results []types.SearchResult) (out []types.SearchResult, fallback bool) {
	tokens := Tokenize(query)
	out = make([]types.SearchResult, 0, len(results))
	for _, r := range results {
		if Matches(r, tokens) {
			out = append(out, r)
		}
	}
	if len(out) > 0 {
		return out, false
	}
	return append(out, results...), true
}
