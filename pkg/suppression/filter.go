// Package suppression implements the suggestion blacklist consulted before
// a candidate is ever emitted.
package suppression

import "strings"

// SuggestionFilter reports whether a candidate value should never be
// offered, regardless of cost.
type SuggestionFilter interface {
	IsBadSuggestion(value string) bool
}

// ListFilter rejects values present in an exact-match blacklist or that
// start with any of a set of blocked prefixes.
type ListFilter struct {
	blocked      map[string]struct{}
	prefixBlocks []string
}

// NewListFilter creates a ListFilter over the given exact-match blacklist
// and blocked-prefix list.
func NewListFilter(blocked []string, prefixBlocks []string) *ListFilter {
	f := &ListFilter{
		blocked:      make(map[string]struct{}, len(blocked)),
		prefixBlocks: prefixBlocks,
	}
	for _, v := range blocked {
		f.blocked[v] = struct{}{}
	}
	return f
}

// IsBadSuggestion implements SuggestionFilter.
func (f *ListFilter) IsBadSuggestion(value string) bool {
	if _, ok := f.blocked[value]; ok {
		return true
	}
	for _, p := range f.prefixBlocks {
		if strings.HasPrefix(value, p) {
			return true
		}
	}
	return false
}
