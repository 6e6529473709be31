package predictor

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/kanaseed/predictor/pkg/dictionary"
)

// lookupPredictive is the predictive-lookup adapter: the plain path
// issues a direct predictive lookup of historyKey+key; the
// expansion path (composer present, expansion enabled, and the composer
// actually reports ambiguity) instead looks up historyKey+base and
// restricts results to those whose continuation begins with one of the
// composer's expanded alternatives.
func lookupPredictive(dict dictionary.Dictionary, historyKey, key string, req Request, limit int) []dictionary.Entry {
	if req.Config.EnableExpansion && req.Composer != nil {
		base, expanded := req.Composer.GetQueriesForPrediction()
		if len(expanded) > 0 {
			prefix := historyKey + base
			entries := dict.LookupPredictiveWithLimit(prefix, limit)
			return restrictByExpansion(entries, prefix, buildExpansionTrie(expanded))
		}
	}
	return dict.LookupPredictiveWithLimit(historyKey+key, limit)
}

// buildExpansionTrie indexes the composer's alternate next-morae strings so
// restrictByExpansion can test "does this candidate's continuation begin
// with trie" without a linear scan per candidate.
func buildExpansionTrie(expanded []string) *patricia.Trie {
	trie := patricia.NewTrie()
	for _, alt := range expanded {
		if alt != "" {
			trie.Insert(patricia.Prefix(alt), true)
		}
	}
	return trie
}

// restrictByExpansion keeps only entries whose Key, with prefix stripped,
// begins with one of the trie's alternatives.
func restrictByExpansion(entries []dictionary.Entry, prefix string, trie *patricia.Trie) []dictionary.Entry {
	var out []dictionary.Entry
	for _, e := range entries {
		rest := strings.TrimPrefix(e.Key, prefix)
		if rest == "" {
			continue
		}
		if continuationInTrie(trie, rest) {
			out = append(out, e)
		}
	}
	return out
}

func continuationInTrie(trie *patricia.Trie, rest string) bool {
	runes := []rune(rest)
	for i := 1; i <= len(runes); i++ {
		if trie.Get(patricia.Prefix(string(runes[:i]))) != nil {
			return true
		}
	}
	return false
}
