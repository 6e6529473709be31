package predictor

import (
	"strings"

	"github.com/kanaseed/predictor/internal/utils"
	"github.com/kanaseed/predictor/pkg/dictionary"
	"github.com/kanaseed/predictor/pkg/lattice"
)

// findHistoryEntry looks up historyKey via LookupPrefix (which, walking
// every prefix length, includes the exact-length match) and scans for the
// entry matching historyValue verbatim.
func findHistoryEntry(dict dictionary.Dictionary, historyKey, historyValue string) (dictionary.Entry, bool) {
	for _, e := range dict.LookupPrefix(historyKey) {
		if e.Key == historyKey && e.Value == historyValue {
			return e, true
		}
	}
	return dictionary.Entry{}, false
}

func lastScriptType(s string) utils.ScriptType {
	runes := []rune(s)
	if len(runes) == 0 {
		return utils.ScriptUnknown
	}
	return utils.GetScriptType(string(runes[len(runes)-1]))
}

func findableInDictionary(dict dictionary.Dictionary, key, value string) bool {
	for _, e := range dict.LookupPredictive(key) {
		if e.Key == key && e.Value == value {
			return true
		}
	}
	return false
}

// bigramSurvives runs the four-step filter over a candidate entry already
// known to have Value starting with historyValue.
func bigramSurvives(dict dictionary.Dictionary, e, historyEntry dictionary.Entry, historyKey, historyValue string, zeroQuery bool) bool {
	strippedKey := strings.TrimPrefix(e.Key, historyKey)
	strippedValue := strings.TrimPrefix(e.Value, historyValue)
	if strippedKey == "" || strippedValue == "" {
		return false
	}
	if historyEntry.Cost > e.Cost {
		return false
	}

	ctype := utils.GetScriptType(strippedValue)
	if ctype == lastScriptType(historyValue) {
		if ctype == utils.ScriptHiragana {
			return false
		}
		if ctype == utils.ScriptKatakana && utils.CharsLen(e.Key) <= 5 {
			return false
		}
	}

	if ctype == utils.ScriptKanji && zeroQuery {
		return true
	}
	return findableInDictionary(dict, strippedKey, strippedValue)
}

// aggregateBigram requires the history (key, value) pair to exist
// verbatim in the dictionary, then does a predictive lookup of
// historyKey and keeps entries whose value continues historyValue and
// survive the four-step filter. Shares the unigram cutoff/overflow policy.
func aggregateBigram(dict dictionary.Dictionary, arena *lattice.Arena, req Request, historyKey, historyValue, key string, zeroQuery bool, results *[]lattice.Result) {
	historyEntry, ok := findHistoryEntry(dict, historyKey, historyValue)
	if !ok {
		return
	}

	cutoff := unigramCutoff(req.Config.MixedConversion, req.RequestType)
	arena.SetMaxNodesSize(cutoff)

	entries := lookupPredictive(dict, historyKey, key, req, cutoff)

	type pendingResult struct {
		id    lattice.ID
		entry dictionary.Entry
	}
	var pending []pendingResult
	for _, e := range entries {
		if !strings.HasPrefix(e.Value, historyValue) {
			continue
		}
		id := arena.New(entryToNode(e))
		pending = append(pending, pendingResult{id, e})
	}

	if arena.Saturated() {
		return
	}

	for _, p := range pending {
		if !bigramSurvives(dict, p.entry, historyEntry, historyKey, historyValue, zeroQuery) {
			continue
		}
		*results = append(*results, lattice.NewResult(p.id, lattice.Bigram))
	}
}
