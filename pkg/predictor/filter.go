package predictor

import (
	"github.com/kanaseed/predictor/internal/utils"
	"github.com/kanaseed/predictor/pkg/lattice"
)

// GetMissSpelledPosition converts value katakana to hiragana; if the
// result isn't pure hiragana there's nothing
// meaningful to compare position-wise, so the whole key length is
// returned. Otherwise it walks both strings rune by rune to the first
// mismatch and returns that index (or the shared length if one runs out
// first).
func GetMissSpelledPosition(key, value string) int {
	converted := utils.KatakanaToHiragana(value)
	if !utils.IsPureHiragana(converted) {
		return utils.CharsLen(key)
	}

	keyRunes := []rune(key)
	valRunes := []rune(converted)
	i := 0
	for i < len(keyRunes) && i < len(valRunes) {
		if keyRunes[i] != valRunes[i] {
			return i
		}
		i++
	}
	return i
}

// filterMisspellings (desktop cost model only) runs up to 5 passes
// eliminating spelling-corrected results shadowed by an uncorrected
// alternative sharing the same key or value.
func filterMisspellings(arena *lattice.Arena, results []lattice.Result, requestKeyLen int) {
	for pass := 0; pass < 5; pass++ {
		changed := false
		for i := range results {
			if results[i].Filtered {
				continue
			}
			node := arena.Get(results[i].Node)
			if node.Attributes&lattice.SpellingCorrection == 0 {
				continue
			}

			var sameKey, sameValue []int
			for j := range results {
				if j == i || results[j].Filtered {
					continue
				}
				other := arena.Get(results[j].Node)
				if other.Attributes&lattice.SpellingCorrection != 0 {
					continue
				}
				if other.Key == node.Key {
					sameKey = append(sameKey, j)
				}
				if other.Value == node.Value {
					sameValue = append(sameValue, j)
				}
			}

			switch {
			case len(sameKey) > 0 && len(sameValue) > 0:
				results[i].Filtered = true
				for _, j := range sameKey {
					results[j].Filtered = true
				}
				changed = true
			case len(sameValue) > 0:
				results[i].Filtered = true
				changed = true
			case len(sameKey) > 0:
				for _, j := range sameKey {
					results[j].Filtered = true
				}
				if requestKeyLen <= GetMissSpelledPosition(node.Key, node.Value) {
					results[i].Filtered = true
				}
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}
