package composer

// ambiguityTable lists small groups of kana that a romaji input method can
// produce for the same keystrokes: "zi"/"di" both plausibly transliterate to
// じ or ぢ, and so on. Each entry is a substitution tried independently at
// every position it occurs in the base reading.
var ambiguityTable = map[rune][]rune{
	'じ': {'ぢ'},
	'ず': {'づ'},
	'お': {'を'},
	'え': {'へ'},
	'わ': {'は'},
}

// RomanComposer expands a small set of known romaji-input ambiguities into
// alternate hiragana readings.
type RomanComposer struct {
	base  string
	table map[rune][]rune
}

// NewRomanComposer creates a RomanComposer over base using the default
// ambiguity table.
func NewRomanComposer(base string) *RomanComposer {
	return &RomanComposer{base: base, table: ambiguityTable}
}

// GetQueriesForPrediction implements Composer. Each ambiguous rune position
// yields one alternate reading with that single position substituted;
// ambiguities at different positions are not combined — one substitution
// at a time.
func (c *RomanComposer) GetQueriesForPrediction() (string, []string) {
	runes := []rune(c.base)
	var expanded []string
	for i, r := range runes {
		alts, ok := c.table[r]
		if !ok {
			continue
		}
		for _, alt := range alts {
			variant := append([]rune(nil), runes...)
			variant[i] = alt
			expanded = append(expanded, string(variant))
		}
	}
	return c.base, expanded
}
