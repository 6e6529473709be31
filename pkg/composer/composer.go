// Package composer adapts raw user input into the reading string(s) the
// predictor's aggregators look up in the dictionary.
package composer

// Composer converts composed user input into the base reading used for
// lookups, plus the alternative strings that may follow it when the input
// is itself ambiguous (kana that could stand for more than one intended
// syllable).
type Composer interface {
	// GetQueriesForPrediction returns the committed base reading and,
	// when ambiguous, zero or more expanded strings. The predictive-lookup
	// adapter looks up base and keeps only entries whose key continues
	// base with one of the expanded strings. The cost stage adds the
	// key-expansion penalty to a candidate whose key does not begin with
	// the typed conversion key.
	GetQueriesForPrediction() (base string, expanded []string)
}

// StaticComposer wraps an already-composed reading with no ambiguity: the
// common case when the caller has already normalized input to hiragana
// before handing it to the predictor.
type StaticComposer struct {
	base string
}

// NewStaticComposer creates a Composer that always returns base unchanged.
func NewStaticComposer(base string) *StaticComposer {
	return &StaticComposer{base: base}
}

// GetQueriesForPrediction implements Composer.
func (c *StaticComposer) GetQueriesForPrediction() (string, []string) {
	return c.base, nil
}
