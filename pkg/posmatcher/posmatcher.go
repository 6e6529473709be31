// Package posmatcher exposes the small set of well-known part-of-speech
// IDs the predictor's aggregators need to recognize by name (counter
// suffixes, etc).
package posmatcher

// POSMatcher answers whether a connection ID belongs to a well-known
// grammatical class the predictor treats specially.
type POSMatcher interface {
	// GetCounterSuffixWordID returns the lid used by counter-suffix
	// entries ("個", "本", "枚", ...). The suffix aggregator stamps it as
	// the lid/rid of the number-counter nodes it builds after a numeric
	// history segment.
	GetCounterSuffixWordID() uint16
	// IsSuffixWordID reports whether lid marks a general suffix entry.
	IsSuffixWordID(lid uint16) bool
}

// StaticPOSMatcher is a POSMatcher over a fixed ID table, loaded once at
// startup from the same POS ID space the dictionary's Lid/Rid values live
// in.
type StaticPOSMatcher struct {
	counterSuffixID uint16
	suffixIDs       map[uint16]struct{}
}

// NewStaticPOSMatcher creates a StaticPOSMatcher. suffixIDs need not
// include counterSuffixID; IsSuffixWordID treats it as a suffix regardless.
func NewStaticPOSMatcher(counterSuffixID uint16, suffixIDs []uint16) *StaticPOSMatcher {
	m := &StaticPOSMatcher{
		counterSuffixID: counterSuffixID,
		suffixIDs:       make(map[uint16]struct{}, len(suffixIDs)),
	}
	for _, id := range suffixIDs {
		m.suffixIDs[id] = struct{}{}
	}
	return m
}

// GetCounterSuffixWordID implements POSMatcher.
func (m *StaticPOSMatcher) GetCounterSuffixWordID() uint16 { return m.counterSuffixID }

// IsSuffixWordID implements POSMatcher.
func (m *StaticPOSMatcher) IsSuffixWordID(lid uint16) bool {
	if lid == m.counterSuffixID {
		return true
	}
	_, ok := m.suffixIDs[lid]
	return ok
}
