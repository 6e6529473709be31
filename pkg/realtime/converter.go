// Package realtime performs an on-the-fly conversion of the full typed key
// into a single candidate, feeding the predictor's realtime aggregator.
package realtime

import (
	"strings"

	"github.com/kanaseed/predictor/pkg/dictionary"
	"github.com/kanaseed/predictor/pkg/segmenter"
	"github.com/kanaseed/predictor/pkg/segments"
)

// ImmutableConverter performs a full conversion of a segment's key into a
// candidate attached to that same segment. "Immutable" means it never
// reuses segment boundaries chosen by an earlier call: every invocation
// searches the key fresh.
type ImmutableConverter interface {
	Convert(seg *segments.Segments) bool
}

// GreedyConverter is a longest-match reference ImmutableConverter: at each
// position it walks to the dictionary entry covering the longest matching
// prefix, breaking ties on the lowest word cost. This is a greedy special
// case of a full lattice search: one representative candidate per call,
// not an optimal segmentation.
type GreedyConverter struct {
	dict dictionary.Dictionary
	segm segmenter.Segmenter
}

// NewGreedyConverter creates a GreedyConverter over dict, applying segm's
// suffix penalty to the trailing word of each conversion.
func NewGreedyConverter(dict dictionary.Dictionary, segm segmenter.Segmenter) *GreedyConverter {
	return &GreedyConverter{dict: dict, segm: segm}
}

// Convert implements ImmutableConverter. It reads the key from the first
// conversion segment and, on success, pushes exactly one candidate onto it.
func (c *GreedyConverter) Convert(seg *segments.Segments) bool {
	if seg.ConversionSegmentsSize() == 0 {
		return false
	}
	key := seg.ConversionSegment(0).Key()
	if key == "" {
		return false
	}

	remaining := []rune(key)
	var value, contentValue strings.Builder
	var totalCost int32
	var lastRid uint16

	for len(remaining) > 0 {
		entries := c.dict.LookupPrefix(string(remaining))
		best, ok := longestPrefixEntry(entries, len(remaining))
		if !ok {
			return false
		}
		value.WriteString(best.Value)
		contentValue.WriteString(best.Value)
		totalCost += best.Cost
		lastRid = best.Rid
		remaining = remaining[len([]rune(best.Key)):]
	}
	totalCost += c.segm.GetSuffixPenalty(lastRid)

	seg.MutableConversionSegment(0).PushCandidate(segments.Candidate{
		Key:          key,
		Value:        value.String(),
		ContentKey:   key,
		ContentValue: contentValue.String(),
		Wcost:        totalCost,
		Cost:         totalCost,
	})
	return true
}

// longestPrefixEntry picks, among entries whose Key length is at most
// remainingLen runes, the one with the longest Key, breaking ties on the
// lowest Cost.
func longestPrefixEntry(entries []dictionary.Entry, remainingLen int) (dictionary.Entry, bool) {
	var best dictionary.Entry
	bestLen := -1
	found := false
	for _, e := range entries {
		l := len([]rune(e.Key))
		if l == 0 || l > remainingLen {
			continue
		}
		if l > bestLen || (l == bestLen && e.Cost < best.Cost) {
			best, bestLen, found = e, l, true
		}
	}
	return best, found
}
