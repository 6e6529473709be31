package predictor

import (
	"sort"
	"strings"

	"github.com/kanaseed/predictor/internal/utils"
	"github.com/kanaseed/predictor/pkg/lattice"
	"github.com/kanaseed/predictor/pkg/segments"
	"github.com/kanaseed/predictor/pkg/suppression"
)

// emit picks a bounded top-K by cost (a sort rather than a heapify in
// place, decoupling the cost model from the emitter), then walks the
// sorted list applying the blacklist,
// exact-duplicate, history-stripping, de-duplication, and
// mis-spelled-partial-typing rules, pushing survivors onto the segment.
// Returns true iff at least one candidate was appended.
func emit(
	filter suppression.SuggestionFilter,
	arena *lattice.Arena,
	req Request,
	segs *segments.Segments,
	historyKey, historyValue string,
	results []lattice.Result,
) bool {
	mixed := req.Config.MixedConversion
	inputKey := segs.ConversionSegment(0).Key()
	inputKeyLen := utils.CharsLen(inputKey)

	live := make([]lattice.Result, 0, len(results))
	for _, r := range results {
		if r.Filtered || r.Types == lattice.NoPrediction {
			continue
		}
		live = append(live, r)
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].Cost < live[j].Cost })

	size := segs.MaxPredictionCandidatesSize
	if size > len(live) {
		size = len(live)
	}

	seg := segs.MutableConversionSegment(0)
	seen := utils.NewSeenSet()
	emitted := 0

	for _, r := range live {
		if emitted >= size {
			break
		}

		node := arena.Get(r.Node)
		isRealtime := r.Types.Has(lattice.Realtime)
		isBigram := r.Types.Has(lattice.Bigram)

		if filter != nil && filter.IsBadSuggestion(node.Value) && !(mixed && isRealtime) {
			continue
		}

		if !mixed && !isRealtime {
			if isBigram {
				if historyKey+inputKey == node.Value {
					continue
				}
			} else if inputKey == node.Value {
				continue
			}
		}

		key, value := node.Key, node.Value
		if isBigram {
			key = strings.TrimPrefix(key, historyKey)
			value = strings.TrimPrefix(value, historyValue)
		}

		if !seen.Insert(value) {
			continue
		}

		var attrs segments.CandidateAttribute
		if node.Attributes&lattice.SpellingCorrection != 0 {
			if GetMissSpelledPosition(node.Key, node.Value) >= inputKeyLen-1 {
				continue
			}
			attrs = segments.SpellingCorrection
		}

		seg.PushCandidate(segments.Candidate{
			Key:          key,
			Value:        value,
			ContentKey:   key,
			ContentValue: value,
			Lid:          node.Lid,
			Rid:          node.Rid,
			Wcost:        node.Wcost,
			Cost:         r.Cost,
			Attributes:   attrs,
		})
		emitted++
	}

	return emitted > 0
}
