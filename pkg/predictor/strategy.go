package predictor

import (
	"github.com/kanaseed/predictor/internal/utils"
	"github.com/kanaseed/predictor/pkg/lattice"
	"github.com/kanaseed/predictor/pkg/segments"
)

// selectStrategies maps (request type, key, history, flags) to a bitset
// of strategies. Returns lattice.NoPrediction when no strategy applies
// at all.
func selectStrategies(req Request, segs *segments.Segments) lattice.PredictionType {
	if req.RequestType == segments.Conversion {
		return lattice.NoPrediction
	}
	if segs.ConversionSegmentsSize() == 0 {
		return lattice.NoPrediction
	}

	cfg := req.Config
	key := segs.ConversionSegment(0).Key()
	keyLen := utils.CharsLen(key)

	var t lattice.PredictionType

	if req.RequestType == segments.PartialSuggestion ||
		((cfg.UseRealtimeConversion || cfg.MixedConversion) && len(key) > 0 && len(key) < 300) {
		t |= lattice.Realtime
	}

	if !cfg.UseDictionarySuggest && req.RequestType == segments.Suggestion {
		return t
	}
	if keyLen == 0 && !cfg.ZeroQuerySuggestion {
		return t
	}
	if req.RequestType == segments.Suggestion && utils.IsZipCodeLike(key) && keyLen < 6 {
		return t
	}

	unigramMin := 3
	if cfg.ZeroQuerySuggestion {
		unigramMin = 1
	}
	if (req.RequestType == segments.Prediction && keyLen >= 1) || keyLen >= unigramMin {
		t |= lattice.Unigram
	}

	bigramMin := 3
	if cfg.ZeroQuerySuggestion {
		bigramMin = 2
	}
	if historyTopCandidateKeyLen(segs) >= bigramMin {
		t |= lattice.Bigram
	}

	if segs.HistorySegmentsSize() > 0 && cfg.ZeroQuerySuggestion {
		t |= lattice.Suffix
	}

	return t
}

// historyTopCandidateKeyLen returns the character length of the last
// history segment's top candidate key, or 0 if there is no history segment
// or it has no candidates.
func historyTopCandidateKeyLen(segs *segments.Segments) int {
	if segs.HistorySegmentsSize() == 0 {
		return 0
	}
	hist := segs.HistorySegment(segs.HistorySegmentsSize() - 1)
	if hist.CandidatesSize() == 0 {
		return 0
	}
	return utils.CharsLen(hist.Candidate(0).Key)
}
