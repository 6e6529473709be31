package predictor

import (
	"github.com/kanaseed/predictor/internal/utils"
	"github.com/kanaseed/predictor/pkg/connector"
	"github.com/kanaseed/predictor/pkg/dictionary"
	"github.com/kanaseed/predictor/pkg/lattice"
	"github.com/kanaseed/predictor/pkg/posmatcher"
	"github.com/kanaseed/predictor/pkg/realtime"
	"github.com/kanaseed/predictor/pkg/segmenter"
	"github.com/kanaseed/predictor/pkg/segments"
	"github.com/kanaseed/predictor/pkg/suppression"
	"github.com/kanaseed/predictor/pkg/zeroquery"
)

// DictionaryPredictor is the ranking core: given a request and a segments
// container, it selects strategies, aggregates candidates from its
// injected collaborators, scores and filters them, and emits a capped,
// de-duplicated, ordered result list into the caller's segment.
//
// The only state a DictionaryPredictor carries is the set of collaborator
// handles injected at construction; each Predict call is otherwise a pure
// function of its arguments and those collaborators.
type DictionaryPredictor struct {
	dict        dictionary.Dictionary
	suffixDict  dictionary.Dictionary
	numberTable *zeroquery.Table
	conn        connector.Connector
	seg         segmenter.Segmenter
	pos         posmatcher.POSMatcher
	filter      suppression.SuggestionFilter
	converter   realtime.ImmutableConverter
}

// New creates a DictionaryPredictor over the given collaborators.
// suffixDict, numberTable, filter, and converter may be nil; a nil
// collaborator simply means the strategy or branch that would use it
// contributes nothing.
func New(
	dict dictionary.Dictionary,
	suffixDict dictionary.Dictionary,
	numberTable *zeroquery.Table,
	conn connector.Connector,
	seg segmenter.Segmenter,
	pos posmatcher.POSMatcher,
	filter suppression.SuggestionFilter,
	converter realtime.ImmutableConverter,
) *DictionaryPredictor {
	return &DictionaryPredictor{
		dict:        dict,
		suffixDict:  suffixDict,
		numberTable: numberTable,
		conn:        conn,
		seg:         seg,
		pos:         pos,
		filter:      filter,
		converter:   converter,
	}
}

// Predict selects strategies, aggregates, assigns costs, filters, and
// emits. Returns false for NO_PREDICTION, empty
// aggregation, or missing preconditions (nil segments, no conversion
// segment).
func (p *DictionaryPredictor) Predict(req Request, segs *segments.Segments) bool {
	if segs == nil || segs.ConversionSegmentsSize() == 0 {
		return false
	}

	types := selectStrategies(req, segs)
	if types == lattice.NoPrediction {
		return false
	}

	arena := lattice.NewArena()
	var results []lattice.Result

	historyKey, historyValue := historyKeyValue(segs)
	key := segs.ConversionSegment(0).Key()

	partial := req.RequestType == segments.PartialSuggestion || req.RequestType == segments.PartialPrediction

	if types.Has(lattice.Realtime) {
		aggregateRealtime(p.converter, arena, req, segs, &results)
	}

	// Partial prediction/suggestion modes route through realtime only,
	// rather than also running unigram/bigram/suffix.
	if !partial {
		if types.Has(lattice.Unigram) && p.dict != nil {
			aggregateUnigram(p.dict, arena, req, historyKey, key, &results)
		}
		if types.Has(lattice.Bigram) && historyKey != "" && p.dict != nil {
			aggregateBigram(p.dict, arena, req, historyKey, historyValue, key, req.Config.ZeroQuerySuggestion, &results)
		}
		if types.Has(lattice.Suffix) {
			aggregateSuffix(p.suffixDict, p.numberTable, p.pos, arena, historyKey, key, &results)
		}
	}

	if len(results) == 0 {
		return false
	}

	assignCosts(p.conn, p.seg, arena, req, segs, historyKey, results)

	if !req.Config.MixedConversion {
		filterMisspellings(arena, results, utils.CharsLen(key))
	}

	return emit(p.filter, arena, req, segs, historyKey, historyValue, results)
}

func historyKeyValue(segs *segments.Segments) (key, value string) {
	if segs.HistorySegmentsSize() == 0 {
		return "", ""
	}
	hist := segs.HistorySegment(segs.HistorySegmentsSize() - 1)
	key = hist.Key()
	if hist.CandidatesSize() > 0 {
		value = hist.Candidate(0).Value
	}
	return key, value
}
