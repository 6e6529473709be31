package predictor

import (
	"math"
	"strings"

	"github.com/kanaseed/predictor/internal/utils"
	"github.com/kanaseed/predictor/pkg/connector"
	"github.com/kanaseed/predictor/pkg/lattice"
	"github.com/kanaseed/predictor/pkg/segmenter"
	"github.com/kanaseed/predictor/pkg/segments"
)

// keyExpansionPenalty is +1151, approximating -500*log(10): the cost of a
// candidate whose key does not literally start with the typed conversion
// key (it was only found via key-expansion ambiguity).
const keyExpansionPenalty = 1151

// mixedUnigramExactBonus is +1956, approximating -500*log(50): penalises a
// mixed-mode unigram whose key is strictly longer than the input key.
const mixedUnigramExactBonus = 1956

// mixedBigramBaseCost is the generic noun-to-noun transition cost the
// connector doesn't model, used by the mixed-mode bigram cost addition.
const mixedBigramBaseCost = 1347

// defaultPrevCost is substituted for the history top-candidate's cost when
// there is no history candidate to read one from, or when that candidate's
// cost is 0.
const defaultPrevCost = 5000

// aggressiveSuggestionMinResults/MinKeyLen/MinLMCost gate the
// aggressive-suggestion filter (desktop cost only).
const (
	aggressiveSuggestionMinResults = 10
	aggressiveSuggestionMinKeyLen  = 8
	aggressiveSuggestionMinLMCost  = 5000
)

// costContext bundles everything the cost stage needs beyond a single
// Result: the collaborators, the request, and values read once per call.
type costContext struct {
	conn      connector.Connector
	seg       segmenter.Segmenter
	arena     *lattice.Arena
	req       Request
	segs      *segments.Segments
	rid       uint16 // from the last history candidate, else 0 (BOS)
	prevCost  int32  // history top-candidate's cost, or defaultPrevCost
	convKey   string
	histKey   string
	isSugg    bool
	totalRslt int
}

func newCostContext(conn connector.Connector, seg segmenter.Segmenter, arena *lattice.Arena, req Request, segs *segments.Segments, historyKey string, results []lattice.Result) costContext {
	c := costContext{
		conn: conn, seg: seg, arena: arena, req: req, segs: segs,
		prevCost: defaultPrevCost,
		convKey:  segs.ConversionSegment(0).Key(),
		histKey:  historyKey,
		isSugg:   req.RequestType == segments.Suggestion,
		totalRslt: len(results),
	}
	if segs.HistorySegmentsSize() > 0 {
		hist := segs.HistorySegment(segs.HistorySegmentsSize() - 1)
		if hist.CandidatesSize() > 0 {
			top := hist.Candidate(0)
			c.rid = top.Rid
			c.prevCost = top.Cost
			if c.prevCost == 0 {
				c.prevCost = defaultPrevCost
			}
		}
	}
	return c
}

// assignCost computes and stores r.Cost, setting r.Filtered when the
// result is excluded outright.
func (c costContext) assignCost(r *lattice.Result) {
	node := c.arena.Get(r.Node)

	lmCost := c.conn.GetTransitionCost(c.rid, node.Lid) + node.Wcost
	if !r.Types.Has(lattice.Realtime) {
		lmCost += c.seg.GetSuffixPenalty(node.Rid)
	}

	queryKey := c.convKey
	if r.Types.Has(lattice.Bigram) {
		queryKey = c.histKey + c.convKey
	}
	queryLen := utils.CharsLen(queryKey)
	keyLen := utils.CharsLen(node.Key)

	if c.req.Config.MixedConversion {
		if r.Types.Has(lattice.Unigram) && keyLen > utils.CharsLen(c.convKey) {
			lmCost += mixedUnigramExactBonus
		}
		if r.Types.Has(lattice.Bigram) {
			lmCost += mixedBigramBaseCost - c.prevCost
		}
	}

	if !c.req.Config.MixedConversion &&
		c.isSugg &&
		c.totalRslt >= aggressiveSuggestionMinResults &&
		keyLen >= aggressiveSuggestionMinKeyLen &&
		lmCost >= aggressiveSuggestionMinLMCost &&
		queryLen*5 <= keyLen*2 { // query_len <= floor(0.4*key_len), inclusive at the boundary
		r.Filtered = true
		return
	}

	if c.req.Config.MixedConversion {
		r.Cost = lmCost
	} else {
		saved := math.Max(0, float64(keyLen-queryLen))
		r.Cost = lmCost - int32(500*math.Log(1+saved))
	}

	if !strings.HasPrefix(node.Key, c.convKey) {
		r.Cost += keyExpansionPenalty
	}
}

// assignCosts applies assignCost to every result in place.
func assignCosts(conn connector.Connector, seg segmenter.Segmenter, arena *lattice.Arena, req Request, segs *segments.Segments, historyKey string, results []lattice.Result) {
	ctx := newCostContext(conn, seg, arena, req, segs, historyKey, results)
	for i := range results {
		ctx.assignCost(&results[i])
	}
}
