package predictor

import (
	"github.com/kanaseed/predictor/pkg/dictionary"
	"github.com/kanaseed/predictor/pkg/lattice"
	"github.com/kanaseed/predictor/pkg/segments"
)

// unigramCutoff computes the arena node-count cutoff, also reused by the
// bigram aggregator, which shares the same overflow policy as unigram.
func unigramCutoff(mixed bool, reqType segments.RequestType) int {
	if mixed {
		return 256
	}
	if reqType == segments.Prediction {
		return 100000
	}
	return 256
}

func entryToNode(e dictionary.Entry) lattice.Node {
	return lattice.Node{Key: e.Key, Value: e.Value, Lid: e.Lid, Rid: e.Rid, Wcost: e.Cost}
}

// aggregateUnigram does a predictive lookup of the typed key (through the
// expansion adapter), appending every returned entry as a Unigram result,
// and discards the whole block if the arena reports saturation against
// the cutoff.
func aggregateUnigram(dict dictionary.Dictionary, arena *lattice.Arena, req Request, historyKey, key string, results *[]lattice.Result) {
	cutoff := unigramCutoff(req.Config.MixedConversion, req.RequestType)
	arena.SetMaxNodesSize(cutoff)

	entries := lookupPredictive(dict, historyKey, key, req, cutoff)

	prevLen := len(*results)
	for _, e := range entries {
		id := arena.New(entryToNode(e))
		*results = append(*results, lattice.NewResult(id, lattice.Unigram))
	}

	if arena.Saturated() {
		*results = (*results)[:prevLen]
	}
}
