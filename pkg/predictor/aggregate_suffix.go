package predictor

import (
	"github.com/kanaseed/predictor/internal/utils"
	"github.com/kanaseed/predictor/pkg/dictionary"
	"github.com/kanaseed/predictor/pkg/lattice"
	"github.com/kanaseed/predictor/pkg/posmatcher"
	"github.com/kanaseed/predictor/pkg/zeroquery"
)

// aggregateSuffix handles the suffix strategy. When the history is a bare
// number and the current key is empty, it emits the zero-query counter-suffix table
// as fabricated nodes with strictly ascending wcost; otherwise it does a
// predictive lookup of the suffix dictionary with the empty key.
func aggregateSuffix(
	suffixDict dictionary.Dictionary,
	numberTable *zeroquery.Table,
	pos posmatcher.POSMatcher,
	arena *lattice.Arena,
	historyKey, key string,
	results *[]lattice.Result,
) {
	if historyKey != "" && utils.IsOnlyASCIIDigits(historyKey) && key == "" && numberTable != nil {
		counterID := pos.GetCounterSuffixWordID()
		for i, s := range numberTable.Suffixes(historyKey) {
			id := arena.New(lattice.Node{
				Key:   s,
				Value: s,
				Lid:   counterID,
				Rid:   counterID,
				Wcost: int32(i * 10),
			})
			*results = append(*results, lattice.NewResult(id, lattice.Suffix))
		}
		return
	}

	if suffixDict == nil {
		return
	}
	for _, e := range suffixDict.LookupPredictive("") {
		id := arena.New(entryToNode(e))
		*results = append(*results, lattice.NewResult(id, lattice.Suffix))
	}
}
