package predictor

import (
	"github.com/charmbracelet/log"

	"github.com/kanaseed/predictor/internal/utils"
	"github.com/kanaseed/predictor/pkg/lattice"
	"github.com/kanaseed/predictor/pkg/realtime"
	"github.com/kanaseed/predictor/pkg/segments"
)

// getRealtimeMax sizes how many realtime candidates to request from the
// immutable converter.
func getRealtimeMax(segs *segments.Segments, mixed bool, reqType segments.RequestType, budget int) int {
	defaultSize := 6
	maxSize := budget

	if segs.ConversionSegmentsSize() > 0 && utils.CharsLen(segs.ConversionSegment(0).Key()) >= 8 {
		if maxSize > 8 {
			maxSize = 8
		}
		defaultSize = 3
	}

	var size int
	switch reqType {
	case segments.Prediction:
		if mixed {
			size = maxSize - defaultSize
		} else {
			size = defaultSize
		}
	case segments.Suggestion:
		if mixed {
			size = defaultSize
		} else {
			size = 1
		}
	case segments.PartialPrediction:
		size = maxSize
	case segments.PartialSuggestion:
		size = defaultSize
	default:
		size = defaultSize
	}

	if size > maxSize {
		return maxSize
	}
	return size
}

// aggregateRealtime invokes the immutable converter, lifts whatever
// candidates it appended into arena Nodes tagged Realtime, then erases
// them back out of the segment (they live on only as Results from here).
func aggregateRealtime(conv realtime.ImmutableConverter, arena *lattice.Arena, req Request, segs *segments.Segments, results *[]lattice.Result) {
	if conv == nil {
		return
	}
	seg := segs.MutableConversionSegment(0)
	prevSize := seg.CandidatesSize()
	realtimeSize := getRealtimeMax(segs, req.Config.MixedConversion, req.RequestType, req.Config.MaxPredictionCandidates)

	savedMax := segs.MaxPredictionCandidatesSize
	segs.MaxPredictionCandidatesSize = prevSize + realtimeSize
	defer func() { segs.MaxPredictionCandidatesSize = savedMax }()

	if !conv.Convert(segs) {
		log.Warn("realtime conversion failed", "key", seg.Key())
		return
	}

	n := seg.CandidatesSize() - prevSize
	if n <= 0 {
		return
	}
	for i := prevSize; i < seg.CandidatesSize(); i++ {
		c := seg.Candidate(i)
		var attrs lattice.NodeAttribute
		if c.Attributes&segments.SpellingCorrection != 0 {
			attrs = lattice.SpellingCorrection
		}
		id := arena.New(lattice.Node{
			Key:        c.Key,
			Value:      c.Value,
			Lid:        c.Lid,
			Rid:        c.Rid,
			Wcost:      c.Wcost,
			Attributes: attrs,
		})
		*results = append(*results, lattice.NewResult(id, lattice.Realtime))
	}
	seg.EraseCandidates(prevSize, n)
}
