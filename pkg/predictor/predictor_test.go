package predictor

import (
	"testing"

	"github.com/kanaseed/predictor/pkg/connector"
	"github.com/kanaseed/predictor/pkg/dictionary"
	"github.com/kanaseed/predictor/pkg/posmatcher"
	"github.com/kanaseed/predictor/pkg/segmenter"
	"github.com/kanaseed/predictor/pkg/segments"
	"github.com/kanaseed/predictor/pkg/suppression"
	"github.com/kanaseed/predictor/pkg/zeroquery"
)

func newTestPredictorDict() *dictionary.TrieDictionary {
	d := dictionary.NewTrieDictionary()
	d.Insert(dictionary.Entry{Key: "ねこ", Value: "猫", Lid: 1, Rid: 1, Cost: 500})
	d.Insert(dictionary.Entry{Key: "ねこぜ", Value: "猫背", Lid: 1, Rid: 1, Cost: 900})
	d.Insert(dictionary.Entry{Key: "ねこじた", Value: "猫舌", Lid: 1, Rid: 1, Cost: 1200})
	return d
}

func newBasicPredictor(dict dictionary.Dictionary) *DictionaryPredictor {
	conn := connector.NewMatrixConnector(nil, 0, 0)
	seg := segmenter.NewTableSegmenter(nil, 0)
	pos := posmatcher.NewStaticPOSMatcher(1, nil)
	filter := suppression.NewListFilter(nil, nil)
	return New(dict, nil, nil, conn, seg, pos, filter, nil)
}

func defaultCfg() Config {
	return Config{
		UseRealtimeConversion:   false,
		UseDictionarySuggest:    true,
		ZeroQuerySuggestion:     true,
		EnableExpansion:         true,
		MaxPredictionCandidates: 10,
	}
}

func newPredictSegs(reqType segments.RequestType, key string, maxSize int) *segments.Segments {
	segs := segments.NewSegments(reqType)
	segs.AddConversionSegment(segments.NewSegment(key))
	segs.MaxPredictionCandidatesSize = maxSize
	return segs
}

func TestPredictEarlyOutOnConversionRequest(t *testing.T) {
	p := newBasicPredictor(newTestPredictorDict())
	segs := newPredictSegs(segments.Conversion, "ねこ", 10)
	req := Request{RequestType: segments.Conversion, Config: defaultCfg()}

	if p.Predict(req, segs) {
		t.Fatalf("expected Predict to return false for a Conversion request")
	}
	if segs.ConversionSegment(0).CandidatesSize() != 0 {
		t.Fatalf("expected no candidates written for a Conversion request")
	}
}

func TestPredictNoConversionSegmentReturnsFalse(t *testing.T) {
	p := newBasicPredictor(newTestPredictorDict())
	segs := segments.NewSegments(segments.Suggestion)
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}

	if p.Predict(req, segs) {
		t.Fatalf("expected Predict to return false with no conversion segment")
	}
}

func TestPredictNilSegmentsReturnsFalse(t *testing.T) {
	p := newBasicPredictor(newTestPredictorDict())
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}
	if p.Predict(req, nil) {
		t.Fatalf("expected Predict to return false for nil segments")
	}
}

func TestPredictZipCodeLikeKeyRejectsDictionaryStrategies(t *testing.T) {
	dict := dictionary.NewTrieDictionary()
	dict.Insert(dictionary.Entry{Key: "1234", Value: "1234", Lid: 1, Rid: 1, Cost: 500})
	p := newBasicPredictor(dict)
	segs := newPredictSegs(segments.Suggestion, "1234", 10)
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}

	if p.Predict(req, segs) {
		t.Fatalf("expected a zip-code-like key to produce no dictionary-sourced predictions")
	}
}

func TestPredictBasicUnigramSuggestion(t *testing.T) {
	p := newBasicPredictor(newTestPredictorDict())
	segs := newPredictSegs(segments.Suggestion, "ねこ", 10)
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}

	if ok := p.Predict(req, segs); !ok {
		t.Fatalf("expected Predict to succeed for a plain unigram suggestion")
	}
	seg := segs.ConversionSegment(0)
	if seg.CandidatesSize() == 0 {
		t.Fatalf("expected at least one candidate")
	}
	for i := 1; i < seg.CandidatesSize(); i++ {
		if seg.Candidate(i).Cost < seg.Candidate(i-1).Cost {
			t.Fatalf("expected candidates in ascending cost order, got %d before %d",
				seg.Candidate(i-1).Cost, seg.Candidate(i).Cost)
		}
	}
}

func TestPredictAggressiveSuggestionFilterDropsLongLowRelevanceCandidate(t *testing.T) {
	dict := dictionary.NewTrieDictionary()
	// One expensive, barely-related long candidate plus enough short ones
	// to push the result count across the aggressive-suggestion gate.
	dict.Insert(dictionary.Entry{Key: "あいうえおかきくけ", Value: "long", Lid: 1, Rid: 1, Cost: 20000})
	for i := 0; i < aggressiveSuggestionMinResults; i++ {
		dict.Insert(dictionary.Entry{Key: "あ" + string(rune('a'+i)), Value: string(rune('a' + i)), Lid: 1, Rid: 1, Cost: 500})
	}
	p := newBasicPredictor(dict)
	segs := newPredictSegs(segments.Suggestion, "あ", 20)
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}

	p.Predict(req, segs)
	seg := segs.ConversionSegment(0)
	for i := 0; i < seg.CandidatesSize(); i++ {
		if seg.Candidate(i).Value == "long" {
			t.Fatalf("expected the aggressive-suggestion filter to drop the long low-relevance candidate")
		}
	}
}

func TestPredictKeyExpansionPenaltyOrdersMatchingKeyFirst(t *testing.T) {
	dict := dictionary.NewTrieDictionary()
	dict.Insert(dictionary.Entry{Key: "ねこ", Value: "猫", Lid: 1, Rid: 1, Cost: 1000})
	dict.Insert(dictionary.Entry{Key: "ねご", Value: "寝言", Lid: 1, Rid: 1, Cost: 1000})
	p := newBasicPredictor(dict)

	// Typed reading is "ねこ", but the composer reports "ね" as ambiguous
	// between "こ" and "ご" (e.g. dakuten uncertainty), so the lookup also
	// surfaces ねご; only ねこ literally starts with the typed key.
	comp := stubComposer{base: "ね", expanded: []string{"こ", "ご"}}
	segs := newPredictSegs(segments.Suggestion, "ねこ", 10)
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg(), Composer: comp}

	if ok := p.Predict(req, segs); !ok {
		t.Fatalf("expected Predict to succeed")
	}
	seg := segs.ConversionSegment(0)
	if seg.CandidatesSize() < 2 {
		t.Fatalf("expected both expanded candidates to surface, got %d", seg.CandidatesSize())
	}
	if seg.Candidate(0).Value != "猫" {
		t.Fatalf("expected the prefix-matching key (猫) to rank ahead of the expansion-only key, got %s first", seg.Candidate(0).Value)
	}
}

func TestPredictMixedModeExactMatchBonusOrdersShorterKeyFirst(t *testing.T) {
	dict := dictionary.NewTrieDictionary()
	dict.Insert(dictionary.Entry{Key: "ねこ", Value: "猫", Lid: 1, Rid: 1, Cost: 1000})
	dict.Insert(dictionary.Entry{Key: "ねこぜ", Value: "猫背", Lid: 1, Rid: 1, Cost: 1000})
	p := newBasicPredictor(dict)

	cfg := defaultCfg()
	cfg.MixedConversion = true
	segs := newPredictSegs(segments.Suggestion, "ねこ", 10)
	req := Request{RequestType: segments.Suggestion, Config: cfg}

	if ok := p.Predict(req, segs); !ok {
		t.Fatalf("expected Predict to succeed under mixed conversion")
	}
	seg := segs.ConversionSegment(0)
	if seg.Candidate(0).Value != "猫" {
		t.Fatalf("expected the exact-length key to rank ahead of the longer mixed-mode unigram, got %s first", seg.Candidate(0).Value)
	}
}

func TestPredictZeroQueryNumberSuffix(t *testing.T) {
	p := newBasicPredictor(dictionary.NewTrieDictionary())
	p.numberTable = zeroquery.NewTable(map[string][]string{"default": {"円", "個"}})

	segs := newPredictSegs(segments.Suggestion, "", 10)
	hist := segments.NewSegment("123")
	hist.PushCandidate(segments.Candidate{Key: "123", Value: "123"})
	segs.AddHistorySegment(hist)

	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}
	if ok := p.Predict(req, segs); !ok {
		t.Fatalf("expected Predict to succeed with a numeric history and zero-query suggestion enabled")
	}
	seg := segs.ConversionSegment(0)
	values := make([]string, seg.CandidatesSize())
	for i := range values {
		values[i] = seg.Candidate(i).Value
	}
	found := false
	for _, v := range values {
		if v == "円" || v == "個" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a counter-suffix candidate among %v", values)
	}
}

func TestPredictRestoresMaxPredictionCandidatesSize(t *testing.T) {
	p := newBasicPredictor(newTestPredictorDict())
	segs := newPredictSegs(segments.Suggestion, "ねこ", 10)
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}

	p.Predict(req, segs)
	if segs.MaxPredictionCandidatesSize != 10 {
		t.Fatalf("expected MaxPredictionCandidatesSize to be restored to 10, got %d", segs.MaxPredictionCandidatesSize)
	}
}

func TestPredictIsIdempotentOnRepeatedCalls(t *testing.T) {
	dict := newTestPredictorDict()
	p1 := newBasicPredictor(dict)
	p2 := newBasicPredictor(dict)
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}

	segsA := newPredictSegs(segments.Suggestion, "ねこ", 10)
	segsB := newPredictSegs(segments.Suggestion, "ねこ", 10)
	p1.Predict(req, segsA)
	p2.Predict(req, segsB)

	segA, segB := segsA.ConversionSegment(0), segsB.ConversionSegment(0)
	if segA.CandidatesSize() != segB.CandidatesSize() {
		t.Fatalf("expected identical candidate counts, got %d and %d", segA.CandidatesSize(), segB.CandidatesSize())
	}
	for i := 0; i < segA.CandidatesSize(); i++ {
		if segA.Candidate(i).Value != segB.Candidate(i).Value {
			t.Fatalf("expected identical candidate ordering at index %d, got %s and %s", i, segA.Candidate(i).Value, segB.Candidate(i).Value)
		}
	}
}

func TestPredictCandidatesAreUnique(t *testing.T) {
	p := newBasicPredictor(newTestPredictorDict())
	segs := newPredictSegs(segments.Suggestion, "ねこ", 10)
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}

	p.Predict(req, segs)
	seg := segs.ConversionSegment(0)
	seen := make(map[string]bool)
	for i := 0; i < seg.CandidatesSize(); i++ {
		v := seg.Candidate(i).Value
		if seen[v] {
			t.Fatalf("expected unique candidate values, found repeated %s", v)
		}
		seen[v] = true
	}
}

func TestPredictRespectsMaxPredictionCandidatesSizeCap(t *testing.T) {
	dict := dictionary.NewTrieDictionary()
	for i := 0; i < 5; i++ {
		dict.Insert(dictionary.Entry{Key: "ねこ" + string(rune('a'+i)), Value: string(rune('a' + i)), Lid: 1, Rid: 1, Cost: int32(1000 + i)})
	}
	p := newBasicPredictor(dict)
	segs := newPredictSegs(segments.Suggestion, "ねこ", 2)
	req := Request{RequestType: segments.Suggestion, Config: defaultCfg()}

	p.Predict(req, segs)
	if got := segs.ConversionSegment(0).CandidatesSize(); got > 2 {
		t.Fatalf("expected at most 2 candidates, got %d", got)
	}
}

type stubComposer struct {
	base     string
	expanded []string
}

func (s stubComposer) GetQueriesForPrediction() (string, []string) {
	return s.base, s.expanded
}
