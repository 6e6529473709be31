// Package segments holds the input/output container the predictor reads
// requests from and writes candidates into.
package segments

// RequestType selects which UI mode issued the prediction request.
type RequestType int

const (
	Conversion RequestType = iota
	Prediction
	Suggestion
	PartialPrediction
	PartialSuggestion
)

// CandidateAttribute is a bitset of flags carried on a Candidate.
type CandidateAttribute uint32

const (
	NoAttributes CandidateAttribute = 0
	// SpellingCorrection marks a candidate whose value differs from a
	// plain transliteration of its key (see pkg/predictor's filter stage).
	SpellingCorrection CandidateAttribute = 1 << 0
)

// Candidate is one ranked completion offered back to the caller.
type Candidate struct {
	Key          string
	Value        string
	ContentKey   string
	ContentValue string
	Lid          uint16
	Rid          uint16
	Wcost        int32
	Cost         int32
	Attributes   CandidateAttribute
}

// Segment carries a reading (Key) and the candidates attached to it.
type Segment struct {
	key        string
	candidates []Candidate
}

// NewSegment creates a segment for the given reading.
func NewSegment(key string) *Segment {
	return &Segment{key: key}
}

// Key returns the segment's reading.
func (s *Segment) Key() string { return s.key }

// Candidates returns the segment's candidate list.
func (s *Segment) Candidates() []Candidate { return s.candidates }

// CandidatesSize returns the number of candidates currently attached.
func (s *Segment) CandidatesSize() int { return len(s.candidates) }

// Candidate returns the i-th candidate.
func (s *Segment) Candidate(i int) *Candidate { return &s.candidates[i] }

// PushCandidate appends a candidate and returns a pointer to it.
func (s *Segment) PushCandidate(c Candidate) *Candidate {
	s.candidates = append(s.candidates, c)
	return &s.candidates[len(s.candidates)-1]
}

// EraseCandidates removes count candidates starting at start. Used by the
// Realtime aggregator to lift candidates it fabricated for itself back out
// of the segment once they've been copied into arena Nodes.
func (s *Segment) EraseCandidates(start, count int) {
	end := start + count
	if start < 0 || end > len(s.candidates) || start > end {
		return
	}
	s.candidates = append(s.candidates[:start], s.candidates[end:]...)
}

// Segments is the full request/response container passed to Predict.
type Segments struct {
	RequestType                 RequestType
	MaxPredictionCandidatesSize int

	history    []*Segment
	conversion []*Segment
}

// NewSegments creates an empty container of the given request type.
func NewSegments(requestType RequestType) *Segments {
	return &Segments{RequestType: requestType}
}

// AddHistorySegment appends a history segment (oldest first, most-recent
// last).
func (s *Segments) AddHistorySegment(seg *Segment) { s.history = append(s.history, seg) }

// AddConversionSegment appends a conversion segment.
func (s *Segments) AddConversionSegment(seg *Segment) { s.conversion = append(s.conversion, seg) }

// HistorySegmentsSize returns the number of history segments.
func (s *Segments) HistorySegmentsSize() int { return len(s.history) }

// HistorySegment returns the i-th history segment.
func (s *Segments) HistorySegment(i int) *Segment { return s.history[i] }

// ConversionSegmentsSize returns the number of conversion segments.
func (s *Segments) ConversionSegmentsSize() int { return len(s.conversion) }

// ConversionSegment returns the i-th conversion segment.
func (s *Segments) ConversionSegment(i int) *Segment { return s.conversion[i] }

// MutableConversionSegment returns the i-th conversion segment for mutation
// (identical to ConversionSegment; Go has no const-pointer distinction, but
// the name signals caller intent to mutate).
func (s *Segments) MutableConversionSegment(i int) *Segment { return s.conversion[i] }
