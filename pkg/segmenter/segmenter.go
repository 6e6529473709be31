// Package segmenter supplies the per-part-of-speech suffix penalty added
// during realtime conversion and, by the cost stage, to every non-realtime
// result.
package segmenter

// Segmenter reports the boundary penalty for ending a candidate on a word
// with the given right-context connection ID.
type Segmenter interface {
	GetSuffixPenalty(rid uint16) int32
}

// TableSegmenter is a map-backed Segmenter with a default penalty for any
// rid it has no explicit entry for.
type TableSegmenter struct {
	penalties map[uint16]int32
	def       int32
}

// NewTableSegmenter creates a TableSegmenter using penalties, falling back
// to def for any rid absent from the map.
func NewTableSegmenter(penalties map[uint16]int32, def int32) *TableSegmenter {
	return &TableSegmenter{penalties: penalties, def: def}
}

// GetSuffixPenalty implements Segmenter.
func (s *TableSegmenter) GetSuffixPenalty(rid uint16) int32 {
	if p, ok := s.penalties[rid]; ok {
		return p
	}
	return s.def
}
