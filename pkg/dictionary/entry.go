// Package dictionary provides the read-only reading-to-value lookup surface
// the predictor's aggregators query, backed by a patricia trie loaded from
// binary chunk files.
package dictionary

// Entry is one dictionary record: a reading (Key) and its surface form
// (Value), plus the connection IDs and word cost the cost model and
// connector need.
type Entry struct {
	Key   string
	Value string
	Lid   uint16
	Rid   uint16
	Cost  int32
}
