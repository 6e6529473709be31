// Package zeroquery supplies the suffix aggregator's zero-query table:
// suffixes offered with no typed input at all, keyed on the preceding
// history segment's key, for number-suffix prediction ("123" -> "円",
// "本", ...).
package zeroquery

// defaultKey is the row always appended after any triggered row.
const defaultKey = "default"

// Table maps a history segment's key to the suffixes worth offering with
// no further input. The row whose trigger equals the history key is used,
// followed by the "default" row's suffixes.
type Table struct {
	rows map[string][]string
}

// NewTable creates a Table from rows. If rows has no "default" entry, one
// is added with an empty suggestion list.
func NewTable(rows map[string][]string) *Table {
	t := &Table{rows: make(map[string][]string, len(rows))}
	for k, v := range rows {
		t.rows[k] = v
	}
	if _, ok := t.rows[defaultKey]; !ok {
		t.rows[defaultKey] = nil
	}
	return t
}

// Suffixes returns the triggered row's suffixes (if historyKey matches a
// row other than "default") followed by the default row's suffixes, in
// emission order.
func (t *Table) Suffixes(historyKey string) []string {
	def := t.rows[defaultKey]
	if historyKey == defaultKey {
		return def
	}
	triggered, ok := t.rows[historyKey]
	if !ok {
		return def
	}
	out := make([]string, 0, len(triggered)+len(def))
	out = append(out, triggered...)
	out = append(out, def...)
	return out
}
