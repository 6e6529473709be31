package dictionary

import (
	"errors"
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
)

// TrieDictionary is a patricia-trie-backed Dictionary: the trie is keyed
// on reading strings, and VisitSubtree gives predictive (prefix) lookup
// directly.
//
// Each key can map to more than one Entry, since distinct dictionary rows
// can share a reading (homophones with different values, POS IDs, or
// costs); the trie item is therefore a slice, not a single Entry.
type TrieDictionary struct {
	mu   sync.RWMutex
	trie *patricia.Trie
	size int
}

// NewTrieDictionary creates an empty dictionary.
func NewTrieDictionary() *TrieDictionary {
	return &TrieDictionary{trie: patricia.NewTrie()}
}

// Insert adds an entry under its Key, appending to any existing entries
// sharing that key.
func (d *TrieDictionary) Insert(e Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	prefix := patricia.Prefix(e.Key)
	if item := d.trie.Get(prefix); item != nil {
		d.trie.Set(prefix, append(item.([]Entry), e))
	} else {
		d.trie.Insert(prefix, []Entry{e})
	}
	d.size++
}

var errLimitReached = errors.New("dictionary: limit reached")

// LookupPredictive implements Dictionary.
func (d *TrieDictionary) LookupPredictive(key string) []Entry {
	return d.LookupPredictiveWithLimit(key, 0)
}

// LookupPredictiveWithLimit implements Dictionary. An empty key visits the
// whole trie, which the suffix aggregator relies on for its predictive
// lookup over the suffix dictionary.
func (d *TrieDictionary) LookupPredictiveWithLimit(key string, limit int) []Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []Entry
	err := d.trie.VisitSubtree(patricia.Prefix(key), func(_ patricia.Prefix, item patricia.Item) error {
		out = append(out, item.([]Entry)...)
		if limit > 0 && len(out) >= limit {
			return errLimitReached
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return nil
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LookupPrefix implements Dictionary. The patricia trie is keyed forward
// (reading -> entries), so finding every entry keyed on a prefix of key
// means probing each prefix length rather than a single subtree walk.
func (d *TrieDictionary) LookupPrefix(key string) []Entry {
	if key == "" {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	runes := []rune(key)
	var out []Entry
	for i := 1; i <= len(runes); i++ {
		if item := d.trie.Get(patricia.Prefix(string(runes[:i]))); item != nil {
			out = append(out, item.([]Entry)...)
		}
	}
	return out
}

// Size implements Dictionary.
func (d *TrieDictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.size
}
