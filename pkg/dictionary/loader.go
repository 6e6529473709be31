package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// chunk file layout, little-endian, extended with the connection IDs
// and word cost the cost model needs:
//
//	int32   entry count
//	repeated per entry:
//	  uint16  key length (bytes)
//	  []byte  key
//	  uint16  value length (bytes)
//	  []byte  value
//	  uint16  lid
//	  uint16  rid
//	  int32   cost

// LoadChunkFile reads one dict_NNNN.bin chunk into a slice of Entry.
func LoadChunkFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chunk %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read chunk header %s: %w", path, err)
	}

	entries := make([]Entry, 0, count)
	for i := int32(0); i < count; i++ {
		e, err := readEntry(r)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read entry %d of %s: %w", i, path, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func readEntry(r io.Reader) (Entry, error) {
	var e Entry

	var keyLen uint16
	if err := binary.Read(r, binary.LittleEndian, &keyLen); err != nil {
		return e, err
	}
	keyBuf := make([]byte, keyLen)
	if _, err := io.ReadFull(r, keyBuf); err != nil {
		return e, err
	}
	e.Key = string(keyBuf)

	var valLen uint16
	if err := binary.Read(r, binary.LittleEndian, &valLen); err != nil {
		return e, err
	}
	valBuf := make([]byte, valLen)
	if _, err := io.ReadFull(r, valBuf); err != nil {
		return e, err
	}
	e.Value = string(valBuf)

	if err := binary.Read(r, binary.LittleEndian, &e.Lid); err != nil {
		return e, err
	}
	if err := binary.Read(r, binary.LittleEndian, &e.Rid); err != nil {
		return e, err
	}
	if err := binary.Read(r, binary.LittleEndian, &e.Cost); err != nil {
		return e, err
	}
	return e, nil
}

// ChunkInfo describes one chunk file on disk.
type ChunkInfo struct {
	ID       int
	Filename string
}

// ChunkLoader lazily loads dict_NNNN.bin chunks from a directory into a
// TrieDictionary, running the load in a background goroutine so a server
// can start answering requests against whatever chunks have loaded so far.
// The dictionary is load-once for the process lifetime; there is no
// unload or eviction path.
type ChunkLoader struct {
	dirPath string
	dict    *TrieDictionary

	mu           sync.Mutex
	loadedChunks map[int]bool
	loadedCount  int
	totalCount   int
}

// NewChunkLoader creates a loader that will populate dict from chunk files
// under dirPath.
func NewChunkLoader(dirPath string, dict *TrieDictionary) *ChunkLoader {
	return &ChunkLoader{
		dirPath:      dirPath,
		dict:         dict,
		loadedChunks: make(map[int]bool),
	}
}

// Available scans dirPath for dict_NNNN.bin files, sorted by chunk ID.
func (cl *ChunkLoader) Available() ([]ChunkInfo, error) {
	matches, err := filepath.Glob(filepath.Join(cl.dirPath, "dict_*.bin"))
	if err != nil {
		return nil, fmt.Errorf("scan chunk directory %s: %w", cl.dirPath, err)
	}

	chunks := make([]ChunkInfo, 0, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		idStr := strings.TrimSuffix(strings.TrimPrefix(base, "dict_"), ".bin")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		chunks = append(chunks, ChunkInfo{ID: id, Filename: m})
	}
	sort.Slice(chunks, func(i, j int) bool { return chunks[i].ID < chunks[j].ID })
	return chunks, nil
}

// LoadAll loads every available chunk synchronously, in order.
func (cl *ChunkLoader) LoadAll() error {
	chunks, err := cl.Available()
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return fmt.Errorf("no chunk files found in %s", cl.dirPath)
	}
	for _, c := range chunks {
		if err := cl.loadOne(c); err != nil {
			return err
		}
	}
	return nil
}

// LoadInBackground starts loading every available chunk on a goroutine and
// returns immediately; done is closed once loading finishes (successfully
// or not, with the error, if any, logged rather than returned).
func (cl *ChunkLoader) LoadInBackground() (done <-chan struct{}) {
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		chunks, err := cl.Available()
		if err != nil {
			log.Errorf("dictionary: scan chunks: %v", err)
			return
		}
		for _, c := range chunks {
			if err := cl.loadOne(c); err != nil {
				log.Errorf("dictionary: load chunk %d: %v", c.ID, err)
				continue
			}
		}
	}()
	return ch
}

func (cl *ChunkLoader) loadOne(c ChunkInfo) error {
	cl.mu.Lock()
	if cl.loadedChunks[c.ID] {
		cl.mu.Unlock()
		return nil
	}
	cl.mu.Unlock()

	entries, err := LoadChunkFile(c.Filename)
	if err != nil {
		return err
	}
	for _, e := range entries {
		cl.dict.Insert(e)
	}

	cl.mu.Lock()
	cl.loadedChunks[c.ID] = true
	cl.loadedCount++
	cl.totalCount = len(cl.loadedChunks)
	cl.mu.Unlock()

	log.Debugf("dictionary: loaded chunk %d (%d entries)", c.ID, len(entries))
	return nil
}

// Stats reports loader progress.
type Stats struct {
	LoadedChunks int
	DictSize     int
}

// Stats returns the current loading progress.
func (cl *ChunkLoader) Stats() Stats {
	cl.mu.Lock()
	loaded := cl.loadedCount
	cl.mu.Unlock()
	return Stats{LoadedChunks: loaded, DictSize: cl.dict.Size()}
}
