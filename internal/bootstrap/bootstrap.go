// Package bootstrap wires the collaborator implementations a
// DictionaryPredictor needs from a data directory on disk. Both
// cmd/predictserve and cmd/predict share this construction since two
// entry points now need the same wiring.
package bootstrap

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/kanaseed/predictor/pkg/connector"
	"github.com/kanaseed/predictor/pkg/dictionary"
	"github.com/kanaseed/predictor/pkg/posmatcher"
	"github.com/kanaseed/predictor/pkg/realtime"
	"github.com/kanaseed/predictor/pkg/segmenter"
	"github.com/kanaseed/predictor/pkg/suppression"
	"github.com/kanaseed/predictor/pkg/zeroquery"

	"github.com/kanaseed/predictor/pkg/predictor"
)

// counterSuffixID is the lid used by the built-in counter-suffix table
// ("円", "本", "個", ...). A real deployment would read this from the
// same POS ID space as the dictionary's chunk files; a fixed constant is
// enough for the in-process defaults built here.
const counterSuffixID uint16 = 1

// defaultNumberSuffixes is the zero-query table Build always uses; no data
// file in dataDir is read for it. '円'/'本'/'個' cover the yen/counter
// examples in the design notes, offered after any typed digits with no
// further input.
var defaultNumberSuffixes = map[string][]string{
	"default": {"円", "本", "個"},
}

// Predictor bundles a constructed DictionaryPredictor with the loaders
// backing its two dictionaries, so callers can report load progress.
type Predictor struct {
	Core       *predictor.DictionaryPredictor
	MainLoader *dictionary.ChunkLoader
	SuffixLoad *dictionary.ChunkLoader
}

// Build constructs a DictionaryPredictor from chunk files under dataDir:
//
//	dataDir/dict_%04d.bin        main dictionary chunks
//	dataDir/suffix/dict_%04d.bin suffix dictionary chunks
//	dataDir/matrix.bin           connection cost matrix
//
// Chunk directories that don't exist yield an empty dictionary rather
// than an error, so a deployment missing suffix data or a connection
// matrix still starts and predicts with whatever it has.
func Build(dataDir string) (*Predictor, error) {
	mainDict := dictionary.NewTrieDictionary()
	mainLoader := dictionary.NewChunkLoader(dataDir, mainDict)
	if chunks, err := mainLoader.Available(); err == nil && len(chunks) > 0 {
		if err := mainLoader.LoadAll(); err != nil {
			return nil, err
		}
		log.Debugf("bootstrap: loaded %d main dictionary entries", mainDict.Size())
	} else {
		log.Warn("bootstrap: no main dictionary chunks found, running with empty dict")
	}

	suffixDir := filepath.Join(dataDir, "suffix")
	suffixDict := dictionary.NewTrieDictionary()
	suffixLoader := dictionary.NewChunkLoader(suffixDir, suffixDict)
	if chunks, err := suffixLoader.Available(); err == nil && len(chunks) > 0 {
		if err := suffixLoader.LoadAll(); err != nil {
			return nil, err
		}
		log.Debugf("bootstrap: loaded %d suffix dictionary entries", suffixDict.Size())
	} else {
		log.Warn("bootstrap: no suffix dictionary chunks found, running with empty suffix dict")
	}

	matrixPath := filepath.Join(dataDir, "matrix.bin")
	var conn connector.Connector
	if mc, err := connector.LoadMatrixConnector(matrixPath, 0); err == nil {
		conn = mc
	} else {
		log.Warnf("bootstrap: no connection matrix at %s, transition costs default to 0: %v", matrixPath, err)
		conn = connector.NewMatrixConnector(nil, 0, 0)
	}

	segm := segmenter.NewTableSegmenter(nil, 0)
	pos := posmatcher.NewStaticPOSMatcher(counterSuffixID, nil)
	filter := suppression.NewListFilter(nil, nil)
	numberTable := zeroquery.NewTable(defaultNumberSuffixes)
	converter := realtime.NewGreedyConverter(mainDict, segm)

	core := predictor.New(mainDict, suffixDict, numberTable, conn, segm, pos, filter, converter)

	return &Predictor{Core: core, MainLoader: mainLoader, SuffixLoad: suffixLoader}, nil
}
