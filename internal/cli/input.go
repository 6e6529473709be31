// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kanaseed/predictor/pkg/predictor"
	"github.com/kanaseed/predictor/pkg/segments"
)

// InputHandler drives an interactive REPL over a DictionaryPredictor: it
// reads readings from stdin, optionally prefixed by a history reading
// separated by "|", and prints the ranked candidates.
type InputHandler struct {
	pred         *predictor.DictionaryPredictor
	cfg          predictor.Config
	requestType  segments.RequestType
	limit        int
	requestCount int
}

// NewInputHandler creates a new CLI input handler over pred, using cfg and
// reqType for every request and capping results at limit.
func NewInputHandler(pred *predictor.DictionaryPredictor, cfg predictor.Config, reqType segments.RequestType, limit int) *InputHandler {
	return &InputHandler{pred: pred, cfg: cfg, requestType: reqType, limit: limit}
}

// Start begins the CLI input loop.
// It continuously prompts for input, reads a line from stdin, and passes
// the trimmed input to handleInput() for processing. The loop terminates
// if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	log.Print("Predictor CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a reading and press Enter (prefix with 'history|' to set a history segment, Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes a single line to generate ranked candidates.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	historyKey, key := splitHistory(line)

	segs := segments.NewSegments(h.requestType)
	segs.MaxPredictionCandidatesSize = h.limit
	if historyKey != "" {
		hseg := segments.NewSegment(historyKey)
		hseg.PushCandidate(segments.Candidate{Key: historyKey, Value: historyKey})
		segs.AddHistorySegment(hseg)
	}
	segs.AddConversionSegment(segments.NewSegment(key))

	start := time.Now()
	ok := h.pred.Predict(predictor.Request{Config: h.cfg, RequestType: h.requestType}, segs)
	elapsed := time.Since(start)

	log.Debugf("Took [ %v ] for reading '%s'", elapsed, key)

	if !ok {
		log.Warnf("No candidates found for reading: '%s'", key)
		return
	}

	seg := segs.ConversionSegment(0)
	log.Printf("Found %d candidates for reading '%s':", seg.CandidatesSize(), key)
	for i := 0; i < seg.CandidatesSize(); i++ {
		c := seg.Candidate(i)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", c.Value)
		log.Printf("%2d. %-30s (cost: %8s)", i+1, clWord, strconv.Itoa(int(c.Cost)))
	}
}

// splitHistory splits a REPL line of the form "history|reading" into its
// two parts; a line with no "|" has no history segment.
func splitHistory(line string) (historyKey, key string) {
	if idx := strings.Index(line, "|"); idx >= 0 {
		return line[:idx], line[idx+1:]
	}
	return "", line
}
