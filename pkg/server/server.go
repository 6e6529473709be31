package server

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kanaseed/predictor/pkg/predictor"
	"github.com/kanaseed/predictor/pkg/segments"
)

// Server exposes a DictionaryPredictor's Predict over msgpack-encoded
// requests read from stdin, one response written to stdout per request.
type Server struct {
	pred   *predictor.DictionaryPredictor
	cfg    predictor.Config
	reader *bufio.Reader
	writer io.Writer
}

// NewServer creates a Server that predicts with pred using cfg as the
// per-call configuration.
func NewServer(pred *predictor.DictionaryPredictor, cfg predictor.Config) *Server {
	return &Server{
		pred:   pred,
		cfg:    cfg,
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

// Start reads and answers requests until stdin closes.
func (s *Server) Start() error {
	log.Debug("predictor server starting")
	dec := msgpack.NewDecoder(s.reader)
	for {
		var req PredictRequest
		if err := dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("decode request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req PredictRequest) {
	start := time.Now()

	reqType, ok := parseRequestType(req.RequestType)
	if !ok {
		s.sendError(req.ID, "unknown request_type: "+req.RequestType)
		return
	}

	segs := segments.NewSegments(reqType)
	segs.MaxPredictionCandidatesSize = req.Limit
	if segs.MaxPredictionCandidatesSize <= 0 {
		segs.MaxPredictionCandidatesSize = 10
	}

	if req.HistoryReading != "" {
		hseg := segments.NewSegment(req.HistoryReading)
		hseg.PushCandidate(segments.Candidate{Key: req.HistoryReading, Value: req.HistoryValue})
		segs.AddHistorySegment(hseg)
	}
	segs.AddConversionSegment(segments.NewSegment(req.Reading))

	s.pred.Predict(predictor.Request{Config: s.cfg, RequestType: reqType}, segs)

	seg := segs.ConversionSegment(0)
	views := make([]CandidateView, seg.CandidatesSize())
	for i := 0; i < seg.CandidatesSize(); i++ {
		c := seg.Candidate(i)
		views[i] = CandidateView{Value: c.Value, Cost: c.Cost}
	}

	s.send(PredictResponse{
		ID:         req.ID,
		Candidates: views,
		Count:      len(views),
		TimeUs:     time.Since(start).Microseconds(),
	})
}

func (s *Server) send(resp PredictResponse) {
	enc := msgpack.NewEncoder(s.writer)
	if err := enc.Encode(resp); err != nil {
		log.Errorf("encode response: %v", err)
	}
}

func (s *Server) sendError(id, msg string) {
	s.send(PredictResponse{ID: id, Error: msg})
}

func parseRequestType(s string) (segments.RequestType, bool) {
	switch s {
	case "conversion":
		return segments.Conversion, true
	case "prediction":
		return segments.Prediction, true
	case "suggestion", "":
		return segments.Suggestion, true
	case "partial_prediction":
		return segments.PartialPrediction, true
	case "partial_suggestion":
		return segments.PartialSuggestion, true
	default:
		return segments.Suggestion, false
	}
}
