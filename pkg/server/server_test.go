package server

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kanaseed/predictor/pkg/connector"
	"github.com/kanaseed/predictor/pkg/dictionary"
	"github.com/kanaseed/predictor/pkg/posmatcher"
	"github.com/kanaseed/predictor/pkg/predictor"
	"github.com/kanaseed/predictor/pkg/segmenter"
	"github.com/kanaseed/predictor/pkg/suppression"
)

func testPredictor() *predictor.DictionaryPredictor {
	dict := dictionary.NewTrieDictionary()
	dict.Insert(dictionary.Entry{Key: "ねこ", Value: "猫", Lid: 1, Rid: 1, Cost: 500})
	return predictor.New(
		dict, nil, nil,
		connector.NewMatrixConnector(nil, 0, 0),
		segmenter.NewTableSegmenter(nil, 0),
		posmatcher.NewStaticPOSMatcher(1, nil),
		suppression.NewListFilter(nil, nil),
		nil,
	)
}

func newTestServer(req PredictRequest) (*Server, *bytes.Buffer) {
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	enc.Encode(req)

	var out bytes.Buffer
	s := &Server{
		pred:   testPredictor(),
		cfg:    predictor.Config{UseDictionarySuggest: true, ZeroQuerySuggestion: true, EnableExpansion: true},
		reader: bufio.NewReader(&in),
		writer: &out,
	}
	return s, &out
}

func TestParseRequestType(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"conversion", true},
		{"prediction", true},
		{"suggestion", true},
		{"", true},
		{"partial_prediction", true},
		{"partial_suggestion", true},
		{"garbage", false},
	}
	for _, c := range cases {
		_, ok := parseRequestType(c.in)
		if ok != c.ok {
			t.Errorf("parseRequestType(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
	}
}

func TestStartAnswersSingleRequest(t *testing.T) {
	s, out := newTestServer(PredictRequest{ID: "req_001", Reading: "ねこ", RequestType: "suggestion", Limit: 10})

	if err := s.Start(); err != nil {
		t.Fatalf("Start returned an error: %v", err)
	}

	var resp PredictResponse
	if err := msgpack.NewDecoder(out).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "req_001" {
		t.Errorf("expected the response id to echo the request id, got %s", resp.ID)
	}
	if resp.Error != "" {
		t.Fatalf("expected no error, got %s", resp.Error)
	}
	if resp.Count == 0 || len(resp.Candidates) != resp.Count {
		t.Fatalf("expected a non-empty, count-consistent candidate list, got %+v", resp)
	}
	if resp.Candidates[0].Value != "猫" {
		t.Errorf("expected 猫 among the candidates, got %+v", resp.Candidates)
	}
}

func TestStartReturnsErrorResponseForUnknownRequestType(t *testing.T) {
	s, out := newTestServer(PredictRequest{ID: "req_002", Reading: "ねこ", RequestType: "not_a_real_type"})

	if err := s.Start(); err != nil {
		t.Fatalf("Start returned an error: %v", err)
	}

	var resp PredictResponse
	if err := msgpack.NewDecoder(out).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "req_002" {
		t.Errorf("expected the response id to echo the request id, got %s", resp.ID)
	}
	if resp.Error == "" {
		t.Fatalf("expected an error message for an unknown request_type")
	}
	if resp.Count != 0 {
		t.Errorf("expected no candidates on an error response, got %d", resp.Count)
	}
}

func TestStartDefaultsLimitWhenUnset(t *testing.T) {
	s, out := newTestServer(PredictRequest{ID: "req_003", Reading: "ねこ", RequestType: "suggestion"})

	if err := s.Start(); err != nil {
		t.Fatalf("Start returned an error: %v", err)
	}
	var resp PredictResponse
	if err := msgpack.NewDecoder(out).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("expected no error with an unset limit, got %s", resp.Error)
	}
}
