/*
Package server implements a msgpack request/response IPC for the
dictionary predictor, one message per call over stdin/stdout.

# Protocol

Each request is a single msgpack-encoded PredictRequest read from stdin;
each response is a single msgpack-encoded PredictResponse written to
stdout. There is no framing beyond what msgpack's own encoding provides —
the decoder reads exactly one value per call: a one-message-per-call
stdin/stdout shape, but with a binary wire format instead of
newline-delimited JSON.

A request:

	PredictRequest{
	  ID:             "req_001",
	  Reading:        "ねこ",
	  HistoryReading: "",
	  RequestType:    "suggestion",
	  Limit:          10,
	}

A response:

	PredictResponse{
	  ID:         "req_001",
	  Candidates: []CandidateView{{Value: "猫", Cost: 3000}},
	  Count:      1,
	  TimeUs:     145,
	}

Errors are reported as a PredictResponse carrying a non-empty Error field
rather than by closing the connection, so the client keeps sending
subsequent requests over the same stream.
*/
package server

// PredictRequest is the msgpack wire request read from stdin.
type PredictRequest struct {
	ID             string `msgpack:"id"`
	Reading        string `msgpack:"reading"`
	HistoryReading string `msgpack:"history_reading,omitempty"`
	HistoryValue   string `msgpack:"history_value,omitempty"`
	RequestType    string `msgpack:"request_type"`
	Limit          int    `msgpack:"limit,omitempty"`
}

// CandidateView is one ranked candidate in a PredictResponse.
type CandidateView struct {
	Value string `msgpack:"value"`
	Cost  int32  `msgpack:"cost"`
}

// PredictResponse is the msgpack wire response written to stdout.
type PredictResponse struct {
	ID         string          `msgpack:"id"`
	Candidates []CandidateView `msgpack:"candidates"`
	Count      int             `msgpack:"count"`
	TimeUs     int64           `msgpack:"time_us"`
	Error      string          `msgpack:"error,omitempty"`
}
