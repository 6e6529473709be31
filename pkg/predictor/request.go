// Package predictor implements the dictionary-predictor ranking core: it
// selects which strategies apply to a request, aggregates candidates from
// several sources into a shared arena, scores and filters them, and emits
// a capped, de-duplicated, ordered result list.
package predictor

import (
	"github.com/kanaseed/predictor/pkg/composer"
	"github.com/kanaseed/predictor/pkg/segments"
)

// Config carries the process-wide flags the core reads exactly once per
// call, rather than consulting a global singleton.
type Config struct {
	MixedConversion         bool
	UseRealtimeConversion   bool
	UseDictionarySuggest    bool
	ZeroQuerySuggestion     bool
	EnableExpansion         bool
	MaxPredictionCandidates int
}

// Request bundles the per-call configuration and the request type read
// from the segments, plus an optional composer supplying key-expansion
// ambiguity.
type Request struct {
	Config      Config
	RequestType segments.RequestType
	Composer    composer.Composer
}
