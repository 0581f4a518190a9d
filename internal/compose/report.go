package compose

import (
	"github.com/google/uuid"

	"mixin-generator/internal/diagnostic"
	"mixin-generator/internal/model"
)

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome is what happened to one target.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeEmitted
	OutcomeSkipped
	OutcomeFailed
)

// TargetResult is the outcome for one target.
type TargetResult struct {
	Target  model.TypeID
	Outcome Outcome
	// Artifact is the qualified name of the emitted artifact.
	Artifact string
	// Reason explains a skip or failure.
	Reason string
}

// Report summarizes a round.
type Report struct {
	RoundID     uuid.UUID
	Results     []TargetResult
	Diagnostics diagnostic.Diagnostics
}

// Emitted returns the names of the emitted artifacts in target order.
func (r *Report) Emitted() []string {
	var out []string

	for _, res := range r.Results {
		if res.Outcome == OutcomeEmitted {
			out = append(out, res.Artifact)
		}
	}

	return out
}

// Result returns the result of target.
func (r *Report) Result(target model.TypeID) (TargetResult, bool) {
	for _, res := range r.Results {
		if res.Target == target {
			return res, true
		}
	}

	return TargetResult{}, false
}

// Count returns how many targets ended with outcome.
func (r *Report) Count(outcome Outcome) int {
	n := 0

	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}

	return n
}
