package broll

import (
	"context"
	"errors"
	"fmt"

	"github.com/dakotahermes/brollbot22/internal/models"
)

// Outcome classifies a pipeline run for user-facing messaging. The three
// empty results are deliberately distinguishable: decomposition failure,
// zero beats extracted, and zero prompts surviving the feasibility gate.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeNoBeats    Outcome = "no_beats"
	OutcomeNoFeasible Outcome = "no_feasible_prompts"
)

// Result is the terminal output of one pipeline run, owned by the caller.
type Result struct {
	Beats   []models.SceneBeat   `json:"beats"`
	Prompts []models.BrollPrompt `json:"prompts"`
	Outcome Outcome              `json:"outcome"`
	Message string               `json:"message"`
}

// Pipeline composes the two generation stages: script decomposition and
// prompt synthesis. Each run is independent and side-effect free apart
// from the outbound generative calls.
type Pipeline struct {
	parser      *Parser
	synthesizer *Synthesizer
}

func NewPipeline(parser *Parser, synthesizer *Synthesizer) *Pipeline {
	return &Pipeline{parser: parser, synthesizer: synthesizer}
}

// Run decomposes the script and synthesizes prompts from the resulting
// beats. A decomposition failure returns an error and no Result; the caller
// may resubmit (the call is idempotent to repeat).
func (p *Pipeline) Run(ctx context.Context, in *models.ScriptInput, opts SynthesisOptions) (*Result, error) {
	beats, err := p.parser.ParseScript(ctx, in)
	if err != nil {
		return nil, err
	}

	if len(beats) == 0 {
		return &Result{
			Beats:   []models.SceneBeat{},
			Prompts: []models.BrollPrompt{},
			Outcome: OutcomeNoBeats,
			Message: "No suitable scenes found. Try a different tone or format.",
		}, nil
	}

	prompts := p.synthesizer.GeneratePrompts(ctx, beats, opts)
	if len(prompts) == 0 {
		return &Result{
			Beats:   beats,
			Prompts: []models.BrollPrompt{},
			Outcome: OutcomeNoFeasible,
			Message: "No high-converting prompts were generated. The script may be too abstract or complex for current AI video generation.",
		}, nil
	}

	return &Result{
		Beats:   beats,
		Prompts: prompts,
		Outcome: OutcomeOK,
		Message: fmt.Sprintf("Generated %d B-roll prompts from %d scene beats.", len(prompts), len(beats)),
	}, nil
}

// FailureMessage renders a decomposition failure for end users.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnexpectedFormat):
		return "Failed to parse the script. The AI response was not in the expected format. Please try again."
	case errors.Is(err, ErrServiceUnavailable):
		return fmt.Sprintf("Service temporarily unavailable: %v. Please try again.", err)
	default:
		return fmt.Sprintf("B-roll generation failed: %v. Please try again.", err)
	}
}
