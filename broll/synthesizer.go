package broll

import (
	"context"
	"fmt"
	"log"

	"github.com/dakotahermes/brollbot22/internal/models"
)

// DefaultConfidenceThreshold is deliberately permissive: direct-response
// content beats cinematic polish. Acceptance requires confidence strictly
// above the threshold.
const DefaultConfidenceThreshold = 0.4

// naturalEmotions maps marketing emotion labels to plainer ones that video
// generation models respond to. Unmapped labels pass through unchanged.
var naturalEmotions = map[string]string{
	"problem_hook":   "frustrated",
	"solution":       "satisfied",
	"social_proof":   "happy",
	"urgency":        "excited",
	"transformation": "amazed",
	"curiosity":      "intrigued",
}

// FeasibilityChecker gates beats on renderability; implemented by Assessor.
type FeasibilityChecker interface {
	Assess(ctx context.Context, sceneDescription string) (bool, float64)
}

// SynthesisOptions carries caller overrides for the produced prompts. Zero
// values fall back to the mobile-first defaults.
type SynthesisOptions struct {
	Duration    int
	AspectRatio string
}

// Synthesizer turns validated scene beats into generation-ready prompts,
// applying the feasibility gate one beat at a time in input order.
type Synthesizer struct {
	checker   FeasibilityChecker
	threshold float64
}

func NewSynthesizer(checker FeasibilityChecker, threshold float64) *Synthesizer {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	return &Synthesizer{checker: checker, threshold: threshold}
}

// GeneratePrompts maps accepted beats one-to-one to prompts. Beats that fail
// re-validation or the feasibility gate are skipped; relative order of the
// survivors is preserved. An empty result is not an error.
func (s *Synthesizer) GeneratePrompts(ctx context.Context, beats []models.SceneBeat, opts SynthesisOptions) []models.BrollPrompt {
	duration := opts.Duration
	if duration == 0 {
		duration = models.DefaultPromptDuration
	}
	aspectRatio := opts.AspectRatio
	if aspectRatio == "" {
		aspectRatio = models.DefaultAspectRatio
	}

	prompts := make([]models.BrollPrompt, 0, len(beats))
	for i := range beats {
		beat := beats[i]

		// Beats may have round-tripped through external storage since the
		// parser validated them; re-check the contract at this boundary.
		if err := beat.Validate(); err != nil {
			log.Printf("Warning: skipping beat: %v", err)
			continue
		}

		feasible, confidence := s.checker.Assess(ctx, beat.SceneDescription)
		if !feasible || confidence <= s.threshold {
			log.Printf("Skipping low-conversion scene: %s", beat.SceneDescription)
			continue
		}

		emotion := beat.Emotion
		if natural, ok := naturalEmotions[emotion]; ok {
			emotion = natural
		}

		score := confidence
		prompts = append(prompts, models.BrollPrompt{
			Prompt:            fmt.Sprintf("%s, %s, cinematic", beat.SceneDescription, emotion),
			Duration:          duration,
			AspectRatio:       aspectRatio,
			InsertAfter:       beat.ScriptExcerpt,
			SearchInstruction: fmt.Sprintf("Search for: %s showing %s emotion", beat.SceneDescription, emotion),
			ConfidenceScore:   &score,
		})
	}
	return prompts
}
