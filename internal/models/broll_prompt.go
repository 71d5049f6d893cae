package models

import "fmt"

// Clip duration bounds in seconds, and mobile-first defaults.
const (
	MinPromptDuration     = 1
	MaxPromptDuration     = 30
	DefaultPromptDuration = 3
	DefaultAspectRatio    = "9:16"
)

// BrollPrompt is one generation-ready deliverable produced from an accepted
// scene beat. Prompts are immutable once built; the ordered sequence of
// prompts is the pipeline's terminal output.
type BrollPrompt struct {
	Prompt            string   `json:"prompt"`
	Duration          int      `json:"duration"`
	AspectRatio       string   `json:"aspect_ratio"`
	InsertAfter       string   `json:"insert_after"`
	SearchInstruction string   `json:"search_instruction"`
	ConfidenceScore   *float64 `json:"confidence_score,omitempty"`
}

// Validate checks duration and confidence bounds.
func (p *BrollPrompt) Validate() error {
	if p.Prompt == "" {
		return fmt.Errorf("prompt is required")
	}
	if p.Duration < MinPromptDuration || p.Duration > MaxPromptDuration {
		return fmt.Errorf("duration %d outside %d-%d seconds", p.Duration, MinPromptDuration, MaxPromptDuration)
	}
	if p.InsertAfter == "" {
		return fmt.Errorf("insert_after is required")
	}
	if p.ConfidenceScore != nil && (*p.ConfidenceScore < 0 || *p.ConfidenceScore > 1) {
		return fmt.Errorf("confidence score %.3f outside [0,1]", *p.ConfidenceScore)
	}
	return nil
}
