package broll

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"
)

// DefaultFeasibilityTimeout bounds one feasibility round trip.
const DefaultFeasibilityTimeout = 15 * time.Second

// Fallback verdict when the feasibility call fails for any reason. The
// check is advisory; a broken advisory stage must never block the pipeline.
const (
	fallbackFeasible   = true
	fallbackConfidence = 0.7
)

const feasibilitySystemPrompt = `You're a direct response video specialist. Judge whether this scene can be created for social media ads using AI video generation or easily found stock footage.

PRIORITIZE scenes that:
- Work great on mobile (9:16 format)
- Grab attention in first 3 seconds
- Are simple enough to read quickly
- Support conversion goals
- Can be generated by current AI tools (Runway, Pika, Kling)

Respond with ONLY a JSON object:
{"feasible": true/false, "confidence": 0.0-1.0, "conversion_potential": 0.0-1.0}

Be practical about what converts vs. what's just pretty.`

// Assessor judges whether one scene description is renderable by current AI
// video tooling. It never propagates a failure; any error in the underlying
// call degrades to the permissive fallback verdict.
type Assessor struct {
	generator TextGenerator
	timeout   time.Duration
}

func NewAssessor(generator TextGenerator, timeout time.Duration) *Assessor {
	if timeout <= 0 {
		timeout = DefaultFeasibilityTimeout
	}
	return &Assessor{generator: generator, timeout: timeout}
}

// Assess returns whether the scene is renderable and the confidence of that
// judgment, always in [0,1].
func (a *Assessor) Assess(ctx context.Context, sceneDescription string) (bool, float64) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := a.generator.GenerateText(ctx, feasibilitySystemPrompt, sceneDescription)
	if err != nil {
		log.Printf("Warning: feasibility check failed: %v", err)
		return fallbackFeasible, fallbackConfidence
	}

	jsonStr, ok := extractJSONObject(reply)
	if !ok {
		log.Printf("Warning: no JSON object in feasibility reply for %q", sceneDescription)
		return fallbackFeasible, fallbackConfidence
	}

	var verdict struct {
		Feasible            bool    `json:"feasible"`
		Confidence          float64 `json:"confidence"`
		ConversionPotential float64 `json:"conversion_potential"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &verdict); err != nil {
		log.Printf("Warning: unreadable feasibility reply: %v", err)
		return fallbackFeasible, fallbackConfidence
	}

	return verdict.Feasible, clamp01(verdict.Confidence)
}

func extractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
