package broll

import (
	"context"
	"fmt"
	"testing"

	"github.com/dakotahermes/brollbot22/internal/models"
)

// fixedChecker returns the same verdict for every scene.
type fixedChecker struct {
	feasible   bool
	confidence float64
}

func (c fixedChecker) Assess(ctx context.Context, sceneDescription string) (bool, float64) {
	return c.feasible, c.confidence
}

// scriptedChecker returns verdicts in sequence, one per call.
type scriptedChecker struct {
	feasible   []bool
	confidence []float64
	calls      int
}

func (c *scriptedChecker) Assess(ctx context.Context, sceneDescription string) (bool, float64) {
	i := c.calls
	c.calls++
	return c.feasible[i], c.confidence[i]
}

func makeBeats(n int) []models.SceneBeat {
	beats := make([]models.SceneBeat, 0, n)
	for i := 0; i < n; i++ {
		beats = append(beats, models.SceneBeat{
			Timestamp:        fmt.Sprintf("00:%02d", i*4),
			SceneDescription: fmt.Sprintf("Scene number %d with enough detail", i),
			Emotion:          "excited",
			ScriptExcerpt:    fmt.Sprintf("Excerpt %d", i),
		})
	}
	return beats
}

func TestGeneratePromptsFormatting(t *testing.T) {
	beats := []models.SceneBeat{{
		Timestamp:        "00:00",
		SceneDescription: "Person looking frustrated at phone",
		Emotion:          "frustrated",
		ScriptExcerpt:    "Tired of cold calling?",
	}}
	synth := NewSynthesizer(fixedChecker{feasible: true, confidence: 0.9}, DefaultConfidenceThreshold)

	prompts := synth.GeneratePrompts(context.Background(), beats, SynthesisOptions{})
	if len(prompts) != 1 {
		t.Fatalf("got %d prompts, want 1", len(prompts))
	}

	p := prompts[0]
	if p.Prompt != "Person looking frustrated at phone, frustrated, cinematic" {
		t.Errorf("Prompt = %q", p.Prompt)
	}
	if p.SearchInstruction != "Search for: Person looking frustrated at phone showing frustrated emotion" {
		t.Errorf("SearchInstruction = %q", p.SearchInstruction)
	}
	if p.InsertAfter != "Tired of cold calling?" {
		t.Errorf("InsertAfter = %q, want the script excerpt", p.InsertAfter)
	}
	if p.Duration != models.DefaultPromptDuration {
		t.Errorf("Duration = %d, want default %d", p.Duration, models.DefaultPromptDuration)
	}
	if p.AspectRatio != models.DefaultAspectRatio {
		t.Errorf("AspectRatio = %q, want default %q", p.AspectRatio, models.DefaultAspectRatio)
	}
	if p.ConfidenceScore == nil || *p.ConfidenceScore != 0.9 {
		t.Errorf("ConfidenceScore = %v, want 0.9", p.ConfidenceScore)
	}
}

func TestGeneratePromptsEmotionNormalization(t *testing.T) {
	tests := []struct {
		emotion string
		want    string
	}{
		{emotion: "problem_hook", want: "frustrated"},
		{emotion: "solution", want: "satisfied"},
		{emotion: "social_proof", want: "happy"},
		{emotion: "urgency", want: "excited"},
		{emotion: "transformation", want: "amazed"},
		{emotion: "curiosity", want: "intrigued"},
		{emotion: "nostalgic", want: "nostalgic"}, // unmapped passes through
	}

	synth := NewSynthesizer(fixedChecker{feasible: true, confidence: 0.9}, DefaultConfidenceThreshold)
	for _, tt := range tests {
		t.Run(tt.emotion, func(t *testing.T) {
			beats := []models.SceneBeat{{
				Timestamp:        "00:00",
				SceneDescription: "Happy customer holding product",
				Emotion:          tt.emotion,
				ScriptExcerpt:    "Try our app!",
			}}
			prompts := synth.GeneratePrompts(context.Background(), beats, SynthesisOptions{})
			if len(prompts) != 1 {
				t.Fatalf("got %d prompts, want 1", len(prompts))
			}
			want := "Happy customer holding product, " + tt.want + ", cinematic"
			if prompts[0].Prompt != want {
				t.Errorf("Prompt = %q, want %q", prompts[0].Prompt, want)
			}
		})
	}
}

func TestGeneratePromptsThresholdIsStrict(t *testing.T) {
	beats := makeBeats(1)

	atThreshold := NewSynthesizer(fixedChecker{feasible: true, confidence: 0.4}, DefaultConfidenceThreshold)
	if got := atThreshold.GeneratePrompts(context.Background(), beats, SynthesisOptions{}); len(got) != 0 {
		t.Errorf("confidence exactly 0.4 must be rejected, got %d prompts", len(got))
	}

	justAbove := NewSynthesizer(fixedChecker{feasible: true, confidence: 0.4000001}, DefaultConfidenceThreshold)
	if got := justAbove.GeneratePrompts(context.Background(), beats, SynthesisOptions{}); len(got) != 1 {
		t.Errorf("confidence just above 0.4 must be accepted, got %d prompts", len(got))
	}

	infeasible := NewSynthesizer(fixedChecker{feasible: false, confidence: 0.99}, DefaultConfidenceThreshold)
	if got := infeasible.GeneratePrompts(context.Background(), beats, SynthesisOptions{}); len(got) != 0 {
		t.Errorf("infeasible scene must be rejected regardless of confidence, got %d prompts", len(got))
	}
}

func TestGeneratePromptsFilterPreservesOrder(t *testing.T) {
	beats := makeBeats(5)
	checker := &scriptedChecker{
		feasible:   []bool{true, false, true, true, false},
		confidence: []float64{0.9, 0.9, 0.5, 0.8, 0.9},
	}
	synth := NewSynthesizer(checker, DefaultConfidenceThreshold)

	prompts := synth.GeneratePrompts(context.Background(), beats, SynthesisOptions{})
	if len(prompts) != 3 {
		t.Fatalf("got %d prompts, want 3", len(prompts))
	}

	wantExcerpts := []string{"Excerpt 0", "Excerpt 2", "Excerpt 3"}
	for i, p := range prompts {
		if p.InsertAfter != wantExcerpts[i] {
			t.Errorf("prompt %d InsertAfter = %q, want %q", i, p.InsertAfter, wantExcerpts[i])
		}
		if p.ConfidenceScore == nil || *p.ConfidenceScore <= 0.4 || *p.ConfidenceScore > 1.0 {
			t.Errorf("prompt %d confidence %v outside (0.4, 1.0]", i, p.ConfidenceScore)
		}
	}
}

func TestGeneratePromptsSkipsInvalidBeats(t *testing.T) {
	beats := makeBeats(2)
	beats[0].ScriptExcerpt = "" // round-tripped beat lost its anchor
	synth := NewSynthesizer(fixedChecker{feasible: true, confidence: 0.9}, DefaultConfidenceThreshold)

	prompts := synth.GeneratePrompts(context.Background(), beats, SynthesisOptions{})
	if len(prompts) != 1 {
		t.Fatalf("got %d prompts, want 1", len(prompts))
	}
	if prompts[0].InsertAfter != "Excerpt 1" {
		t.Errorf("InsertAfter = %q, want the surviving beat's excerpt", prompts[0].InsertAfter)
	}
}

func TestGeneratePromptsHonorsOptions(t *testing.T) {
	beats := makeBeats(1)
	synth := NewSynthesizer(fixedChecker{feasible: true, confidence: 0.9}, DefaultConfidenceThreshold)

	prompts := synth.GeneratePrompts(context.Background(), beats, SynthesisOptions{Duration: 10, AspectRatio: "1:1"})
	if len(prompts) != 1 {
		t.Fatalf("got %d prompts, want 1", len(prompts))
	}
	if prompts[0].Duration != 10 {
		t.Errorf("Duration = %d, want 10", prompts[0].Duration)
	}
	if prompts[0].AspectRatio != "1:1" {
		t.Errorf("AspectRatio = %q, want 1:1", prompts[0].AspectRatio)
	}
}

func TestGeneratePromptsOutputNeverExceedsInput(t *testing.T) {
	for _, n := range []int{0, 1, 4, 8} {
		beats := makeBeats(n)
		synth := NewSynthesizer(fixedChecker{feasible: true, confidence: 0.9}, DefaultConfidenceThreshold)
		prompts := synth.GeneratePrompts(context.Background(), beats, SynthesisOptions{})
		if len(prompts) > len(beats) {
			t.Errorf("n=%d: %d prompts exceed %d beats", n, len(prompts), len(beats))
		}
	}
}
