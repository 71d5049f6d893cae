package broll

import (
	"strings"
	"testing"

	"github.com/dakotahermes/brollbot22/internal/models"
)

func TestBuildDecompositionPrompt(t *testing.T) {
	prompt := BuildDecompositionPrompt(models.ToneHook, models.FormatUGC)

	for _, want := range []string{
		"B-roll specialist",
		"timestamp",
		"scene_description",
		"emotion",
		"script_excerpt",
		"JSON",
		"under 15 words",
		"TONE STRATEGY: Create simple attention-grabbing moments",
		"FORMAT STRATEGY: Authentic, user-generated style footage",
		"EXAMPLES OF GOOD SCENE DESCRIPTIONS",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildDecompositionPromptUnknownValues(t *testing.T) {
	base := BuildDecompositionPrompt(models.Tone("no-such-tone"), models.Format("no-such-format"))
	if strings.Contains(base, "TONE STRATEGY") {
		t.Error("unknown tone must add no tone guidance")
	}
	if strings.Contains(base, "FORMAT STRATEGY") {
		t.Error("unknown format must add no format guidance")
	}
}

func TestBuildDecompositionPromptDeterministic(t *testing.T) {
	a := BuildDecompositionPrompt(models.ToneUrgency, models.FormatTestimonial)
	b := BuildDecompositionPrompt(models.ToneUrgency, models.FormatTestimonial)
	if a != b {
		t.Error("prompt builder must be deterministic")
	}
}

func TestBuildDecompositionPromptVariesByTone(t *testing.T) {
	hook := BuildDecompositionPrompt(models.ToneHook, models.FormatUGC)
	urgency := BuildDecompositionPrompt(models.ToneUrgency, models.FormatUGC)
	if hook == urgency {
		t.Error("different tones must produce different guidance")
	}
}
