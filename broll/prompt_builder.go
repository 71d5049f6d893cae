package broll

import (
	"strings"

	"github.com/dakotahermes/brollbot22/internal/models"
)

const decompositionBasePrompt = `You are a B-roll specialist for high-converting social media ads.

Create short, simple scene descriptions that:
- Grab attention in first 3 seconds
- Support direct response marketing goals
- Work well for AI video generation (Runway, Pika, Kling)
- Are optimized for mobile viewing

For each moment, output:
- A timestamp (every 3-5 seconds)
- A SIMPLE, clear scene description (under 15 words)
- The marketing emotion it triggers (frustrated, excited, happy, amazed, etc.)
- The script excerpt it supports

KEY SCENE TYPES:
- Problem moments (frustration, struggle)
- Solution reveals (product in action)
- Transformation (before/after)
- Social proof (happy customers)
- Urgency (timers, scarcity)

KEEP DESCRIPTIONS SIMPLE:
GOOD: "Person frustrated with phone"
GOOD: "Happy customer holding product"
GOOD: "Before and after comparison"
BAD: "Close-up of person's disillusioned face as they futilely make cold calls"

Respond only in raw JSON format:

[
  {
    "timestamp": "00:00",
    "scene_description": "Person looking frustrated at phone",
    "emotion": "frustrated",
    "script_excerpt": "Tired of cold calling?"
  }
]`

const decompositionExamples = `

EXAMPLES OF GOOD SCENE DESCRIPTIONS:
- "Person frustrated with laptop"
- "Product reveal close-up"
- "Happy customer testimonial"
- "Before and after split screen"
- "Countdown timer on phone"
- "Money being saved"
- "Problem being solved"`

var toneGuidance = map[models.Tone]string{
	models.ToneHook:           "Create simple attention-grabbing moments",
	models.ToneProblem:        "Show clear frustration or struggle",
	models.ToneSolution:       "Display product solving the problem",
	models.ToneSocialProof:    "Show happy customers or testimonials",
	models.ToneUrgency:        "Include countdown or scarcity elements",
	models.ToneTransformation: "Before and after moments",
	models.ToneCuriosity:      "Partial reveals or mysterious elements",
}

var formatGuidance = map[models.Format]string{
	models.FormatUGC:         "Authentic, user-generated style footage",
	models.FormatTalkingHead: "Speaker with engaging gestures",
	models.FormatTestimonial: "Real customer reactions and success stories",
}

// BuildDecompositionPrompt assembles the system instruction for the script
// decomposition call. Unknown tone or format values simply add no guidance.
// Pure and deterministic; no I/O.
func BuildDecompositionPrompt(tone models.Tone, format models.Format) string {
	var sb strings.Builder
	sb.WriteString(decompositionBasePrompt)

	if guide, ok := toneGuidance[tone]; ok {
		sb.WriteString("\n\nTONE STRATEGY: ")
		sb.WriteString(guide)
	}
	if guide, ok := formatGuidance[format]; ok {
		sb.WriteString("\nFORMAT STRATEGY: ")
		sb.WriteString(guide)
	}

	sb.WriteString(decompositionExamples)
	return sb.String()
}
