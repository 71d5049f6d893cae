package models

import (
	"fmt"
	"strings"
)

// Tone identifies the direct-response marketing angle the B-roll should support.
type Tone string

const (
	ToneHook           Tone = "hook"
	ToneProblem        Tone = "problem"
	ToneSolution       Tone = "solution"
	ToneSocialProof    Tone = "social_proof"
	ToneUrgency        Tone = "urgency"
	ToneTransformation Tone = "transformation"
	ToneCuriosity      Tone = "curiosity"
)

// Format identifies the ad format style the footage should match.
type Format string

const (
	FormatUGC         Format = "UGC"
	FormatTalkingHead Format = "talking_head"
	FormatTestimonial Format = "testimonial"
)

// Default script length bounds, used when the caller passes zero values.
const (
	DefaultMinScriptLength = 10
	DefaultMaxScriptLength = 5000
)

var validTones = map[Tone]bool{
	ToneHook:           true,
	ToneProblem:        true,
	ToneSolution:       true,
	ToneSocialProof:    true,
	ToneUrgency:        true,
	ToneTransformation: true,
	ToneCuriosity:      true,
}

var validFormats = map[Format]bool{
	FormatUGC:         true,
	FormatTalkingHead: true,
	FormatTestimonial: true,
}

// Tones lists the accepted tone values in a stable order.
func Tones() []Tone {
	return []Tone{ToneHook, ToneProblem, ToneSolution, ToneSocialProof,
		ToneUrgency, ToneTransformation, ToneCuriosity}
}

// Formats lists the accepted format values in a stable order.
func Formats() []Format {
	return []Format{FormatUGC, FormatTalkingHead, FormatTestimonial}
}

// InputValidationError reports a rejected ScriptInput. It is returned
// synchronously at construction and is never retried automatically.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ScriptInput is a validated ad script request. Construct via NewScriptInput;
// the struct is never mutated afterwards.
type ScriptInput struct {
	Script string
	Tone   Tone
	Format Format
}

// NewScriptInput validates and builds a ScriptInput using the default
// script length bounds.
func NewScriptInput(script string, tone Tone, format Format) (*ScriptInput, error) {
	return NewScriptInputWithBounds(script, tone, format, DefaultMinScriptLength, DefaultMaxScriptLength)
}

// NewScriptInputWithBounds validates and builds a ScriptInput with
// caller-supplied script length bounds. Zero bounds fall back to defaults.
func NewScriptInputWithBounds(script string, tone Tone, format Format, minLen, maxLen int) (*ScriptInput, error) {
	if minLen <= 0 {
		minLen = DefaultMinScriptLength
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxScriptLength
	}

	trimmed := strings.TrimSpace(script)
	if trimmed == "" {
		return nil, &InputValidationError{Field: "script", Reason: "script cannot be empty"}
	}
	if len(trimmed) < minLen {
		return nil, &InputValidationError{Field: "script", Reason: fmt.Sprintf("script must be at least %d characters long", minLen)}
	}
	if len(trimmed) > maxLen {
		return nil, &InputValidationError{Field: "script", Reason: fmt.Sprintf("script must be less than %d characters long", maxLen)}
	}
	if !validTones[tone] {
		return nil, &InputValidationError{Field: "tone", Reason: fmt.Sprintf("unknown tone %q", tone)}
	}
	if !validFormats[format] {
		return nil, &InputValidationError{Field: "format", Reason: fmt.Sprintf("unknown format %q", format)}
	}

	return &ScriptInput{Script: trimmed, Tone: tone, Format: format}, nil
}
