package models

import (
	"fmt"
	"strings"
)

// MinSceneDescriptionLength keeps descriptions substantial enough to feed
// a video generation prompt.
const MinSceneDescriptionLength = 10

// SceneBeat is one discrete visual moment extracted from an ad script.
// Beats are produced by parsing the generative service's reply; the order
// of a decomposition is narrative order and is never re-sorted.
type SceneBeat struct {
	Timestamp        string `json:"timestamp"`
	SceneDescription string `json:"scene_description"`
	Emotion          string `json:"emotion"`
	ScriptExcerpt    string `json:"script_excerpt"`
}

// Validate checks the structural contract for a beat. Callers skip and log
// invalid beats instead of failing the whole batch.
func (b *SceneBeat) Validate() error {
	if b.Timestamp == "" || !strings.Contains(b.Timestamp, ":") {
		return fmt.Errorf("timestamp %q must be in MM:SS format", b.Timestamp)
	}
	if len(strings.TrimSpace(b.SceneDescription)) < MinSceneDescriptionLength {
		return fmt.Errorf("scene description must be at least %d characters", MinSceneDescriptionLength)
	}
	if strings.TrimSpace(b.Emotion) == "" {
		return fmt.Errorf("emotion is required")
	}
	if strings.TrimSpace(b.ScriptExcerpt) == "" {
		return fmt.Errorf("script excerpt is required")
	}
	return nil
}
