package models

import "testing"

func TestSceneBeatValidate(t *testing.T) {
	valid := SceneBeat{
		Timestamp:        "00:05",
		SceneDescription: "Person looking frustrated at phone",
		Emotion:          "frustrated",
		ScriptExcerpt:    "Tired of cold calling?",
	}

	tests := []struct {
		name    string
		mutate  func(b *SceneBeat)
		wantErr bool
	}{
		{
			name:   "Valid beat",
			mutate: func(b *SceneBeat) {},
		},
		{
			name:    "Missing timestamp",
			mutate:  func(b *SceneBeat) { b.Timestamp = "" },
			wantErr: true,
		},
		{
			name:    "Timestamp without separator",
			mutate:  func(b *SceneBeat) { b.Timestamp = "0005" },
			wantErr: true,
		},
		{
			name:    "Description too short",
			mutate:  func(b *SceneBeat) { b.SceneDescription = "phone" },
			wantErr: true,
		},
		{
			name:    "Missing emotion",
			mutate:  func(b *SceneBeat) { b.Emotion = " " },
			wantErr: true,
		},
		{
			name:    "Missing script excerpt",
			mutate:  func(b *SceneBeat) { b.ScriptExcerpt = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beat := valid
			tt.mutate(&beat)
			err := beat.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBrollPromptValidate(t *testing.T) {
	score := 0.8
	valid := BrollPrompt{
		Prompt:            "Person looking frustrated at phone, frustrated, cinematic",
		Duration:          3,
		AspectRatio:       "9:16",
		InsertAfter:       "Tired of cold calling?",
		SearchInstruction: "Search for: Person looking frustrated at phone showing frustrated emotion",
		ConfidenceScore:   &score,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tooLong := valid
	tooLong.Duration = 31
	if err := tooLong.Validate(); err == nil {
		t.Error("expected error for duration over 30 seconds")
	}

	tooShort := valid
	tooShort.Duration = 0
	if err := tooShort.Validate(); err == nil {
		t.Error("expected error for zero duration")
	}

	badScore := valid
	over := 1.2
	badScore.ConfidenceScore = &over
	if err := badScore.Validate(); err == nil {
		t.Error("expected error for confidence score above 1")
	}

	noScore := valid
	noScore.ConfidenceScore = nil
	if err := noScore.Validate(); err != nil {
		t.Errorf("confidence score should be optional: %v", err)
	}
}
