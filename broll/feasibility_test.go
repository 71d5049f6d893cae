package broll

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAssess(t *testing.T) {
	tests := []struct {
		name           string
		reply          string
		err            error
		wantFeasible   bool
		wantConfidence float64
	}{
		{
			name:           "Feasible scene",
			reply:          `{"feasible": true, "confidence": 0.9, "conversion_potential": 0.8}`,
			wantFeasible:   true,
			wantConfidence: 0.9,
		},
		{
			name:           "Infeasible scene",
			reply:          `{"feasible": false, "confidence": 0.95, "conversion_potential": 0.2}`,
			wantFeasible:   false,
			wantConfidence: 0.95,
		},
		{
			name:           "Reply wrapped in prose",
			reply:          "Here is my judgment:\n{\"feasible\": true, \"confidence\": 0.6, \"conversion_potential\": 0.5}\nHope that helps!",
			wantFeasible:   true,
			wantConfidence: 0.6,
		},
		{
			name:           "Confidence above 1 is clamped",
			reply:          `{"feasible": true, "confidence": 1.8, "conversion_potential": 0.5}`,
			wantFeasible:   true,
			wantConfidence: 1.0,
		},
		{
			name:           "Negative confidence is clamped",
			reply:          `{"feasible": true, "confidence": -0.3, "conversion_potential": 0.5}`,
			wantFeasible:   true,
			wantConfidence: 0.0,
		},
		{
			name:           "Service error falls open",
			err:            errors.New("deadline exceeded"),
			wantFeasible:   true,
			wantConfidence: 0.7,
		},
		{
			name:           "Non-JSON reply falls open",
			reply:          "this scene looks fine to me",
			wantFeasible:   true,
			wantConfidence: 0.7,
		},
		{
			name:           "Broken JSON falls open",
			reply:          `{"feasible": true, "confidence":`,
			wantFeasible:   true,
			wantConfidence: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{reply: tt.reply, err: tt.err}
			assessor := NewAssessor(gen, time.Second)

			feasible, confidence := assessor.Assess(context.Background(), "Person looking frustrated at phone")
			if feasible != tt.wantFeasible {
				t.Errorf("feasible = %t, want %t", feasible, tt.wantFeasible)
			}
			if confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", confidence, tt.wantConfidence)
			}
			if confidence < 0 || confidence > 1 {
				t.Errorf("confidence %v outside [0,1]", confidence)
			}
		})
	}
}
