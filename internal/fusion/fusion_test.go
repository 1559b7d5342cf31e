package fusion

import "testing"

func TestFuse(t *testing.T) {
	cases := []struct {
		name           string
		signals        map[string]float64
		weights        map[string]float64
		wantConfidence float64
		wantEmotion    string
	}{
		{
			name:           "empty_weights_partial_signals",
			signals:        map[string]float64{"voice": 0.9},
			weights:        map[string]float64{},
			wantConfidence: 0.632, // 0.33*0.9 + 0.33*0.5 + 0.34*0.5
			wantEmotion:    LabelPositive,
		},
		{
			name:           "all_defaults",
			signals:        map[string]float64{},
			weights:        map[string]float64{},
			wantConfidence: 0.5,
			wantEmotion:    LabelNeutral,
		},
		{
			name:           "explicit_weights",
			signals:        map[string]float64{"voice": 1, "vision": 1, "bio": 1},
			weights:        map[string]float64{"voice": 0.4, "vision": 0.4, "bio": 0.2},
			wantConfidence: 1,
			wantEmotion:    LabelPositive,
		},
		{
			name:           "partial_weights_substituted_per_key",
			signals:        map[string]float64{"voice": 0, "vision": 0, "bio": 0},
			weights:        map[string]float64{"voice": 0.5},
			wantConfidence: 0,
			wantEmotion:    LabelNegative,
		},
		{
			name:           "negative_boundary",
			signals:        map[string]float64{"voice": 0.2, "vision": 0.2, "bio": 0.2},
			weights:        map[string]float64{"voice": 1, "vision": 0.5, "bio": 0.5},
			wantConfidence: 0.4,
			wantEmotion:    LabelNeutral,
		},
		{
			name:           "unrecognized_keys_ignored",
			signals:        map[string]float64{"voice": 0.9, "gaze": 99},
			weights:        map[string]float64{"gaze": 10},
			wantConfidence: 0.632,
			wantEmotion:    LabelPositive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Fuse(tc.signals, tc.weights)
			if got.Confidence != tc.wantConfidence {
				t.Fatalf("Fuse confidence=%v, want %v", got.Confidence, tc.wantConfidence)
			}
			if got.Emotion != tc.wantEmotion {
				t.Fatalf("Fuse emotion=%q, want %q", got.Emotion, tc.wantEmotion)
			}
		})
	}
}

func TestRound4(t *testing.T) {
	if got := Round4(0.65251); got != 0.6525 {
		t.Fatalf("Round4=%v, want 0.6525", got)
	}
	if got := Round4(0.99995); got != 1 {
		t.Fatalf("Round4=%v, want 1", got)
	}
}
