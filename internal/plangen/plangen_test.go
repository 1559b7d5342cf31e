package plangen

import (
	"reflect"
	"testing"

	"github.com/mindbridge/assessment-backend/internal/types"
)

func TestGenerateStressBoundaries(t *testing.T) {
	cases := []struct {
		name string
		hrv  float64
		want types.StressLevel
	}{
		{name: "hrv_49_high", hrv: 49, want: types.StressHigh},
		{name: "hrv_50_medium_inclusive", hrv: 50, want: types.StressMedium},
		{name: "hrv_79_medium", hrv: 79, want: types.StressMedium},
		{name: "hrv_80_low_inclusive", hrv: 80, want: types.StressLow},
		{name: "hrv_120_low", hrv: 120, want: types.StressLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Generate(map[string]float64{"hrv": tc.hrv})
			if got.StressLevel != tc.want {
				t.Fatalf("Generate(hrv=%v) stress=%v, want %v", tc.hrv, got.StressLevel, tc.want)
			}
		})
	}
}

func TestGenerateDefaultsPerKey(t *testing.T) {
	got := Generate(map[string]float64{"mood": 0.5})

	if got.EmotionScore != 50 {
		t.Fatalf("emotion score=%v, want 50", got.EmotionScore)
	}
	// hrv default 65 -> medium
	if got.StressLevel != types.StressMedium {
		t.Fatalf("stress=%v, want medium", got.StressLevel)
	}
	wantProfile := map[string]float64{
		"openness":          0.68,
		"conscientiousness": 0.62,
		"extraversion":      0.55,
		"agreeableness":     0.71,
		"neuroticism":       0.34,
	}
	if !reflect.DeepEqual(got.PersonalityProfile, wantProfile) {
		t.Fatalf("profile=%v, want %v", got.PersonalityProfile, wantProfile)
	}
}

func TestGenerateEmptySnapshot(t *testing.T) {
	got := Generate(nil)
	if got.EmotionScore != 72 {
		t.Fatalf("emotion score=%v, want 72 (mood default 0.72)", got.EmotionScore)
	}
	if len(got.Recommendations) != 3 {
		t.Fatalf("recommendations len=%d, want 3", len(got.Recommendations))
	}
	if got.Summary == "" || got.InterventionPlan == "" {
		t.Fatal("summary and intervention plan must be populated")
	}
}

func TestGenerateIdempotent(t *testing.T) {
	snapshot := map[string]float64{
		"mood":     0.61,
		"hrv":      44,
		"openness": 0.9,
	}
	first := Generate(snapshot)
	second := Generate(snapshot)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Generate is not idempotent: %+v vs %+v", first, second)
	}
	if first.StressLevel != types.StressHigh {
		t.Fatalf("stress=%v, want high for hrv 44", first.StressLevel)
	}
	if first.EmotionScore != 61 {
		t.Fatalf("emotion score=%v, want 61", first.EmotionScore)
	}
}
