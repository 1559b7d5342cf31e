// Package plangen derives an emotion score, stress tier, personality profile
// and intervention plan from a biosignal snapshot. Generation is
// deterministic: the same snapshot always yields byte-identical fields.
package plangen

import (
	"fmt"
	"math"

	"github.com/mindbridge/assessment-backend/internal/types"
)

// Signals is the typed view of a raw snapshot. Unrecognized snapshot keys are
// ignored; missing keys take the documented per-key default.
type Signals struct {
	Mood              float64
	HRV               float64
	Openness          float64
	Conscientiousness float64
	Extraversion      float64
	Agreeableness     float64
	Neuroticism       float64
}

var signalDefaults = Signals{
	Mood:              0.72,
	HRV:               65,
	Openness:          0.68,
	Conscientiousness: 0.62,
	Extraversion:      0.55,
	Agreeableness:     0.71,
	Neuroticism:       0.34,
}

// ParseSignals substitutes defaults per key, not as an all-or-nothing
// fallback: a snapshot carrying only "mood" still gets default traits.
func ParseSignals(snapshot map[string]float64) Signals {
	s := signalDefaults
	if v, ok := snapshot["mood"]; ok {
		s.Mood = v
	}
	if v, ok := snapshot["hrv"]; ok {
		s.HRV = v
	}
	if v, ok := snapshot["openness"]; ok {
		s.Openness = v
	}
	if v, ok := snapshot["conscientiousness"]; ok {
		s.Conscientiousness = v
	}
	if v, ok := snapshot["extraversion"]; ok {
		s.Extraversion = v
	}
	if v, ok := snapshot["agreeableness"]; ok {
		s.Agreeableness = v
	}
	if v, ok := snapshot["neuroticism"]; ok {
		s.Neuroticism = v
	}
	return s
}

type Plan struct {
	EmotionScore       float64
	StressLevel        types.StressLevel
	PersonalityProfile map[string]float64
	Summary            string
	Recommendations    []string
	InterventionPlan   string
}

// Recommendations and the intervention narrative are fixed templates, not
// derived from input. Known simplification until a real planning backend
// exists.
var fixedRecommendations = []string{
	"Practice 10 minutes of breathing meditation daily",
	"Schedule 2 art-therapy sessions to support emotional expression",
	"Keep a regular sleep schedule with light exercise",
}

const fixedInterventionPlan = "Week 1 focuses on emotional release, week 2 introduces social support; keep tracking HRV and hold it above 70."

// Generate computes the report fields for a snapshot.
func Generate(snapshot map[string]float64) Plan {
	s := ParseSignals(snapshot)

	score := math.Round(s.Mood*100*100) / 100

	var stress types.StressLevel
	switch {
	case s.HRV < 50:
		stress = types.StressHigh
	case s.HRV < 80:
		stress = types.StressMedium
	default:
		stress = types.StressLow
	}

	return Plan{
		EmotionScore: score,
		StressLevel:  stress,
		PersonalityProfile: map[string]float64{
			"openness":          s.Openness,
			"conscientiousness": s.Conscientiousness,
			"extraversion":      s.Extraversion,
			"agreeableness":     s.Agreeableness,
			"neuroticism":       s.Neuroticism,
		},
		Summary: fmt.Sprintf(
			"Detected an emotion index of %.0f with %s stress; mindfulness training combined with art therapy is recommended.",
			score, stress.Label(),
		),
		Recommendations:  fixedRecommendations,
		InterventionPlan: fixedInterventionPlan,
	}
}
