// Package fusion combines per-modality emotion signals into a single
// confidence score and label.
package fusion

import "math"

// The three recognized modality keys. Anything else in a signal or weight
// map is ignored.
const (
	ModalityVoice  = "voice"
	ModalityVision = "vision"
	ModalityBio    = "bio"
)

const defaultSignal = 0.5

// Default per-modality weights, substituted per key when the caller's weight
// map is empty or misses a modality.
var defaultWeights = map[string]float64{
	ModalityVoice:  0.33,
	ModalityVision: 0.33,
	ModalityBio:    0.34,
}

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

type Result struct {
	Confidence float64 `json:"confidence"`
	Emotion    string  `json:"emotion"`
}

// Fuse computes confidence = Σ weight_m × signal_m over the fixed modality
// keys, rounded to 4 decimals. Missing weights fall back per key to the
// defaults, missing signals to 0.5.
func Fuse(signals map[string]float64, weights map[string]float64) Result {
	score := 0.0
	for _, modality := range []string{ModalityVoice, ModalityVision, ModalityBio} {
		weight, ok := weights[modality]
		if !ok {
			weight = defaultWeights[modality]
		}
		signal, ok := signals[modality]
		if !ok {
			signal = defaultSignal
		}
		score += weight * signal
	}
	confidence := Round4(score)
	return Result{Confidence: confidence, Emotion: labelFor(confidence)}
}

func labelFor(score float64) string {
	switch {
	case score >= 0.6:
		return LabelPositive
	case score >= 0.4:
		return LabelNeutral
	default:
		return LabelNegative
	}
}

// Round4 rounds to 4 decimal places, the precision of every stored metric.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
