// ABOUTME: Predictor contract and the always-available analytic fallback
// ABOUTME: Both backends answer (bits, gps, factor) with log10 seconds and a risk label

package services

import (
	"math"

	"github.com/tlawson/cipher-strength-analyzer/models"
)

// logEpsilon keeps log10 defined when an estimate collapses to zero.
const logEpsilon = 1e-9

// Prediction is a predictor's answer for a single query point.
type Prediction struct {
	Log10Seconds float64 `json:"log10_seconds"`
	Risk         string  `json:"risk"`
}

// Predictor answers single-point strength queries. Implementations share the
// exact input/output shape so callers never care which backend answered:
// the analytic closed form or a model trained on simulated rows.
type Predictor interface {
	// Predict takes effective security bits, guesses per second, and the
	// analytical keyspace divisor.
	Predict(effectiveBits, gps, analyticalFactor float64) Prediction
	// Name identifies the backend in reports.
	Name() string
}

// AnalyticPredictor computes the closed-form estimate directly. It needs no
// training and is the fallback whenever the learned backend is unavailable.
type AnalyticPredictor struct{}

// NewAnalyticPredictor creates the analytic fallback predictor.
func NewAnalyticPredictor() *AnalyticPredictor {
	return &AnalyticPredictor{}
}

// Predict evaluates the estimator formula and buckets the result. Factors
// below 1 are clamped: a shortcut can only shrink the keyspace.
func (p *AnalyticPredictor) Predict(effectiveBits, gps, analyticalFactor float64) Prediction {
	factor := math.Max(1.0, analyticalFactor)
	seconds := 0.5 * math.Exp2(effectiveBits) / (gps * factor)
	return Prediction{
		Log10Seconds: math.Log10(seconds + logEpsilon),
		Risk:         models.Bucketize(seconds),
	}
}

// Name implements Predictor.
func (p *AnalyticPredictor) Name() string {
	return "analytic"
}
