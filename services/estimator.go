// ABOUTME: Crack-time estimator for what-if scenario analysis
// ABOUTME: Closed-form median search time plus risk classification per scenario

package services

import (
	"math"

	"github.com/tlawson/cipher-strength-analyzer/config"
	"github.com/tlawson/cipher-strength-analyzer/models"
)

// Estimator computes crack-time estimates against a fixed catalog.
type Estimator struct {
	catalog *config.Catalog
}

// NewEstimator creates an estimator over the given catalog.
func NewEstimator(catalog *config.Catalog) *Estimator {
	return &Estimator{catalog: catalog}
}

// MedianCrackSeconds is the core formula: the attacker searches half the
// (possibly analytically-reduced) keyspace at a constant guess rate. This is
// an order-of-magnitude model, not a cryptographic bound.
func MedianCrackSeconds(effectiveBits int, gps, factor float64) float64 {
	effSpace := math.Exp2(float64(effectiveBits)) / factor
	return 0.5 * effSpace / gps
}

// GuessesPerSecond resolves attacker throughput for a hardware class and
// threat level: base hardware rate scaled by the threat multiplier. No
// interpolation between levels.
func (e *Estimator) GuessesPerSecond(hardware, threat string) (float64, error) {
	rate, err := e.catalog.HardwareRate(hardware)
	if err != nil {
		return 0, err
	}
	mult, err := e.catalog.ThreatMultiplier(threat)
	if err != nil {
		return 0, err
	}
	return rate * mult, nil
}

// SimulateOne computes the full result row for a scenario. It fails with
// ErrAlgorithmNotFound for unknown algorithm names and ErrInvalidArgument for
// unrecognized hardware, threat, or attack type values.
func (e *Estimator) SimulateOne(scn models.Scenario) (models.SimulationRow, error) {
	spec, err := e.catalog.Spec(scn.Algorithm)
	if err != nil {
		return models.SimulationRow{}, err
	}
	bits, err := e.catalog.EffectiveBits(scn.Algorithm)
	if err != nil {
		return models.SimulationRow{}, err
	}
	gps, err := e.GuessesPerSecond(scn.Hardware, scn.Threat)
	if err != nil {
		return models.SimulationRow{}, err
	}
	factor, err := e.catalog.AnalyticalFactor(scn.Algorithm, scn.AttackType)
	if err != nil {
		return models.SimulationRow{}, err
	}

	seconds := MedianCrackSeconds(bits, gps, factor)

	return models.SimulationRow{
		Algorithm:        spec.Name,
		Family:           spec.Family,
		KeyBitsNominal:   spec.KeyBits,
		KeyBitsEffective: bits,
		Hardware:         scn.Hardware,
		Threat:           scn.Threat,
		AttackType:       scn.AttackType,
		GuessesPerSecond: gps,
		AnalyticalFactor: factor,
		MedianSeconds:    seconds,
		MedianHuman:      models.HumanizeSeconds(seconds),
		Risk:             models.Bucketize(seconds),
	}, nil
}

// Recommend produces one estimate per catalog algorithm under fixed attacker
// constraints, using the supplied predictor for the time and risk answer.
// Candidates are sorted strongest-first; MeetsThreshold marks the ones whose
// estimated time is at least minDays (converted to seconds).
func (e *Estimator) Recommend(p Predictor, hardware, threat, attackType string, minDays float64) (models.RecommendationReport, error) {
	if minDays < 0 {
		return models.RecommendationReport{}, wrapInvalid("min days must not be negative, got %g", minDays)
	}
	gps, err := e.GuessesPerSecond(hardware, threat)
	if err != nil {
		return models.RecommendationReport{}, err
	}
	if !models.ValidAttackType(attackType) {
		return models.RecommendationReport{}, wrapInvalid("unknown attack type %q", attackType)
	}

	threshold := minDays * models.SecondsPerDay
	report := models.RecommendationReport{
		Hardware:         hardware,
		Threat:           threat,
		AttackType:       attackType,
		MinDays:          minDays,
		ThresholdSeconds: threshold,
		Predictor:        p.Name(),
	}

	for _, spec := range e.catalog.Algorithms {
		bits, err := e.catalog.EffectiveBits(spec.Name)
		if err != nil {
			return models.RecommendationReport{}, err
		}
		factor, err := e.catalog.AnalyticalFactor(spec.Name, attackType)
		if err != nil {
			return models.RecommendationReport{}, err
		}

		pred := p.Predict(float64(bits), gps, factor)
		seconds := math.Pow(10, pred.Log10Seconds)

		report.Candidates = append(report.Candidates, models.Recommendation{
			Algorithm:        spec.Name,
			Family:           spec.Family,
			KeyBitsEffective: bits,
			EstimatedSeconds: seconds,
			EstimatedHuman:   models.HumanizeSeconds(seconds),
			Risk:             pred.Risk,
			MeetsThreshold:   seconds >= threshold,
		})
	}

	sortRecommendationsDesc(report.Candidates)
	return report, nil
}
