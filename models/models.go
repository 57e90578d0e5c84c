// ABOUTME: Data models for crack-time scenarios and simulation results
// ABOUTME: JSON-serializable structures shared by services and CLI output

package models

import "time"

// Algorithm families
const (
	FamilySymmetric  = "symmetric"
	FamilyAsymmetric = "asymmetric"
)

// Attack types
const (
	AttackBrute      = "brute"
	AttackAnalytical = "analytical"
)

// AttackTypes lists the recognized attack types in canonical order.
func AttackTypes() []string {
	return []string{AttackBrute, AttackAnalytical}
}

// ValidAttackType reports whether s is a recognized attack type.
func ValidAttackType(s string) bool {
	return s == AttackBrute || s == AttackAnalytical
}

// Scenario is a single sampled point of the input space: which algorithm is
// attacked, with what hardware, under what threat level, using which attack
// type. Scenarios have no identity beyond their field values.
type Scenario struct {
	Algorithm  string `json:"algorithm"`
	Hardware   string `json:"hardware"`
	Threat     string `json:"threat"`
	AttackType string `json:"attack_type"`
}

// SimulationRow is the computed result for one scenario. Immutable once
// produced by the estimator.
type SimulationRow struct {
	Algorithm        string  `json:"algorithm"`
	Family           string  `json:"family"`
	KeyBitsNominal   int     `json:"key_bits_nominal"`
	KeyBitsEffective int     `json:"key_bits_effective"`
	Hardware         string  `json:"hardware"`
	Threat           string  `json:"threat"`
	AttackType       string  `json:"attack_type"`
	GuessesPerSecond float64 `json:"guesses_per_second"`
	AnalyticalFactor float64 `json:"analytical_factor"`
	MedianSeconds    float64 `json:"median_time_seconds"`
	MedianHuman      string  `json:"median_time_human"`
	Risk             string  `json:"risk"`
}

// SimulationReport wraps a batch of rows with run metadata.
type SimulationReport struct {
	RunID       string          `json:"run_id"`
	Seed        int64           `json:"seed"`
	Count       int             `json:"count"`
	GeneratedAt time.Time       `json:"generated_at"`
	Rows        []SimulationRow `json:"rows"`
}

// Recommendation is a per-algorithm strength estimate under fixed attacker
// constraints, plus whether it clears the caller's minimum-time bar.
type Recommendation struct {
	Algorithm        string  `json:"algorithm"`
	Family           string  `json:"family"`
	KeyBitsEffective int     `json:"key_bits_effective"`
	EstimatedSeconds float64 `json:"estimated_seconds"`
	EstimatedHuman   string  `json:"estimated_human"`
	Risk             string  `json:"risk"`
	MeetsThreshold   bool    `json:"meets_threshold"`
}

// RecommendationReport wraps per-algorithm estimates with the constraints
// they were computed under.
type RecommendationReport struct {
	Hardware         string           `json:"hardware"`
	Threat           string           `json:"threat"`
	AttackType       string           `json:"attack_type"`
	MinDays          float64          `json:"min_days"`
	ThresholdSeconds float64          `json:"threshold_seconds"`
	Predictor        string           `json:"predictor"`
	Candidates       []Recommendation `json:"candidates"`
}
