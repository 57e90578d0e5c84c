// ABOUTME: Sentinel errors shared across the analyzer
// ABOUTME: Callers match with errors.Is; wrapping adds context

package models

import "errors"

var (
	// ErrAlgorithmNotFound is returned when a scenario or request references
	// an algorithm name absent from the catalog.
	ErrAlgorithmNotFound = errors.New("algorithm not found")

	// ErrInvalidArgument is returned when a hardware class, threat level,
	// attack type, or numeric parameter is outside its recognized range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrBackendUnavailable is returned when the learned predictor cannot be
	// trained or loaded. It is not fatal: callers fall back to the analytic
	// predictor.
	ErrBackendUnavailable = errors.New("learning backend unavailable")
)
