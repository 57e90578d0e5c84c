// ABOUTME: Persistence of trained predictor artifacts as JSON blobs
// ABOUTME: Two files per model dir: time regressor and risk classifier

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tlawson/cipher-strength-analyzer/models"
)

const (
	regressorFile  = "time_regressor.json"
	classifierFile = "risk_classifier.json"
)

type regressorArtifact struct {
	Coefficients []float64 `json:"coefficients"`
}

type classifierArtifact struct {
	Centroids map[string][]float64 `json:"centroids"`
}

// SaveModels writes the trained predictor to dir as two JSON artifacts.
// Write failures surface immediately; an unwritable model dir must never
// fail silently.
func SaveModels(dir string, p *LearnedPredictor) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, regressorFile), regressorArtifact{Coefficients: p.Coefficients}); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, classifierFile), classifierArtifact{Centroids: p.Centroids})
}

// LoadModels reads a previously saved predictor from dir. Missing artifacts
// report the backend as unavailable so callers fall back to the analytic
// predictor; corrupt artifacts are hard errors.
func LoadModels(dir string) (*LearnedPredictor, error) {
	var reg regressorArtifact
	if err := readJSON(filepath.Join(dir, regressorFile), &reg); err != nil {
		return nil, err
	}
	var cls classifierArtifact
	if err := readJSON(filepath.Join(dir, classifierFile), &cls); err != nil {
		return nil, err
	}
	if len(reg.Coefficients) == 0 || len(cls.Centroids) == 0 {
		return nil, fmt.Errorf("%w: empty model artifacts in %s", models.ErrBackendUnavailable, dir)
	}
	return &LearnedPredictor{
		Coefficients: reg.Coefficients,
		Centroids:    cls.Centroids,
	}, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: no model artifact at %s", models.ErrBackendUnavailable, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
