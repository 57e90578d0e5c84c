// ABOUTME: Runtime settings loader for the analyzer CLI
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds process-level configuration that is not part of the
// attacker-model catalog.
type Settings struct {
	// ModelDir is where trained predictor artifacts are written and loaded.
	ModelDir string
	// LearningEnabled gates the learned predictor; when false every training
	// request reports the backend as unavailable.
	LearningEnabled bool
	// ScenarioCount is the default batch size for simulate/train runs.
	ScenarioCount int
	// Seed is the default RNG seed for scenario generation.
	Seed int64
}

// LoadSettings reads settings from the environment, honoring a .env file in
// the working directory when present.
func LoadSettings() (*Settings, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	s := &Settings{
		ModelDir:        getEnv("MODEL_DIR", "models-out"),
		LearningEnabled: getEnvBool("LEARNING_ENABLED", true),
		ScenarioCount:   getEnvInt("SCENARIO_COUNT", 200),
		Seed:            getEnvInt64("SEED", 42),
	}

	if s.ScenarioCount < 0 {
		return nil, fmt.Errorf("SCENARIO_COUNT must not be negative, got %d", s.ScenarioCount)
	}
	if s.ModelDir == "" {
		return nil, fmt.Errorf("MODEL_DIR must not be empty")
	}
	return s, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
