// ABOUTME: Training command for the optional learned predictor
// ABOUTME: Fits on simulated ground truth and reports fit quality

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tlawson/cipher-strength-analyzer/config"
	"github.com/tlawson/cipher-strength-analyzer/models"
	"github.com/tlawson/cipher-strength-analyzer/services"
)

var (
	trainCount    int
	trainSeed     int64
	trainSave     bool
	trainModelDir string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the learned predictor on simulated scenarios",
	Long: `Simulate a training batch, fit the time regressor and risk classifier on
it, and report fit quality against the analytic ground truth.

When the learning backend is unavailable (disabled, or the batch is too
small) the command reports the analytic fallback and exits cleanly.

Example:
  cipher-strength train --scenarios 1000 --seed 42 --save --model-dir models-out`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("seed") {
			trainSeed = settings.Seed
		}
		if !cmd.Flags().Changed("model-dir") {
			trainModelDir = settings.ModelDir
		}

		catalog, err := LoadCatalog()
		if err != nil {
			return err
		}

		return runTrain(ctx, os.Stdout, catalog, trainCount, trainSeed, settings.LearningEnabled, trainSave, trainModelDir, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().IntVar(&trainCount, "scenarios", 1000, "Training batch size")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 42, "RNG seed for the training batch")
	trainCmd.Flags().BoolVar(&trainSave, "save", false, "Persist model artifacts after training")
	trainCmd.Flags().StringVar(&trainModelDir, "model-dir", "models-out", "Directory for model artifacts")
}

// trainResult is the machine-readable training summary
type trainResult struct {
	Scenarios          int     `json:"scenarios"`
	Seed               int64   `json:"seed"`
	Trained            bool    `json:"trained"`
	Fallback           string  `json:"fallback,omitempty"`
	RegressorMAE       float64 `json:"regressor_mae,omitempty"`
	ClassifierAccuracy float64 `json:"classifier_accuracy,omitempty"`
	SavedTo            string  `json:"saved_to,omitempty"`
}

// runTrain simulates the batch, fits the predictor, and writes the summary
func runTrain(ctx context.Context, w io.Writer, catalog *config.Catalog, count int, seed int64, learningEnabled, save bool, modelDir string, jsonOut bool) error {
	svc := services.NewSimulationService(catalog)

	report, err := svc.GenerateAndSimulate(ctx, count, seed)
	if err != nil {
		return err
	}

	result := trainResult{Scenarios: report.Count, Seed: seed}

	predictor, err := services.TrainPredictor(report.Rows, learningEnabled)
	switch {
	case errors.Is(err, models.ErrBackendUnavailable):
		slog.Warn("Learning backend unavailable, analytic fallback remains active", "reason", err)
		result.Fallback = err.Error()
	case err != nil:
		return err
	default:
		result.Trained = true
		result.RegressorMAE = predictor.RegressorMAE(report.Rows)
		result.ClassifierAccuracy = predictor.ClassifierAccuracy(report.Rows)

		if save {
			if err := services.SaveModels(modelDir, predictor); err != nil {
				return err
			}
			result.SavedTo = modelDir
			slog.Info("Model artifacts saved", "dir", modelDir)
		}
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if !result.Trained {
		fmt.Fprintf(w, "Learning backend unavailable: %s\n", result.Fallback)
		fmt.Fprintln(w, "The analytic predictor will answer recommendation queries.")
		return nil
	}

	fmt.Fprintf(w, "Trained on %d scenarios (seed %d)\n", result.Scenarios, result.Seed)
	fmt.Fprintf(w, "  Regressor MAE on log10(seconds): %.3f\n", result.RegressorMAE)
	fmt.Fprintf(w, "  Classifier accuracy: %.3f\n", result.ClassifierAccuracy)
	if result.SavedTo != "" {
		fmt.Fprintf(w, "  Artifacts saved to %s\n", result.SavedTo)
	}
	return nil
}
