// ABOUTME: Recommendation command with a minimum-strength gate
// ABOUTME: Exit codes let CI pipelines enforce an algorithm policy

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlawson/cipher-strength-analyzer/config"
	"github.com/tlawson/cipher-strength-analyzer/internal/render"
	"github.com/tlawson/cipher-strength-analyzer/models"
	"github.com/tlawson/cipher-strength-analyzer/services"
)

var (
	recMinDays  float64
	recHardware string
	recThreat   string
	recAttack   string
	recUseModel bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend algorithms meeting a minimum crack-time bar",
	Long: `Estimate the crack time of every catalog algorithm under fixed attacker
constraints and report which ones meet the minimum-time threshold.

Exit codes:
  0 - At least one algorithm meets the threshold
  1 - No algorithm meets the threshold
  2 - Error (invalid input, unknown catalog entries)

Example:
  cipher-strength recommend --min-days 365 --hardware GPU --threat High --attack analytical`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runRecommend(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().Float64Var(&recMinDays, "min-days", 365, "Minimum estimated crack time in days")
	recommendCmd.Flags().StringVar(&recHardware, "hardware", "GPU", "Attacker hardware class (CPU, GPU, CLUSTER)")
	recommendCmd.Flags().StringVar(&recThreat, "threat", "Medium", "Threat level (Low, Medium, High)")
	recommendCmd.Flags().StringVar(&recAttack, "attack", models.AttackBrute, "Attack type (brute, analytical)")
	recommendCmd.Flags().BoolVar(&recUseModel, "use-model", false, "Answer with persisted learned models when available")
}

// runRecommend executes the recommendation sweep and returns the exit code
func runRecommend(w io.Writer) int {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	catalog, err := LoadCatalog()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	predictor := selectPredictor(settings, recUseModel)
	estimator := services.NewEstimator(catalog)

	report, err := estimator.Recommend(predictor, recHardware, recThreat, recAttack, recMinDays)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	} else {
		fmt.Fprintln(w, render.RecommendationReport(report))
	}

	for _, rec := range report.Candidates {
		if rec.MeetsThreshold {
			return 0
		}
	}
	return 1
}

// selectPredictor picks the learned backend when requested and loadable,
// falling back to the analytic predictor otherwise.
func selectPredictor(settings *config.Settings, useModel bool) services.Predictor {
	if !useModel {
		return services.NewAnalyticPredictor()
	}
	learned, err := services.LoadModels(settings.ModelDir)
	if err != nil {
		if errors.Is(err, models.ErrBackendUnavailable) {
			slog.Warn("No trained models found, using analytic predictor", "dir", settings.ModelDir)
		} else {
			slog.Error("Failed to load trained models, using analytic predictor", "error", err)
		}
		return services.NewAnalyticPredictor()
	}
	return learned
}
