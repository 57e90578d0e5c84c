// ABOUTME: Root command for the cipher-strength CLI
// ABOUTME: Handles global flags and catalog selection

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tlawson/cipher-strength-analyzer/config"
)

var (
	jsonOutput  bool
	catalogPath string
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "cipher-strength",
	Short: "Brute-force crack-time estimation for cryptographic algorithms",
	Long: `cipher-strength estimates how long configurable attackers need to
brute-force cryptographic algorithms, classifies the results into risk
buckets, and recommends algorithms that meet a minimum-strength bar.

All analytical shortcuts are hard-coded multipliers, not derived attacks:
this is a scenario simulator, not a cryptanalysis engine.

Environment Variables:
  MODEL_DIR         Directory for trained model artifacts (default: models-out)
  LEARNING_ENABLED  Enable the learned predictor backend (default: true)
  SCENARIO_COUNT    Default simulation batch size (default: 200)
  SEED              Default RNG seed (default: 42)
  LOG_LEVEL         debug, info, warn, error (default: warn)
  LOG_FORMAT        text, json (default: text)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a YAML catalog file (overrides built-in tables)")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// LoadCatalog returns the catalog from --catalog when set, else the built-in
// default.
func LoadCatalog() (*config.Catalog, error) {
	if catalogPath != "" {
		return config.LoadCatalogFile(catalogPath)
	}
	return config.Default(), nil
}
