// ABOUTME: YAML catalog file loader for alternate attacker models
// ABOUTME: Lets tests and deployments substitute the built-in tables

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalogFile reads a catalog from a YAML file and validates it. Sections
// omitted from the file fall back to the built-in defaults, so a file can
// override just the hardware rates or just the algorithm list.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	cat := Default()
	if len(file.Algorithms) > 0 {
		cat.Algorithms = file.Algorithms
	}
	if file.EffectiveOverrides != nil {
		cat.EffectiveOverrides = file.EffectiveOverrides
	}
	if file.HardwareRates != nil {
		cat.HardwareRates = file.HardwareRates
	}
	if file.ThreatMultipliers != nil {
		cat.ThreatMultipliers = file.ThreatMultipliers
	}
	if file.AnalyticalShortcuts != nil {
		cat.AnalyticalShortcuts = file.AnalyticalShortcuts
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return cat, nil
}
