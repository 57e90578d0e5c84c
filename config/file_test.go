package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	return path
}

func TestLoadCatalogFileFullOverride(t *testing.T) {
	path := writeCatalogFile(t, `
algorithms:
  - name: TOY-32
    family: symmetric
    key_bits: 32
    block_bits: 32
    analytical_reduction: 1.0
effective_overrides:
  TOY-32: 30
hardware_rates:
  LAPTOP: 1000000
threat_multipliers:
  Default: 1.0
analytical_shortcuts:
  TOY-32: 4.0
`)

	cat, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile error: %v", err)
	}

	bits, err := cat.EffectiveBits("TOY-32")
	if err != nil {
		t.Fatalf("EffectiveBits(TOY-32) error: %v", err)
	}
	if bits != 30 {
		t.Errorf("Expected effective bits 30, got %d", bits)
	}

	if _, err := cat.Spec("AES-128"); err == nil {
		t.Errorf("Expected built-in algorithms to be replaced, but AES-128 resolved")
	}
}

func TestLoadCatalogFilePartialFallsBackToDefaults(t *testing.T) {
	// Only hardware rates overridden; everything else keeps built-ins.
	path := writeCatalogFile(t, `
hardware_rates:
  CPU: 1000
  GPU: 100000
  CLUSTER: 10000000
`)

	cat, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile error: %v", err)
	}

	rate, err := cat.HardwareRate("CPU")
	if err != nil {
		t.Fatalf("HardwareRate(CPU) error: %v", err)
	}
	if rate != 1000 {
		t.Errorf("Expected overridden CPU rate 1000, got %g", rate)
	}

	if _, err := cat.Spec("AES-256"); err != nil {
		t.Errorf("Expected built-in algorithms to remain, got %v", err)
	}
}

func TestLoadCatalogFileRejectsInvalid(t *testing.T) {
	// Override exceeds nominal key bits.
	path := writeCatalogFile(t, `
effective_overrides:
  AES-128: 256
`)

	if _, err := LoadCatalogFile(path); err == nil {
		t.Errorf("Expected validation error for override above nominal bits")
	}
}

func TestLoadCatalogFileMissing(t *testing.T) {
	if _, err := LoadCatalogFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Expected error for missing catalog file")
	}
}

func TestLoadCatalogFileMalformed(t *testing.T) {
	path := writeCatalogFile(t, "algorithms: [not a mapping")
	if _, err := LoadCatalogFile(path); err == nil {
		t.Errorf("Expected parse error for malformed YAML")
	}
}
