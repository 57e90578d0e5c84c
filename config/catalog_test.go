package config

import (
	"errors"
	"testing"

	"github.com/tlawson/cipher-strength-analyzer/models"
)

func TestDefaultCatalogValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestSpecLookup(t *testing.T) {
	cat := Default()

	spec, err := cat.Spec("AES-256")
	if err != nil {
		t.Fatalf("Spec(AES-256) error: %v", err)
	}
	if spec.Family != models.FamilySymmetric {
		t.Errorf("Expected family symmetric, got %q", spec.Family)
	}
	if spec.KeyBits != 256 {
		t.Errorf("Expected 256 key bits, got %d", spec.KeyBits)
	}

	_, err = cat.Spec("ROT-13")
	if !errors.Is(err, models.ErrAlgorithmNotFound) {
		t.Errorf("Spec(ROT-13) = %v, want ErrAlgorithmNotFound", err)
	}
}

func TestEffectiveBits(t *testing.T) {
	cat := Default()

	tests := []struct {
		algorithm string
		want      int
	}{
		// 3DES overridden to its practical strength
		{"3DES-168", 112},
		{"DES-56", 56},
		// no override: nominal key bits
		{"AES-256", 256},
		// RSA carries equivalent symmetric bits as nominal
		{"RSA-2048", 112},
	}

	for _, tt := range tests {
		got, err := cat.EffectiveBits(tt.algorithm)
		if err != nil {
			t.Errorf("EffectiveBits(%s) error: %v", tt.algorithm, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EffectiveBits(%s) = %d, want %d", tt.algorithm, got, tt.want)
		}
	}

	if _, err := cat.EffectiveBits("ROT-13"); !errors.Is(err, models.ErrAlgorithmNotFound) {
		t.Errorf("EffectiveBits(ROT-13) = %v, want ErrAlgorithmNotFound", err)
	}
}

func TestAnalyticalFactor(t *testing.T) {
	cat := Default()

	tests := []struct {
		algorithm string
		attack    string
		want      float64
	}{
		{"DES-56", models.AttackAnalytical, 2.0},
		{"DES-56", models.AttackBrute, 1.0},
		{"3DES-168", models.AttackAnalytical, 1.5},
		// no shortcut entry: default 1.0
		{"AES-128", models.AttackAnalytical, 1.0},
		{"AES-128", models.AttackBrute, 1.0},
	}

	for _, tt := range tests {
		got, err := cat.AnalyticalFactor(tt.algorithm, tt.attack)
		if err != nil {
			t.Errorf("AnalyticalFactor(%s, %s) error: %v", tt.algorithm, tt.attack, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AnalyticalFactor(%s, %s) = %g, want %g", tt.algorithm, tt.attack, got, tt.want)
		}
	}

	if _, err := cat.AnalyticalFactor("AES-128", "quantum"); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("AnalyticalFactor with unknown attack = %v, want ErrInvalidArgument", err)
	}
	if _, err := cat.AnalyticalFactor("ROT-13", models.AttackBrute); !errors.Is(err, models.ErrAlgorithmNotFound) {
		t.Errorf("AnalyticalFactor with unknown algorithm = %v, want ErrAlgorithmNotFound", err)
	}
}

func TestHardwareRateAndThreatMultiplier(t *testing.T) {
	cat := Default()

	rate, err := cat.HardwareRate("CPU")
	if err != nil {
		t.Fatalf("HardwareRate(CPU) error: %v", err)
	}
	if rate != float64(1<<28) {
		t.Errorf("HardwareRate(CPU) = %g, want 2^28", rate)
	}

	mult, err := cat.ThreatMultiplier("High")
	if err != nil {
		t.Fatalf("ThreatMultiplier(High) error: %v", err)
	}
	if mult != 2.0 {
		t.Errorf("ThreatMultiplier(High) = %g, want 2.0", mult)
	}

	if _, err := cat.HardwareRate("QUANTUM"); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("HardwareRate(QUANTUM) = %v, want ErrInvalidArgument", err)
	}
	if _, err := cat.ThreatMultiplier("Extreme"); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("ThreatMultiplier(Extreme) = %v, want ErrInvalidArgument", err)
	}
}

func TestThreatMultipliersMonotonic(t *testing.T) {
	cat := Default()
	low := cat.ThreatMultipliers["Low"]
	medium := cat.ThreatMultipliers["Medium"]
	high := cat.ThreatMultipliers["High"]
	if !(low < medium && medium < high) {
		t.Errorf("Threat multipliers not monotonically increasing: %g, %g, %g", low, medium, high)
	}
}

func TestAxisOrderingStable(t *testing.T) {
	cat := Default()

	hw := cat.HardwareClasses()
	want := []string{"CLUSTER", "CPU", "GPU"}
	if len(hw) != len(want) {
		t.Fatalf("HardwareClasses() returned %d entries, want %d", len(hw), len(want))
	}
	for i := range want {
		if hw[i] != want[i] {
			t.Errorf("HardwareClasses()[%d] = %q, want %q", i, hw[i], want[i])
		}
	}

	names := cat.AlgorithmNames()
	if names[0] != "AES-128" || names[len(names)-1] != "RSA-3072" {
		t.Errorf("AlgorithmNames() not in catalog order: %v", names)
	}
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{"override above nominal", func(c *Catalog) { c.EffectiveOverrides["AES-128"] = 129 }},
		{"override for unknown algorithm", func(c *Catalog) { c.EffectiveOverrides["ROT-13"] = 13 }},
		{"non-positive override", func(c *Catalog) { c.EffectiveOverrides["AES-128"] = 0 }},
		{"non-positive hardware rate", func(c *Catalog) { c.HardwareRates["CPU"] = 0 }},
		{"non-positive threat multiplier", func(c *Catalog) { c.ThreatMultipliers["Low"] = -1 }},
		{"shortcut below one", func(c *Catalog) { c.AnalyticalShortcuts["DES-56"] = 0.5 }},
		{"shortcut for unknown algorithm", func(c *Catalog) { c.AnalyticalShortcuts["ROT-13"] = 2 }},
		{"duplicate algorithm", func(c *Catalog) { c.Algorithms = append(c.Algorithms, c.Algorithms[0]) }},
		{"non-positive key bits", func(c *Catalog) { c.Algorithms[0].KeyBits = 0 }},
		{"unknown family", func(c *Catalog) { c.Algorithms[0].Family = "hybrid" }},
		{"no algorithms", func(c *Catalog) { c.Algorithms = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Default()
			tt.mutate(cat)
			if err := cat.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}
