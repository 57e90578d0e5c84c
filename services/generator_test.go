package services

import (
	"errors"
	"testing"

	"github.com/tlawson/cipher-strength-analyzer/config"
	"github.com/tlawson/cipher-strength-analyzer/models"
)

func TestGenerateDeterministic(t *testing.T) {
	gen := NewScenarioGenerator(config.Default())

	first, err := gen.Generate(50, 7)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	second, err := gen.Generate(50, 7)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if len(first) != 50 || len(second) != 50 {
		t.Fatalf("Expected 50 scenarios each, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Scenario %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateSeedChangesSequence(t *testing.T) {
	gen := NewScenarioGenerator(config.Default())

	a, _ := gen.Generate(50, 7)
	b, _ := gen.Generate(50, 8)

	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Errorf("Different seeds produced identical sequences")
	}
}

func TestGenerateZeroAndNegative(t *testing.T) {
	gen := NewScenarioGenerator(config.Default())

	empty, err := gen.Generate(0, 99)
	if err != nil {
		t.Fatalf("Generate(0) error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Generate(0) returned %d scenarios, want 0", len(empty))
	}

	if _, err := gen.Generate(-1, 99); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("Generate(-1) = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerateStaysWithinAxes(t *testing.T) {
	cat := config.Default()
	gen := NewScenarioGenerator(cat)

	algorithms := make(map[string]bool)
	for _, name := range cat.AlgorithmNames() {
		algorithms[name] = true
	}
	hardware := make(map[string]bool)
	for _, hw := range cat.HardwareClasses() {
		hardware[hw] = true
	}
	threats := make(map[string]bool)
	for _, th := range cat.ThreatLevels() {
		threats[th] = true
	}

	scenarios, err := gen.Generate(500, 3)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	for i, scn := range scenarios {
		if !algorithms[scn.Algorithm] {
			t.Errorf("Scenario %d: unknown algorithm %q", i, scn.Algorithm)
		}
		if !hardware[scn.Hardware] {
			t.Errorf("Scenario %d: unknown hardware %q", i, scn.Hardware)
		}
		if !threats[scn.Threat] {
			t.Errorf("Scenario %d: unknown threat %q", i, scn.Threat)
		}
		if !models.ValidAttackType(scn.AttackType) {
			t.Errorf("Scenario %d: unknown attack type %q", i, scn.AttackType)
		}
	}
}

func TestGenerateCoversAllAxesEventually(t *testing.T) {
	// With 500 uniform draws every axis value should appear.
	gen := NewScenarioGenerator(config.Default())
	scenarios, err := gen.Generate(500, 11)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	attacks := make(map[string]bool)
	hardware := make(map[string]bool)
	for _, scn := range scenarios {
		attacks[scn.AttackType] = true
		hardware[scn.Hardware] = true
	}
	if len(attacks) != 2 {
		t.Errorf("Expected both attack types in 500 draws, got %v", attacks)
	}
	if len(hardware) != 3 {
		t.Errorf("Expected all hardware classes in 500 draws, got %v", hardware)
	}
}
