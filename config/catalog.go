// ABOUTME: Static catalog of algorithm specs and attacker assumption tables
// ABOUTME: Built once at startup, validated, and never mutated afterwards

package config

import (
	"fmt"
	"sort"

	"github.com/tlawson/cipher-strength-analyzer/models"
)

// AlgorithmSpec describes one algorithm in the catalog. Asymmetric entries
// carry their equivalent symmetric security bits in KeyBits and no block
// size. Immutable after catalog construction.
type AlgorithmSpec struct {
	Name string `json:"name" yaml:"name"`
	// Family is "symmetric" or "asymmetric".
	Family  string `json:"family" yaml:"family"`
	KeyBits int    `json:"key_bits" yaml:"key_bits"`
	// BlockBits is 0 for asymmetric algorithms.
	BlockBits int `json:"block_bits,omitempty" yaml:"block_bits,omitempty"`
	// AnalyticalReduction is kept for catalog compatibility; per-algorithm
	// shortcuts are resolved through the shortcut table instead.
	AnalyticalReduction float64 `json:"analytical_reduction" yaml:"analytical_reduction"`
}

// Catalog holds the full set of attacker-model tables. All lookups are pure;
// the only failure modes are mistyped identifiers.
type Catalog struct {
	Algorithms []AlgorithmSpec `json:"algorithms" yaml:"algorithms"`
	// EffectiveOverrides maps algorithm name to real-world security bits when
	// the nominal key length overstates strength.
	EffectiveOverrides map[string]int `json:"effective_overrides" yaml:"effective_overrides"`
	// HardwareRates maps hardware class to base guesses per second.
	HardwareRates map[string]float64 `json:"hardware_rates" yaml:"hardware_rates"`
	// ThreatMultipliers scale the guess rate per threat level.
	ThreatMultipliers map[string]float64 `json:"threat_multipliers" yaml:"threat_multipliers"`
	// AnalyticalShortcuts maps algorithm name to the keyspace divisor applied
	// for analytical attacks. Unlisted algorithms default to 1.0.
	AnalyticalShortcuts map[string]float64 `json:"analytical_shortcuts" yaml:"analytical_shortcuts"`
}

// Default returns the built-in catalog. Guess rates and shortcut factors are
// illustrative orders of magnitude, not researched values.
func Default() *Catalog {
	return &Catalog{
		Algorithms: []AlgorithmSpec{
			{Name: "AES-128", Family: models.FamilySymmetric, KeyBits: 128, BlockBits: 128, AnalyticalReduction: 1.0},
			{Name: "AES-192", Family: models.FamilySymmetric, KeyBits: 192, BlockBits: 128, AnalyticalReduction: 1.0},
			{Name: "AES-256", Family: models.FamilySymmetric, KeyBits: 256, BlockBits: 128, AnalyticalReduction: 1.0},
			{Name: "3DES-168", Family: models.FamilySymmetric, KeyBits: 168, BlockBits: 64, AnalyticalReduction: 1.0},
			{Name: "DES-56", Family: models.FamilySymmetric, KeyBits: 56, BlockBits: 64, AnalyticalReduction: 1.0},
			// RSA modeled via equivalent symmetric security bits
			{Name: "RSA-1024", Family: models.FamilyAsymmetric, KeyBits: 80, AnalyticalReduction: 1.0},
			{Name: "RSA-2048", Family: models.FamilyAsymmetric, KeyBits: 112, AnalyticalReduction: 1.0},
			{Name: "RSA-3072", Family: models.FamilyAsymmetric, KeyBits: 128, AnalyticalReduction: 1.0},
		},
		EffectiveOverrides: map[string]int{
			"3DES-168": 112,
			"DES-56":   56,
		},
		HardwareRates: map[string]float64{
			"CPU":     1 << 28, // ~268M guesses/sec
			"GPU":     1 << 34, // ~17B guesses/sec
			"CLUSTER": 1 << 40, // ~1T guesses/sec
		},
		ThreatMultipliers: map[string]float64{
			"Low":    0.5,
			"Medium": 1.0,
			"High":   2.0,
		},
		AnalyticalShortcuts: map[string]float64{
			"DES-56":   2.0,
			"3DES-168": 1.5,
		},
	}
}

// Spec returns the AlgorithmSpec for name.
func (c *Catalog) Spec(name string) (AlgorithmSpec, error) {
	for _, a := range c.Algorithms {
		if a.Name == name {
			return a, nil
		}
	}
	return AlgorithmSpec{}, fmt.Errorf("%w: %q", models.ErrAlgorithmNotFound, name)
}

// EffectiveBits resolves the security strength for name: the override value
// when one exists, else the entry's nominal key bits.
func (c *Catalog) EffectiveBits(name string) (int, error) {
	spec, err := c.Spec(name)
	if err != nil {
		return 0, err
	}
	if bits, ok := c.EffectiveOverrides[name]; ok {
		return bits, nil
	}
	return spec.KeyBits, nil
}

// AnalyticalFactor resolves the keyspace divisor for an algorithm and attack
// type. Brute-force attacks always get 1.0; analytical attacks get the
// shortcut-table value, defaulting to 1.0 for algorithms with no known
// shortcut.
func (c *Catalog) AnalyticalFactor(name, attackType string) (float64, error) {
	if _, err := c.Spec(name); err != nil {
		return 0, err
	}
	switch attackType {
	case models.AttackBrute:
		return 1.0, nil
	case models.AttackAnalytical:
		if f, ok := c.AnalyticalShortcuts[name]; ok {
			return f, nil
		}
		return 1.0, nil
	default:
		return 0, fmt.Errorf("%w: unknown attack type %q", models.ErrInvalidArgument, attackType)
	}
}

// HardwareRate returns the base guesses-per-second for a hardware class.
func (c *Catalog) HardwareRate(hardware string) (float64, error) {
	rate, ok := c.HardwareRates[hardware]
	if !ok {
		return 0, fmt.Errorf("%w: unknown hardware class %q", models.ErrInvalidArgument, hardware)
	}
	return rate, nil
}

// ThreatMultiplier returns the guess-rate scaling for a threat level.
func (c *Catalog) ThreatMultiplier(threat string) (float64, error) {
	m, ok := c.ThreatMultipliers[threat]
	if !ok {
		return 0, fmt.Errorf("%w: unknown threat level %q", models.ErrInvalidArgument, threat)
	}
	return m, nil
}

// AlgorithmNames returns algorithm names in catalog order.
func (c *Catalog) AlgorithmNames() []string {
	names := make([]string, len(c.Algorithms))
	for i, a := range c.Algorithms {
		names[i] = a.Name
	}
	return names
}

// HardwareClasses returns hardware class names in a stable sorted order.
func (c *Catalog) HardwareClasses() []string {
	return sortedKeysFloat(c.HardwareRates)
}

// ThreatLevels returns threat level names in a stable sorted order.
func (c *Catalog) ThreatLevels() []string {
	return sortedKeysFloat(c.ThreatMultipliers)
}

// Validate checks catalog invariants. A catalog that passes validation makes
// every downstream estimation total: no lookups can divide by zero or produce
// negative times.
func (c *Catalog) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("catalog has no algorithms")
	}
	seen := make(map[string]bool, len(c.Algorithms))
	for _, a := range c.Algorithms {
		if a.Name == "" {
			return fmt.Errorf("algorithm with empty name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate algorithm %q", a.Name)
		}
		seen[a.Name] = true
		if a.Family != models.FamilySymmetric && a.Family != models.FamilyAsymmetric {
			return fmt.Errorf("algorithm %q: unknown family %q", a.Name, a.Family)
		}
		if a.KeyBits <= 0 {
			return fmt.Errorf("algorithm %q: key_bits must be positive, got %d", a.Name, a.KeyBits)
		}
		if a.BlockBits < 0 {
			return fmt.Errorf("algorithm %q: block_bits must not be negative, got %d", a.Name, a.BlockBits)
		}
		if a.AnalyticalReduction < 1 {
			return fmt.Errorf("algorithm %q: analytical_reduction must be >= 1, got %g", a.Name, a.AnalyticalReduction)
		}
	}
	for name, bits := range c.EffectiveOverrides {
		spec, ok := c.lookup(name)
		if !ok {
			return fmt.Errorf("effective override for unknown algorithm %q", name)
		}
		if bits <= 0 {
			return fmt.Errorf("effective override for %q must be positive, got %d", name, bits)
		}
		if bits > spec.KeyBits {
			return fmt.Errorf("effective override for %q (%d) exceeds nominal key bits (%d)", name, bits, spec.KeyBits)
		}
	}
	if len(c.HardwareRates) == 0 {
		return fmt.Errorf("catalog has no hardware rates")
	}
	for hw, rate := range c.HardwareRates {
		if rate <= 0 {
			return fmt.Errorf("hardware rate for %q must be positive, got %g", hw, rate)
		}
	}
	if len(c.ThreatMultipliers) == 0 {
		return fmt.Errorf("catalog has no threat multipliers")
	}
	for threat, m := range c.ThreatMultipliers {
		if m <= 0 {
			return fmt.Errorf("threat multiplier for %q must be positive, got %g", threat, m)
		}
	}
	for name, f := range c.AnalyticalShortcuts {
		if _, ok := c.lookup(name); !ok {
			return fmt.Errorf("analytical shortcut for unknown algorithm %q", name)
		}
		if f < 1 {
			return fmt.Errorf("analytical shortcut for %q must be >= 1, got %g", name, f)
		}
	}
	return nil
}

func (c *Catalog) lookup(name string) (AlgorithmSpec, bool) {
	for _, a := range c.Algorithms {
		if a.Name == name {
			return a, true
		}
	}
	return AlgorithmSpec{}, false
}

func sortedKeysFloat(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
