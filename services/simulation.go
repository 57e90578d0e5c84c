// ABOUTME: Batch simulation service tying generator and estimator together
// ABOUTME: Bounded fan-out with index-addressed results keeps output order deterministic

package services

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tlawson/cipher-strength-analyzer/config"
	"github.com/tlawson/cipher-strength-analyzer/models"
)

// SimulationService runs generate-and-simulate batches.
type SimulationService struct {
	generator *ScenarioGenerator
	estimator *Estimator
}

// NewSimulationService creates a simulation service over the given catalog.
func NewSimulationService(catalog *config.Catalog) *SimulationService {
	return &SimulationService{
		generator: NewScenarioGenerator(catalog),
		estimator: NewEstimator(catalog),
	}
}

// Estimator exposes the underlying estimator for single-point queries.
func (s *SimulationService) Estimator() *Estimator {
	return s.estimator
}

// GenerateAndSimulate produces n scenarios for the seed and computes a row
// for each. Rows come back in generation order; workers write to their own
// index so the fan-out never reorders output.
func (s *SimulationService) GenerateAndSimulate(ctx context.Context, n int, seed int64) (models.SimulationReport, error) {
	scenarios, err := s.generator.Generate(n, seed)
	if err != nil {
		return models.SimulationReport{}, err
	}

	rows := make([]models.SimulationRow, len(scenarios))
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, scn := range scenarios {
		i, scn := i, scn
		eg.Go(func() error {
			row, err := s.estimator.SimulateOne(scn)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i, err)
			}
			rows[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return models.SimulationReport{}, err
	}

	return models.SimulationReport{
		RunID:       uuid.NewString(),
		Seed:        seed,
		Count:       len(rows),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}, nil
}

// SortRowsBySeconds orders rows by estimated time. Ascending puts the weakest
// configurations first, which is how reports surface the most urgent risks.
func SortRowsBySeconds(rows []models.SimulationRow, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return rows[i].MedianSeconds < rows[j].MedianSeconds
		}
		return rows[i].MedianSeconds > rows[j].MedianSeconds
	})
}

func sortRecommendationsDesc(recs []models.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].EstimatedSeconds > recs[j].EstimatedSeconds
	})
}

func wrapInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", models.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
