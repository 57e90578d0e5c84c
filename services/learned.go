// ABOUTME: Learned predictor fit on simulated ground-truth rows
// ABOUTME: Least-squares regressor for log10 seconds plus nearest-centroid risk classifier

package services

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tlawson/cipher-strength-analyzer/models"
)

// MinTrainingRows is the smallest batch a fit will accept. Below this the
// backend reports itself unavailable rather than producing a junk model.
const MinTrainingRows = 24

// LearnedPredictor approximates the estimator from data instead of deriving
// it. Its answers are model outputs: they may disagree with the analytic
// formula at edge cases, which is expected and acceptable.
//
// Fields are exported for artifact serialization only.
type LearnedPredictor struct {
	// Coefficients are the least-squares weights over the feature vector
	// [1, bits, log10(gps), log10(factor)].
	Coefficients []float64 `json:"coefficients"`
	// Centroids holds the mean feature vector per risk label.
	Centroids map[string][]float64 `json:"centroids"`
}

// featureVector maps the three raw inputs into fit space. The formula is
// linear in bits and in the logs of gps and factor, so a least-squares fit
// on these features recovers it almost exactly.
func featureVector(bits, gps, factor float64) []float64 {
	return []float64{
		1,
		bits,
		math.Log10(math.Max(gps, logEpsilon)),
		math.Log10(math.Max(factor, 1.0)),
	}
}

func rowFeatures(row models.SimulationRow) []float64 {
	return featureVector(float64(row.KeyBitsEffective), row.GuessesPerSecond, row.AnalyticalFactor)
}

func rowTarget(row models.SimulationRow) float64 {
	return math.Log10(row.MedianSeconds + logEpsilon)
}

// TrainPredictor fits a regressor and classifier on a batch of simulated
// rows. It returns ErrBackendUnavailable when learning is disabled, the
// batch is too small, or the fit is degenerate; callers then use the
// analytic fallback.
func TrainPredictor(rows []models.SimulationRow, enabled bool) (*LearnedPredictor, error) {
	if !enabled {
		return nil, fmt.Errorf("%w: learning disabled by configuration", models.ErrBackendUnavailable)
	}
	if len(rows) < MinTrainingRows {
		return nil, fmt.Errorf("%w: need at least %d training rows, got %d",
			models.ErrBackendUnavailable, MinTrainingRows, len(rows))
	}

	dim := len(rowFeatures(rows[0]))
	x := mat.NewDense(len(rows), dim, nil)
	y := mat.NewDense(len(rows), 1, nil)
	for i, row := range rows {
		x.SetRow(i, rowFeatures(row))
		y.Set(i, 0, rowTarget(row))
	}

	var qr mat.QR
	qr.Factorize(x)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, y); err != nil {
		return nil, fmt.Errorf("%w: least-squares fit failed: %v", models.ErrBackendUnavailable, err)
	}

	coeffs := make([]float64, dim)
	for j := 0; j < dim; j++ {
		coeffs[j] = beta.At(j, 0)
	}

	centroids, err := fitCentroids(rows, dim)
	if err != nil {
		return nil, err
	}

	return &LearnedPredictor{
		Coefficients: coeffs,
		Centroids:    centroids,
	}, nil
}

// fitCentroids computes the mean feature vector per risk label.
func fitCentroids(rows []models.SimulationRow, dim int) (map[string][]float64, error) {
	sums := make(map[string][]float64)
	counts := make(map[string]int)
	for _, row := range rows {
		if _, ok := sums[row.Risk]; !ok {
			sums[row.Risk] = make([]float64, dim)
		}
		floats.Add(sums[row.Risk], rowFeatures(row))
		counts[row.Risk]++
	}
	if len(sums) < 2 {
		return nil, fmt.Errorf("%w: training batch covers a single risk label", models.ErrBackendUnavailable)
	}
	for label := range sums {
		floats.Scale(1/float64(counts[label]), sums[label])
	}
	return sums, nil
}

// Predict implements Predictor.
func (p *LearnedPredictor) Predict(effectiveBits, gps, analyticalFactor float64) Prediction {
	x := featureVector(effectiveBits, gps, analyticalFactor)
	return Prediction{
		Log10Seconds: floats.Dot(p.Coefficients, x),
		Risk:         p.classify(x),
	}
}

// Name implements Predictor.
func (p *LearnedPredictor) Name() string {
	return "learned"
}

// classify returns the label of the nearest centroid. Labels are visited in
// sorted order so ties resolve deterministically.
func (p *LearnedPredictor) classify(x []float64) string {
	labels := make([]string, 0, len(p.Centroids))
	for label := range p.Centroids {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best := ""
	bestDist := math.Inf(1)
	for _, label := range labels {
		d := floats.Distance(x, p.Centroids[label], 2)
		if d < bestDist {
			best = label
			bestDist = d
		}
	}
	return best
}

// RegressorMAE reports mean absolute error of the regressor on a batch,
// measured in log10 seconds against the simulated ground truth.
func (p *LearnedPredictor) RegressorMAE(rows []models.SimulationRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	var total float64
	for _, row := range rows {
		pred := floats.Dot(p.Coefficients, rowFeatures(row))
		total += math.Abs(pred - rowTarget(row))
	}
	return total / float64(len(rows))
}

// ClassifierAccuracy reports the fraction of rows whose risk label the
// classifier reproduces.
func (p *LearnedPredictor) ClassifierAccuracy(rows []models.SimulationRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	var correct int
	for _, row := range rows {
		if p.classify(rowFeatures(row)) == row.Risk {
			correct++
		}
	}
	return float64(correct) / float64(len(rows))
}
