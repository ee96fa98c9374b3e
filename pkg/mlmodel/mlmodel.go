package mlmodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

var (
	// ErrFeatureCountMismatch indicates the feature vector does not match the artifact
	ErrFeatureCountMismatch = errors.New("feature count does not match model artifact")

	// ErrInvalidArtifact indicates the artifact file is malformed
	ErrInvalidArtifact = errors.New("invalid model artifact")
)

// FeatureStats holds per-feature training distribution statistics
type FeatureStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Artifact is a trained logistic model exported as JSON.
// Coefficients and scaler arrays are index-aligned with Features.
type Artifact struct {
	Name          string                  `json:"name"`
	Version       string                  `json:"version"`
	Features      []string                `json:"features"`
	Coefficients  []float64               `json:"coefficients"`
	Intercept     float64                 `json:"intercept"`
	ScalerMean    []float64               `json:"scaler_mean"`
	ScalerStd     []float64               `json:"scaler_std"`
	TrainingStats map[string]FeatureStats `json:"training_stats"`
}

// Validate checks internal consistency of the artifact
func (a *Artifact) Validate() error {
	if len(a.Features) == 0 {
		return fmt.Errorf("%w: no features", ErrInvalidArtifact)
	}
	if len(a.Coefficients) != len(a.Features) {
		return fmt.Errorf("%w: %d coefficients for %d features", ErrInvalidArtifact, len(a.Coefficients), len(a.Features))
	}
	if len(a.ScalerMean) != len(a.Features) || len(a.ScalerStd) != len(a.Features) {
		return fmt.Errorf("%w: scaler dimensions do not match features", ErrInvalidArtifact)
	}
	return nil
}

// Model scores feature vectors against a loaded artifact
type Model struct {
	artifact Artifact
}

// New creates a Model from an artifact
func New(artifact Artifact) (*Model, error) {
	if err := artifact.Validate(); err != nil {
		return nil, err
	}
	return &Model{artifact: artifact}, nil
}

// Load reads a JSON artifact from disk
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return New(artifact)
}

// LoadOrDefault loads the artifact at dir/<name>.json, falling back to
// the given compiled-in artifact when the file does not exist
func LoadOrDefault(dir, name string, fallback Artifact) (*Model, error) {
	path := filepath.Join(dir, name+".json")
	if _, err := os.Stat(path); err != nil {
		return New(fallback)
	}
	return Load(path)
}

// Name returns the artifact name
func (m *Model) Name() string {
	return m.artifact.Name
}

// Version returns the artifact version
func (m *Model) Version() string {
	return m.artifact.Version
}

// Features returns the ordered feature names the model expects
func (m *Model) Features() []string {
	return m.artifact.Features
}

// Score standardizes the feature vector and applies the logistic function.
// The vector must be index-aligned with Features().
func (m *Model) Score(features []float64) (float64, error) {
	if len(features) != len(m.artifact.Features) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureCountMismatch, len(features), len(m.artifact.Features))
	}

	z := m.artifact.Intercept
	for i, v := range features {
		std := m.artifact.ScalerStd[i]
		if std == 0 {
			std = 1
		}
		scaled := (v - m.artifact.ScalerMean[i]) / std
		z += m.artifact.Coefficients[i] * scaled
	}

	return sigmoid(z), nil
}

// DetectOOD flags inputs far outside the training distribution.
// A named feature more than 3 standard deviations from its training mean
// marks the whole input as out-of-distribution. Features without recorded
// stats are skipped.
func (m *Model) DetectOOD(features map[string]float64) bool {
	if len(m.artifact.TrainingStats) == 0 {
		return false
	}

	for name, value := range features {
		stats, ok := m.artifact.TrainingStats[name]
		if !ok {
			continue
		}
		z := math.Abs((value - stats.Mean) / (stats.Std + 1e-6))
		if z > 3 {
			return true
		}
	}

	return false
}

// Confidence measures distance from the decision boundary, floored at 0.5
func Confidence(probability float64) float64 {
	maxProba := probability
	if 1-probability > maxProba {
		maxProba = 1 - probability
	}

	confidence := math.Abs(maxProba-0.5) * 2
	if confidence < 0.5 {
		confidence = 0.5
	}

	return round3(confidence)
}

// RiskLevel buckets a probability into low, moderate, or high
func RiskLevel(riskScore float64) string {
	switch {
	case riskScore < 0.3:
		return "low"
	case riskScore < 0.6:
		return "moderate"
	default:
		return "high"
	}
}

// ShouldConsult determines whether a professional consultation is warranted
func ShouldConsult(riskScore, confidence float64, ood bool) bool {
	if riskScore > 0.7 && confidence > 0.7 {
		return true
	}
	if confidence < 0.6 {
		return true
	}
	if ood {
		return true
	}
	return false
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
