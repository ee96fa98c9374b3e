package predictor

import (
	"errors"
	"fmt"

	"ai-health-platform/pkg/mlmodel"
)

// ErrInvalidInput wraps feature validation failures
var ErrInvalidInput = errors.New("invalid input")

// Set bundles the three disease predictors behind one constructor
type Set struct {
	Diabetes *DiabetesPredictor
	Heart    *HeartPredictor
	PCOS     *PCOSPredictor
}

// NewSet loads all predictors, preferring JSON artifacts from modelsDir and
// falling back to the compiled-in defaults when a file is absent.
func NewSet(modelsDir string) (*Set, error) {
	diabetes, err := NewDiabetes(modelsDir)
	if err != nil {
		return nil, fmt.Errorf("load diabetes model: %w", err)
	}
	heart, err := NewHeart(modelsDir)
	if err != nil {
		return nil, fmt.Errorf("load heart model: %w", err)
	}
	pcos, err := NewPCOS(modelsDir)
	if err != nil {
		return nil, fmt.Errorf("load pcos model: %w", err)
	}
	return &Set{Diabetes: diabetes, Heart: heart, PCOS: pcos}, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func scoreModel(m *mlmodel.Model, features []float64) (float64, error) {
	p, err := m.Score(features)
	if err != nil {
		return 0, fmt.Errorf("score features: %w", err)
	}
	return p, nil
}
