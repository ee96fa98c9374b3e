package mlmodel

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func testArtifact() Artifact {
	return Artifact{
		Name:         "test-model",
		Version:      "1.0.0",
		Features:     []string{"age", "bmi"},
		Coefficients: []float64{0.8, 1.2},
		Intercept:    -0.5,
		ScalerMean:   []float64{40, 25},
		ScalerStd:    []float64{10, 5},
		TrainingStats: map[string]FeatureStats{
			"age": {Mean: 40, Std: 10},
			"bmi": {Mean: 25, Std: 5},
		},
	}
}

func TestNew_RejectsMismatchedArtifact(t *testing.T) {
	artifact := testArtifact()
	artifact.Coefficients = []float64{0.8}

	if _, err := New(artifact); !errors.Is(err, ErrInvalidArtifact) {
		t.Errorf("Expected ErrInvalidArtifact, got: %v", err)
	}
}

func TestScore(t *testing.T) {
	model, err := New(testArtifact())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	t.Run("at training mean", func(t *testing.T) {
		// Scaled features are zero, so probability is sigmoid(intercept)
		p, err := model.Score([]float64{40, 25})
		if err != nil {
			t.Fatalf("Score failed: %v", err)
		}

		want := 1 / (1 + math.Exp(0.5))
		if math.Abs(p-want) > 1e-9 {
			t.Errorf("Expected %v, got %v", want, p)
		}
	})

	t.Run("monotonic in positive coefficient", func(t *testing.T) {
		lo, _ := model.Score([]float64{40, 25})
		hi, _ := model.Score([]float64{60, 35})
		if hi <= lo {
			t.Errorf("Expected higher features to raise probability: %v <= %v", hi, lo)
		}
	})

	t.Run("wrong feature count", func(t *testing.T) {
		if _, err := model.Score([]float64{40}); !errors.Is(err, ErrFeatureCountMismatch) {
			t.Errorf("Expected ErrFeatureCountMismatch, got: %v", err)
		}
	})
}

func TestDetectOOD(t *testing.T) {
	model, err := New(testArtifact())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	t.Run("within distribution", func(t *testing.T) {
		if model.DetectOOD(map[string]float64{"age": 45, "bmi": 28}) {
			t.Error("Expected in-distribution input to pass")
		}
	})

	t.Run("beyond three sigma", func(t *testing.T) {
		// age z-score = (90-40)/10 = 5
		if !model.DetectOOD(map[string]float64{"age": 90, "bmi": 25}) {
			t.Error("Expected extreme age to be flagged")
		}
	})

	t.Run("unknown features skipped", func(t *testing.T) {
		if model.DetectOOD(map[string]float64{"glucose": 9999}) {
			t.Error("Expected unknown feature to be skipped")
		}
	})
}

func TestConfidence(t *testing.T) {
	cases := []struct {
		name  string
		proba float64
		want  float64
	}{
		{"certain positive", 0.95, 0.9},
		{"certain negative", 0.05, 0.9},
		{"decision boundary floored", 0.5, 0.5},
		{"near boundary floored", 0.55, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Confidence(tc.proba)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Confidence(%v) = %v, want %v", tc.proba, got, tc.want)
			}
		})
	}
}

func TestRiskLevel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.0, "low"},
		{0.29, "low"},
		{0.3, "moderate"},
		{0.59, "moderate"},
		{0.6, "high"},
		{0.95, "high"},
	}

	for _, tc := range cases {
		if got := RiskLevel(tc.score); got != tc.want {
			t.Errorf("RiskLevel(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestShouldConsult(t *testing.T) {
	cases := []struct {
		name       string
		risk       float64
		confidence float64
		ood        bool
		want       bool
	}{
		{"high risk high confidence", 0.8, 0.9, false, true},
		{"low confidence", 0.2, 0.5, false, true},
		{"out of distribution", 0.2, 0.9, true, true},
		{"low risk confident", 0.2, 0.9, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldConsult(tc.risk, tc.confidence, tc.ood); got != tc.want {
				t.Errorf("ShouldConsult(%v, %v, %v) = %v, want %v", tc.risk, tc.confidence, tc.ood, got, tc.want)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	t.Run("falls back when file missing", func(t *testing.T) {
		model, err := LoadOrDefault(dir, "diabetes", testArtifact())
		if err != nil {
			t.Fatalf("LoadOrDefault failed: %v", err)
		}
		if model.Name() != "test-model" {
			t.Errorf("Expected fallback artifact, got: %s", model.Name())
		}
	})

	t.Run("prefers file on disk", func(t *testing.T) {
		artifact := testArtifact()
		artifact.Name = "disk-model"
		data, err := json.Marshal(artifact)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "diabetes.json"), data, 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		model, err := LoadOrDefault(dir, "diabetes", testArtifact())
		if err != nil {
			t.Fatalf("LoadOrDefault failed: %v", err)
		}
		if model.Name() != "disk-model" {
			t.Errorf("Expected disk artifact, got: %s", model.Name())
		}
	})
}
