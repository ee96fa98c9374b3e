package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"ai-health-platform/internal/health"
	repo "ai-health-platform/internal/health/repository"
)

const predictionColumns = `id, user_id, disease_type, risk_score, risk_level, confidence,
	explanation, input_data, recommendations, model_version, should_consult, ood_detected, created_at`

// CreatePrediction inserts a prediction row and returns the created entity.
func (r *implRepository) CreatePrediction(ctx context.Context, opt repo.CreatePredictionOptions) (health.Prediction, error) {
	inputData, err := json.Marshal(opt.InputData)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal input: %v", r.dsn("CreatePrediction"), err)
		return health.Prediction{}, repo.ErrFailedToInsert
	}
	recommendations, err := json.Marshal(opt.Recommendations)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal recommendations: %v", r.dsn("CreatePrediction"), err)
		return health.Prediction{}, repo.ErrFailedToInsert
	}

	query := fmt.Sprintf(`
		INSERT INTO predictions (
			user_id, disease_type, risk_score, risk_level, confidence,
			explanation, input_data, recommendations, model_version,
			should_consult, ood_detected, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING %s`, predictionColumns)

	prediction, err := r.scanPrediction(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.DiseaseType, opt.RiskScore, opt.RiskLevel, opt.Confidence,
		opt.Explanation, inputData, recommendations, opt.ModelVersion,
		opt.ShouldConsult, opt.OODDetected,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePrediction"), err)
		return health.Prediction{}, repo.ErrFailedToInsert
	}
	return prediction, nil
}

// ListPredictions returns a user's prediction history, newest first unless
// Ascending is set.
func (r *implRepository) ListPredictions(ctx context.Context, opt repo.ListPredictionsOptions) ([]health.Prediction, error) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}
	if opt.DiseaseType != "" {
		conditions = append(conditions, fmt.Sprintf("disease_type = $%d", len(args)+1))
		args = append(args, opt.DiseaseType)
	}

	order := "DESC"
	if opt.Ascending {
		order = "ASC"
	}
	query := fmt.Sprintf("SELECT %s FROM predictions WHERE %s ORDER BY created_at %s",
		predictionColumns, strings.Join(conditions, " AND "), order)
	if opt.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT $%d", query, len(args)+1)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPredictions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var predictions []health.Prediction
	for rows.Next() {
		prediction, err := r.scanPrediction(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPredictions"), err)
			return nil, repo.ErrFailedToList
		}
		predictions = append(predictions, prediction)
	}
	return predictions, rows.Err()
}

// GetLatestPrediction returns the user's most recent prediction.
// Returns zero-value Prediction (ID == "") when the user has none.
func (r *implRepository) GetLatestPrediction(ctx context.Context, userID string) (health.Prediction, error) {
	query := fmt.Sprintf("SELECT %s FROM predictions WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1", predictionColumns)

	prediction, err := r.scanPrediction(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return health.Prediction{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLatestPrediction"), err)
		return health.Prediction{}, repo.ErrFailedToGet
	}
	return prediction, nil
}

func (r *implRepository) scanPrediction(row rowScanner) (health.Prediction, error) {
	var p health.Prediction
	var inputData, recommendations []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.DiseaseType, &p.RiskScore, &p.RiskLevel, &p.Confidence,
		&p.Explanation, &inputData, &recommendations, &p.ModelVersion,
		&p.ShouldConsult, &p.OODDetected, &p.CreatedAt,
	)
	if err != nil {
		return health.Prediction{}, err
	}
	if len(inputData) > 0 {
		if err := json.Unmarshal(inputData, &p.InputData); err != nil {
			return health.Prediction{}, err
		}
	}
	if len(recommendations) > 0 {
		if err := json.Unmarshal(recommendations, &p.Recommendations); err != nil {
			return health.Prediction{}, err
		}
	}
	return p, nil
}
