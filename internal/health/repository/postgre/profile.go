package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"ai-health-platform/internal/health"
	repo "ai-health-platform/internal/health/repository"
)

const profileColumns = `id, user_id, gender, age, height_cm, weight_kg, bmi,
	bp_systolic, bp_diastolic, heart_rate, glucose, cholesterol,
	smoking, alcohol, exercise_frequency, created_at, updated_at`

// UpsertProfile inserts the user's profile row or partially updates the
// existing one. NULL inputs preserve the stored values.
func (r *implRepository) UpsertProfile(ctx context.Context, opt repo.UpsertProfileOptions) (health.Profile, error) {
	query := fmt.Sprintf(`
		INSERT INTO health_profiles (
			user_id, gender, age, height_cm, weight_kg, bmi,
			bp_systolic, bp_diastolic, heart_rate, glucose, cholesterol,
			smoking, alcohol, exercise_frequency, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			gender             = COALESCE(EXCLUDED.gender, health_profiles.gender),
			age                = COALESCE(EXCLUDED.age, health_profiles.age),
			height_cm          = COALESCE(EXCLUDED.height_cm, health_profiles.height_cm),
			weight_kg          = COALESCE(EXCLUDED.weight_kg, health_profiles.weight_kg),
			bmi                = COALESCE(EXCLUDED.bmi, health_profiles.bmi),
			bp_systolic        = COALESCE(EXCLUDED.bp_systolic, health_profiles.bp_systolic),
			bp_diastolic       = COALESCE(EXCLUDED.bp_diastolic, health_profiles.bp_diastolic),
			heart_rate         = COALESCE(EXCLUDED.heart_rate, health_profiles.heart_rate),
			glucose            = COALESCE(EXCLUDED.glucose, health_profiles.glucose),
			cholesterol        = COALESCE(EXCLUDED.cholesterol, health_profiles.cholesterol),
			smoking            = COALESCE(EXCLUDED.smoking, health_profiles.smoking),
			alcohol            = COALESCE(EXCLUDED.alcohol, health_profiles.alcohol),
			exercise_frequency = COALESCE(EXCLUDED.exercise_frequency, health_profiles.exercise_frequency),
			updated_at         = NOW()
		RETURNING %s`, profileColumns)

	profile, err := r.scanProfile(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.Gender, opt.Age, opt.HeightCM, opt.WeightKG, opt.BMI,
		opt.BPSystolic, opt.BPDiastolic, opt.HeartRate, opt.Glucose, opt.Cholesterol,
		opt.Smoking, opt.Alcohol, opt.ExerciseFrequency,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProfile"), err)
		return health.Profile{}, repo.ErrFailedToInsert
	}
	return profile, nil
}

// GetProfile retrieves a user's profile.
// Returns zero-value Profile (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetProfile(ctx context.Context, userID string) (health.Profile, error) {
	query := fmt.Sprintf("SELECT %s FROM health_profiles WHERE user_id = $1 LIMIT 1", profileColumns)

	profile, err := r.scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return health.Profile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return health.Profile{}, repo.ErrFailedToGet
	}
	return profile, nil
}

func (r *implRepository) scanProfile(row rowScanner) (health.Profile, error) {
	var p health.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Gender, &p.Age, &p.HeightCM, &p.WeightKG, &p.BMI,
		&p.BPSystolic, &p.BPDiastolic, &p.HeartRate, &p.Glucose, &p.Cholesterol,
		&p.Smoking, &p.Alcohol, &p.ExerciseFrequency, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
