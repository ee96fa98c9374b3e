package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"ai-health-platform/internal/auth"
	repo "ai-health-platform/internal/auth/repository"
)

const userColumns = `id, email, hashed_password, full_name, age, gender, height, weight, is_active, is_verified, created_at, updated_at`

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (email, hashed_password, full_name, age, is_active, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, FALSE, NOW(), NOW())
		RETURNING %s`, userColumns)

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, opt.Email, opt.HashedPassword, opt.FullName, opt.Age))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return auth.User{}, repo.ErrFailedToInsert
	}
	return user, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (auth.User, error) {
	mods, args := r.buildGetOneUserQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, mods)

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return auth.User{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return auth.User{}, repo.ErrFailedToGet
	}
	return user, nil
}

// UpdateUser applies a partial profile update and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (auth.User, error) {
	mods, args := r.buildUpdateUserQuery(opt)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s", mods, len(args)+1, userColumns)
	args = append(args, opt.ID)

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return auth.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return auth.User{}, repo.ErrFailedToUpdate
	}
	return user, nil
}

// ListActiveUserIDs returns the IDs of all active accounts.
func (r *implRepository) ListActiveUserIDs(ctx context.Context) ([]string, error) {
	const query = `SELECT id FROM users WHERE is_active = TRUE ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActiveUserIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanUser(row rowScanner) (auth.User, error) {
	var user auth.User
	err := row.Scan(
		&user.ID, &user.Email, &user.HashedPassword, &user.FullName,
		&user.Age, &user.Gender, &user.Height, &user.Weight,
		&user.IsActive, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}
