package postgre

import (
	"fmt"
	"strings"

	repo "ai-health-platform/internal/auth/repository"
)

// buildGetOneUserQuery builds WHERE clause + args for GetOneUser.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneUserQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildUpdateUserQuery builds the SET clause + args for UpdateUser.
// Only non-nil fields are written; updated_at is always refreshed.
func (r *implRepository) buildUpdateUserQuery(opt repo.UpdateUserOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	if opt.FullName != nil {
		sets = append(sets, fmt.Sprintf("full_name = $%d", idx))
		args = append(args, *opt.FullName)
		idx++
	}
	if opt.Age != nil {
		sets = append(sets, fmt.Sprintf("age = $%d", idx))
		args = append(args, *opt.Age)
		idx++
	}
	if opt.Gender != nil {
		sets = append(sets, fmt.Sprintf("gender = $%d", idx))
		args = append(args, *opt.Gender)
		idx++
	}
	if opt.Height != nil {
		sets = append(sets, fmt.Sprintf("height = $%d", idx))
		args = append(args, *opt.Height)
		idx++
	}
	if opt.Weight != nil {
		sets = append(sets, fmt.Sprintf("weight = $%d", idx))
		args = append(args, *opt.Weight)
		idx++
	}

	sets = append(sets, "updated_at = NOW()")
	return strings.Join(sets, ", "), args
}
