package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Email          string
	HashedPassword string
	FullName       string
	Age            *int
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// UpdateUserOptions holds parameters for a partial profile update.
// Nil pointers leave the corresponding column untouched.
type UpdateUserOptions struct {
	ID       string
	FullName *string
	Age      *int
	Gender   *string
	Height   *float64
	Weight   *float64
}
