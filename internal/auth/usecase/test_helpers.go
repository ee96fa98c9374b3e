package usecase

import (
	"context"

	"ai-health-platform/internal/auth"
	repo "ai-health-platform/internal/auth/repository"
	"ai-health-platform/internal/model"
	"ai-health-platform/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepository struct {
	usersByEmail map[string]auth.User
	usersByID    map[string]auth.User
	created      []repo.CreateUserOptions
	updated      []repo.UpdateUserOptions
	err          error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		usersByEmail: make(map[string]auth.User),
		usersByID:    make(map[string]auth.User),
	}
}

func (m *mockRepository) addUser(u auth.User) {
	m.usersByEmail[u.Email] = u
	m.usersByID[u.ID] = u
}

func (m *mockRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	if m.err != nil {
		return auth.User{}, m.err
	}
	m.created = append(m.created, opt)
	user := auth.User{
		ID:             "user-1",
		Email:          opt.Email,
		HashedPassword: opt.HashedPassword,
		FullName:       opt.FullName,
		Age:            opt.Age,
		IsActive:       true,
	}
	m.addUser(user)
	return user, nil
}

func (m *mockRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (auth.User, error) {
	if m.err != nil {
		return auth.User{}, m.err
	}
	if opt.ID != "" {
		return m.usersByID[opt.ID], nil
	}
	return m.usersByEmail[opt.Email], nil
}

func (m *mockRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (auth.User, error) {
	if m.err != nil {
		return auth.User{}, m.err
	}
	m.updated = append(m.updated, opt)
	user, ok := m.usersByID[opt.ID]
	if !ok {
		return auth.User{}, nil
	}
	if opt.FullName != nil {
		user.FullName = *opt.FullName
	}
	if opt.Age != nil {
		user.Age = opt.Age
	}
	if opt.Gender != nil {
		user.Gender = opt.Gender
	}
	if opt.Height != nil {
		user.Height = opt.Height
	}
	if opt.Weight != nil {
		user.Weight = opt.Weight
	}
	m.addUser(user)
	return user, nil
}

func (m *mockRepository) ListActiveUserIDs(ctx context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	var ids []string
	for id := range m.usersByID {
		ids = append(ids, id)
	}
	return ids, nil
}

// Mock JWT manager for testing
type mockScopeManager struct {
	issueErr   error
	refreshErr error
	refreshSc  model.Scope
	issued     int
}

func (m *mockScopeManager) IssuePair(userID, email string) (scope.TokenPair, error) {
	if m.issueErr != nil {
		return scope.TokenPair{}, m.issueErr
	}
	m.issued++
	return scope.TokenPair{
		AccessToken:  "access-" + userID,
		RefreshToken: "refresh-" + userID,
		TokenType:    "bearer",
	}, nil
}

func (m *mockScopeManager) Verify(token string) (model.Scope, error) {
	return m.refreshSc, m.refreshErr
}

func (m *mockScopeManager) VerifyRefresh(token string) (model.Scope, error) {
	return m.refreshSc, m.refreshErr
}
