package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya/wellspring/internal/config"
	"github.com/maya/wellspring/internal/db"
	"github.com/maya/wellspring/internal/types"
)

// mockDB is an in-memory DBClient for user service tests.
type mockDB struct {
	users   map[uuid.UUID]*db.User
	byEmail map[string]uuid.UUID
}

func newMockDB() *mockDB {
	return &mockDB{
		users:   make(map[uuid.UUID]*db.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (m *mockDB) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	m.byEmail[email] = id
	return id, nil
}

func (m *mockDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *mockDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	id, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	return m.GetUser(context.Background(), id)
}

func (m *mockDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := m.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	u.UpdatedAt = time.Now()
	return nil
}

// testPasswordConfig uses the minimum allowed bcrypt cost to keep tests fast.
func testPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{BcryptCost: 10}
}

func TestConvertDBUserToTypesUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		now := time.Now()
		dbUser := &db.User{
			ID:           uuid.New(),
			Name:         "Maya Chen",
			Email:        "maya@example.com",
			PasswordHash: "hashed-password",
			PasswordSet:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		typesUser := convertDBUserToTypesUser(dbUser)
		require.NotNil(t, typesUser)
		assert.Equal(t, dbUser.ID, typesUser.ID)
		assert.Equal(t, dbUser.Name, typesUser.Name)
		assert.Equal(t, dbUser.Email, typesUser.Email)
		assert.Equal(t, dbUser.PasswordSet, typesUser.PasswordSet)
		assert.Equal(t, dbUser.CreatedAt, typesUser.CreatedAt)
		assert.Equal(t, dbUser.UpdatedAt, typesUser.UpdatedAt)
	})

	t.Run("nil user", func(t *testing.T) {
		assert.Nil(t, convertDBUserToTypesUser(nil))
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := NewUserService(newMockDB(), testPasswordConfig())

		user, err := svc.Register(ctx, &types.CreateUserRequest{
			Name:     "Maya Chen",
			Email:    "maya@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Maya Chen", user.Name)
		assert.Equal(t, "maya@example.com", user.Email)
		assert.True(t, user.PasswordSet)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewUserService(newMockDB(), testPasswordConfig())

		req := &types.CreateUserRequest{Name: "Maya", Email: "maya@example.com", Password: "password123"}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		require.Error(t, err)
		var dupErr *ErrEmailAlreadyExists
		assert.ErrorAs(t, err, &dupErr)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newMockDB(), testPasswordConfig())

	registered, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Maya Chen",
		Email:    "maya@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(ctx, &types.LoginRequest{
			Email:    "maya@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{
			Email:    "maya@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})

	t.Run("unknown email gets the same generic error", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever-password",
		})
		require.Error(t, err)
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newMockDB(), testPasswordConfig())

	registered, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Maya Chen",
		Email:    "maya@example.com",
		Password: "original-password",
	})
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, registered.ID, "not-the-password", "new-password-123")
		require.Error(t, err)
		var mismatchErr *ErrPasswordMismatch
		assert.ErrorAs(t, err, &mismatchErr)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, uuid.New(), "original-password", "new-password-123")
		require.Error(t, err)
		var notFoundErr *ErrUserNotFound
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("success and login with new password", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, registered.ID, "original-password", "new-password-123")
		require.NoError(t, err)

		_, err = svc.Login(ctx, &types.LoginRequest{Email: "maya@example.com", Password: "original-password"})
		require.Error(t, err)

		user, err := svc.Login(ctx, &types.LoginRequest{Email: "maya@example.com", Password: "new-password-123"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})
}
