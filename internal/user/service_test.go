package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, password, role string) (User, error) {
	args := m.Called(ctx, email, password, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, "new@example.com", mock.AnythingOfType("string"), "user").
			Return(User{ID: 1, Email: "new@example.com", Role: RoleUser}, nil).Once()

		token, u, err := svc.Register(ctx, "new@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("EmailExists", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, "dup@example.com", mock.Anything, "user").
			Return(User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)).Once()

		_, _, err := svc.Register(ctx, "dup@example.com", "password123")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()

	hash, _ := HashPassword("password123")
	stored := User{ID: 1, Email: "user@example.com", Password: hash, Role: RoleUser}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil).Once()

		token, u, err := svc.Login(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "user@example.com", u.Email)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil).Once()

		_, _, err := svc.Login(ctx, "user@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(User{}, errors.New("sql: no rows in result set")).Once()

		_, _, err := svc.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
