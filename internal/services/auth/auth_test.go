package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/discount-storefront/internal/lib/jwt"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/password"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	"github.com/magabrotheeeer/discount-storefront/internal/storage"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserName(ctx context.Context, id, name string) (*models.User, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SetResetOTP(ctx context.Context, id, code string, expiry time.Time) error {
	args := m.Called(ctx, id, code, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ResetPassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendResetCode(ctx context.Context, toEmail, toName, code string) error {
	args := m.Called(ctx, toEmail, toName, code)
	return args.Error(0)
}

func newTestService(users UserRepository, mailer Mailer) *AuthService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	maker := jwt.NewMaker("test_secret", time.Hour)
	return NewAuthService(users, mailer, maker, "admin@example.com", log)
}

func TestRegister(t *testing.T) {
	t.Run("новый пользователь получает роль customer и токен", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByEmail", mock.Anything, "user@example.com").Return(nil, storage.ErrNotFound)
		users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Email == "user@example.com" && u.Role == models.RoleCustomer && u.PasswordHash != "secret123"
		})).Return(nil)

		svc := newTestService(users, new(MockMailer))
		user, token, err := svc.Register(context.Background(), "User", "user@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, models.RoleCustomer, user.Role)
		users.AssertExpectations(t)
	})

	t.Run("адрес администратора получает роль admin", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByEmail", mock.Anything, "admin@example.com").Return(nil, storage.ErrNotFound)
		users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Role == models.RoleAdmin
		})).Return(nil)

		svc := newTestService(users, new(MockMailer))
		user, _, err := svc.Register(context.Background(), "Admin", "admin@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("повторная регистрация email отклоняется", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByEmail", mock.Anything, "user@example.com").
			Return(&models.User{ID: "u1", Email: "user@example.com"}, nil)

		svc := newTestService(users, new(MockMailer))
		_, _, err := svc.Register(context.Background(), "User", "user@example.com", "secret123")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)
	stored := &models.User{
		ID:           "u1",
		Name:         "User",
		Email:        "user@example.com",
		PasswordHash: hash,
		Role:         models.RoleCustomer,
	}

	t.Run("верный пароль дает токен и отметку входа", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByEmail", mock.Anything, "user@example.com").Return(stored, nil)
		users.On("UpdateLastLogin", mock.Anything, "u1", mock.Anything).Return(nil)

		svc := newTestService(users, new(MockMailer))
		user, token, err := svc.Login(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotNil(t, user.LastLogin)
		users.AssertExpectations(t)
	})

	t.Run("неверный пароль неотличим от неизвестного email", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByEmail", mock.Anything, "user@example.com").Return(stored, nil)
		users.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, storage.ErrNotFound)

		svc := newTestService(users, new(MockMailer))
		_, _, errWrongPass := svc.Login(context.Background(), "user@example.com", "wrong")
		_, _, errNoUser := svc.Login(context.Background(), "ghost@example.com", "secret123")
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	})
}

func TestForgotPassword(t *testing.T) {
	stored := &models.User{ID: "u1", Name: "User", Email: "user@example.com"}

	t.Run("код уходит доставщику, а не наружу", func(t *testing.T) {
		users := new(MockUserRepository)
		mailer := new(MockMailer)
		var sentCode string
		users.On("GetUserByEmail", mock.Anything, "user@example.com").Return(stored, nil)
		users.On("SetResetOTP", mock.Anything, "u1", mock.Anything, mock.Anything).Return(nil)
		mailer.On("SendResetCode", mock.Anything, "user@example.com", "User", mock.Anything).
			Run(func(args mock.Arguments) { sentCode = args.String(3) }).
			Return(nil)

		svc := newTestService(users, mailer)
		require.NoError(t, svc.ForgotPassword(context.Background(), "user@example.com"))
		assert.Len(t, sentCode, 6)
		mailer.AssertExpectations(t)
	})

	t.Run("неизвестный email", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, storage.ErrNotFound)

		svc := newTestService(users, new(MockMailer))
		assert.ErrorIs(t, svc.ForgotPassword(context.Background(), "ghost@example.com"), ErrUserNotFound)
	})
}

func TestResetPassword(t *testing.T) {
	future := time.Now().UTC().Add(5 * time.Minute)
	past := time.Now().UTC().Add(-time.Minute)

	cases := []struct {
		name    string
		user    *models.User
		code    string
		wantErr error
	}{
		{
			name:    "верный код в срок",
			user:    &models.User{ID: "u1", ResetOTP: "123456", ResetOTPExpiry: &future},
			code:    "123456",
			wantErr: nil,
		},
		{
			name:    "код не совпал",
			user:    &models.User{ID: "u1", ResetOTP: "123456", ResetOTPExpiry: &future},
			code:    "654321",
			wantErr: ErrInvalidOTP,
		},
		{
			name:    "код не запрашивался",
			user:    &models.User{ID: "u1"},
			code:    "123456",
			wantErr: ErrInvalidOTP,
		},
		{
			name:    "срок действия истек",
			user:    &models.User{ID: "u1", ResetOTP: "123456", ResetOTPExpiry: &past},
			code:    "123456",
			wantErr: ErrOTPExpired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := new(MockUserRepository)
			users.On("GetUserByEmail", mock.Anything, "user@example.com").Return(tc.user, nil)
			if tc.wantErr == nil {
				users.On("ResetPassword", mock.Anything, "u1", mock.Anything).Return(nil)
			}

			svc := newTestService(users, new(MockMailer))
			err := svc.ResetPassword(context.Background(), "user@example.com", tc.code, "newsecret123")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			users.AssertExpectations(t)
		})
	}
}
