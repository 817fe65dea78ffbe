package register

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/discount-storefront/internal/models"
	authservice "github.com/magabrotheeeer/discount-storefront/internal/services/auth"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func TestRegisterHandler(t *testing.T) {
	user := &models.User{ID: "u1", Name: "User", Email: "user@example.com", Role: models.RoleCustomer}

	cases := []struct {
		name       string
		body       string
		mockSetup  func(m *MockService)
		wantCode   int
		wantInBody string
	}{
		{
			name: "успешная регистрация",
			body: `{"name":"User","email":"user@example.com","password":"secret123"}`,
			mockSetup: func(m *MockService) {
				m.On("Register", mock.Anything, "User", "user@example.com", "secret123").
					Return(user, "token123", nil)
			},
			wantCode:   http.StatusOK,
			wantInBody: `"token":"token123"`,
		},
		{
			name:       "невалидный JSON",
			body:       `{name:`,
			mockSetup:  func(_ *MockService) {},
			wantCode:   http.StatusBadRequest,
			wantInBody: "invalid request body",
		},
		{
			name:       "ошибка валидации дает 400",
			body:       `{"name":"User","email":"not-an-email","password":"secret123"}`,
			mockSetup:  func(_ *MockService) {},
			wantCode:   http.StatusBadRequest,
			wantInBody: "field Email must be a valid email",
		},
		{
			name:       "короткий пароль",
			body:       `{"name":"User","email":"user@example.com","password":"123"}`,
			mockSetup:  func(_ *MockService) {},
			wantCode:   http.StatusBadRequest,
			wantInBody: "field Password is too short",
		},
		{
			name: "занятый email дает 400",
			body: `{"name":"User","email":"user@example.com","password":"secret123"}`,
			mockSetup: func(m *MockService) {
				m.On("Register", mock.Anything, "User", "user@example.com", "secret123").
					Return(nil, "", authservice.ErrEmailTaken)
			},
			wantCode:   http.StatusBadRequest,
			wantInBody: "email already registered",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := new(MockService)
			tc.mockSetup(service)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.wantCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantInBody)
			service.AssertExpectations(t)
		})
	}
}

func TestRegisterHandlerHidesPassword(t *testing.T) {
	service := new(MockService)
	service.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&models.User{ID: "u1", PasswordHash: "bcrypt-hash"}, "token123", nil)
	handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		bytes.NewBufferString(`{"name":"User","email":"user@example.com","password":"secret123"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "bcrypt-hash")
}
