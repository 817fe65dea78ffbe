package login

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

func (m *MockService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	user := &models.User{ID: "u1", Email: "user@example.com", Role: models.RoleCustomer}

	cases := []struct {
		name       string
		body       string
		mockSetup  func(m *MockService)
		wantCode   int
		wantInBody string
	}{
		{
			name: "успешный вход",
			body: `{"email":"user@example.com","password":"secret123"}`,
			mockSetup: func(m *MockService) {
				m.On("Login", mock.Anything, "user@example.com", "secret123").
					Return(user, "token123", nil)
			},
			wantCode:   http.StatusOK,
			wantInBody: `"token":"token123"`,
		},
		{
			name: "неверные учетные данные дают 401",
			body: `{"email":"user@example.com","password":"wrong"}`,
			mockSetup: func(m *MockService) {
				m.On("Login", mock.Anything, "user@example.com", "wrong").
					Return(nil, "", authservice.ErrInvalidCredentials)
			},
			wantCode:   http.StatusUnauthorized,
			wantInBody: "invalid credentials",
		},
		{
			name:       "пустой пароль дает 400",
			body:       `{"email":"user@example.com","password":""}`,
			mockSetup:  func(_ *MockService) {},
			wantCode:   http.StatusBadRequest,
			wantInBody: "field Password is a required field",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := new(MockService)
			tc.mockSetup(service)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.wantCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantInBody)
			service.AssertExpectations(t)
		})
	}
}
