package middlewarectx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/discount-storefront/internal/lib/jwt"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
)

type makerService struct {
	maker jwt.Maker
}

func (s makerService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.maker.ParseToken(token)
}

func serviceFor(maker jwt.Maker) Service {
	return makerService{maker: maker}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test_secret", time.Hour)
	user := &models.User{ID: "u1", Email: "user@example.com", Name: "User", Role: models.RoleCustomer}
	token, err := maker.GenerateToken(user)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "u1", claims.UserID)
		w.WriteHeader(http.StatusOK)
	})
	handler := JWTMiddleware(serviceFor(maker), testLogger())(next)

	t.Run("валидный токен пропускается с claims в контексте", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("отсутствие заголовка дает 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("мусорный токен дает 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test_secret", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := JWTMiddleware(serviceFor(maker), testLogger())(AdminMiddleware(testLogger())(next))

	tokenFor := func(role models.Role) string {
		token, err := maker.GenerateToken(&models.User{ID: "u1", Role: role})
		require.NoError(t, err)
		return token
	}

	t.Run("admin проходит", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(models.RoleAdmin))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("customer получает тот же 401, что и аноним", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(models.RoleCustomer))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"unauthorized"}`, rr.Body.String())
	})
}
