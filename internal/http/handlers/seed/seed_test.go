package seed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Seed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestSeedHandler(t *testing.T) {
	t.Run("пустой каталог заполняется", func(t *testing.T) {
		service := new(MockService)
		service.On("Seed", mock.Anything).Return(6, nil)
		handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), service)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"OK","data":{"count":6}}`, rr.Body.String())
	})

	t.Run("повторный вызов возвращает ноль", func(t *testing.T) {
		service := new(MockService)
		service.On("Seed", mock.Anything).Return(0, nil)
		handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), service)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"OK","data":{"count":0}}`, rr.Body.String())
	})
}
