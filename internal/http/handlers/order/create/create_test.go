package create

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

	"github.com/magabrotheeeer/discount-storefront/internal/http/middlewarectx"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/jwt"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	orderservice "github.com/magabrotheeeer/discount-storefront/internal/services/order"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, customer orderservice.Customer, productID string, duration int, method models.PaymentMethod) (*models.Order, error) {
	args := m.Called(ctx, customer, productID, duration, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

const productID = "3f0a8f66-9f5d-4f6e-a6a4-0d9f2b6a7c11"

func newRequest(body string, withClaims bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString(body))
	if withClaims {
		claims := &jwt.CustomClaims{UserID: "u1", Email: "user@example.com", Name: "User", Role: models.RoleCustomer}
		ctx := context.WithValue(req.Context(), middlewarectx.Claims, claims)
		req = req.WithContext(ctx)
	}
	return req
}

func TestCreateHandler(t *testing.T) {
	order := &models.Order{ID: "o1", UserID: "u1", ProductID: productID, Amount: 549, Status: models.OrderProcessing}

	cases := []struct {
		name       string
		body       string
		withClaims bool
		mockSetup  func(m *MockService)
		wantCode   int
		wantInBody string
	}{
		{
			name:       "успешное оформление",
			body:       `{"productId":"` + productID + `","duration":3,"paymentMethod":"online"}`,
			withClaims: true,
			mockSetup: func(m *MockService) {
				m.On("Create", mock.Anything,
					orderservice.Customer{ID: "u1", Email: "user@example.com", Name: "User"},
					productID, 3, models.PaymentOnline).Return(order, nil)
			},
			wantCode:   http.StatusOK,
			wantInBody: `"amount":549`,
		},
		{
			name:       "без claims дает 401",
			body:       `{"productId":"` + productID + `","duration":3,"paymentMethod":"online"}`,
			withClaims: false,
			mockSetup:  func(_ *MockService) {},
			wantCode:   http.StatusUnauthorized,
			wantInBody: "unauthorized",
		},
		{
			name:       "неподдерживаемый срок дает 400",
			body:       `{"productId":"` + productID + `","duration":4,"paymentMethod":"online"}`,
			withClaims: true,
			mockSetup:  func(_ *MockService) {},
			wantCode:   http.StatusBadRequest,
			wantInBody: "field Duration has an unsupported value",
		},
		{
			name:       "неподдерживаемый способ оплаты дает 400",
			body:       `{"productId":"` + productID + `","duration":3,"paymentMethod":"cash"}`,
			withClaims: true,
			mockSetup:  func(_ *MockService) {},
			wantCode:   http.StatusBadRequest,
			wantInBody: "field PaymentMethod has an unsupported value",
		},
		{
			name:       "несуществующий товар дает 400",
			body:       `{"productId":"` + productID + `","duration":3,"paymentMethod":"online"}`,
			withClaims: true,
			mockSetup: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything, productID, 3, models.PaymentOnline).
					Return(nil, orderservice.ErrProductNotFound)
			},
			wantCode:   http.StatusBadRequest,
			wantInBody: "product not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := new(MockService)
			tc.mockSetup(service)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), service)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(tc.body, tc.withClaims))

			require.Equal(t, tc.wantCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantInBody)
			service.AssertExpectations(t)
		})
	}
}
