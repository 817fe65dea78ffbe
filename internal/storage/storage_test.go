package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/discount-storefront/internal/models"
)

// setupStorage поднимает MongoDB в контейнере и возвращает готовое хранилище.
func setupStorage(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort(nat.Port("27017/tcp")),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("27017/tcp"))
	require.NoError(t, err)

	s, err := New(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "storefront_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close(ctx)
	})
	return s
}

func testProduct(name, category string, status models.ProductStatus, pricing models.PricingMap) models.Product {
	return models.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Features:  []string{},
		Pricing:   pricing,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUserLifecycle(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := models.User{
		ID:           uuid.New().String(),
		Name:         "Test User",
		Email:        "user@example.com",
		PasswordHash: "hash",
		Role:         models.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	// уникальный индекс по email не дает зарегистрировать дубликат
	dup := user
	dup.ID = uuid.New().String()
	assert.Error(t, s.CreateUser(ctx, dup))

	got, err := s.GetUserByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	expiry := time.Now().UTC().Add(10 * time.Minute)
	require.NoError(t, s.SetResetOTP(ctx, user.ID, "123456", expiry))
	got, err = s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456", got.ResetOTP)
	require.NotNil(t, got.ResetOTPExpiry)

	require.NoError(t, s.ResetPassword(ctx, user.ID, "newhash"))
	got, err = s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", got.PasswordHash)
	assert.Empty(t, got.ResetOTP)
	assert.Nil(t, got.ResetOTPExpiry)
}

func TestProductFiltersAndUpdate(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateProduct(ctx, testProduct("Netflix Premium", "OTT", models.ProductActive,
		models.PricingMap{"1": 199, "3": 549})))
	require.NoError(t, s.CreateProduct(ctx, testProduct("Canva Pro", "Software", models.ProductActive,
		models.PricingMap{"1": 499})))
	require.NoError(t, s.CreateProduct(ctx, testProduct("YouTube Premium", "OTT", models.ProductOutOfStock,
		models.PricingMap{"1": 129})))

	all, err := s.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	ott, err := s.ListProducts(ctx, ProductFilter{Category: "OTT"})
	require.NoError(t, err)
	assert.Len(t, ott, 2)

	active, err := s.ListProducts(ctx, ProductFilter{Status: models.ProductActive})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	found, err := s.ListProducts(ctx, ProductFilter{Search: "premium"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	updated, err := s.UpdateProduct(ctx, all[0].ID, map[string]any{"status": models.ProductOutOfStock})
	require.NoError(t, err)
	assert.Equal(t, models.ProductOutOfStock, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)

	_, err = s.UpdateProduct(ctx, "missing", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteProduct(ctx, all[0].ID))
	assert.ErrorIs(t, s.DeleteProduct(ctx, all[0].ID), ErrNotFound)
}

func TestOrdersAndRevenue(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	newOrder := func(userID string, amount int64, status models.OrderStatus) models.Order {
		return models.Order{
			ID:            uuid.New().String(),
			UserID:        userID,
			ProductID:     uuid.New().String(),
			Duration:      3,
			Amount:        amount,
			PaymentMethod: models.PaymentOnline,
			Status:        status,
			CreatedAt:     time.Now().UTC(),
		}
	}
	require.NoError(t, s.CreateOrder(ctx, newOrder("u1", 549, models.OrderCompleted)))
	require.NoError(t, s.CreateOrder(ctx, newOrder("u1", 999, models.OrderProcessing)))
	require.NoError(t, s.CreateOrder(ctx, newOrder("u2", 129, models.OrderCompleted)))

	own, err := s.ListOrdersByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, own, 2)

	all, err := s.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	total, err := s.SumCompletedAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(549+129), total)

	updated, err := s.UpdateOrderStatus(ctx, own[0].ID, models.OrderCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, updated.Status)

	_, err = s.UpdateOrderStatus(ctx, "missing", models.OrderCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}
