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

	"github.com/magabrotheeeer/discount-storefront/internal/cache"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	"github.com/magabrotheeeer/discount-storefront/internal/storage"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, product models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) InsertProducts(ctx context.Context, products []models.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter storage.ProductFilter) ([]*models.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, id string, fields map[string]any) (*models.Product, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(products ProductRepository) *CatalogService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCatalogService(products, cache.NoopCache{}, log)
}

func int64ptr(v int64) *int64 { return &v }

func TestListFilters(t *testing.T) {
	t.Run("категория all не фильтрует, статус instock превращается в active", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("ListProducts", mock.Anything, storage.ProductFilter{Status: models.ProductActive}).
			Return([]*models.Product{}, nil)

		svc := newTestService(products)
		_, err := svc.List(context.Background(), Filter{Category: "all", Status: "instock"})
		require.NoError(t, err)
		products.AssertExpectations(t)
	})

	t.Run("ценовой диапазон сравнивается с минимальной ценой", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("ListProducts", mock.Anything, mock.Anything).Return([]*models.Product{
			{ID: "cheap", Pricing: models.PricingMap{"1": 119, "12": 1099}},
			{ID: "mid", Pricing: models.PricingMap{"1": 499}},
			{ID: "gaps", Pricing: models.PricingMap{"1": 0, "3": 459}}, // нулевые длительности не считаются
			{ID: "empty", Pricing: models.PricingMap{}},                // минимальная цена 0
		}, nil)

		svc := newTestService(products)
		got, err := svc.List(context.Background(), Filter{MinPrice: int64ptr(200), MaxPrice: int64ptr(500)})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "mid", got[0].ID)
		assert.Equal(t, "gaps", got[1].ID)
	})
}

func TestCreateDefaults(t *testing.T) {
	products := new(MockProductRepository)
	products.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.ID != "" &&
			p.Status == models.ProductActive &&
			p.Features != nil && len(p.Features) == 0 &&
			len(p.Pricing) == len(models.Durations)
	})).Return(nil)

	svc := newTestService(products)
	product, err := svc.Create(context.Background(), CreateInput{Name: "Canva Pro", Category: "Software"})
	require.NoError(t, err)
	assert.Equal(t, models.ProductActive, product.Status)
	products.AssertExpectations(t)
}

func TestUpdatePartial(t *testing.T) {
	products := new(MockProductRepository)
	name := "Netflix Standard"
	var clearedDate *time.Time
	products.On("UpdateProduct", mock.Anything, "p1", map[string]any{
		"name":          name,
		"sale_end_date": clearedDate,
	}).Return(&models.Product{ID: "p1", Name: name}, nil)

	svc := newTestService(products)
	got, err := svc.Update(context.Background(), "p1", UpdateInput{
		Name:        &name,
		SaleEndDate: &clearedDate,
	})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	products.AssertExpectations(t)
}

func TestSeed(t *testing.T) {
	t.Run("пустой каталог заполняется демо-товарами", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("CountProducts", mock.Anything).Return(int64(0), nil)
		products.On("InsertProducts", mock.Anything, mock.MatchedBy(func(ps []models.Product) bool {
			return len(ps) == 6
		})).Return(nil)

		svc := newTestService(products)
		n, err := svc.Seed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 6, n)
		products.AssertExpectations(t)
	})

	t.Run("повторный сид ничего не вставляет", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("CountProducts", mock.Anything).Return(int64(6), nil)

		svc := newTestService(products)
		n, err := svc.Seed(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
		products.AssertNotCalled(t, "InsertProducts", mock.Anything, mock.Anything)
	})
}
