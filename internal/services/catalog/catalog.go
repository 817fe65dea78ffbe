// Package services содержит логику бизнес-уровня для работы с каталогом
// товаров: выборка с фильтрами, карточка товара, админские операции и сид.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/discount-storefront/internal/lib/pricing"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	"github.com/magabrotheeeer/discount-storefront/internal/storage"
)

// productCacheTTL — время жизни карточки товара в кеше.
const productCacheTTL = time.Hour

// ProductRepository описывает контракт для работы с каталогом в хранилище.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) error
	InsertProducts(ctx context.Context, products []models.Product) error
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, filter storage.ProductFilter) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id string, fields map[string]any) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	CountProducts(ctx context.Context) (int64, error)
}

// Cache хранит карточки товаров между запросами.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Filter — фильтры публичной выборки каталога. Категория "all" и пустая
// строка равнозначны. Статус принимает значения instock и outofstock.
// Ценовой диапазон сравнивается с минимальной ценой товара.
type Filter struct {
	Category string
	Status   string
	Search   string
	MinPrice *int64
	MaxPrice *int64
}

// CatalogService отвечает за выборку и изменение каталога товаров.
type CatalogService struct {
	products ProductRepository
	cache    Cache
	log      *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(products ProductRepository, cache Cache, log *slog.Logger) *CatalogService {
	return &CatalogService{products: products, cache: cache, log: log}
}

func productCacheKey(id string) string {
	return "product:" + id
}

// List возвращает товары по фильтрам. Фильтры категории, статуса и поиска
// выполняет база; ценовой диапазон отсеивается здесь по минимальной цене.
func (s *CatalogService) List(ctx context.Context, filter Filter) ([]*models.Product, error) {
	const op = "services.catalog.List"

	dbFilter := storage.ProductFilter{Search: filter.Search}
	if filter.Category != "" && filter.Category != "all" {
		dbFilter.Category = filter.Category
	}
	switch filter.Status {
	case "instock":
		dbFilter.Status = models.ProductActive
	case "outofstock":
		dbFilter.Status = models.ProductOutOfStock
	}

	items, err := s.products.ListProducts(ctx, dbFilter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if filter.MinPrice == nil && filter.MaxPrice == nil {
		return items, nil
	}

	result := make([]*models.Product, 0, len(items))
	for _, p := range items {
		lowest := pricing.Lowest(p.Pricing)
		if filter.MinPrice != nil && lowest < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && lowest > *filter.MaxPrice {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// Read возвращает карточку товара, сперва пробуя кеш.
func (s *CatalogService) Read(ctx context.Context, id string) (*models.Product, error) {
	const op = "services.catalog.Read"

	var cached models.Product
	found, err := s.cache.Get(productCacheKey(id), &cached)
	if err != nil {
		s.log.Warn("product cache read failed", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(productCacheKey(id), product, productCacheTTL); err != nil {
		s.log.Warn("product cache write failed", sl.Err(err))
	}
	return product, nil
}

// CreateInput — поля нового товара. Отсутствующие получают значения
// по умолчанию: пустые фичи, нулевая карта цен, статус active.
type CreateInput struct {
	Name        string
	Description string
	Category    string
	Image       string
	Features    []string
	Pricing     models.PricingMap
	SalePrice   models.PricingMap
	SaleEndDate *time.Time
	Status      models.ProductStatus
}

// Create добавляет новый товар в каталог.
func (s *CatalogService) Create(ctx context.Context, in CreateInput) (*models.Product, error) {
	const op = "services.catalog.Create"

	product := models.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		Features:    in.Features,
		Pricing:     in.Pricing,
		SalePrice:   in.SalePrice,
		SaleEndDate: in.SaleEndDate,
		Status:      in.Status,
		CreatedAt:   time.Now().UTC(),
	}
	if product.Features == nil {
		product.Features = []string{}
	}
	if product.Pricing == nil {
		product.Pricing = models.ZeroPricing()
	}
	if product.Status == "" {
		product.Status = models.ProductActive
	}

	if err := s.products.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("product created", slog.String("id", product.ID), slog.String("name", product.Name))
	return &product, nil
}

// UpdateInput — частичное обновление товара: nil-поля не трогаются.
// SalePrice и SaleEndDate, переданные явно, могут и очищать акцию.
type UpdateInput struct {
	Name        *string
	Description *string
	Category    *string
	Image       *string
	Features    []string
	Pricing     models.PricingMap
	SalePrice   *models.PricingMap
	SaleEndDate **time.Time
	Status      *models.ProductStatus
}

// Update применяет частичное обновление товара и сбрасывает его кеш.
func (s *CatalogService) Update(ctx context.Context, id string, in UpdateInput) (*models.Product, error) {
	const op = "services.catalog.Update"

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.Features != nil {
		fields["features"] = in.Features
	}
	if in.Pricing != nil {
		fields["pricing"] = in.Pricing
	}
	if in.SalePrice != nil {
		fields["sale_price"] = *in.SalePrice
	}
	if in.SaleEndDate != nil {
		fields["sale_end_date"] = *in.SaleEndDate
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}

	product, err := s.products.UpdateProduct(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Invalidate(productCacheKey(id)); err != nil {
		s.log.Warn("product cache invalidate failed", sl.Err(err))
	}
	return product, nil
}

// Delete безвозвратно удаляет товар и сбрасывает его кеш.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	const op = "services.catalog.Delete"
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Invalidate(productCacheKey(id)); err != nil {
		s.log.Warn("product cache invalidate failed", sl.Err(err))
	}
	s.log.Info("product deleted", slog.String("id", id))
	return nil
}

// Seed заполняет пустой каталог демо-товарами. Повторный вызов ничего
// не делает и возвращает count = 0.
func (s *CatalogService) Seed(ctx context.Context) (int, error) {
	const op = "services.catalog.Seed"

	n, err := s.products.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if n > 0 {
		return 0, nil
	}

	demo := demoProducts(time.Now().UTC())
	if err := s.products.InsertProducts(ctx, demo); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("demo catalog seeded", slog.Int("count", len(demo)))
	return len(demo), nil
}
