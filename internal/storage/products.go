package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/discount-storefront/internal/models"
)

// ProductFilter описывает фильтры выборки каталога, которые выполняются
// на стороне базы. Ценовой диапазон считается поверх выборки в сервисе,
// так как минимальная цена — производная от карты цен.
type ProductFilter struct {
	Category string               // Точное совпадение категории; пусто — без фильтра
	Status   models.ProductStatus // Точное совпадение статуса; пусто — без фильтра
	Search   string               // Подстрока названия без учета регистра
}

// CreateProduct сохраняет новый товар каталога.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) error {
	const op = "storage.CreateProduct"
	if _, err := s.products().InsertOne(ctx, product); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// InsertProducts сохраняет пачку товаров. Используется только сидом каталога.
func (s *Storage) InsertProducts(ctx context.Context, products []models.Product) error {
	const op = "storage.InsertProducts"
	docs := make([]any, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	if _, err := s.products().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetProduct возвращает товар по ID или ErrNotFound.
func (s *Storage) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	const op = "storage.GetProduct"
	var product models.Product
	err := s.products().FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &product, nil
}

// ListProducts возвращает товары по фильтру, самые свежие первыми.
func (s *Storage) ListProducts(ctx context.Context, filter ProductFilter) ([]*models.Product, error) {
	const op = "storage.ListProducts"

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}

	cursor, err := s.products().Find(ctx, query, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.Product
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateProduct применяет частичное обновление: трогаются только переданные
// поля, updated_at ставится всегда. Возвращает свежий документ или ErrNotFound.
func (s *Storage) UpdateProduct(ctx context.Context, id string, fields map[string]any) (*models.Product, error) {
	const op = "storage.UpdateProduct"

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := s.products().UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return s.GetProduct(ctx, id)
}

// DeleteProduct безвозвратно удаляет товар. ErrNotFound, если ID не совпал.
func (s *Storage) DeleteProduct(ctx context.Context, id string) error {
	const op = "storage.DeleteProduct"
	res, err := s.products().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// CountProducts возвращает общее число товаров каталога.
func (s *Storage) CountProducts(ctx context.Context) (int64, error) {
	const op = "storage.CountProducts"
	n, err := s.products().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
