package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/magabrotheeeer/discount-storefront/internal/models"
)

// CreateOrder сохраняет новый заказ.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) error {
	const op = "storage.CreateOrder"
	if _, err := s.orders().InsertOne(ctx, order); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListOrdersByUser возвращает заказы одного покупателя, самые свежие первыми.
func (s *Storage) ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	const op = "storage.ListOrdersByUser"
	cursor, err := s.orders().Find(ctx, bson.M{"user_id": userID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.Order
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAllOrders возвращает все заказы, самые свежие первыми.
func (s *Storage) ListAllOrders(ctx context.Context) ([]*models.Order, error) {
	const op = "storage.ListAllOrders"
	cursor, err := s.orders().Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.Order
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateOrderStatus ставит новый статус и отметку изменения.
// Возвращает свежий документ или ErrNotFound.
func (s *Storage) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	const op = "storage.UpdateOrderStatus"
	res, err := s.orders().UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var order models.Order
	if err := s.orders().FindOne(ctx, bson.M{"id": id}).Decode(&order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &order, nil
}

// CountOrders возвращает общее число заказов.
func (s *Storage) CountOrders(ctx context.Context) (int64, error) {
	const op = "storage.CountOrders"
	n, err := s.orders().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// SumCompletedAmount считает выручку: сумму amount по заказам
// в статусе completed.
func (s *Storage) SumCompletedAmount(ctx context.Context) (int64, error) {
	const op = "storage.SumCompletedAmount"
	cursor, err := s.orders().Find(ctx, bson.M{"status": models.OrderCompleted})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	var orders []*models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	var total int64
	for _, o := range orders {
		total += o.Amount
	}
	return total, nil
}
