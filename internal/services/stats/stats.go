// Package services считает сводные показатели магазина для бэк-офиса.
package services

import (
	"context"
	"fmt"
)

// Counter отдает счетчики и выручку из хранилища.
type Counter interface {
	CountUsers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	SumCompletedAmount(ctx context.Context) (int64, error)
}

// Stats — сводка магазина. Выручка учитывает только завершенные заказы.
type Stats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalProducts int64 `json:"totalProducts"`
	TotalOrders   int64 `json:"totalOrders"`
	TotalRevenue  int64 `json:"totalRevenue"`
}

// StatsService собирает сводку магазина.
type StatsService struct {
	counter Counter
}

// NewStatsService создает новый экземпляр StatsService.
func NewStatsService(counter Counter) *StatsService {
	return &StatsService{counter: counter}
}

// Collect возвращает актуальную сводку: число пользователей, товаров,
// заказов и суммарную выручку.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	const op = "services.stats.Collect"

	users, err := s.counter.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	products, err := s.counter.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	orders, err := s.counter.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	revenue, err := s.counter.SumCompletedAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Stats{
		TotalUsers:    users,
		TotalProducts: products,
		TotalOrders:   orders,
		TotalRevenue:  revenue,
	}, nil
}
