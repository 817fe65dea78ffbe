// Package services содержит логику бизнес-уровня для работы с заказами:
// оформление, выборка и смена статуса в бэк-офисе.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/discount-storefront/internal/lib/pricing"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	"github.com/magabrotheeeer/discount-storefront/internal/storage"
)

var (
	// ErrProductNotFound — заказ ссылается на несуществующий товар.
	ErrProductNotFound = errors.New("product not found")
	// ErrDurationUnavailable — у товара нет цены на выбранный срок.
	ErrDurationUnavailable = errors.New("duration unavailable for product")
	// ErrInvalidStatus — статус не входит в допустимый набор.
	ErrInvalidStatus = errors.New("invalid order status")
)

// OrderRepository описывает контракт для работы с заказами в хранилище.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) error
	ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error)
	ListAllOrders(ctx context.Context) ([]*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
}

// ProductReader читает карточку товара для денормализации заказа.
type ProductReader interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// EventPublisher отправляет события заказов во внешнюю шину.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// Customer — данные покупателя из его токена, которые заказ фиксирует
// на момент оформления.
type Customer struct {
	ID    string
	Email string
	Name  string
}

// OrderEvent — тело события, которое уходит в шину при изменениях заказа.
type OrderEvent struct {
	OrderID   string             `json:"orderId"`
	UserID    string             `json:"userId"`
	ProductID string             `json:"productId"`
	Amount    int64              `json:"amount"`
	Status    models.OrderStatus `json:"status"`
}

// OrderService отвечает за оформление заказов и управление их статусами.
// publisher может быть nil, тогда события не отправляются.
type OrderService struct {
	orders    OrderRepository
	products  ProductReader
	publisher EventPublisher
	log       *slog.Logger
}

// NewOrderService создает новый экземпляр OrderService.
func NewOrderService(orders OrderRepository, products ProductReader, publisher EventPublisher, log *slog.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, publisher: publisher, log: log}
}

// Create оформляет заказ: находит товар, фиксирует его имя и цену
// на выбранный срок с учетом акции и ставит начальный статус по способу
// оплаты. Сумма считается на сервере, клиентская не принимается.
func (s *OrderService) Create(ctx context.Context, customer Customer, productID string, duration int, method models.PaymentMethod) (*models.Order, error) {
	const op = "services.order.Create"

	product, err := s.products.GetProduct(ctx, productID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	amount := pricing.EffectivePrice(product, strconv.Itoa(duration), now)
	if amount <= 0 {
		return nil, ErrDurationUnavailable
	}

	order := models.Order{
		ID:            uuid.New().String(),
		UserID:        customer.ID,
		UserEmail:     customer.Email,
		UserName:      customer.Name,
		ProductID:     product.ID,
		ProductName:   product.Name,
		Duration:      duration,
		Amount:        amount,
		PaymentMethod: method,
		Status:        models.InitialOrderStatus(method),
		CreatedAt:     now,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish("order.created", &order)
	s.log.Info("order created",
		slog.String("id", order.ID),
		slog.String("product", order.ProductName),
		slog.Int64("amount", order.Amount))
	return &order, nil
}

// ListByUser возвращает заказы покупателя, самые свежие первыми.
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	return s.orders.ListOrdersByUser(ctx, userID)
}

// ListAll возвращает все заказы магазина для бэк-офиса.
func (s *OrderService) ListAll(ctx context.Context) ([]*models.Order, error) {
	return s.orders.ListAllOrders(ctx)
}

// UpdateStatus переводит заказ в новый статус. Любой переход между
// допустимыми статусами разрешен.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	const op = "services.order.UpdateStatus"

	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	order, err := s.orders.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish("order.status_changed", order)
	return order, nil
}

func (s *OrderService) publish(routingKey string, order *models.Order) {
	if s.publisher == nil {
		return
	}
	event := OrderEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		ProductID: order.ProductID,
		Amount:    order.Amount,
		Status:    order.Status,
	}
	if err := s.publisher.Publish(routingKey, event); err != nil {
		s.log.Error("failed to publish order event", sl.Err(err))
	}
}
