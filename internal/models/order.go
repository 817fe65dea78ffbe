package models

import "time"

// PaymentMethod описывает способ оплаты заказа.
type PaymentMethod string

const (
	// PaymentOnline — онлайн-оплата (заглушка, без реального провайдера).
	PaymentOnline PaymentMethod = "online"
	// PaymentWhatsapp — оформление через мессенджер.
	PaymentWhatsapp PaymentMethod = "whatsapp"
)

// OrderStatus описывает закрытое множество статусов заказа.
type OrderStatus string

const (
	// OrderPending — заказ ожидает подтверждения (оформление через мессенджер).
	OrderPending OrderStatus = "pending"
	// OrderProcessing — заказ в обработке (онлайн-оплата).
	OrderProcessing OrderStatus = "processing"
	// OrderCompleted — заказ выполнен.
	OrderCompleted OrderStatus = "completed"
	// OrderCancelled — заказ отменен.
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus проверяет, входит ли статус в допустимое множество.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// InitialOrderStatus возвращает начальный статус заказа по способу оплаты:
// pending для мессенджера, processing для всего остального.
func InitialOrderStatus(m PaymentMethod) OrderStatus {
	if m == PaymentWhatsapp {
		return OrderPending
	}
	return OrderProcessing
}

// Order представляет заказ покупателя. Поля пользователя и товара
// денормализованы на момент создания и не перечитываются из живых записей.
type Order struct {
	ID            string        `bson:"id" json:"id"`                                    // Уникальный идентификатор (uuid)
	UserID        string        `bson:"user_id" json:"userId"`                           // Покупатель
	UserEmail     string        `bson:"user_email" json:"userEmail"`                     // Почта покупателя на момент заказа
	UserName      string        `bson:"user_name" json:"userName"`                       // Имя покупателя на момент заказа
	ProductID     string        `bson:"product_id" json:"productId"`                     // Товар
	ProductName   string        `bson:"product_name" json:"productName"`                 // Название товара на момент заказа
	Duration      int           `bson:"duration" json:"duration"`                        // Длительность подписки в месяцах
	Amount        int64         `bson:"amount" json:"amount"`                            // Сумма заказа в целых единицах валюты
	PaymentMethod PaymentMethod `bson:"payment_method" json:"paymentMethod"`             // online или whatsapp
	Status        OrderStatus   `bson:"status" json:"status"`                            // Текущий статус
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`                     // Дата создания
	UpdatedAt     *time.Time    `bson:"updated_at,omitempty" json:"updatedAt,omitempty"` // Дата последнего изменения статуса
}
