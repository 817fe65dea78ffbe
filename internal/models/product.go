package models

import "time"

// ProductStatus описывает закрытое множество статусов товара.
type ProductStatus string

const (
	// ProductActive — товар в наличии и продается.
	ProductActive ProductStatus = "active"
	// ProductOutOfStock — товар временно не продается.
	ProductOutOfStock ProductStatus = "out_of_stock"
)

// Durations — допустимые длительности подписки в месяцах.
// Ключи PricingMap всегда берутся из этого списка.
var Durations = []string{"1", "3", "6", "9", "12"}

// PricingMap связывает длительность подписки (в месяцах, строковый ключ)
// с ценой в целых единицах валюты. Цена <= 0 означает, что такая
// длительность не продается.
type PricingMap map[string]int64

// ZeroPricing возвращает карту цен со всеми длительностями по нулю.
// Используется как дефолт при создании товара без цен.
func ZeroPricing() PricingMap {
	p := make(PricingMap, len(Durations))
	for _, d := range Durations {
		p[d] = 0
	}
	return p
}

// Product представляет товар каталога — перепродаваемую подписку.
type Product struct {
	ID          string        `bson:"id" json:"id"`                                           // Уникальный идентификатор (uuid)
	Name        string        `bson:"name" json:"name"`                                       // Название
	Description string        `bson:"description" json:"description"`                         // Описание
	Category    string        `bson:"category" json:"category"`                               // Категория (OTT, Software и т.п.)
	Image       string        `bson:"image" json:"image"`                                     // Ссылка на изображение
	Features    []string      `bson:"features" json:"features"`                               // Список особенностей
	Pricing     PricingMap    `bson:"pricing" json:"pricing"`                                 // Цены по длительностям
	SalePrice   PricingMap    `bson:"sale_price,omitempty" json:"salePrice,omitempty"`        // Акционные цены (опционально)
	SaleEndDate *time.Time    `bson:"sale_end_date,omitempty" json:"saleEndDate,omitempty"`   // Окончание акции (опционально)
	Status      ProductStatus `bson:"status" json:"status"`                                   // active или out_of_stock
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`                            // Дата создания
	UpdatedAt   *time.Time    `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`        // Дата последнего изменения
}
