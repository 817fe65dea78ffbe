// Package pricing содержит расчёты над картой цен товара: минимальная цена,
// доступные длительности и проверка акционного окна. Эти же правила
// использует клиентская витрина при отображении карточек товара.
package pricing

import (
	"time"

	"github.com/magabrotheeeer/discount-storefront/internal/models"
)

// Lowest возвращает минимальную положительную цену из карты цен.
// Пустая карта или карта без положительных значений дает 0.
func Lowest(p models.PricingMap) int64 {
	var lowest int64
	for _, price := range p {
		if price <= 0 {
			continue
		}
		if lowest == 0 || price < lowest {
			lowest = price
		}
	}
	return lowest
}

// AvailableDurations возвращает длительности с положительной ценой
// в фиксированном порядке models.Durations. Первая из них — выбор по умолчанию
// в карточке товара.
func AvailableDurations(p models.PricingMap) []string {
	var result []string
	for _, d := range models.Durations {
		if p[d] > 0 {
			result = append(result, d)
		}
	}
	return result
}

// SaleActive сообщает, действует ли акция на товар в момент now:
// карта акционных цен присутствует И окончание акции строго в будущем.
func SaleActive(product *models.Product, now time.Time) bool {
	if len(product.SalePrice) == 0 || product.SaleEndDate == nil {
		return false
	}
	return now.Before(*product.SaleEndDate)
}

// SaleRemaining возвращает оставшееся время акции. Когда акция не действует,
// результат равен нулю — витрина скрывает обратный отсчет и скидку
// без обращения к серверу.
func SaleRemaining(product *models.Product, now time.Time) time.Duration {
	if !SaleActive(product, now) {
		return 0
	}
	return product.SaleEndDate.Sub(now)
}

// EffectivePrice возвращает цену длительности duration с учётом акции:
// положительная акционная цена при активной акции, иначе базовая цена.
// Ноль означает, что длительность не продается.
func EffectivePrice(product *models.Product, duration string, now time.Time) int64 {
	base := product.Pricing[duration]
	if base <= 0 {
		return 0
	}
	if SaleActive(product, now) {
		if sale := product.SalePrice[duration]; sale > 0 {
			return sale
		}
	}
	return base
}
