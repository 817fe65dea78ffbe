// Package list реализует HTTP-обработчик публичной выборки каталога.
//
// Handler принимает фильтры из строки запроса, передает их в сервис каталога
// и возвращает список товаров в JSON-формате.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/discount-storefront/internal/http/response"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	catalogservice "github.com/magabrotheeeer/discount-storefront/internal/services/catalog"
)

// Handler управляет HTTP-запросами публичной выборки каталога.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки каталога.
type Service interface {
	List(ctx context.Context, filter catalogservice.Filter) ([]*models.Product, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список товаров каталога
// @Description Возвращает товары с фильтрами по категории, статусу, подстроке
// названия и диапазону минимальной цены. Некорректные числовые параметры
// молча игнорируются.
// @Tags Products
// @Produce json
// @Param category query string false "Категория; all или пусто — без фильтра"
// @Param status query string false "instock или outofstock"
// @Param search query string false "Подстрока названия без учета регистра"
// @Param minPrice query integer false "Нижняя граница минимальной цены"
// @Param maxPrice query integer false "Верхняя граница минимальной цены"
// @Success 200 {object} response.Response "Список товаров"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	filter := catalogservice.Filter{
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Search:   q.Get("search"),
		MinPrice: parsePrice(q.Get("minPrice")),
		MaxPrice: parsePrice(q.Get("maxPrice")),
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list products"))
		return
	}

	log.Info("products listed", slog.Int("count", len(products)))
	render.JSON(w, r, response.OKWithData(products))
}

func parsePrice(raw string) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
