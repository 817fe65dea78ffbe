// Package productupdate реализует HTTP-обработчик частичного обновления
// товара из бэк-офиса.
//
// Поля salePrice и saleEndDate различают отсутствие и явный null: null
// очищает акцию, отсутствующее поле не трогается.
package productupdate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/discount-storefront/internal/http/response"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	catalogservice "github.com/magabrotheeeer/discount-storefront/internal/services/catalog"
	"github.com/magabrotheeeer/discount-storefront/internal/storage"
)

// Handler управляет HTTP-запросами обновления товаров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обновления товара.
type Service interface {
	Update(ctx context.Context, id string, in catalogservice.UpdateInput) (*models.Product, error)
}

// Request — тело запроса частичного обновления: nil-поля не трогаются.
type Request struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Category    *string               `json:"category"`
	Image       *string               `json:"image"`
	Features    []string              `json:"features"`
	Pricing     models.PricingMap     `json:"pricing"`
	SalePrice   json.RawMessage       `json:"salePrice"`
	SaleEndDate json.RawMessage       `json:"saleEndDate"`
	Status      *models.ProductStatus `json:"status"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Обновление товара
// @Description Частичное обновление: переданные поля заменяются, остальные
// не трогаются. Явный null в salePrice или saleEndDate снимает акцию.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID товара"
// @Param request body Request true "Изменяемые поля"
// @Success 200 {object} response.Response "Обновленный товар"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Нет прав"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/products/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.productupdate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	in := catalogservice.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Features:    req.Features,
		Pricing:     req.Pricing,
		Status:      req.Status,
	}
	if req.Status != nil && *req.Status != models.ProductActive && *req.Status != models.ProductOutOfStock {
		log.Error("invalid product status", slog.String("status", string(*req.Status)))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid product status"))
		return
	}

	if len(req.SalePrice) > 0 {
		var salePrice models.PricingMap
		if string(req.SalePrice) != "null" {
			if err := json.Unmarshal(req.SalePrice, &salePrice); err != nil {
				log.Error("failed to decode salePrice", sl.Err(err))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid request body"))
				return
			}
		}
		in.SalePrice = &salePrice
	}
	if len(req.SaleEndDate) > 0 {
		var saleEnd *time.Time
		if string(req.SaleEndDate) != "null" {
			saleEnd = new(time.Time)
			if err := json.Unmarshal(req.SaleEndDate, saleEnd); err != nil {
				log.Error("failed to decode saleEndDate", sl.Err(err))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid request body"))
				return
			}
		}
		in.SaleEndDate = &saleEnd
	}

	id := chi.URLParam(r, "id")
	product, err := h.service.Update(r.Context(), id, in)
	if errors.Is(err, storage.ErrNotFound) {
		log.Error("product not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("product not found"))
		return
	}
	if err != nil {
		log.Error("failed to update product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update product"))
		return
	}

	log.Info("product updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(product))
}
