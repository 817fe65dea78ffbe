// Package productcreate реализует HTTP-обработчик добавления товара
// в каталог из бэк-офиса.
package productcreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/discount-storefront/internal/http/response"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	catalogservice "github.com/magabrotheeeer/discount-storefront/internal/services/catalog"
)

// Handler управляет HTTP-запросами добавления товаров.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления товара.
type Service interface {
	Create(ctx context.Context, in catalogservice.CreateInput) (*models.Product, error)
}

// Request — тело запроса добавления товара. Отсутствующие поля получают
// значения по умолчанию: пустые фичи, нулевая карта цен, статус active.
type Request struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Category    string            `json:"category" validate:"required"`
	Image       string            `json:"image"`
	Features    []string          `json:"features"`
	Pricing     models.PricingMap `json:"pricing"`
	SalePrice   models.PricingMap `json:"salePrice"`
	SaleEndDate *time.Time        `json:"saleEndDate"`
	Status      string            `json:"status" validate:"omitempty,oneof=active out_of_stock"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавление товара
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Данные товара"
// @Success 200 {object} response.Response "Созданный товар"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Нет прав"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.productcreate"
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

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	product, err := h.service.Create(r.Context(), catalogservice.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Features:    req.Features,
		Pricing:     req.Pricing,
		SalePrice:   req.SalePrice,
		SaleEndDate: req.SaleEndDate,
		Status:      models.ProductStatus(req.Status),
	})
	if err != nil {
		log.Error("failed to create product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create product"))
		return
	}

	log.Info("product created", slog.String("id", product.ID))
	render.JSON(w, r, response.OKWithData(product))
}
