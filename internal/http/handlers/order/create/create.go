// Package create реализует HTTP-обработчик оформления заказа.
//
// Handler принимает JSON-запрос с товаром, сроком и способом оплаты,
// валидирует их, берет данные покупателя из контекста и возвращает
// созданный заказ. Сумма заказа считается на сервере.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/discount-storefront/internal/http/middlewarectx"
	"github.com/magabrotheeeer/discount-storefront/internal/http/response"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	orderservice "github.com/magabrotheeeer/discount-storefront/internal/services/order"
)

// Handler управляет HTTP-запросами оформления заказов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики оформления заказа.
type Service interface {
	Create(ctx context.Context, customer orderservice.Customer, productID string, duration int, method models.PaymentMethod) (*models.Order, error)
}

// Request — тело запроса оформления заказа.
type Request struct {
	ProductID     string `json:"productId" validate:"required,uuid"`
	Duration      int    `json:"duration" validate:"required,oneof=1 3 6 9 12"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=online whatsapp"`
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
// @Summary Оформление заказа
// @Description Создает заказ от имени текущего покупателя. Цена берется из
// каталога с учетом акции, клиентская сумма не принимается. Способ оплаты
// whatsapp дает статус pending, остальные — processing.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Товар, срок и способ оплаты"
// @Success 200 {object} response.Response "Созданный заказ"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос, неизвестный товар или недоступный срок"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	claims, ok := middlewarectx.ClaimsFromContext(r.Context())
	if !ok {
		log.Error("claims not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

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

	customer := orderservice.Customer{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
	}
	order, err := h.service.Create(r.Context(), customer, req.ProductID, req.Duration, models.PaymentMethod(req.PaymentMethod))
	switch {
	case errors.Is(err, orderservice.ErrProductNotFound):
		log.Error("product not found", slog.String("product_id", req.ProductID))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("product not found"))
		return
	case errors.Is(err, orderservice.ErrDurationUnavailable):
		log.Error("duration unavailable", slog.Int("duration", req.Duration))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("duration unavailable for product"))
		return
	case err != nil:
		log.Error("failed to create order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create order"))
		return
	}

	log.Info("order created", slog.String("id", order.ID))
	render.JSON(w, r, response.OKWithData(order))
}
