// Package orderupdate реализует HTTP-обработчик смены статуса заказа
// из бэк-офиса.
package orderupdate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/discount-storefront/internal/http/response"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
	"github.com/magabrotheeeer/discount-storefront/internal/models"
	orderservice "github.com/magabrotheeeer/discount-storefront/internal/services/order"
	"github.com/magabrotheeeer/discount-storefront/internal/storage"
)

// Handler управляет HTTP-запросами смены статуса заказов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики смены статуса заказа.
type Service interface {
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
}

// Request — тело запроса смены статуса.
type Request struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
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
// @Summary Смена статуса заказа
// @Description Переводит заказ в любой из допустимых статусов.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID заказа"
// @Param request body Request true "Новый статус"
// @Success 200 {object} response.Response "Обновленный заказ"
// @Failure 400 {object} response.ErrorResponse "Некорректный статус"
// @Failure 401 {object} response.ErrorResponse "Нет прав"
// @Failure 404 {object} response.ErrorResponse "Заказ не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/orders/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.orderupdate"
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

	id := chi.URLParam(r, "id")
	order, err := h.service.UpdateStatus(r.Context(), id, models.OrderStatus(req.Status))
	switch {
	case errors.Is(err, orderservice.ErrInvalidStatus):
		log.Error("invalid order status", slog.String("status", req.Status))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid order status"))
		return
	case errors.Is(err, storage.ErrNotFound):
		log.Error("order not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("order not found"))
		return
	case err != nil:
		log.Error("failed to update order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update order"))
		return
	}

	log.Info("order status updated", slog.String("id", id), slog.String("status", req.Status))
	render.JSON(w, r, response.OKWithData(order))
}
