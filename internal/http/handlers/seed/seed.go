// Package seed реализует HTTP-обработчик заполнения пустого каталога
// демо-товарами. Повторный вызов безопасен и ничего не меняет.
package seed

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/discount-storefront/internal/http/response"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
)

// Handler управляет HTTP-запросами сида каталога.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сида каталога.
type Service interface {
	Seed(ctx context.Context) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Заполнение каталога демо-товарами
// @Description Вставляет демо-товары только в пустой каталог. Повторный
// вызов возвращает count = 0.
// @Tags Seed
// @Produce json
// @Success 200 {object} response.Response "Число добавленных товаров"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /seed [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.seed"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	count, err := h.service.Seed(r.Context())
	if err != nil {
		log.Error("failed to seed catalog", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not seed catalog"))
		return
	}

	log.Info("seed finished", slog.Int("count", count))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count": count,
	}))
}
