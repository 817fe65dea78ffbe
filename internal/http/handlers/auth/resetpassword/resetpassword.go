// Package resetpassword реализует HTTP-обработчик смены пароля по коду
// восстановления.
package resetpassword

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/discount-storefront/internal/http/response"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
	authservice "github.com/magabrotheeeer/discount-storefront/internal/services/auth"
)

// Handler управляет HTTP-запросами смены пароля.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики смены пароля.
type Service interface {
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// Request — тело запроса смены пароля по коду восстановления.
type Request struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
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
// @Summary Смена пароля по коду восстановления
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Email, код и новый пароль"
// @Success 200 {object} response.Response "Пароль изменен"
// @Failure 400 {object} response.ErrorResponse "Неверный или просроченный код"
// @Failure 404 {object} response.ErrorResponse "Email не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /auth/reset-password [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.resetpassword"
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

	err := h.service.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword)
	switch {
	case errors.Is(err, authservice.ErrUserNotFound):
		log.Error("email not found")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("email not found"))
		return
	case errors.Is(err, authservice.ErrInvalidOTP):
		log.Error("invalid reset code")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid reset code"))
		return
	case errors.Is(err, authservice.ErrOTPExpired):
		log.Error("reset code expired")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("reset code expired"))
		return
	case err != nil:
		log.Error("failed to reset password", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not reset password"))
		return
	}

	log.Info("password reset")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "password updated",
	}))
}
