// Package signin реализует HTTP-обработчик аутентификации пользователей.
//
// Обработчик принимает email или имя пользователя в одном поле signIn,
// проверяет пароль через сервис и при успехе возвращает access токен
// в теле ответа и refresh токен в HttpOnly cookie.
package signin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/myperseverance/progress-tracker/internal/http/response"
	"github.com/myperseverance/progress-tracker/internal/lib/sl"
	"github.com/myperseverance/progress-tracker/internal/services"
)

// RefreshCookieName — имя cookie с refresh токеном.
const RefreshCookieName = "refreshToken"

// refreshCookieMaxAge — время жизни cookie, семь суток.
const refreshCookieMaxAge = 7 * 24 * 3600

// Request — входные данные для входа. SignIn принимает email или username.
type Request struct {
	SignIn   string `json:"signIn" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, login, password string) (access, refresh string, err error)
}

// Handler обрабатывает HTTP-запросы входа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signin"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	access, refresh, err := h.service.Login(r.Context(), req.SignIn, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn("invalid credentials", slog.String("signIn", req.SignIn))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    refresh,
		Path:     "/api",
		MaxAge:   refreshCookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	log.Info("login success", slog.String("signIn", req.SignIn))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"accessToken": access,
	}))
}
