// Package refresh реализует HTTP-обработчик обновления access токена
// по refresh токену из HttpOnly cookie. Refresh токен не ротируется.
package refresh

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/myperseverance/progress-tracker/internal/http/handlers/auth/signin"
	"github.com/myperseverance/progress-tracker/internal/http/response"
	"github.com/myperseverance/progress-tracker/internal/lib/sl"
)

// Service описывает интерфейс выпуска нового access токена.
type Service interface {
	RefreshAccessToken(refreshToken string) (string, error)
}

// Handler обрабатывает HTTP-запросы обновления access токена.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cookie, err := r.Cookie(signin.RefreshCookieName)
	if err != nil || cookie.Value == "" {
		log.Warn("refresh cookie missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid refresh token"))
		return
	}

	access, err := h.service.RefreshAccessToken(cookie.Value)
	if err != nil {
		log.Warn("failed to refresh access token", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid refresh token"))
		return
	}

	log.Info("access token refreshed")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"accessToken": access,
	}))
}
