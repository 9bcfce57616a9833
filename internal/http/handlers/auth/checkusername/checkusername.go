// Package checkusername реализует HTTP-обработчик проверки доступности
// имени пользователя. Строка неверного формата считается доступной.
package checkusername

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/myperseverance/progress-tracker/internal/http/response"
	"github.com/myperseverance/progress-tracker/internal/lib/sl"
)

// Service описывает интерфейс проверки доступности имени пользователя.
type Service interface {
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

// Handler обрабатывает HTTP-запросы проверки имени пользователя.
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
	const op = "handlers.auth.checkusername"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := r.URL.Query().Get("username")

	available, err := h.service.IsUsernameAvailable(r.Context(), username)
	if err != nil {
		log.Error("failed to check username availability", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"available": available,
	}))
}
