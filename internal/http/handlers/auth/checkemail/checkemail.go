// Package checkemail реализует HTTP-обработчик проверки доступности email.
// Строка неверного формата считается доступной: регистрация с ней всё равно
// будет отклонена, а перечисление занятых адресов затрудняется.
package checkemail

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/myperseverance/progress-tracker/internal/http/response"
	"github.com/myperseverance/progress-tracker/internal/lib/sl"
)

// Service описывает интерфейс проверки доступности email.
type Service interface {
	IsEmailAvailable(ctx context.Context, email string) (bool, error)
}

// Handler обрабатывает HTTP-запросы проверки email.
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
	const op = "handlers.auth.checkemail"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")

	available, err := h.service.IsEmailAvailable(r.Context(), email)
	if err != nil {
		log.Error("failed to check email availability", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"available": available,
	}))
}
