// Package list реализует HTTP-обработчик получения списка всех привычек.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/myperseverance/progress-tracker/internal/http/response"
	"github.com/myperseverance/progress-tracker/internal/lib/sl"
	"github.com/myperseverance/progress-tracker/internal/models"
)

// Service описывает интерфейс бизнес-логики списка привычек.
type Service interface {
	List(ctx context.Context) ([]*models.Habit, error)
}

// Handler обрабатывает HTTP-запросы списка привычек.
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
	const op = "handlers.habit.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	habits, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list habits", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list habits"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"habits": habits,
		"count":  len(habits),
	}))
}
