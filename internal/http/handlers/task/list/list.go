// Package list реализует HTTP-обработчик получения задач пользователя на дату.
// Дата передается query-параметром date; пустое значение означает сегодня.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/myperseverance/progress-tracker/internal/http/middlewarectx"
	"github.com/myperseverance/progress-tracker/internal/http/response"
	"github.com/myperseverance/progress-tracker/internal/lib/sl"
	"github.com/myperseverance/progress-tracker/internal/models"
	"github.com/myperseverance/progress-tracker/internal/services"
)

// Service описывает интерфейс бизнес-логики списка задач.
type Service interface {
	List(ctx context.Context, username, dateStr string) ([]*models.Task, error)
}

// Handler обрабатывает HTTP-запросы списка задач.
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
	const op = "handlers.task.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := middlewarectx.Username(r.Context())
	if !ok {
		log.Warn("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	dateStr := r.URL.Query().Get("date")

	tasks, err := h.service.List(r.Context(), username, dateStr)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			log.Warn("invalid date format", slog.String("date", dateStr))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format"))
			return
		}
		log.Error("failed to list tasks", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list tasks"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"tasks": tasks,
		"count": len(tasks),
	}))
}
