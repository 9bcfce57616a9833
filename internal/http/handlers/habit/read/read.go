// Package read реализует HTTP-обработчик получения привычки по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/myperseverance/progress-tracker/internal/http/response"
	"github.com/myperseverance/progress-tracker/internal/lib/sl"
	"github.com/myperseverance/progress-tracker/internal/models"
	"github.com/myperseverance/progress-tracker/internal/services"
)

// Service описывает интерфейс бизнес-логики чтения привычки.
type Service interface {
	Read(ctx context.Context, id int64) (*models.Habit, error)
}

// Handler обрабатывает HTTP-запросы получения привычки.
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
	const op = "handlers.habit.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	habit, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			log.Warn("habit not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("habit not found"))
			return
		}
		log.Error("failed to read habit", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read habit"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"habit": habit,
	}))
}
