// Package create реализует HTTP-обработчик создания задачи прогресса.
//
// Задача создается для пользователя из контекста запроса. Новая задача
// всегда невыполнена; дата по умолчанию — сегодня. Повтор заголовка
// в пределах одного дня отклоняется.
package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/myperseverance/progress-tracker/internal/http/middlewarectx"
	"github.com/myperseverance/progress-tracker/internal/http/response"
	"github.com/myperseverance/progress-tracker/internal/lib/sl"
	"github.com/myperseverance/progress-tracker/internal/models"
	"github.com/myperseverance/progress-tracker/internal/services"
	"github.com/myperseverance/progress-tracker/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики создания задачи.
type Service interface {
	Create(ctx context.Context, username string, req models.DummyTask) (int64, error)
}

// Handler обрабатывает HTTP-запросы создания задачи.
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
	const op = "handlers.task.create"

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

	var req models.DummyTask
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.service.Create(r.Context(), username, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskExists):
			log.Warn("task already exists for this date", slog.String("title", req.Title))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("task already exists for this date"))
		case errors.Is(err, services.ErrInvalidDate):
			log.Warn("invalid date format", slog.String("date", req.Date))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format"))
		default:
			log.Error("failed to create task", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create task"))
		}
		return
	}

	log.Info("task created", slog.Int64("id", id), slog.String("username", username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
