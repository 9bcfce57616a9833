// Package progresstracker собирает HTTP-приложение трекера прогресса.
package progresstracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/myperseverance/progress-tracker/internal/http/handlers/auth/checkemail"
	"github.com/myperseverance/progress-tracker/internal/http/handlers/auth/checkusername"
	"github.com/myperseverance/progress-tracker/internal/http/handlers/auth/refresh"
	"github.com/myperseverance/progress-tracker/internal/http/handlers/auth/signin"
	"github.com/myperseverance/progress-tracker/internal/http/handlers/auth/signout"
	"github.com/myperseverance/progress-tracker/internal/http/handlers/auth/signup"
	habitcreate "github.com/myperseverance/progress-tracker/internal/http/handlers/habit/create"
	habitlist "github.com/myperseverance/progress-tracker/internal/http/handlers/habit/list"
	habitread "github.com/myperseverance/progress-tracker/internal/http/handlers/habit/read"
	habitremove "github.com/myperseverance/progress-tracker/internal/http/handlers/habit/remove"
	habitupdate "github.com/myperseverance/progress-tracker/internal/http/handlers/habit/update"
	taskcreate "github.com/myperseverance/progress-tracker/internal/http/handlers/task/create"
	tasklist "github.com/myperseverance/progress-tracker/internal/http/handlers/task/list"
	taskremove "github.com/myperseverance/progress-tracker/internal/http/handlers/task/remove"
	tasksummary "github.com/myperseverance/progress-tracker/internal/http/handlers/task/summary"
	taskupdate "github.com/myperseverance/progress-tracker/internal/http/handlers/task/update"
	"github.com/myperseverance/progress-tracker/internal/http/handlers/user/me"
	"github.com/myperseverance/progress-tracker/internal/http/middlewarectx"
	"github.com/myperseverance/progress-tracker/internal/services"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *services.AuthService,
	habitService *services.HabitService,
	taskService *services.TaskService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	sessionLimiter := rate.NewLimiter(1, 3)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, sessionLimiter))
			r.Post("/signup", signup.New(logger, authService).ServeHTTP)
			r.Post("/signin", signin.New(logger, authService).ServeHTTP)
			r.Post("/refresh", refresh.New(logger, authService).ServeHTTP)
		})
		r.Post("/signout", signout.New(logger).ServeHTTP)
		r.Get("/check-email", checkemail.New(logger, authService).ServeHTTP)
		r.Get("/check-username", checkusername.New(logger, authService).ServeHTTP)

		// Группа с JWT идентификацией: middleware не отклоняет запросы,
		// отказ отдают обработчики.
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(authService, logger))

			r.Get("/users/me", me.New(logger, authService).ServeHTTP)

			r.Post("/habits", habitcreate.New(logger, habitService).ServeHTTP)
			r.Get("/habits", habitlist.New(logger, habitService).ServeHTTP)
			r.Get("/habits/{id}", habitread.New(logger, habitService).ServeHTTP)
			r.Put("/habits/{id}", habitupdate.New(logger, habitService).ServeHTTP)
			r.Delete("/habits/{id}", habitremove.New(logger, habitService).ServeHTTP)

			r.Route("/progress", func(r chi.Router) {
				r.Post("/tasks", taskcreate.New(logger, taskService).ServeHTTP)
				r.Get("/tasks", tasklist.New(logger, taskService).ServeHTTP)
				r.Put("/tasks/{id}", taskupdate.New(logger, taskService).ServeHTTP)
				r.Delete("/tasks/{id}", taskremove.New(logger, taskService).ServeHTTP)
				r.Get("/summary", tasksummary.New(logger, taskService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
