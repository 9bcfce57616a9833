// Package middlewarectx содержит HTTP middleware для обработки JWT токенов.
//
// AuthMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization и в случае успеха добавляет в контекст имя пользователя
// и роль для дальнейшего использования в обработчиках.
//
// Middleware никогда не отклоняет запрос сам: при отсутствии или
// невалидности токена запрос продолжается без идентификации, а решение
// об отказе принимает обработчик.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/myperseverance/progress-tracker/internal/lib/sl"
	"github.com/myperseverance/progress-tracker/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
)

// RoleUser — единственная роль, назначаемая аутентифицированным пользователям.
const RoleUser = "USER"

// Identifier описывает сервис, способный определить владельца access токена.
type Identifier interface {
	Identify(ctx context.Context, tokenStr string) (*models.User, error)
}

// AuthMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке
// Authorization. Если токен валиден, добавляет имя пользователя и роль в
// контекст запроса, иначе пропускает запрос дальше без идентификации.
// Повторно не выполняется, если идентификация уже установлена.
func AuthMiddleware(auth Identifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			if username, ok := r.Context().Value(User).(string); ok && username != "" {
				next.ServeHTTP(w, r)
				return
			}

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := auth.Identify(r.Context(), tokenStr)
			if err != nil {
				log.Warn("failed to identify token owner", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), User, user.Username)
			ctx = context.WithValue(ctx, Role, RoleUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Username извлекает имя пользователя из контекста запроса.
// Возвращает false, если запрос не был идентифицирован.
func Username(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(User).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
