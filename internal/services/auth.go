// Package services содержит логику бизнес-уровня для работы
// с пользователями, сессиями, привычками и задачами прогресса.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/myperseverance/progress-tracker/internal/lib/identity"
	"github.com/myperseverance/progress-tracker/internal/lib/jwt"
	"github.com/myperseverance/progress-tracker/internal/lib/password"
	"github.com/myperseverance/progress-tracker/internal/models"
)

// ErrInvalidCredentials возвращается при любой ошибке проверки учётных данных,
// не раскрывая, что именно не совпало.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserNotFound возвращается, когда subject не соответствует ни одному пользователю.
var ErrUserNotFound = errors.New("user not found")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByLogin возвращает пользователя по username или email.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// ExistsByEmail сообщает, занят ли email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername сообщает, занято ли имя пользователя.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// AuthService отвечает за регистрацию, вход, работу с токенами сессии
// и резолвинг subject токена в пользователя.
type AuthService struct {
	users    UserRepository
	cache    Cache
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, cache Cache, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		cache:    cache,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Ограничения уникальности хранилища — основная защита от дублей,
// предварительные проверки доступности остаются только оптимизацией.
func (s *AuthService) Register(ctx context.Context, email, username, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		UID:          uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
		RegisteredAt: time.Now().UTC(),
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и выпускает пару токенов:
// короткоживущий access и долгоживущий refresh. Subject обоих токенов —
// введённый идентификатор (username или email).
func (s *AuthService) Login(ctx context.Context, login, rawPassword string) (access, refresh string, err error) {
	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	access, err = s.jwtMaker.GenerateAccessToken(login)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.jwtMaker.GenerateRefreshToken(login)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// RefreshAccessToken проверяет refresh токен и выпускает новый access токен
// с тем же subject. Refresh токен не ротируется.
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := s.jwtMaker.ParseToken(refreshToken)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateAccessToken(claims.Subject)
}

// Identify разбирает access токен и возвращает его владельца.
func (s *AuthService) Identify(ctx context.Context, tokenStr string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(tokenStr)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.ResolveSubject(ctx, claims.Subject)
}

// ResolveSubject находит пользователя по subject токена (username или email).
// Пользователи после регистрации неизменяемы, поэтому запись кешируется
// без пути инвалидации.
func (s *AuthService) ResolveSubject(ctx context.Context, subject string) (*models.User, error) {
	cacheKey := fmt.Sprintf("user:%s", subject)
	var cached models.User
	found, err := s.cache.Get(cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	user, err := s.users.GetUserByLogin(ctx, subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(cacheKey, user, 5*time.Minute); err != nil {
		// Кеш не критичен для корректности.
		return user, nil
	}
	return user, nil
}

// Profile возвращает публичный профиль пользователя по subject.
func (s *AuthService) Profile(ctx context.Context, subject string) (*models.UserProfile, error) {
	user, err := s.ResolveSubject(ctx, subject)
	if err != nil {
		return nil, err
	}
	return &models.UserProfile{
		Email:        user.Email,
		Username:     user.Username,
		RegisteredAt: user.RegisteredAt,
	}, nil
}

// IsEmailAvailable сообщает, свободен ли email для регистрации.
// Строка неверного формата считается доступной без обращения к хранилищу,
// чтобы не раскрывать, совпадает ли мусорный ввод с существующей учёткой.
func (s *AuthService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	if !identity.ValidEmail(email) {
		return true, nil
	}
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// IsUsernameAvailable сообщает, свободно ли имя пользователя для регистрации.
// Строка неверного формата считается доступной без обращения к хранилищу.
func (s *AuthService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	if !identity.ValidUsername(username) {
		return true, nil
	}
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
