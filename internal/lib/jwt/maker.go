// Package jwt реализует генерацию и парсинг JWT токенов сессии.
//
// Claims расширяет стандартные claims JWT, добавляя subject —
// идентификатор, под которым пользователь вошёл (username или email).
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает пользовательские данные, хранящиеся в JWT.
type Claims struct {
	Subject              string `json:"subject"` // Идентификатор пользователя (username или email)
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// GenerateAccessToken создает access токен с заданным subject,
// подписывая его секретным ключом. Время жизни определяется полем accessTTL.
func (j *MakerImpl) GenerateAccessToken(subject string) (string, error) {
	return j.generate(subject, j.accessTTL)
}

// GenerateRefreshToken создает refresh токен с заданным subject.
// Время жизни определяется полем refreshTTL.
func (j *MakerImpl) GenerateRefreshToken(subject string) (string, error) {
	return j.generate(subject, j.refreshTTL)
}

func (j *MakerImpl) generate(subject string, ttl time.Duration) (string, error) {
	claims := Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет его подпись и срок жизни,
// возвращает Claims с данными, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}

// Validate сообщает, корректен ли токен. Любая ошибка разбора,
// неверная подпись или истёкший срок дают false.
func (j *MakerImpl) Validate(tokenStr string) bool {
	_, err := j.ParseToken(tokenStr)
	return err == nil
}
