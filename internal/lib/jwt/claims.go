// Package jwt реализует генерацию и парсинг JWT токенов сессии.
//
// Maker определяет интерфейс для выпуска access и refresh токенов
// с subject-полем (username или email) и для их проверки.
// MakerImpl — конкретная реализация с использованием секретного ключа
// и двух сроков жизни: короткого для access и длинного для refresh.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для выпуска и проверки JWT токенов.
type Maker interface {
	// GenerateAccessToken выпускает короткоживущий access токен с указанным subject.
	GenerateAccessToken(subject string) (string, error)
	// GenerateRefreshToken выпускает долгоживущий refresh токен с указанным subject.
	GenerateRefreshToken(subject string) (string, error)
	// ParseToken возвращает *Claims с subject, если токен валиден.
	ParseToken(tokenStr string) (*Claims, error)
	// Validate сообщает, проходит ли токен проверку подписи и срока жизни.
	Validate(tokenStr string) bool
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токенов (TTL).
type MakerImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов.
	accessTTL  time.Duration // Время жизни access токена.
	refreshTTL time.Duration // Время жизни refresh токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL токенов.
func NewMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}
