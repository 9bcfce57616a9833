// Package identity содержит проверки формата учётных данных:
// email, username и пароля. Правила едины для регистрации
// и для проверок доступности имени/почты.
package identity

import (
	"regexp"
	"unicode"
)

var (
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{2,19}$`)
)

// ValidEmail сообщает, соответствует ли строка формату email.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidUsername сообщает, соответствует ли строка формату имени пользователя:
// 3–20 символов, начинается с буквы, далее буквы, цифры или подчёркивание.
func ValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// ValidPassword проверяет стойкость пароля: не короче 8 символов,
// есть строчная и заглавная буквы, цифра и спецсимвол, нет пробелов.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSpecial
}
