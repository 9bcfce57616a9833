// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату регистрации.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// После регистрации запись неизменяема.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // Хэш пароля пользователя
	RegisteredAt time.Time // Момент регистрации
}

// UserProfile — публичное представление пользователя, отдаваемое наружу.
// Хэш пароля в него никогда не попадает.
type UserProfile struct {
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registeredAt"`
}
