// Package models содержит доменную модель привычки.
package models

// Habit представляет привычку. Поле CreatedBy — свободная строка,
// связь с пользователем на уровне модели не обеспечивается.
type Habit struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedBy   string `json:"createdBy"`
}

// DummyHabit используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Habit.
type DummyHabit struct {
	Name        string `json:"name" validate:"required"` // Название привычки
	Description string `json:"description"`              // Описание (опционально)
	Completed   bool   `json:"completed"`                // Отметка о выполнении
	CreatedBy   string `json:"createdBy"`                // Кто создал (свободная строка)
}
