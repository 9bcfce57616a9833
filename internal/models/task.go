// Package models содержит доменные структуры задач прогресса,
// а также вспомогательные типы для приёма данных из JSON-запросов
// и производную структуру дневной сводки.
package models

import "time"

// DateLayout — формат дат задач и сводок во внешнем API.
const DateLayout = "2006-01-02"

// Task представляет собой задачу прогресса на конкретную дату.
// Тройка (Username, Date, Title) уникальна: у одного пользователя
// не может быть двух задач с одинаковым названием на один день.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Date        time.Time `json:"date"`
	Username    string    `json:"-"`
}

// DummyTask используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Task.
// Дата приходит строкой, чтобы её можно было валидировать и парсить вручную.
type DummyTask struct {
	Title       string `json:"title" validate:"required"` // Название задачи
	Description string `json:"description"`               // Описание (опционально)
	Completed   bool   `json:"completed"`                 // Отметка о выполнении
	Date        string `json:"date"`                      // Дата в формате 2006-01-02, по умолчанию сегодня
}

// Summary — дневная сводка прогресса, производная структура.
// Строится по запросу из задач и нигде не хранится.
type Summary struct {
	Date           string   `json:"date"`           // Дата в формате 2006-01-02
	TotalTasks     int      `json:"totalTasks"`     // Всего задач за день
	CompletedTasks int      `json:"completedTasks"` // Из них выполнено
	TaskTitles     []string `json:"taskTitles"`     // Названия выполненных задач в порядке появления
}

// SummaryRange — диапазон дат для построения сводки,
// передаётся в слой доступа к данным.
type SummaryRange struct {
	Username  string    // Имя пользователя
	StartDate time.Time // Дата начала периода (включительно)
	EndDate   time.Time // Дата окончания периода (включительно)
}
