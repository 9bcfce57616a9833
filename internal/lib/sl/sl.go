// Package sl содержит мелкие помощники для структурированного логирования
// через slog, чтобы хендлеры и сервисы формировали атрибуты одинаково.
package sl

import "log/slog"

// Err возвращает атрибут с ключом "error" и текстом ошибки.
// Все слои приложения логируют ошибки через него, чтобы поле
// называлось одинаково во всех записях.
//
//	log.Error("failed to create task", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
