// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей, привычек и задач прогресса. Предоставляет методы
// создания, чтения, обновления, удаления и выборки записей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки нарушения уникальности, на которые опирается бизнес-логика.
// Предварительные проверки доступности — только оптимизация,
// корректность обеспечивают ограничения таблиц.
var (
	// ErrUserExists — email или username уже заняты.
	ErrUserExists = errors.New("user already exists")
	// ErrTaskExists — задача с таким названием на этот день уже есть.
	ErrTaskExists = errors.New("task already exists")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями, привычками и задачами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'progress_tasks'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table progress_tasks missing or query error: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
