package repository

import (
	"context"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя
func (f *TestDataFactory) CreateUser(t *testing.T, uid, username, email, passwordHash string) {
	_, err := f.storage.DB.Exec(`INSERT INTO users (uid, username, email, password_hash, registered_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uid, username, email, passwordHash, time.Now().UTC())
	require.NoError(t, err)
}

// CreateTask создает тестовую задачу прогресса
func (f *TestDataFactory) CreateTask(t *testing.T, title, description string, completed bool,
	date time.Time, username string) int64 {
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO progress_tasks
		(title, description, completed, date, username)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		title, description, completed, date, username).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateHabit создает тестовую привычку
func (f *TestDataFactory) CreateHabit(t *testing.T, name, description string, completed bool, createdBy string) int64 {
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO habits (name, description, completed, created_by)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		name, description, completed, createdBy).Scan(&id)
	require.NoError(t, err)
	return id
}

// setupTestDatabase создает тестовую БД с контейнером PostgreSQL
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort(nat.Port("5432/tcp")),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(3*time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			err = storage.DB.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	_, err = storage.DB.Exec(`
        DROP TABLE IF EXISTS progress_tasks CASCADE;
        DROP TABLE IF EXISTS habits CASCADE;
        DROP TABLE IF EXISTS users CASCADE;

        CREATE TABLE users (
            uid UUID PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            username TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );

        CREATE TABLE habits (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            completed BOOLEAN NOT NULL DEFAULT FALSE,
            created_by TEXT NOT NULL DEFAULT ''
        );

        CREATE TABLE progress_tasks (
            id BIGSERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            completed BOOLEAN NOT NULL DEFAULT FALSE,
            date DATE NOT NULL,
            username TEXT NOT NULL REFERENCES users(username),
            UNIQUE (username, date, title)
        );

        CREATE INDEX idx_progress_tasks_username_date ON progress_tasks(username, date);
    `)
	require.NoError(t, err, "failed to create tables")

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			_ = storage.DB.Close()
		}
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}
