// Package services содержит бизнес-логику для управления привычками и кешированием.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/myperseverance/progress-tracker/internal/models"
)

// ErrHabitNotFound возвращается, когда привычка с указанным ID не существует.
var ErrHabitNotFound = errors.New("habit not found")

// HabitRepository определяет методы для работы с привычками в хранилище.
type HabitRepository interface {
	// CreateHabit добавляет новую привычку и возвращает её ID.
	CreateHabit(ctx context.Context, habit models.Habit) (int64, error)
	// ReadHabit возвращает привычку по ID.
	ReadHabit(ctx context.Context, id int64) (*models.Habit, error)
	// ListHabits возвращает все привычки.
	ListHabits(ctx context.Context) ([]*models.Habit, error)
	// UpdateHabit обновляет привычку по ID и возвращает количество обновлённых записей.
	UpdateHabit(ctx context.Context, habit models.Habit, id int64) (int, error)
	// RemoveHabit удаляет привычку по ID и возвращает количество удалённых записей.
	RemoveHabit(ctx context.Context, id int64) (int, error)
}

// HabitService реализует бизнес-логику работы с привычками, включая кеширование.
// Проверок владения нет: created_by — свободная строка.
type HabitService struct {
	repo  HabitRepository
	cache Cache
	log   *slog.Logger
}

// NewHabitService создает новый экземпляр HabitService.
func NewHabitService(repo HabitRepository, cache Cache, log *slog.Logger) *HabitService {
	return &HabitService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую привычку, кеширует её и возвращает ID.
func (s *HabitService) Create(ctx context.Context, req models.DummyHabit) (int64, error) {
	habit := models.Habit{
		Name:        req.Name,
		Description: req.Description,
		Completed:   req.Completed,
		CreatedBy:   req.CreatedBy,
	}

	id, err := s.repo.CreateHabit(ctx, habit)
	if err != nil {
		return 0, err
	}
	habit.ID = id

	s.log.Info("created new habit", slog.Int64("id", id))

	cacheKey := fmt.Sprintf("habit:%d", id)
	if err := s.cache.Set(cacheKey, habit, time.Hour); err != nil {
		s.log.Warn("failed to cache habit", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает привычку по ID, используя кеш или репозиторий.
func (s *HabitService) Read(ctx context.Context, id int64) (*models.Habit, error) {
	var result *models.Habit
	cacheKey := fmt.Sprintf("habit:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err == nil && found {
		return result, nil
	}

	result, err = s.repo.ReadHabit(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache habit", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает все привычки.
func (s *HabitService) List(ctx context.Context) ([]*models.Habit, error) {
	return s.repo.ListHabits(ctx)
}

// Update обновляет привычку по ID и инвалидирует кеш.
func (s *HabitService) Update(ctx context.Context, id int64, req models.DummyHabit) error {
	cacheKey := fmt.Sprintf("habit:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove habit from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	habit := models.Habit{
		Name:        req.Name,
		Description: req.Description,
		Completed:   req.Completed,
	}
	count, err := s.repo.UpdateHabit(ctx, habit, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// Remove удаляет привычку по ID и инвалидирует кеш.
func (s *HabitService) Remove(ctx context.Context, id int64) error {
	cacheKey := fmt.Sprintf("habit:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove habit from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveHabit(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrHabitNotFound
	}
	return nil
}
