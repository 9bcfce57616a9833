package repository

import (
	"context"
	"fmt"

	"github.com/myperseverance/progress-tracker/internal/models"
)

// CreateHabit вставляет новую привычку и возвращает её ID.
func (s *Storage) CreateHabit(ctx context.Context, habit models.Habit) (int64, error) {
	const op = "storage.CreateHabit"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO habits (name, description, completed, created_by)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		habit.Name, habit.Description, habit.Completed, habit.CreatedBy).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadHabit возвращает привычку по ID.
func (s *Storage) ReadHabit(ctx context.Context, id int64) (*models.Habit, error) {
	const op = "storage.ReadHabit"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, completed, created_by
			  FROM habits
			  WHERE id = $1`
	h := &models.Habit{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Completed, &h.CreatedBy); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return h, nil
}

// ListHabits возвращает все привычки.
func (s *Storage) ListHabits(ctx context.Context) ([]*models.Habit, error) {
	const op = "storage.ListHabits"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, completed, created_by
			  FROM habits
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Habit
	for rows.Next() {
		var h models.Habit
		if err = rows.Scan(&h.ID, &h.Name, &h.Description, &h.Completed, &h.CreatedBy); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateHabit обновляет привычку по ID и возвращает количество обновлённых строк.
func (s *Storage) UpdateHabit(ctx context.Context, habit models.Habit, id int64) (int, error) {
	const op = "storage.UpdateHabit"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE habits
			  SET name = $1, description = $2, completed = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		habit.Name, habit.Description, habit.Completed, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveHabit удаляет привычку по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveHabit(ctx context.Context, id int64) (int, error) {
	const op = "storage.RemoveHabit"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM habits WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
