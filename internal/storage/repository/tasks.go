package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/myperseverance/progress-tracker/internal/models"
)

// CreateTask вставляет новую задачу прогресса и возвращает её ID.
// При нарушении уникальности (username, date, title) возвращает ErrTaskExists.
func (s *Storage) CreateTask(ctx context.Context, task models.Task) (int64, error) {
	const op = "storage.CreateTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO progress_tasks (title, description, completed, date, username)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Completed, task.Date, task.Username).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrTaskExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListTasksByDate возвращает задачи пользователя на указанную дату.
func (s *Storage) ListTasksByDate(ctx context.Context, username string, date time.Time) ([]*models.Task, error) {
	const op = "storage.ListTasksByDate"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, completed, date, username
			  FROM progress_tasks
			  WHERE username = $1 AND date = $2
			  ORDER BY id`
	return s.queryTasks(ctx, op, query, username, date)
}

// ListTasksInRange возвращает задачи пользователя с датой внутри диапазона,
// границы включительно.
func (s *Storage) ListTasksInRange(ctx context.Context, rng models.SummaryRange) ([]*models.Task, error) {
	const op = "storage.ListTasksInRange"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, completed, date, username
			  FROM progress_tasks
			  WHERE username = $1 AND date BETWEEN $2 AND $3
			  ORDER BY date, id`
	return s.queryTasks(ctx, op, query, rng.Username, rng.StartDate, rng.EndDate)
}

// ReadTask возвращает задачу по ID в рамках пользователя.
func (s *Storage) ReadTask(ctx context.Context, id int64, username string) (*models.Task, error) {
	const op = "storage.ReadTask"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, completed, date, username
			  FROM progress_tasks
			  WHERE id = $1 AND username = $2`
	t := &models.Task{}
	row := s.DB.QueryRowContext(ctx, query, id, username)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed,
		&t.Date, &t.Username); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// UpdateTask обновляет задачу по ID в рамках пользователя
// и возвращает количество обновлённых строк. Смена названия может
// нарушить уникальность (username, date, title) — тогда ErrTaskExists.
func (s *Storage) UpdateTask(ctx context.Context, task models.Task, id int64, username string) (int, error) {
	const op = "storage.UpdateTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE progress_tasks
			  SET title = $1, description = $2, completed = $3, date = $4
			  WHERE id = $5 AND username = $6`
	result, err := s.DB.ExecContext(ctx, query,
		task.Title, task.Description, task.Completed, task.Date, id, username)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrTaskExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveTask удаляет задачу по ID в рамках пользователя
// и возвращает количество удалённых строк.
func (s *Storage) RemoveTask(ctx context.Context, id int64, username string) (int, error) {
	const op = "storage.RemoveTask"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM progress_tasks WHERE id = $1 AND username = $2`
	result, err := s.DB.ExecContext(ctx, query, id, username)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func (s *Storage) queryTasks(ctx context.Context, op, query string, args ...any) ([]*models.Task, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Task
	for rows.Next() {
		var t models.Task
		if err = rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed,
			&t.Date, &t.Username); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
