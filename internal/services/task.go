// Package services содержит бизнес-логику задач прогресса,
// включая построение дневных сводок за период.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/myperseverance/progress-tracker/internal/models"
)

// ErrTaskNotFound возвращается, когда задача с указанным ID не принадлежит
// пользователю или не существует.
var ErrTaskNotFound = errors.New("task not found")

// ErrInvalidDate возвращается при дате, не соответствующей формату 2006-01-02.
var ErrInvalidDate = errors.New("invalid date")

// TaskRepository определяет методы для работы с задачами прогресса в хранилище.
type TaskRepository interface {
	// CreateTask добавляет новую задачу и возвращает её ID.
	CreateTask(ctx context.Context, task models.Task) (int64, error)
	// ReadTask возвращает задачу по ID в рамках пользователя.
	ReadTask(ctx context.Context, id int64, username string) (*models.Task, error)
	// ListTasksByDate возвращает задачи пользователя на дату.
	ListTasksByDate(ctx context.Context, username string, date time.Time) ([]*models.Task, error)
	// ListTasksInRange возвращает задачи пользователя в диапазоне дат, границы включительно.
	ListTasksInRange(ctx context.Context, rng models.SummaryRange) ([]*models.Task, error)
	// UpdateTask обновляет задачу по ID в рамках пользователя.
	UpdateTask(ctx context.Context, task models.Task, id int64, username string) (int, error)
	// RemoveTask удаляет задачу по ID в рамках пользователя.
	RemoveTask(ctx context.Context, id int64, username string) (int, error)
}

// TaskService реализует бизнес-логику работы с задачами прогресса.
// Все операции ограничены задачами владеющего пользователя.
type TaskService struct {
	repo TaskRepository
	log  *slog.Logger
}

// NewTaskService создает новый экземпляр TaskService.
func NewTaskService(repo TaskRepository, log *slog.Logger) *TaskService {
	return &TaskService{
		repo: repo,
		log:  log,
	}
}

// Create создает новую задачу для пользователя и возвращает её ID.
// Новая задача всегда невыполнена; дата по умолчанию — сегодня.
func (s *TaskService) Create(ctx context.Context, username string, req models.DummyTask) (int64, error) {
	date, err := parseDateOrDefault(req.Date, today())
	if err != nil {
		return 0, err
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		Date:        date,
		Username:    username,
	}

	id, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new task", slog.Int64("id", id), slog.String("username", username))
	return id, nil
}

// List возвращает задачи пользователя на дату; пустая строка означает сегодня.
func (s *TaskService) List(ctx context.Context, username, dateStr string) ([]*models.Task, error) {
	date, err := parseDateOrDefault(dateStr, today())
	if err != nil {
		return nil, err
	}
	return s.repo.ListTasksByDate(ctx, username, date)
}

// Update обновляет задачу пользователя по ID. Пустая дата в запросе
// сохраняет дату существующей задачи.
func (s *TaskService) Update(ctx context.Context, username string, id int64, req models.DummyTask) error {
	existing, err := s.repo.ReadTask(ctx, id, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTaskNotFound
		}
		return err
	}

	date, err := parseDateOrDefault(req.Date, existing.Date)
	if err != nil {
		return err
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Date:        date,
	}
	count, err := s.repo.UpdateTask(ctx, task, id, username)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Remove удаляет задачу пользователя по ID.
func (s *TaskService) Remove(ctx context.Context, username string, id int64) error {
	count, err := s.repo.RemoveTask(ctx, id, username)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Summary строит дневные сводки задач пользователя за период.
// Пустые границы дают диапазон от года назад до сегодня включительно.
// Дни без задач записей не порождают; результат отсортирован по дате.
func (s *TaskService) Summary(ctx context.Context, username, startStr, endStr string) ([]models.Summary, error) {
	start, err := parseDateOrDefault(startStr, today().AddDate(-1, 0, 0))
	if err != nil {
		return nil, err
	}
	end, err := parseDateOrDefault(endStr, today())
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListTasksInRange(ctx, models.SummaryRange{
		Username:  username,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*models.Summary)
	for _, task := range tasks {
		key := task.Date.Format(models.DateLayout)
		summary, ok := byDate[key]
		if !ok {
			summary = &models.Summary{Date: key, TaskTitles: []string{}}
			byDate[key] = summary
		}
		summary.TotalTasks++
		if task.Completed {
			summary.CompletedTasks++
			summary.TaskTitles = append(summary.TaskTitles, task.Title)
		}
	}

	result := make([]models.Summary, 0, len(byDate))
	for _, summary := range byDate {
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDateOrDefault(dateStr string, def time.Time) (time.Time, error) {
	if dateStr == "" {
		return def, nil
	}
	parsed, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}
	return parsed, nil
}
