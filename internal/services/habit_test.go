package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/myperseverance/progress-tracker/internal/models"
)

type HabitRepoMock struct{ mock.Mock }

func (m *HabitRepoMock) CreateHabit(ctx context.Context, habit models.Habit) (int64, error) {
	args := m.Called(ctx, habit)
	return args.Get(0).(int64), args.Error(1)
}
func (m *HabitRepoMock) ReadHabit(ctx context.Context, id int64) (*models.Habit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Habit), args.Error(1)
}
func (m *HabitRepoMock) ListHabits(ctx context.Context) ([]*models.Habit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Habit), args.Error(1)
}
func (m *HabitRepoMock) UpdateHabit(ctx context.Context, habit models.Habit, id int64) (int, error) {
	args := m.Called(ctx, habit, id)
	return args.Int(0), args.Error(1)
}
func (m *HabitRepoMock) RemoveHabit(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func TestHabitService_Create(t *testing.T) {
	repo := new(HabitRepoMock)
	cache := new(CacheMock)
	svc := NewHabitService(repo, cache, newNoopLogger())

	repo.On("CreateHabit", mock.Anything, mock.MatchedBy(func(h models.Habit) bool {
		return h.Name == "meditation" && h.CreatedBy == "someone"
	})).Return(int64(3), nil).Once()
	cache.On("Set", "habit:3", mock.Anything, time.Hour).Return(nil).Once()

	id, err := svc.Create(context.Background(), models.DummyHabit{
		Name:      "meditation",
		CreatedBy: "someone",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestHabitService_Read(t *testing.T) {
	habit := &models.Habit{ID: 3, Name: "meditation"}

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := new(HabitRepoMock)
		cache := new(CacheMock)
		svc := NewHabitService(repo, cache, newNoopLogger())

		cache.On("Get", "habit:3", mock.Anything).
			Run(func(args mock.Arguments) {
				*args.Get(1).(**models.Habit) = habit
			}).
			Return(true, nil).Once()

		got, err := svc.Read(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "meditation", got.Name)
		repo.AssertNotCalled(t, "ReadHabit", mock.Anything, mock.Anything)
	})

	t.Run("cache miss loads and caches", func(t *testing.T) {
		repo := new(HabitRepoMock)
		cache := new(CacheMock)
		svc := NewHabitService(repo, cache, newNoopLogger())

		cache.On("Get", "habit:3", mock.Anything).Return(false, nil).Once()
		repo.On("ReadHabit", mock.Anything, int64(3)).Return(habit, nil).Once()
		cache.On("Set", "habit:3", habit, time.Hour).Return(nil).Once()

		got, err := svc.Read(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "meditation", got.Name)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("unknown habit", func(t *testing.T) {
		repo := new(HabitRepoMock)
		cache := new(CacheMock)
		svc := NewHabitService(repo, cache, newNoopLogger())

		cache.On("Get", "habit:99", mock.Anything).Return(false, nil).Once()
		repo.On("ReadHabit", mock.Anything, int64(99)).
			Return(nil, fmt.Errorf("storage.ReadHabit: %w", sql.ErrNoRows)).Once()

		_, err := svc.Read(context.Background(), 99)
		assert.ErrorIs(t, err, ErrHabitNotFound)
	})
}

func TestHabitService_Update(t *testing.T) {
	t.Run("invalidates cache and updates", func(t *testing.T) {
		repo := new(HabitRepoMock)
		cache := new(CacheMock)
		svc := NewHabitService(repo, cache, newNoopLogger())

		cache.On("Invalidate", "habit:3").Return(nil).Once()
		repo.On("UpdateHabit", mock.Anything, mock.MatchedBy(func(h models.Habit) bool {
			return h.Name == "meditation" && h.Completed
		}), int64(3)).Return(1, nil).Once()

		err := svc.Update(context.Background(), 3, models.DummyHabit{
			Name:      "meditation",
			Completed: true,
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("unknown habit", func(t *testing.T) {
		repo := new(HabitRepoMock)
		cache := new(CacheMock)
		svc := NewHabitService(repo, cache, newNoopLogger())

		cache.On("Invalidate", "habit:99").Return(nil).Once()
		repo.On("UpdateHabit", mock.Anything, mock.Anything, int64(99)).Return(0, nil).Once()

		err := svc.Update(context.Background(), 99, models.DummyHabit{Name: "x"})
		assert.ErrorIs(t, err, ErrHabitNotFound)
	})
}

func TestHabitService_Remove(t *testing.T) {
	repo := new(HabitRepoMock)
	cache := new(CacheMock)
	svc := NewHabitService(repo, cache, newNoopLogger())

	cache.On("Invalidate", "habit:3").Return(nil).Once()
	repo.On("RemoveHabit", mock.Anything, int64(3)).Return(1, nil).Once()
	require.NoError(t, svc.Remove(context.Background(), 3))

	cache.On("Invalidate", "habit:99").Return(nil).Once()
	repo.On("RemoveHabit", mock.Anything, int64(99)).Return(0, nil).Once()
	assert.ErrorIs(t, svc.Remove(context.Background(), 99), ErrHabitNotFound)
}
