package create

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/myperseverance/progress-tracker/internal/http/middlewarectx"
	"github.com/myperseverance/progress-tracker/internal/models"
	"github.com/myperseverance/progress-tracker/internal/services"
	"github.com/myperseverance/progress-tracker/internal/storage/repository"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, username string, req models.DummyTask) (int64, error) {
	args := m.Called(ctx, username, req)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "successful creation",
			username: "alice",
			body:     `{"title":"morning run","date":"2025-03-10"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "alice", models.DummyTask{
					Title: "morning run",
					Date:  "2025-03-10",
				}).Return(int64(5), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":5`,
		},
		{
			name:           "no identity in context",
			username:       "",
			body:           `{"title":"morning run"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `unauthorized`,
		},
		{
			name:           "missing title",
			username:       "alice",
			body:           `{"date":"2025-03-10"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Title is a required field`,
		},
		{
			name:     "malformed date",
			username: "alice",
			body:     `{"title":"morning run","date":"10-03-2025"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "alice", mock.Anything).
					Return(int64(0), services.ErrInvalidDate)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid date format`,
		},
		{
			name:     "duplicate title for the day",
			username: "alice",
			body:     `{"title":"morning run","date":"2025-03-10"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "alice", mock.Anything).
					Return(int64(0), repository.ErrTaskExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `task already exists for this date`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/progress/tasks", strings.NewReader(tt.body))
			if tt.username != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.User, tt.username)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
