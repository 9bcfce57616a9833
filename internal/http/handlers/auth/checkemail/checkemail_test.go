package checkemail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCheckEmailHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "free email",
			url:  "/api/check-email?email=alice@example.com",
			setupMock: func(m *MockService) {
				m.On("IsEmailAvailable", mock.Anything, "alice@example.com").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"available":true`,
		},
		{
			name: "taken email",
			url:  "/api/check-email?email=bob@example.com",
			setupMock: func(m *MockService) {
				m.On("IsEmailAvailable", mock.Anything, "bob@example.com").Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"available":false`,
		},
		{
			name: "blank email reported available",
			url:  "/api/check-email",
			setupMock: func(m *MockService) {
				m.On("IsEmailAvailable", mock.Anything, "").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"available":true`,
		},
		{
			name: "storage failure",
			url:  "/api/check-email?email=alice@example.com",
			setupMock: func(m *MockService) {
				m.On("IsEmailAvailable", mock.Anything, "alice@example.com").
					Return(false, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `internal server error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
