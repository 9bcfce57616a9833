package signin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/myperseverance/progress-tracker/internal/services"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, login, password string) (string, string, error) {
	args := m.Called(ctx, login, password)
	return args.String(0), args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSigninHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		wantCookie     bool
	}{
		{
			name: "successful login by username",
			body: `{"signIn":"alice","password":"Str0ng!pass"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice", "Str0ng!pass").
					Return("access-token", "refresh-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"accessToken":"access-token"`,
			wantCookie:     true,
		},
		{
			name: "successful login by email",
			body: `{"signIn":"alice@example.com","password":"Str0ng!pass"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice@example.com", "Str0ng!pass").
					Return("access-token", "refresh-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"accessToken":"access-token"`,
			wantCookie:     true,
		},
		{
			name:           "broken json",
			body:           `{"signIn":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "missing password",
			body:           `{"signIn":"alice"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is a required field`,
		},
		{
			name: "wrong credentials",
			body: `{"signIn":"alice","password":"wrong"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice", "wrong").
					Return("", "", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `invalid credentials`,
		},
		{
			name: "storage failure",
			body: `{"signIn":"alice","password":"Str0ng!pass"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice", "Str0ng!pass").
					Return("", "", errors.New("db error"))
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

			req := httptest.NewRequest(http.MethodPost, "/api/signin", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			cookies := w.Result().Cookies()
			if tt.wantCookie {
				require.Len(t, cookies, 1)
				cookie := cookies[0]
				assert.Equal(t, RefreshCookieName, cookie.Name)
				assert.Equal(t, "refresh-token", cookie.Value)
				assert.Equal(t, "/api", cookie.Path)
				assert.Equal(t, 7*24*3600, cookie.MaxAge)
				assert.True(t, cookie.HttpOnly)
				assert.True(t, cookie.Secure)
				assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
			} else {
				assert.Empty(t, cookies, "no refresh cookie on failure")
			}

			mockService.AssertExpectations(t)
		})
	}
}
