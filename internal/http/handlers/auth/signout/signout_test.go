package signout

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myperseverance/progress-tracker/internal/http/handlers/auth/signin"
)

func TestSignoutHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	handler := New(logger)

	req := httptest.NewRequest(http.MethodPost, "/api/signout", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `signed out`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, signin.RefreshCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, "/api", cookie.Path)
	assert.Less(t, cookie.MaxAge, 0, "cookie must be expired")
}
