package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskJSONBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "正常系: パスワードを伏せる", body: `{"account":"a","password":"secret"}`, want: `{"account":"a","password":"[MASKED]"}`},
		{name: "正常系: トークンを伏せる", body: `{"access_token":"xyz"}`, want: `{"access_token":"[MASKED]"}`},
		{name: "正常系: JSON以外はそのまま", body: `plain`, want: `plain`},
		{name: "正常系: 空", body: ``, want: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskJSONBody([]byte(tt.body)))
		})
	}
}

func TestFormatHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	h.Add("Accept", "a")
	h.Add("Accept", "b")
	got := formatHeaders(h)
	assert.Equal(t, "[SENSITIVE]", got["Authorization"])
	assert.Equal(t, "a, b", got["Accept"])
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var fromCtx *slog.Logger
	handler := chimiddleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = GetLogger(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"VALIDATION_ERROR"}}`))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"account":"kid","password":"pw123456"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"error":{"code":"VALIDATION_ERROR"}}`, rr.Body.String())
	require.NotNil(t, fromCtx)
	assert.NotSame(t, slog.Default(), fromCtx)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Request completed"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"req_id"`)
	assert.Contains(t, out, `\"password\":\"[MASKED]\"`)
	assert.NotContains(t, out, "pw123456")
}

func TestGetLogger_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, custom, GetLogger(WithLogger(context.Background(), custom)))
}
