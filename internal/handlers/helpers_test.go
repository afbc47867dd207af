// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newDevRouter は開発用ヘッダー認証をかけたルーターを返します
func newDevRouter(register func(r chi.Router)) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.DevTenantContextMiddleware)
	register(r)
	return r
}

func adminHeaders(tenantID uuid.UUID) map[string]string {
	return map[string]string{"X-Tenant-ID": tenantID.String(), "X-Role": model.RoleAdmin}
}

func studentHeaders(tenantID uuid.UUID, userID uint) map[string]string {
	return map[string]string{
		"X-Tenant-ID": tenantID.String(),
		"X-Role":      model.RoleStudent,
		"X-User-ID":   strconv.FormatUint(uint64(userID), 10),
	}
}

// sendRequest はルーターに直接リクエストを流します。
// body が string ならそのまま、それ以外は JSON にして送ります
func sendRequest(t *testing.T, h http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decodeBody はレスポンスボディを T として読み取ります
func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[model.APIErrorResponse](t, rr).Error.Code
}

func ptr[T any](v T) *T {
	return &v
}
