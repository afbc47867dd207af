package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID uint, tenantID, role string, expiresAt time.Time) string {
	t.Helper()
	claims := &model.JWTCustomClaims{
		TenantID: tenantID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// sessionEcho はコンテキストの Session を JSON で返すハンドラー
func sessionEcho(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSession(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil || tenantID != session.TenantID {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user_id":   session.UserID,
		"tenant_id": session.TenantID.String(),
		"role":      session.Role,
	})
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: testSecret}}
	handler := middleware.JWTAuthMiddleware(cfg)(http.HandlerFunc(sessionEcho))
	tenantID := uuid.New()
	valid := signToken(t, testSecret, 42, tenantID.String(), model.RoleStudent, time.Now().Add(time.Hour))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "正常系: 有効なトークン", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "正常系: bearer は小文字でもよい", header: "bearer " + valid, wantStatus: http.StatusOK},
		{name: "異常系: ヘッダーなし", header: "", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "異常系: 形式不正", header: "Token " + valid, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{
			name:       "異常系: 署名鍵が違う",
			header:     "Bearer " + signToken(t, "other", 42, tenantID.String(), model.RoleStudent, time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "異常系: 期限切れ",
			header:     "Bearer " + signToken(t, testSecret, 42, tenantID.String(), model.RoleStudent, time.Now().Add(-time.Minute)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "異常系: 不明なロール",
			header:     "Bearer " + signToken(t, testSecret, 42, tenantID.String(), "owner", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "異常系: テナントIDが不正",
			header:     "Bearer " + signToken(t, testSecret, 42, "not-a-uuid", model.RoleStudent, time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rr))
				return
			}
			assert.JSONEq(t, `{"user_id":42,"tenant_id":"`+tenantID.String()+`","role":"student"}`, rr.Body.String())
		})
	}
}

func TestParseAccessToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &model.JWTCustomClaims{
		TenantID:         uuid.NewString(),
		Role:             model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = middleware.ParseAccessToken(token, testSecret)
	assert.Error(t, err)
}

func TestRequireRole(t *testing.T) {
	handler := middleware.RequireRole(model.RoleAdmin, model.RoleSysAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		session    *model.Session
		wantStatus int
	}{
		{name: "正常系: 管理者", session: &model.Session{UserID: 1, TenantID: uuid.New(), Role: model.RoleAdmin}, wantStatus: http.StatusNoContent},
		{name: "異常系: 生徒", session: &model.Session{UserID: 2, TenantID: uuid.New(), Role: model.RoleStudent}, wantStatus: http.StatusForbidden},
		{name: "異常系: セッションなし", wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.session != nil {
				req = req.WithContext(middleware.WithSession(req.Context(), tt.session))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

type stubAuthenticator struct {
	err error
}

func (s stubAuthenticator) Authenticate(context.Context, uuid.UUID) error { return s.err }

func TestTenantAuthMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	session := &model.Session{UserID: 1, TenantID: uuid.New(), Role: model.RoleAdmin}

	tests := []struct {
		name       string
		authErr    error
		withTenant bool
		wantStatus int
	}{
		{name: "正常系: 有効なテナント", withTenant: true, wantStatus: http.StatusNoContent},
		{name: "異常系: 無効なテナント", authErr: model.ErrTenantNotFound, withTenant: true, wantStatus: http.StatusForbidden},
		{name: "異常系: DBエラー", authErr: errors.New("db down"), withTenant: true, wantStatus: http.StatusInternalServerError},
		{name: "異常系: テナント情報なし", wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.withTenant {
				req = req.WithContext(middleware.WithSession(req.Context(), session))
			}
			rr := httptest.NewRecorder()
			middleware.TenantAuthMiddleware(stubAuthenticator{err: tt.authErr})(ok).ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDevTenantContextMiddleware(t *testing.T) {
	handler := middleware.DevTenantContextMiddleware(http.HandlerFunc(sessionEcho))
	tenantID := uuid.New()

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "正常系: ロール省略時は admin",
			headers:    map[string]string{"X-Tenant-ID": tenantID.String()},
			wantStatus: http.StatusOK,
			wantBody:   `{"user_id":0,"tenant_id":"` + tenantID.String() + `","role":"admin"}`,
		},
		{
			name:       "正常系: 生徒",
			headers:    map[string]string{"X-Tenant-ID": tenantID.String(), "X-User-ID": "7", "X-Role": "student"},
			wantStatus: http.StatusOK,
			wantBody:   `{"user_id":7,"tenant_id":"` + tenantID.String() + `","role":"student"}`,
		},
		{name: "異常系: テナントIDなし", headers: map[string]string{}, wantStatus: http.StatusUnauthorized},
		{name: "異常系: テナントIDが不正", headers: map[string]string{"X-Tenant-ID": "abc"}, wantStatus: http.StatusUnauthorized},
		{name: "異常系: ユーザーIDが不正", headers: map[string]string{"X-Tenant-ID": tenantID.String(), "X-User-ID": "-1"}, wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}
