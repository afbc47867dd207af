// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"
	"strconv"

	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/webutil"

	"github.com/google/uuid"
)

// DevTenantContextMiddleware は開発時用ミドルウェアです。
// X-Tenant-ID / X-User-ID / X-Role ヘッダーから Session を組み立ててコンテキストに設定します。
// 署名検証もDBでの存在チェックも行いません。
func DevTenantContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		tenantIDStr := r.Header.Get("X-Tenant-ID")
		if tenantIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-Tenant-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-IDヘッダーが必要です。", "X-Tenant-ID", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}
		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Tenant-ID format", "tenant_id", tenantIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-IDの形式が正しくありません。", "X-Tenant-ID", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}

		role := r.Header.Get("X-Role")
		if role == "" {
			role = model.RoleAdmin
		}
		var userID uint
		if raw := r.Header.Get("X-User-ID"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-User-IDの形式が正しくありません。", "X-User-ID", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}
			userID = uint(id)
		}

		logger.Debug("[DEV AUTH] Session set to context (no validation)", "tenant_id", tenantID.String(), "role", role)

		session := &model.Session{UserID: userID, TenantID: tenantID, Role: role}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}
