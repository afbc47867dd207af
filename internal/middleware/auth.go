package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// Session とテナントIDをコンテキストにセットします
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			session, err := ParseAccessToken(headerParts[1], cfg.JWT.SecretKey)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseAccessToken は署名・有効期限を検証し、クレームから Session を組み立てます
func ParseAccessToken(tokenString, secretKey string) (*model.Session, error) {
	claims := &model.JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムが期待通り(HS256)かチェック
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("subject (sub) claim missing")
	}
	userID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return nil, errors.New("invalid subject (sub) format")
	}
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, errors.New("invalid tenant claim")
	}
	switch claims.Role {
	case model.RoleSysAdmin, model.RoleAdmin, model.RoleStudent:
	default:
		return nil, errors.New("invalid role claim")
	}

	return &model.Session{UserID: uint(userID), TenantID: tenantID, Role: claims.Role}, nil
}

// WithSession は Session とテナントIDをコンテキストに格納します
func WithSession(ctx context.Context, session *model.Session) context.Context {
	ctx = context.WithValue(ctx, model.SessionKey, session)
	return context.WithValue(ctx, model.TenantIDKey, session.TenantID)
}

// GetSession はコンテキストから Session を取得します
func GetSession(ctx context.Context) (*model.Session, error) {
	session, ok := ctx.Value(model.SessionKey).(*model.Session)
	if !ok || session == nil {
		return nil, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
	}
	return session, nil
}

func GetTenantIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.TenantIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "コンテキストからテナント情報を取得できませんでした。", "", model.ErrUnauthorized)
	}
	return value, nil
}

// RequireRole は Session のロールが roles のいずれかであることを要求します
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())
			session, err := GetSession(r.Context())
			if err != nil {
				webutil.HandleError(w, logger, err)
				return
			}
			if !slices.Contains(roles, session.Role) {
				logger.Warn("Role check failed", "role", session.Role, "required", roles)
				appErr := model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TenantAuthenticator はテナントが存在し有効かを確認します
type TenantAuthenticator interface {
	Authenticate(ctx context.Context, tenantID uuid.UUID) error
}

// TenantAuthMiddleware はセッションのテナントが有効であることを確認します
func TenantAuthMiddleware(authenticator TenantAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())
			tenantID, err := GetTenantIDFromContext(r.Context())
			if err != nil {
				webutil.HandleError(w, logger, err)
				return
			}
			if err := authenticator.Authenticate(r.Context(), tenantID); err != nil {
				logger.Warn("Tenant authentication failed", "tenant_id", tenantID.String(), "error", err)
				webutil.HandleError(w, logger, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
