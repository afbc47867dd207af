package service

import (
	"context"
	"errors"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func errInternal(err error) *model.AppError {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
}

// wrapRepoError は ErrNotFound を code/message 付きの AppError に変換し、
// それ以外は内部エラーとして返します。既に AppError の場合はそのまま返します
func wrapRepoError(err error, code, message string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError(code, message, "", model.ErrNotFound)
	}
	return errInternal(err)
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// invalidateDashboard はダッシュボード集計のキャッシュを破棄します。失敗しても処理は続行
func invalidateDashboard(ctx context.Context, c cache.Cache, tenantID uuid.UUID) {
	if err := c.Delete(ctx, cache.DashboardStatsKey(tenantID)); err != nil {
		middleware.GetLogger(ctx).Warn("Failed to invalidate dashboard cache", "error", err, "tenant_id", tenantID.String())
	}
}
