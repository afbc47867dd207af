// Package handlers は HTTP リクエストを解析してサービス層を呼び出し、JSON で応答します
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/webutil"

	"github.com/google/uuid"
)

// requestScope はコンテキストからテナントIDとセッションを取り出します
func requestScope(r *http.Request) (uuid.UUID, *model.Session, error) {
	session, err := middleware.GetSession(r.Context())
	if err != nil {
		return uuid.Nil, nil, err
	}
	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		return uuid.Nil, nil, err
	}
	return tenantID, session, nil
}

// resolveUserID は生徒なら本人のIDを、管理者なら requested を対象にします
func resolveUserID(session *model.Session, requested uint) (uint, error) {
	if session.IsStudent() {
		if session.UserID == 0 {
			return 0, model.NewAppError("UNAUTHORIZED", "ユーザー情報が見つかりません。", "", model.ErrUnauthorized)
		}
		return session.UserID, nil
	}
	if requested == 0 {
		return 0, model.NewAppError("USER_ID_REQUIRED", "user_idを指定してください。", "user_id", model.ErrInvalidInput)
	}
	return requested, nil
}

// queryUserID は ?user_id を resolveUserID に通します
func queryUserID(r *http.Request, session *model.Session) (uint, error) {
	requested, err := webutil.QueryUint(r, "user_id")
	if err != nil {
		return 0, err
	}
	return resolveUserID(session, requested)
}

// ownerID は生徒なら本人のID、管理者なら 0 (制限なし)
func ownerID(session *model.Session) uint {
	if session.IsStudent() {
		return session.UserID
	}
	return 0
}

func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError は想定内のエラー (4xx) を Info、それ以外を Error で記録して応答します
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	if webutil.MapErrorToStatusCode(err) < http.StatusInternalServerError {
		logger.Info(msg, slog.Any("error", err))
	} else {
		logger.Error(msg, slog.Any("error", err))
	}
	webutil.HandleError(w, logger, err)
}
