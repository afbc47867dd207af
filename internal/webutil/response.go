// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_5_vocab_drill/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err))
		}
	} else {
		// 予期せぬエラー: 詳細はログにだけ出す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "サーバー内部でエラーが発生しました。",
			},
		}
		if code, msg, ok := sentinelDetail(err); ok {
			errResp.Error.Code = code
			errResp.Error.Message = msg
		}
	}

	RespondWithJSON(w, statusCode, errResp)
}

// sentinelDetail は AppError でラップされていないセンチネルエラーの既定メッセージ
func sentinelDetail(err error) (string, string, bool) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return "NOT_FOUND", "リソースが見つかりません。", true
	case errors.Is(err, model.ErrInvalidInput):
		return "INVALID_INPUT", "入力内容が正しくありません。", true
	case errors.Is(err, model.ErrUnauthorized):
		return "UNAUTHORIZED", "認証が必要です。", true
	case errors.Is(err, model.ErrForbidden):
		return "FORBIDDEN", "この操作を行う権限がありません。", true
	case errors.Is(err, model.ErrTenantNotFound):
		return "TENANT_NOT_FOUND", "テナントが見つからないか、無効です。", true
	case errors.Is(err, model.ErrConflict):
		return "CONFLICT", "既に存在します。", true
	}
	return "", "", false
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden) || errors.Is(err, model.ErrTenantNotFound):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
