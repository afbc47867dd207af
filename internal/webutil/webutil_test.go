package webutil_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "正常系: AppError はコードをそのまま返す",
			err:        model.NewAppError("BOOK_NOT_FOUND", "単語帳が見つかりません。", "", model.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "BOOK_NOT_FOUND",
		},
		{
			name:       "正常系: ラップされたセンチネル",
			err:        fmt.Errorf("repo: %w", model.ErrConflict),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "正常系: 無効なテナントは 403",
			err:        model.ErrTenantNotFound,
			wantStatus: http.StatusForbidden,
			wantCode:   "TENANT_NOT_FOUND",
		},
		{
			name:       "正常系: 入力エラー",
			err:        model.NewAppError("VALIDATION_ERROR", "x", "name", model.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "異常系: 予期せぬエラーは詳細を隠す",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			webutil.HandleError(rr, nil, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var resp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.NotContains(t, rr.Body.String(), "connection refused")
		})
	}
}

type sampleRequest struct {
	Name     string `json:"name" validate:"required,max=5"`
	Password string `json:"password" validate:"required,min=6"`
	Status   string `json:"status" validate:"omitempty,oneof=online offline"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  string
		wantField string
		wantMsg   string
	}{
		{name: "正常系: 有効", body: `{"name":"abc","password":"secret1"}`},
		{name: "異常系: 必須項目なし", body: `{"password":"secret1"}`, wantCode: "VALIDATION_ERROR", wantField: "name", wantMsg: "名前は必須項目です。"},
		{name: "異常系: 文字数不足", body: `{"name":"a","password":"x"}`, wantCode: "VALIDATION_ERROR", wantField: "password", wantMsg: "パスワードは6文字以上で入力してください。"},
		{name: "異常系: 列挙外", body: `{"name":"a","password":"secret1","status":"gone"}`, wantCode: "VALIDATION_ERROR", wantField: "status", wantMsg: "ステータスは[online offline]のいずれかを指定してください。"},
		{name: "異常系: 未知のフィールド", body: `{"name":"a","password":"secret1","admin":true}`, wantCode: "INVALID_REQUEST_BODY"},
		{name: "異常系: JSONでない", body: `name=a`, wantCode: "INVALID_REQUEST_BODY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst sampleRequest
			err := webutil.DecodeAndValidate(httptest.NewRecorder(), req, &dst)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "abc", dst.Name)
				return
			}
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Detail.Code)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, appErr.Detail.Field)
				assert.Equal(t, tt.wantMsg, appErr.Detail.Message)
			}
		})
	}
}

func TestURLParamUint(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    uint
		wantErr bool
	}{
		{name: "正常系: 数値", path: "/books/12", want: 12},
		{name: "異常系: 0", path: "/books/0", wantErr: true},
		{name: "異常系: 文字列", path: "/books/abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uint
			var gotErr error
			r := chi.NewRouter()
			r.Get("/books/{id}", func(w http.ResponseWriter, r *http.Request) {
				got, gotErr = webutil.URLParamUint(r, "id")
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantErr {
				assert.ErrorIs(t, gotErr, model.ErrInvalidInput)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryPage(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    model.Page
		wantErr bool
	}{
		{name: "正常系: 省略時は既定値", query: "", want: model.Page{Page: 1, PageSize: model.DefaultPageSize}},
		{name: "正常系: 上限に丸める", query: "?page=3&pageSize=500", want: model.Page{Page: 3, PageSize: model.MaxPageSize}},
		{name: "正常系: 0ページは1ページ目", query: "?page=0&pageSize=10", want: model.Page{Page: 1, PageSize: 10}},
		{name: "異常系: 数値でない", query: "?page=x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := webutil.QueryPage(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	id, err := webutil.QueryUint(httptest.NewRequest(http.MethodGet, "/?user_id=5", nil), "user_id")
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)
	_, err = webutil.QueryUint(httptest.NewRequest(http.MethodGet, "/?user_id=-5", nil), "user_id")
	assert.Error(t, err)
}
