package webutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go_5_vocab_drill/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 10 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーにします
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", errors.Join(model.ErrInvalidInput, err))
	}
	return nil
}

// ValidateStruct は validate タグで検証し、最初のエラーを日本語の AppError にして返します
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
	}
	return err
}

// DecodeAndValidate は DecodeJSONBody と ValidateStruct をまとめて実行します
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(w, r, dst); err != nil {
		return err
	}
	return ValidateStruct(dst)
}

// URLParamUint はパスパラメータを正の整数として取得します
func URLParamUint(r *http.Request, key string) (uint, error) {
	raw := chi.URLParam(r, key)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, model.NewAppError("INVALID_URL_PARAM", key+"の形式が正しくありません。", key, model.ErrInvalidInput)
	}
	return uint(id), nil
}

// QueryUint はクエリパラメータを整数として取得します。未指定なら 0
func QueryUint(r *http.Request, key string) (uint, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", key+"の形式が正しくありません。", key, model.ErrInvalidInput)
	}
	return uint(id), nil
}

// QueryInt はクエリパラメータを整数として取得します。未指定なら def
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", key+"の形式が正しくありません。", key, model.ErrInvalidInput)
	}
	return v, nil
}

// QueryPage は page / pageSize を読み取り、範囲内に丸めた Page を返します
func QueryPage(r *http.Request) (model.Page, error) {
	page, err := QueryInt(r, "page", 1)
	if err != nil {
		return model.Page{}, err
	}
	pageSize, err := QueryInt(r, "pageSize", model.DefaultPageSize)
	if err != nil {
		return model.Page{}, err
	}
	return model.NewPage(page, pageSize), nil
}
