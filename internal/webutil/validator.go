package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":           "名前",
	"account":        "アカウント",
	"password":       "パスワード",
	"role":           "ロール",
	"tenant_id":      "テナントID",
	"admin_name":     "管理者名",
	"admin_account":  "管理者アカウント",
	"admin_password": "管理者パスワード",
	"contact_email":  "連絡先メールアドレス",
	"status":         "ステータス",
	"class_name":     "クラス名",
	"description":    "説明",
	"daily_target":   "1日の目標単語数",
	"book_id":        "単語帳ID",
	"word_id":        "単語ID",
	"spelling":       "綴り",
	"meaning":        "意味",
	"sentence":       "例文",
	"phonics_data":   "フォニックス",
	"root_info":      "語源",
	"audio_url":      "音声URL",
	"difficulty":     "難易度",
	"words":          "単語リスト",
	"is_correct":     "回答の正誤",
	"user_input":     "入力内容",
	"correct_count":  "正解数",
	"wrong_count":    "不正解数",
	"hint_count":     "ヒント数",
}

func translateField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// パラメータを持たないタグ
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe))
			return t
		})
	}
	// パラメータ付きのタグ (min=1 など)
	registerParamTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("url", "{0}は有効なURLではありません。")
	registerParamTranslation("oneof", "{0}は[{1}]のいずれかを指定してください。")

	// 文字列は文字数、数値は値の範囲として扱う
	Validator.RegisterTranslation("min", Trans, func(ut ut.Translator) error {
		if err := ut.Add("min-string", "{0}は{1}文字以上で入力してください。", true); err != nil {
			return err
		}
		return ut.Add("min-number", "{0}は{1}以上で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		key := "min-string"
		if fe.Kind() != reflect.String {
			key = "min-number"
		}
		t, _ := ut.T(key, translateField(fe), fe.Param())
		return t
	})
	Validator.RegisterTranslation("max", Trans, func(ut ut.Translator) error {
		if err := ut.Add("max-string", "{0}は{1}文字以下で入力してください。", true); err != nil {
			return err
		}
		return ut.Add("max-number", "{0}は{1}以下で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		key := "max-string"
		if fe.Kind() != reflect.String {
			key = "max-number"
		}
		t, _ := ut.T(key, translateField(fe), fe.Param())
		return t
	})
}
