// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "VocabDrill"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort               = ":8080"
	DefaultLogLevel                 = "info"
	DefaultTimezone                 = "Asia/Shanghai"
	DefaultAuthEnabled              = true
	DefaultAccessTokenTTL           = 24 * time.Hour
	DefaultDashboardTTL             = 60 * time.Second
	DefaultWordCountRefreshInterval = time.Hour
)

// DefaultAdminName はテナント作成時に管理者名が省略された場合の表示名
const DefaultAdminName = "管理员"
