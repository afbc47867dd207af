package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LoginRequest はテナント内ログインAPIのリクエストボディ
type LoginRequest struct {
	Account  string     `json:"account" validate:"required"`
	Password string     `json:"password" validate:"required"`
	Role     string     `json:"role" validate:"omitempty,oneof=admin student"`
	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
}

// StudentLoginRequest は生徒用ログインのリクエストボディ
type StudentLoginRequest struct {
	Account  string    `json:"account" validate:"required"`
	Password string    `json:"password" validate:"required"`
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`
}

// SysLoginRequest はシステム管理者ログインのリクエストボディ
type SysLoginRequest struct {
	Account  string `json:"account" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
// sub にはユーザーIDを入れる
type JWTCustomClaims struct {
	TenantID string `json:"tid"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session はリクエストごとの認証済みユーザー情報
type Session struct {
	UserID   uint
	TenantID uuid.UUID
	Role     string
}

func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s *Session) IsStudent() bool {
	return s.Role == RoleStudent
}
