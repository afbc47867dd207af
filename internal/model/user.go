package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSysAdmin = "sys_admin"
	RoleAdmin    = "admin"
	RoleStudent  = "student"
)

// User はテナント管理者・生徒・システム管理者のアカウント
// システム管理者は uuid.Nil のテナントに所属します
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_users_tenant_account" json:"tenant_id"`
	Name         string    `gorm:"not null" json:"name"`
	Account      string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_users_tenant_account" json:"account"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;index" json:"role"`
	ClassName    string    `json:"class_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse はクライアントに返すユーザー情報
type UserResponse struct {
	ID        uint      `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Name      string    `json:"name"`
	Account   string    `json:"account"`
	Role      string    `json:"role"`
	ClassName string    `json:"class_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Name:      u.Name,
		Account:   u.Account,
		Role:      u.Role,
		ClassName: u.ClassName,
		CreatedAt: u.CreatedAt,
	}
}

// CreateStudentRequest は生徒作成リクエストDTO
type CreateStudentRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Account   string `json:"account" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	ClassName string `json:"class_name" validate:"omitempty,max=100"`
}

// UpdateStudentRequest は生徒更新リクエストDTO (パスワードは任意)
type UpdateStudentRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Account   *string `json:"account,omitempty" validate:"omitempty,min=3,max=64"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	ClassName *string `json:"class_name,omitempty" validate:"omitempty,max=100"`
}
