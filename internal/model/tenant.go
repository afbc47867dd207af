package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TenantStatusActive   = "active"
	TenantStatusDisabled = "disabled"
)

// Tenant は契約組織（学校・塾など）を表します
type Tenant struct {
	TenantID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	Name         string    `gorm:"not null" json:"name"`
	Status       string    `gorm:"type:varchar(20);not null;default:active" json:"status"`
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

type ContextKey string

const (
	TenantIDKey ContextKey = "tenantID"
	SessionKey  ContextKey = "session"
)

// CreateTenantRequest はテナント作成（管理者アカウント同時作成）のリクエストDTO
type CreateTenantRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	AdminName     string `json:"admin_name" validate:"omitempty,max=100"`
	AdminAccount  string `json:"admin_account" validate:"required,min=3,max=64"`
	AdminPassword string `json:"admin_password" validate:"required,min=6,max=72"`
	ContactEmail  string `json:"contact_email" validate:"omitempty,email"`
}

// UpdateTenantRequest はテナント更新リクエストDTO
type UpdateTenantRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active disabled"`
}

// CreateTenantResponse は作成されたテナントと管理者
type CreateTenantResponse struct {
	Tenant *Tenant       `json:"tenant"`
	Admin  *UserResponse `json:"admin"`
}
