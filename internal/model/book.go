package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookStatusOnline  = "online"
	BookStatusOffline = "offline"

	DefaultDailyTarget = 20
)

// Book は単語帳。WordCount は単語の追加・削除・インポート時に更新されるキャッシュ値です
type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	WordCount   int       `gorm:"not null;default:0" json:"word_count"`
	Status      string    `gorm:"type:varchar(20);not null;default:offline;index" json:"status"`
	DailyTarget int       `gorm:"not null;default:20" json:"daily_target"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// CreateBookRequest は単語帳作成リクエストDTO
type CreateBookRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Status      string `json:"status" validate:"omitempty,oneof=online offline"`
	DailyTarget int    `json:"daily_target" validate:"omitempty,min=1,max=500"`
}

// UpdateBookRequest は単語帳更新（部分）リクエストDTO
type UpdateBookRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=online offline"`
	DailyTarget *int    `json:"daily_target,omitempty" validate:"omitempty,min=1,max=500"`
}

// BookFilter は単語帳一覧の絞り込み条件
type BookFilter struct {
	Status string
	Page   Page
}
