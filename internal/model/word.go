// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Word は単語帳に属する単語を表します
type Word struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	BookID      uint      `gorm:"not null;index" json:"book_id"`
	Spelling    string    `gorm:"not null" json:"spelling"` // 解答となる綴り
	Meaning     string    `gorm:"not null" json:"meaning"`
	Sentence    string    `json:"sentence,omitempty"`
	PhonicsData string    `json:"phonics_data,omitempty"`
	RootInfo    string    `json:"root_info,omitempty"`
	AudioURL    string    `json:"audio_url,omitempty"`
	Difficulty  int       `gorm:"not null;default:1" json:"difficulty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Word) TableName() string {
	return "words"
}

// 単語作成リクエストDTO
type CreateWordRequest struct {
	BookID      uint   `json:"book_id" validate:"required"`
	Spelling    string `json:"spelling" validate:"required,max=100"`
	Meaning     string `json:"meaning" validate:"required,max=1000"`
	Sentence    string `json:"sentence" validate:"omitempty,max=2000"`
	PhonicsData string `json:"phonics_data" validate:"omitempty,max=1000"`
	RootInfo    string `json:"root_info" validate:"omitempty,max=1000"`
	AudioURL    string `json:"audio_url" validate:"omitempty,url"`
	Difficulty  int    `json:"difficulty" validate:"omitempty,min=1,max=5"`
}

// 単語更新（部分）リクエストDTO
type UpdateWordRequest struct {
	Spelling    *string `json:"spelling,omitempty" validate:"omitempty,min=1,max=100"`
	Meaning     *string `json:"meaning,omitempty" validate:"omitempty,min=1,max=1000"`
	Sentence    *string `json:"sentence,omitempty" validate:"omitempty,max=2000"`
	PhonicsData *string `json:"phonics_data,omitempty" validate:"omitempty,max=1000"`
	RootInfo    *string `json:"root_info,omitempty" validate:"omitempty,max=1000"`
	AudioURL    *string `json:"audio_url,omitempty" validate:"omitempty,url"`
	Difficulty  *int    `json:"difficulty,omitempty" validate:"omitempty,min=1,max=5"`
}

// ImportWordRow はインポート1行分。行単位で検証するため validate タグは付けない
type ImportWordRow struct {
	Spelling    string `json:"spelling"`
	Meaning     string `json:"meaning"`
	Sentence    string `json:"sentence,omitempty"`
	PhonicsData string `json:"phonics_data,omitempty"`
	RootInfo    string `json:"root_info,omitempty"`
}

// ImportWordsRequest は単語一括インポートのリクエストDTO
type ImportWordsRequest struct {
	BookID uint            `json:"book_id" validate:"required"`
	Words  []ImportWordRow `json:"words" validate:"required,min=1,max=5000"`
}

// ImportResult はインポート結果
type ImportResult struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}
