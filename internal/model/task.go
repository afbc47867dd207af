package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"

	// TaskBatchSize は1タスクで出題する単語数
	TaskBatchSize = 20
)

// LearningTask は生徒に割り当てた1回分の出題セット
// PendingKey は未完了の間だけ "<user>:<book>" を持ち、(tenant_id, pending_key) の一意制約で
// 同一生徒・単語帳に未完了タスクが2つ作られるのを防ぎます。完了時に NULL へ戻します
type LearningTask struct {
	ID              uint                     `gorm:"primaryKey" json:"id"`
	TenantID        uuid.UUID                `gorm:"type:uuid;not null;index;uniqueIndex:uq_tasks_pending" json:"-"`
	UserID          uint                     `gorm:"not null;index:idx_tasks_user_book" json:"user_id"`
	BookID          uint                     `gorm:"not null;index:idx_tasks_user_book" json:"book_id"`
	WordIDs         datatypes.JSONSlice[uint] `json:"word_ids"`
	TotalCount      int                      `gorm:"not null" json:"total_count"`
	Status          string                   `gorm:"type:varchar(20);not null;default:in_progress;index" json:"status"`
	CorrectCount    int                      `gorm:"not null;default:0" json:"correct_count"`
	WrongCount      int                      `gorm:"not null;default:0" json:"wrong_count"`
	HintCount       int                      `gorm:"not null;default:0" json:"hint_count"`
	StartedAt       time.Time                `gorm:"not null" json:"started_at"`
	EndedAt         *time.Time               `json:"ended_at"`
	DurationSeconds int                      `gorm:"not null;default:0" json:"duration_seconds"`
	PendingKey      *string                  `gorm:"type:varchar(64);uniqueIndex:uq_tasks_pending" json:"-"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func (LearningTask) TableName() string {
	return "learning_tasks"
}

func (t *LearningTask) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// PendingTaskKey は未完了タスクの一意キーを組み立てます
func PendingTaskKey(userID, bookID uint) string {
	return fmt.Sprintf("%d:%d", userID, bookID)
}

// TaskDetail はタスクと出題順の単語
type TaskDetail struct {
	LearningTask
	BookName string  `json:"book_name,omitempty"`
	Words    []*Word `json:"words"`
}

// GenerateTaskRequest はタスク生成リクエストDTO。生徒本人の場合 user_id は省略可
type GenerateTaskRequest struct {
	UserID uint `json:"user_id"`
	BookID uint `json:"book_id" validate:"required"`
}

// GenerateTaskResponse はタスク生成の結果
// 既存の未完了タスクを返した場合は Exists=true、出題できる単語が無い場合は AllCompleted=true
type GenerateTaskResponse struct {
	Data         *TaskDetail `json:"data,omitempty"`
	Exists       bool        `json:"exists"`
	AllCompleted bool        `json:"allCompleted,omitempty"`
	Message      string      `json:"message,omitempty"`
}

// UpdateTaskRequest はタスク更新リクエストDTO
type UpdateTaskRequest struct {
	CorrectCount *int    `json:"correct_count,omitempty" validate:"omitempty,min=0"`
	WrongCount   *int    `json:"wrong_count,omitempty" validate:"omitempty,min=0"`
	HintCount    *int    `json:"hint_count,omitempty" validate:"omitempty,min=0"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=in_progress completed"`
}

func (r *UpdateTaskRequest) IsEmpty() bool {
	return r.CorrectCount == nil && r.WrongCount == nil && r.HintCount == nil && r.Status == nil
}

// HistoryEntry は練習履歴の1行
type HistoryEntry struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"user_id"`
	BookID          uint       `json:"book_id"`
	BookName        string     `json:"book_name"`
	TotalCount      int        `json:"total_count"`
	CorrectCount    int        `json:"correct_count"`
	WrongCount      int        `json:"wrong_count"`
	HintCount       int        `json:"hint_count"`
	Accuracy        int        `json:"accuracy"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	DurationSeconds int        `json:"duration_seconds"`
}

// HistoryFilter は履歴の絞り込み条件。UserID が 0 なら全生徒
type HistoryFilter struct {
	UserID uint
	BookID uint
	Offset int
	Limit  int
}
