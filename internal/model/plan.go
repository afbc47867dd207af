package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlanStatusNotStarted = "not_started"
	PlanStatusLearning   = "learning"
	PlanStatusCompleted  = "completed"
)

// StudyPlan は生徒×単語帳ごとの学習状況
// 1人の生徒が learning 状態にできる単語帳は同時に1つまで
type StudyPlan struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TenantID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_plans_tenant_user_book;uniqueIndex:uq_plans_learning,where:status = 'learning'" json:"-"`
	UserID      uint       `gorm:"not null;uniqueIndex:uq_plans_tenant_user_book;uniqueIndex:uq_plans_learning" json:"user_id"`
	BookID      uint       `gorm:"not null;uniqueIndex:uq_plans_tenant_user_book" json:"book_id"`
	Status      string     `gorm:"type:varchar(20);not null;default:not_started" json:"status"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}

// PlanSummary は単語帳一覧（学習計画画面）の1行
type PlanSummary struct {
	PlanID         *uint      `json:"plan_id"`
	BookID         uint       `json:"book_id"`
	BookName       string     `json:"book_name"`
	Description    string     `json:"description"`
	WordCount      int        `json:"word_count"`
	DailyTarget    int        `json:"daily_target"`
	Status         string     `json:"status"`
	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CompletedWords int        `json:"completed_words"`
	PracticeCount  int        `json:"practice_count"`
}

// CurrentPlanResponse は学習中の計画と、直近に完了した計画
type CurrentPlanResponse struct {
	Plan          *PlanSummary `json:"plan"`
	LastCompleted *PlanSummary `json:"last_completed"`
}

// PlanStats は単語帳単位の学習統計
type PlanStats struct {
	BookID          uint   `json:"book_id"`
	Status          string `json:"status"`
	TotalWords      int    `json:"total_words"`
	LearnedWords    int    `json:"learned_words"`
	TotalTasks      int    `json:"total_tasks"`
	CompletedTasks  int    `json:"completed_tasks"`
	TotalCorrect    int    `json:"total_correct"`
	TotalWrong      int    `json:"total_wrong"`
	Accuracy        int    `json:"accuracy"`
	TotalDuration   int    `json:"total_duration"`
	WrongWordsCount int    `json:"wrong_words_count"`
}
