package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TimeFilterAll   = "all"
	TimeFilterToday = "today"
	TimeFilterWeek  = "week"

	// MaxWrongSpellings は一覧に表示する誤答パターンの最大数
	MaxWrongSpellings = 3
)

// WrongWord は不正解1回分の記録。書き込み時には重複排除せず、読み取り時に単語ごとに集計します
type WrongWord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TenantID        uuid.UUID `gorm:"type:uuid;not null;index:idx_wrong_words_tenant_user" json:"-"`
	UserID          uint      `gorm:"not null;index:idx_wrong_words_tenant_user" json:"user_id"`
	WordID          uint      `gorm:"not null;index" json:"word_id"`
	BookID          uint      `gorm:"not null;index" json:"book_id"`
	TaskID          uint      `gorm:"not null;default:0" json:"task_id"`
	CorrectSpelling string    `gorm:"not null" json:"correct_spelling"`
	WrongSpelling   string    `gorm:"not null" json:"wrong_spelling"`
	Reviewed        bool      `gorm:"not null;default:false" json:"reviewed"`
	CreatedAt       time.Time `json:"created_at"`
}

func (WrongWord) TableName() string {
	return "wrong_words"
}

// SubmitResultRequest は1単語の採点結果
type SubmitResultRequest struct {
	UserID    uint   `json:"user_id"`
	WordID    uint   `json:"word_id" validate:"required"`
	BookID    uint   `json:"book_id" validate:"required"`
	TaskID    uint   `json:"task_id"`
	IsCorrect *bool  `json:"is_correct" validate:"required"`
	UsedHint  bool   `json:"used_hint"`
	UserInput string `json:"user_input" validate:"max=200"`
}

// WrongWordEntry は集計前の誤答行（単語情報付き）
type WrongWordEntry struct {
	WordID        uint
	Spelling      string
	Meaning       string
	BookID        uint
	BookName      string
	WrongSpelling string
	Reviewed      bool
	CreatedAt     time.Time
}

// WrongWordSummary は単語ごとに集計した誤答情報
type WrongWordSummary struct {
	WordID         uint      `json:"word_id"`
	Spelling       string    `json:"spelling"`
	Meaning        string    `json:"meaning"`
	BookID         uint      `json:"book_id"`
	BookName       string    `json:"book_name"`
	WrongCount     int       `json:"wrong_count"`
	FirstErrorAt   time.Time `json:"first_error_at"`
	LastErrorAt    time.Time `json:"last_error_at"`
	WrongSpellings []string  `json:"wrong_spellings"`
	Reviewed       bool      `json:"reviewed"`
}

// WrongWordStats は誤答一覧の上部に出す件数
type WrongWordStats struct {
	Total      int `json:"total"`
	ThisWeek   int `json:"this_week"`
	Reviewed   int `json:"reviewed"`
	Unreviewed int `json:"unreviewed"`
}

// WrongWordQuery は誤答一覧の取得条件
type WrongWordQuery struct {
	UserID     uint
	BookID     uint
	TimeFilter string
	Page       Page
}

// WrongWordListResponse は誤答一覧のレスポンス
type WrongWordListResponse struct {
	Data  []*WrongWordSummary `json:"data"`
	Total int64               `json:"total"`
	Stats WrongWordStats      `json:"stats"`
}
