package model

// DashboardStats はテナント管理者ダッシュボードの集計値
type DashboardStats struct {
	WordbookCount       int64 `json:"wordbook_count"`
	OnlineWordbookCount int64 `json:"online_wordbook_count"`
	WordCount           int64 `json:"word_count"`
	StudentCount        int64 `json:"student_count"`
	PracticeCount       int64 `json:"practice_count"`
	TotalCorrect        int64 `json:"total_correct"`
}

// UserStats は生徒ごとの学習統計
type UserStats struct {
	WordsLearned    int `json:"words_learned"`
	TasksCompleted  int `json:"tasks_completed"`
	Accuracy        int `json:"accuracy"`
	StreakDays      int `json:"streak_days"`
	WrongWordsCount int `json:"wrong_words_count"`
}

// CalendarResponse は月ごとの日別完了タスク数
type CalendarResponse struct {
	Daily map[string]int `json:"daily"`
	Total int            `json:"total"`
	Year  int            `json:"year"`
	Month int            `json:"month"`
}
