// Package progress は学習タスクと誤答記録から学習統計を計算します。
// 状態は持たず、リポジトリから読み込んだ行だけを入力にします
package progress

import (
	"math"
	"slices"
	"sort"
	"time"

	"go_5_vocab_drill/internal/model"
)

// DateLayout はカレンダーのキー形式
const DateLayout = "2006-01-02"

// Accuracy は正答率を整数パーセントで返します。分母が 0 なら 0
func Accuracy(correct, wrong int) int {
	total := correct + wrong
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// WordsLearned は完了済みタスクに含まれる単語IDの種類数
func WordsLearned(tasks []*model.LearningTask) int {
	seen := make(map[uint]struct{})
	for _, t := range tasks {
		if !t.IsCompleted() {
			continue
		}
		for _, id := range t.WordIDs {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// Totals はタスクの正解数・不正解数・所要時間の合計
type Totals struct {
	Tasks     int
	Completed int
	Correct   int
	Wrong     int
	Duration  int
}

func Sum(tasks []*model.LearningTask) Totals {
	var t Totals
	for _, task := range tasks {
		t.Tasks++
		if task.IsCompleted() {
			t.Completed++
		}
		t.Correct += task.CorrectCount
		t.Wrong += task.WrongCount
		t.Duration += task.DurationSeconds
	}
	return t
}

// ActiveDays は [now-window, now] に完了したタスクがある日数を loc の暦日で数えます
func ActiveDays(tasks []*model.LearningTask, now time.Time, window time.Duration, loc *time.Location) int {
	from := now.Add(-window)
	days := make(map[string]struct{})
	for _, t := range tasks {
		if !t.IsCompleted() || t.EndedAt == nil {
			continue
		}
		if t.EndedAt.Before(from) || t.EndedAt.After(now) {
			continue
		}
		days[t.EndedAt.In(loc).Format(DateLayout)] = struct{}{}
	}
	return len(days)
}

// CalendarDaily は完了日ごとのタスク数
func CalendarDaily(tasks []*model.LearningTask, loc *time.Location) (map[string]int, int) {
	daily := make(map[string]int)
	total := 0
	for _, t := range tasks {
		if !t.IsCompleted() || t.EndedAt == nil {
			continue
		}
		daily[t.EndedAt.In(loc).Format(DateLayout)]++
		total++
	}
	return daily, total
}

// MonthRange は loc における year/month の [月初, 翌月初)
func MonthRange(year, month int, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// GroupWrongWords は誤答行を単語ごとに集計し、最終誤答の新しい順に並べます。
// entries は created_at 昇順を想定しています
func GroupWrongWords(entries []*model.WrongWordEntry) []*model.WrongWordSummary {
	byWord := make(map[uint]*model.WrongWordSummary)
	order := make([]*model.WrongWordSummary, 0)

	for _, e := range entries {
		s, ok := byWord[e.WordID]
		if !ok {
			s = &model.WrongWordSummary{
				WordID:         e.WordID,
				Spelling:       e.Spelling,
				Meaning:        e.Meaning,
				BookID:         e.BookID,
				BookName:       e.BookName,
				FirstErrorAt:   e.CreatedAt,
				LastErrorAt:    e.CreatedAt,
				WrongSpellings: []string{},
			}
			byWord[e.WordID] = s
			order = append(order, s)
		}
		s.WrongCount++
		if e.CreatedAt.Before(s.FirstErrorAt) {
			s.FirstErrorAt = e.CreatedAt
		}
		if e.CreatedAt.After(s.LastErrorAt) {
			s.LastErrorAt = e.CreatedAt
		}
		if e.Reviewed {
			s.Reviewed = true
		}
		if e.WrongSpelling != "" && len(s.WrongSpellings) < model.MaxWrongSpellings && !slices.Contains(s.WrongSpellings, e.WrongSpelling) {
			s.WrongSpellings = append(s.WrongSpellings, e.WrongSpelling)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].LastErrorAt.Equal(order[j].LastErrorAt) {
			return order[i].WordID < order[j].WordID
		}
		return order[i].LastErrorAt.After(order[j].LastErrorAt)
	})
	return order
}

// WrongWordStats は集計済みの誤答から件数を数えます。this_week は since 以降に誤答があった単語
func WrongWordStats(summaries []*model.WrongWordSummary, since time.Time) model.WrongWordStats {
	stats := model.WrongWordStats{Total: len(summaries)}
	for _, s := range summaries {
		if !s.LastErrorAt.Before(since) {
			stats.ThisWeek++
		}
		if s.Reviewed {
			stats.Reviewed++
		}
	}
	stats.Unreviewed = stats.Total - stats.Reviewed
	return stats
}

// Paginate は集計後の一覧をページで切り出します
func Paginate[T any](items []T, page model.Page) []T {
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
