package service

import (
	"context"
	"testing"
	"time"

	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestPracticeService(t *testing.T, now time.Time) (*practiceService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	s := NewPracticeService(db, repository.NewRepositories(), time.UTC).(*practiceService)
	s.now = func() time.Time { return now }
	return s, db
}

func createWrongWord(t *testing.T, db *gorm.DB, tenantID uuid.UUID, userID uint, word *model.Word, wrong string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.WrongWord{
		TenantID:        tenantID,
		UserID:          userID,
		WordID:          word.ID,
		BookID:          word.BookID,
		CorrectSpelling: word.Spelling,
		WrongSpelling:   wrong,
		CreatedAt:       at,
	}).Error)
}

func Test_practiceService_SubmitResult(t *testing.T) {
	ctx := context.Background()
	s, db := newTestPracticeService(t, time.Now())
	tenantID := createTenant(t, db)
	student := createUser(t, db, tenantID, model.RoleStudent)
	book := createBook(t, db, tenantID, model.BookStatusOnline)
	word := createWords(t, db, tenantID, book.ID, 1)[0]
	otherBook := createBook(t, db, tenantID, model.BookStatusOnline)
	other := createUser(t, db, tenantID, model.RoleStudent)
	task := createCompletedTask(t, db, tenantID, student.ID, book.ID, []uint{word.ID}, 0, 1, time.Now())
	othersTask := createCompletedTask(t, db, tenantID, other.ID, book.ID, []uint{word.ID}, 0, 1, time.Now())
	otherBookTask := createCompletedTask(t, db, tenantID, student.ID, otherBook.ID, []uint{word.ID}, 0, 1, time.Now())

	tests := []struct {
		name      string
		req       *model.SubmitResultRequest
		wantCode  string
		wantWrong int64
	}{
		{
			name: "正常系: 正解は誤答に記録しない",
			req:  &model.SubmitResultRequest{WordID: word.ID, BookID: book.ID, IsCorrect: ptr(true), UserInput: word.Spelling},
		},
		{
			name: "正常系: 入力なしの不正解は記録しない",
			req:  &model.SubmitResultRequest{WordID: word.ID, BookID: book.ID, IsCorrect: ptr(false), UserInput: "   "},
		},
		{
			name:      "正常系: 不正解を記録",
			req:       &model.SubmitResultRequest{WordID: word.ID, BookID: book.ID, TaskID: task.ID, IsCorrect: ptr(false), UserInput: " w0O1 "},
			wantWrong: 1,
		},
		{
			name:      "異常系: 存在しない単語",
			req:       &model.SubmitResultRequest{WordID: 9999, BookID: book.ID, IsCorrect: ptr(false), UserInput: "x"},
			wantCode:  codeWordNotFound,
			wantWrong: 1,
		},
		{
			name:      "異常系: 単語帳が単語と一致しない",
			req:       &model.SubmitResultRequest{WordID: word.ID, BookID: otherBook.ID, IsCorrect: ptr(false), UserInput: "x"},
			wantCode:  "WORD_BOOK_MISMATCH",
			wantWrong: 1,
		},
		{
			name:      "異常系: 他の生徒のタスク",
			req:       &model.SubmitResultRequest{WordID: word.ID, BookID: book.ID, TaskID: othersTask.ID, IsCorrect: ptr(false), UserInput: "x"},
			wantCode:  codeTaskNotFound,
			wantWrong: 1,
		},
		{
			name:      "異常系: 存在しないタスク",
			req:       &model.SubmitResultRequest{WordID: word.ID, BookID: book.ID, TaskID: 9999, IsCorrect: ptr(false), UserInput: "x"},
			wantCode:  codeTaskNotFound,
			wantWrong: 1,
		},
		{
			name:      "異常系: 別の単語帳のタスク",
			req:       &model.SubmitResultRequest{WordID: word.ID, BookID: book.ID, TaskID: otherBookTask.ID, IsCorrect: ptr(false), UserInput: "x"},
			wantCode:  "WORD_BOOK_MISMATCH",
			wantWrong: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SubmitResult(ctx, tenantID, student.ID, tt.req)
			if tt.wantCode != "" {
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
			} else {
				require.NoError(t, err)
			}
			var n int64
			require.NoError(t, db.Model(&model.WrongWord{}).Count(&n).Error)
			assert.Equal(t, tt.wantWrong, n)
		})
	}

	var entry model.WrongWord
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "w0O1", entry.WrongSpelling)
	assert.Equal(t, word.Spelling, entry.CorrectSpelling)
	assert.Equal(t, book.ID, entry.BookID)
	assert.Equal(t, task.ID, entry.TaskID)
}

func Test_practiceService_ListWrongWords(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 15, 15, 0, 0, 0, time.UTC)
	s, db := newTestPracticeService(t, now)
	tenantID := createTenant(t, db)
	student := createUser(t, db, tenantID, model.RoleStudent)
	book := createBook(t, db, tenantID, model.BookStatusOnline)
	words := createWords(t, db, tenantID, book.ID, 3)

	// words[0]: 10日前に5回。誤答パターンは4種類だが表示は3種類まで
	old := now.AddDate(0, 0, -10)
	createWrongWord(t, db, tenantID, student.ID, words[0], "a", old)
	createWrongWord(t, db, tenantID, student.ID, words[0], "b", old.Add(time.Minute))
	createWrongWord(t, db, tenantID, student.ID, words[0], "a", old.Add(2*time.Minute))
	createWrongWord(t, db, tenantID, student.ID, words[0], "c", old.Add(3*time.Minute))
	createWrongWord(t, db, tenantID, student.ID, words[0], "d", old.Add(4*time.Minute))
	// words[1]: 3日前
	createWrongWord(t, db, tenantID, student.ID, words[1], "x", now.AddDate(0, 0, -3))
	// words[2]: 今日
	createWrongWord(t, db, tenantID, student.ID, words[2], "y", now.Add(-time.Hour))

	tests := []struct {
		name      string
		filter    string
		wantWords []uint
	}{
		{name: "正常系: 全期間は最終誤答の新しい順", filter: model.TimeFilterAll, wantWords: []uint{words[2].ID, words[1].ID, words[0].ID}},
		{name: "正常系: 今日", filter: model.TimeFilterToday, wantWords: []uint{words[2].ID}},
		{name: "正常系: 直近7日", filter: model.TimeFilterWeek, wantWords: []uint{words[2].ID, words[1].ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.ListWrongWords(ctx, tenantID, model.WrongWordQuery{
				UserID: student.ID, TimeFilter: tt.filter, Page: model.NewPage(1, 20),
			})
			require.NoError(t, err)
			got := make([]uint, 0, len(resp.Data))
			for _, w := range resp.Data {
				got = append(got, w.WordID)
			}
			assert.Equal(t, tt.wantWords, got)
			assert.Equal(t, int64(len(tt.wantWords)), resp.Total)
			// stats は期間フィルタの影響を受けない
			assert.Equal(t, model.WrongWordStats{Total: 3, ThisWeek: 2, Reviewed: 0, Unreviewed: 3}, resp.Stats)
		})
	}

	resp, err := s.ListWrongWords(ctx, tenantID, model.WrongWordQuery{UserID: student.ID, Page: model.NewPage(1, 20)})
	require.NoError(t, err)
	first := resp.Data[2]
	assert.Equal(t, 5, first.WrongCount)
	assert.Equal(t, []string{"a", "b", "c"}, first.WrongSpellings)
	assert.Equal(t, book.Name, first.BookName)

	t.Run("正常系: 復習済みにする", func(t *testing.T) {
		require.NoError(t, s.ReviewWrongWord(ctx, tenantID, student.ID, words[0].ID))
		resp, err := s.ListWrongWords(ctx, tenantID, model.WrongWordQuery{UserID: student.ID, Page: model.NewPage(1, 20)})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Stats.Reviewed)
		assert.Equal(t, 2, resp.Stats.Unreviewed)
	})

	t.Run("異常系: 誤答の無い単語は復習できない", func(t *testing.T) {
		other := createWords(t, db, tenantID, book.ID, 1)[0]
		err := s.ReviewWrongWord(ctx, tenantID, student.ID, other.ID)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "WRONG_WORD_NOT_FOUND", appErr.Detail.Code)
	})

	t.Run("正常系: ページング", func(t *testing.T) {
		resp, err := s.ListWrongWords(ctx, tenantID, model.WrongWordQuery{UserID: student.ID, Page: model.NewPage(2, 2)})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, words[0].ID, resp.Data[0].WordID)
		assert.Equal(t, int64(3), resp.Total)
	})
}

func Test_practiceService_History(t *testing.T) {
	ctx := context.Background()
	s, db := newTestPracticeService(t, time.Now())
	tenantID := createTenant(t, db)
	student := createUser(t, db, tenantID, model.RoleStudent)
	other := createUser(t, db, tenantID, model.RoleStudent)
	book := createBook(t, db, tenantID, model.BookStatusOnline)
	ids := wordIDs(createWords(t, db, tenantID, book.ID, 4))

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	older := createCompletedTask(t, db, tenantID, student.ID, book.ID, ids[:2], 7, 3, base)
	newer := createCompletedTask(t, db, tenantID, student.ID, book.ID, ids[2:], 2, 0, base.Add(time.Hour))
	createCompletedTask(t, db, tenantID, other.ID, book.ID, ids, 1, 1, base)
	require.NoError(t, db.Create(&model.LearningTask{
		TenantID: tenantID, UserID: student.ID, BookID: book.ID, TotalCount: 1,
		Status: model.TaskStatusInProgress, StartedAt: base,
	}).Error)

	t.Run("正常系: 完了済みだけを新しい順に", func(t *testing.T) {
		resp, err := s.History(ctx, tenantID, model.HistoryFilter{UserID: student.ID, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Total)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, newer.ID, resp.Data[0].ID)
		assert.Equal(t, 100, resp.Data[0].Accuracy)
		assert.Equal(t, older.ID, resp.Data[1].ID)
		assert.Equal(t, 70, resp.Data[1].Accuracy)
		assert.Equal(t, book.Name, resp.Data[1].BookName)
	})

	t.Run("正常系: user_id 省略で全生徒", func(t *testing.T) {
		resp, err := s.History(ctx, tenantID, model.HistoryFilter{Limit: 0, Offset: -5})
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Total)
		assert.Len(t, resp.Data, 3)
	})

	t.Run("正常系: 範囲外の offset は空配列", func(t *testing.T) {
		resp, err := s.History(ctx, tenantID, model.HistoryFilter{UserID: student.ID, Offset: 50, Limit: 10})
		require.NoError(t, err)
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
	})
}
