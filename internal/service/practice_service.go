//go:generate mockery --name PracticeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"
	"time"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/progress"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeService interface {
	// SubmitResult は1単語の採点結果を受け取り、不正解なら誤答として記録します
	SubmitResult(ctx context.Context, tenantID uuid.UUID, userID uint, req *model.SubmitResultRequest) error
	ListWrongWords(ctx context.Context, tenantID uuid.UUID, q model.WrongWordQuery) (*model.WrongWordListResponse, error)
	// ReviewWrongWord は単語の誤答記録をすべて復習済みにします
	ReviewWrongWord(ctx context.Context, tenantID uuid.UUID, userID, wordID uint) error
	History(ctx context.Context, tenantID uuid.UUID, filter model.HistoryFilter) (*model.ListResponse[*model.HistoryEntry], error)
}

type practiceService struct {
	db    *gorm.DB
	repos *repository.Repositories
	loc   *time.Location
	now   func() time.Time
}

func NewPracticeService(db *gorm.DB, repos *repository.Repositories, loc *time.Location) PracticeService {
	return &practiceService{db: db, repos: repos, loc: loc, now: time.Now}
}

const weekWindow = 7 * 24 * time.Hour

func (s *practiceService) SubmitResult(ctx context.Context, tenantID uuid.UUID, userID uint, req *model.SubmitResultRequest) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "word_id", req.WordID)

	correct := req.IsCorrect != nil && *req.IsCorrect
	word, err := s.repos.Word.FindByID(ctx, s.db, tenantID, req.WordID)
	if err != nil {
		return wrapRepoError(err, codeWordNotFound, msgWordNotFound)
	}
	if word.BookID != req.BookID {
		return model.NewAppError("WORD_BOOK_MISMATCH", "単語が指定の単語帳に含まれていません。", "book_id", model.ErrInvalidInput)
	}
	if req.TaskID != 0 {
		task, err := s.repos.Task.FindByID(ctx, s.db, tenantID, req.TaskID)
		if err == nil && task.UserID != userID {
			err = model.ErrNotFound
		}
		if err != nil {
			return wrapRepoError(err, codeTaskNotFound, msgTaskNotFound)
		}
		if task.BookID != word.BookID {
			return model.NewAppError("WORD_BOOK_MISMATCH", "タスクと単語の単語帳が一致しません。", "task_id", model.ErrInvalidInput)
		}
	}
	middleware.RecordAnswerSubmit(correct)

	input := strings.TrimSpace(req.UserInput)
	if correct || input == "" {
		logger.Debug("Result received", "correct", correct, "used_hint", req.UsedHint)
		return nil
	}

	entry := &model.WrongWord{
		TenantID:        tenantID,
		UserID:          userID,
		WordID:          word.ID,
		BookID:          word.BookID,
		TaskID:          req.TaskID,
		CorrectSpelling: word.Spelling,
		WrongSpelling:   input,
	}
	if err := s.repos.WrongWord.Create(ctx, s.db, entry); err != nil {
		return errInternal(err)
	}
	logger.Debug("Wrong answer recorded", "wrong_word_id", entry.ID)
	return nil
}

// ListWrongWords は誤答を単語ごとに集計して返します。
// stats は単語帳では絞り込みますが、期間では絞り込みません
func (s *practiceService) ListWrongWords(ctx context.Context, tenantID uuid.UUID, q model.WrongWordQuery) (*model.WrongWordListResponse, error) {
	now := s.now()

	all, err := s.repos.WrongWord.ListEntries(ctx, s.db, tenantID, q.UserID, q.BookID, nil)
	if err != nil {
		return nil, errInternal(err)
	}
	grouped := progress.GroupWrongWords(all)
	stats := progress.WrongWordStats(grouped, now.Add(-weekWindow))

	if since, ok := s.since(q.TimeFilter, now); ok {
		entries, err := s.repos.WrongWord.ListEntries(ctx, s.db, tenantID, q.UserID, q.BookID, &since)
		if err != nil {
			return nil, errInternal(err)
		}
		grouped = progress.GroupWrongWords(entries)
	}

	return &model.WrongWordListResponse{
		Data:  progress.Paginate(grouped, q.Page),
		Total: int64(len(grouped)),
		Stats: stats,
	}, nil
}

// since は期間フィルタの開始時刻。all または未指定なら ok=false
func (s *practiceService) since(filter string, now time.Time) (time.Time, bool) {
	switch filter {
	case model.TimeFilterToday:
		local := now.In(s.loc)
		return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc), true
	case model.TimeFilterWeek:
		return now.Add(-weekWindow), true
	default:
		return time.Time{}, false
	}
}

func (s *practiceService) ReviewWrongWord(ctx context.Context, tenantID uuid.UUID, userID, wordID uint) error {
	n, err := s.repos.WrongWord.MarkReviewed(ctx, s.db, tenantID, userID, wordID)
	if err != nil {
		return errInternal(err)
	}
	if n == 0 {
		return model.NewAppError("WRONG_WORD_NOT_FOUND", "誤答記録が見つかりません。", "", model.ErrNotFound)
	}
	middleware.GetLogger(ctx).Info("Wrong word reviewed", "user_id", userID, "word_id", wordID, "entries", n)
	return nil
}

func (s *practiceService) History(ctx context.Context, tenantID uuid.UUID, filter model.HistoryFilter) (*model.ListResponse[*model.HistoryEntry], error) {
	if filter.Limit <= 0 || filter.Limit > model.MaxPageSize {
		filter.Limit = model.DefaultPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	entries, total, err := s.repos.Task.ListHistory(ctx, s.db, tenantID, filter)
	if err != nil {
		return nil, errInternal(err)
	}
	if entries == nil {
		entries = []*model.HistoryEntry{}
	}
	for _, e := range entries {
		e.Accuracy = progress.Accuracy(e.CorrectCount, e.WrongCount)
	}
	return &model.ListResponse[*model.HistoryEntry]{Data: entries, Total: total}, nil
}
