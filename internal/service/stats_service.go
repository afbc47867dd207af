//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/progress"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService interface {
	// UserStats は生徒の学習統計。bookID が 0 なら全単語帳
	UserStats(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.UserStats, error)
	Calendar(ctx context.Context, tenantID uuid.UUID, userID uint, year, month int) (*model.CalendarResponse, error)
	// DashboardStats はテナント全体の集計値。キャッシュがあればそれを返します
	DashboardStats(ctx context.Context, tenantID uuid.UUID) (*model.DashboardStats, error)
}

type statsService struct {
	db    *gorm.DB
	repos *repository.Repositories
	cache cache.Cache
	ttl   time.Duration
	loc   *time.Location
	now   func() time.Time
}

func NewStatsService(db *gorm.DB, repos *repository.Repositories, c cache.Cache, ttl time.Duration, loc *time.Location) StatsService {
	return &statsService{db: db, repos: repos, cache: c, ttl: ttl, loc: loc, now: time.Now}
}

// StreakWindow は連続学習日数を数える期間
const StreakWindow = 30 * 24 * time.Hour

func (s *statsService) UserStats(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.UserStats, error) {
	tasks, err := s.repos.Task.ListByUser(ctx, s.db, tenantID, userID, bookID)
	if err != nil {
		return nil, errInternal(err)
	}
	wrong, err := s.repos.WrongWord.Count(ctx, s.db, tenantID, userID, bookID)
	if err != nil {
		return nil, errInternal(err)
	}

	totals := progress.Sum(tasks)
	return &model.UserStats{
		WordsLearned:    progress.WordsLearned(tasks),
		TasksCompleted:  totals.Completed,
		Accuracy:        progress.Accuracy(totals.Correct, totals.Wrong),
		StreakDays:      progress.ActiveDays(tasks, s.now(), StreakWindow, s.loc),
		WrongWordsCount: int(wrong),
	}, nil
}

func (s *statsService) Calendar(ctx context.Context, tenantID uuid.UUID, userID uint, year, month int) (*model.CalendarResponse, error) {
	if year == 0 || month == 0 {
		local := s.now().In(s.loc)
		if year == 0 {
			year = local.Year()
		}
		if month == 0 {
			month = int(local.Month())
		}
	}
	if month < 1 || month > 12 {
		return nil, model.NewAppError("VALIDATION_ERROR", "月は1から12で指定してください。", "month", model.ErrInvalidInput)
	}

	from, to := progress.MonthRange(year, month, s.loc)
	tasks, err := s.repos.Task.ListCompletedBetween(ctx, s.db, tenantID, userID, from, to)
	if err != nil {
		return nil, errInternal(err)
	}
	daily, total := progress.CalendarDaily(tasks, s.loc)
	return &model.CalendarResponse{Daily: daily, Total: total, Year: year, Month: month}, nil
}

func (s *statsService) DashboardStats(ctx context.Context, tenantID uuid.UUID) (*model.DashboardStats, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID.String())
	key := cache.DashboardStatsKey(tenantID)

	var cached model.DashboardStats
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.Warn("Failed to read dashboard cache", "error", err)
	}
	if hit {
		return &cached, nil
	}

	stats := &model.DashboardStats{}
	if stats.WordbookCount, err = s.repos.Book.Count(ctx, s.db, tenantID, ""); err != nil {
		return nil, errInternal(err)
	}
	if stats.OnlineWordbookCount, err = s.repos.Book.Count(ctx, s.db, tenantID, model.BookStatusOnline); err != nil {
		return nil, errInternal(err)
	}
	if stats.WordCount, err = s.repos.Word.CountByTenant(ctx, s.db, tenantID); err != nil {
		return nil, errInternal(err)
	}
	if stats.StudentCount, err = s.repos.User.CountByRole(ctx, s.db, tenantID, model.RoleStudent); err != nil {
		return nil, errInternal(err)
	}
	if stats.PracticeCount, stats.TotalCorrect, err = s.repos.Task.TenantTotals(ctx, s.db, tenantID); err != nil {
		return nil, errInternal(err)
	}

	if err := s.cache.SetJSON(ctx, key, stats, s.ttl); err != nil {
		logger.Warn("Failed to write dashboard cache", "error", err)
	}
	return stats, nil
}
