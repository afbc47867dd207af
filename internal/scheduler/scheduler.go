// Package scheduler は定期ジョブを管理します
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go_5_vocab_drill/internal/middleware"

	"github.com/go-co-op/gocron"
)

// WordCountRefresher は全単語帳の word_count を実際の単語数に合わせます (service.BookService が満たします)
type WordCountRefresher interface {
	RefreshAllWordCounts(ctx context.Context) (int64, error)
}

type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher WordCountRefresher
	logger    *slog.Logger
	timeout   time.Duration
}

func New(refresher WordCountRefresher, logger *slog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	// 前回の実行が終わっていなければ次回は飛ばす
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		logger:    logger,
		timeout:   5 * time.Minute,
	}
}

// Start は interval ごとに word_count の再集計を始めます
func (s *Scheduler) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("scheduler: invalid interval %s", interval)
	}
	if _, err := s.scheduler.Every(interval).Do(s.refreshWordCounts); err != nil {
		return fmt.Errorf("scheduler: schedule word count refresh: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", "word_count_refresh_interval", interval.String())
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) refreshWordCounts() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	ctx = middleware.WithLogger(ctx, s.logger.With("job", "word_count_refresh"))

	start := time.Now()
	n, err := s.refresher.RefreshAllWordCounts(ctx)
	if err != nil {
		s.logger.Error("Word count refresh failed", "error", err)
		return
	}
	s.logger.Info("Word count refreshed", "books", n, "duration", time.Since(start))
}
