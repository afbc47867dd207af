package client

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/practice"
)

// ResultSubmitter は採点結果の送信先 (*Client が満たします)
type ResultSubmitter interface {
	SubmitResult(ctx context.Context, req *model.SubmitResultRequest) error
}

// AsyncResultSink は採点結果をバックグラウンドで送信します。
// 送信に失敗してもログに残すだけで、練習は止めません
type AsyncResultSink struct {
	submitter ResultSubmitter
	logger    *slog.Logger
	timeout   time.Duration

	wg     sync.WaitGroup
	mu     sync.Mutex
	failed int
}

func NewAsyncResultSink(submitter ResultSubmitter, logger *slog.Logger) *AsyncResultSink {
	return &AsyncResultSink{submitter: submitter, logger: logger, timeout: 10 * time.Second}
}

func (s *AsyncResultSink) Submit(ctx context.Context, r practice.Result) {
	correct := r.Correct
	req := &model.SubmitResultRequest{
		WordID:    r.WordID,
		BookID:    r.BookID,
		TaskID:    r.TaskID,
		IsCorrect: &correct,
		UsedHint:  r.UsedHint,
		UserInput: r.UserInput,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		// 呼び出し元のキャンセルとは切り離して送り切る
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		if err := s.submitter.SubmitResult(sendCtx, req); err != nil {
			s.mu.Lock()
			s.failed++
			s.mu.Unlock()
			s.logger.Warn("Failed to submit result", "word_id", r.WordID, "error", err)
		}
	}()
}

// Wait は送信中の結果をすべて待ち、失敗件数を返します
func (s *AsyncResultSink) Wait() int {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}
