package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"go_5_vocab_drill/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	calls  atomic.Int32
	err    error
	called chan struct{}
}

func (f *fakeRefresher) RefreshAllWordCounts(ctx context.Context) (int64, error) {
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("deadline missing")
	}
	if middleware.GetLogger(ctx) == slog.Default() {
		return 0, errors.New("job logger missing")
	}
	f.calls.Add(1)
	select {
	case f.called <- struct{}{}:
	default:
	}
	return 3, f.err
}

func TestScheduler_RunsRefresh(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	refresher := &fakeRefresher{called: make(chan struct{}, 1)}
	s := New(refresher, logger)

	require.NoError(t, s.Start(time.Hour))
	defer s.Stop()

	select {
	case <-refresher.called:
	case <-time.After(5 * time.Second):
		t.Fatal("refresh was not executed")
	}
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestScheduler_InvalidInterval(t *testing.T) {
	s := New(&fakeRefresher{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, s.Start(0))
	assert.Error(t, s.Start(-time.Second))
}
