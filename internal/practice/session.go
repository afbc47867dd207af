// Package practice は1タスク分の書き取り練習を進める状態機械です。
// 不正解の単語は次のラウンドで出題し直し、1ラウンドを全問正解するまで終わりません
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_5_vocab_drill/internal/model"
)

type State int

const (
	StateAwaitingAudioUnlock State = iota
	StatePresenting
	StateGraded
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateAwaitingAudioUnlock:
		return "awaiting_audio_unlock"
	case StatePresenting:
		return "presenting"
	case StateGraded:
		return "graded"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrNoWords      = errors.New("practice: task has no words")
	ErrInvalidState = errors.New("practice: invalid state")
)

// Result は1回の採点結果。ResultSink に送られます
type Result struct {
	TaskID    uint
	BookID    uint
	WordID    uint
	Correct   bool
	UsedHint  bool
	UserInput string
}

// ResultSink は採点結果の送信先。呼び出し側は完了を待ちません
type ResultSink interface {
	Submit(ctx context.Context, r Result)
}

// Grade は Submit の戻り値
type Grade struct {
	Correct  bool
	Answer   string
	Expected string
}

// Summary は練習完了時の集計
type Summary struct {
	TaskID   uint
	Correct  int
	Wrong    int
	Hints    int
	Rounds   int
	Duration time.Duration
}

// Session は状態を持つため、1つの goroutine からだけ操作してください
type Session struct {
	taskID uint
	bookID uint
	sink   ResultSink
	clock  func() time.Time

	state    State
	words    []*model.Word
	index    int
	round    int
	failures []*model.Word
	slots    []Slot

	hintUsed  bool
	hinted    map[uint]struct{}
	correct   int
	wrong     int
	startedAt time.Time
	endedAt   time.Time
}

type Option func(*Session)

// WithClock は時刻の取得元を差し替えます
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

// NewSession はタスクの出題順のまま1ラウンド目を作ります
func NewSession(task *model.TaskDetail, sink ResultSink, opts ...Option) (*Session, error) {
	if len(task.Words) == 0 {
		return nil, ErrNoWords
	}
	s := &Session{
		taskID: task.ID,
		bookID: task.BookID,
		sink:   sink,
		clock:  time.Now,
		state:  StateAwaitingAudioUnlock,
		words:  append([]*model.Word(nil), task.Words...),
		round:  1,
		hinted: make(map[uint]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) State() State { return s.state }
func (s *Session) Round() int   { return s.round }

// Progress は現在のラウンド内の位置 (1始まり) と単語数
func (s *Session) Progress() (int, int) {
	return s.index + 1, len(s.words)
}

// UnlockAudio は音声再生の許可を受けて最初の単語を出題します。経過時間はここから数えます
func (s *Session) UnlockAudio() error {
	if s.state != StateAwaitingAudioUnlock {
		return fmt.Errorf("%w: unlock in %s", ErrInvalidState, s.state)
	}
	s.startedAt = s.clock()
	s.present()
	return nil
}

func (s *Session) present() {
	s.state = StatePresenting
	s.hintUsed = false
	s.slots = BuildSlots(s.words[s.index].Spelling)
}

// Current は出題中の単語と入力欄
func (s *Session) Current() (*model.Word, []Slot, error) {
	if s.state != StatePresenting && s.state != StateGraded {
		return nil, nil, fmt.Errorf("%w: current in %s", ErrInvalidState, s.state)
	}
	return s.words[s.index], s.slots, nil
}

// Hint は出題中の単語の詳細を返します。ヒント数は単語ごとに1回だけ数えます
func (s *Session) Hint() (*model.Word, error) {
	if s.state != StatePresenting {
		return nil, fmt.Errorf("%w: hint in %s", ErrInvalidState, s.state)
	}
	w := s.words[s.index]
	s.hintUsed = true
	s.hinted[w.ID] = struct{}{}
	return w, nil
}

// Submit は入力欄の値を採点し、結果を ResultSink に送ります
func (s *Session) Submit(ctx context.Context, inputs []string) (Grade, error) {
	if s.state != StatePresenting {
		return Grade{}, fmt.Errorf("%w: submit in %s", ErrInvalidState, s.state)
	}
	return s.grade(ctx, inputs, Assemble(s.slots, inputs)), nil
}

// SubmitLine は1行で打たれた解答を採点します。ResultSink には打たれた文字列をそのまま送ります
func (s *Session) SubmitLine(ctx context.Context, line string) (Grade, error) {
	if s.state != StatePresenting {
		return Grade{}, fmt.Errorf("%w: submit in %s", ErrInvalidState, s.state)
	}
	return s.grade(ctx, SplitInput(s.slots, line), strings.TrimSpace(line)), nil
}

func (s *Session) grade(ctx context.Context, inputs []string, typed string) Grade {
	w := s.words[s.index]
	answer := Assemble(s.slots, inputs)
	g := Grade{Correct: Matches(answer, w.Spelling), Answer: answer, Expected: w.Spelling}

	if g.Correct {
		s.correct++
	} else {
		s.wrong++
		s.failures = append(s.failures, w)
	}
	s.state = StateGraded

	if s.sink != nil {
		s.sink.Submit(ctx, Result{
			TaskID:    s.taskID,
			BookID:    s.bookID,
			WordID:    w.ID,
			Correct:   g.Correct,
			UsedHint:  s.hintUsed,
			UserInput: typed,
		})
	}
	return g
}

// Next は次の単語へ進みます。ラウンドの最後で不正解があれば、それらを順に次のラウンドとして出題します
func (s *Session) Next() (State, error) {
	if s.state != StateGraded {
		return s.state, fmt.Errorf("%w: next in %s", ErrInvalidState, s.state)
	}
	if s.index+1 < len(s.words) {
		s.index++
		s.present()
		return s.state, nil
	}
	if len(s.failures) == 0 {
		s.state = StateCompleted
		s.endedAt = s.clock()
		return s.state, nil
	}
	s.words = s.failures
	s.failures = nil
	s.index = 0
	s.round++
	s.present()
	return s.state, nil
}

// Summary は完了後の集計を返します
func (s *Session) Summary() (Summary, error) {
	if s.state != StateCompleted {
		return Summary{}, fmt.Errorf("%w: summary in %s", ErrInvalidState, s.state)
	}
	return Summary{
		TaskID:   s.taskID,
		Correct:  s.correct,
		Wrong:    s.wrong,
		Hints:    len(s.hinted),
		Rounds:   s.round,
		Duration: s.endedAt.Sub(s.startedAt),
	}, nil
}

// TaskUpdate は完了時にタスクへ書き戻す内容
func (sum Summary) TaskUpdate() *model.UpdateTaskRequest {
	status := model.TaskStatusCompleted
	correct, wrong, hints := sum.Correct, sum.Wrong, sum.Hints
	return &model.UpdateTaskRequest{
		CorrectCount: &correct,
		WrongCount:   &wrong,
		HintCount:    &hints,
		Status:       &status,
	}
}
