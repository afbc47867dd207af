package practice

import (
	"context"
	"testing"
	"time"

	"go_5_vocab_drill/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	results []Result
}

func (s *recordingSink) Submit(_ context.Context, r Result) {
	s.results = append(s.results, r)
}

func newTask(spellings ...string) *model.TaskDetail {
	task := &model.TaskDetail{}
	task.ID = 11
	task.BookID = 3
	for i, sp := range spellings {
		task.Words = append(task.Words, &model.Word{ID: uint(i + 1), BookID: 3, Spelling: sp})
	}
	return task
}

// stepClock は呼ばれるたびに1分進む時計
func stepClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(time.Minute)
		return t
	}
}

// answer は出題中の単語に1行で解答します
func answer(t *testing.T, s *Session, line string) Grade {
	t.Helper()
	g, err := s.SubmitLine(context.Background(), line)
	require.NoError(t, err)
	return g
}

func TestSession_SubmitLineSendsTypedText(t *testing.T) {
	sink := &recordingSink{}
	s, err := NewSession(newTask("ice cream", "apple", "pear"), sink)
	require.NoError(t, err)
	require.NoError(t, s.UnlockAudio())

	g := answer(t, s, " icecream ")
	assert.True(t, g.Correct, "空白を省いても正解")
	assert.Equal(t, "ice cream", g.Answer)
	next(t, s, StatePresenting)

	g = answer(t, s, "aple")
	assert.False(t, g.Correct)
	assert.Equal(t, "aple", g.Answer)
	next(t, s, StatePresenting)

	// 入力欄の値を直接渡す場合は組み立てた解答を送る
	_, err = s.Submit(context.Background(), []string{"e", "a", "r"})
	require.NoError(t, err)

	require.Len(t, sink.results, 3)
	assert.Equal(t, "icecream", sink.results[0].UserInput)
	assert.Equal(t, "aple", sink.results[1].UserInput)
	assert.Equal(t, "pear", sink.results[2].UserInput)
	assert.True(t, sink.results[2].Correct)
}

func TestSession_RoundsUntilAllCorrect(t *testing.T) {
	sink := &recordingSink{}
	s, err := NewSession(newTask("apple", "banana", "cherry"), sink, WithClock(stepClock(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingAudioUnlock, s.State())

	require.NoError(t, s.UnlockAudio())
	assert.Equal(t, StatePresenting, s.State())

	// 1ラウンド目: banana と cherry を間違える
	assert.True(t, answer(t, s, "APPLE").Correct)
	next(t, s, StatePresenting)
	g := answer(t, s, "bonana")
	assert.False(t, g.Correct)
	assert.Equal(t, "bonana", g.Answer)
	assert.Equal(t, "banana", g.Expected)
	next(t, s, StatePresenting)
	assert.False(t, answer(t, s, "chery").Correct)
	next(t, s, StatePresenting)

	// 2ラウンド目は間違えた2語だけ、出題順のまま
	assert.Equal(t, 2, s.Round())
	w, _, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, "banana", w.Spelling)
	pos, total := s.Progress()
	assert.Equal(t, 1, pos)
	assert.Equal(t, 2, total)
	assert.True(t, answer(t, s, "banana").Correct)
	next(t, s, StatePresenting)
	assert.False(t, answer(t, s, "cheery").Correct)
	next(t, s, StatePresenting)

	// 3ラウンド目
	assert.Equal(t, 3, s.Round())
	assert.True(t, answer(t, s, "cherry").Correct)
	next(t, s, StateCompleted)

	sum, err := s.Summary()
	require.NoError(t, err)
	assert.Equal(t, Summary{TaskID: 11, Correct: 3, Wrong: 3, Hints: 0, Rounds: 3, Duration: time.Minute}, sum)

	require.Len(t, sink.results, 6)
	assert.Equal(t, Result{TaskID: 11, BookID: 3, WordID: 2, Correct: false, UserInput: "bonana"}, sink.results[1])
	assert.True(t, sink.results[5].Correct)
}

func next(t *testing.T, s *Session, want State) {
	t.Helper()
	got, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSession_HintCountedOncePerWord(t *testing.T) {
	sink := &recordingSink{}
	s, err := NewSession(newTask("dog", "cat"), sink)
	require.NoError(t, err)
	require.NoError(t, s.UnlockAudio())

	w, err := s.Hint()
	require.NoError(t, err)
	assert.Equal(t, "dog", w.Spelling)
	_, err = s.Hint()
	require.NoError(t, err)
	answer(t, s, "dig")
	next(t, s, StatePresenting)
	answer(t, s, "cat")
	next(t, s, StatePresenting)

	// 2ラウンド目でも同じ単語のヒントは数え直さない
	_, err = s.Hint()
	require.NoError(t, err)
	answer(t, s, "dog")
	next(t, s, StateCompleted)

	sum, err := s.Summary()
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Hints)
	assert.True(t, sink.results[0].UsedHint)
	assert.False(t, sink.results[1].UsedHint, "ヒントの使用は単語ごとにリセット")
	assert.True(t, sink.results[2].UsedHint)

	assert.Equal(t, &model.UpdateTaskRequest{
		CorrectCount: ptr(2),
		WrongCount:   ptr(1),
		HintCount:    ptr(1),
		Status:       ptr(model.TaskStatusCompleted),
	}, sum.TaskUpdate())
}

func TestSession_InvalidTransitions(t *testing.T) {
	_, err := NewSession(newTask(), nil)
	assert.ErrorIs(t, err, ErrNoWords)

	s, err := NewSession(newTask("one"), nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
	}{
		{name: "異常系: 開始前の解答", call: func() error { _, err := s.Submit(context.Background(), nil); return err }},
		{name: "異常系: 開始前の1行解答", call: func() error { _, err := s.SubmitLine(context.Background(), "one"); return err }},
		{name: "異常系: 開始前のヒント", call: func() error { _, err := s.Hint(); return err }},
		{name: "異常系: 開始前の Current", call: func() error { _, _, err := s.Current(); return err }},
		{name: "異常系: 採点前の Next", call: func() error { _, err := s.Next(); return err }},
		{name: "異常系: 完了前の Summary", call: func() error { _, err := s.Summary(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ErrInvalidState)
		})
	}

	require.NoError(t, s.UnlockAudio())
	assert.ErrorIs(t, s.UnlockAudio(), ErrInvalidState)

	// sink なしでも採点できる
	answer(t, s, "one")
	_, err = s.Submit(context.Background(), []string{"n", "e"})
	assert.ErrorIs(t, err, ErrInvalidState, "採点後は Next まで解答できない")
	_, err = s.Hint()
	assert.ErrorIs(t, err, ErrInvalidState)
	next(t, s, StateCompleted)
	_, err = s.Next()
	assert.ErrorIs(t, err, ErrInvalidState)
}

func ptr[T any](v T) *T {
	return &v
}
