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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestPlanService(t *testing.T) (*planService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewPlanService(db, repository.NewRepositories()).(*planService), db
}

// createCompletedTask は完了済みタスクを直接作ります
func createCompletedTask(t *testing.T, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint, ids []uint, correct, wrong int, endedAt time.Time) *model.LearningTask {
	t.Helper()
	task := &model.LearningTask{
		TenantID:        tenantID,
		UserID:          userID,
		BookID:          bookID,
		WordIDs:         datatypes.JSONSlice[uint](ids),
		TotalCount:      len(ids),
		Status:          model.TaskStatusCompleted,
		CorrectCount:    correct,
		WrongCount:      wrong,
		StartedAt:       endedAt.Add(-time.Minute),
		EndedAt:         &endedAt,
		DurationSeconds: 60,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func Test_planService_StartPlan(t *testing.T) {
	ctx := context.Background()
	s, db := newTestPlanService(t)
	tenantID := createTenant(t, db)
	student := createUser(t, db, tenantID, model.RoleStudent)
	bookA := createBook(t, db, tenantID, model.BookStatusOnline)
	bookB := createBook(t, db, tenantID, model.BookStatusOnline)

	planA, err := s.StartPlan(ctx, tenantID, student.ID, bookA.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PlanStatusLearning, planA.Status)
	require.NotNil(t, planA.StartedAt)

	t.Run("正常系: 学習中の単語帳をもう一度開始しても同じ計画", func(t *testing.T) {
		again, err := s.StartPlan(ctx, tenantID, student.ID, bookA.ID)
		require.NoError(t, err)
		assert.Equal(t, planA.ID, again.ID)
	})

	t.Run("異常系: 他の単語帳が学習中", func(t *testing.T) {
		_, err := s.StartPlan(ctx, tenantID, student.ID, bookB.ID)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "ACTIVE_PLAN_EXISTS", appErr.Detail.Code)
		assert.Equal(t, true, appErr.Detail.Details["has_active_plan"])
		assert.Equal(t, planA.ID, appErr.Detail.Details["active_plan_id"])
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("正常系: 一時停止すると別の単語帳を開始できる", func(t *testing.T) {
		paused, err := s.PausePlan(ctx, tenantID, student.ID, bookA.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PlanStatusNotStarted, paused.Status)

		planB, err := s.StartPlan(ctx, tenantID, student.ID, bookB.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PlanStatusLearning, planB.Status)

		var learning int64
		require.NoError(t, db.Model(&model.StudyPlan{}).
			Where("tenant_id = ? AND user_id = ? AND status = ?", tenantID, student.ID, model.PlanStatusLearning).
			Count(&learning).Error)
		assert.Equal(t, int64(1), learning)
	})

	t.Run("異常系: 計画の無い単語帳は一時停止できない", func(t *testing.T) {
		bookC := createBook(t, db, tenantID, model.BookStatusOnline)
		_, err := s.PausePlan(ctx, tenantID, student.ID, bookC.ID)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, codePlanNotFound, appErr.Detail.Code)
	})

	t.Run("異常系: 存在しない単語帳", func(t *testing.T) {
		_, err := s.StartPlan(ctx, tenantID, student.ID, 9999)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// staleLearningPlanRepo は最初の FindLearning で学習中の計画を見落とし、
// 同時に別の単語帳を開始したリクエストとの競合を再現します
type staleLearningPlanRepo struct {
	repository.PlanRepository
	calls int
}

func (r *staleLearningPlanRepo) FindLearning(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) (*model.StudyPlan, error) {
	r.calls++
	if r.calls == 1 {
		return nil, model.ErrNotFound
	}
	return r.PlanRepository.FindLearning(ctx, db, tenantID, userID)
}

func Test_planService_StartPlan_ConcurrentLearning(t *testing.T) {
	ctx := context.Background()
	s, db := newTestPlanService(t)
	tenantID := createTenant(t, db)
	student := createUser(t, db, tenantID, model.RoleStudent)
	bookA := createBook(t, db, tenantID, model.BookStatusOnline)
	bookB := createBook(t, db, tenantID, model.BookStatusOnline)
	bookC := createBook(t, db, tenantID, model.BookStatusOnline)

	planA, err := s.StartPlan(ctx, tenantID, student.ID, bookA.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.StudyPlan{TenantID: tenantID, UserID: student.ID, BookID: bookC.ID, Status: model.PlanStatusNotStarted}).Error)

	tests := []struct {
		name   string
		bookID uint
	}{
		{name: "異常系: 計画の無い単語帳を同時に開始", bookID: bookB.ID},
		{name: "異常系: 未開始の計画を同時に開始", bookID: bookC.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := repository.NewRepositories()
			repos.Plan = &staleLearningPlanRepo{PlanRepository: repos.Plan}
			racing := NewPlanService(db, repos)

			_, err := racing.StartPlan(ctx, tenantID, student.ID, tt.bookID)
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "ACTIVE_PLAN_EXISTS", appErr.Detail.Code)
			assert.Equal(t, planA.ID, appErr.Detail.Details["active_plan_id"])
			assert.ErrorIs(t, err, model.ErrInvalidInput)

			var learning int64
			require.NoError(t, db.Model(&model.StudyPlan{}).
				Where("tenant_id = ? AND user_id = ? AND status = ?", tenantID, student.ID, model.PlanStatusLearning).
				Count(&learning).Error)
			assert.Equal(t, int64(1), learning, "学習中は1件のまま")
		})
	}

	t.Run("異常系: 学習中の計画は DB 上も1件まで", func(t *testing.T) {
		err := db.Create(&model.StudyPlan{TenantID: tenantID, UserID: student.ID, BookID: bookB.ID, Status: model.PlanStatusLearning}).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		other := createUser(t, db, tenantID, model.RoleStudent)
		require.NoError(t, db.Create(&model.StudyPlan{TenantID: tenantID, UserID: other.ID, BookID: bookB.ID, Status: model.PlanStatusLearning}).Error,
			"別の生徒なら学習中にできる")
	})
}

func Test_planService_ListAndCurrent(t *testing.T) {
	ctx := context.Background()
	s, db := newTestPlanService(t)
	tenantID := createTenant(t, db)
	student := createUser(t, db, tenantID, model.RoleStudent)

	done1 := createBook(t, db, tenantID, model.BookStatusOnline)
	done2 := createBook(t, db, tenantID, model.BookStatusOnline)
	fresh := createBook(t, db, tenantID, model.BookStatusOnline)
	active := createBook(t, db, tenantID, model.BookStatusOnline)
	createBook(t, db, tenantID, model.BookStatusOffline)
	words := createWords(t, db, tenantID, active.ID, 6)

	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	_, err := s.CompletePlan(ctx, tenantID, student.ID, done1.ID)
	require.NoError(t, err)
	s.now = func() time.Time { return base.Add(48 * time.Hour) }
	_, err = s.CompletePlan(ctx, tenantID, student.ID, done2.ID)
	require.NoError(t, err)
	_, err = s.StartPlan(ctx, tenantID, student.ID, active.ID)
	require.NoError(t, err)

	ids := wordIDs(words)
	createCompletedTask(t, db, tenantID, student.ID, active.ID, ids[:3], 3, 1, base)
	createCompletedTask(t, db, tenantID, student.ID, active.ID, ids[2:5], 2, 0, base)

	summaries, err := s.ListPlans(ctx, tenantID, student.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 4, "公開中の単語帳だけ")

	assert.Equal(t, active.ID, summaries[0].BookID)
	assert.Equal(t, model.PlanStatusLearning, summaries[0].Status)
	assert.Equal(t, 5, summaries[0].CompletedWords, "完了タスクの単語の和集合")
	assert.Equal(t, 2, summaries[0].PracticeCount)
	assert.Equal(t, fresh.ID, summaries[1].BookID)
	assert.Equal(t, model.PlanStatusNotStarted, summaries[1].Status)
	assert.Nil(t, summaries[1].PlanID)
	assert.Equal(t, model.PlanStatusCompleted, summaries[2].Status)
	assert.Equal(t, model.PlanStatusCompleted, summaries[3].Status)

	current, err := s.GetCurrentPlan(ctx, tenantID, student.ID)
	require.NoError(t, err)
	require.NotNil(t, current.Plan)
	assert.Equal(t, active.ID, current.Plan.BookID)
	require.NotNil(t, current.LastCompleted)
	assert.Equal(t, done2.ID, current.LastCompleted.BookID, "completed_at が最も新しい計画")

	stats, err := s.GetPlanStats(ctx, tenantID, student.ID, active.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.PlanStats{
		BookID:         active.ID,
		Status:         model.PlanStatusLearning,
		TotalWords:     6,
		LearnedWords:   5,
		TotalTasks:     2,
		CompletedTasks: 2,
		TotalCorrect:   5,
		TotalWrong:     1,
		Accuracy:       83,
		TotalDuration:  120,
	}, stats)
}

func Test_planService_DeletePlan(t *testing.T) {
	ctx := context.Background()
	s, db := newTestPlanService(t)
	tenantID := createTenant(t, db)
	student := createUser(t, db, tenantID, model.RoleStudent)
	other := createUser(t, db, tenantID, model.RoleStudent)
	book := createBook(t, db, tenantID, model.BookStatusOnline)
	words := createWords(t, db, tenantID, book.ID, 3)

	plan, err := s.StartPlan(ctx, tenantID, student.ID, book.ID)
	require.NoError(t, err)
	createCompletedTask(t, db, tenantID, student.ID, book.ID, wordIDs(words), 3, 0, time.Now())
	otherTask := createCompletedTask(t, db, tenantID, other.ID, book.ID, wordIDs(words), 3, 0, time.Now())

	t.Run("異常系: 他の生徒の計画は削除できない", func(t *testing.T) {
		err := s.DeletePlan(ctx, tenantID, plan.ID, other.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 計画と同じ単語帳のタスクを削除", func(t *testing.T) {
		require.NoError(t, s.DeletePlan(ctx, tenantID, plan.ID, student.ID))

		var plans, tasks int64
		require.NoError(t, db.Model(&model.StudyPlan{}).Count(&plans).Error)
		require.NoError(t, db.Model(&model.LearningTask{}).Count(&tasks).Error)
		assert.Equal(t, int64(0), plans)
		assert.Equal(t, int64(1), tasks, "他の生徒のタスクは残る")

		var remaining model.LearningTask
		require.NoError(t, db.First(&remaining).Error)
		assert.Equal(t, otherTask.ID, remaining.ID)
	})
}
