//go:generate mockery --name PlanService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/progress"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanService interface {
	// ListPlans は公開中の単語帳ごとに生徒の学習状況を返します (learning, not_started, completed の順)
	ListPlans(ctx context.Context, tenantID uuid.UUID, userID uint) ([]*model.PlanSummary, error)
	GetCurrentPlan(ctx context.Context, tenantID uuid.UUID, userID uint) (*model.CurrentPlanResponse, error)
	GetPlanStats(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.PlanStats, error)
	// StartPlan は単語帳を学習中にします。他の単語帳が学習中なら ACTIVE_PLAN_EXISTS
	StartPlan(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error)
	PausePlan(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error)
	CompletePlan(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error)
	// DeletePlan は計画と、その生徒の同じ単語帳のタスクを削除します。ownerID が 0 以外なら本人の計画に限定
	DeletePlan(ctx context.Context, tenantID uuid.UUID, planID, ownerID uint) error
}

type planService struct {
	db    *gorm.DB
	repos *repository.Repositories
	now   func() time.Time
}

func NewPlanService(db *gorm.DB, repos *repository.Repositories) PlanService {
	return &planService{db: db, repos: repos, now: time.Now}
}

const (
	codePlanNotFound = "PLAN_NOT_FOUND"
	msgPlanNotFound  = "学習計画が見つかりません。"
)

var planStatusOrder = map[string]int{
	model.PlanStatusLearning:   0,
	model.PlanStatusNotStarted: 1,
	model.PlanStatusCompleted:  2,
}

func (s *planService) ListPlans(ctx context.Context, tenantID uuid.UUID, userID uint) ([]*model.PlanSummary, error) {
	books, err := s.repos.Book.ListAll(ctx, s.db, tenantID, model.BookStatusOnline)
	if err != nil {
		return nil, errInternal(err)
	}
	plans, err := s.repos.Plan.ListByUser(ctx, s.db, tenantID, userID)
	if err != nil {
		return nil, errInternal(err)
	}
	tasks, err := s.repos.Task.ListByUser(ctx, s.db, tenantID, userID, 0)
	if err != nil {
		return nil, errInternal(err)
	}

	planByBook := make(map[uint]*model.StudyPlan, len(plans))
	for _, p := range plans {
		planByBook[p.BookID] = p
	}
	tasksByBook := groupTasksByBook(tasks)

	summaries := make([]*model.PlanSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, summarizePlan(b, planByBook[b.ID], tasksByBook[b.ID]))
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return planStatusOrder[summaries[i].Status] < planStatusOrder[summaries[j].Status]
	})
	return summaries, nil
}

func (s *planService) GetCurrentPlan(ctx context.Context, tenantID uuid.UUID, userID uint) (*model.CurrentPlanResponse, error) {
	resp := &model.CurrentPlanResponse{}

	learning, err := s.repos.Plan.FindLearning(ctx, s.db, tenantID, userID)
	switch {
	case err == nil:
		summary, err := s.summaryFor(ctx, tenantID, learning)
		if err != nil {
			return nil, err
		}
		resp.Plan = summary
	case !errors.Is(err, model.ErrNotFound):
		return nil, errInternal(err)
	}

	plans, err := s.repos.Plan.ListByUser(ctx, s.db, tenantID, userID)
	if err != nil {
		return nil, errInternal(err)
	}
	var last *model.StudyPlan
	for _, p := range plans {
		if p.Status != model.PlanStatusCompleted || p.CompletedAt == nil {
			continue
		}
		if last == nil || p.CompletedAt.After(*last.CompletedAt) {
			last = p
		}
	}
	if last != nil {
		summary, err := s.summaryFor(ctx, tenantID, last)
		if err != nil {
			return nil, err
		}
		resp.LastCompleted = summary
	}
	return resp, nil
}

// summaryFor は単語帳が削除済みなら nil を返します
func (s *planService) summaryFor(ctx context.Context, tenantID uuid.UUID, plan *model.StudyPlan) (*model.PlanSummary, error) {
	book, err := s.repos.Book.FindByID(ctx, s.db, tenantID, plan.BookID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, errInternal(err)
	}
	tasks, err := s.repos.Task.ListByUser(ctx, s.db, tenantID, plan.UserID, plan.BookID)
	if err != nil {
		return nil, errInternal(err)
	}
	return summarizePlan(book, plan, tasks), nil
}

func (s *planService) GetPlanStats(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.PlanStats, error) {
	book, err := s.repos.Book.FindByID(ctx, s.db, tenantID, bookID)
	if err != nil {
		return nil, wrapRepoError(err, codeBookNotFound, msgBookNotFound)
	}
	tasks, err := s.repos.Task.ListByUser(ctx, s.db, tenantID, userID, bookID)
	if err != nil {
		return nil, errInternal(err)
	}
	wrong, err := s.repos.WrongWord.Count(ctx, s.db, tenantID, userID, bookID)
	if err != nil {
		return nil, errInternal(err)
	}

	status := model.PlanStatusNotStarted
	plan, err := s.repos.Plan.FindByUserBook(ctx, s.db, tenantID, userID, bookID)
	switch {
	case err == nil:
		status = plan.Status
	case !errors.Is(err, model.ErrNotFound):
		return nil, errInternal(err)
	}

	totals := progress.Sum(tasks)
	return &model.PlanStats{
		BookID:          bookID,
		Status:          status,
		TotalWords:      book.WordCount,
		LearnedWords:    progress.WordsLearned(tasks),
		TotalTasks:      totals.Tasks,
		CompletedTasks:  totals.Completed,
		TotalCorrect:    totals.Correct,
		TotalWrong:      totals.Wrong,
		Accuracy:        progress.Accuracy(totals.Correct, totals.Wrong),
		TotalDuration:   totals.Duration,
		WrongWordsCount: int(wrong),
	}, nil
}

func (s *planService) StartPlan(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "book_id", bookID)

	var result *model.StudyPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repos.Book.FindByID(ctx, tx, tenantID, bookID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError(codeBookNotFound, msgBookNotFound, "book_id", model.ErrNotFound)
			}
			return err
		}

		active, err := s.repos.Plan.FindLearning(ctx, tx, tenantID, userID)
		switch {
		case err == nil && active.BookID == bookID:
			result = active
			return nil
		case err == nil:
			return errActivePlanExists(active)
		case !errors.Is(err, model.ErrNotFound):
			return err
		}

		now := s.now()
		existing, err := s.repos.Plan.FindByUserBook(ctx, tx, tenantID, userID, bookID)
		if err == nil {
			updates := map[string]interface{}{"status": model.PlanStatusLearning, "started_at": now}
			if err := s.repos.Plan.Update(ctx, tx, tenantID, existing.ID, updates); err != nil {
				return err
			}
			result, err = s.repos.Plan.FindByID(ctx, tx, tenantID, existing.ID)
			return err
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		plan := &model.StudyPlan{
			TenantID:  tenantID,
			UserID:    userID,
			BookID:    bookID,
			Status:    model.PlanStatusLearning,
			StartedAt: &now,
		}
		if err := s.repos.Plan.Create(ctx, tx, plan); err != nil {
			return err
		}
		result = plan
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			// 同時に別の計画が learning になった場合は uq_plans_learning で弾かれる
			logger.Info("Plan start lost race, re-reading learning plan")
			return s.resolveStartConflict(ctx, tenantID, userID, bookID)
		}
		return nil, wrapRepoError(err, codePlanNotFound, msgPlanNotFound)
	}
	logger.Info("Plan started", "plan_id", result.ID)
	return result, nil
}

func errActivePlanExists(active *model.StudyPlan) *model.AppError {
	return model.NewAppError("ACTIVE_PLAN_EXISTS", "他の単語帳を学習中です。先に一時停止してください。", "", model.ErrInvalidInput).
		WithDetails(map[string]any{"has_active_plan": true, "active_plan_id": active.ID})
}

// resolveStartConflict は一意制約違反の後、先に確定した学習中の計画を読み直します
func (s *planService) resolveStartConflict(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error) {
	active, err := s.repos.Plan.FindLearning(ctx, s.db, tenantID, userID)
	switch {
	case err == nil && active.BookID == bookID:
		return active, nil
	case err == nil:
		return nil, errActivePlanExists(active)
	case errors.Is(err, model.ErrNotFound):
		return nil, model.NewAppError("PLAN_CONFLICT", "学習計画が同時に更新されました。再度お試しください。", "", model.ErrConflict)
	default:
		return nil, errInternal(err)
	}
}

func (s *planService) PausePlan(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error) {
	var result *model.StudyPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := s.repos.Plan.FindByUserBook(ctx, tx, tenantID, userID, bookID)
		if err != nil {
			return err
		}
		if err := s.repos.Plan.Update(ctx, tx, tenantID, plan.ID, map[string]interface{}{"status": model.PlanStatusNotStarted}); err != nil {
			return err
		}
		result, err = s.repos.Plan.FindByID(ctx, tx, tenantID, plan.ID)
		return err
	})
	if err != nil {
		return nil, wrapRepoError(err, codePlanNotFound, msgPlanNotFound)
	}
	middleware.GetLogger(ctx).Info("Plan paused", "plan_id", result.ID, "user_id", userID, "book_id", bookID)
	return result, nil
}

// CompletePlan は計画が無ければ completed で作成します
func (s *planService) CompletePlan(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error) {
	var result *model.StudyPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repos.Book.FindByID(ctx, tx, tenantID, bookID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError(codeBookNotFound, msgBookNotFound, "book_id", model.ErrNotFound)
			}
			return err
		}

		now := s.now()
		plan, err := s.repos.Plan.FindByUserBook(ctx, tx, tenantID, userID, bookID)
		if errors.Is(err, model.ErrNotFound) {
			plan = &model.StudyPlan{
				TenantID:    tenantID,
				UserID:      userID,
				BookID:      bookID,
				Status:      model.PlanStatusCompleted,
				CompletedAt: &now,
			}
			if err := s.repos.Plan.Create(ctx, tx, plan); err != nil {
				return err
			}
			result = plan
			return nil
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"status": model.PlanStatusCompleted, "completed_at": now}
		if err := s.repos.Plan.Update(ctx, tx, tenantID, plan.ID, updates); err != nil {
			return err
		}
		result, err = s.repos.Plan.FindByID(ctx, tx, tenantID, plan.ID)
		return err
	})
	if err != nil {
		return nil, wrapRepoError(err, codePlanNotFound, msgPlanNotFound)
	}
	middleware.GetLogger(ctx).Info("Plan completed", "plan_id", result.ID, "user_id", userID, "book_id", bookID)
	return result, nil
}

func (s *planService) DeletePlan(ctx context.Context, tenantID uuid.UUID, planID, ownerID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := s.repos.Plan.FindByID(ctx, tx, tenantID, planID)
		if err != nil {
			return err
		}
		if ownerID != 0 && plan.UserID != ownerID {
			return model.ErrNotFound
		}
		if err := s.repos.Task.DeleteByUserBook(ctx, tx, tenantID, plan.UserID, plan.BookID); err != nil {
			return err
		}
		return s.repos.Plan.Delete(ctx, tx, tenantID, planID)
	})
	if err != nil {
		return wrapRepoError(err, codePlanNotFound, msgPlanNotFound)
	}
	middleware.GetLogger(ctx).Info("Plan deleted", "plan_id", planID)
	return nil
}

func groupTasksByBook(tasks []*model.LearningTask) map[uint][]*model.LearningTask {
	out := make(map[uint][]*model.LearningTask)
	for _, t := range tasks {
		out[t.BookID] = append(out[t.BookID], t)
	}
	return out
}

// summarizePlan は計画が無い単語帳を not_started として扱います
func summarizePlan(book *model.Book, plan *model.StudyPlan, tasks []*model.LearningTask) *model.PlanSummary {
	s := &model.PlanSummary{
		BookID:         book.ID,
		BookName:       book.Name,
		Description:    book.Description,
		WordCount:      book.WordCount,
		DailyTarget:    book.DailyTarget,
		Status:         model.PlanStatusNotStarted,
		CompletedWords: progress.WordsLearned(tasks),
		PracticeCount:  len(tasks),
	}
	if plan != nil {
		id := plan.ID
		s.PlanID = &id
		s.Status = plan.Status
		s.StartedAt = plan.StartedAt
		s.CompletedAt = plan.CompletedAt
	}
	return s
}
