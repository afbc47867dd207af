//go:generate mockery --name TaskService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskService interface {
	// GenerateTask は (生徒, 単語帳) の次のタスクを返します。
	// 未完了タスクがあればそれを返し (Exists=true)、出題できる単語が無ければ AllCompleted=true を返します
	GenerateTask(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.GenerateTaskResponse, error)
	// GetTask はタスクと出題順の単語を返します。ownerID が 0 以外なら本人のタスクに限定します
	GetTask(ctx context.Context, tenantID uuid.UUID, taskID, ownerID uint) (*model.TaskDetail, error)
	// UpdateTask は集計値と状態を更新します。完了済みタスクは更新できません
	UpdateTask(ctx context.Context, tenantID uuid.UUID, taskID, ownerID uint, req *model.UpdateTaskRequest) (*model.LearningTask, error)
}

type taskService struct {
	db      *gorm.DB
	repos   *repository.Repositories
	cache   cache.Cache
	now     func() time.Time
	shuffle func(n int, swap func(i, j int))
}

func NewTaskService(db *gorm.DB, repos *repository.Repositories, c cache.Cache) TaskService {
	return &taskService{
		db:      db,
		repos:   repos,
		cache:   c,
		now:     time.Now,
		shuffle: rand.Shuffle,
	}
}

const (
	codeTaskNotFound = "TASK_NOT_FOUND"
	msgTaskNotFound  = "タスクが見つかりません。"

	outcomeCreated      = "created"
	outcomeResumed      = "resumed"
	outcomeAllCompleted = "all_completed"

	msgAllCompleted = "この単語帳の単語はすべて学習済みです。"
)

func (s *taskService) GenerateTask(ctx context.Context, tenantID uuid.UUID, userID, bookID uint) (*model.GenerateTaskResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "book_id", bookID)

	var (
		task    *model.LearningTask
		book    *model.Book
		outcome string
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		book, err = s.repos.Book.FindByID(ctx, tx, tenantID, bookID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError(codeBookNotFound, msgBookNotFound, "book_id", model.ErrNotFound)
			}
			return err
		}
		user, err := s.repos.User.FindByID(ctx, tx, tenantID, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "user_id", model.ErrNotFound)
			}
			return err
		}
		// 生徒には非公開の単語帳は見えない
		if user.Role == model.RoleStudent && book.Status != model.BookStatusOnline {
			return model.NewAppError(codeBookNotFound, msgBookNotFound, "book_id", model.ErrNotFound)
		}

		pending, err := s.repos.Task.FindPending(ctx, tx, tenantID, userID, bookID)
		if err == nil {
			task, outcome = pending, outcomeResumed
			return nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		wordIDs, err := s.selectWords(ctx, tx, tenantID, userID, bookID)
		if err != nil {
			return err
		}
		if len(wordIDs) == 0 {
			outcome = outcomeAllCompleted
			return nil
		}

		key := model.PendingTaskKey(userID, bookID)
		task = &model.LearningTask{
			TenantID:   tenantID,
			UserID:     userID,
			BookID:     bookID,
			WordIDs:    wordIDs,
			TotalCount: len(wordIDs),
			Status:     model.TaskStatusInProgress,
			StartedAt:  s.now(),
			PendingKey: &key,
		}
		outcome = outcomeCreated
		return s.repos.Task.Create(ctx, tx, task)
	})
	if err != nil {
		if !errors.Is(err, model.ErrConflict) {
			return nil, wrapRepoError(err, codeTaskNotFound, msgTaskNotFound)
		}
		// 同時リクエストに先を越された場合は、作成された方のタスクを返す
		logger.Info("Task generation lost race, returning existing task")
		task, err = s.repos.Task.FindPending(ctx, s.db, tenantID, userID, bookID)
		if err != nil {
			return nil, wrapRepoError(err, codeTaskNotFound, msgTaskNotFound)
		}
		outcome = outcomeResumed
	}

	middleware.RecordTaskGenerate(outcome)
	if outcome == outcomeAllCompleted {
		logger.Info("No words left to practice")
		return &model.GenerateTaskResponse{AllCompleted: true, Message: msgAllCompleted}, nil
	}

	detail, err := s.detail(ctx, tenantID, task, book)
	if err != nil {
		return nil, err
	}
	logger.Info("Task generated", "task_id", task.ID, "outcome", outcome, "words", task.TotalCount)
	return &model.GenerateTaskResponse{Data: detail, Exists: outcome == outcomeResumed}, nil
}

// selectWords は学習計画が completed なら全単語から無作為に、
// それ以外は完了済みタスクに含まれない単語を ID 昇順で選びます
func (s *taskService) selectWords(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID, bookID uint) ([]uint, error) {
	all, err := s.repos.Word.ListIDsByBook(ctx, tx, tenantID, bookID)
	if err != nil {
		return nil, err
	}

	reviewMode := false
	plan, err := s.repos.Plan.FindByUserBook(ctx, tx, tenantID, userID, bookID)
	switch {
	case err == nil:
		reviewMode = plan.Status == model.PlanStatusCompleted
	case !errors.Is(err, model.ErrNotFound):
		return nil, err
	}
	if reviewMode {
		return selectRandom(all, model.TaskBatchSize, s.shuffle), nil
	}

	completed, err := s.repos.Task.ListCompleted(ctx, tx, tenantID, userID, bookID)
	if err != nil {
		return nil, err
	}
	return selectForward(all, completedWordSet(completed), model.TaskBatchSize), nil
}

// completedWordSet は完了済みタスクの word_ids の和集合
func completedWordSet(tasks []*model.LearningTask) map[uint]struct{} {
	set := make(map[uint]struct{})
	for _, t := range tasks {
		if !t.IsCompleted() {
			continue
		}
		for _, id := range t.WordIDs {
			set[id] = struct{}{}
		}
	}
	return set
}

// selectForward は exclude に無い ID を昇順に最大 limit 件返します
func selectForward(ids []uint, exclude map[uint]struct{}, limit int) []uint {
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := make([]uint, 0, limit)
	for _, id := range sorted {
		if _, done := exclude[id]; done {
			continue
		}
		out = append(out, id)
		if len(out) == limit {
			break
		}
	}
	return out
}

// selectRandom は ids から重複なしで最大 limit 件を一様に選びます
func selectRandom(ids []uint, limit int, shuffle func(n int, swap func(i, j int))) []uint {
	pool := append([]uint(nil), ids...)
	shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}

// detail はタスクに単語帳名と出題順の単語を付けます
func (s *taskService) detail(ctx context.Context, tenantID uuid.UUID, task *model.LearningTask, book *model.Book) (*model.TaskDetail, error) {
	if book == nil {
		b, err := s.repos.Book.FindByID(ctx, s.db, tenantID, task.BookID)
		switch {
		case err == nil:
			book = b
		case !errors.Is(err, model.ErrNotFound):
			return nil, errInternal(err)
		}
	}

	words, err := s.repos.Word.FindByIDs(ctx, s.db, tenantID, task.WordIDs)
	if err != nil {
		return nil, errInternal(err)
	}
	byID := make(map[uint]*model.Word, len(words))
	for _, w := range words {
		byID[w.ID] = w
	}
	ordered := make([]*model.Word, 0, len(task.WordIDs))
	for _, id := range task.WordIDs {
		// 出題後に削除された単語は飛ばす
		if w, ok := byID[id]; ok {
			ordered = append(ordered, w)
		}
	}

	d := &model.TaskDetail{LearningTask: *task, Words: ordered}
	if book != nil {
		d.BookName = book.Name
	}
	return d, nil
}

func (s *taskService) findOwned(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, taskID, ownerID uint) (*model.LearningTask, error) {
	task, err := s.repos.Task.FindByID(ctx, db, tenantID, taskID)
	if err != nil {
		return nil, err
	}
	if ownerID != 0 && task.UserID != ownerID {
		return nil, model.ErrNotFound
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, tenantID uuid.UUID, taskID, ownerID uint) (*model.TaskDetail, error) {
	task, err := s.findOwned(ctx, s.db, tenantID, taskID, ownerID)
	if err != nil {
		return nil, wrapRepoError(err, codeTaskNotFound, msgTaskNotFound)
	}
	return s.detail(ctx, tenantID, task, nil)
}

func (s *taskService) UpdateTask(ctx context.Context, tenantID uuid.UUID, taskID, ownerID uint, req *model.UpdateTaskRequest) (*model.LearningTask, error) {
	logger := middleware.GetLogger(ctx).With("task_id", taskID)

	if req.IsEmpty() {
		return nil, model.NewAppError("NO_UPDATE_FIELDS", "更新する項目がありません。", "", model.ErrInvalidInput)
	}

	var updated *model.LearningTask
	completing := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := s.findOwned(ctx, tx, tenantID, taskID, ownerID)
		if err != nil {
			return err
		}
		if task.IsCompleted() {
			return model.NewAppError("TASK_COMPLETED", "完了済みのタスクは更新できません。", "status", model.ErrInvalidInput)
		}

		updates := make(map[string]interface{})
		if req.CorrectCount != nil {
			updates["correct_count"] = *req.CorrectCount
		}
		if req.WrongCount != nil {
			updates["wrong_count"] = *req.WrongCount
		}
		if req.HintCount != nil {
			updates["hint_count"] = *req.HintCount
		}
		if req.Status != nil {
			updates["status"] = *req.Status
			if *req.Status == model.TaskStatusCompleted {
				completing = true
				endedAt := s.now()
				duration := int(endedAt.Sub(task.StartedAt).Seconds())
				if duration < 0 {
					duration = 0
				}
				updates["ended_at"] = endedAt
				updates["duration_seconds"] = duration
				updates["pending_key"] = nil
			}
		}

		if err := s.repos.Task.Update(ctx, tx, tenantID, taskID, updates); err != nil {
			return err
		}
		updated, err = s.repos.Task.FindByID(ctx, tx, tenantID, taskID)
		return err
	})
	if err != nil {
		return nil, wrapRepoError(err, codeTaskNotFound, msgTaskNotFound)
	}

	if completing {
		invalidateDashboard(ctx, s.cache, tenantID)
		logger.Info("Task completed", "user_id", updated.UserID, "duration_seconds", updated.DurationSeconds,
			"correct", updated.CorrectCount, "wrong", updated.WrongCount)
	}
	return updated, nil
}
