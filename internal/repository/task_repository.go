//go:generate mockery --name TaskRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository interface {
	// Create は未完了タスクが既にある場合 ErrConflict を返します
	Create(ctx context.Context, tx *gorm.DB, task *model.LearningTask) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, taskID uint) (*model.LearningTask, error)
	// FindPending は (生徒, 単語帳) の未完了タスクを返します。無ければ ErrNotFound
	FindPending(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) (*model.LearningTask, error)
	// ListCompleted は完了済みタスクを新しい順に返します。bookID が 0 なら全単語帳
	ListCompleted(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) ([]*model.LearningTask, error)
	// ListCompletedBetween は ended_at が [from, to) の完了済みタスクを返します
	ListCompletedBetween(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint, from, to time.Time) ([]*model.LearningTask, error)
	ListHistory(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter model.HistoryFilter) ([]*model.HistoryEntry, int64, error)
	// ListByUser は状態を問わず生徒のタスクを返します。bookID が 0 なら全単語帳
	ListByUser(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) ([]*model.LearningTask, error)
	// TenantTotals は完了タスク数と正解数の合計を返します
	TenantTotals(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (completed int64, correct int64, err error)
	Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, taskID uint, updates map[string]interface{}) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID uint) error
	DeleteByBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, bookID uint) error
	DeleteByUserBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID, bookID uint) error
	DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error
}

type gormTaskRepository struct{}

func NewGormTaskRepository() TaskRepository {
	return &gormTaskRepository{}
}

func (r *gormTaskRepository) Create(ctx context.Context, tx *gorm.DB, task *model.LearningTask) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(task).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Info("Pending task already exists",
				"tenant_id", task.TenantID.String(),
				"user_id", task.UserID,
				"book_id", task.BookID,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating learning task in DB",
			"error", err,
			"tenant_id", task.TenantID.String(),
			"user_id", task.UserID,
			"book_id", task.BookID,
		)
		return fmt.Errorf("gormTaskRepository.Create: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, taskID uint) (*model.LearningTask, error) {
	var task model.LearningTask
	result := db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, taskID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding learning task by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"task_id", taskID,
		)
		return nil, fmt.Errorf("gormTaskRepository.FindByID: %w", result.Error)
	}
	return &task, nil
}

func (r *gormTaskRepository) FindPending(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) (*model.LearningTask, error) {
	var task model.LearningTask
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ? AND book_id = ? AND status <> ?", tenantID, userID, bookID, model.TaskStatusCompleted).
		Order("id DESC").
		First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding pending learning task in DB",
			"error", result.Error,
			"user_id", userID,
			"book_id", bookID,
		)
		return nil, fmt.Errorf("gormTaskRepository.FindPending: %w", result.Error)
	}
	return &task, nil
}

func (r *gormTaskRepository) ListCompleted(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) ([]*model.LearningTask, error) {
	var tasks []*model.LearningTask
	query := db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ? AND status = ?", tenantID, userID, model.TaskStatusCompleted)
	if bookID != 0 {
		query = query.Where("book_id = ?", bookID)
	}
	if err := query.Order("ended_at DESC, id DESC").Find(&tasks).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing completed learning tasks in DB",
			"error", err,
			"user_id", userID,
			"book_id", bookID,
		)
		return nil, fmt.Errorf("gormTaskRepository.ListCompleted: %w", err)
	}
	return tasks, nil
}

func (r *gormTaskRepository) ListCompletedBetween(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint, from, to time.Time) ([]*model.LearningTask, error) {
	var tasks []*model.LearningTask
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ? AND status = ?", tenantID, userID, model.TaskStatusCompleted).
		Where("ended_at >= ? AND ended_at < ?", from, to).
		Order("ended_at ASC").
		Find(&tasks).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing completed learning tasks by range in DB", "error", err, "user_id", userID)
		return nil, fmt.Errorf("gormTaskRepository.ListCompletedBetween: %w", err)
	}
	return tasks, nil
}

func (r *gormTaskRepository) ListHistory(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter model.HistoryFilter) ([]*model.HistoryEntry, int64, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.HistoryEntry
	var total int64

	scope := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("learning_tasks.tenant_id = ? AND learning_tasks.status = ?", tenantID, model.TaskStatusCompleted)
		if filter.UserID != 0 {
			tx = tx.Where("learning_tasks.user_id = ?", filter.UserID)
		}
		if filter.BookID != 0 {
			tx = tx.Where("learning_tasks.book_id = ?", filter.BookID)
		}
		return tx
	}

	if err := db.WithContext(ctx).Model(&model.LearningTask{}).Scopes(scope).Count(&total).Error; err != nil {
		logger.Error("Error counting history in DB", "error", err, "user_id", filter.UserID)
		return nil, 0, fmt.Errorf("gormTaskRepository.ListHistory: %w", err)
	}

	err := db.WithContext(ctx).Model(&model.LearningTask{}).
		Select(`learning_tasks.id, learning_tasks.user_id, learning_tasks.book_id, books.name AS book_name,
			learning_tasks.total_count, learning_tasks.correct_count, learning_tasks.wrong_count,
			learning_tasks.hint_count, learning_tasks.started_at, learning_tasks.ended_at,
			learning_tasks.duration_seconds`).
		Joins("LEFT JOIN books ON books.id = learning_tasks.book_id AND books.tenant_id = learning_tasks.tenant_id").
		Scopes(scope).
		Order("learning_tasks.ended_at DESC, learning_tasks.id DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Scan(&entries).Error
	if err != nil {
		logger.Error("Error listing history in DB", "error", err, "user_id", filter.UserID)
		return nil, 0, fmt.Errorf("gormTaskRepository.ListHistory: %w", err)
	}
	return entries, total, nil
}

func (r *gormTaskRepository) ListByUser(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) ([]*model.LearningTask, error) {
	var tasks []*model.LearningTask
	query := db.WithContext(ctx).Where("tenant_id = ? AND user_id = ?", tenantID, userID)
	if bookID != 0 {
		query = query.Where("book_id = ?", bookID)
	}
	if err := query.Order("id ASC").Find(&tasks).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing learning tasks by user in DB", "error", err, "user_id", userID)
		return nil, fmt.Errorf("gormTaskRepository.ListByUser: %w", err)
	}
	return tasks, nil
}

func (r *gormTaskRepository) TenantTotals(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (int64, int64, error) {
	var row struct {
		Completed int64
		Correct   int64
	}
	err := db.WithContext(ctx).Model(&model.LearningTask{}).
		Select("COUNT(*) AS completed, COALESCE(SUM(correct_count), 0) AS correct").
		Where("tenant_id = ? AND status = ?", tenantID, model.TaskStatusCompleted).
		Scan(&row).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error aggregating tenant task totals in DB", "error", err, "tenant_id", tenantID.String())
		return 0, 0, fmt.Errorf("gormTaskRepository.TenantTotals: %w", err)
	}
	return row.Completed, row.Correct, nil
}

func (r *gormTaskRepository) Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, taskID uint, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.LearningTask{}).
		Where("tenant_id = ? AND id = ?", tenantID, taskID).
		Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating learning task in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"task_id", taskID,
		)
		return fmt.Errorf("gormTaskRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTaskRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID uint) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ? AND user_id = ?", tenantID, userID).Delete(&model.LearningTask{}).Error; err != nil {
		return fmt.Errorf("gormTaskRepository.DeleteByUser: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) DeleteByBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, bookID uint) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ? AND book_id = ?", tenantID, bookID).Delete(&model.LearningTask{}).Error; err != nil {
		return fmt.Errorf("gormTaskRepository.DeleteByBook: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) DeleteByUserBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID, bookID uint) error {
	err := tx.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ? AND book_id = ?", tenantID, userID, bookID).
		Delete(&model.LearningTask{}).Error
	if err != nil {
		return fmt.Errorf("gormTaskRepository.DeleteByUserBook: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.LearningTask{}).Error; err != nil {
		return fmt.Errorf("gormTaskRepository.DeleteByTenant: %w", err)
	}
	return nil
}
