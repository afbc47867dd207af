//go:generate mockery --name PlanRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(ctx context.Context, tx *gorm.DB, plan *model.StudyPlan) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, planID uint) (*model.StudyPlan, error)
	FindByUserBook(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error)
	// FindLearning は学習中の計画を返します。無ければ ErrNotFound
	FindLearning(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) (*model.StudyPlan, error)
	ListByUser(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) ([]*model.StudyPlan, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, planID uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, planID uint) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID uint) error
	DeleteByBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, bookID uint) error
	DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error
}

type gormPlanRepository struct{}

func NewGormPlanRepository() PlanRepository {
	return &gormPlanRepository{}
}

func (r *gormPlanRepository) Create(ctx context.Context, tx *gorm.DB, plan *model.StudyPlan) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(plan).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		logger.Error("Error creating study plan in DB",
			"error", err,
			"user_id", plan.UserID,
			"book_id", plan.BookID,
		)
		return fmt.Errorf("gormPlanRepository.Create: %w", err)
	}
	return nil
}

func (r *gormPlanRepository) findOne(ctx context.Context, query *gorm.DB, method string) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	if err := query.First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding study plan in DB", "error", err, "method", method)
		return nil, fmt.Errorf("gormPlanRepository.%s: %w", method, err)
	}
	return &plan, nil
}

func (r *gormPlanRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, planID uint) (*model.StudyPlan, error) {
	query := db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, planID)
	return r.findOne(ctx, query, "FindByID")
}

func (r *gormPlanRepository) FindByUserBook(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) (*model.StudyPlan, error) {
	query := db.WithContext(ctx).Where("tenant_id = ? AND user_id = ? AND book_id = ?", tenantID, userID, bookID)
	return r.findOne(ctx, query, "FindByUserBook")
}

func (r *gormPlanRepository) FindLearning(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) (*model.StudyPlan, error) {
	query := db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ? AND status = ?", tenantID, userID, model.PlanStatusLearning).
		Order("started_at DESC, id DESC")
	return r.findOne(ctx, query, "FindLearning")
}

func (r *gormPlanRepository) ListByUser(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) ([]*model.StudyPlan, error) {
	var plans []*model.StudyPlan
	if err := db.WithContext(ctx).Where("tenant_id = ? AND user_id = ?", tenantID, userID).Find(&plans).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing study plans in DB", "error", err, "user_id", userID)
		return nil, fmt.Errorf("gormPlanRepository.ListByUser: %w", err)
	}
	return plans, nil
}

func (r *gormPlanRepository) Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, planID uint, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.StudyPlan{}).
		Where("tenant_id = ? AND id = ?", tenantID, planID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		middleware.GetLogger(ctx).Error("Error updating study plan in DB", "error", result.Error, "plan_id", planID)
		return fmt.Errorf("gormPlanRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPlanRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, planID uint) error {
	result := tx.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, planID).Delete(&model.StudyPlan{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting study plan in DB", "error", result.Error, "plan_id", planID)
		return fmt.Errorf("gormPlanRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPlanRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID uint) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ? AND user_id = ?", tenantID, userID).Delete(&model.StudyPlan{}).Error; err != nil {
		return fmt.Errorf("gormPlanRepository.DeleteByUser: %w", err)
	}
	return nil
}

func (r *gormPlanRepository) DeleteByBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, bookID uint) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ? AND book_id = ?", tenantID, bookID).Delete(&model.StudyPlan{}).Error; err != nil {
		return fmt.Errorf("gormPlanRepository.DeleteByBook: %w", err)
	}
	return nil
}

func (r *gormPlanRepository) DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.StudyPlan{}).Error; err != nil {
		return fmt.Errorf("gormPlanRepository.DeleteByTenant: %w", err)
	}
	return nil
}
