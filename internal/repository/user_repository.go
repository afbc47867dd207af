//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
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

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) (*model.User, error)
	// FindByAccount はアカウント名でユーザーを探します。tenantID が nil の場合は全テナントが対象
	FindByAccount(ctx context.Context, db *gorm.DB, tenantID *uuid.UUID, account string) ([]*model.User, error)
	ListByRole(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, role string, page model.Page) ([]*model.User, int64, error)
	CountByRole(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, role string) (int64, error)
	Update(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint, updates map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) error
	DeleteByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate account on create user",
				"tenant_id", user.TenantID.String(),
				"account", user.Account,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB",
			"error", result.Error,
			"tenant_id", user.TenantID.String(),
			"account", user.Account,
		)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"user_id", userID,
		)
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByAccount(ctx context.Context, db *gorm.DB, tenantID *uuid.UUID, account string) ([]*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var users []*model.User

	query := db.WithContext(ctx).Where("account = ?", account)
	if tenantID != nil {
		query = query.Where("tenant_id = ?", *tenantID)
	}
	if err := query.Order("id ASC").Find(&users).Error; err != nil {
		logger.Error("Error finding users by account in DB", "error", err, "account", account)
		return nil, fmt.Errorf("gormUserRepository.FindByAccount: %w", err)
	}
	return users, nil
}

func (r *gormUserRepository) ListByRole(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, role string, page model.Page) ([]*model.User, int64, error) {
	logger := middleware.GetLogger(ctx)
	var users []*model.User
	var total int64

	base := db.WithContext(ctx).Model(&model.User{}).Where("tenant_id = ? AND role = ?", tenantID, role)
	if err := base.Count(&total).Error; err != nil {
		logger.Error("Error counting users in DB", "error", err, "tenant_id", tenantID.String())
		return nil, 0, fmt.Errorf("gormUserRepository.ListByRole: %w", err)
	}
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND role = ?", tenantID, role).
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&users).Error
	if err != nil {
		logger.Error("Error listing users in DB", "error", err, "tenant_id", tenantID.String())
		return nil, 0, fmt.Errorf("gormUserRepository.ListByRole: %w", err)
	}
	return users, total, nil
}

func (r *gormUserRepository) CountByRole(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, role string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.User{}).Where("tenant_id = ? AND role = ?", tenantID, role).Count(&count).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error counting users by role in DB", "error", err, "tenant_id", tenantID.String())
		return 0, fmt.Errorf("gormUserRepository.CountByRole: %w", err)
	}
	return count, nil
}

func (r *gormUserRepository) Update(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.User{}).
		Where("tenant_id = ? AND id = ?", tenantID, userID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error updating user in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"user_id", userID,
		)
		return fmt.Errorf("gormUserRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) Delete(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, userID).Delete(&model.User{})
	if result.Error != nil {
		logger.Error("Error deleting user in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"user_id", userID,
		)
		return fmt.Errorf("gormUserRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) DeleteByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) error {
	if err := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.User{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting users by tenant in DB", "error", err, "tenant_id", tenantID.String())
		return fmt.Errorf("gormUserRepository.DeleteByTenant: %w", err)
	}
	return nil
}
