//go:generate mockery --name TenantRepository --output ./mocks --outpkg mocks --case=underscore
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

type TenantRepository interface {
	Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error)
	List(ctx context.Context, db *gorm.DB, page model.Page) ([]*model.Tenant, int64, error)
	Update(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) error
}

type gormTenantRepository struct{}

func NewGormTenantRepository() TenantRepository {
	return &gormTenantRepository{}
}

func (r *gormTenantRepository) Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(tenant)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn(
				"Duplicate key error on create tenant",
				"error", result.Error,
				"tenant_name", tenant.Name,
			)
			return model.ErrConflict
		}

		logger.Error(
			"Error creating tenant in DB",
			"error", result.Error,
			"tenant_name", tenant.Name,
		)
		return fmt.Errorf("gormTenantRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormTenantRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenant model.Tenant

	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding tenant by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormTenantRepository.FindByID: %w", result.Error)
	}
	return &tenant, nil
}

func (r *gormTenantRepository) List(ctx context.Context, db *gorm.DB, page model.Page) ([]*model.Tenant, int64, error) {
	logger := middleware.GetLogger(ctx)
	var tenants []*model.Tenant
	var total int64

	if err := db.WithContext(ctx).Model(&model.Tenant{}).Count(&total).Error; err != nil {
		logger.Error("Error counting tenants in DB", "error", err)
		return nil, 0, fmt.Errorf("gormTenantRepository.List: %w", err)
	}
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&tenants).Error
	if err != nil {
		logger.Error("Error listing tenants in DB", "error", err)
		return nil, 0, fmt.Errorf("gormTenantRepository.List: %w", err)
	}
	return tenants, total, nil
}

func (r *gormTenantRepository) Update(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.Tenant{}).Where("tenant_id = ?", tenantID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating tenant in DB", "error", result.Error, "tenant_id", tenantID.String())
		return fmt.Errorf("gormTenantRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTenantRepository) Delete(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.Tenant{})

	if result.Error != nil {
		logger.Error(
			"Error deleting tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return fmt.Errorf("gormTenantRepository.Delete: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}
