//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
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

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordID uint) (*model.Word, error)
	// FindByIDs は指定IDの単語を返します。順序は保証しない
	FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordIDs []uint) ([]*model.Word, error)
	ListByBook(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint, page model.Page) ([]*model.Word, int64, error)
	// ListIDsByBook は単語帳の単語IDを昇順で返します
	ListIDsByBook(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) ([]uint, error)
	CountByBook(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) (int64, error)
	CountByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordID uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordID uint) error
	DeleteByBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, bookID uint) error
	DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"tenant_id", word.TenantID.String(),
			"book_id", word.BookID,
			"spelling", word.Spelling,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordID uint) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID,
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordIDs []uint) ([]*model.Word, error) {
	var words []*model.Word
	if len(wordIDs) == 0 {
		return words, nil
	}
	result := db.WithContext(ctx).Where("tenant_id = ? AND id IN ?", tenantID, wordIDs).Find(&words)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding words by IDs in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"count", len(wordIDs),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByIDs: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) ListByBook(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint, page model.Page) ([]*model.Word, int64, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	var total int64

	base := db.WithContext(ctx).Model(&model.Word{}).Where("tenant_id = ? AND book_id = ?", tenantID, bookID)
	if err := base.Count(&total).Error; err != nil {
		logger.Error("Error counting words by book in DB", "error", err, "book_id", bookID)
		return nil, 0, fmt.Errorf("gormWordRepository.ListByBook: %w", err)
	}
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND book_id = ?", tenantID, bookID).
		Order("id ASC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&words)
	if result.Error != nil {
		logger.Error("Error listing words by book in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"book_id", bookID,
		)
		return nil, 0, fmt.Errorf("gormWordRepository.ListByBook: %w", result.Error)
	}
	return words, total, nil
}

func (r *gormWordRepository) ListIDsByBook(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) ([]uint, error) {
	var ids []uint
	err := db.WithContext(ctx).Model(&model.Word{}).
		Where("tenant_id = ? AND book_id = ?", tenantID, bookID).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing word IDs by book in DB", "error", err, "book_id", bookID)
		return nil, fmt.Errorf("gormWordRepository.ListIDsByBook: %w", err)
	}
	return ids, nil
}

func (r *gormWordRepository) CountByBook(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Word{}).Where("tenant_id = ? AND book_id = ?", tenantID, bookID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormWordRepository.CountByBook: %w", err)
	}
	return count, nil
}

func (r *gormWordRepository) CountByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Word{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormWordRepository.CountByTenant: %w", err)
	}
	return count, nil
}

func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordID uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Word{}).
		Where("tenant_id = ? AND id = ?", tenantID, wordID).
		Updates(updates)

	if result.Error != nil {
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID,
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordID uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, wordID).Delete(&model.Word{})

	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID,
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) DeleteByBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, bookID uint) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ? AND book_id = ?", tenantID, bookID).Delete(&model.Word{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting words by book in DB", "error", err, "book_id", bookID)
		return fmt.Errorf("gormWordRepository.DeleteByBook: %w", err)
	}
	return nil
}

func (r *gormWordRepository) DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.Word{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting words by tenant in DB", "error", err, "tenant_id", tenantID.String())
		return fmt.Errorf("gormWordRepository.DeleteByTenant: %w", err)
	}
	return nil
}
