//go:generate mockery --name WrongWordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WrongWordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.WrongWord) error
	// ListEntries は誤答行を単語・単語帳情報付きで古い順に返します。
	// bookID が 0 なら全単語帳、since が nil なら全期間
	ListEntries(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint, since *time.Time) ([]*model.WrongWordEntry, error)
	// Count は誤答の記録件数を返します。bookID が 0 なら全単語帳
	Count(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) (int64, error)
	// MarkReviewed は単語の誤答をすべて復習済みにし、更新件数を返します
	MarkReviewed(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID, wordID uint) (int64, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID uint) error
	DeleteByBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, bookID uint) error
	DeleteByWord(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordID uint) error
	DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error
}

type gormWrongWordRepository struct{}

func NewGormWrongWordRepository() WrongWordRepository {
	return &gormWrongWordRepository{}
}

func (r *gormWrongWordRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.WrongWord) error {
	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating wrong word in DB",
			"error", err,
			"user_id", entry.UserID,
			"word_id", entry.WordID,
		)
		return fmt.Errorf("gormWrongWordRepository.Create: %w", err)
	}
	return nil
}

func (r *gormWrongWordRepository) ListEntries(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint, since *time.Time) ([]*model.WrongWordEntry, error) {
	var entries []*model.WrongWordEntry

	query := db.WithContext(ctx).Model(&model.WrongWord{}).
		Select(`wrong_words.word_id, words.spelling, words.meaning, wrong_words.book_id,
			books.name AS book_name, wrong_words.wrong_spelling, wrong_words.reviewed, wrong_words.created_at`).
		Joins("JOIN words ON words.id = wrong_words.word_id AND words.tenant_id = wrong_words.tenant_id").
		Joins("LEFT JOIN books ON books.id = wrong_words.book_id AND books.tenant_id = wrong_words.tenant_id").
		Where("wrong_words.tenant_id = ? AND wrong_words.user_id = ?", tenantID, userID)
	if bookID != 0 {
		query = query.Where("wrong_words.book_id = ?", bookID)
	}
	if since != nil {
		query = query.Where("wrong_words.created_at >= ?", *since)
	}

	if err := query.Order("wrong_words.created_at ASC, wrong_words.id ASC").Scan(&entries).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing wrong words in DB",
			"error", err,
			"tenant_id", tenantID.String(),
			"user_id", userID,
		)
		return nil, fmt.Errorf("gormWrongWordRepository.ListEntries: %w", err)
	}
	return entries, nil
}

func (r *gormWrongWordRepository) Count(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID, bookID uint) (int64, error) {
	var count int64
	query := db.WithContext(ctx).Model(&model.WrongWord{}).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID)
	if bookID != 0 {
		query = query.Where("book_id = ?", bookID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormWrongWordRepository.Count: %w", err)
	}
	return count, nil
}

func (r *gormWrongWordRepository) MarkReviewed(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID, wordID uint) (int64, error) {
	result := tx.WithContext(ctx).Model(&model.WrongWord{}).
		Where("tenant_id = ? AND user_id = ? AND word_id = ?", tenantID, userID, wordID).
		Update("reviewed", true)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error marking wrong words reviewed in DB",
			"error", result.Error,
			"user_id", userID,
			"word_id", wordID,
		)
		return 0, fmt.Errorf("gormWrongWordRepository.MarkReviewed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormWrongWordRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, userID uint) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ? AND user_id = ?", tenantID, userID).Delete(&model.WrongWord{}).Error; err != nil {
		return fmt.Errorf("gormWrongWordRepository.DeleteByUser: %w", err)
	}
	return nil
}

func (r *gormWrongWordRepository) DeleteByBook(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, bookID uint) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ? AND book_id = ?", tenantID, bookID).Delete(&model.WrongWord{}).Error; err != nil {
		return fmt.Errorf("gormWrongWordRepository.DeleteByBook: %w", err)
	}
	return nil
}

func (r *gormWrongWordRepository) DeleteByWord(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, wordID uint) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).Delete(&model.WrongWord{}).Error; err != nil {
		return fmt.Errorf("gormWrongWordRepository.DeleteByWord: %w", err)
	}
	return nil
}

func (r *gormWrongWordRepository) DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error {
	if err := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.WrongWord{}).Error; err != nil {
		return fmt.Errorf("gormWrongWordRepository.DeleteByTenant: %w", err)
	}
	return nil
}
