//go:generate mockery --name BookRepository --output ./mocks --outpkg mocks --case=underscore
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

type BookRepository interface {
	Create(ctx context.Context, db *gorm.DB, book *model.Book) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) (*model.Book, error)
	List(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter model.BookFilter) ([]*model.Book, int64, error)
	// ListAll はページングなしで返します。status が空なら全件
	ListAll(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, status string) ([]*model.Book, error)
	Update(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint, updates map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) error
	DeleteByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) error
	Count(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, status string) (int64, error)
	// AdjustWordCount は word_count を delta だけ増減します (0未満にはしない)
	AdjustWordCount(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint, delta int) error
	// SyncWordCount は word_count を実際の単語数に合わせ、その値を返します
	SyncWordCount(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) (int, error)
	// SyncAllWordCounts は全テナントの全単語帳の word_count を再計算します
	SyncAllWordCounts(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormBookRepository struct{}

func NewGormBookRepository() BookRepository {
	return &gormBookRepository{}
}

func (r *gormBookRepository) Create(ctx context.Context, db *gorm.DB, book *model.Book) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(book).Error; err != nil {
		logger.Error("Error creating book in DB",
			"error", err,
			"tenant_id", book.TenantID.String(),
			"name", book.Name,
		)
		return fmt.Errorf("gormBookRepository.Create: %w", err)
	}
	return nil
}

func (r *gormBookRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) (*model.Book, error) {
	logger := middleware.GetLogger(ctx)
	var book model.Book

	result := db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, bookID).First(&book)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding book by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"book_id", bookID,
		)
		return nil, fmt.Errorf("gormBookRepository.FindByID: %w", result.Error)
	}
	return &book, nil
}

func (r *gormBookRepository) List(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter model.BookFilter) ([]*model.Book, int64, error) {
	logger := middleware.GetLogger(ctx)
	var books []*model.Book
	var total int64

	scope := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("tenant_id = ?", tenantID)
		if filter.Status != "" {
			tx = tx.Where("status = ?", filter.Status)
		}
		return tx
	}

	if err := db.WithContext(ctx).Model(&model.Book{}).Scopes(scope).Count(&total).Error; err != nil {
		logger.Error("Error counting books in DB", "error", err, "tenant_id", tenantID.String())
		return nil, 0, fmt.Errorf("gormBookRepository.List: %w", err)
	}
	err := db.WithContext(ctx).Scopes(scope).
		Order("created_at DESC, id DESC").
		Offset(filter.Page.Offset()).Limit(filter.Page.Limit()).
		Find(&books).Error
	if err != nil {
		logger.Error("Error listing books in DB", "error", err, "tenant_id", tenantID.String())
		return nil, 0, fmt.Errorf("gormBookRepository.List: %w", err)
	}
	return books, total, nil
}

func (r *gormBookRepository) ListAll(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, status string) ([]*model.Book, error) {
	var books []*model.Book
	query := db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("id ASC").Find(&books).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing all books in DB", "error", err, "tenant_id", tenantID.String())
		return nil, fmt.Errorf("gormBookRepository.ListAll: %w", err)
	}
	return books, nil
}

func (r *gormBookRepository) Update(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.Book{}).
		Where("tenant_id = ? AND id = ?", tenantID, bookID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating book in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"book_id", bookID,
		)
		return fmt.Errorf("gormBookRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormBookRepository) Delete(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, bookID).Delete(&model.Book{})
	if result.Error != nil {
		logger.Error("Error deleting book in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"book_id", bookID,
		)
		return fmt.Errorf("gormBookRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormBookRepository) DeleteByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) error {
	if err := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.Book{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting books by tenant in DB", "error", err, "tenant_id", tenantID.String())
		return fmt.Errorf("gormBookRepository.DeleteByTenant: %w", err)
	}
	return nil
}

func (r *gormBookRepository) Count(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, status string) (int64, error) {
	var count int64
	query := db.WithContext(ctx).Model(&model.Book{}).Where("tenant_id = ?", tenantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error counting books in DB", "error", err, "tenant_id", tenantID.String())
		return 0, fmt.Errorf("gormBookRepository.Count: %w", err)
	}
	return count, nil
}

func (r *gormBookRepository) AdjustWordCount(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint, delta int) error {
	query := db.WithContext(ctx).Model(&model.Book{}).Where("tenant_id = ? AND id = ?", tenantID, bookID)
	if delta < 0 {
		query = query.Where("word_count >= ?", -delta)
	}
	if err := query.UpdateColumn("word_count", gorm.Expr("word_count + ?", delta)).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error adjusting book word count in DB",
			"error", err,
			"tenant_id", tenantID.String(),
			"book_id", bookID,
			"delta", delta,
		)
		return fmt.Errorf("gormBookRepository.AdjustWordCount: %w", err)
	}
	return nil
}

// wordCountSubQuery は books 行ごとの実単語数を返すサブクエリ
func wordCountSubQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.Word{}).Select("COUNT(*)").Where("words.book_id = books.id")
}

func (r *gormBookRepository) SyncWordCount(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, bookID uint) (int, error) {
	logger := middleware.GetLogger(ctx)
	tx := db.WithContext(ctx)

	result := tx.Model(&model.Book{}).
		Where("tenant_id = ? AND id = ?", tenantID, bookID).
		UpdateColumn("word_count", wordCountSubQuery(tx.Session(&gorm.Session{NewDB: true})))
	if result.Error != nil {
		logger.Error("Error syncing book word count in DB", "error", result.Error, "book_id", bookID)
		return 0, fmt.Errorf("gormBookRepository.SyncWordCount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, model.ErrNotFound
	}

	var book model.Book
	if err := tx.Select("word_count").Where("tenant_id = ? AND id = ?", tenantID, bookID).First(&book).Error; err != nil {
		return 0, fmt.Errorf("gormBookRepository.SyncWordCount: %w", err)
	}
	return book.WordCount, nil
}

func (r *gormBookRepository) SyncAllWordCounts(ctx context.Context, db *gorm.DB) (int64, error) {
	tx := db.WithContext(ctx)
	result := tx.Model(&model.Book{}).
		Where("1 = 1").
		UpdateColumn("word_count", wordCountSubQuery(tx.Session(&gorm.Session{NewDB: true})))
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error syncing all book word counts in DB", "error", result.Error)
		return 0, fmt.Errorf("gormBookRepository.SyncAllWordCounts: %w", result.Error)
	}
	return result.RowsAffected, nil
}
