//go:generate mockery --name BookService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookService interface {
	ListBooks(ctx context.Context, tenantID uuid.UUID, filter model.BookFilter) (*model.ListResponse[*model.Book], error)
	GetBook(ctx context.Context, tenantID uuid.UUID, bookID uint) (*model.Book, error)
	CreateBook(ctx context.Context, tenantID uuid.UUID, req *model.CreateBookRequest) (*model.Book, error)
	UpdateBook(ctx context.Context, tenantID uuid.UUID, bookID uint, req *model.UpdateBookRequest) (*model.Book, error)
	// DeleteBook は単語帳と、その単語・タスク・学習計画・誤答を1トランザクションで削除します
	DeleteBook(ctx context.Context, tenantID uuid.UUID, bookID uint) error
	// RefreshWordCount は word_count を実際の単語数に合わせます
	RefreshWordCount(ctx context.Context, tenantID uuid.UUID, bookID uint) (*model.Book, error)
	// RefreshAllWordCounts は全テナントの全単語帳を再集計します (定期ジョブ用)
	RefreshAllWordCounts(ctx context.Context) (int64, error)
}

type bookService struct {
	db    *gorm.DB
	repos *repository.Repositories
	cache cache.Cache
}

func NewBookService(db *gorm.DB, repos *repository.Repositories, c cache.Cache) BookService {
	return &bookService{db: db, repos: repos, cache: c}
}

const (
	codeBookNotFound = "BOOK_NOT_FOUND"
	msgBookNotFound  = "単語帳が見つかりません。"
)

func (s *bookService) ListBooks(ctx context.Context, tenantID uuid.UUID, filter model.BookFilter) (*model.ListResponse[*model.Book], error) {
	books, total, err := s.repos.Book.List(ctx, s.db, tenantID, filter)
	if err != nil {
		return nil, errInternal(err)
	}
	return &model.ListResponse[*model.Book]{Data: books, Total: total}, nil
}

func (s *bookService) GetBook(ctx context.Context, tenantID uuid.UUID, bookID uint) (*model.Book, error) {
	book, err := s.repos.Book.FindByID(ctx, s.db, tenantID, bookID)
	if err != nil {
		return nil, wrapRepoError(err, codeBookNotFound, msgBookNotFound)
	}
	return book, nil
}

func (s *bookService) CreateBook(ctx context.Context, tenantID uuid.UUID, req *model.CreateBookRequest) (*model.Book, error) {
	book := &model.Book{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		DailyTarget: req.DailyTarget,
	}
	if book.Status == "" {
		book.Status = model.BookStatusOffline
	}
	if book.DailyTarget == 0 {
		book.DailyTarget = model.DefaultDailyTarget
	}

	if err := s.repos.Book.Create(ctx, s.db, book); err != nil {
		return nil, errInternal(err)
	}
	invalidateDashboard(ctx, s.cache, tenantID)
	middleware.GetLogger(ctx).Info("Book created", "book_id", book.ID, "tenant_id", tenantID.String())
	return book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, tenantID uuid.UUID, bookID uint, req *model.UpdateBookRequest) (*model.Book, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DailyTarget != nil {
		updates["daily_target"] = *req.DailyTarget
	}
	if len(updates) == 0 {
		return nil, model.NewAppError("NO_UPDATE_FIELDS", "更新する項目がありません。", "", model.ErrInvalidInput)
	}

	if err := s.repos.Book.Update(ctx, s.db, tenantID, bookID, updates); err != nil {
		return nil, wrapRepoError(err, codeBookNotFound, msgBookNotFound)
	}
	if req.Status != nil {
		invalidateDashboard(ctx, s.cache, tenantID)
	}
	return s.GetBook(ctx, tenantID, bookID)
}

func (s *bookService) DeleteBook(ctx context.Context, tenantID uuid.UUID, bookID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repos.Book.FindByID(ctx, tx, tenantID, bookID); err != nil {
			return err
		}
		steps := []func(context.Context, *gorm.DB, uuid.UUID, uint) error{
			s.repos.WrongWord.DeleteByBook,
			s.repos.Task.DeleteByBook,
			s.repos.Plan.DeleteByBook,
			s.repos.Word.DeleteByBook,
			s.repos.Book.Delete,
		}
		for _, step := range steps {
			if err := step(ctx, tx, tenantID, bookID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrapRepoError(err, codeBookNotFound, msgBookNotFound)
	}
	invalidateDashboard(ctx, s.cache, tenantID)
	middleware.GetLogger(ctx).Info("Book deleted", "book_id", bookID, "tenant_id", tenantID.String())
	return nil
}

func (s *bookService) RefreshWordCount(ctx context.Context, tenantID uuid.UUID, bookID uint) (*model.Book, error) {
	if _, err := s.repos.Book.SyncWordCount(ctx, s.db, tenantID, bookID); err != nil {
		return nil, wrapRepoError(err, codeBookNotFound, msgBookNotFound)
	}
	invalidateDashboard(ctx, s.cache, tenantID)
	return s.GetBook(ctx, tenantID, bookID)
}

func (s *bookService) RefreshAllWordCounts(ctx context.Context) (int64, error) {
	n, err := s.repos.Book.SyncAllWordCounts(ctx, s.db)
	if err != nil {
		return 0, err
	}
	return n, nil
}
