//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/importer"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordService interface {
	// CreateWord は単語を作成し、同じトランザクションで単語帳の word_count を1増やします
	CreateWord(ctx context.Context, tenantID uuid.UUID, req *model.CreateWordRequest) (*model.Word, error)
	GetWord(ctx context.Context, tenantID uuid.UUID, wordID uint) (*model.Word, error)
	ListWordsByBook(ctx context.Context, tenantID uuid.UUID, bookID uint, page model.Page) (*model.ListResponse[*model.Word], error)
	UpdateWord(ctx context.Context, tenantID uuid.UUID, wordID uint, req *model.UpdateWordRequest) (*model.Word, error)
	// DeleteWord は単語と誤答記録を削除し、word_count を1減らします
	DeleteWord(ctx context.Context, tenantID uuid.UUID, wordID uint) error
	// ImportWords は行ごとに登録し、失敗した行があっても残りは続行します。
	// 最後に word_count を実際の単語数に合わせます
	ImportWords(ctx context.Context, tenantID uuid.UUID, req *model.ImportWordsRequest) (*model.ImportResult, error)
	// ImportWordsFile は .xlsx / .csv を読み込んで ImportWords と同様に登録します
	ImportWordsFile(ctx context.Context, tenantID uuid.UUID, bookID uint, filename string, r io.Reader) (*model.ImportResult, error)
}

type wordService struct {
	db    *gorm.DB
	repos *repository.Repositories
	cache cache.Cache
}

func NewWordService(db *gorm.DB, repos *repository.Repositories, c cache.Cache) WordService {
	return &wordService{db: db, repos: repos, cache: c}
}

const (
	codeWordNotFound = "WORD_NOT_FOUND"
	msgWordNotFound  = "単語が見つかりません。"
)

func (s *wordService) CreateWord(ctx context.Context, tenantID uuid.UUID, req *model.CreateWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	word := &model.Word{
		TenantID:    tenantID,
		BookID:      req.BookID,
		Spelling:    strings.TrimSpace(req.Spelling),
		Meaning:     strings.TrimSpace(req.Meaning),
		Sentence:    req.Sentence,
		PhonicsData: req.PhonicsData,
		RootInfo:    req.RootInfo,
		AudioURL:    req.AudioURL,
		Difficulty:  req.Difficulty,
	}
	if word.Spelling == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語は必須です。", "spelling", model.ErrInvalidInput)
	}
	if word.Difficulty == 0 {
		word.Difficulty = 1
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repos.Book.FindByID(ctx, tx, tenantID, req.BookID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError(codeBookNotFound, msgBookNotFound, "book_id", model.ErrNotFound)
			}
			return err
		}
		if err := s.repos.Word.Create(ctx, tx, word); err != nil {
			return err
		}
		return s.repos.Book.AdjustWordCount(ctx, tx, tenantID, req.BookID, 1)
	})
	if err != nil {
		return nil, wrapRepoError(err, codeWordNotFound, msgWordNotFound)
	}

	invalidateDashboard(ctx, s.cache, tenantID)
	logger.Info("Word created", "word_id", word.ID, "book_id", word.BookID)
	return word, nil
}

func (s *wordService) GetWord(ctx context.Context, tenantID uuid.UUID, wordID uint) (*model.Word, error) {
	word, err := s.repos.Word.FindByID(ctx, s.db, tenantID, wordID)
	if err != nil {
		return nil, wrapRepoError(err, codeWordNotFound, msgWordNotFound)
	}
	return word, nil
}

func (s *wordService) ListWordsByBook(ctx context.Context, tenantID uuid.UUID, bookID uint, page model.Page) (*model.ListResponse[*model.Word], error) {
	if _, err := s.repos.Book.FindByID(ctx, s.db, tenantID, bookID); err != nil {
		return nil, wrapRepoError(err, codeBookNotFound, msgBookNotFound)
	}
	words, total, err := s.repos.Word.ListByBook(ctx, s.db, tenantID, bookID, page)
	if err != nil {
		return nil, errInternal(err)
	}
	return &model.ListResponse[*model.Word]{Data: words, Total: total}, nil
}

func (s *wordService) UpdateWord(ctx context.Context, tenantID uuid.UUID, wordID uint, req *model.UpdateWordRequest) (*model.Word, error) {
	updates := make(map[string]interface{})
	if req.Spelling != nil {
		spelling := strings.TrimSpace(*req.Spelling)
		if spelling == "" {
			return nil, model.NewAppError("VALIDATION_ERROR", "単語は空にできません。", "spelling", model.ErrInvalidInput)
		}
		updates["spelling"] = spelling
	}
	if req.Meaning != nil {
		updates["meaning"] = strings.TrimSpace(*req.Meaning)
	}
	if req.Sentence != nil {
		updates["sentence"] = *req.Sentence
	}
	if req.PhonicsData != nil {
		updates["phonics_data"] = *req.PhonicsData
	}
	if req.RootInfo != nil {
		updates["root_info"] = *req.RootInfo
	}
	if req.AudioURL != nil {
		updates["audio_url"] = *req.AudioURL
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if len(updates) == 0 {
		return nil, model.NewAppError("NO_UPDATE_FIELDS", "更新する項目がありません。", "", model.ErrInvalidInput)
	}

	if err := s.repos.Word.Update(ctx, s.db, tenantID, wordID, updates); err != nil {
		return nil, wrapRepoError(err, codeWordNotFound, msgWordNotFound)
	}
	return s.GetWord(ctx, tenantID, wordID)
}

func (s *wordService) DeleteWord(ctx context.Context, tenantID uuid.UUID, wordID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.repos.Word.FindByID(ctx, tx, tenantID, wordID)
		if err != nil {
			return err
		}
		if err := s.repos.WrongWord.DeleteByWord(ctx, tx, tenantID, wordID); err != nil {
			return err
		}
		if err := s.repos.Word.Delete(ctx, tx, tenantID, wordID); err != nil {
			return err
		}
		return s.repos.Book.AdjustWordCount(ctx, tx, tenantID, word.BookID, -1)
	})
	if err != nil {
		return wrapRepoError(err, codeWordNotFound, msgWordNotFound)
	}
	invalidateDashboard(ctx, s.cache, tenantID)
	return nil
}

func (s *wordService) ImportWords(ctx context.Context, tenantID uuid.UUID, req *model.ImportWordsRequest) (*model.ImportResult, error) {
	logger := middleware.GetLogger(ctx).With("book_id", req.BookID)
	result := &model.ImportResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repos.Book.FindByID(ctx, tx, tenantID, req.BookID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError(codeBookNotFound, msgBookNotFound, "book_id", model.ErrNotFound)
			}
			return err
		}

		for i, row := range req.Words {
			spelling := strings.TrimSpace(row.Spelling)
			meaning := strings.TrimSpace(row.Meaning)
			if spelling == "" || meaning == "" {
				logger.Debug("Import row skipped: missing spelling or meaning", "row", i+1)
				result.Failed++
				continue
			}
			word := &model.Word{
				TenantID:    tenantID,
				BookID:      req.BookID,
				Spelling:    spelling,
				Meaning:     meaning,
				Sentence:    strings.TrimSpace(row.Sentence),
				PhonicsData: strings.TrimSpace(row.PhonicsData),
				RootInfo:    strings.TrimSpace(row.RootInfo),
				Difficulty:  1,
			}
			// 行ごとにセーブポイントを切り、失敗しても他の行は残す
			err := tx.Transaction(func(rowTx *gorm.DB) error {
				return s.repos.Word.Create(ctx, rowTx, word)
			})
			if err != nil {
				logger.Warn("Import row failed", "row", i+1, "error", err)
				result.Failed++
				continue
			}
			result.Imported++
		}

		_, err := s.repos.Book.SyncWordCount(ctx, tx, tenantID, req.BookID)
		return err
	})
	if err != nil {
		return nil, wrapRepoError(err, codeBookNotFound, msgBookNotFound)
	}

	middleware.RecordWordImport(result.Imported, result.Failed)
	invalidateDashboard(ctx, s.cache, tenantID)
	logger.Info("Words imported", "imported", result.Imported, "failed", result.Failed)
	return result, nil
}

func (s *wordService) ImportWordsFile(ctx context.Context, tenantID uuid.UUID, bookID uint, filename string, r io.Reader) (*model.ImportResult, error) {
	rows, err := importer.Parse(filename, r)
	if err != nil {
		middleware.GetLogger(ctx).Warn("Failed to parse import file", "filename", filename, "error", err)
		switch {
		case errors.Is(err, importer.ErrUnsupportedFormat):
			return nil, model.NewAppError("UNSUPPORTED_FILE", "対応していないファイル形式です (.xlsx / .csv)。", "file", model.ErrInvalidInput)
		case errors.Is(err, importer.ErrMissingColumns):
			return nil, model.NewAppError("MISSING_COLUMNS", "単語 (spelling) と意味 (meaning) の列が必要です。", "file", model.ErrInvalidInput)
		case errors.Is(err, importer.ErrEmptyFile):
			return nil, model.NewAppError("EMPTY_FILE", "データ行がありません。", "file", model.ErrInvalidInput)
		default:
			return nil, model.NewAppError("INVALID_FILE", "ファイルを読み込めませんでした。", "file", errors.Join(model.ErrInvalidInput, err))
		}
	}
	return s.ImportWords(ctx, tenantID, &model.ImportWordsRequest{BookID: bookID, Words: rows})
}
