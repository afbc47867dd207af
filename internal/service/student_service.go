//go:generate mockery --name StudentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentService interface {
	ListStudents(ctx context.Context, tenantID uuid.UUID, page model.Page) (*model.ListResponse[*model.UserResponse], error)
	CreateStudent(ctx context.Context, tenantID uuid.UUID, req *model.CreateStudentRequest) (*model.UserResponse, error)
	UpdateStudent(ctx context.Context, tenantID uuid.UUID, userID uint, req *model.UpdateStudentRequest) (*model.UserResponse, error)
	// DeleteStudent は生徒とそのタスク・学習計画・誤答を1トランザクションで削除します
	DeleteStudent(ctx context.Context, tenantID uuid.UUID, userID uint) error
}

type studentService struct {
	db    *gorm.DB
	repos *repository.Repositories
	cache cache.Cache
}

func NewStudentService(db *gorm.DB, repos *repository.Repositories, c cache.Cache) StudentService {
	return &studentService{db: db, repos: repos, cache: c}
}

const (
	codeStudentNotFound = "STUDENT_NOT_FOUND"
	msgStudentNotFound  = "生徒が見つかりません。"
)

func errDuplicateAccount() *model.AppError {
	return model.NewAppError("DUPLICATE_ACCOUNT", "このアカウントは既に使用されています。", "account", model.ErrConflict)
}

func (s *studentService) ListStudents(ctx context.Context, tenantID uuid.UUID, page model.Page) (*model.ListResponse[*model.UserResponse], error) {
	users, total, err := s.repos.User.ListByRole(ctx, s.db, tenantID, model.RoleStudent, page)
	if err != nil {
		return nil, errInternal(err)
	}
	data := make([]*model.UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, model.NewUserResponse(u))
	}
	return &model.ListResponse[*model.UserResponse]{Data: data, Total: total}, nil
}

func (s *studentService) CreateStudent(ctx context.Context, tenantID uuid.UUID, req *model.CreateStudentRequest) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)

	hashed, err := hashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
	}
	user := &model.User{
		TenantID:     tenantID,
		Name:         req.Name,
		Account:      req.Account,
		PasswordHash: hashed,
		Role:         model.RoleStudent,
		ClassName:    req.ClassName,
	}
	if err := s.repos.User.Create(ctx, s.db, user); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, errDuplicateAccount()
		}
		return nil, errInternal(err)
	}

	invalidateDashboard(ctx, s.cache, tenantID)
	logger.Info("Student created", "user_id", user.ID, "tenant_id", tenantID.String())
	return model.NewUserResponse(user), nil
}

// findStudent は生徒ロールのユーザーだけを返します。管理者IDを指定された場合も見つからない扱い
func (s *studentService) findStudent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, userID uint) (*model.User, error) {
	user, err := s.repos.User.FindByID(ctx, db, tenantID, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleStudent {
		return nil, model.ErrNotFound
	}
	return user, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, tenantID uuid.UUID, userID uint, req *model.UpdateStudentRequest) (*model.UserResponse, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Account != nil {
		updates["account"] = *req.Account
	}
	if req.ClassName != nil {
		updates["class_name"] = *req.ClassName
	}
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, errInternal(err)
		}
		updates["password_hash"] = hashed
	}
	if len(updates) == 0 {
		return nil, model.NewAppError("NO_UPDATE_FIELDS", "更新する項目がありません。", "", model.ErrInvalidInput)
	}

	var updated *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findStudent(ctx, tx, tenantID, userID); err != nil {
			return err
		}
		if err := s.repos.User.Update(ctx, tx, tenantID, userID, updates); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return errDuplicateAccount()
			}
			return err
		}
		user, err := s.repos.User.FindByID(ctx, tx, tenantID, userID)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, wrapRepoError(err, codeStudentNotFound, msgStudentNotFound)
	}
	return model.NewUserResponse(updated), nil
}

func (s *studentService) DeleteStudent(ctx context.Context, tenantID uuid.UUID, userID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findStudent(ctx, tx, tenantID, userID); err != nil {
			return err
		}
		steps := []func(context.Context, *gorm.DB, uuid.UUID, uint) error{
			s.repos.WrongWord.DeleteByUser,
			s.repos.Task.DeleteByUser,
			s.repos.Plan.DeleteByUser,
			s.repos.User.Delete,
		}
		for _, step := range steps {
			if err := step(ctx, tx, tenantID, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrapRepoError(err, codeStudentNotFound, msgStudentNotFound)
	}
	invalidateDashboard(ctx, s.cache, tenantID)
	middleware.GetLogger(ctx).Info("Student deleted", "user_id", userID, "tenant_id", tenantID.String())
	return nil
}
