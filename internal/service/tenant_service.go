//go:generate mockery --name TenantService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantService はシステム管理者向けのテナント管理です
type TenantService interface {
	ListTenants(ctx context.Context, page model.Page) (*model.ListResponse[*model.Tenant], error)
	CreateTenant(ctx context.Context, req *model.CreateTenantRequest) (*model.CreateTenantResponse, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID uuid.UUID, req *model.UpdateTenantRequest) (*model.Tenant, error)
	DeleteTenant(ctx context.Context, tenantID uuid.UUID) error
}

type tenantService struct {
	db     *gorm.DB
	repos  *repository.Repositories
	mailer Mailer
	cache  cache.Cache
	cfg    *config.Config
}

func NewTenantService(db *gorm.DB, repos *repository.Repositories, mailer Mailer, c cache.Cache, cfg *config.Config) TenantService {
	return &tenantService{db: db, repos: repos, mailer: mailer, cache: c, cfg: cfg}
}

func (s *tenantService) ListTenants(ctx context.Context, page model.Page) (*model.ListResponse[*model.Tenant], error) {
	tenants, total, err := s.repos.Tenant.List(ctx, s.db, page)
	if err != nil {
		return nil, errInternal(err)
	}
	return &model.ListResponse[*model.Tenant]{Data: tenants, Total: total}, nil
}

// CreateTenant はテナントと管理者アカウントを1トランザクションで作成し、
// 連絡先があれば案内メールを送ります
func (s *tenantService) CreateTenant(ctx context.Context, req *model.CreateTenantRequest) (*model.CreateTenantResponse, error) {
	logger := middleware.GetLogger(ctx)

	hashed, err := hashPassword(req.AdminPassword)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
	}

	adminName := req.AdminName
	if adminName == "" {
		adminName = config.DefaultAdminName
	}
	tenant := &model.Tenant{
		TenantID:     uuid.New(),
		Name:         req.Name,
		Status:       model.TenantStatusActive,
		ContactEmail: req.ContactEmail,
	}
	admin := &model.User{
		TenantID:     tenant.TenantID,
		Name:         adminName,
		Account:      req.AdminAccount,
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repos.Tenant.Create(ctx, tx, tenant); err != nil {
			return err
		}
		if err := s.repos.User.Create(ctx, tx, admin); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_ACCOUNT", "このアカウントは既に使用されています。", "admin_account", model.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			var appErr *model.AppError
			if errors.As(err, &appErr) {
				return nil, err
			}
			return nil, model.NewAppError("DUPLICATE_ENTRY", "テナントが既に存在します。", "", model.ErrConflict)
		}
		return nil, errInternal(err)
	}

	logger.Info("Tenant created", "tenant_id", tenant.TenantID.String(), "admin_account", admin.Account)

	if tenant.ContactEmail != "" {
		subject, body := welcomeMail(s.cfg.App.Name, s.cfg.App.FrontendURL, tenant, admin.Account)
		if err := s.mailer.Send(ctx, tenant.ContactEmail, subject, body); err != nil {
			// テナント作成自体は成功として扱う
			logger.Warn("Failed to send welcome email", "error", err, "to", tenant.ContactEmail)
		}
	}

	return &model.CreateTenantResponse{Tenant: tenant, Admin: model.NewUserResponse(admin)}, nil
}

func (s *tenantService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error) {
	tenant, err := s.repos.Tenant.FindByID(ctx, s.db, tenantID)
	if err != nil {
		return nil, wrapRepoError(err, "TENANT_NOT_FOUND", "テナントが見つかりません。")
	}
	return tenant, nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, tenantID uuid.UUID, req *model.UpdateTenantRequest) (*model.Tenant, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return nil, model.NewAppError("NO_UPDATE_FIELDS", "更新する項目がありません。", "", model.ErrInvalidInput)
	}

	if err := s.repos.Tenant.Update(ctx, s.db, tenantID, updates); err != nil {
		return nil, wrapRepoError(err, "TENANT_NOT_FOUND", "テナントが見つかりません。")
	}
	return s.GetTenant(ctx, tenantID)
}

// DeleteTenant はテナントと配下の全データを1トランザクションで削除します
func (s *tenantService) DeleteTenant(ctx context.Context, tenantID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repos.Tenant.FindByID(ctx, tx, tenantID); err != nil {
			return err
		}
		steps := []func(context.Context, *gorm.DB, uuid.UUID) error{
			s.repos.WrongWord.DeleteByTenant,
			s.repos.Task.DeleteByTenant,
			s.repos.Plan.DeleteByTenant,
			s.repos.Word.DeleteByTenant,
			s.repos.Book.DeleteByTenant,
			s.repos.User.DeleteByTenant,
			s.repos.Tenant.Delete,
		}
		for _, step := range steps {
			if err := step(ctx, tx, tenantID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrapRepoError(err, "TENANT_NOT_FOUND", "テナントが見つかりません。")
	}

	invalidateDashboard(ctx, s.cache, tenantID)
	logger.Info("Tenant deleted", "tenant_id", tenantID.String())
	return nil
}
