//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	StudentLogin(ctx context.Context, req *model.StudentLoginRequest) (*model.LoginResponse, error)
	SysLogin(ctx context.Context, req *model.SysLoginRequest) (*model.LoginResponse, error)
	// Authenticate はテナントが存在し有効であることを確認します (TenantAuthMiddleware 用)
	Authenticate(ctx context.Context, tenantID uuid.UUID) error
}

type authService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
	cfg        *config.Config
	now        func() time.Time
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, tenantRepo repository.TenantRepository, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:         db,
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

func errAuthenticationFailed() *model.AppError {
	return model.NewAppError("AUTHENTICATION_FAILED", "アカウントまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
}

// Login はテナント管理者・生徒を認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("account", req.Account)

	user, err := s.authenticate(ctx, req.TenantID, req.Account, req.Password)
	if err != nil {
		return nil, err
	}
	if req.Role != "" && user.Role != req.Role {
		logger.Warn("Login failed: role mismatch", "role", user.Role, "requested_role", req.Role)
		return nil, model.NewAppError("ROLE_MISMATCH", "このアカウントではログインできません。", "role", model.ErrForbidden)
	}
	return s.issue(ctx, user)
}

// StudentLogin は生徒専用のログインです
func (s *authService) StudentLogin(ctx context.Context, req *model.StudentLoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("account", req.Account)

	tenantID := req.TenantID
	user, err := s.authenticate(ctx, &tenantID, req.Account, req.Password)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleStudent {
		logger.Warn("Student login failed: not a student", "role", user.Role)
		return nil, model.NewAppError("ROLE_MISMATCH", "生徒アカウントではありません。", "", model.ErrForbidden)
	}
	return s.issue(ctx, user)
}

// SysLogin はシステム管理者のログインです
func (s *authService) SysLogin(ctx context.Context, req *model.SysLoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("account", req.Account)

	sysTenant := uuid.Nil
	users, err := s.userRepo.FindByAccount(ctx, s.db, &sysTenant, req.Account)
	if err != nil {
		return nil, errInternal(err)
	}
	user := matchPassword(users, req.Password)
	if user == nil {
		logger.Warn("Sys login failed: bad credentials")
		return nil, errAuthenticationFailed()
	}
	if user.Role != model.RoleSysAdmin {
		logger.Warn("Sys login failed: not a sys admin", "role", user.Role)
		return nil, model.NewAppError("ROLE_MISMATCH", "システム管理者ではありません。", "", model.ErrForbidden)
	}
	return s.issue(ctx, user)
}

func (s *authService) Authenticate(ctx context.Context, tenantID uuid.UUID) error {
	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("TENANT_NOT_FOUND", "テナントが見つかりません。", "", model.ErrTenantNotFound)
		}
		return errInternal(err)
	}
	if !tenant.IsActive() {
		return model.NewAppError("TENANT_DISABLED", "このテナントは利用停止中です。", "", model.ErrForbidden)
	}
	return nil
}

// authenticate はアカウント名とパスワードでテナント内のユーザーを特定します。
// tenantID が nil の場合、同名アカウントが複数テナントにあればパスワードが一致したものを採用します
func (s *authService) authenticate(ctx context.Context, tenantID *uuid.UUID, account, password string) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("account", account)

	users, err := s.userRepo.FindByAccount(ctx, s.db, tenantID, account)
	if err != nil {
		logger.Error("Login failed: db error on FindByAccount", "error", err)
		return nil, errInternal(err)
	}

	candidates := make([]*model.User, 0, len(users))
	for _, u := range users {
		if u.Role != model.RoleSysAdmin {
			candidates = append(candidates, u)
		}
	}
	user := matchPassword(candidates, password)
	if user == nil {
		logger.Warn("Login failed: bad credentials", "candidates", len(candidates))
		return nil, errAuthenticationFailed()
	}

	if err := s.Authenticate(ctx, user.TenantID); err != nil {
		logger.Warn("Login failed: tenant unavailable", "tenant_id", user.TenantID.String(), "error", err)
		return nil, err
	}
	return user, nil
}

func matchPassword(users []*model.User, password string) *model.User {
	for _, u := range users {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			return u
		}
	}
	return nil
}

func (s *authService) issue(ctx context.Context, user *model.User) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)
	now := s.now()

	claims := &model.JWTCustomClaims{
		TenantID: user.TenantID.String(),
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.App.Name,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "user_id", user.ID, "tenant_id", user.TenantID.String(), "role", user.Role)
	return &model.LoginResponse{AccessToken: signedToken, User: model.NewUserResponse(user)}, nil
}
