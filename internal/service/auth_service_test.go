package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository/mocks"
	"go_5_vocab_drill/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite

	mockTenantRepo *mocks.TenantRepository
	mockUserRepo   *mocks.UserRepository
	cfg            *config.Config
	authService    service.AuthService

	tenantID uuid.UUID
	hash     string
}

func (s *AuthServiceTestSuite) SetupSuite() {
	// bcrypt は遅いのでスイートで1回だけ
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	s.Require().NoError(err)
	s.hash = string(hashed)
}

// 各テストの前にモックを作り直す
func (s *AuthServiceTestSuite) SetupTest() {
	s.mockTenantRepo = new(mocks.TenantRepository)
	s.mockUserRepo = new(mocks.UserRepository)
	s.tenantID = uuid.New()

	s.cfg = &config.Config{
		App: config.AppConfig{Name: "vocab-drill-test"},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
	}
	s.authService = service.NewAuthService(nil, s.mockTenantRepo, s.mockUserRepo, s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) user(id uint, role string) *model.User {
	return &model.User{ID: id, TenantID: s.tenantID, Name: "Taro", Account: "taro", PasswordHash: s.hash, Role: role}
}

func (s *AuthServiceTestSuite) activeTenant() {
	s.mockTenantRepo.On("FindByID", mock.Anything, mock.Anything, s.tenantID).
		Return(&model.Tenant{TenantID: s.tenantID, Name: "A校", Status: model.TenantStatusActive}, nil).Once()
}

func (s *AuthServiceTestSuite) TestLogin() {
	testCases := []struct {
		name       string
		req        *model.LoginRequest
		setupMocks func()
		wantCode   string
		wantErr    error
	}{
		{
			name: "正常系: 管理者がログインできる",
			req:  &model.LoginRequest{Account: "taro", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, (*uuid.UUID)(nil), "taro").
					Return([]*model.User{s.user(1, model.RoleAdmin)}, nil).Once()
				s.activeTenant()
			},
		},
		{
			name: "異常系: パスワード不一致は401",
			req:  &model.LoginRequest{Account: "taro", Password: "wrong-password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, (*uuid.UUID)(nil), "taro").
					Return([]*model.User{s.user(1, model.RoleAdmin)}, nil).Once()
			},
			wantCode: "AUTHENTICATION_FAILED",
			wantErr:  model.ErrUnauthorized,
		},
		{
			name: "異常系: アカウントが存在しない",
			req:  &model.LoginRequest{Account: "nobody", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, (*uuid.UUID)(nil), "nobody").
					Return([]*model.User{}, nil).Once()
			},
			wantCode: "AUTHENTICATION_FAILED",
			wantErr:  model.ErrUnauthorized,
		},
		{
			name: "異常系: ロール指定と一致しない",
			req:  &model.LoginRequest{Account: "taro", Password: "password123", Role: model.RoleAdmin},
			setupMocks: func() {
				s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, (*uuid.UUID)(nil), "taro").
					Return([]*model.User{s.user(2, model.RoleStudent)}, nil).Once()
				s.activeTenant()
			},
			wantCode: "ROLE_MISMATCH",
			wantErr:  model.ErrForbidden,
		},
		{
			name: "異常系: 停止中テナントは403",
			req:  &model.LoginRequest{Account: "taro", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, (*uuid.UUID)(nil), "taro").
					Return([]*model.User{s.user(1, model.RoleAdmin)}, nil).Once()
				s.mockTenantRepo.On("FindByID", mock.Anything, mock.Anything, s.tenantID).
					Return(&model.Tenant{TenantID: s.tenantID, Status: model.TenantStatusDisabled}, nil).Once()
			},
			wantCode: "TENANT_DISABLED",
			wantErr:  model.ErrForbidden,
		},
		{
			name: "異常系: システム管理者は通常ログインの対象外",
			req:  &model.LoginRequest{Account: "taro", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, (*uuid.UUID)(nil), "taro").
					Return([]*model.User{s.user(9, model.RoleSysAdmin)}, nil).Once()
			},
			wantCode: "AUTHENTICATION_FAILED",
			wantErr:  model.ErrUnauthorized,
		},
		{
			name: "異常系: DBエラー",
			req:  &model.LoginRequest{Account: "taro", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, (*uuid.UUID)(nil), "taro").
					Return(nil, errors.New("connection refused")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMocks()

			resp, err := s.authService.Login(context.Background(), tc.req)

			if tc.wantCode == "" {
				s.Require().NoError(err)
				s.NotEmpty(resp.AccessToken)
				session, err := middleware.ParseAccessToken(resp.AccessToken, s.cfg.JWT.SecretKey)
				s.Require().NoError(err)
				s.Equal(s.tenantID, session.TenantID)
				s.Equal(model.RoleAdmin, session.Role)
				s.Equal(uint(1), session.UserID)
			} else {
				s.Nil(resp)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal(tc.wantCode, appErr.Detail.Code)
				if tc.wantErr != nil {
					s.ErrorIs(err, tc.wantErr)
				}
			}

			s.mockTenantRepo.AssertExpectations(s.T())
			s.mockUserRepo.AssertExpectations(s.T())
		})
	}
}

func (s *AuthServiceTestSuite) TestStudentLogin() {
	s.Run("正常系: 生徒がテナント指定でログインできる", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, &s.tenantID, "taro").
			Return([]*model.User{s.user(2, model.RoleStudent)}, nil).Once()
		s.activeTenant()

		resp, err := s.authService.StudentLogin(context.Background(), &model.StudentLoginRequest{
			Account: "taro", Password: "password123", TenantID: s.tenantID,
		})
		s.Require().NoError(err)
		s.Equal(model.RoleStudent, resp.User.Role)
		s.mockUserRepo.AssertExpectations(s.T())
	})

	s.Run("異常系: 管理者アカウントは生徒ログインできない", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, &s.tenantID, "taro").
			Return([]*model.User{s.user(1, model.RoleAdmin)}, nil).Once()
		s.activeTenant()

		_, err := s.authService.StudentLogin(context.Background(), &model.StudentLoginRequest{
			Account: "taro", Password: "password123", TenantID: s.tenantID,
		})
		s.ErrorIs(err, model.ErrForbidden)
	})
}

func (s *AuthServiceTestSuite) TestSysLogin() {
	sysAdmin := &model.User{ID: 99, TenantID: uuid.Nil, Account: "root", PasswordHash: s.hash, Role: model.RoleSysAdmin}

	s.Run("正常系: システム管理者", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
			return id != nil && *id == uuid.Nil
		}), "root").Return([]*model.User{sysAdmin}, nil).Once()

		resp, err := s.authService.SysLogin(context.Background(), &model.SysLoginRequest{Account: "root", Password: "password123"})
		s.Require().NoError(err)
		s.Equal(model.RoleSysAdmin, resp.User.Role)
	})

	s.Run("異常系: パスワード不一致", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByAccount", mock.Anything, mock.Anything, mock.Anything, "root").
			Return([]*model.User{sysAdmin}, nil).Once()

		_, err := s.authService.SysLogin(context.Background(), &model.SysLoginRequest{Account: "root", Password: "nope"})
		s.ErrorIs(err, model.ErrUnauthorized)
	})
}

func (s *AuthServiceTestSuite) TestAuthenticate() {
	s.Run("異常系: テナントが存在しない", func() {
		s.SetupTest()
		s.mockTenantRepo.On("FindByID", mock.Anything, mock.Anything, s.tenantID).Return(nil, model.ErrNotFound).Once()

		err := s.authService.Authenticate(context.Background(), s.tenantID)
		s.ErrorIs(err, model.ErrTenantNotFound)
	})

	s.Run("正常系: 有効なテナント", func() {
		s.SetupTest()
		s.activeTenant()
		s.NoError(s.authService.Authenticate(context.Background(), s.tenantID))
	})
}
