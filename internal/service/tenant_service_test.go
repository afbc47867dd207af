// internal/service/tenant_service_test.go
package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"
	repomocks "go_5_vocab_drill/internal/repository/mocks"
	"go_5_vocab_drill/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Name: "VocabDrill", FrontendURL: "https://drill.example.com"}}
}

func Test_tenantService_CreateTenant(t *testing.T) {
	ctx := context.Background()
	// DB操作はモックするが、トランザクションを張るために接続だけ用意する
	db := setupTestDB(t)

	baseReq := model.CreateTenantRequest{
		Name:          "さくら塾",
		AdminAccount:  "sakura_admin",
		AdminPassword: "secret123",
		ContactEmail:  "owner@example.com",
	}

	tests := []struct {
		name      string
		req       func() *model.CreateTenantRequest
		setupMock func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, mailer *mocks.Mailer)
		wantErr   error
		wantCode  string
	}{
		{
			name: "正常系: テナントと管理者を作成し案内メールを送る",
			req:  func() *model.CreateTenantRequest { r := baseReq; return &r },
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, mailer *mocks.Mailer) {
				tenantRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).
					Run(func(args mock.Arguments) {
						tenant := args.Get(2).(*model.Tenant)
						assert.NotEqual(t, uuid.Nil, tenant.TenantID)
						assert.Equal(t, model.TenantStatusActive, tenant.Status)
					}).
					Return(nil).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(u *model.User) bool {
					return u.Role == model.RoleAdmin && u.Name == config.DefaultAdminName && u.PasswordHash != "secret123"
				})).Return(nil).Once()
				mailer.On("Send", ctx, "owner@example.com",
					mock.MatchedBy(func(subject string) bool { return strings.Contains(subject, "さくら塾") }),
					mock.MatchedBy(func(body string) bool { return strings.Contains(body, "sakura_admin") }),
				).Return(nil).Once()
			},
		},
		{
			name: "正常系: メール送信に失敗してもテナントは作成済み",
			req:  func() *model.CreateTenantRequest { r := baseReq; return &r },
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, mailer *mocks.Mailer) {
				tenantRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).Return(nil).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).Return(nil).Once()
				mailer.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
		},
		{
			name: "正常系: 連絡先なしならメールは送らない",
			req: func() *model.CreateTenantRequest {
				r := baseReq
				r.ContactEmail = ""
				r.AdminName = "田中"
				return &r
			},
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, mailer *mocks.Mailer) {
				tenantRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).Return(nil).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(u *model.User) bool {
					return u.Name == "田中"
				})).Return(nil).Once()
			},
		},
		{
			name: "異常系: 管理者アカウントが重複",
			req:  func() *model.CreateTenantRequest { r := baseReq; return &r },
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, mailer *mocks.Mailer) {
				tenantRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).Return(nil).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).Return(model.ErrConflict).Once()
			},
			wantErr:  model.ErrConflict,
			wantCode: "DUPLICATE_ACCOUNT",
		},
		{
			name: "異常系: テナントIDが重複",
			req:  func() *model.CreateTenantRequest { r := baseReq; return &r },
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, mailer *mocks.Mailer) {
				tenantRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).Return(model.ErrConflict).Once()
			},
			wantErr:  model.ErrConflict,
			wantCode: "DUPLICATE_ENTRY",
		},
		{
			name: "異常系: DBエラー",
			req:  func() *model.CreateTenantRequest { r := baseReq; return &r },
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, mailer *mocks.Mailer) {
				tenantRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).Return(errors.New("connection lost")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenantRepo := repomocks.NewTenantRepository(t)
			userRepo := repomocks.NewUserRepository(t)
			mailer := mocks.NewMailer(t)
			tt.setupMock(tenantRepo, userRepo, mailer)

			repos := &repository.Repositories{Tenant: tenantRepo, User: userRepo}
			s := NewTenantService(db, repos, mailer, cache.NoopCache{}, testConfig())

			resp, err := s.CreateTenant(ctx, tt.req())
			if tt.wantCode != "" {
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, resp.Tenant.TenantID, resp.Admin.TenantID)
			assert.Equal(t, "sakura_admin", resp.Admin.Account)
			assert.Equal(t, model.RoleAdmin, resp.Admin.Role)
		})
	}
}

func Test_tenantService_UpdateTenant(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	tenantID := uuid.New()

	tests := []struct {
		name      string
		req       *model.UpdateTenantRequest
		setupMock func(tenantRepo *repomocks.TenantRepository)
		wantCode  string
	}{
		{
			name: "正常系: 無効化",
			req:  &model.UpdateTenantRequest{Status: ptr(model.TenantStatusDisabled)},
			setupMock: func(tenantRepo *repomocks.TenantRepository) {
				tenantRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, map[string]interface{}{"status": model.TenantStatusDisabled}).
					Return(nil).Once()
				tenantRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(&model.Tenant{TenantID: tenantID, Status: model.TenantStatusDisabled}, nil).Once()
			},
		},
		{
			name:      "異常系: 更新項目なし",
			req:       &model.UpdateTenantRequest{},
			setupMock: func(tenantRepo *repomocks.TenantRepository) {},
			wantCode:  "NO_UPDATE_FIELDS",
		},
		{
			name: "異常系: 存在しないテナント",
			req:  &model.UpdateTenantRequest{Name: ptr("x")},
			setupMock: func(tenantRepo *repomocks.TenantRepository) {
				tenantRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.Anything).Return(model.ErrNotFound).Once()
			},
			wantCode: "TENANT_NOT_FOUND",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenantRepo := repomocks.NewTenantRepository(t)
			tt.setupMock(tenantRepo)
			s := NewTenantService(db, &repository.Repositories{Tenant: tenantRepo}, &LogMailer{}, cache.NoopCache{}, testConfig())

			got, err := s.UpdateTenant(ctx, tenantID, tt.req)
			if tt.wantCode != "" {
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.TenantStatusDisabled, got.Status)
		})
	}
}

func Test_tenantService_DeleteTenant(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	c := newMemCache()
	s := NewTenantService(db, repository.NewRepositories(), &LogMailer{}, c, testConfig())

	target := createTenant(t, db)
	other := createTenant(t, db)
	for _, tenantID := range []uuid.UUID{target, other} {
		student := createUser(t, db, tenantID, model.RoleStudent)
		book := createBook(t, db, tenantID, model.BookStatusOnline)
		words := createWords(t, db, tenantID, book.ID, 2)
		createCompletedTask(t, db, tenantID, student.ID, book.ID, wordIDs(words), 2, 0, testNow)
		createWrongWord(t, db, tenantID, student.ID, words[0], "x", testNow)
	}

	require.NoError(t, s.DeleteTenant(ctx, target))
	assert.Equal(t, 1, c.deleteCount())

	for _, m := range []interface{}{&model.User{}, &model.Book{}, &model.Word{}, &model.LearningTask{}, &model.WrongWord{}} {
		var remaining, others int64
		require.NoError(t, db.Model(m).Where("tenant_id = ?", target).Count(&remaining).Error)
		require.NoError(t, db.Model(m).Where("tenant_id = ?", other).Count(&others).Error)
		assert.Zero(t, remaining, "%T", m)
		assert.NotZero(t, others, "%T", m)
	}

	err := s.DeleteTenant(ctx, target)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TENANT_NOT_FOUND", appErr.Detail.Code)
}
