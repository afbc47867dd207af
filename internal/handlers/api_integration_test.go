//go:build integration

// api_integration_test.go
package handlers_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/handlers"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"
	"go_5_vocab_drill/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// startPostgres は使い捨ての PostgreSQL コンテナを起動し、マイグレーション済みの接続を返します
func startPostgres(t *testing.T, logger *slog.Logger) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not construct pool")
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vocab_drill",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL resource")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			logger.Warn("Could not purge resource", slog.Any("error", err))
		}
	})

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	url := fmt.Sprintf("postgres://user:secret@%s:%s/vocab_drill?sslmode=disable", host, resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var errRetry error
		db, errRetry = repository.NewDB(url, logger)
		return errRetry
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func TestAPI_PracticeFlow(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	db := startPostgres(t, logger)

	cfg := &config.Config{
		App:   config.AppConfig{Name: "VocabDrill", Timezone: "Asia/Tokyo"},
		Auth:  config.AuthConfig{Enabled: true},
		JWT:   config.JWTConfig{SecretKey: "integration-secret", AccessTokenTTL: time.Hour},
		Cache: config.CacheConfig{DashboardTTL: time.Minute},
	}
	repos := repository.NewRepositories()
	appCache := cache.NoopCache{}
	loc := cfg.Location()

	authService := service.NewAuthService(db, repos.Tenant, repos.User, cfg)
	tenantService := service.NewTenantService(db, repos, &service.LogMailer{}, appCache, cfg)
	api := &handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Tenant:   handlers.NewTenantHandler(tenantService),
		Book:     handlers.NewBookHandler(service.NewBookService(db, repos, appCache)),
		Word:     handlers.NewWordHandler(service.NewWordService(db, repos, appCache)),
		Student:  handlers.NewStudentHandler(service.NewStudentService(db, repos, appCache)),
		Task:     handlers.NewTaskHandler(service.NewTaskService(db, repos, appCache)),
		Plan:     handlers.NewPlanHandler(service.NewPlanService(db, repos)),
		Practice: handlers.NewPracticeHandler(service.NewPracticeService(db, repos, loc)),
		Stats:    handlers.NewStatsHandler(service.NewStatsService(db, repos, appCache, cfg.Cache.DashboardTTL, loc)),
	}
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Route("/api/v1", func(r chi.Router) {
		api.Routes(r, middleware.JWTAuthMiddleware(cfg), authService)
	})

	created, err := tenantService.CreateTenant(context.Background(), &model.CreateTenantRequest{
		Name: "結合テスト塾", AdminAccount: "sensei", AdminPassword: "secret123",
	})
	require.NoError(t, err)
	tenantID := created.Tenant.TenantID

	bearer := func(token string) map[string]string {
		return map[string]string{"Authorization": "Bearer " + token}
	}

	// 管理者: ログイン → 単語帳作成 → 単語取り込み → 生徒作成
	rr := sendRequest(t, r, http.MethodPost, "/api/v1/auth/login",
		model.LoginRequest{Account: "sensei", Password: "secret123", TenantID: &tenantID}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	admin := bearer(decodeBody[model.LoginResponse](t, rr).AccessToken)

	rr = sendRequest(t, r, http.MethodPost, "/api/v1/wordbooks",
		model.CreateBookRequest{Name: "中学1年", Status: model.BookStatusOnline}, admin)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	book := decodeBody[model.Book](t, rr)

	rr = sendRequest(t, r, http.MethodPost, "/api/v1/words/import", model.ImportWordsRequest{
		BookID: book.ID,
		Words: []model.ImportWordRow{
			{Spelling: "apple", Meaning: "りんご"},
			{Spelling: "orange", Meaning: "オレンジ"},
			{Spelling: "grape", Meaning: "ぶどう"},
		},
	}, admin)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, 3, decodeBody[model.ImportResult](t, rr).Imported)

	rr = sendRequest(t, r, http.MethodPost, "/api/v1/students",
		model.CreateStudentRequest{Name: "生徒A", Account: "kid01", Password: "secret1"}, admin)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	// 生徒: ログイン → 計画開始 → タスク生成 → 回答 → 完了
	rr = sendRequest(t, r, http.MethodPost, "/api/v1/auth/student/login",
		model.StudentLoginRequest{Account: "kid01", Password: "secret1", TenantID: tenantID}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	student := bearer(decodeBody[model.LoginResponse](t, rr).AccessToken)

	rr = sendRequest(t, r, http.MethodPost, "/api/v1/wordbooks", model.CreateBookRequest{Name: "x"}, student)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = sendRequest(t, r, http.MethodPut, fmt.Sprintf("/api/v1/plans/%d/start", book.ID), nil, student)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, model.PlanStatusLearning, decodeBody[model.StudyPlan](t, rr).Status)

	rr = sendRequest(t, r, http.MethodPost, "/api/v1/tasks/generate", model.GenerateTaskRequest{BookID: book.ID}, student)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	generated := decodeBody[model.GenerateTaskResponse](t, rr)
	require.NotNil(t, generated.Data)
	require.Len(t, generated.Data.Words, 3)
	task := generated.Data

	// 未完了のうちは同じタスクが返る
	rr = sendRequest(t, r, http.MethodPost, "/api/v1/tasks/generate", model.GenerateTaskRequest{BookID: book.ID}, student)
	require.Equal(t, http.StatusOK, rr.Code)
	again := decodeBody[model.GenerateTaskResponse](t, rr)
	assert.True(t, again.Exists)
	assert.Equal(t, task.ID, again.Data.ID)

	for i, w := range task.Words {
		correct := i != 0
		rr = sendRequest(t, r, http.MethodPost, "/api/v1/practice/submit", model.SubmitResultRequest{
			WordID: w.ID, BookID: book.ID, TaskID: task.ID, IsCorrect: &correct, UserInput: "wrong",
		}, student)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}

	rr = sendRequest(t, r, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d/update", task.ID), model.UpdateTaskRequest{
		CorrectCount: ptr(2), WrongCount: ptr(1), Status: ptr(model.TaskStatusCompleted),
	}, student)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// 全単語を完了したので出題はない
	rr = sendRequest(t, r, http.MethodPost, "/api/v1/tasks/generate", model.GenerateTaskRequest{BookID: book.ID}, student)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[model.GenerateTaskResponse](t, rr).AllCompleted)

	rr = sendRequest(t, r, http.MethodGet, "/api/v1/dashboard/user-stats", nil, student)
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decodeBody[model.UserStats](t, rr)
	assert.Equal(t, model.UserStats{WordsLearned: 3, TasksCompleted: 1, Accuracy: 67, StreakDays: 1, WrongWordsCount: 1}, stats)

	rr = sendRequest(t, r, http.MethodGet, "/api/v1/practice/wrong-words", nil, student)
	require.Equal(t, http.StatusOK, rr.Code)
	wrong := decodeBody[model.WrongWordListResponse](t, rr)
	require.Len(t, wrong.Data, 1)
	assert.Equal(t, task.Words[0].ID, wrong.Data[0].WordID)
	assert.Equal(t, []string{"wrong"}, wrong.Data[0].WrongSpellings)

	// 無効化したテナントのトークンは拒否される
	_, err = tenantService.UpdateTenant(context.Background(), tenantID, &model.UpdateTenantRequest{Status: ptr(model.TenantStatusDisabled)})
	require.NoError(t, err)
	rr = sendRequest(t, r, http.MethodGet, "/api/v1/wordbooks", nil, student)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
