package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/handlers"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/repository"
	"go_5_vocab_drill/internal/scheduler"
	"go_5_vocab_drill/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	logger := newLogger(cfg.Log.Level, os.Getenv("APP_ENV"), tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...")

	// DB
	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			slog.Error("Error migrating database", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Database migrated")
	}

	// キャッシュ (Redis URL 未設定なら無効)
	var appCache cache.Cache = cache.NoopCache{}
	if cfg.Redis.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.URL, logger)
		cancel()
		if err != nil {
			slog.Warn("Redis unavailable, dashboard cache disabled", slog.Any("error", err))
		} else {
			appCache = redisCache
			defer redisCache.Close()
		}
	}

	// 依存関係の組み立て
	repos := repository.NewRepositories()
	mailer := service.NewMailer(cfg)
	loc := cfg.Location()

	authService := service.NewAuthService(db, repos.Tenant, repos.User, cfg)
	tenantService := service.NewTenantService(db, repos, mailer, appCache, cfg)
	bookService := service.NewBookService(db, repos, appCache)
	wordService := service.NewWordService(db, repos, appCache)
	studentService := service.NewStudentService(db, repos, appCache)
	taskService := service.NewTaskService(db, repos, appCache)
	planService := service.NewPlanService(db, repos)
	practiceService := service.NewPracticeService(db, repos, loc)
	statsService := service.NewStatsService(db, repos, appCache, cfg.Cache.DashboardTTL, loc)

	api := &handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Tenant:   handlers.NewTenantHandler(tenantService),
		Book:     handlers.NewBookHandler(bookService),
		Word:     handlers.NewWordHandler(wordService),
		Student:  handlers.NewStudentHandler(studentService),
		Task:     handlers.NewTaskHandler(taskService),
		Plan:     handlers.NewPlanHandler(planService),
		Practice: handlers.NewPracticeHandler(practiceService),
		Stats:    handlers.NewStatsHandler(statsService),
	}

	// ルーター
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	authMW := middleware.DevTenantContextMiddleware
	if cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		authMW = middleware.JWTAuthMiddleware(cfg)
	} else {
		slog.Warn("Authentication disabled: using development header middleware")
	}

	r.Route("/api/v1", func(r chi.Router) {
		api.Routes(r, authMW, authService)
	})

	if cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 定期ジョブ
	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs = scheduler.New(bookService, logger)
		if err := jobs.Start(cfg.Scheduler.WordCountRefreshInterval); err != nil {
			slog.Error("Error starting scheduler", slog.Any("error", err))
			os.Exit(1)
		}
	}

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 70 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	if jobs != nil {
		jobs.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定のログレベルと APP_ENV からロガーを作ります。dev なら tint、それ以外は JSON
func newLogger(level, appEnv string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	log.Println("Log Config Loaded...")
	return slog.New(handler)
}
