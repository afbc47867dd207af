package repository

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_5_vocab_drill/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB はGORMの接続を作成します
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond), // 遅いクエリの閾値
	)
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: finalGormLogger,
		// 一意制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	// コネクションプールの設定
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")
	return db, nil
}

// Models はマイグレーション対象のモデル一覧
func Models() []interface{} {
	return []interface{}{
		&model.Tenant{},
		&model.User{},
		&model.Book{},
		&model.Word{},
		&model.StudyPlan{},
		&model.LearningTask{},
		&model.WrongWord{},
	}
}

// AutoMigrate はスキーマを作成・更新します
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// isUniqueViolation は一意制約違反かどうかを判定します
// TranslateError 有効時は gorm.ErrDuplicatedKey、無効時は Postgres の 23505 を見ます
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Repositories はサービス層に渡すリポジトリ一式
type Repositories struct {
	Tenant    TenantRepository
	User      UserRepository
	Book      BookRepository
	Word      WordRepository
	Plan      PlanRepository
	Task      TaskRepository
	WrongWord WrongWordRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		Tenant:    NewGormTenantRepository(),
		User:      NewGormUserRepository(),
		Book:      NewGormBookRepository(),
		Word:      NewGormWordRepository(),
		Plan:      NewGormPlanRepository(),
		Task:      NewGormTaskRepository(),
		WrongWord: NewGormWrongWordRepository(),
	}
}
