// seed はスキーマを作成し、システム管理者アカウントを登録します
//
//	go run ./cmd/seed -account sysadmin -password secret
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	account := flag.String("account", "sysadmin", "システム管理者のアカウント")
	password := flag.String("password", "", "システム管理者のパスワード (6文字以上)")
	name := flag.String("name", "System Admin", "表示名")
	configPath := flag.String("config", "../configs", "config.yaml のディレクトリ")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.RFC3339}))
	slog.SetDefault(logger)

	if len(*password) < 6 {
		logger.Error("password must be at least 6 characters")
		os.Exit(2)
	}
	if err := config.LoadConfig(*configPath); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Failed to connect database", slog.Any("error", err))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := repository.AutoMigrate(db); err != nil {
		logger.Error("Failed to migrate", slog.Any("error", err))
		os.Exit(1)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := repository.NewGormUserRepository()
	sysTenant := uuid.Nil
	existing, err := userRepo.FindByAccount(ctx, db, &sysTenant, *account)
	if err != nil {
		logger.Error("Failed to look up account", slog.Any("error", err))
		os.Exit(1)
	}

	if len(existing) > 0 {
		err = userRepo.Update(ctx, db, sysTenant, existing[0].ID, map[string]interface{}{
			"password_hash": string(hashed),
			"name":          *name,
		})
		if err != nil {
			logger.Error("Failed to update sys admin", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Sys admin password updated", slog.String("account", *account))
		return
	}

	user := &model.User{
		TenantID:     sysTenant,
		Name:         *name,
		Account:      *account,
		PasswordHash: string(hashed),
		Role:         model.RoleSysAdmin,
	}
	if err := userRepo.Create(ctx, db, user); err != nil {
		logger.Error("Failed to create sys admin", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Sys admin created", slog.String("account", *account), slog.Uint64("id", uint64(user.ID)))
}
