package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"go_5_vocab_drill/internal/cache"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリ SQLite を作り、マイグレーションします
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 共有キャッシュでもロック競合しないよう1接続に絞る
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

// memCache は Delete された件数を数えるインメモリの cache.Cache
type memCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	deletes int
}

var _ cache.Cache = (*memCache)(nil)

func newMemCache() *memCache {
	return &memCache{values: make(map[string][]byte)}
}

func (c *memCache) GetJSON(_ context.Context, key string, dst interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(v, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
	}
	c.deletes++
	return nil
}

func (c *memCache) deleteCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deletes
}

// --- fixtures ---

// testNow は時刻に依存しないテストで使う固定時刻
var testNow = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func createTenant(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	tenant := &model.Tenant{TenantID: uuid.New(), Name: "Tenant_" + uuid.NewString()[:8], Status: model.TenantStatusActive}
	require.NoError(t, db.Create(tenant).Error)
	return tenant.TenantID
}

func createUser(t *testing.T, db *gorm.DB, tenantID uuid.UUID, role string) *model.User {
	t.Helper()
	u := &model.User{
		TenantID:     tenantID,
		Name:         "user",
		Account:      "acc_" + strings.ReplaceAll(uuid.NewString()[:8], "-", ""),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createBook(t *testing.T, db *gorm.DB, tenantID uuid.UUID, status string) *model.Book {
	t.Helper()
	b := &model.Book{TenantID: tenantID, Name: "Book_" + uuid.NewString()[:8], Status: status, DailyTarget: model.DefaultDailyTarget}
	require.NoError(t, db.Create(b).Error)
	return b
}

// createWords は spelling が w001, w002 ... の単語を n 件作ります
func createWords(t *testing.T, db *gorm.DB, tenantID uuid.UUID, bookID uint, n int) []*model.Word {
	t.Helper()
	words := make([]*model.Word, 0, n)
	for i := 1; i <= n; i++ {
		w := &model.Word{TenantID: tenantID, BookID: bookID, Spelling: fmt.Sprintf("w%03d", i), Meaning: fmt.Sprintf("意味%d", i), Difficulty: 1}
		require.NoError(t, db.Create(w).Error)
		words = append(words, w)
	}
	require.NoError(t, db.Model(&model.Book{}).Where("id = ?", bookID).Update("word_count", n).Error)
	return words
}

func wordIDs(words []*model.Word) []uint {
	ids := make([]uint, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}
	return ids
}

func ptr[T any](v T) *T {
	return &v
}
