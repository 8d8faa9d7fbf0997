package testutil

import (
	"testing"

	"konfeksiyon-backend/internal/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB testler için hafızada sqlite açar, şemayı kurar ve global DB'yi
// ona bağlar. Her test kendi boş veritabanıyla başlar.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrasyon başarısız: %v", err)
	}

	database.DB = db
	return db
}
