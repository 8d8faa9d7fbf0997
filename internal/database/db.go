package database

import (
	"log"
	"sync"

	"konfeksiyon-backend/internal/config"
	"konfeksiyon-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// StockMu: doğrula-ve-yaz dizilerini tek yazar modeline göre sıraya sokar.
// Kesim/dikim/finiş ve sevkiyat işlemlerinde stok kontrolü ile mutasyon
// arasına başka bir işlem giremez.
var StockMu sync.Mutex

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Migrate: model listesi testlerde de kullanılıyor (bellek içi sqlite).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Employee{},
		&models.RawMaterial{},
		&models.CuttingRecord{},
		&models.SewingRecord{},
		&models.FinishingRecord{},
		&models.StockItem{},
		&models.Shipment{},
	)
}
