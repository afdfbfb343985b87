package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yahya159/bidinsouk-sub002/internal/config"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.AuctionConfig) *gorm.DB {
	dsn := cfg.AuctionDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.AuctionModel{}, &models.BidModel{}, &models.VendorActionModel{})

	return db
}
