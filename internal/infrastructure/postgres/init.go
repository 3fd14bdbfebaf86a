package postgres

import (
	"log"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/config"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.DisputeConfig) *gorm.DB {
	dsn := cfg.DisputeDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.OrderModel{},
		&models.PaymentModel{},
		&models.DisputeModel{},
		&models.DisputeVoteModel{},
		&models.JuryAssignmentModel{},
		&models.NotificationModel{},
	)

	return db
}
