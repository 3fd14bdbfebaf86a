// Package postgrestest opens an in-memory sqlite database through GORM
// so repository transactions, conditional updates and the unique vote
// index behave like they do against the real store.
package postgrestest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// A single connection keeps every session on the same in-memory
	// database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.OrderModel{},
		&models.PaymentModel{},
		&models.DisputeModel{},
		&models.DisputeVoteModel{},
		&models.JuryAssignmentModel{},
		&models.NotificationModel{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}
