package repository

import (
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.db.First(&userModel, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	return &domain.User{
		ID:              userModel.ID,
		Country:         userModel.Country,
		CompletedOrders: userModel.CompletedOrders,
		CreatedAt:       userModel.CreatedAt,
	}, nil
}

// FindEligibleJurors caps the fetch at limit rows so a large country
// never turns selection into a full-table scan.
func (r *DefaultUserRepository) FindEligibleJurors(country string, excluded []string, limit int) ([]string, error) {
	query := r.db.Model(&models.UserModel{}).
		Where("country = ?", country).
		Where("completed_orders >= ?", 1)

	if len(excluded) > 0 {
		query = query.Where("id NOT IN ?", excluded)
	}

	var ids []string
	if err := query.Limit(limit).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
