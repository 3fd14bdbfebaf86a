package repository

import (
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	db *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{db: db}
}

func (r *DefaultNotificationRepository) CreateNotifications(notifications []*domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	notificationModels := make([]models.NotificationModel, len(notifications))
	for i, notification := range notifications {
		notificationModels[i] = models.NotificationModel{
			ID:        notification.ID,
			UserID:    notification.UserID,
			Type:      notification.Type,
			Title:     notification.Title,
			Message:   notification.Message,
			Link:      notification.Link,
			CreatedAt: notification.CreatedAt,
		}
	}
	return r.db.Create(&notificationModels).Error
}
