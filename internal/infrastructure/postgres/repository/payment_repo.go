package repository

import (
	"errors"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/mappers"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	db *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{db: db}
}

func (r *DefaultPaymentRepository) CreatePayment(payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	if err := r.db.Create(paymentModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByOrderID(orderID string) (*domain.Payment, error) {
	var paymentModel models.PaymentModel
	if err := r.db.Where("order_id = ?", orderID).First(&paymentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	return mappers.ToDomainPayment(&paymentModel), nil
}
