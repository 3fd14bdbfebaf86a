package mappers

import (
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
)

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:               payment.ID,
		OrderID:          payment.OrderID,
		Amount:           payment.Amount,
		Currency:         payment.Currency,
		Status:           string(payment.Status),
		RefundedAt:       payment.RefundedAt,
		EscrowReleasedAt: payment.EscrowReleasedAt,
		CreatedAt:        payment.CreatedAt,
		UpdatedAt:        payment.UpdatedAt,
	}
}

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:               model.ID,
		OrderID:          model.OrderID,
		Amount:           model.Amount,
		Currency:         model.Currency,
		Status:           domain.PaymentStatus(model.Status),
		RefundedAt:       model.RefundedAt,
		EscrowReleasedAt: model.EscrowReleasedAt,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}
