package mappers

import (
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:          order.ID,
		BuyerID:     order.BuyerID,
		SellerID:    order.SellerID,
		AmountFiat:  order.AmountFiat,
		Currency:    order.Currency,
		Status:      string(order.Status),
		ConfirmedAt: order.ConfirmedAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:          model.ID,
		BuyerID:     model.BuyerID,
		SellerID:    model.SellerID,
		AmountFiat:  model.AmountFiat,
		Currency:    model.Currency,
		Status:      domain.OrderStatus(model.Status),
		ConfirmedAt: model.ConfirmedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
