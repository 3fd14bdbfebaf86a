package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSettlementRepository struct {
	db *gorm.DB
}

func NewDefaultSettlementRepository(db *gorm.DB) *DefaultSettlementRepository {
	return &DefaultSettlementRepository{db: db}
}

func (r *DefaultSettlementRepository) ApplySettlement(orderID string, outcome domain.SettlementOutcome, settledAt time.Time) (bool, error) {
	applied := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		applied, txErr = applySettlement(tx, orderID, outcome, settledAt)
		return txErr
	})
	return applied, err
}

// applySettlement moves the order and its escrowed payment to their
// post-settlement states inside the caller's transaction. The payment
// update is guarded on ESCROW_HELD, which makes the whole thing a safe
// no-op when a racing trigger already settled.
func applySettlement(tx *gorm.DB, orderID string, outcome domain.SettlementOutcome, settledAt time.Time) (bool, error) {
	var payment models.PaymentModel
	if err := tx.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrPaymentNotFound
		}
		return false, err
	}
	if payment.Status != string(domain.PaymentEscrowHeld) {
		return false, nil
	}

	var order models.OrderModel
	if err := tx.Where("id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrOrderNotFound
		}
		return false, err
	}

	var paymentUpdates, orderUpdates map[string]interface{}
	switch outcome {
	case domain.OutcomeFullRefund:
		paymentUpdates = map[string]interface{}{
			"status":      string(domain.PaymentRefunded),
			"refunded_at": settledAt,
		}
		orderUpdates = map[string]interface{}{
			"status": string(domain.StatusRefunded),
		}
	case domain.OutcomeFullRelease:
		paymentUpdates = map[string]interface{}{
			"status":             string(domain.PaymentReleased),
			"escrow_released_at": settledAt,
		}
		orderUpdates = map[string]interface{}{
			"status":       string(domain.StatusConfirmed),
			"confirmed_at": settledAt,
		}
	default:
		return false, fmt.Errorf("unknown settlement outcome: %s", outcome)
	}

	res := tx.Model(&models.PaymentModel{}).
		Where("order_id = ? AND status = ?", orderID, string(domain.PaymentEscrowHeld)).
		Updates(paymentUpdates)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	res = tx.Model(&models.OrderModel{}).
		Where("id = ? AND status NOT IN ?", orderID,
			[]string{string(domain.StatusRefunded), string(domain.StatusConfirmed)}).
		Updates(orderUpdates)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		// Payment was escrow-held but the order already settled; abort
		// so neither write commits alone.
		return false, fmt.Errorf("order %s already settled while payment was escrow-held", orderID)
	}

	return true, nil
}
