package usecase

import (
	"time"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
)

// ApplySettlement re-applies the order/payment transition for a dispute
// that is already RESOLVED. The normal path settles inside the
// resolution transaction; this entry point exists for replays, and the
// pre-state guards make a second application a no-op.
func (disputeUc *DefaultDisputeUsecase) ApplySettlement(disputeID string) error {
	dispute, err := disputeUc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}
	if dispute.Status != domain.DisputeResolved || dispute.BuyerRefundRate == nil {
		return domain.ErrDisputeNotResolved
	}

	outcome := domain.OutcomeForRate(*dispute.BuyerRefundRate)
	_, err = disputeUc.settlementRepo.ApplySettlement(dispute.OrderID, outcome, time.Now())
	if err != nil && disputeUc.metrics != nil {
		disputeUc.metrics.SettlementsFailedTotal.Inc()
	}
	return err
}
