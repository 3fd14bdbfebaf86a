package usecase

import (
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	disputedto "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dto/dispute"
)

// OpenDispute records a new dispute for an order. The initiator must be
// the order's buyer or seller, and an order carries at most one live
// dispute at a time.
func (disputeUc *DefaultDisputeUsecase) OpenDispute(input *disputedto.OpenDisputeInput) (*domain.Dispute, error) {
	order, err := disputeUc.orderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if input.InitiatorID != order.BuyerID && input.InitiatorID != order.SellerID {
		return nil, domain.ErrNotParticipant
	}

	active, err := disputeUc.disputeRepo.FindActiveByOrderID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrDisputeAlreadyActive
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dispute := domain.Dispute{
		ID:          idGenerator(),
		OrderID:     input.OrderID,
		InitiatorID: input.InitiatorID,
		Reason:      input.Reason,
		Description: input.Description,
		Evidence:    input.Evidence,
		Status:      domain.DisputeOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := disputeUc.disputeRepo.CreateDispute(&dispute); err != nil {
		return nil, err
	}

	go func(event domain.DisputeEvent) {
		if err := disputeUc.publisher.PublishDispute(event); err != nil {
			slog.Error("failed to publish dispute event", "stage", "opening", "error", err.Error())
		}
	}(domain.DisputeEvent{
		DisputeID: dispute.ID,
		OrderID:   dispute.OrderID,
		Status:    string(domain.DisputeOpen),
		Reason:    dispute.Reason,
	})

	if disputeUc.metrics != nil {
		disputeUc.metrics.DisputesOpenedTotal.Inc()
	}

	return &dispute, nil
}
