package usecase

import (
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	disputedto "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dto/dispute"
)

func (disputeUc *DefaultDisputeUsecase) GetDisputes(input *disputedto.GetDisputesInput) (*disputedto.GetDisputesOutput, error) {
	filter := domain.GetDisputesFilter{
		OrderID:     input.OrderID,
		InitiatorID: input.InitiatorID,
		Status:      input.Status,
		Page:        int(input.Page),
		Limit:       int(input.Limit),
	}
	disputes, total, err := disputeUc.disputeRepo.GetDisputes(filter)
	if err != nil {
		return nil, err
	}

	totalPages := total / input.Limit
	if total%input.Limit != 0 {
		totalPages++
	}

	return &disputedto.GetDisputesOutput{
		Disputes: disputes,
		Pagination: disputedto.Pagination{
			CurrentPage:  int32(input.Page),
			TotalPages:   int32(totalPages),
			TotalItems:   int32(total),
			ItemsPerPage: int32(input.Limit),
		},
	}, nil
}

func (disputeUc *DefaultDisputeUsecase) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	return disputeUc.disputeRepo.GetDisputeByID(disputeID)
}

func (disputeUc *DefaultDisputeUsecase) GetDisputeByOrderID(orderID string) (*domain.Dispute, error) {
	return disputeUc.disputeRepo.GetDisputeByOrderID(orderID)
}

func (disputeUc *DefaultDisputeUsecase) ListVotes(disputeID string) ([]*domain.DisputeVote, error) {
	if _, err := disputeUc.disputeRepo.GetDisputeByID(disputeID); err != nil {
		return nil, err
	}
	return disputeUc.disputeRepo.ListVotes(disputeID)
}
