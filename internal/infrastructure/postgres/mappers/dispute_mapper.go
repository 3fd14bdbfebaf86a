package mappers

import (
	"encoding/json"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
)

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	evidence, _ := json.Marshal(dispute.Evidence)
	return &models.DisputeModel{
		ID:              dispute.ID,
		OrderID:         dispute.OrderID,
		InitiatorID:     dispute.InitiatorID,
		Reason:          dispute.Reason,
		Description:     dispute.Description,
		Evidence:        string(evidence),
		Status:          string(dispute.Status),
		VotesForBuyer:   dispute.VotesForBuyer,
		VotesForSeller:  dispute.VotesForSeller,
		BuyerRefundRate: dispute.BuyerRefundRate,
		CreatedAt:       dispute.CreatedAt,
		UpdatedAt:       dispute.UpdatedAt,
		ResolvedAt:      dispute.ResolvedAt,
	}
}

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	var evidence []string
	if model.Evidence != "" {
		_ = json.Unmarshal([]byte(model.Evidence), &evidence)
	}
	return &domain.Dispute{
		ID:              model.ID,
		OrderID:         model.OrderID,
		InitiatorID:     model.InitiatorID,
		Reason:          model.Reason,
		Description:     model.Description,
		Evidence:        evidence,
		Status:          domain.DisputeStatus(model.Status),
		VotesForBuyer:   model.VotesForBuyer,
		VotesForSeller:  model.VotesForSeller,
		BuyerRefundRate: model.BuyerRefundRate,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		ResolvedAt:      model.ResolvedAt,
	}
}

func ToGORMDisputeVote(vote *domain.DisputeVote) *models.DisputeVoteModel {
	return &models.DisputeVoteModel{
		ID:        vote.ID,
		DisputeID: vote.DisputeID,
		VoterID:   vote.VoterID,
		VoteFor:   string(vote.VoteFor),
		Comment:   vote.Comment,
		CreatedAt: vote.CreatedAt,
	}
}

func ToDomainDisputeVote(model *models.DisputeVoteModel) *domain.DisputeVote {
	return &domain.DisputeVote{
		ID:        model.ID,
		DisputeID: model.DisputeID,
		VoterID:   model.VoterID,
		VoteFor:   domain.VoteSide(model.VoteFor),
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
	}
}
