package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	disputedto "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dto/dispute"
)

// SubmitVote records one juror's vote. The vote row and the tally
// increment land in a single repository transaction; the resolution
// check runs synchronously afterwards so a threshold crossing is never
// missed, but its failure does not unrecord the vote — the timeout
// sweep retries resolution on the next pass.
func (disputeUc *DefaultDisputeUsecase) SubmitVote(input *disputedto.SubmitVoteInput) error {
	if !input.VoteFor.Valid() {
		return domain.ErrInvalidVoteSide
	}

	dispute, err := disputeUc.disputeRepo.GetDisputeByID(input.DisputeID)
	if err != nil {
		return err
	}
	if dispute.Status != domain.DisputeVoting {
		return domain.ErrNotVotingState
	}

	order, err := disputeUc.orderRepo.GetOrderByID(dispute.OrderID)
	if err != nil {
		return err
	}
	if input.VoterID == order.BuyerID || input.VoterID == order.SellerID {
		return domain.ErrPartyCannotVote
	}

	isJuror, err := disputeUc.juryRepo.IsJuror(input.DisputeID, input.VoterID)
	if err != nil {
		return err
	}
	if !isJuror {
		return domain.ErrNotJuror
	}

	vote := domain.DisputeVote{
		ID:        uuid.NewString(),
		DisputeID: input.DisputeID,
		VoterID:   input.VoterID,
		VoteFor:   input.VoteFor,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := disputeUc.disputeRepo.SubmitVote(&vote); err != nil {
		return err
	}

	if disputeUc.metrics != nil {
		disputeUc.metrics.VotesSubmittedTotal.WithLabelValues(string(input.VoteFor)).Inc()
	}

	if err := disputeUc.CheckAndResolve(input.DisputeID); err != nil {
		slog.Error("post-vote resolution check failed",
			"dispute_id", input.DisputeID, "error", err.Error())
	}

	return nil
}
