package jury

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
)

// SelectJury builds the voting panel for an open dispute: one candidate
// pool from the buyer's country and one from the seller's, each capped,
// shuffled and cut to JurorsPerSide. A short pool shrinks the panel
// instead of failing the dispute; only a fully empty panel is an error.
func (s *DefaultJurySelector) SelectJury(disputeID string, excludedUserIDs []string) ([]string, error) {
	dispute, err := s.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status != domain.DisputeOpen {
		return nil, domain.ErrDisputeNotOpen
	}

	order, err := s.orderRepo.GetOrderByID(dispute.OrderID)
	if err != nil {
		return nil, err
	}

	// The parties never judge their own dispute.
	excluded := make([]string, 0, len(excludedUserIDs)+2)
	excluded = append(excluded, excludedUserIDs...)
	excluded = appendMissing(excluded, order.BuyerID)
	excluded = appendMissing(excluded, order.SellerID)

	buyer, err := s.userRepo.GetUserByID(order.BuyerID)
	if err != nil {
		return nil, fmt.Errorf("load buyer %s: %w", order.BuyerID, err)
	}
	seller, err := s.userRepo.GetUserByID(order.SellerID)
	if err != nil {
		return nil, fmt.Errorf("load seller %s: %w", order.SellerID, err)
	}

	buyerPool, err := s.userRepo.FindEligibleJurors(buyer.Country, excluded, s.rules.CandidatePoolLimit)
	if err != nil {
		return nil, fmt.Errorf("buyer-side candidate pool: %w", err)
	}
	buyerSide := s.sampler.Sample(buyerPool, s.rules.JurorsPerSide)

	// Excluding the buyer-side picks keeps the pools disjoint even when
	// both parties share a country.
	sellerExcluded := append(append([]string{}, excluded...), buyerSide...)
	sellerPool, err := s.userRepo.FindEligibleJurors(seller.Country, sellerExcluded, s.rules.CandidatePoolLimit)
	if err != nil {
		return nil, fmt.Errorf("seller-side candidate pool: %w", err)
	}
	sellerSide := s.sampler.Sample(sellerPool, s.rules.JurorsPerSide)

	jurorIDs := append(buyerSide, sellerSide...)
	if len(jurorIDs) == 0 {
		return nil, domain.ErrEmptyJuryPool
	}
	if len(jurorIDs) < 2*s.rules.JurorsPerSide {
		slog.Warn("jury panel short of target",
			"dispute_id", disputeID,
			"selected", len(jurorIDs),
			"target", 2*s.rules.JurorsPerSide)
	}

	now := time.Now()
	assignments := make([]*domain.JuryAssignment, len(jurorIDs))
	notifications := make([]*domain.Notification, len(jurorIDs))
	for i, jurorID := range jurorIDs {
		assignments[i] = &domain.JuryAssignment{
			DisputeID:  disputeID,
			JurorID:    jurorID,
			AssignedAt: now,
		}
		notifications[i] = &domain.Notification{
			ID:        uuid.NewString(),
			UserID:    jurorID,
			Type:      domain.NotificationJuryInvite,
			Title:     "You were selected as a dispute juror",
			Message:   fmt.Sprintf("Review the case and cast your vote within %d hours.", s.rules.VotingDeadlineHours),
			Link:      fmt.Sprintf("/disputes/%s", disputeID),
			CreatedAt: now,
		}
	}

	if err := s.juryRepo.CreateAssignments(assignments); err != nil {
		return nil, fmt.Errorf("persist jury assignments: %w", err)
	}
	if err := s.notificationRepo.CreateNotifications(notifications); err != nil {
		// Assignments are already persisted; selection stands.
		slog.Error("failed to persist jury notifications", "dispute_id", disputeID, "error", err.Error())
	}

	for _, jurorID := range jurorIDs {
		if err := s.pushSender.Push(jurorID, "Jury duty", "You were selected to vote on a marketplace dispute.",
			map[string]string{"dispute_id": disputeID}); err != nil {
			slog.Warn("juror push failed", "juror_id", jurorID, "dispute_id", disputeID, "error", err.Error())
		}
	}

	ok, err := s.disputeRepo.MarkVoting(disputeID)
	if err != nil {
		return nil, fmt.Errorf("mark dispute voting: %w", err)
	}
	if !ok {
		slog.Warn("dispute left OPEN state during jury selection", "dispute_id", disputeID)
	}

	if s.metrics != nil {
		s.metrics.JurorsSelectedTotal.Add(float64(len(jurorIDs)))
	}

	return jurorIDs, nil
}

func appendMissing(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
