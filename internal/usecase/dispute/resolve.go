package usecase

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
)

// CheckAndResolve is idempotent: a no-op on anything not in VOTING, and
// on VOTING disputes below the vote threshold.
func (disputeUc *DefaultDisputeUsecase) CheckAndResolve(disputeID string) error {
	dispute, err := disputeUc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return err
	}
	if dispute.Status != domain.DisputeVoting {
		return nil
	}
	if dispute.TotalVotes() < disputeUc.rules.MinVotesToResolve {
		return nil
	}

	_, err = disputeUc.resolve(dispute, "vote")
	return err
}

// resolve computes the refund rate from the current tallies and runs
// the resolve-and-settle transaction. Exactly one caller wins when a
// vote-triggered check races the timeout sweep; the loser gets
// resolved=false and skips the notifications.
func (disputeUc *DefaultDisputeUsecase) resolve(dispute *domain.Dispute, trigger string) (bool, error) {
	total := dispute.TotalVotes()
	if total == 0 {
		return false, fmt.Errorf("dispute %s has no votes to resolve from", dispute.ID)
	}

	buyerRefundRate := int(math.Round(float64(dispute.VotesForBuyer) / float64(total) * 100))
	outcome := domain.OutcomeForRate(buyerRefundRate)

	resolved, err := disputeUc.disputeRepo.ResolveAndSettle(
		dispute.ID, dispute.OrderID, buyerRefundRate, outcome, time.Now())
	if err != nil {
		if disputeUc.metrics != nil {
			disputeUc.metrics.SettlementsFailedTotal.Inc()
		}
		return false, err
	}
	if !resolved {
		return false, nil
	}

	if disputeUc.metrics != nil {
		disputeUc.metrics.DisputesResolvedTotal.WithLabelValues(string(outcome), trigger).Inc()
	}
	disputeUc.notifyOutcome(dispute, buyerRefundRate, outcome)

	return true, nil
}

func (disputeUc *DefaultDisputeUsecase) notifyOutcome(dispute *domain.Dispute, buyerRefundRate int, outcome domain.SettlementOutcome) {
	order, err := disputeUc.orderRepo.GetOrderByID(dispute.OrderID)
	if err != nil {
		slog.Error("failed to load order for outcome notifications",
			"dispute_id", dispute.ID, "order_id", dispute.OrderID, "error", err.Error())
		return
	}

	var buyerMsg, sellerMsg string
	switch outcome {
	case domain.OutcomeFullRefund:
		buyerMsg = fmt.Sprintf("The community ruled in your favor (%d%% of votes). Your payment has been refunded.", buyerRefundRate)
		sellerMsg = fmt.Sprintf("The community ruled for the buyer (%d%% of votes). The escrowed payment was refunded.", buyerRefundRate)
	case domain.OutcomeFullRelease:
		buyerMsg = fmt.Sprintf("The community ruled for the seller (%d%% of votes for you). The escrowed payment was released to the seller.", buyerRefundRate)
		sellerMsg = fmt.Sprintf("The community ruled in your favor (%d%% of votes for the buyer). The escrowed payment has been released to you.", buyerRefundRate)
	}

	now := time.Now()
	link := fmt.Sprintf("/disputes/%s", dispute.ID)
	notifications := []*domain.Notification{
		{
			ID:        uuid.NewString(),
			UserID:    order.BuyerID,
			Type:      domain.NotificationDisputeOutcome,
			Title:     "Dispute resolved",
			Message:   buyerMsg,
			Link:      link,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			UserID:    order.SellerID,
			Type:      domain.NotificationDisputeOutcome,
			Title:     "Dispute resolved",
			Message:   sellerMsg,
			Link:      link,
			CreatedAt: now,
		},
	}
	if err := disputeUc.notificationRepo.CreateNotifications(notifications); err != nil {
		slog.Error("failed to persist outcome notifications", "dispute_id", dispute.ID, "error", err.Error())
	}

	for _, notification := range notifications {
		if err := disputeUc.pushSender.Push(notification.UserID, notification.Title, notification.Message,
			map[string]string{"dispute_id": dispute.ID}); err != nil {
			slog.Warn("outcome push failed", "user_id", notification.UserID, "dispute_id", dispute.ID, "error", err.Error())
		}
	}

	go func(event domain.DisputeEvent) {
		if err := disputeUc.publisher.PublishDispute(event); err != nil {
			slog.Error("failed to publish dispute event", "stage", "resolution", "error", err.Error())
		}
	}(domain.DisputeEvent{
		DisputeID:       dispute.ID,
		OrderID:         dispute.OrderID,
		Status:          string(domain.DisputeResolved),
		BuyerRefundRate: &buyerRefundRate,
		Outcome:         string(outcome),
	})
}
