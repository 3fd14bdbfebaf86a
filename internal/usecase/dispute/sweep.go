package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	disputedto "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dto/dispute"
)

// ProcessExpiredVotings is the fallback liveness guarantee: every
// VOTING dispute past the deadline is either force-resolved from
// whatever votes exist (even below the usual threshold) or, with zero
// votes, sent back to OPEN for a fresh jury. One dispute's failure
// never aborts the rest of the batch.
func (disputeUc *DefaultDisputeUsecase) ProcessExpiredVotings(ctx context.Context) (*disputedto.SweepResult, error) {
	start := time.Now()
	if disputeUc.metrics != nil {
		disputeUc.metrics.SweepRunsTotal.Inc()
		defer func() {
			disputeUc.metrics.SweepDuration.Observe(time.Since(start).Seconds())
		}()
	}

	deadline := start.Add(-disputeUc.rules.VotingDeadline())
	expired, err := disputeUc.disputeRepo.FindExpiredVotings(deadline)
	if err != nil {
		return nil, err
	}

	result := &disputedto.SweepResult{}
	for _, dispute := range expired {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Processed++

		if dispute.TotalVotes() == 0 {
			reopened, err := disputeUc.reopenDispute(dispute)
			if err != nil {
				result.Failed++
				if disputeUc.metrics != nil {
					disputeUc.metrics.SweepFailuresTotal.Inc()
				}
				slog.Error("failed to reopen zero-vote dispute", "dispute_id", dispute.ID, "error", err.Error())
				continue
			}
			if reopened {
				result.Reopened++
			}
			continue
		}

		resolved, err := disputeUc.resolve(dispute, "sweep")
		if err != nil {
			result.Failed++
			if disputeUc.metrics != nil {
				disputeUc.metrics.SweepFailuresTotal.Inc()
			}
			slog.Error("failed to force-resolve expired dispute", "dispute_id", dispute.ID, "error", err.Error())
			continue
		}
		if resolved {
			result.Resolved++
		}
	}

	return result, nil
}

func (disputeUc *DefaultDisputeUsecase) reopenDispute(dispute *domain.Dispute) (bool, error) {
	reopened, err := disputeUc.disputeRepo.Reopen(dispute.ID)
	if err != nil {
		return false, err
	}
	if !reopened {
		// A vote landed (or another writer resolved) after the sweep
		// read this row; nothing to do.
		return false, nil
	}

	if disputeUc.metrics != nil {
		disputeUc.metrics.DisputesReopenedTotal.Inc()
	}

	notification := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    dispute.InitiatorID,
		Type:      domain.NotificationDisputeReopened,
		Title:     "Dispute reopened",
		Message:   "No jury votes arrived in time. Your dispute was reopened and a new jury will be selected.",
		Link:      fmt.Sprintf("/disputes/%s", dispute.ID),
		CreatedAt: time.Now(),
	}
	if err := disputeUc.notificationRepo.CreateNotifications([]*domain.Notification{notification}); err != nil {
		slog.Error("failed to persist reopen notification", "dispute_id", dispute.ID, "error", err.Error())
	}

	go func(event domain.DisputeEvent) {
		if err := disputeUc.publisher.PublishDispute(event); err != nil {
			slog.Error("failed to publish dispute event", "stage", "reopening", "error", err.Error())
		}
	}(domain.DisputeEvent{
		DisputeID: dispute.ID,
		OrderID:   dispute.OrderID,
		Status:    string(domain.DisputeOpen),
	})

	return true, nil
}
