package background

import (
	"context"
	"log/slog"
	"time"

	usecase "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dispute"
)

type BackgroundTasks struct {
	DisputeUsecase usecase.DisputeUsecase
	SweepInterval  time.Duration
}

func NewBackgroundTasks(disputeUC usecase.DisputeUsecase, sweepInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		DisputeUsecase: disputeUC,
		SweepInterval:  sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startExpiredVotingSweep(ctx)
}

func (bt *BackgroundTasks) startExpiredVotingSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := bt.DisputeUsecase.ProcessExpiredVotings(ctx)
			if err != nil {
				slog.Error("expired-voting sweep failed", "error", err.Error())
				continue
			}
			if result.Processed > 0 {
				slog.Info("expired-voting sweep finished",
					"processed", result.Processed,
					"resolved", result.Resolved,
					"reopened", result.Reopened,
					"failed", result.Failed)
			}
		}
	}
}
