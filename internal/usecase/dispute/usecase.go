package usecase

import (
	"context"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/config"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/metrics"
	disputedto "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dto/dispute"
)

type DisputeUsecase interface {
	OpenDispute(input *disputedto.OpenDisputeInput) (*domain.Dispute, error)
	SubmitVote(input *disputedto.SubmitVoteInput) error
	CheckAndResolve(disputeID string) error
	ApplySettlement(disputeID string) error
	ProcessExpiredVotings(ctx context.Context) (*disputedto.SweepResult, error)
	GetDisputeByID(disputeID string) (*domain.Dispute, error)
	GetDisputeByOrderID(orderID string) (*domain.Dispute, error)
	GetDisputes(input *disputedto.GetDisputesInput) (*disputedto.GetDisputesOutput, error)
	ListVotes(disputeID string) ([]*domain.DisputeVote, error)
}

type DefaultDisputeUsecase struct {
	disputeRepo      domain.DisputeRepository
	orderRepo        domain.OrderRepository
	paymentRepo      domain.PaymentRepository
	settlementRepo   domain.SettlementRepository
	juryRepo         domain.JuryAssignmentRepository
	notificationRepo domain.NotificationRepository
	pushSender       domain.PushSender
	publisher        domain.DisputeEventPublisher
	rules            config.DisputeRules
	metrics          *metrics.DisputeMetrics
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	orderRepo domain.OrderRepository,
	paymentRepo domain.PaymentRepository,
	settlementRepo domain.SettlementRepository,
	juryRepo domain.JuryAssignmentRepository,
	notificationRepo domain.NotificationRepository,
	pushSender domain.PushSender,
	publisher domain.DisputeEventPublisher,
	rules config.DisputeRules,
	disputeMetrics *metrics.DisputeMetrics,
) *DefaultDisputeUsecase {
	return &DefaultDisputeUsecase{
		disputeRepo:      disputeRepo,
		orderRepo:        orderRepo,
		paymentRepo:      paymentRepo,
		settlementRepo:   settlementRepo,
		juryRepo:         juryRepo,
		notificationRepo: notificationRepo,
		pushSender:       pushSender,
		publisher:        publisher,
		rules:            rules,
		metrics:          disputeMetrics,
	}
}
