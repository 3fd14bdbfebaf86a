package jury

import (
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/config"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/metrics"
)

type JurySelector interface {
	SelectJury(disputeID string, excludedUserIDs []string) ([]string, error)
}

type DefaultJurySelector struct {
	disputeRepo      domain.DisputeRepository
	orderRepo        domain.OrderRepository
	userRepo         domain.UserRepository
	juryRepo         domain.JuryAssignmentRepository
	notificationRepo domain.NotificationRepository
	pushSender       domain.PushSender
	sampler          *Sampler
	rules            config.DisputeRules
	metrics          *metrics.DisputeMetrics
}

func NewDefaultJurySelector(
	disputeRepo domain.DisputeRepository,
	orderRepo domain.OrderRepository,
	userRepo domain.UserRepository,
	juryRepo domain.JuryAssignmentRepository,
	notificationRepo domain.NotificationRepository,
	pushSender domain.PushSender,
	sampler *Sampler,
	rules config.DisputeRules,
	disputeMetrics *metrics.DisputeMetrics,
) *DefaultJurySelector {
	return &DefaultJurySelector{
		disputeRepo:      disputeRepo,
		orderRepo:        orderRepo,
		userRepo:         userRepo,
		juryRepo:         juryRepo,
		notificationRepo: notificationRepo,
		pushSender:       pushSender,
		sampler:          sampler,
		rules:            rules,
		metrics:          disputeMetrics,
	}
}
