package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/config"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/postgrestest"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/repository"
	disputedto "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dto/dispute"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePushSender struct {
	mu       sync.Mutex
	failWith error
	sent     []string
}

func (f *fakePushSender) Push(userID, title, body string, metadata map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, userID)
	return nil
}

func (f *fakePushSender) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.DisputeEvent
}

func (f *fakePublisher) PublishDispute(event domain.DisputeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) countByStatus(status string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, event := range f.events {
		if event.Status == status {
			count++
		}
	}
	return count
}

type fixture struct {
	db          *gorm.DB
	uc          *DefaultDisputeUsecase
	disputeRepo domain.DisputeRepository
	paymentRepo domain.PaymentRepository
	orderRepo   domain.OrderRepository
	settleRepo  domain.SettlementRepository
	juryRepo    domain.JuryAssignmentRepository
	push        *fakePushSender
	events      *fakePublisher
	rules       config.DisputeRules
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := postgrestest.NewDB(t)
	rules := config.DisputeRules{
		MinVotesToResolve:   6,
		VotingDeadlineHours: 72,
		JurorsPerSide:       5,
		CandidatePoolLimit:  100,
		SweepInterval:       time.Minute,
	}

	push := &fakePushSender{}
	events := &fakePublisher{}
	disputeRepo := repository.NewDefaultDisputeRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	settleRepo := repository.NewDefaultSettlementRepository(db)
	juryRepo := repository.NewDefaultJuryAssignmentRepository(db)
	notificationRepo := repository.NewDefaultNotificationRepository(db)

	uc := NewDefaultDisputeUsecase(
		disputeRepo, orderRepo, paymentRepo, settleRepo,
		juryRepo, notificationRepo, push, events, rules, nil,
	)

	return &fixture{
		db:          db,
		uc:          uc,
		disputeRepo: disputeRepo,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		settleRepo:  settleRepo,
		juryRepo:    juryRepo,
		push:        push,
		events:      events,
		rules:       rules,
	}
}

type testCase struct {
	disputeID string
	orderID   string
	buyerID   string
	sellerID  string
	jurorIDs  []string
}

// seedVotingDispute builds a disputed order with an escrowed payment,
// a VOTING dispute and the given number of assigned jurors.
func (f *fixture) seedVotingDispute(t *testing.T, jurors int) testCase {
	t.Helper()

	now := time.Now()
	tc := testCase{
		disputeID: uuid.NewString(),
		orderID:   uuid.NewString(),
		buyerID:   "buyer-" + uuid.NewString(),
		sellerID:  "seller-" + uuid.NewString(),
	}

	require.NoError(t, f.orderRepo.CreateOrder(&domain.Order{
		ID:         tc.orderID,
		BuyerID:    tc.buyerID,
		SellerID:   tc.sellerID,
		AmountFiat: 120.50,
		Currency:   "USD",
		Status:     domain.StatusDisputed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}))
	require.NoError(t, f.paymentRepo.CreatePayment(&domain.Payment{
		ID:        uuid.NewString(),
		OrderID:   tc.orderID,
		Amount:    120.50,
		Currency:  "USD",
		Status:    domain.PaymentEscrowHeld,
		CreatedAt: now,
		UpdatedAt: now,
	}))
	require.NoError(t, f.disputeRepo.CreateDispute(&domain.Dispute{
		ID:          tc.disputeID,
		OrderID:     tc.orderID,
		InitiatorID: tc.buyerID,
		Reason:      "item_not_received",
		Description: "package never arrived",
		Evidence:    []string{"https://img.example/1.png"},
		Status:      domain.DisputeVoting,
		CreatedAt:   now,
		UpdatedAt:   now,
	}))

	assignments := make([]*domain.JuryAssignment, jurors)
	for i := range assignments {
		jurorID := fmt.Sprintf("juror-%d-%s", i, tc.disputeID[:8])
		tc.jurorIDs = append(tc.jurorIDs, jurorID)
		assignments[i] = &domain.JuryAssignment{
			DisputeID:  tc.disputeID,
			JurorID:    jurorID,
			AssignedAt: now,
		}
	}
	require.NoError(t, f.juryRepo.CreateAssignments(assignments))

	return tc
}

func (f *fixture) vote(t *testing.T, disputeID, voterID string, side domain.VoteSide) {
	t.Helper()
	require.NoError(t, f.uc.SubmitVote(&disputedto.SubmitVoteInput{
		DisputeID: disputeID,
		VoterID:   voterID,
		VoteFor:   side,
	}))
}

// castVotes submits buyer-side then seller-side votes from distinct
// jurors.
func (f *fixture) castVotes(t *testing.T, tc testCase, forBuyer, forSeller int) {
	t.Helper()
	require.GreaterOrEqual(t, len(tc.jurorIDs), forBuyer+forSeller)
	for i := 0; i < forBuyer; i++ {
		f.vote(t, tc.disputeID, tc.jurorIDs[i], domain.VoteForBuyer)
	}
	for i := 0; i < forSeller; i++ {
		f.vote(t, tc.disputeID, tc.jurorIDs[forBuyer+i], domain.VoteForSeller)
	}
}

// backdate pushes the dispute's updated_at past the voting deadline
// without touching anything else.
func (f *fixture) backdate(t *testing.T, disputeID string, age time.Duration) {
	t.Helper()
	err := f.db.Model(&models.DisputeModel{}).
		Where("id = ?", disputeID).
		UpdateColumn("updated_at", time.Now().Add(-age)).Error
	require.NoError(t, err)
}

func (f *fixture) countVoteRows(t *testing.T, disputeID string) int64 {
	t.Helper()
	var count int64
	err := f.db.Model(&models.DisputeVoteModel{}).
		Where("dispute_id = ?", disputeID).
		Count(&count).Error
	require.NoError(t, err)
	return count
}
