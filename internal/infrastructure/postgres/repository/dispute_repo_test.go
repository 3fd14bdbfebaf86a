package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/postgrestest"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedDisputeRow(t *testing.T, db *gorm.DB, status string, votesForBuyer, votesForSeller int) (disputeID, orderID string) {
	t.Helper()

	now := time.Now()
	orderID = uuid.NewString()
	require.NoError(t, db.Create(&models.OrderModel{
		ID:        orderID,
		BuyerID:   "buyer-1",
		SellerID:  "seller-1",
		Currency:  "USD",
		Status:    string(domain.StatusDisputed),
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&models.PaymentModel{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Amount:    80,
		Currency:  "USD",
		Status:    string(domain.PaymentEscrowHeld),
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)

	disputeID = uuid.NewString()
	require.NoError(t, db.Create(&models.DisputeModel{
		ID:             disputeID,
		OrderID:        orderID,
		InitiatorID:    "buyer-1",
		Reason:         "item_not_received",
		Status:         status,
		VotesForBuyer:  votesForBuyer,
		VotesForSeller: votesForSeller,
		CreatedAt:      now,
		UpdatedAt:      now,
	}).Error)
	return disputeID, orderID
}

func TestVoteUniqueIndex_RejectsDuplicateAtStorageLevel(t *testing.T) {
	db := postgrestest.NewDB(t)
	disputeID, _ := seedDisputeRow(t, db, string(domain.DisputeVoting), 0, 0)

	require.NoError(t, db.Create(&models.DisputeVoteModel{
		ID:        uuid.NewString(),
		DisputeID: disputeID,
		VoterID:   "juror-1",
		VoteFor:   string(domain.VoteForBuyer),
		CreatedAt: time.Now(),
	}).Error)

	// Same voter, fresh primary key: only the composite index stops it.
	err := db.Create(&models.DisputeVoteModel{
		ID:        uuid.NewString(),
		DisputeID: disputeID,
		VoterID:   "juror-1",
		VoteFor:   string(domain.VoteForSeller),
		CreatedAt: time.Now(),
	}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestMarkVoting_OnlyFromOpen(t *testing.T) {
	db := postgrestest.NewDB(t)
	repo := NewDefaultDisputeRepository(db)
	disputeID, _ := seedDisputeRow(t, db, string(domain.DisputeOpen), 0, 0)

	ok, err := repo.MarkVoting(disputeID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.MarkVoting(disputeID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReopen_OnlyWhileNoVotesRecorded(t *testing.T) {
	db := postgrestest.NewDB(t)
	repo := NewDefaultDisputeRepository(db)

	zeroVotes, _ := seedDisputeRow(t, db, string(domain.DisputeVoting), 0, 0)
	ok, err := repo.Reopen(zeroVotes)
	require.NoError(t, err)
	require.True(t, ok)

	dispute, err := repo.GetDisputeByID(zeroVotes)
	require.NoError(t, err)
	require.Equal(t, domain.DisputeOpen, dispute.Status)

	withVotes, _ := seedDisputeRow(t, db, string(domain.DisputeVoting), 1, 0)
	ok, err = repo.Reopen(withVotes)
	require.NoError(t, err)
	require.False(t, ok)

	dispute, err = repo.GetDisputeByID(withVotes)
	require.NoError(t, err)
	require.Equal(t, domain.DisputeVoting, dispute.Status)
}

func TestResolveAndSettle_SecondWriterSeesNoop(t *testing.T) {
	db := postgrestest.NewDB(t)
	repo := NewDefaultDisputeRepository(db)
	disputeID, orderID := seedDisputeRow(t, db, string(domain.DisputeVoting), 4, 2)

	resolved, err := repo.ResolveAndSettle(disputeID, orderID, 67, domain.OutcomeFullRefund, time.Now())
	require.NoError(t, err)
	require.True(t, resolved)

	dispute, err := repo.GetDisputeByID(disputeID)
	require.NoError(t, err)
	require.Equal(t, domain.DisputeResolved, dispute.Status)
	require.Equal(t, 67, *dispute.BuyerRefundRate)
	require.NotNil(t, dispute.ResolvedAt)

	var payment models.PaymentModel
	require.NoError(t, db.Where("order_id = ?", orderID).First(&payment).Error)
	require.Equal(t, string(domain.PaymentRefunded), payment.Status)

	// The losing writer of a resolution race.
	resolved, err = repo.ResolveAndSettle(disputeID, orderID, 33, domain.OutcomeFullRelease, time.Now())
	require.NoError(t, err)
	require.False(t, resolved)

	dispute, err = repo.GetDisputeByID(disputeID)
	require.NoError(t, err)
	require.Equal(t, 67, *dispute.BuyerRefundRate)
}

func TestFindExpiredVotings_FiltersStatusAndAge(t *testing.T) {
	db := postgrestest.NewDB(t)
	repo := NewDefaultDisputeRepository(db)

	staleVoting, _ := seedDisputeRow(t, db, string(domain.DisputeVoting), 0, 0)
	staleResolved, _ := seedDisputeRow(t, db, string(domain.DisputeResolved), 4, 2)
	freshVoting, _ := seedDisputeRow(t, db, string(domain.DisputeVoting), 1, 0)

	old := time.Now().Add(-80 * time.Hour)
	for _, id := range []string{staleVoting, staleResolved} {
		require.NoError(t, db.Model(&models.DisputeModel{}).
			Where("id = ?", id).
			UpdateColumn("updated_at", old).Error)
	}

	expired, err := repo.FindExpiredVotings(time.Now().Add(-72 * time.Hour))
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, staleVoting, expired[0].ID)
	require.NotEqual(t, freshVoting, expired[0].ID)
}
