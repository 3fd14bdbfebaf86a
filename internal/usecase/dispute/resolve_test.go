package usecase

import (
	"testing"
	"time"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestCheckAndResolve_BelowThresholdIsNoop(t *testing.T) {
	f := newFixture(t)
	tc := f.seedVotingDispute(t, 10)
	f.castVotes(t, tc, 3, 2)

	// Five of six required votes: the per-vote check already ran and
	// declined; an explicit check declines too.
	require.NoError(t, f.uc.CheckAndResolve(tc.disputeID))

	dispute, err := f.uc.GetDisputeByID(tc.disputeID)
	require.NoError(t, err)
	require.Equal(t, domain.DisputeVoting, dispute.Status)
	require.Nil(t, dispute.BuyerRefundRate)

	payment, err := f.paymentRepo.GetPaymentByOrderID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentEscrowHeld, payment.Status)
}

func TestResolve_TieFavorsBuyer(t *testing.T) {
	f := newFixture(t)
	tc := f.seedVotingDispute(t, 10)
	f.castVotes(t, tc, 3, 3)

	dispute, err := f.uc.GetDisputeByID(tc.disputeID)
	require.NoError(t, err)
	require.Equal(t, domain.DisputeResolved, dispute.Status)
	require.NotNil(t, dispute.BuyerRefundRate)
	require.Equal(t, 50, *dispute.BuyerRefundRate)

	payment, err := f.paymentRepo.GetPaymentByOrderID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentRefunded, payment.Status)
}

func TestResolve_SellerMajorityReleasesEscrow(t *testing.T) {
	f := newFixture(t)
	tc := f.seedVotingDispute(t, 10)
	f.castVotes(t, tc, 1, 5)

	dispute, err := f.uc.GetDisputeByID(tc.disputeID)
	require.NoError(t, err)
	require.Equal(t, domain.DisputeResolved, dispute.Status)
	require.NotNil(t, dispute.BuyerRefundRate)
	require.Equal(t, 17, *dispute.BuyerRefundRate)

	payment, err := f.paymentRepo.GetPaymentByOrderID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentReleased, payment.Status)
	require.NotNil(t, payment.EscrowReleasedAt)
	require.Nil(t, payment.RefundedAt)

	order, err := f.orderRepo.GetOrderByID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, order.Status)
	require.NotNil(t, order.ConfirmedAt)
}

func TestCheckAndResolve_IdempotentAfterResolution(t *testing.T) {
	f := newFixture(t)
	tc := f.seedVotingDispute(t, 10)
	f.castVotes(t, tc, 4, 2)

	before, err := f.paymentRepo.GetPaymentByOrderID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentRefunded, before.Status)

	require.NoError(t, f.uc.CheckAndResolve(tc.disputeID))

	after, err := f.paymentRepo.GetPaymentByOrderID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, before.Status, after.Status)
	require.Equal(t, before.RefundedAt, after.RefundedAt)

	dispute, err := f.uc.GetDisputeByID(tc.disputeID)
	require.NoError(t, err)
	require.Equal(t, 67, *dispute.BuyerRefundRate)

	// Still exactly one resolution event.
	require.Eventually(t, func() bool {
		return f.events.countByStatus(string(domain.DisputeResolved)) == 1
	}, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, f.events.countByStatus(string(domain.DisputeResolved)))
}
