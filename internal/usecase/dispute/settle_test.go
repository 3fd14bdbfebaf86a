package usecase

import (
	"testing"
	"time"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestApplySettlement_RequiresResolvedDispute(t *testing.T) {
	f := newFixture(t)
	tc := f.seedVotingDispute(t, 10)

	err := f.uc.ApplySettlement(tc.disputeID)
	require.ErrorIs(t, err, domain.ErrDisputeNotResolved)
}

func TestApplySettlement_UnknownDispute(t *testing.T) {
	f := newFixture(t)

	err := f.uc.ApplySettlement("no-such-dispute")
	require.ErrorIs(t, err, domain.ErrDisputeNotFound)
}

func TestApplySettlement_ReplayIsNoop(t *testing.T) {
	f := newFixture(t)
	tc := f.seedVotingDispute(t, 10)
	f.castVotes(t, tc, 4, 2)

	before, err := f.paymentRepo.GetPaymentByOrderID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentRefunded, before.Status)

	// Settlement already ran inside the resolution transaction; the
	// replay entry point must leave everything untouched.
	require.NoError(t, f.uc.ApplySettlement(tc.disputeID))

	after, err := f.paymentRepo.GetPaymentByOrderID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, before.Status, after.Status)
	require.Equal(t, before.RefundedAt, after.RefundedAt)

	applied, err := f.settleRepo.ApplySettlement(tc.orderID, domain.OutcomeFullRefund, time.Now())
	require.NoError(t, err)
	require.False(t, applied)
}

func TestSettlementRepo_ReleaseThenReplay(t *testing.T) {
	f := newFixture(t)
	tc := f.seedVotingDispute(t, 0)

	settledAt := time.Now()
	applied, err := f.settleRepo.ApplySettlement(tc.orderID, domain.OutcomeFullRelease, settledAt)
	require.NoError(t, err)
	require.True(t, applied)

	payment, err := f.paymentRepo.GetPaymentByOrderID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentReleased, payment.Status)
	require.NotNil(t, payment.EscrowReleasedAt)

	order, err := f.orderRepo.GetOrderByID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, order.Status)
	require.NotNil(t, order.ConfirmedAt)

	// A second application, even with the opposite outcome, must not
	// touch a payment that already left escrow.
	applied, err = f.settleRepo.ApplySettlement(tc.orderID, domain.OutcomeFullRefund, time.Now())
	require.NoError(t, err)
	require.False(t, applied)

	payment, err = f.paymentRepo.GetPaymentByOrderID(tc.orderID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentReleased, payment.Status)
	require.Nil(t, payment.RefundedAt)
}

func TestSettlementRepo_UnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.settleRepo.ApplySettlement("no-such-order", domain.OutcomeFullRefund, time.Now())
	require.ErrorIs(t, err, domain.ErrPaymentNotFound)
}
