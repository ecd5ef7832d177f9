package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func succeeded(id string, amount string, kind PaymentKind) *Payment {
	return &Payment{ID: id, Amount: money(amount), Kind: kind, State: PaymentStateSucceeded}
}

func TestProjectTotals_NoPayments(t *testing.T) {
	p := ProjectTotals(money("200.00"), nil)

	assert.True(t, p.AmountPaid.IsZero())
	assert.True(t, p.BalanceDue.Equal(money("200.00")))
	assert.Equal(t, PaymentStatusPending, p.Status)
}

func TestProjectTotals_DepositPaid(t *testing.T) {
	p := ProjectTotals(money("200.00"), []*Payment{
		succeeded("p1", "50.00", PaymentKindDeposit),
	})

	assert.True(t, p.AmountPaid.Equal(money("50.00")))
	assert.True(t, p.BalanceDue.Equal(money("150.00")))
	assert.Equal(t, PaymentStatusDepositPaid, p.Status)
}

func TestProjectTotals_PartiallyPaid(t *testing.T) {
	p := ProjectTotals(money("200.00"), []*Payment{
		succeeded("p1", "80.00", PaymentKindPayment),
	})

	assert.True(t, p.BalanceDue.Equal(money("120.00")))
	assert.Equal(t, PaymentStatusPartiallyPaid, p.Status)
}

func TestProjectTotals_FullyPaid(t *testing.T) {
	p := ProjectTotals(money("200.00"), []*Payment{
		succeeded("p1", "50.00", PaymentKindDeposit),
		succeeded("p2", "150.00", PaymentKindPayment),
	})

	assert.True(t, p.AmountPaid.Equal(money("200.00")))
	assert.True(t, p.BalanceDue.IsZero())
	assert.Equal(t, PaymentStatusFullyPaid, p.Status)
}

func TestProjectTotals_RefundsSubtract(t *testing.T) {
	orig := "p1"
	p := ProjectTotals(money("200.00"), []*Payment{
		succeeded("p1", "200.00", PaymentKindPayment),
		{ID: "r1", Amount: money("100.00"), Kind: PaymentKindRefund, State: PaymentStateSucceeded, OriginalPaymentID: &orig},
	})

	assert.True(t, p.AmountPaid.Equal(money("100.00")))
	assert.True(t, p.BalanceDue.Equal(money("100.00")))
	assert.Equal(t, PaymentStatusPartiallyPaid, p.Status)
}

func TestProjectTotals_FullRefundBackToPending(t *testing.T) {
	orig := "p1"
	p := ProjectTotals(money("200.00"), []*Payment{
		succeeded("p1", "200.00", PaymentKindPayment),
		{ID: "r1", Amount: money("200.00"), Kind: PaymentKindRefund, State: PaymentStateSucceeded, OriginalPaymentID: &orig},
	})

	assert.True(t, p.AmountPaid.IsZero())
	assert.Equal(t, PaymentStatusPending, p.Status)
}

func TestProjectTotals_FailedAndPendingIgnored(t *testing.T) {
	p := ProjectTotals(money("200.00"), []*Payment{
		{ID: "p1", Amount: money("200.00"), Kind: PaymentKindPayment, State: PaymentStateFailed},
		{ID: "p2", Amount: money("50.00"), Kind: PaymentKindDeposit, State: PaymentStatePending},
	})

	assert.True(t, p.AmountPaid.IsZero())
	assert.True(t, p.BalanceDue.Equal(money("200.00")))
	assert.Equal(t, PaymentStatusPending, p.Status)
}

func TestProjectTotals_OverpaymentIsFullyPaid(t *testing.T) {
	p := ProjectTotals(money("200.00"), []*Payment{
		succeeded("p1", "250.00", PaymentKindPayment),
	})

	assert.Equal(t, PaymentStatusFullyPaid, p.Status)
	assert.True(t, p.BalanceDue.Equal(money("-50.00")))
}

func TestProjectTotals_Reconciles(t *testing.T) {
	total := money("333.33")
	payments := []*Payment{
		succeeded("p1", "100.00", PaymentKindDeposit),
		succeeded("p2", "133.33", PaymentKindPayment),
		{ID: "p3", Amount: money("99.99"), Kind: PaymentKindPayment, State: PaymentStateFailed},
	}

	p := ProjectTotals(total, payments)

	// amount_paid + balance_due == total_amount, exactly
	assert.True(t, p.AmountPaid.Add(p.BalanceDue).Equal(total))
}

func TestRefundableAmount_NoRefunds(t *testing.T) {
	orig := succeeded("p1", "200.00", PaymentKindPayment)

	got := RefundableAmount(orig, nil)

	assert.True(t, got.Equal(money("200.00")))
}

func TestRefundableAmount_PartiallyRefunded(t *testing.T) {
	orig := succeeded("p1", "200.00", PaymentKindPayment)
	origID := "p1"
	otherID := "p9"
	refunds := []*Payment{
		{ID: "r1", Amount: money("100.00"), Kind: PaymentKindRefund, State: PaymentStateSucceeded, OriginalPaymentID: &origID},
		// refund of a different payment must not count
		{ID: "r2", Amount: money("50.00"), Kind: PaymentKindRefund, State: PaymentStateSucceeded, OriginalPaymentID: &otherID},
		// failed refund must not count
		{ID: "r3", Amount: money("100.00"), Kind: PaymentKindRefund, State: PaymentStateFailed, OriginalPaymentID: &origID},
	}

	got := RefundableAmount(orig, refunds)

	assert.True(t, got.Equal(money("100.00")))
}

func TestRefundableAmount_Exhausted(t *testing.T) {
	orig := succeeded("p1", "200.00", PaymentKindPayment)
	origID := "p1"
	refunds := []*Payment{
		{ID: "r1", Amount: money("100.00"), Kind: PaymentKindRefund, State: PaymentStateSucceeded, OriginalPaymentID: &origID},
		{ID: "r2", Amount: money("100.00"), Kind: PaymentKindRefund, State: PaymentStateSucceeded, OriginalPaymentID: &origID},
	}

	got := RefundableAmount(orig, refunds)

	require.True(t, got.IsZero())
}
