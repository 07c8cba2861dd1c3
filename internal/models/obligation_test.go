package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

func TestDeriveStatus(t *testing.T) {
	type args struct {
		original, settled, interest, discount string
	}
	tests := []struct {
		name string
		args args
		want ObligationStatus
	}{
		{
			name: "nothing settled",
			args: args{"1200.00", "0", "0", "0"},
			want: ObligationStatusPending,
		},
		{
			name: "partially settled",
			args: args{"1200.00", "200.00", "0", "0"},
			want: ObligationStatusPartial,
		},
		{
			name: "fully settled",
			args: args{"1200.00", "1200.00", "0", "0"},
			want: ObligationStatusSettled,
		},
		{
			name: "overpaid below tolerance",
			args: args{"100.00", "100.00", "0", "0.01"},
			want: ObligationStatusSettled,
		},
		{
			name: "one cent left is partial",
			args: args{"100.00", "99.99", "0", "0"},
			want: ObligationStatusPartial,
		},
		{
			name: "interest and discount",
			args: args{"1000.00", "1040.00", "50.00", "10.00"},
			want: ObligationStatusSettled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(MustMoney(tt.args.original), MustMoney(tt.args.settled), MustMoney(tt.args.interest), MustMoney(tt.args.discount))
			assert.Equal(t, tt.want, got)
			// pure: same inputs, same output
			assert.Equal(t, got, DeriveStatus(MustMoney(tt.args.original), MustMoney(tt.args.settled), MustMoney(tt.args.interest), MustMoney(tt.args.discount)))
		})
	}
}

func TestObligation_ApplySettlement(t *testing.T) {
	first := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC)

	o := Obligation{
		ID:             7,
		Direction:      ObligationPayable,
		OriginalAmount: MustMoney("1200.00"),
		Status:         ObligationStatusPending,
	}

	partial, err := o.ApplySettlement(MustMoney("200.00"), ZeroMoney(), ZeroMoney(), first)
	require.NoError(t, err)
	assert.Equal(t, ObligationStatusPartial, partial.Status)
	assert.Equal(t, "1000.00", partial.Remaining().String())
	assert.Equal(t, first, partial.SettledAt.Time)

	settled, err := partial.ApplySettlement(MustMoney("1000.00"), ZeroMoney(), ZeroMoney(), second)
	require.NoError(t, err)
	assert.Equal(t, ObligationStatusSettled, settled.Status)
	assert.Equal(t, first, settled.SettledAt.Time, "settledAt is set once")

	_, err = settled.ApplySettlement(MustMoney("1.00"), ZeroMoney(), ZeroMoney(), second)
	assert.ErrorIs(t, err, common.ErrOverSettlement)
}

func TestObligation_CheckSettlement(t *testing.T) {
	o := Obligation{OriginalAmount: MustMoney("1200.00"), InterestAccrued: MustMoney("10.00")}

	tests := []struct {
		name     string
		amount   string
		interest string
		discount string
		wantErr  error
	}{
		{name: "zero amount", amount: "0", interest: "0", discount: "0", wantErr: common.ErrInvalidAmount},
		{name: "negative interest", amount: "1", interest: "-1", discount: "0", wantErr: common.ErrInvalidAmount},
		{name: "negative discount", amount: "1", interest: "0", discount: "-1", wantErr: common.ErrInvalidAmount},
		{name: "exact remaining", amount: "1210.00", interest: "0", discount: "0"},
		{name: "remaining with new interest", amount: "1215.00", interest: "5.00", discount: "0"},
		{name: "discount lowers remaining", amount: "1200.01", interest: "0", discount: "10.00", wantErr: common.ErrOverSettlement},
		{name: "over by one cent", amount: "1210.01", interest: "0", discount: "0", wantErr: common.ErrOverSettlement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.CheckSettlement(MustMoney(tt.amount), MustMoney(tt.interest), MustMoney(tt.discount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestObligationDirection_MovementDirection(t *testing.T) {
	assert.Equal(t, DirectionCredit, ObligationReceivable.MovementDirection())
	assert.Equal(t, DirectionDebit, ObligationPayable.MovementDirection())
	assert.False(t, ObligationDirection("loan").Valid())
}

func TestDoCreateObligationRequest_ToCreateIn(t *testing.T) {
	req := DoCreateObligationRequest{
		Counterparty:    "ACME",
		OriginalAmount:  MustMoney("10"),
		DueDate:         "2025-02-02",
		SourceReference: "PO-1",
	}
	in, err := req.ToCreateIn(ObligationPayable)
	require.NoError(t, err)
	assert.Equal(t, ObligationPayable, in.Direction)
	assert.True(t, in.SourceReference.Valid)
	assert.False(t, in.CostCenterID.Valid)
	assert.True(t, in.IssueDate.IsZero())

	req.DueDate = "02-02-2025"
	_, err = req.ToCreateIn(ObligationPayable)
	assert.ErrorIs(t, err, common.ErrInvalidFormatDate)
}
