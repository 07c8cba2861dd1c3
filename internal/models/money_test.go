package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_arithmetic(t *testing.T) {
	a := MustMoney("1500")
	b := MustMoney("1200.005")

	assert.Equal(t, "1500.00", a.String())
	assert.Equal(t, "1200.01", b.String())
	assert.Equal(t, "299.99", a.Sub(b).String())
	assert.Equal(t, "2700.01", a.Add(b).String())
	assert.Equal(t, "-1500.00", a.Neg().String())
	assert.Equal(t, "1500.00", a.Neg().Abs().String())
	assert.Equal(t, "4500.00", a.MulInt(3).String())
	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.GreaterThanOrEqual(MustMoney("1500.00")))
	assert.Equal(t, 0, a.Cmp(MustMoney("1500.000")))
	assert.Equal(t, "3000.01", SumMoney(a, b, MustMoney("300")).String())
}

func TestMoney_DivRound(t *testing.T) {
	tests := []struct {
		in   string
		n    int64
		want string
	}{
		{"100.00", 3, "33.33"},
		{"200.00", 3, "66.67"},
		{"0.05", 2, "0.03"},
		{"-0.05", 2, "-0.03"},
		{"0.01", 3, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MustMoney(tt.in).DivRound(tt.n).String())
		})
	}
}

func TestMoney_IsEffectivelyZero(t *testing.T) {
	assert.True(t, ZeroMoney().IsEffectivelyZero())
	// construction rounds first
	assert.False(t, NewMoney(decimal.RequireFromString("0.009")).IsEffectivelyZero())
	assert.False(t, MustMoney("0.01").IsEffectivelyZero())
	assert.False(t, MustMoney("-0.01").IsEffectivelyZero())
	assert.True(t, Money{d: decimal.RequireFromString("-0.004")}.IsEffectivelyZero())
}

func TestMoney_JSON(t *testing.T) {
	type payload struct {
		Amount Money `json:"amount"`
	}

	b, err := json.Marshal(payload{Amount: MustMoney("10.5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"10.50"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"99.999"}`), &p))
	assert.Equal(t, "100.00", p.Amount.String())

	require.NoError(t, json.Unmarshal([]byte(`{"amount":12.3}`), &p))
	assert.Equal(t, "12.30", p.Amount.String())

	assert.Error(t, json.Unmarshal([]byte(`{"amount":"abc"}`), &p))
}

func TestMoney_SQL(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan([]byte("1234.56")))
	assert.Equal(t, "1234.56", m.String())

	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "1234.56", v)

	_, err = NewMoneyFromString("1,5")
	assert.Error(t, err)
}
