package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLamportsToSOL(t *testing.T) {
	tests := []struct {
		lamports uint64
		want     string
	}{
		{0, "0"},
		{1, "0.000000001"},
		{24981836, "0.024981836"},
		{1_000_000_000, "1"},
		{2_500_000_000, "2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, LamportsToSOL(tt.lamports).String())
		})
	}
}

func TestToBaseUnits(t *testing.T) {
	got, err := SOLToLamports(decimal.RequireFromString("0.024981836"))
	require.NoError(t, err)
	assert.Equal(t, uint64(24981836), got)

	// digits past the token precision are truncated, not rounded
	got, err = ToBaseUnits(decimal.RequireFromString("1.2345679"), USDCDecimals)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234567), got)

	_, err = ToBaseUnits(decimal.RequireFromString("-1"), USDCDecimals)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = ToBaseUnits(decimal.RequireFromString("99999999999999999999"), SOLDecimals)
	assert.ErrorIs(t, err, ErrAmountOverflow)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" 1.5 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1.5")))

	_, err = ParseAmount("")
	assert.Error(t, err)

	_, err = ParseAmount("abc")
	assert.Error(t, err)

	_, err = ParseAmount("-0.1")
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "AAA1…WXYZ", ShortAddress("AAA111111111111111WXYZ"))
	assert.Equal(t, "short", ShortAddress("short"))
}
