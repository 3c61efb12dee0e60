package common

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	SOLDecimals  = 9 // SOL has 9 decimals (lamports)
	USDCDecimals = 6 // USDC has 6 decimals (micro)
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrAmountOverflow = errors.New("amount does not fit in 64 bits")
)

var maxUint64 = decimal.NewFromUint64(math.MaxUint64)

// LamportsToSOL converts lamports to SOL without float precision loss.
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return FromBaseUnits(lamports, SOLDecimals)
}

// SOLToLamports converts a SOL amount to lamports. Digits beyond 9 decimals are truncated.
func SOLToLamports(sol decimal.Decimal) (uint64, error) {
	return ToBaseUnits(sol, SOLDecimals)
}

// FromBaseUnits converts the smallest on-chain unit to the display unit.
// Example: FromBaseUnits(24981836, 9) = 0.024981836
func FromBaseUnits(raw uint64, decimals uint8) decimal.Decimal {
	return decimal.NewFromUint64(raw).Shift(-int32(decimals))
}

// ToBaseUnits converts a display amount to the smallest on-chain unit.
// Example: ToBaseUnits(0.024981836, 9) = 24981836
func ToBaseUnits(amount decimal.Decimal, decimals uint8) (uint64, error) {
	if amount.IsNegative() {
		return 0, ErrNegativeAmount
	}
	raw := amount.Shift(int32(decimals)).Truncate(0)
	if raw.GreaterThan(maxUint64) {
		return 0, ErrAmountOverflow
	}
	return raw.BigInt().Uint64(), nil
}

// ParseAmount parses a user-supplied, non-negative decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// ShortAddress renders a base58 address as "AAAA…ZZZZ" for narrow views.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:4] + "…" + addr[len(addr)-4:]
}
