package portfolio

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/pelletier/go-toml/v2"

	"github.com/AlexZinkM/nebula-dashboard/internal/common"
)

const (
	usdcMintAddressMainnet = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	nativeSymbol           = "SOL"
)

var ErrInvalidToken = errors.New("invalid token descriptor")

// TokenDescriptor is static configuration for one tracked asset.
type TokenDescriptor struct {
	Symbol   string `toml:"symbol" json:"symbol"`
	Name     string `toml:"name" json:"name"`
	Mint     string `toml:"mint" json:"mint"`
	Decimals uint8  `toml:"decimals" json:"decimals"`
	// PriceID is the CoinGecko coin id, empty when no fiat value is wanted.
	PriceID string `toml:"price_id" json:"priceId,omitempty"`
	Native  bool   `toml:"native" json:"native"`
}

// Validate checks a descriptor. Non-native tokens need a valid base58 mint.
func (t TokenDescriptor) Validate() error {
	if strings.TrimSpace(t.Symbol) == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidToken)
	}
	if t.Native {
		return nil
	}
	if _, err := solana.PublicKeyFromBase58(t.Mint); err != nil {
		return fmt.Errorf("%w: %s mint %q: %v", ErrInvalidToken, t.Symbol, t.Mint, err)
	}
	return nil
}

// DefaultTokens returns SOL and USDC, plus the NEBULA token when its mint is known.
func DefaultTokens(nebulaMint string) []TokenDescriptor {
	tokens := []TokenDescriptor{
		{Symbol: nativeSymbol, Name: "Solana", Mint: solana.SolMint.String(), Decimals: common.SOLDecimals, PriceID: "solana", Native: true},
		{Symbol: "USDC", Name: "USD Coin", Mint: usdcMintAddressMainnet, Decimals: common.USDCDecimals, PriceID: "usd-coin"},
	}
	if nebulaMint != "" {
		tokens = append(tokens, TokenDescriptor{Symbol: "NEBULA", Name: "Nebula", Mint: nebulaMint, Decimals: common.SOLDecimals})
	}
	return tokens
}

type tokensFile struct {
	Tokens []TokenDescriptor `toml:"tokens"`
}

// LoadTokens reads a TOML file with a [[tokens]] array.
func LoadTokens(path string) ([]TokenDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokens file: %w", err)
	}

	var f tokensFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse tokens file: %w", err)
	}
	if len(f.Tokens) == 0 {
		return nil, fmt.Errorf("%w: %s lists no tokens", ErrInvalidToken, path)
	}

	seen := make(map[string]bool, len(f.Tokens))
	for _, t := range f.Tokens {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if seen[t.Symbol] {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrInvalidToken, t.Symbol)
		}
		seen[t.Symbol] = true
	}
	return f.Tokens, nil
}
