package model

import (
	"errors"
	"fmt"
	"strings"
)

// Network is a Solana cluster the dashboard can talk to.
type Network string

const (
	NetworkMainnet Network = "mainnet-beta"
	NetworkDevnet  Network = "devnet"
	NetworkTestnet Network = "testnet"
)

// ErrInvalidNetwork is returned for names outside the known cluster set.
var ErrInvalidNetwork = errors.New("invalid network")

// Networks lists every supported cluster in display order.
func Networks() []Network {
	return []Network{NetworkMainnet, NetworkDevnet, NetworkTestnet}
}

// ParseNetwork accepts the cluster name ("mainnet" is an alias for mainnet-beta).
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "mainnet-beta":
		return NetworkMainnet, nil
	case "devnet":
		return NetworkDevnet, nil
	case "testnet":
		return NetworkTestnet, nil
	}
	return "", fmt.Errorf("%w: %q (must be mainnet-beta, devnet or testnet)", ErrInvalidNetwork, s)
}

func (n Network) String() string {
	return string(n)
}
