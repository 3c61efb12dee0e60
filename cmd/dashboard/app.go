package main

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/AlexZinkM/nebula-dashboard/internal/client"
	"github.com/AlexZinkM/nebula-dashboard/internal/config"
	"github.com/AlexZinkM/nebula-dashboard/internal/explorer"
	"github.com/AlexZinkM/nebula-dashboard/internal/keystore"
	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
	"github.com/AlexZinkM/nebula-dashboard/internal/model"
	"github.com/AlexZinkM/nebula-dashboard/internal/portfolio"
	"github.com/AlexZinkM/nebula-dashboard/internal/prefs"
	"github.com/AlexZinkM/nebula-dashboard/internal/theme"
	"github.com/AlexZinkM/nebula-dashboard/internal/wallet"
)

// app holds the components shared by the HTTP server and the terminal dashboard.
type app struct {
	cfg        *config.Config
	themes     *theme.Store
	session    *wallet.Session
	aggregator *portfolio.Aggregator
	records    explorer.Source
}

func openThemes(cfg *config.Config) (*theme.Store, prefs.Store, error) {
	path, err := cfg.ResolvePrefsPath()
	if err != nil {
		return nil, nil, err
	}
	store, err := prefs.Open(path)
	if err != nil {
		return nil, nil, err
	}
	themes := theme.NewStore(store)
	themes.Load()
	return themes, store, nil
}

// newApp wires the components. The keystore password must already be in memory.
func newApp(cfg *config.Config) (*app, error) {
	if cfg.KeystorePath == "" {
		return nil, errors.New("KEYSTORE_PATH is required")
	}

	themes, store, err := openThemes(cfg)
	if err != nil {
		return nil, err
	}

	session := wallet.NewSession(
		keystore.NewAdapter(cfg.KeystorePath, config.GetKeystorePasswordBytes),
		wallet.Options{
			Network:      cfg.DefaultNetwork(),
			Prefs:        store,
			Dial:         wallet.NewDialer(cfg.RPCURL),
			PollInterval: cfg.BalancePollInterval,
			ErrorTTL:     cfg.ErrorTTL,
		},
	)

	tokens := portfolio.DefaultTokens(cfg.NebulaTokenMint)
	if cfg.TokensFile != "" {
		if tokens, err = portfolio.LoadTokens(cfg.TokensFile); err != nil {
			return nil, err
		}
	}
	aggregator := portfolio.NewAggregator(session, portfolio.Options{
		Tokens: tokens,
		Accounts: func(n model.Network) portfolio.TokenAccountReader {
			return client.NewSolanaClient(cfg.RPCURL(n))
		},
		Prices:          client.NewCoinGeckoClient(cfg.CoinGeckoURL),
		Currency:        cfg.FiatCurrency,
		RefreshInterval: cfg.BalancePollInterval,
	})

	records, err := newRecordSource(cfg, session)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:        cfg,
		themes:     themes,
		session:    session,
		aggregator: aggregator,
		records:    records,
	}, nil
}

// newRecordSource prefers RECORDS_FILE; otherwise records come from the chain.
func newRecordSource(cfg *config.Config, session *wallet.Session) (explorer.Source, error) {
	if cfg.RecordsFile != "" {
		logger.Info("Reading ledger records from %s", cfg.RecordsFile)
		return explorer.FileSource{Path: cfg.RecordsFile}, nil
	}

	var programs explorer.Programs
	var err error
	if programs.MissionRegistry, err = optionalKey(cfg.MissionRegistryProgram); err != nil {
		return nil, fmt.Errorf("invalid MISSION_REGISTRY_PROGRAM: %w", err)
	}
	if programs.Staking, err = optionalKey(cfg.StakingProgram); err != nil {
		return nil, fmt.Errorf("invalid STAKING_PROGRAM: %w", err)
	}

	return explorer.ChainSource{
		Session: session,
		Readers: func(n model.Network) explorer.TransactionReader {
			return client.NewSolanaClient(cfg.RPCURL(n))
		},
		Programs: programs,
		Limit:    cfg.RecordsLimit,
	}, nil
}

func optionalKey(s string) (solana.PublicKey, error) {
	if s == "" {
		return solana.PublicKey{}, nil
	}
	return solana.PublicKeyFromBase58(s)
}

func (a *app) Close() {
	a.session.Close()
}
