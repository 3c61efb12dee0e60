package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"github.com/AlexZinkM/nebula-dashboard/internal/client"
	"github.com/AlexZinkM/nebula-dashboard/internal/common"
	"github.com/AlexZinkM/nebula-dashboard/internal/model"
	"github.com/AlexZinkM/nebula-dashboard/internal/wallet"
)

// Source supplies ledger records.
type Source interface {
	Records(ctx context.Context) ([]LedgerRecord, error)
}

var recordNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("nebula-dashboard/ledger-record"))

// RecordID derives a stable id from a transaction signature.
func RecordID(signature string) string {
	return uuid.NewSHA1(recordNamespace, []byte(signature)).String()
}

// FileSource reads a JSON array of records.
type FileSource struct {
	Path string
}

func (s FileSource) Records(_ context.Context) ([]LedgerRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var records []LedgerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records file: %w", err)
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if records[i].ID == "" {
			records[i].ID = RecordID(records[i].Signature)
		}
	}
	return records, nil
}

// Well-known programs used for classification.
var (
	MemoProgramID          = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
	MemoV1ProgramID        = solana.MustPublicKeyFromBase58("Memo1UhkJRfHyvLMcVucJwxXeuD728EqVDDwQDxFMNo")
	TokenMetadataProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	ComputeBudgetProgramID = solana.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")
)

// Programs names the deployment-specific programs. Zero values never match.
type Programs struct {
	MissionRegistry solana.PublicKey
	Staking         solana.PublicKey
}

// TransactionReader returns parsed history for an address.
type TransactionReader interface {
	RecentTransactions(ctx context.Context, owner solana.PublicKey, limit int) ([]client.ParsedTransaction, error)
}

// SessionState exposes the connected address and network.
type SessionState interface {
	State() wallet.State
}

// ChainSource builds records from the connected address's recent transactions.
type ChainSource struct {
	Session  SessionState
	Readers  func(model.Network) TransactionReader
	Programs Programs
	Limit    int
}

func (s ChainSource) Records(ctx context.Context) ([]LedgerRecord, error) {
	st := s.Session.State()
	if !st.Connected || st.Address == nil {
		return nil, wallet.ErrNotConnected
	}

	txs, err := s.Readers(st.Network).RecentTransactions(ctx, *st.Address, s.Limit)
	if err != nil {
		return nil, err
	}

	records := make([]LedgerRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, s.Programs.toRecord(*st.Address, tx))
	}
	return records, nil
}

func (p Programs) toRecord(owner solana.PublicKey, tx client.ParsedTransaction) LedgerRecord {
	sig := tx.Signature.String()
	typ, program := p.classify(owner, tx)

	r := LedgerRecord{
		ID:            RecordID(sig),
		Type:          typ,
		Status:        StatusSuccess,
		SenderAddress: tx.FeePayer.String(),
		Signature:     sig,
		ProgramID:     program.String(),
		Fee:           common.LamportsToSOL(tx.Fee),
		CreatedAt:     tx.BlockTime,
	}
	if tx.Failed {
		r.Status = StatusFailed
	}

	if t := tx.Transfer; t != nil {
		if t.From != "" {
			r.SenderAddress = t.From
		}
		if t.To != "" {
			to := t.To
			r.ReceiverAddress = &to
		}
		amount := t.Amount
		r.Amount = &amount
	}
	r.Data = recordData(tx)
	return r
}

// classify picks the record type from the first program that is not compute budget.
func (p Programs) classify(owner solana.PublicKey, tx client.ParsedTransaction) (RecordType, solana.PublicKey) {
	programs := make([]solana.PublicKey, 0, len(tx.Instructions))
	for _, id := range tx.Programs() {
		if !id.Equals(ComputeBudgetProgramID) {
			programs = append(programs, id)
		}
	}
	if len(programs) == 0 {
		return TypeSmartContractCall, solana.PublicKey{}
	}

	has := func(want solana.PublicKey) bool {
		if want.IsZero() {
			return false
		}
		for _, id := range programs {
			if id.Equals(want) {
				return true
			}
		}
		return false
	}

	switch {
	case has(p.MissionRegistry):
		return TypeMissionLog, p.MissionRegistry
	case has(p.Staking):
		if tx.Transfer != nil && tx.Transfer.To == owner.String() {
			return TypeRewardClaim, p.Staking
		}
		return TypeAgentStaking, p.Staking
	case has(TokenMetadataProgramID):
		return TypeNFTMint, TokenMetadataProgramID
	case has(MemoProgramID):
		return TypeDataStorage, MemoProgramID
	case has(MemoV1ProgramID):
		return TypeDataStorage, MemoV1ProgramID
	}

	for _, id := range programs {
		switch {
		case id.Equals(solana.SystemProgramID), id.Equals(solana.TokenProgramID),
			id.Equals(solana.Token2022ProgramID), id.Equals(solana.SPLAssociatedTokenAccountProgramID):
			continue
		default:
			return TypeSmartContractCall, id
		}
	}
	return TypeTokenTransfer, programs[0]
}

func recordData(tx client.ParsedTransaction) *json.RawMessage {
	payload := map[string]string{}
	for _, ix := range tx.Instructions {
		if (ix.Program.Equals(MemoProgramID) || ix.Program.Equals(MemoV1ProgramID)) && utf8.Valid(ix.Data) {
			payload["memo"] = string(ix.Data)
			break
		}
	}
	if tx.Transfer != nil && tx.Transfer.Mint != nil {
		payload["mint"] = tx.Transfer.Mint.String()
	}
	if len(payload) == 0 {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	msg := json.RawMessage(raw)
	return &msg
}
