package explorer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidRecord  = errors.New("invalid record")
)

type RecordType string

const (
	TypeMissionLog        RecordType = "mission_log"
	TypeAgentStaking      RecordType = "agent_staking"
	TypeRewardClaim       RecordType = "reward_claim"
	TypeDataStorage       RecordType = "data_storage"
	TypeNFTMint           RecordType = "nft_mint"
	TypeTokenTransfer     RecordType = "token_transfer"
	TypeSmartContractCall RecordType = "smart_contract_call"
)

// RecordTypes lists every type in display order.
func RecordTypes() []RecordType {
	return []RecordType{
		TypeMissionLog, TypeAgentStaking, TypeRewardClaim, TypeDataStorage,
		TypeNFTMint, TypeTokenTransfer, TypeSmartContractCall,
	}
}

func (t RecordType) Valid() bool {
	for _, v := range RecordTypes() {
		if v == t {
			return true
		}
	}
	return false
}

type RecordStatus string

const (
	StatusSuccess RecordStatus = "success"
	StatusFailed  RecordStatus = "failed"
)

func RecordStatuses() []RecordStatus {
	return []RecordStatus{StatusSuccess, StatusFailed}
}

func (s RecordStatus) Valid() bool {
	return s == StatusSuccess || s == StatusFailed
}

// LedgerRecord is one on-chain transaction as the explorer shows it. Optional fields
// are nil when absent.
type LedgerRecord struct {
	ID              string           `json:"id"`
	Type            RecordType       `json:"type"`
	Status          RecordStatus     `json:"status"`
	SenderAddress   string           `json:"sender_address"`
	ReceiverAddress *string          `json:"receiver_address,omitempty"`
	Signature       string           `json:"signature"`
	ProgramID       string           `json:"program_id"`
	Fee             decimal.Decimal  `json:"fee"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Data            *json.RawMessage `json:"data,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// Validate checks the enumerations and required identifiers.
func (r LedgerRecord) Validate() error {
	if r.Signature == "" {
		return fmt.Errorf("%w: missing signature", ErrInvalidRecord)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %s: unknown type %q", ErrInvalidRecord, r.Signature, r.Type)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: %s: unknown status %q", ErrInvalidRecord, r.Signature, r.Status)
	}
	return nil
}

// Find returns the record with the given id.
func Find(records []LedgerRecord, id string) (LedgerRecord, error) {
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return LedgerRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}
