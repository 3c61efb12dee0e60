package explorer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Summary aggregates a set of records.
type Summary struct {
	Total       int                `json:"total"`
	Succeeded   int                `json:"succeeded"`
	Failed      int                `json:"failed"`
	SuccessRate decimal.Decimal    `json:"successRate"`
	ByType      map[RecordType]int `json:"byType"`
	TotalFee    decimal.Decimal    `json:"totalFee"`
	AverageFee  decimal.Decimal    `json:"averageFee"`
}

// Stats counts records by status and type and sums their fees. Rates and averages
// are zero for an empty set.
func Stats(records []LedgerRecord) Summary {
	s := Summary{
		SuccessRate: decimal.Zero,
		ByType:      make(map[RecordType]int),
		TotalFee:    decimal.Zero,
		AverageFee:  decimal.Zero,
	}
	for _, r := range records {
		s.Total++
		switch r.Status {
		case StatusSuccess:
			s.Succeeded++
		case StatusFailed:
			s.Failed++
		}
		s.ByType[r.Type]++
		s.TotalFee = s.TotalFee.Add(r.Fee)
	}
	if s.Total > 0 {
		n := decimal.NewFromInt(int64(s.Total))
		s.SuccessRate = decimal.NewFromInt(int64(s.Succeeded)).DivRound(n, 4)
		s.AverageFee = s.TotalFee.DivRound(n, 9)
	}
	return s
}

// FindBySignature returns the record carrying the given transaction signature.
func FindBySignature(records []LedgerRecord, signature string) (LedgerRecord, error) {
	for _, r := range records {
		if r.Signature == signature {
			return r, nil
		}
	}
	return LedgerRecord{}, fmt.Errorf("%w: signature %s", ErrRecordNotFound, signature)
}

// Verification reports whether a record's transaction landed.
type Verification struct {
	ID        string       `json:"id"`
	Signature string       `json:"signature"`
	Status    RecordStatus `json:"status"`
	Verified  bool         `json:"verified"`
}

// Verify reports r's outcome. Only successful records are verified.
func Verify(r LedgerRecord) Verification {
	return Verification{
		ID:        r.ID,
		Signature: r.Signature,
		Status:    r.Status,
		Verified:  r.Status == StatusSuccess,
	}
}
