package explorer

import (
	"strings"

	"github.com/AlexZinkM/nebula-dashboard/internal/metrics"
)

// All is the wildcard value for Filter.Type and Filter.Status.
const All = "all"

// Filter selects records. Empty Type/Status behave like All.
type Filter struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Search string `json:"search"`
}

// Matches reports whether r passes every criterion. Search is a case-insensitive
// substring match against the signature, sender and receiver.
func (f Filter) Matches(r LedgerRecord) bool {
	if f.Type != "" && f.Type != All && string(r.Type) != f.Type {
		return false
	}
	if f.Status != "" && f.Status != All && string(r.Status) != f.Status {
		return false
	}

	q := strings.ToLower(f.Search)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Signature), q) ||
		strings.Contains(strings.ToLower(r.SenderAddress), q) {
		return true
	}
	return r.ReceiverAddress != nil && strings.Contains(strings.ToLower(*r.ReceiverAddress), q)
}

// Apply returns the records that match f, in their original order.
func Apply(records []LedgerRecord, f Filter) []LedgerRecord {
	metrics.FilterRuns.Inc()
	out := make([]LedgerRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
