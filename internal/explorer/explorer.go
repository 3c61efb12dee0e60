// Package explorer filters ledger records and keeps the explorer's selection and
// clipboard acknowledgment state.
package explorer

import (
	"sync"
	"time"

	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
)

const DefaultCopyAck = 2 * time.Second

// Clipboard receives copied text.
type Clipboard interface {
	Copy(text string) error
}

// Explorer is the view state over a record list. All methods are safe for
// concurrent use.
type Explorer struct {
	clipboard Clipboard
	copyAck   time.Duration

	mu       sync.Mutex
	records  []LedgerRecord
	filter   Filter
	visible  []LedgerRecord
	selected string
	copied   map[string]*time.Timer
	closed   bool
}

func New(clipboard Clipboard, copyAck time.Duration) *Explorer {
	if copyAck <= 0 {
		copyAck = DefaultCopyAck
	}
	return &Explorer{
		clipboard: clipboard,
		copyAck:   copyAck,
		filter:    Filter{Type: All, Status: All},
		visible:   []LedgerRecord{},
		copied:    make(map[string]*time.Timer),
	}
}

// SetRecords replaces the record list and re-applies the filter. A selection whose
// record disappeared is cleared.
func (e *Explorer) SetRecords(records []LedgerRecord) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.records = append([]LedgerRecord(nil), records...)
	e.visible = Apply(e.records, e.filter)
	if e.selected != "" {
		if _, err := Find(e.records, e.selected); err != nil {
			e.selected = ""
		}
	}
}

// SetFilter replaces the filter and recomputes the visible records.
func (e *Explorer) SetFilter(f Filter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter = f
	e.visible = Apply(e.records, f)
}

func (e *Explorer) Filter() Filter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

// Records returns every record regardless of the filter.
func (e *Explorer) Records() []LedgerRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]LedgerRecord(nil), e.records...)
}

// Visible returns the records that pass the current filter.
func (e *Explorer) Visible() []LedgerRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]LedgerRecord{}, e.visible...)
}

// Select opens the detail view for the record with id.
func (e *Explorer) Select(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := Find(e.records, id); err != nil {
		return err
	}
	e.selected = id
	return nil
}

// Selected returns the record in the detail view, if any.
func (e *Explorer) Selected() (LedgerRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected == "" {
		return LedgerRecord{}, false
	}
	r, err := Find(e.records, e.selected)
	return r, err == nil
}

func (e *Explorer) ClearSelection() {
	e.mu.Lock()
	e.selected = ""
	e.mu.Unlock()
}

// Copy writes value to the clipboard without waiting for it and marks field as
// copied for the acknowledgment period. Clipboard failures are only logged.
func (e *Explorer) Copy(field, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	if e.clipboard != nil {
		go func(clip Clipboard) {
			if err := clip.Copy(value); err != nil {
				logger.Warn("Failed to copy %s: %v", field, err)
			}
		}(e.clipboard)
	}

	if t, ok := e.copied[field]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(e.copyAck, func() {
		e.mu.Lock()
		if e.copied[field] == timer {
			delete(e.copied, field)
		}
		e.mu.Unlock()
	})
	e.copied[field] = timer
}

// Copied reports whether field was copied within the acknowledgment period.
func (e *Explorer) Copied(field string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.copied[field]
	return ok
}

// CopyAck is how long a copied flag stays set.
func (e *Explorer) CopyAck() time.Duration {
	return e.copyAck
}

// Close stops pending acknowledgment timers.
func (e *Explorer) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	for field, t := range e.copied {
		t.Stop()
		delete(e.copied, field)
	}
}
