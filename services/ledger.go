package services

import (
	"sync"

	"github.com/samber/lo"
)

// Ledger is the ordered list of pricing records for one session, most
// recently added first. It is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	records []PricingRecord
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add inserts the record at the front. No deduplication is done.
func (l *Ledger) Add(record PricingRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append([]PricingRecord{record}, l.records...)
}

// Remove deletes the record with the given id and returns it. Unknown ids
// are ignored and ok is false.
func (l *Ledger) Remove(id string) (PricingRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, idx, ok := lo.FindIndexOf(l.records, func(r PricingRecord) bool {
		return r.ID == id
	})
	if !ok {
		return PricingRecord{}, false
	}
	l.records = append(l.records[:idx:idx], l.records[idx+1:]...)
	return record, true
}

// Find returns the record with the given id.
func (l *Ledger) Find(id string) (PricingRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.Find(l.records, func(r PricingRecord) bool {
		return r.ID == id
	})
}

// List returns a copy of the records in ledger order.
func (l *Ledger) List() []PricingRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]PricingRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// IsEmpty reports whether the ledger has no records.
func (l *Ledger) IsEmpty() bool {
	return l.Len() == 0
}
