package usecase

import (
	"context"
	"fmt"
	"sync"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/usecase/interfaces"
)

// memoryPaymentRecords mirrors the conditional semantics of the DynamoDB audit log.
type memoryPaymentRecords struct {
	mu      sync.Mutex
	rows    map[string]entities.PaymentRecord
	creates int
}

func newMemoryPaymentRecords() *memoryPaymentRecords {
	return &memoryPaymentRecords{rows: map[string]entities.PaymentRecord{}}
}

func (m *memoryPaymentRecords) Create(_ context.Context, rec entities.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if _, ok := m.rows[rec.Reference]; ok {
		return fmt.Errorf("%w: %s", interfaces.ErrPaymentReferenceExists, rec.Reference)
	}
	m.rows[rec.Reference] = rec
	return nil
}

func (m *memoryPaymentRecords) Release(_ context.Context, reference string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.rows[reference]; ok && rec.Status == entities.VerificationStatusPending && !rec.PromotionApplied {
		delete(m.rows, reference)
	}
	return nil
}

func (m *memoryPaymentRecords) RecordVerification(_ context.Context, rec entities.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[rec.Reference] = rec
	return nil
}

func (m *memoryPaymentRecords) GetByReference(_ context.Context, reference string) (entities.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[reference], nil
}

func (m *memoryPaymentRecords) createCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creates
}

// memoryListingStore overwrites the listing on every write, like the real adapters.
type memoryListingStore struct {
	mu       sync.Mutex
	writes   []entities.ListingPromotionState
	listings map[string]entities.ListingPromotionState
}

func newMemoryListingStore() *memoryListingStore {
	return &memoryListingStore{listings: map[string]entities.ListingPromotionState{}}
}

func (s *memoryListingStore) ApplyPromotion(_ context.Context, propertyID string, state entities.ListingPromotionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, state)
	s.listings[propertyID] = state
	return nil
}

func (s *memoryListingStore) snapshot(propertyID string) ([]entities.ListingPromotionState, entities.ListingPromotionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writes := append([]entities.ListingPromotionState(nil), s.writes...)
	return writes, s.listings[propertyID]
}

var (
	_ interfaces.IPaymentRecordRepository = (*memoryPaymentRecords)(nil)
	_ interfaces.IListingStore            = (*memoryListingStore)(nil)
)
