package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/api-sage/fund-transfer-service/src/internal/domain"
)

// TransferRepository keeps the record of every completed transfer in
// process memory, keyed by transfer id.
type TransferRepository struct {
	mu      sync.RWMutex
	records map[string]domain.TransferRecord
}

func NewTransferRepository() *TransferRepository {
	return &TransferRepository{records: make(map[string]domain.TransferRecord)}
}

func (r *TransferRepository) Create(_ context.Context, record domain.TransferRecord) (domain.TransferRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		return domain.TransferRecord{}, fmt.Errorf("transfer id %s already recorded", record.ID)
	}
	r.records[record.ID] = record
	return record, nil
}

func (r *TransferRepository) GetByID(_ context.Context, transferID string) (domain.TransferRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[transferID]
	if !exists {
		return domain.TransferRecord{}, fmt.Errorf("transfer id %s: %w", transferID, domain.ErrRecordNotFound)
	}
	return record, nil
}

func (r *TransferRepository) List(_ context.Context) ([]domain.TransferRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]domain.TransferRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (r *TransferRepository) Clear(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]domain.TransferRecord)
}
