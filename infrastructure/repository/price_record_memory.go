package repository

import (
	"context"
	"sync"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

type priceKey struct {
	store string
	sku   string
}

type memoryPriceRecordRepository struct {
	mu      sync.RWMutex
	records map[priceKey][]domain.PriceRecord
}

func NewMemoryPriceRecordRepository() PriceRecordRepository {
	return &memoryPriceRecordRepository{
		records: make(map[priceKey][]domain.PriceRecord),
	}
}

func (r *memoryPriceRecordRepository) Save(_ context.Context, record domain.PriceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := priceKey{store: record.Store, sku: record.ProductSKU}
	r.records[key] = append(r.records[key], record)
	return nil
}

// LastPrice devolve o registro mais recente por RegisteredAt; empates ficam com o último salvo
func (r *memoryPriceRecordRepository) LastPrice(_ context.Context, store, productSKU string) (*domain.PriceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.records[priceKey{store: store, sku: productSKU}]
	if len(history) == 0 {
		return nil, nil
	}

	latest := history[0]
	for _, record := range history[1:] {
		if !record.RegisteredAt.Before(latest.RegisteredAt) {
			latest = record
		}
	}

	return &latest, nil
}
