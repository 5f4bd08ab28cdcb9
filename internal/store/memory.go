package store

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/mpilhlt/bookreviews-api/internal/models"
)

// MemoryTable keeps records in memory. It is meant for development and tests.
type MemoryTable struct {
	mu      sync.RWMutex
	records []models.Record
	now     func() time.Time
}

// NewMemoryTable returns an empty MemoryTable.
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{now: time.Now}
}

func (m *MemoryTable) Create(ctx context.Context, fields map[string]any) (models.Record, error) {
	if err := ctx.Err(); err != nil {
		return models.Record{}, err
	}
	record := models.Record{
		ID:          newRecordID(),
		CreatedTime: formatCreatedTime(m.now()),
		Fields:      maps.Clone(fields),
	}

	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()

	return copyRecord(record), nil
}

func (m *MemoryTable) All(ctx context.Context, opts models.ListOptions) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	records := make([]models.Record, 0, len(m.records))
	for _, r := range m.records {
		records = append(records, copyRecord(r))
	}
	m.mu.RUnlock()

	return sortAndLimit(records, opts), nil
}

func copyRecord(r models.Record) models.Record {
	r.Fields = maps.Clone(r.Fields)
	return r
}
