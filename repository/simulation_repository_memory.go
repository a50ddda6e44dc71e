package repository

import (
	"sync"

	"smokyhost/domain"
)

// SimulationRepositoryMemory keeps the most recent simulation runs in memory.
type SimulationRepositoryMemory struct {
	mu    sync.Mutex
	data  []domain.SimulationRecord
	limit int
}

// NewSimulationRepositoryMemory creates a log holding at most limit runs.
// A limit of zero or less keeps everything.
func NewSimulationRepositoryMemory(limit int) *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		data:  []domain.SimulationRecord{},
		limit: limit,
	}
}

// Save appends the run, dropping the oldest one when the log is full.
func (r *SimulationRepositoryMemory) Save(record domain.SimulationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if r.limit > 0 && len(r.data) > r.limit {
		r.data = r.data[len(r.data)-r.limit:]
	}
	return nil
}

// List returns a copy of the log, oldest first.
func (r *SimulationRepositoryMemory) List() ([]domain.SimulationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.SimulationRecord, len(r.data))
	copy(out, r.data)
	return out, nil
}
