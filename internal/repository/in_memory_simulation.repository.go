package repository

import (
	"context"
	"fmt"
	"simcompare/internal/domain"
)

// inMemorySimulationRepository serves results that were loaded up front,
// e.g. from exported json files
type inMemorySimulationRepository struct {
	results map[string]domain.SimulationResult
	order   []string
}

func NewInMemorySimulationRepository(results []domain.SimulationResult) (SimulationRepository, error) {
	h := inMemorySimulationRepository{
		results: map[string]domain.SimulationResult{},
		order:   []string{},
	}
	for _, r := range results {
		if r.ID == "" {
			return nil, fmt.Errorf("simulation result has no id: %w", domain.ErrInvalidInput)
		}
		if _, ok := h.results[r.ID]; ok {
			return nil, fmt.Errorf("simulation %s loaded twice: %w", r.ID, domain.ErrInvalidInput)
		}
		h.results[r.ID] = r.Clone()
		h.order = append(h.order, r.ID)
	}
	return h, nil
}

func (h inMemorySimulationRepository) Get(ctx context.Context, id string) (*domain.SimulationResult, error) {
	r, ok := h.results[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSimulationNotFound, id)
	}
	out := r.Clone()
	return &out, nil
}

func (h inMemorySimulationRepository) List(ctx context.Context) ([]domain.SimulationHistoryEntry, error) {
	out := []domain.SimulationHistoryEntry{}
	for _, id := range h.order {
		out = append(out, h.results[id].HistoryEntry())
	}
	return out, nil
}
