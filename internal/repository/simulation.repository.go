package repository

import (
	"context"
	"fmt"
	"simcompare/internal/domain"
	"simcompare/pkg/simbackend"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSimulationCacheSize bounds how many (token, simulation) pairs
// are kept in memory
const DefaultSimulationCacheSize = 512

type SimulationRepository interface {
	// Get returns a result the caller owns and may modify
	Get(ctx context.Context, id string) (*domain.SimulationResult, error)
	List(ctx context.Context) ([]domain.SimulationHistoryEntry, error)
}

type simulationBackendClient interface {
	GetSimulation(ctx context.Context, id string) (*domain.SimulationResult, error)
	ListSimulations(ctx context.Context) ([]domain.SimulationHistoryEntry, error)
}

type simulationCacheKey struct {
	accessToken  string
	simulationID string
}

// finished simulations never change, so Get can cache them. entries
// are scoped to the caller's token so one user can't read another
// user's cached result, and the least recently used entry is evicted
// once the cache is full
type simulationRepositoryHandler struct {
	Client simulationBackendClient

	cache *lru.Cache[simulationCacheKey, domain.SimulationResult]
}

func NewSimulationRepository(client simulationBackendClient) SimulationRepository {
	repo, err := NewSimulationRepositoryWithCacheSize(client, DefaultSimulationCacheSize)
	if err != nil {
		// only fails for a non-positive size
		panic(err)
	}
	return repo
}

func NewSimulationRepositoryWithCacheSize(client simulationBackendClient, size int) (SimulationRepository, error) {
	cache, err := lru.New[simulationCacheKey, domain.SimulationResult](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation cache: %w", err)
	}
	return &simulationRepositoryHandler{
		Client: client,
		cache:  cache,
	}, nil
}

func (h *simulationRepositoryHandler) Get(ctx context.Context, id string) (*domain.SimulationResult, error) {
	token, _ := simbackend.AccessTokenFromContext(ctx)
	key := simulationCacheKey{
		accessToken:  token,
		simulationID: id,
	}

	if cached, ok := h.cache.Get(key); ok {
		out := cached.Clone()
		return &out, nil
	}

	result, err := h.Client.GetSimulation(ctx, id)
	if err != nil {
		return nil, err
	}

	h.cache.Add(key, result.Clone())

	return result, nil
}

func (h *simulationRepositoryHandler) List(ctx context.Context) ([]domain.SimulationHistoryEntry, error) {
	out, err := h.Client.ListSimulations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation history: %w", err)
	}
	return out, nil
}
