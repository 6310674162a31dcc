package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedComparison is a named set of simulations a user wants to
// compare again later
type SavedComparison struct {
	SavedComparisonID uuid.UUID `json:"savedComparisonId"`
	UserID            string    `json:"userId"`
	Name              string    `json:"name"`
	SimulationIDs     []string  `json:"simulationIds"`
	CreatedAt         time.Time `json:"createdAt"`
}
