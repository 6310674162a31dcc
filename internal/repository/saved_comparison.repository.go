package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"simcompare/internal/db/models/postgres/public/model"
	"simcompare/internal/db/models/postgres/public/table"
	"simcompare/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type SavedComparisonRepository interface {
	Add(c domain.SavedComparison) (*domain.SavedComparison, error)
	Get(savedComparisonID uuid.UUID, userID string) (*domain.SavedComparison, error)
	ListByUser(userID string) ([]domain.SavedComparison, error)
	Delete(savedComparisonID uuid.UUID, userID string) error
}

type savedComparisonRepositoryHandler struct {
	Db *sql.DB
}

func NewSavedComparisonRepository(db *sql.DB) SavedComparisonRepository {
	return savedComparisonRepositoryHandler{db}
}

func (h savedComparisonRepositoryHandler) Add(c domain.SavedComparison) (*domain.SavedComparison, error) {
	c.SavedComparisonID = uuid.New()
	c.CreatedAt = time.Now().UTC()

	m, err := savedComparisonToModel(c)
	if err != nil {
		return nil, err
	}

	query := table.SavedComparison.
		INSERT(table.SavedComparison.AllColumns).
		MODEL(m).
		RETURNING(table.SavedComparison.AllColumns)

	out := model.SavedComparison{}
	err = query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert saved comparison: %w", err)
	}

	return savedComparisonFromModel(out)
}

func (h savedComparisonRepositoryHandler) Get(savedComparisonID uuid.UUID, userID string) (*domain.SavedComparison, error) {
	query := table.SavedComparison.
		SELECT(table.SavedComparison.AllColumns).
		WHERE(
			postgres.AND(
				table.SavedComparison.SavedComparisonID.EQ(postgres.UUID(savedComparisonID)),
				table.SavedComparison.UserID.EQ(postgres.String(userID)),
			),
		)

	out := model.SavedComparison{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrComparisonNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get saved comparison %s: %w", savedComparisonID.String(), err)
	}

	return savedComparisonFromModel(out)
}

func (h savedComparisonRepositoryHandler) ListByUser(userID string) ([]domain.SavedComparison, error) {
	query := table.SavedComparison.
		SELECT(table.SavedComparison.AllColumns).
		WHERE(
			table.SavedComparison.UserID.EQ(postgres.String(userID)),
		).ORDER_BY(
		table.SavedComparison.CreatedAt.DESC(),
	)

	result := []model.SavedComparison{}
	err := query.Query(h.Db, &result)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list saved comparisons: %w", err)
	}

	out := []domain.SavedComparison{}
	for _, m := range result {
		c, err := savedComparisonFromModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}

	return out, nil
}

func (h savedComparisonRepositoryHandler) Delete(savedComparisonID uuid.UUID, userID string) error {
	query := table.SavedComparison.
		DELETE().
		WHERE(
			postgres.AND(
				table.SavedComparison.SavedComparisonID.EQ(postgres.UUID(savedComparisonID)),
				table.SavedComparison.UserID.EQ(postgres.String(userID)),
			),
		)

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete saved comparison: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete saved comparison: %w", err)
	}
	if rows == 0 {
		return domain.ErrComparisonNotFound
	}

	return nil
}

// simulation ids are stored as a json array in a text column
func savedComparisonToModel(c domain.SavedComparison) (model.SavedComparison, error) {
	ids := c.SimulationIDs
	if ids == nil {
		ids = []string{}
	}
	idBytes, err := json.Marshal(ids)
	if err != nil {
		return model.SavedComparison{}, fmt.Errorf("failed to marshal simulation ids: %w", err)
	}

	return model.SavedComparison{
		SavedComparisonID: c.SavedComparisonID,
		UserID:            c.UserID,
		Name:              c.Name,
		SimulationIds:     string(idBytes),
		CreatedAt:         c.CreatedAt,
	}, nil
}

func savedComparisonFromModel(m model.SavedComparison) (*domain.SavedComparison, error) {
	ids := []string{}
	err := json.Unmarshal([]byte(m.SimulationIds), &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to parse simulation ids of saved comparison %s: %w", m.SavedComparisonID.String(), err)
	}

	return &domain.SavedComparison{
		SavedComparisonID: m.SavedComparisonID,
		UserID:            m.UserID,
		Name:              m.Name,
		SimulationIDs:     ids,
		CreatedAt:         m.CreatedAt,
	}, nil
}
