package repository

import (
	"fmt"
	"simcompare/internal/db/models/postgres/public/model"
	"simcompare/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type RequestLogRepository interface {
	Add(db qrm.Queryable, rl model.RequestLog) (*model.RequestLog, error)
	Update(db qrm.Executable, rl model.RequestLog) error
}

type RequestLogRepositoryHandler struct{}

func (h RequestLogRepositoryHandler) Add(db qrm.Queryable, rl model.RequestLog) (*model.RequestLog, error) {
	rl.RequestLogID = uuid.New()

	query := table.RequestLog.
		INSERT(table.RequestLog.AllColumns).
		MODEL(rl).
		RETURNING(table.RequestLog.AllColumns)

	out := &model.RequestLog{}
	err := query.Query(db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert request log: %w", err)
	}

	return out, nil
}

// Update fills in the fields only known once the response is written
func (h RequestLogRepositoryHandler) Update(db qrm.Executable, rl model.RequestLog) error {
	query := table.RequestLog.
		UPDATE(
			table.RequestLog.DurationMs,
			table.RequestLog.StatusCode,
			table.RequestLog.UserID,
			table.RequestLog.ProcessingTimes,
		).
		MODEL(rl).
		WHERE(table.RequestLog.RequestLogID.EQ(postgres.UUID(rl.RequestLogID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update request log %s: %w", rl.RequestLogID.String(), err)
	}

	return nil
}
