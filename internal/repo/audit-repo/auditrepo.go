package auditrepo

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/adrewards/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Create writes one audit row. Details must be one of the typed audit shapes
// from the domain package so the trail stays machine-checkable.
func (r *Repository) Create(ctx context.Context, action string, correlationID uuid.UUID, details any) error {
	payload, err := json.Marshal(details)
	if err != nil {
		zap.L().Error("failed to marshal audit details", zap.Error(err))
		return err
	}

	query := `
        INSERT INTO audit_log (action, correlation_id, details)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, action, correlationID, payload); err != nil {
		zap.L().Error("failed to create audit entry", zap.Error(err))
		return err
	}
	return nil
}
