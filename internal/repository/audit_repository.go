package repository

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"context"

	"github.com/jmoiron/sqlx"
)

// AuditRepository : registro de auditoría, solo inserciones
type AuditRepository struct {
	*config.Database
}

func NewAuditRepository(database *config.Database) *AuditRepository {
	return &AuditRepository{database}
}

// Record : anexa una entrada de auditoría
func (r *AuditRepository) Record(ctx context.Context, exec sqlx.ExtContext, entry *model.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (actor_name, action, entity, entity_uuid, detail)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		entry.ActorName,
		entry.Action,
		entry.Entity,
		entry.EntityUUID,
		entry.Detail)
	if err != nil {
		return apperr.Store("[AuditRepo] no se pudo anexar la entrada de auditoría", err)
	}
	return nil
}
