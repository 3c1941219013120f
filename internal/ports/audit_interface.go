package ports

import (
	"center-docs-server/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

// AuditRecorder : registro inmutable de acciones; solo se anexa, nunca se edita
type AuditRecorder interface {
	Record(ctx context.Context, exec sqlx.ExtContext, entry *model.AuditEntry) error
}
