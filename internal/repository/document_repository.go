package repository

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
)

// Columnas permitidas para los latches de recordatorio. Cualquier otro valor
// es un error de programación, no de datos.
var reminderFlagColumns = map[string]string{
	"30":      "reminder_sent_30",
	"15":      "reminder_sent_15",
	"7":       "reminder_sent_7",
	"expired": "reminder_sent_expired",
}

type DocumentRepository struct {
	*config.Database
}

func NewDocumentRepository(database *config.Database) *DocumentRepository {
	return &DocumentRepository{database}
}

// Create : guarda un documento lógico nuevo; la versión vigente arranca en 1
func (r *DocumentRepository) Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error {
	query := `
		INSERT INTO documents (uuid, name, type, center_uuid, department_uuid, current_version, expiration_date)
		VALUES ($1, $2, $3, $4, $5, 1, $6)
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		document.UUID,
		document.Name,
		document.Type,
		document.CenterUUID,
		document.DepartmentUUID,
		document.ExpirationDate)
	if err != nil {
		return apperr.Store("[DocumentRepo] no se pudo guardar el documento", err)
	}

	return nil
}

// GetByUUID : devuelve un documento por su UUID
func (r *DocumentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.Document, error) {
	query := `
		SELECT uuid, name, type, center_uuid, department_uuid, current_version, expiration_date,
		       reminder_sent_30, reminder_sent_15, reminder_sent_7, reminder_sent_expired,
		       created_at, updated_at
		FROM documents
		WHERE uuid = $1
	`

	var document model.Document
	err := sqlx.GetContext(ctx, exec, &document, query, documentUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("documento %s no existe", documentUUID)
	} else if err != nil {
		return nil, apperr.Store("[DocumentRepo] no se pudo obtener el documento", err)
	}

	return &document, nil
}

// Exists : comprueba si existe el documento
func (r *DocumentRepository) Exists(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM documents WHERE uuid = $1)`
	err := sqlx.GetContext(ctx, exec, &exists, query, documentUUID)
	if err != nil {
		return false, apperr.Store("[DocumentRepo] error comprobando existencia del documento", err)
	}
	return exists, nil
}

// ListExpiringWithin : documentos que vencen dentro de N días y aún no
// recibieron el aviso de 30 días. Los ya vencidos quedan fuera; los trae
// ListExpiredPending.
func (r *DocumentRepository) ListExpiringWithin(ctx context.Context, exec sqlx.ExtContext, days int) ([]model.Document, error) {
	query := `
		SELECT uuid, name, type, center_uuid, department_uuid, current_version, expiration_date,
		       reminder_sent_30, reminder_sent_15, reminder_sent_7, reminder_sent_expired,
		       created_at, updated_at
		FROM documents
		WHERE expiration_date IS NOT NULL
		  AND expiration_date > NOW()
		  AND expiration_date <= NOW() + make_interval(days => $1)
		  AND reminder_sent_30 = false
		ORDER BY expiration_date ASC
	`

	docs := []model.Document{}
	if err := sqlx.SelectContext(ctx, exec, &docs, query, days); err != nil {
		return nil, apperr.Store("[DocumentRepo] no se pudo listar documentos próximos a vencer", err)
	}
	return docs, nil
}

// ListExpiredPending : documentos vencidos cuyo aviso de vencimiento no se envió
func (r *DocumentRepository) ListExpiredPending(ctx context.Context, exec sqlx.ExtContext) ([]model.Document, error) {
	query := `
		SELECT uuid, name, type, center_uuid, department_uuid, current_version, expiration_date,
		       reminder_sent_30, reminder_sent_15, reminder_sent_7, reminder_sent_expired,
		       created_at, updated_at
		FROM documents
		WHERE expiration_date IS NOT NULL
		  AND expiration_date <= NOW()
		  AND reminder_sent_expired = false
		ORDER BY expiration_date ASC
	`

	docs := []model.Document{}
	if err := sqlx.SelectContext(ctx, exec, &docs, query); err != nil {
		return nil, apperr.Store("[DocumentRepo] no se pudo listar documentos vencidos", err)
	}
	return docs, nil
}

// SetReminderFlag : marca un latch de recordatorio; nunca se desmarca
func (r *DocumentRepository) SetReminderFlag(ctx context.Context, exec sqlx.ExtContext, documentUUID string, flag string) error {
	column, ok := reminderFlagColumns[flag]
	if !ok {
		return apperr.Validation("latch de recordatorio desconocido: %s", flag)
	}

	query := `UPDATE documents SET ` + column + ` = true, updated_at = NOW() WHERE uuid = $1`
	_, err := exec.ExecContext(ctx, query, documentUUID)
	if err != nil {
		return apperr.Store("[DocumentRepo] no se pudo marcar el latch de recordatorio", err)
	}
	return nil
}

// AdvanceCurrentVersion : promueve el puntero de versión vigente.
// Solo avanza: una aprobación fuera de orden de una versión vieja
// no puede retroceder el puntero.
func (r *DocumentRepository) AdvanceCurrentVersion(ctx context.Context, exec sqlx.ExtContext, documentUUID string, version int) error {
	query := `
		UPDATE documents
		SET current_version = $2, updated_at = NOW()
		WHERE uuid = $1 AND current_version < $2
	`
	_, err := exec.ExecContext(ctx, query, documentUUID, version)
	if err != nil {
		return apperr.Store("[DocumentRepo] no se pudo avanzar la versión vigente", err)
	}
	return nil
}

func (r *DocumentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, apperr.Store("[DocumentRepo] no se pudo iniciar la transacción", err)
	}
	return tx, func() error { return tx.Rollback() }, func() error { return tx.Commit() }, nil
}
