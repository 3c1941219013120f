package repository

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

const versionColumns = `
	uuid, document_uuid, version, file_name, size_bytes, mime_type, storage_path,
	change_reason, approval_status, approved_by, approved_at, rejection_reason, created_at
`

type VersionRepository struct {
	*config.Database
}

func NewVersionRepository(database *config.Database) *VersionRepository {
	return &VersionRepository{database}
}

// Create : inserta una versión nueva. El número se calcula en la misma
// sentencia como max+1 por documento, así dos inserciones concurrentes
// no pueden reutilizar un número ya asignado (hay unique sobre
// document_uuid+version).
func (r *VersionRepository) Create(ctx context.Context, exec sqlx.ExtContext, version *model.DocumentVersion) (*model.DocumentVersion, error) {
	query := `
		INSERT INTO document_versions (uuid, document_uuid, version, file_name, size_bytes,
		                               mime_type, storage_path, change_reason, approval_status)
		SELECT $1, $2, COALESCE(MAX(version), 0) + 1, $3, $4, $5, $6, $7, 'pending'
		FROM document_versions
		WHERE document_uuid = $2
		RETURNING ` + versionColumns

	created := &model.DocumentVersion{}
	err := exec.QueryRowxContext(
		ctx,
		query,
		version.UUID,
		version.DocumentUUID,
		version.FileName,
		version.SizeBytes,
		version.MimeType,
		version.StoragePath,
		version.ChangeReason,
	).StructScan(created)
	if err != nil {
		return nil, apperr.Store("[VersionRepo] no se pudo guardar la versión", err)
	}

	return created, nil
}

// GetByUUID : devuelve una versión por su UUID
func (r *VersionRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, versionUUID string) (*model.DocumentVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM document_versions WHERE uuid = $1`

	var version model.DocumentVersion
	err := sqlx.GetContext(ctx, exec, &version, query, versionUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("versión %s no existe", versionUUID)
	} else if err != nil {
		return nil, apperr.Store("[VersionRepo] no se pudo obtener la versión", err)
	}

	return &version, nil
}

// ListByDocument : versiones de un documento; por defecto solo las aprobadas
func (r *VersionRepository) ListByDocument(ctx context.Context, exec sqlx.ExtContext, documentUUID string, showAll bool) ([]model.DocumentVersion, error) {
	query := `SELECT ` + versionColumns + `
		FROM document_versions
		WHERE document_uuid = $1 AND ($2 OR approval_status = 'approved')
		ORDER BY version DESC`

	versions := []model.DocumentVersion{}
	if err := sqlx.SelectContext(ctx, exec, &versions, query, documentUUID, showAll); err != nil {
		return nil, apperr.Store("[VersionRepo] no se pudo listar las versiones del documento", err)
	}
	return versions, nil
}

// ListByStatus : proyección por estado, opcionalmente acotada al departamento
// dueño del documento padre. Pendientes y rechazadas se ordenan por fecha de
// subida; aprobadas por fecha de aprobación.
func (r *VersionRepository) ListByStatus(ctx context.Context, exec sqlx.ExtContext, status string, departmentUUID string) ([]model.DocumentVersion, error) {
	orderBy := "v.created_at DESC"
	if status == model.StatusApproved {
		orderBy = "v.approved_at DESC"
	}

	query := `
		SELECT v.uuid, v.document_uuid, v.version, v.file_name, v.size_bytes, v.mime_type,
		       v.storage_path, v.change_reason, v.approval_status, v.approved_by, v.approved_at,
		       v.rejection_reason, v.created_at
		FROM document_versions AS v
		JOIN documents AS d ON d.uuid = v.document_uuid
		WHERE v.approval_status = $1 AND ($2 = '' OR d.department_uuid = $2)
		ORDER BY ` + orderBy

	versions := []model.DocumentVersion{}
	if err := sqlx.SelectContext(ctx, exec, &versions, query, status, departmentUUID); err != nil {
		return nil, apperr.Store("[VersionRepo] no se pudo listar versiones por estado", err)
	}
	return versions, nil
}

// GetApprovedByNumber : versión aprobada con un número concreto; nil si no hay
func (r *VersionRepository) GetApprovedByNumber(ctx context.Context, exec sqlx.ExtContext, documentUUID string, number int) (*model.DocumentVersion, error) {
	query := `SELECT ` + versionColumns + `
		FROM document_versions
		WHERE document_uuid = $1 AND version = $2 AND approval_status = 'approved'`

	var version model.DocumentVersion
	err := sqlx.GetContext(ctx, exec, &version, query, documentUUID, number)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, apperr.Store("[VersionRepo] no se pudo buscar la versión aprobada", err)
	}
	return &version, nil
}

// GetLatestApproved : la versión aprobada más reciente por fecha de aprobación; nil si no hay
func (r *VersionRepository) GetLatestApproved(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.DocumentVersion, error) {
	query := `SELECT ` + versionColumns + `
		FROM document_versions
		WHERE document_uuid = $1 AND approval_status = 'approved'
		ORDER BY approved_at DESC
		LIMIT 1`

	var version model.DocumentVersion
	err := sqlx.GetContext(ctx, exec, &version, query, documentUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, apperr.Store("[VersionRepo] no se pudo buscar la última versión aprobada", err)
	}
	return &version, nil
}

// GetLatest : la versión más reciente sin importar el estado; nil si el documento no tiene versiones
func (r *VersionRepository) GetLatest(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.DocumentVersion, error) {
	query := `SELECT ` + versionColumns + `
		FROM document_versions
		WHERE document_uuid = $1
		ORDER BY version DESC
		LIMIT 1`

	var version model.DocumentVersion
	err := sqlx.GetContext(ctx, exec, &version, query, documentUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, apperr.Store("[VersionRepo] no se pudo buscar la última versión", err)
	}
	return &version, nil
}

// MarkApproved : transición condicional pending→approved. Devuelve false si la
// versión ya no estaba pendiente; así dos aprobaciones concurrentes no pueden
// decidir dos veces la misma fila.
func (r *VersionRepository) MarkApproved(ctx context.Context, exec sqlx.ExtContext, versionUUID string, approver string, at time.Time) (bool, error) {
	query := `
		UPDATE document_versions
		SET approval_status = 'approved', approved_by = $2, approved_at = $3
		WHERE uuid = $1 AND approval_status = 'pending'
	`
	result, err := exec.ExecContext(ctx, query, versionUUID, approver, at)
	if err != nil {
		return false, apperr.Store("[VersionRepo] no se pudo aprobar la versión", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, apperr.Store("[VersionRepo] no se pudo leer filas afectadas", err)
	}
	return rows > 0, nil
}

// MarkRejected : transición condicional pending→rejected con el motivo del rechazo
func (r *VersionRepository) MarkRejected(ctx context.Context, exec sqlx.ExtContext, versionUUID string, reviewer string, reason string, at time.Time) (bool, error) {
	query := `
		UPDATE document_versions
		SET approval_status = 'rejected', approved_by = $2, approved_at = $3, rejection_reason = $4
		WHERE uuid = $1 AND approval_status = 'pending'
	`
	result, err := exec.ExecContext(ctx, query, versionUUID, reviewer, at, reason)
	if err != nil {
		return false, apperr.Store("[VersionRepo] no se pudo rechazar la versión", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, apperr.Store("[VersionRepo] no se pudo leer filas afectadas", err)
	}
	return rows > 0, nil
}

func (r *VersionRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, apperr.Store("[VersionRepo] no se pudo iniciar la transacción", err)
	}
	return tx, func() error { return tx.Rollback() }, func() error { return tx.Commit() }, nil
}
