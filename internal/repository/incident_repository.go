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

type IncidentRepository struct {
	*config.Database
}

func NewIncidentRepository(database *config.Database) *IncidentRepository {
	return &IncidentRepository{database}
}

// Create : guarda una incidencia nueva en estado pendiente
func (r *IncidentRepository) Create(ctx context.Context, exec sqlx.ExtContext, incident *model.Incident) error {
	query := `
		INSERT INTO incidents (uuid, type, status, title, description, center_uuid, document_uuid, created_by_name)
		VALUES ($1, $2, 'pending', $3, $4, $5, $6, $7)
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		incident.UUID,
		incident.Type,
		incident.Title,
		incident.Description,
		incident.CenterUUID,
		incident.DocumentUUID,
		incident.CreatedByName)
	if err != nil {
		return apperr.Store("[IncidentRepo] no se pudo guardar la incidencia", err)
	}
	return nil
}

// GetByUUID : devuelve una incidencia por su UUID
func (r *IncidentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, incidentUUID string) (*model.Incident, error) {
	query := `
		SELECT uuid, type, status, title, description, center_uuid, document_uuid,
		       created_by_name, resolution_comment, created_at, updated_at, resolved_at
		FROM incidents
		WHERE uuid = $1
	`

	var incident model.Incident
	err := sqlx.GetContext(ctx, exec, &incident, query, incidentUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("incidencia %s no existe", incidentUUID)
	} else if err != nil {
		return nil, apperr.Store("[IncidentRepo] no se pudo obtener la incidencia", err)
	}

	return &incident, nil
}

// List : incidencias, opcionalmente filtradas por estado, las más recientes primero
func (r *IncidentRepository) List(ctx context.Context, exec sqlx.ExtContext, status string) ([]model.Incident, error) {
	query := `
		SELECT uuid, type, status, title, description, center_uuid, document_uuid,
		       created_by_name, resolution_comment, created_at, updated_at, resolved_at
		FROM incidents
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`

	incidents := []model.Incident{}
	if err := sqlx.SelectContext(ctx, exec, &incidents, query, status); err != nil {
		return nil, apperr.Store("[IncidentRepo] no se pudo listar incidencias", err)
	}
	return incidents, nil
}

// Resolve : transición condicional desde pendiente hacia la decisión del revisor
func (r *IncidentRepository) Resolve(ctx context.Context, exec sqlx.ExtContext, incidentUUID string, status string, comment string) (bool, error) {
	query := `
		UPDATE incidents
		SET status = $2, resolution_comment = NULLIF($3, ''), resolved_at = NOW(), updated_at = NOW()
		WHERE uuid = $1 AND status = 'pending'
	`
	result, err := exec.ExecContext(ctx, query, incidentUUID, status, comment)
	if err != nil {
		return false, apperr.Store("[IncidentRepo] no se pudo resolver la incidencia", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, apperr.Store("[IncidentRepo] no se pudo leer filas afectadas", err)
	}
	return rows > 0, nil
}
