package service

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/util"
	"context"
	"fmt"
	"log"
)

var incidentDecisions = map[string]bool{
	model.IncidentStatusApproved: true,
	model.IncidentStatusRejected: true,
	model.IncidentStatusClosed:   true,
}

// IncidentService : lectura y resolución de incidencias. La creación
// automática por vencimiento la hace el planificador vía ReminderService.
type IncidentService struct {
	incidentRepository ports.IncidentRepository
	auditRecorder      ports.AuditRecorder
}

func NewIncidentService(incidentRepository ports.IncidentRepository, auditRecorder ports.AuditRecorder) *IncidentService {
	return &IncidentService{
		incidentRepository: incidentRepository,
		auditRecorder:      auditRecorder,
	}
}

// ListIncidents : incidencias, opcionalmente filtradas por estado
func (s *IncidentService) ListIncidents(ctx context.Context, status string) ([]model.Incident, error) {
	if status != "" && status != model.IncidentStatusPending && !incidentDecisions[status] {
		return nil, apperr.Validation("estado de incidencia desconocido: %s", status)
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[IncidentService] database connection no encontrada en el context")
	}

	return s.incidentRepository.List(ctx, db, status)
}

// ResolveIncident : decisión del revisor sobre una incidencia pendiente
func (s *IncidentService) ResolveIncident(ctx context.Context, incidentUUID string, status string, comment string, actorName string) (*model.Incident, error) {
	if !incidentDecisions[status] {
		return nil, apperr.Validation("decisión de incidencia desconocida: %s", status)
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[IncidentService] database connection no encontrada en el context")
	}

	if _, err := s.incidentRepository.GetByUUID(ctx, db, incidentUUID); err != nil {
		return nil, err
	}

	ok2, err := s.incidentRepository.Resolve(ctx, db, incidentUUID, status, comment)
	if err != nil {
		return nil, util.LogError("[IncidentService] no se pudo resolver la incidencia", err)
	}
	if !ok2 {
		return nil, apperr.InvalidState("la incidencia %s ya fue resuelta", incidentUUID)
	}

	if err := s.auditRecorder.Record(ctx, db, &model.AuditEntry{
		ActorName:  actorName,
		Action:     "incident_resolved",
		Entity:     "incident",
		EntityUUID: incidentUUID,
		Detail:     fmt.Sprintf("incidencia resuelta como %s", status),
	}); err != nil {
		log.Printf("[IncidentService] error de auditoría: %v", err)
	}

	return s.incidentRepository.GetByUUID(ctx, db, incidentUUID)
}
