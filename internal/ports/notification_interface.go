package ports

import (
	"center-docs-server/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

// NotificationRepository : capa SQL de notificaciones
type NotificationRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, notification *model.Notification) error
	ListByUser(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, exec sqlx.ExtContext, notificationUUID string, userUUID string) (bool, error)
}

// IncidentRepository : capa SQL de incidencias
type IncidentRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, incident *model.Incident) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, incidentUUID string) (*model.Incident, error)
	List(ctx context.Context, exec sqlx.ExtContext, status string) ([]model.Incident, error)
	Resolve(ctx context.Context, exec sqlx.ExtContext, incidentUUID string, status string, comment string) (bool, error)
}

type NotificationService interface {
	ListForUser(ctx context.Context, userUUID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationUUID string, userUUID string) error
}

type IncidentService interface {
	ListIncidents(ctx context.Context, status string) ([]model.Incident, error)
	ResolveIncident(ctx context.Context, incidentUUID string, status string, comment string, actorName string) (*model.Incident, error)
}

// ReminderFanout : construcción determinista de avisos de vencimiento.
// Lo consume únicamente el planificador de barridos.
type ReminderFanout interface {
	FireReminder(ctx context.Context, exec sqlx.ExtContext, document *model.Document, daysLeft int) (int, error)
	FireExpired(ctx context.Context, exec sqlx.ExtContext, document *model.Document) (int, error)
}
