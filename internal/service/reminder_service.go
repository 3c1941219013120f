package service

import (
	"center-docs-server/internal/metrics"
	"center-docs-server/internal/model"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/util"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SystemActorName : autor de las acciones generadas por el planificador
const SystemActorName = "Sistema Automático"

// Tier : nivel de urgencia de un documento respecto a su fecha de vencimiento
type Tier string

const (
	TierExpired  Tier = "expired"
	TierCritical Tier = "critical"
	TierUrgent   Tier = "urgent"
	TierWarning  Tier = "warning"
	TierNone     Tier = "none"
)

// Label : etiqueta visible de cada nivel de urgencia
func (t Tier) Label() string {
	switch t {
	case TierExpired:
		return "VENCIDO"
	case TierCritical:
		return "CRÍTICO"
	case TierUrgent:
		return "URGENTE"
	case TierWarning:
		return "ADVERTENCIA"
	default:
		return ""
	}
}

// DaysLeft : días restantes hasta el vencimiento, redondeando hacia arriba.
// Un documento que vence exactamente ahora (o antes) da <= 0.
func DaysLeft(expiration time.Time, now time.Time) int {
	return int(math.Ceil(expiration.Sub(now).Hours() / 24))
}

// TierFor : clasifica los días restantes. El límite exacto pertenece siempre
// al nivel más urgente: 7 días es crítico, 15 es urgente, 30 es advertencia.
func TierFor(daysLeft int) Tier {
	switch {
	case daysLeft <= 0:
		return TierExpired
	case daysLeft <= 7:
		return TierCritical
	case daysLeft <= 15:
		return TierUrgent
	case daysLeft <= 30:
		return TierWarning
	default:
		return TierNone
	}
}

// ReminderService : construcción determinista de los avisos de vencimiento y
// de la incidencia automática. Las plantillas no tienen ninguna aleatoriedad
// para que los textos sean verificables.
type ReminderService struct {
	userRepository         ports.UserRepository
	notificationRepository ports.NotificationRepository
	incidentRepository     ports.IncidentRepository
	auditRecorder          ports.AuditRecorder
}

func NewReminderService(
	userRepository ports.UserRepository,
	notificationRepository ports.NotificationRepository,
	incidentRepository ports.IncidentRepository,
	auditRecorder ports.AuditRecorder,
) *ReminderService {
	return &ReminderService{
		userRepository:         userRepository,
		notificationRepository: notificationRepository,
		incidentRepository:     incidentRepository,
		auditRecorder:          auditRecorder,
	}
}

// ExpiringTitle : título del aviso para un documento próximo a vencer
func ExpiringTitle(tier Tier, doc *model.Document) string {
	return fmt.Sprintf("%s: el documento \"%s\" está próximo a vencer", tier.Label(), doc.Name)
}

// ExpiringMessage : cuerpo del aviso con fecha formateada y días restantes
func ExpiringMessage(doc *model.Document, daysLeft int) string {
	return fmt.Sprintf("El documento \"%s\" (%s) vence el %s. Quedan %d días.",
		doc.Name, doc.Type, doc.ExpirationDate.Format("02/01/2006"), daysLeft)
}

// ExpiredTitle : título del aviso para un documento ya vencido
func ExpiredTitle(doc *model.Document) string {
	return fmt.Sprintf("%s: el documento \"%s\" ha vencido", TierExpired.Label(), doc.Name)
}

// ExpiredMessage : cuerpo del aviso de vencimiento consumado
func ExpiredMessage(doc *model.Document) string {
	return fmt.Sprintf("El documento \"%s\" (%s) venció el %s y requiere renovación inmediata.",
		doc.Name, doc.Type, doc.ExpirationDate.Format("02/01/2006"))
}

// FireReminder : crea una notificación document_expiring por cada
// administrador activo. Devuelve cuántas notificaciones se crearon.
func (s *ReminderService) FireReminder(ctx context.Context, exec sqlx.ExtContext, doc *model.Document, daysLeft int) (int, error) {
	tier := TierFor(daysLeft)
	title := ExpiringTitle(tier, doc)
	message := ExpiringMessage(doc, daysLeft)

	sent, err := s.broadcast(ctx, exec, doc, model.NotificationTypeExpiring, title, message)
	if err != nil {
		return sent, err
	}
	metrics.RemindersSent.WithLabelValues(string(tier)).Add(float64(sent))

	if err := s.auditRecorder.Record(ctx, exec, &model.AuditEntry{
		ActorName:  SystemActorName,
		Action:     "reminder_sent",
		Entity:     "document",
		EntityUUID: doc.UUID,
		Detail:     fmt.Sprintf("aviso %s enviado a %d administradores", tier.Label(), sent),
	}); err != nil {
		return sent, err
	}

	return sent, nil
}

// FireExpired : crea una notificación document_expired por administrador y la
// incidencia automática de observación sobre el documento vencido.
func (s *ReminderService) FireExpired(ctx context.Context, exec sqlx.ExtContext, doc *model.Document) (int, error) {
	title := ExpiredTitle(doc)
	message := ExpiredMessage(doc)

	sent, err := s.broadcast(ctx, exec, doc, model.NotificationTypeExpired, title, message)
	if err != nil {
		return sent, err
	}
	metrics.RemindersSent.WithLabelValues(string(TierExpired)).Add(float64(sent))

	incident := &model.Incident{
		UUID:          uuid.New().String(),
		Type:          model.IncidentTypeObserved,
		Title:         fmt.Sprintf("Documento vencido: %s", doc.Name),
		Description:   message,
		CenterUUID:    &doc.CenterUUID,
		DocumentUUID:  &doc.UUID,
		CreatedByName: SystemActorName,
	}
	if err := s.incidentRepository.Create(ctx, exec, incident); err != nil {
		return sent, util.LogError("[ReminderService] no se pudo crear la incidencia automática", err)
	}
	metrics.IncidentsCreated.Inc()

	if err := s.auditRecorder.Record(ctx, exec, &model.AuditEntry{
		ActorName:  SystemActorName,
		Action:     "incident_created",
		Entity:     "incident",
		EntityUUID: incident.UUID,
		Detail:     fmt.Sprintf("incidencia automática por vencimiento del documento %s", doc.UUID),
	}); err != nil {
		return sent, err
	}

	return sent, nil
}

// broadcast : una notificación por administrador activo, de forma secuencial
func (s *ReminderService) broadcast(ctx context.Context, exec sqlx.ExtContext, doc *model.Document, notificationType string, title string, message string) (int, error) {
	admins, err := s.userRepository.ListActiveAdmins(ctx, exec)
	if err != nil {
		return 0, util.LogError("[ReminderService] no se pudo obtener los destinatarios", err)
	}

	sent := 0
	for _, admin := range admins {
		notification := &model.Notification{
			UUID:         uuid.New().String(),
			UserUUID:     admin.UUID,
			Title:        title,
			Message:      message,
			Type:         notificationType,
			DocumentUUID: &doc.UUID,
		}
		if err := s.notificationRepository.Create(ctx, exec, notification); err != nil {
			return sent, util.LogError("[ReminderService] no se pudo crear la notificación", err)
		}
		sent++
	}

	return sent, nil
}
