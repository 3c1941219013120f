package repository

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"context"

	"github.com/jmoiron/sqlx"
)

type NotificationRepository struct {
	*config.Database
}

func NewNotificationRepository(database *config.Database) *NotificationRepository {
	return &NotificationRepository{database}
}

// Create : guarda una notificación dirigida a un usuario
func (r *NotificationRepository) Create(ctx context.Context, exec sqlx.ExtContext, notification *model.Notification) error {
	query := `
		INSERT INTO notifications (uuid, user_uuid, title, message, type, read, document_uuid)
		VALUES ($1, $2, $3, $4, $5, false, $6)
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		notification.UUID,
		notification.UserUUID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.DocumentUUID)
	if err != nil {
		return apperr.Store("[NotificationRepo] no se pudo guardar la notificación", err)
	}
	return nil
}

// ListByUser : notificaciones de un usuario, las más recientes primero
func (r *NotificationRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userUUID string) ([]model.Notification, error) {
	query := `
		SELECT uuid, user_uuid, title, message, type, read, document_uuid, created_at
		FROM notifications
		WHERE user_uuid = $1
		ORDER BY created_at DESC
	`

	notifications := []model.Notification{}
	if err := sqlx.SelectContext(ctx, exec, &notifications, query, userUUID); err != nil {
		return nil, apperr.Store("[NotificationRepo] no se pudo listar notificaciones", err)
	}
	return notifications, nil
}

// MarkRead : marca como leída una notificación propia del usuario
func (r *NotificationRepository) MarkRead(ctx context.Context, exec sqlx.ExtContext, notificationUUID string, userUUID string) (bool, error) {
	query := `UPDATE notifications SET read = true WHERE uuid = $1 AND user_uuid = $2`
	result, err := exec.ExecContext(ctx, query, notificationUUID, userUUID)
	if err != nil {
		return false, apperr.Store("[NotificationRepo] no se pudo marcar la notificación", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, apperr.Store("[NotificationRepo] no se pudo leer filas afectadas", err)
	}
	return rows > 0, nil
}
