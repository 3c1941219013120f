package service

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/util"
	"context"
	"fmt"
)

// NotificationService : bandeja de avisos de cada usuario
type NotificationService struct {
	notificationRepository ports.NotificationRepository
}

func NewNotificationService(notificationRepository ports.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepository: notificationRepository}
}

// ListForUser : notificaciones del usuario autenticado
func (s *NotificationService) ListForUser(ctx context.Context, userUUID string) ([]model.Notification, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[NotificationService] database connection no encontrada en el context")
	}

	return s.notificationRepository.ListByUser(ctx, db, userUUID)
}

// MarkRead : marca una notificación propia como leída
func (s *NotificationService) MarkRead(ctx context.Context, notificationUUID string, userUUID string) error {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return fmt.Errorf("[NotificationService] database connection no encontrada en el context")
	}

	marked, err := s.notificationRepository.MarkRead(ctx, db, notificationUUID, userUUID)
	if err != nil {
		return util.LogError("[NotificationService] no se pudo marcar la notificación", err)
	}
	if !marked {
		return apperr.NotFound("notificación %s no existe para este usuario", notificationUUID)
	}
	return nil
}
