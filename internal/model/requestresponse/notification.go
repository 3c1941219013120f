package requestresponse

import (
	"center-docs-server/internal/model"
	"time"
)

// NotificationResponse : describe una notificación para la respuesta JSON
type NotificationResponse struct {
	UUID         string  `json:"id"`
	Title        string  `json:"title"`
	Message      string  `json:"message"`
	Type         string  `json:"type" example:"document_expiring"`
	Read         bool    `json:"read"`
	DocumentUUID *string `json:"document_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// NotificationResponseFromModel : convierte model.Notification en NotificationResponse
func NotificationResponseFromModel(n *model.Notification) NotificationResponse {
	return NotificationResponse{
		UUID:         n.UUID,
		Title:        n.Title,
		Message:      n.Message,
		Type:         n.Type,
		Read:         n.Read,
		DocumentUUID: n.DocumentUUID,
		CreatedAt:    n.CreatedAt.Format(time.RFC3339),
	}
}

// ListNotificationsResponse : respuesta con las notificaciones del usuario
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Count         int                    `json:"count" example:"7"`
}
