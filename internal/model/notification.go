package model

import "time"

// Tipos de notificación generados por el sistema
const (
	NotificationTypeExpiring = "document_expiring"
	NotificationTypeExpired  = "document_expired"
)

// Notification : aviso dirigido a un único usuario. Solo muta el campo Read.
type Notification struct {
	UUID         string    `db:"uuid" json:"uuid"`
	UserUUID     string    `db:"user_uuid" json:"user_uuid"`
	Title        string    `db:"title" json:"title"`
	Message      string    `db:"message" json:"message"`
	Type         string    `db:"type" json:"type"`
	Read         bool      `db:"read" json:"read"`
	DocumentUUID *string   `db:"document_uuid" json:"document_uuid,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
