package model

import "time"

// Estados de aprobación de una versión de documento
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// DocumentVersion : instantánea inmutable de un documento una vez decidida.
// El número de versión se asigna en el servidor como max+1 y nunca se reutiliza,
// incluso si la versión fue rechazada.
type DocumentVersion struct {
	UUID            string     `db:"uuid" json:"uuid"`
	DocumentUUID    string     `db:"document_uuid" json:"document_uuid"`
	Version         int        `db:"version" json:"version"`
	FileName        *string    `db:"file_name" json:"file_name,omitempty"`
	SizeBytes       *int64     `db:"size_bytes" json:"size_bytes,omitempty"`
	MimeType        *string    `db:"mime_type" json:"mime_type,omitempty"`
	StoragePath     *string    `db:"storage_path" json:"storage_path,omitempty"`
	ChangeReason    string     `db:"change_reason" json:"change_reason"`
	ApprovalStatus  string     `db:"approval_status" json:"approval_status"`
	ApprovedBy      *string    `db:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	RejectionReason *string    `db:"rejection_reason" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}
