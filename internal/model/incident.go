package model

import "time"

// Tipos y estados de incidencia
const (
	IncidentTypeObserved = "document_observed"

	IncidentStatusPending  = "pending"
	IncidentStatusApproved = "approved"
	IncidentStatusRejected = "rejected"
	IncidentStatusClosed   = "closed"
)

type Incident struct {
	UUID              string     `db:"uuid" json:"uuid"`
	Type              string     `db:"type" json:"type"`
	Status            string     `db:"status" json:"status"`
	Title             string     `db:"title" json:"title"`
	Description       string     `db:"description" json:"description"`
	CenterUUID        *string    `db:"center_uuid" json:"center_uuid,omitempty"`
	DocumentUUID      *string    `db:"document_uuid" json:"document_uuid,omitempty"`
	CreatedByName     string     `db:"created_by_name" json:"created_by_name"`
	ResolutionComment *string    `db:"resolution_comment" json:"resolution_comment,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
	ResolvedAt        *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
}
