package model

import "time"

// AuditEntry : registro inmutable de una acción que muta estado
type AuditEntry struct {
	ID         int64     `db:"id" json:"id"`
	ActorName  string    `db:"actor_name" json:"actor_name"`
	Action     string    `db:"action" json:"action"`
	Entity     string    `db:"entity" json:"entity"`
	EntityUUID string    `db:"entity_uuid" json:"entity_uuid"`
	Detail     string    `db:"detail" json:"detail"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
