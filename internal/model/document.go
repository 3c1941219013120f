package model

import "time"

type Document struct {
	UUID            string     `db:"uuid" json:"uuid"`
	Name            string     `db:"name" json:"name"`
	Type            string     `db:"type" json:"type"`
	CenterUUID      string     `db:"center_uuid" json:"center_uuid"`
	DepartmentUUID  string     `db:"department_uuid" json:"department_uuid"`
	CurrentVersion  int        `db:"current_version" json:"current_version"`
	ExpirationDate  *time.Time `db:"expiration_date" json:"expiration_date,omitempty"`
	ReminderSent30  bool       `db:"reminder_sent_30" json:"reminder_sent_30"`
	ReminderSent15  bool       `db:"reminder_sent_15" json:"reminder_sent_15"`
	ReminderSent7   bool       `db:"reminder_sent_7" json:"reminder_sent_7"`
	ReminderExpired bool       `db:"reminder_sent_expired" json:"reminder_sent_expired"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
