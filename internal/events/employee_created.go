package events

import "time"

const EmployeeCreatedTopic = "hr.karyawan.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID uint      `json:"employee_id"`
	Nama       string    `json:"nama"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
