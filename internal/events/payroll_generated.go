package events

import "time"

const PayrollGeneratedTopic = "hrms.payroll.lifecycle.v1"

type PayrollGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	Month      string    `json:"month"`
	Year       int       `json:"year"`
	NetSalary  float64   `json:"net_salary"`
	OccurredAt time.Time `json:"occurred_at"`
}
