package events

import "time"

const (
	PayrollPeriodGeneratedTopic = "school.payroll.period.generated.v1"
	PayrollPeriodGeneratedType  = "payroll.period.generated"
)

type PayrollPeriodGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	PeriodID    string    `json:"period_id"`
	GeneratedBy string    `json:"generated_by"`
	RecordCount int       `json:"record_count"`
	EmployeeIDs []string  `json:"employee_ids"`
	OccurredAt  time.Time `json:"occurred_at"`
}
