package events

import "time"

const (
	PayrollRunSavedTopic = "school.payroll.run.saved.v1"
	PayrollRunSavedType  = "payroll.run.saved"
)

type PayrollRunSavedEvent struct {
	EventType   string    `json:"event_type"`
	RunID       string    `json:"run_id"`
	RunNumber   string    `json:"run_number"`
	RunBy       string    `json:"run_by"`
	EmployeeIDs []string  `json:"employee_ids"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// HistoryTopics are the topics whose events change an employee's payroll history.
var HistoryTopics = []string{PayrollPeriodGeneratedTopic, PayrollRunSavedTopic}
