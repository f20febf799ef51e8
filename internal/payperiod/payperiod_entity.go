package payperiod

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen      = "Open"
	StatusGenerated = "Generated"
)

type PayPeriod struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StartDate   time.Time  `gorm:"type:date;not null;index:idx_pay_period_range"`
	EndDate     time.Time  `gorm:"type:date;not null;index:idx_pay_period_range"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Open';index"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	GeneratedBy *uuid.UUID `gorm:"type:uuid"`
	GeneratedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PayPeriod) TableName() string {
	return "pay_periods"
}

// CanTransition reports whether a period may move from one status to another.
// Open -> Generated is the only edge; Generated is terminal.
func CanTransition(from, to string) bool {
	return from == StatusOpen && to == StatusGenerated
}
