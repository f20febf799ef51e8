package settings

import (
	"time"

	"github.com/google/uuid"
)

// SingletonID is the primary key of the only institution_settings row.
const SingletonID = 1

type InstitutionSettings struct {
	ID                 int        `gorm:"primaryKey;check:chk_institution_settings_singleton,id = 1"`
	Name               string     `gorm:"type:varchar(200);not null"`
	LogoURL            string     `gorm:"type:varchar(500);not null;default:''"`
	Address            string     `gorm:"type:text;not null;default:''"`
	RegistrationNumber string     `gorm:"type:varchar(100);not null;default:''"`
	TaxID              string     `gorm:"type:varchar(100);not null;default:''"`
	UpdatedBy          *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt          time.Time
}

func (InstitutionSettings) TableName() string {
	return "institution_settings"
}
