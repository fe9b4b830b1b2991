package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekday tokens as stored on the wire, Monday through Sunday.
const (
	WeekdayMonday    = "segunda"
	WeekdayTuesday   = "terca"
	WeekdayWednesday = "quarta"
	WeekdayThursday  = "quinta"
	WeekdayFriday    = "sexta"
	WeekdaySaturday  = "sabado"
	WeekdaySunday    = "domingo"
)

var Weekdays = []string{
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
	WeekdaySunday,
}

// ValidWeekday reports whether token is one of the seven weekday values.
func ValidWeekday(token string) bool {
	for _, day := range Weekdays {
		if day == token {
			return true
		}
	}
	return false
}

// Availability is a professional's recurring open window on one weekday.
// Start and End are "HH:MM" wall-clock times; End must be strictly after
// Start when compared as minutes since midnight.
type Availability struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID      uuid.UUID `gorm:"type:uuid;index;not null" json:"companyId"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professionalId"`

	Weekday  string `gorm:"type:varchar(10);not null" json:"weekday"`
	Start    string `gorm:"type:varchar(5);not null" json:"start"`
	End      string `gorm:"type:varchar(5);not null" json:"end"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
