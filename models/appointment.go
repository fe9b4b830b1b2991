package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a single scheduled booking. StartsAt and EndsAt are built
// from separate date and "HH:MM" form fields in the business's local time,
// and EndsAt is strictly after StartsAt.
type Appointment struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID      uuid.UUID `gorm:"type:uuid;index;not null" json:"companyId"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professionalId"`

	StartsAt time.Time `gorm:"index;not null" json:"startsAt"`
	EndsAt   time.Time `gorm:"not null" json:"endsAt"`

	ClientName  string `gorm:"not null" json:"clientName"`
	ClientPhone string `gorm:"not null" json:"clientPhone"`
	Notes       string `gorm:"type:text" json:"notes"`
	Type        string `gorm:"type:varchar(20);default:'consulta'" json:"type"`

	gorm.Model `json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
