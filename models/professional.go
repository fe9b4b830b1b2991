package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Professional struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID    uuid.UUID `gorm:"type:uuid;index;not null" json:"companyId"`
	ProfessionID uuid.UUID `gorm:"type:uuid;index;not null" json:"professionId"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl"`
	IsAdmin  bool   `gorm:"default:false" json:"isAdmin"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Profession     Profession     `gorm:"foreignKey:ProfessionID" json:"-"`
	Availabilities []Availability `gorm:"foreignKey:ProfessionalID" json:"availabilities,omitempty"`
	Appointments   []Appointment  `gorm:"foreignKey:ProfessionalID" json:"-"`

	gorm.Model `json:"-"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
