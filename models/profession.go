package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Profession struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"companyId"`
	Name      string    `gorm:"not null" json:"name"`

	Professionals []Professional `gorm:"foreignKey:ProfessionID" json:"-"`
}

func (p *Profession) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
