package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index;not null" json:"companyId"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"createdByUserId"`

	Name     string `gorm:"not null" json:"name"`
	Phone    string `gorm:"not null;uniqueIndex:idx_company_phone,priority:2" json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
