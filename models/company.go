package models

import (
	"github.com/google/uuid"
)

type Company struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `json:"address"`

	// Reminder pipeline settings. The message supports the
	// [ClientName] and [Time] placeholders.
	AppointmentReminders  bool   `gorm:"default:true" json:"appointmentReminders"`
	WhatsAppNotifications bool   `gorm:"default:false" json:"whatsAppNotifications"`
	SMSNotifications      bool   `gorm:"default:false" json:"smsNotifications"`
	ReminderMessage       string `gorm:"type:text;default:'Olá [ClientName], lembrete do seu horário amanhã às [Time].'" json:"reminderMessage"`

	Users         []User         `gorm:"foreignKey:CompanyID" json:"-"`
	Professionals []Professional `gorm:"foreignKey:CompanyID" json:"-"`
	Clients       []Client       `gorm:"foreignKey:CompanyID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:CompanyID" json:"-"`
}
