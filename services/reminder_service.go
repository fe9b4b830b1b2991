// services/reminder_service.go
package services

import (
	"os"
	"strings"
	"time"

	"agendapro-backend/models"
	"agendapro-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler sends next-day appointment reminders every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	utils.GetLogger().Info("reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log := utils.GetLogger()
	log.Info("starting daily reminder processing")

	var companies []models.Company
	if err := s.db.Find(&companies, "appointment_reminders = ?", true).Error; err != nil {
		log.Error("failed to fetch companies", zap.Error(err))
		return
	}

	for _, company := range companies {
		s.ProcessCompanyReminders(company)
	}

	log.Info("daily reminder processing completed")
}

func (s *ReminderService) ProcessCompanyReminders(company models.Company) {
	log := utils.GetLogger()

	appointments, err := s.tomorrowsAppointments(company.ID)
	if err != nil {
		log.Error("failed to fetch appointments",
			zap.String("companyId", company.ID.String()), zap.Error(err))
		return
	}

	for _, appointment := range appointments {
		s.sendReminder(company, appointment)
	}
}

func (s *ReminderService) tomorrowsAppointments(companyID uuid.UUID) ([]models.Appointment, error) {
	tomorrow := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1)
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var appointments []models.Appointment
	err := s.db.Where("company_id = ? AND starts_at >= ? AND starts_at < ?",
		companyID, tomorrow, dayAfter).
		Order("starts_at").Find(&appointments).Error
	return appointments, err
}

func (s *ReminderService) sendReminder(company models.Company, appointment models.Appointment) {
	log := utils.GetLogger()

	message := strings.ReplaceAll(company.ReminderMessage, "[ClientName]", appointment.ClientName)
	message = strings.ReplaceAll(message, "[Time]", appointment.StartsAt.Format("15:04"))

	// WhatsApp when the phone is in E.164 format and the company enabled
	// it, SMS otherwise
	channel := "sms"
	to := appointment.ClientPhone
	if company.WhatsAppNotifications && strings.HasPrefix(appointment.ClientPhone, "+") {
		to = "whatsapp:" + appointment.ClientPhone
		channel = "whatsapp"
	} else if !company.SMSNotifications {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Warn("failed to send reminder",
			zap.String("phone", appointment.ClientPhone), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Info("reminder sent",
			zap.String("phone", appointment.ClientPhone), zap.String("sid", *resp.Sid))
	}

	reminderLog := models.ReminderLog{
		CompanyID:     company.ID,
		AppointmentID: appointment.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Error("failed to log reminder",
			zap.String("appointmentId", appointment.ID.String()), zap.Error(err))
	}
}
