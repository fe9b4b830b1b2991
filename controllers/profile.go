package controllers

import (
	"net/http"

	"agendapro-backend/config"
	"agendapro-backend/models"
	"agendapro-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateCompanyProfileInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type UpdateNotificationSettingsInput struct {
	AppointmentReminders  *bool   `json:"appointmentReminders"`
	WhatsAppNotifications *bool   `json:"whatsAppNotifications"`
	SMSNotifications      *bool   `json:"smsNotifications"`
	ReminderMessage       *string `json:"reminderMessage"`
}

func GetProfile(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	var company models.Company
	if err := config.DB.First(&company, "id = ?", companyUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Company not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":                  company.Name,
		"address":               company.Address,
		"appointmentReminders":  company.AppointmentReminders,
		"whatsAppNotifications": company.WhatsAppNotifications,
		"smsNotifications":      company.SMSNotifications,
		"reminderMessage":       company.ReminderMessage,
	})
}

func UpdateCompanyProfile(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	var input UpdateCompanyProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var company models.Company
	if err := config.DB.First(&company, "id = ?", companyUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Company not found")
		return
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Address != nil {
		company.Address = *input.Address
	}

	if err := config.DB.Save(&company).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func UpdateNotificationSettings(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	var input UpdateNotificationSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	updates := map[string]interface{}{}
	if input.AppointmentReminders != nil {
		updates["appointment_reminders"] = *input.AppointmentReminders
	}
	if input.WhatsAppNotifications != nil {
		updates["whats_app_notifications"] = *input.WhatsAppNotifications
	}
	if input.SMSNotifications != nil {
		updates["sms_notifications"] = *input.SMSNotifications
	}
	if input.ReminderMessage != nil {
		updates["reminder_message"] = *input.ReminderMessage
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update"})
		return
	}

	if err := config.DB.Model(&models.Company{}).Where("id = ?", companyUUID).
		Updates(updates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}
