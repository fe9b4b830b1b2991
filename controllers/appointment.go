package controllers

import (
	"errors"
	"net/http"
	"time"

	"agendapro-backend/config"
	"agendapro-backend/models"
	"agendapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentInput carries the "new appointment" form fields. Date and
// times arrive as separate text fields and are assembled into local
// wall-clock timestamps.
type AppointmentInput struct {
	ProfessionalID uuid.UUID `json:"professionalId" binding:"required"`
	Date           string    `json:"date" binding:"required"`  // "2006-01-02"
	Start          string    `json:"start" binding:"required"` // "HH:MM"
	End            string    `json:"end" binding:"required"`   // "HH:MM"
	ClientName     string    `json:"clientName" binding:"required"`
	ClientPhone    string    `json:"clientPhone" binding:"required"`
	Notes          string    `json:"notes"`
}

// AppointmentView is an appointment annotated with its rendered position
// on the weekly grid.
type AppointmentView struct {
	models.Appointment
	GridTop    int `json:"gridTop"`
	GridHeight int `json:"gridHeight"`
}

func (input AppointmentInput) buildTimestamps() (start, end time.Time, err error) {
	day, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		return start, end, errors.New("invalid date")
	}
	startMin, err := utils.MinutesOfDay(input.Start)
	if err != nil {
		return start, end, err
	}
	endMin, err := utils.MinutesOfDay(input.End)
	if err != nil {
		return start, end, err
	}

	year, month, dayOfMonth := day.Date()
	start = time.Date(year, month, dayOfMonth, startMin/60, startMin%60, 0, 0, time.Local)
	end = time.Date(year, month, dayOfMonth, endMin/60, endMin%60, 0, 0, time.Local)
	return start, end, nil
}

func appointmentView(appointment models.Appointment) AppointmentView {
	top, height := utils.BlockGeometry(appointment.StartsAt.Hour(), appointment.EndsAt.Hour())
	return AppointmentView{
		Appointment: appointment,
		GridTop:     top,
		GridHeight:  height,
	}
}

// CreateAppointment books an empty slot. Creation is rejected when the
// start slot is already occupied for that professional.
func CreateAppointment(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidTimeRange(input.Start, input.End) {
		utils.RespondWithError(c, http.StatusBadRequest, "End time must be after start time")
		return
	}

	if !utils.ValidatePhone(input.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	var professional models.Professional
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, input.ProfessionalID).
		First(&professional).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Professional not found")
		return
	}

	startsAt, endsAt, err := input.buildTimestamps()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	occupied, err := slotOccupiedForProfessional(companyUUID, input.ProfessionalID, startsAt)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if occupied {
		utils.RespondWithError(c, http.StatusConflict, "Time slot already occupied")
		return
	}

	appointment := models.Appointment{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		ProfessionalID: input.ProfessionalID,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		ClientName:     input.ClientName,
		ClientPhone:    input.ClientPhone,
		Notes:          input.Notes,
		Type:           "consulta",
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointmentView(appointment))
}

// UpdateAppointment rewrites an appointment from the edit form. Last
// write wins; there is no version check.
func UpdateAppointment(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidTimeRange(input.Start, input.End) {
		utils.RespondWithError(c, http.StatusBadRequest, "End time must be after start time")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	startsAt, endsAt, err := input.buildTimestamps()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	appointment.ProfessionalID = input.ProfessionalID
	appointment.StartsAt = startsAt
	appointment.EndsAt = endsAt
	appointment.ClientName = input.ClientName
	appointment.ClientPhone = input.ClientPhone
	appointment.Notes = input.Notes

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointmentView(appointment))
}

// GetAppointments returns one professional's appointments for the week
// containing weekOf, ordered by start, annotated with grid positions.
func GetAppointments(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	professionalUUID, err := uuid.Parse(c.Query("professionalId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "professionalId is required")
		return
	}

	weekOf := time.Now()
	if raw := c.Query("weekOf"); raw != "" {
		weekOf, err = time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid weekOf date")
			return
		}
	}

	weekStart := utils.BeginningOfWeek(weekOf)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var appointments []models.Appointment
	if err := config.DB.
		Where("company_id = ? AND professional_id = ? AND starts_at >= ? AND starts_at < ?",
			companyUUID, professionalUUID, weekStart, weekEnd).
		Order("starts_at").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	views := make([]AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		views = append(views, appointmentView(appointment))
	}

	c.JSON(http.StatusOK, views)
}

// slotOccupiedForProfessional loads the professional's appointments for
// the candidate's day and checks the start slot against their [start,
// end) intervals.
func slotOccupiedForProfessional(companyID, professionalID uuid.UUID, startsAt time.Time) (bool, error) {
	dayStart := utils.BeginningOfDay(startsAt)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := config.DB.
		Where("company_id = ? AND professional_id = ? AND starts_at >= ? AND starts_at < ?",
			companyID, professionalID, dayStart, dayEnd).
		Find(&appointments).Error; err != nil {
		return false, err
	}

	ranges := make([]utils.TimeRange, 0, len(appointments))
	for _, appointment := range appointments {
		ranges = append(ranges, utils.TimeRange{Start: appointment.StartsAt, End: appointment.EndsAt})
	}

	return utils.SlotOccupied(ranges, startsAt, startsAt.Hour()), nil
}
