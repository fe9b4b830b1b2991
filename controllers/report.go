// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"agendapro-backend/config"
	"agendapro-backend/models"
	"agendapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the reports screen data
type AnalyticsSummary struct {
	CurrentMonthAppointments   int64                 `json:"currentMonthAppointments"`
	MonthGrowth                float64               `json:"monthGrowth"`
	CurrentQuarterAppointments int64                 `json:"currentQuarterAppointments"`
	QuarterGrowth              float64               `json:"quarterGrowth"`
	CurrentYearAppointments    int64                 `json:"currentYearAppointments"`
	YearGrowth                 float64               `json:"yearGrowth"`
	BusiestProfessionals       []ProfessionalSummary `json:"busiestProfessionals"`
	BusiestHours               []HourSummary         `json:"busiestHours"`
	QuickStats                 QuickStatistics       `json:"quickStats"`
}

type ProfessionalSummary struct {
	Name         string `json:"name"`
	Appointments int    `json:"appointments"`
}

type HourSummary struct {
	Hour         int `json:"hour"`
	Appointments int `json:"appointments"`
}

type QuickStatistics struct {
	TotalClients       int64   `json:"totalClients"`
	TotalAppointments  int64   `json:"totalAppointments"`
	AvgWeeklyBookings  float64 `json:"avgWeeklyBookings"`
	ActiveAvailability int64   `json:"activeAvailability"`
}

// GetReportAnalytics returns the complete reports summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	currentLocation := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, currentLocation)
	nextMonth := firstOfMonth.AddDate(0, 1, 0)

	currentMonthCount, err := rc.getAppointmentCount(companyUUID, firstOfMonth, nextMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly bookings")
		return
	}
	lastMonthCount, err := rc.getAppointmentCount(companyUUID,
		firstOfMonth.AddDate(0, -1, 0), firstOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month bookings")
		return
	}

	quarterStart := rc.getQuarterStart(now)
	quarterEnd := quarterStart.AddDate(0, 3, 0)
	currentQuarterCount, err := rc.getAppointmentCount(companyUUID, quarterStart, quarterEnd)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quarterly bookings")
		return
	}
	lastQuarterCount, err := rc.getAppointmentCount(companyUUID,
		quarterStart.AddDate(0, -3, 0), quarterStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last quarter bookings")
		return
	}

	yearStart := time.Date(currentYear, 1, 1, 0, 0, 0, 0, currentLocation)
	currentYearCount, err := rc.getAppointmentCount(companyUUID, yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get yearly bookings")
		return
	}
	lastYearCount, err := rc.getAppointmentCount(companyUUID,
		yearStart.AddDate(-1, 0, 0), yearStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last year bookings")
		return
	}

	busiestProfessionals, err := rc.getBusiestProfessionals(companyUUID, firstOfMonth, nextMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get busiest professionals")
		return
	}

	busiestHours, err := rc.getBusiestHours(companyUUID, firstOfMonth, nextMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get busiest hours")
		return
	}

	quickStats, err := rc.getQuickStatistics(companyUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quick statistics")
		return
	}

	summary := AnalyticsSummary{
		CurrentMonthAppointments:   currentMonthCount,
		MonthGrowth:                rc.calculateGrowthPercentage(currentMonthCount, lastMonthCount),
		CurrentQuarterAppointments: currentQuarterCount,
		QuarterGrowth:              rc.calculateGrowthPercentage(currentQuarterCount, lastQuarterCount),
		CurrentYearAppointments:    currentYearCount,
		YearGrowth:                 rc.calculateGrowthPercentage(currentYearCount, lastYearCount),
		BusiestProfessionals:       busiestProfessionals,
		BusiestHours:               busiestHours,
		QuickStats:                 quickStats,
	}

	c.JSON(http.StatusOK, summary)
}

// Helper functions for reports

func (rc *ReportController) getAppointmentCount(companyID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := config.DB.Model(&models.Appointment{}).
		Where("company_id = ? AND starts_at >= ? AND starts_at < ?", companyID, start, end).
		Count(&count).Error
	return count, err
}

func (rc *ReportController) getQuarterStart(date time.Time) time.Time {
	quarter := (int(date.Month())-1)/3 + 1
	startMonth := time.Month((quarter-1)*3 + 1)
	return time.Date(date.Year(), startMonth, 1, 0, 0, 0, 0, date.Location())
}

func (rc *ReportController) calculateGrowthPercentage(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (float64(current-previous) / float64(previous)) * 100
}

func (rc *ReportController) getBusiestProfessionals(companyID uuid.UUID, start, end time.Time, limit int) ([]ProfessionalSummary, error) {
	var summaries []ProfessionalSummary
	err := config.DB.Raw(`
		SELECT p.name, COUNT(a.id) AS appointments
		FROM appointments a
		JOIN professionals p ON p.id = a.professional_id
		WHERE a.company_id = ? AND a.starts_at >= ? AND a.starts_at < ? AND a.deleted_at IS NULL
		GROUP BY p.name
		ORDER BY appointments DESC
		LIMIT ?
	`, companyID, start, end, limit).Scan(&summaries).Error
	return summaries, err
}

func (rc *ReportController) getBusiestHours(companyID uuid.UUID, start, end time.Time, limit int) ([]HourSummary, error) {
	var summaries []HourSummary
	err := config.DB.Raw(`
		SELECT EXTRACT(HOUR FROM starts_at)::int AS hour, COUNT(*) AS appointments
		FROM appointments
		WHERE company_id = ? AND starts_at >= ? AND starts_at < ? AND deleted_at IS NULL
		GROUP BY hour
		ORDER BY appointments DESC
		LIMIT ?
	`, companyID, start, end, limit).Scan(&summaries).Error
	return summaries, err
}

func (rc *ReportController) getQuickStatistics(companyID uuid.UUID) (QuickStatistics, error) {
	var stats QuickStatistics

	if err := config.DB.Model(&models.Client{}).
		Where("company_id = ?", companyID).Count(&stats.TotalClients).Error; err != nil {
		return stats, err
	}
	if err := config.DB.Model(&models.Appointment{}).
		Where("company_id = ?", companyID).Count(&stats.TotalAppointments).Error; err != nil {
		return stats, err
	}
	if err := config.DB.Model(&models.Availability{}).
		Where("company_id = ? AND is_active = true", companyID).
		Count(&stats.ActiveAvailability).Error; err != nil {
		return stats, err
	}

	// average weekly bookings over the last 4 weeks
	fourWeeksAgo := utils.BeginningOfWeek(time.Now()).AddDate(0, 0, -28)
	var recent int64
	if err := config.DB.Model(&models.Appointment{}).
		Where("company_id = ? AND starts_at >= ?", companyID, fourWeeksAgo).
		Count(&recent).Error; err != nil {
		return stats, err
	}
	stats.AvgWeeklyBookings = float64(recent) / 4

	return stats, nil
}
