package controllers

import (
	"fmt"
	"net/http"
	"time"

	"agendapro-backend/config"
	"agendapro-backend/models"
	"agendapro-backend/utils"

	"github.com/gin-gonic/gin"
)

type NextAppointment struct {
	ClientName   string `json:"clientName"`
	Professional string `json:"professional"`
	When         string `json:"when"` // e.g. "Today 14:00", "Tomorrow 09:00"
	Time         string `json:"time"`
}

func GetDashboardOverview(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	now := time.Now()
	today := utils.BeginningOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := utils.BeginningOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	// Today's appointments
	var todayCount int64
	config.DB.Model(&models.Appointment{}).
		Where("company_id = ? AND starts_at >= ? AND starts_at < ? AND deleted_at IS NULL",
			companyUUID, today, tomorrow).
		Count(&todayCount)

	// This week's appointments
	var weekCount int64
	config.DB.Model(&models.Appointment{}).
		Where("company_id = ? AND starts_at >= ? AND starts_at < ? AND deleted_at IS NULL",
			companyUUID, weekStart, weekEnd).
		Count(&weekCount)

	// Total clients
	var totalClients int64
	config.DB.Model(&models.Client{}).
		Where("company_id = ? AND deleted_at IS NULL", companyUUID).
		Count(&totalClients)

	// Active professionals
	var totalProfessionals int64
	config.DB.Model(&models.Professional{}).
		Where("company_id = ? AND is_active = true AND deleted_at IS NULL", companyUUID).
		Count(&totalProfessionals)

	// Next appointments (today onwards)
	var nextAppointments []NextAppointment
	rows, err := config.DB.Raw(`
		SELECT a.client_name, p.name, a.starts_at
		FROM appointments a
		JOIN professionals p ON p.id = a.professional_id
		WHERE a.company_id = ? AND a.starts_at >= ? AND a.deleted_at IS NULL
		ORDER BY a.starts_at
		LIMIT 5
	`, companyUUID, now).Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var clientName, professionalName string
			var startsAt time.Time
			rows.Scan(&clientName, &professionalName, &startsAt)

			daysAhead := utils.DaysBetween(now, startsAt)
			var label string
			switch daysAhead {
			case 0:
				label = "Today"
			case 1:
				label = "Tomorrow"
			default:
				label = fmt.Sprintf("%d days", daysAhead)
			}
			nextAppointments = append(nextAppointments, NextAppointment{
				ClientName:   clientName,
				Professional: professionalName,
				When:         label,
				Time:         startsAt.Format("15:04"),
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"todayAppointments":  todayCount,
		"weekAppointments":   weekCount,
		"totalClients":       totalClients,
		"totalProfessionals": totalProfessionals,
		"nextAppointments":   nextAppointments,
	})
}
