package controllers

import (
	"errors"
	"net/http"

	"agendapro-backend/config"
	"agendapro-backend/models"
	"agendapro-backend/services"
	"agendapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SyncAvailabilitiesInput struct {
	Availabilities []models.Availability `json:"availabilities" binding:"required"`
}

// GetAvailabilities lists a professional's weekly availability windows
func GetAvailabilities(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	professionalUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return
	}

	var availabilities []models.Availability
	if err := config.DB.Where("company_id = ? AND professional_id = ?", companyUUID, professionalUUID).
		Order("weekday, start").Find(&availabilities).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve availability")
		return
	}

	c.JSON(http.StatusOK, availabilities)
}

// SyncAvailabilities persists the availability editor's rows: new rows
// (no id) are inserted, rows carrying an id are updated. Resubmitting an
// unchanged form never duplicates saved rows.
func SyncAvailabilities(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	professionalUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return
	}

	var professional models.Professional
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, professionalUUID).
		First(&professional).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Professional not found")
		return
	}

	var input SyncAvailabilitiesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	availabilityService := services.NewAvailabilityService(config.DB)
	saved, err := availabilityService.Sync(companyUUID, professionalUUID, input.Availabilities)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidWeekday) || errors.Is(err, services.ErrInvalidTimeRange):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrAvailabilityNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Availability not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save availability")
		}
		return
	}

	c.JSON(http.StatusOK, saved)
}

// DeleteAvailability removes one availability row through the delete
// fallback cascade: direct delete, forced delete, then deactivation.
func DeleteAvailability(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	availabilityUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid availability ID format")
		return
	}

	availabilityService := services.NewAvailabilityService(config.DB)
	strategy, err := availabilityService.Delete(companyUUID, availabilityUUID)
	if err != nil {
		if errors.Is(err, services.ErrAvailabilityNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Availability not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete availability")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Availability removed",
		"strategy": strategy,
	})
}
