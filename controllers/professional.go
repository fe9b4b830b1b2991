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
	"gorm.io/gorm"
)

// CreateProfessionalInput defines the expected JSON structure for creating a professional
type CreateProfessionalInput struct {
	Name         string    `json:"name" binding:"required"`
	ProfessionID uuid.UUID `json:"professionId" binding:"required"`
	Email        *string   `json:"email"`
	PhotoURL     *string   `json:"photoUrl"`
	IsAdmin      *bool     `json:"isAdmin"`
}

// UpdateProfessionalInput defines the expected JSON structure for updating a professional
type UpdateProfessionalInput struct {
	Name         *string    `json:"name"`
	ProfessionID *uuid.UUID `json:"professionId"`
	Email        *string    `json:"email"`
	PhotoURL     *string    `json:"photoUrl"`
	IsAdmin      *bool      `json:"isAdmin"`
	IsActive     *bool      `json:"isActive"`

	// Availability rows submitted together with the professional form.
	// Rows without an id are inserted, rows with an id are updated.
	Availabilities []models.Availability `json:"availabilities"`
}

func companyFromContext(c *gin.Context) (uuid.UUID, bool) {
	companyID, exists := c.Get("companyId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Company ID not found in context")
		return uuid.Nil, false
	}
	companyUUID, err := uuid.Parse(companyID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid company ID format")
		return uuid.Nil, false
	}
	return companyUUID, true
}

// CreateProfessional creates a new professional for the company
func CreateProfessional(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	var input CreateProfessionalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var profession models.Profession
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, input.ProfessionID).
		First(&profession).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Profession not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	professional := models.Professional{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		ProfessionID: input.ProfessionID,
		Name:         input.Name,
		IsActive:     true,
	}
	if input.Email != nil {
		professional.Email = *input.Email
	}
	if input.PhotoURL != nil {
		professional.PhotoURL = *input.PhotoURL
	}
	if input.IsAdmin != nil {
		professional.IsAdmin = *input.IsAdmin
	}

	if err := config.DB.Create(&professional).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create professional")
		return
	}

	c.JSON(http.StatusCreated, professional)
}

// GetProfessionals retrieves all professionals for the company
func GetProfessionals(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	var professionals []models.Professional
	if err := config.DB.Where("company_id = ?", companyUUID).
		Preload("Availabilities").Find(&professionals).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve professionals")
		return
	}

	c.JSON(http.StatusOK, professionals)
}

// GetProfessional retrieves a specific professional by ID
func GetProfessional(c *gin.Context) {
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
		Preload("Availabilities").First(&professional).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Professional not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, professional)
}

// UpdateProfessional updates a professional and, when availability rows are
// submitted with the form, syncs them in the same request.
func UpdateProfessional(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	professionalUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return
	}

	var input UpdateProfessionalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var professional models.Professional
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, professionalUUID).
		First(&professional).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Professional not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		professional.Name = *input.Name
	}
	if input.ProfessionID != nil {
		var profession models.Profession
		if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, *input.ProfessionID).
			First(&profession).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Profession not found")
			return
		}
		professional.ProfessionID = *input.ProfessionID
	}
	if input.Email != nil {
		professional.Email = *input.Email
	}
	if input.PhotoURL != nil {
		professional.PhotoURL = *input.PhotoURL
	}
	if input.IsAdmin != nil {
		professional.IsAdmin = *input.IsAdmin
	}
	if input.IsActive != nil {
		professional.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&professional).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update professional")
		return
	}

	if input.Availabilities != nil {
		availabilityService := services.NewAvailabilityService(config.DB)
		saved, err := availabilityService.Sync(companyUUID, professionalUUID, input.Availabilities)
		if err != nil {
			if errors.Is(err, services.ErrInvalidWeekday) || errors.Is(err, services.ErrInvalidTimeRange) {
				utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save availability")
			}
			return
		}
		professional.Availabilities = saved
	}

	c.JSON(http.StatusOK, professional)
}

// DeleteProfessional deletes a professional
func DeleteProfessional(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	professionalUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, professionalUUID).
		Delete(&models.Professional{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete professional")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Professional not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Professional deleted successfully"})
}
