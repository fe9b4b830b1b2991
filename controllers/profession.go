package controllers

import (
	"errors"
	"net/http"

	"agendapro-backend/config"
	"agendapro-backend/models"
	"agendapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateProfessionInput struct {
	Name string `json:"name" binding:"required"`
}

// GetProfessions lists the company's profession catalog
func GetProfessions(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	var professions []models.Profession
	if err := config.DB.Where("company_id = ?", companyUUID).
		Order("name").Find(&professions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve professions")
		return
	}

	c.JSON(http.StatusOK, professions)
}

// CreateProfession adds a profession to the company's catalog
func CreateProfession(c *gin.Context) {
	companyUUID, ok := companyFromContext(c)
	if !ok {
		return
	}

	var input CreateProfessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.Profession
	if err := config.DB.Where("company_id = ? AND name = ?", companyUUID, input.Name).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Profession already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	profession := models.Profession{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      input.Name,
	}

	if err := config.DB.Create(&profession).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create profession")
		return
	}

	c.JSON(http.StatusCreated, profession)
}
