package routes

import (
	"os"
	"strings"

	"agendapro-backend/config"
	"agendapro-backend/controllers"
	"agendapro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Profession routes
		professions := api.Group("/professions")
		{
			professions.GET("", controllers.GetProfessions)
			professions.POST("", controllers.CreateProfession)
		}

		// Professional routes
		professionals := api.Group("/professionals")
		{
			professionals.POST("", controllers.CreateProfessional)
			professionals.GET("", controllers.GetProfessionals)
			professionals.GET("/:id", controllers.GetProfessional)
			professionals.PUT("/:id", controllers.UpdateProfessional)
			professionals.DELETE("/:id", controllers.DeleteProfessional)

			professionals.GET("/:id/availabilities", controllers.GetAvailabilities)
			professionals.PUT("/:id/availabilities", controllers.SyncAvailabilities)
		}

		// Availability delete goes through the fallback cascade
		api.DELETE("/availabilities/:id", controllers.DeleteAvailability)

		// Appointment routes (no delete path; bookings are edited, not removed)
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.PUT("/:id", controllers.UpdateAppointment)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateCompanyProfile)
			profile.PUT("/notifications", controllers.UpdateNotificationSettings)
		}
	}

	return r
}
