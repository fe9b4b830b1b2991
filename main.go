package main

import (
	"fmt"
	"os"

	"agendapro-backend/config"
	"agendapro-backend/models"
	"agendapro-backend/routes"
	"agendapro-backend/services"
	"agendapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	utils.InitializeLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Profession{},
		&models.Professional{},
		&models.Availability{},
		&models.Appointment{},
		&models.Client{},
		&models.ReminderLog{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminderService := services.NewReminderService(config.DB)
	reminderService.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
