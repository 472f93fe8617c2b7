package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kitalk/kiosk-backend/config"
	"github.com/kitalk/kiosk-backend/models"
	"github.com/kitalk/kiosk-backend/router"
	"github.com/kitalk/kiosk-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// .env is optional in containerized deployments
	}

	utils.InitLogger()

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("database init failed: %v", err)
	}

	if err := db.AutoMigrate(&models.Menu{}, &models.Order{}, &models.OrderItem{}); err != nil {
		utils.ErrorLogger.Fatalf("migration failed: %v", err)
	}

	rdb, err := config.InitRedis()
	if err != nil {
		utils.ErrorLogger.Fatalf("redis init failed: %v", err)
	}

	r := router.SetupRouter(db, rdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.InfoLogger.Printf("kiosk backend listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatalf("server stopped: %v", err)
	}
}
