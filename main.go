package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/awann-cloud/kedai-kiry-sub001/config"
	"github.com/awann-cloud/kedai-kiry-sub001/database"
	"github.com/awann-cloud/kedai-kiry-sub001/kds"
	"github.com/awann-cloud/kedai-kiry-sub001/middlewares"
	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"github.com/awann-cloud/kedai-kiry-sub001/router"
	"github.com/awann-cloud/kedai-kiry-sub001/services"
	"github.com/awann-cloud/kedai-kiry-sub001/store"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	// Initialize logger
	utils.InfoLogger = logrus.New()
	utils.ErrorLogger = logrus.New()

	utils.InfoLogger.SetOutput(os.Stdout)
	utils.ErrorLogger.SetOutput(os.Stderr)

	utils.InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
	utils.ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
}

func main() {
	// DB: direktori staf, akun layar, arsip order terminal
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Printf("Error seeding database: %v", err)
	}

	// Store: sumber kebenaran order live, satu wall clock untuk semua operasi
	st := store.New(utils.SystemClock())

	// Hub websocket meneruskan setiap mutasi store ke semua layar terbuka
	hub := kds.NewHub()
	events, cancelHub := st.Subscribe()
	defer cancelHub()
	go hub.Run(events)

	// Archiver menulis order terminal ke DB
	archiver := services.NewArchiver(db, st)
	archiver.Start()
	defer archiver.Stop()

	// Setup rate limiter (50 requests per second per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, st, hub)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Run server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.OrderArchive{},
		&models.OrderArchiveItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
