package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hrshere/daksh-prototype/config"
	notificationControllers "github.com/hrshere/daksh-prototype/controllers/notification"
	orderControllers "github.com/hrshere/daksh-prototype/controllers/order"
	paymentControllers "github.com/hrshere/daksh-prototype/controllers/payment"
	productControllers "github.com/hrshere/daksh-prototype/controllers/product"
	"github.com/hrshere/daksh-prototype/models"
	"github.com/hrshere/daksh-prototype/routes"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Shape{},
		&models.Material{},
		&models.Rating{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderProduct{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Redis for rate limiting (optional)
	config.InitRedis()

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20 // 32MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", productControllers.UploadDir())

	// Setup routes with the external-provider clients
	routes.SetupRoutes(r, db, buildDependencies())

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// buildDependencies constructs the Stripe, FCM and SMTP clients from the
// environment. Credentials are injected here; missing ones leave the
// matching bridge disabled.
func buildDependencies() routes.Dependencies {
	var deps routes.Dependencies

	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		deps.Payment = paymentControllers.NewClient(key)
	} else {
		log.Println("⚠️ STRIPE_SECRET_KEY not set, payments disabled")
	}

	if credFile := os.Getenv("FIREBASE_CREDENTIALS_FILE"); credFile != "" {
		notifier, err := notificationControllers.NewNotifier(context.Background(), credFile)
		if err != nil {
			log.Printf("❌ Firebase init failed: %v", err)
		} else {
			deps.Notifier = notifier
		}
	} else {
		log.Println("⚠️ FIREBASE_CREDENTIALS_FILE not set, push notifications disabled")
	}

	if host := os.Getenv("SMTP_HOST"); host != "" {
		port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if err != nil {
			port = 587
		}
		deps.Mailer = orderControllers.NewMailer(
			host,
			port,
			os.Getenv("SMTP_USERNAME"),
			os.Getenv("SMTP_PASSWORD"),
			os.Getenv("SMTP_FROM"),
		)
	} else {
		log.Println("⚠️ SMTP_HOST not set, order emails disabled")
	}

	return deps
}
