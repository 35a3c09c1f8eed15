package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kk-clothing/storefront-api/auth"
	notificationControllers "github.com/kk-clothing/storefront-api/controllers/notification"
	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/routes"
	"github.com/kk-clothing/storefront-api/services/cart"
	"github.com/kk-clothing/storefront-api/services/chat"
	"github.com/kk-clothing/storefront-api/services/engagement"
	"github.com/kk-clothing/storefront-api/services/mailbox"
	"github.com/kk-clothing/storefront-api/services/order"
	"github.com/kk-clothing/storefront-api/storage"
)

func main() {
	log.Println("✅ Starting storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init storefront state store
	store := initStore()

	// Services
	box := mailbox.New(store)
	cartSvc := cart.New(store)
	orderSvc := order.New(store, cartSvc, box)
	engagementSvc := engagement.New(store)
	chatEngine := chat.NewEngine(store, box)
	defer chatEngine.Close()
	authSvc := auth.NewService(store)

	// Push every new notification to the connected panels
	hub := notificationControllers.NewHub()
	box.Subscribe(hub.Broadcast)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, &routes.Deps{
		Auth:       authSvc,
		Cart:       cartSvc,
		Orders:     orderSvc,
		Mailbox:    box,
		Engagement: engagementSvc,
		Chat:       chatEngine,
		Hub:        hub,
	})

	// Archive old chat transcripts at 2 AM daily, keep 30 days in the live key
	go startDailyTranscriptArchive(store, 30*24*time.Hour, 2, 0)

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

// initStore picks the state driver: Postgres-backed when configured, memory
// otherwise. Both speak the same keyed-JSON contract.
func initStore() storage.Store {
	if os.Getenv("STORE_DRIVER") == "memory" {
		log.Println("⚠️ Using in-memory state store; data is lost on restart")
		return storage.NewMemoryStore()
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			log.Println("⚠️ No database configured; falling back to in-memory state store")
			return storage.NewMemoryStore()
		}
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	store, err := storage.NewGormStore(db)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	return store
}

// startDailyTranscriptArchive moves chat messages older than retention out of
// the live transcript into a dated archive key, once a day at a fixed time.
func startDailyTranscriptArchive(store storage.Store, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next transcript archive scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		archiveTranscripts(store, retention)
	}
}

func archiveTranscripts(store storage.Store, retention time.Duration) {
	var msgs []models.ChatMessage
	storage.GetJSON(store, storage.KeyChatMessages, &msgs)

	cutoff := time.Now().Add(-retention)
	var live, old []models.ChatMessage
	for _, m := range msgs {
		if m.Timestamp.Before(cutoff) {
			old = append(old, m)
		} else {
			live = append(live, m)
		}
	}
	if len(old) == 0 {
		return
	}

	archiveKey := "chatArchive_" + time.Now().Format("2006-01-02")
	var archived []models.ChatMessage
	storage.GetJSON(store, archiveKey, &archived)
	archived = append(archived, old...)

	if err := storage.SetJSON(store, archiveKey, archived); err != nil {
		log.Printf("❌ Failed to archive transcripts: %v", err)
		return
	}
	if err := storage.SetJSON(store, storage.KeyChatMessages, live); err != nil {
		log.Printf("❌ Failed to trim live transcript: %v", err)
		return
	}
	log.Printf("✅ Archived %d chat messages to %s", len(old), archiveKey)
}
