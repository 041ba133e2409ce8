package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	openai "github.com/sashabaranov/go-openai"

	"go-suraksha/assistant"
	"go-suraksha/cronjobs"
	"go-suraksha/datasets"
	"go-suraksha/db"
	"go-suraksha/geocode"
	"go-suraksha/handlers"
	"go-suraksha/metrics"
	"go-suraksha/routes"
)

func main() {
	// Load .env file; a missing file is fine in deployed environments
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	clock := clockwork.NewRealClock()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./mock_data"
	}
	loader := datasets.NewLoader(dataDir)

	// Init firestore; fall back to the in-memory store when no credentials
	// are configured so the read-only endpoints still work locally.
	var store db.Store
	if os.Getenv("FIREBASE_CREDENTIALS") != "" {
		firestoreClient, err := db.InitFirestore()
		if err != nil {
			log.Fatalf("Failed to initialize Firestore: %v", err)
		}
		defer db.CloseFirestore() // Firestore client is closed on exit
		store = db.NewFirestoreStore(firestoreClient, clock)
	} else {
		log.Println("FIREBASE_CREDENTIALS not set, using in-memory store")
		store = db.NewMemoryStore(clock)
	}

	// AI features are disabled gracefully without a credential
	var openaiClient *openai.Client
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		log.Println("OPENAI_API_KEY loaded")
		openaiClient = openai.NewClient(apiKey)
	} else {
		log.Println("OPENAI_API_KEY not found. AI features will be disabled.")
	}

	var geocoder geocode.Geocoder
	if apiKey := os.Getenv("MAPS_CREDENTIALS"); apiKey != "" {
		g, err := geocode.NewMapsGeocoder(apiKey)
		if err != nil {
			log.Fatalf("Failed to create maps client: %v", err)
		}
		geocoder = g
	}

	// Initialize cron jobs
	cronjobs.InitCronJobs(store)

	env := &handlers.Env{
		Store:     store,
		Loader:    loader,
		Assistant: assistant.New(openaiClient, loader, clock),
		Geocoder:  geocoder,
		Clock:     clock,
	}

	corsOrigins := strings.Split(envDefault("CORS_ORIGINS", "*"), ",")

	r := routes.SetupRouter(env, metrics.NewMetrics(), corsOrigins)
	if err := r.Run(":" + envDefault("PORT", "8080")); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
